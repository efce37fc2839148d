package jason

import (
	"errors"
	"testing"
)

func TestAppendEscaped(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"empty", []byte{}, ""},
		{"plain", []byte("hello"), "hello"},
		{"slash", []byte{0x2F}, `\/`},
		{"newline", []byte{0x0A}, `\n`},
		{"short escapes", []byte("\b\t\n\f\r"), `\b\t\n\f\r`},
		{"control", []byte{0x01}, `\u0001`},
		{"control upper hex", []byte{0x1F, 0x0B}, `\u001F\u000B`},
		{"nul", []byte{0x00}, `\u0000`},
		{"quote", []byte(`say "hi"`), `say \"hi\"`},
		{"backslash", []byte(`a\b`), `a\\b`},
		{"del untouched", []byte{0x7F}, "\x7F"},
		{"two byte", []byte("é"), "é"},
		{"three byte", []byte{0xE2, 0x82, 0xAC}, "€"},
		{"four byte", []byte("😀"), "😀"},
		{"mixed", []byte("a/\"é\"\n"), `a\/\"é\"\n`},
		{"stray continuation", []byte{0x80, 'a'}, "a"},
		{"invalid lead", []byte{0xFF, 'a'}, "a"},
		{"invalid bytes between text", []byte{'a', 0x80, 'b', 0xFF}, "ab"},
		{"invalid byte after escape", []byte{'\n', 0xF8, 'c'}, `\nc`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &Buffer{}
			if err := AppendEscaped(buf, tt.input, true); err != nil {
				t.Fatalf("AppendEscaped() error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("AppendEscaped(%q) = %q, want %q", tt.input, buf.String(), tt.want)
			}
		})
	}
}

func TestAppendEscaped_SlashDisabled(t *testing.T) {
	buf := &Buffer{}
	if err := AppendEscaped(buf, []byte("a/b\\c"), false); err != nil {
		t.Fatalf("AppendEscaped() error: %v", err)
	}
	if want := `a/b\\c`; buf.String() != want {
		t.Errorf("AppendEscaped() = %q, want %q", buf.String(), want)
	}
}

func TestAppendEscaped_Truncated(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		offset  int
		partial string
	}{
		{"two byte", []byte{'a', 'b', 0xC3}, 2, "ab"},
		{"three byte", []byte{'x', 0xE2, 0x82}, 1, "x"},
		{"four byte", []byte{0xF0, 0x9F, 0x98}, 0, ""},
		{"after escape", []byte{'\n', 0xC3}, 1, `\n`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &Buffer{}
			err := AppendEscaped(buf, tt.input, true)
			if !errors.Is(err, ErrInvalidUTF8) {
				t.Fatalf("AppendEscaped() error = %v, want ErrInvalidUTF8", err)
			}
			var de *DumpError
			if !errors.As(err, &de) || de.Offset != tt.offset {
				t.Errorf("error offset = %v, want %d", de, tt.offset)
			}
			if buf.String() != tt.partial {
				t.Errorf("partial output = %q, want %q", buf.String(), tt.partial)
			}
		})
	}
}

func TestSequenceLen(t *testing.T) {
	tests := []struct {
		lead byte
		want int
	}{
		{0x41, 1},
		{0x80, 0},
		{0xC3, 2},
		{0xE2, 3},
		{0xF0, 4},
		{0xF8, 0},
		{0xFF, 0},
	}

	for _, tt := range tests {
		if got := sequenceLen(tt.lead); got != tt.want {
			t.Errorf("sequenceLen(%#x) = %d, want %d", tt.lead, got, tt.want)
		}
	}
}
