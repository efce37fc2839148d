package jason

import "unicode/utf8"

// escapeTable maps ASCII bytes to the character following the backslash.
// Zero means the byte is written as is; 'u' selects the \u00XX form.
var escapeTable = [utf8.RuneSelf]byte{
	0x00: 'u', 0x01: 'u', 0x02: 'u', 0x03: 'u', 0x04: 'u', 0x05: 'u', 0x06: 'u', 0x07: 'u',
	0x08: 'b', 0x09: 't', 0x0A: 'n', 0x0B: 'u', 0x0C: 'f', 0x0D: 'r', 0x0E: 'u', 0x0F: 'u',
	0x10: 'u', 0x11: 'u', 0x12: 'u', 0x13: 'u', 0x14: 'u', 0x15: 'u', 0x16: 'u', 0x17: 'u',
	0x18: 'u', 0x19: 'u', 0x1A: 'u', 0x1B: 'u', 0x1C: 'u', 0x1D: 'u', 0x1E: 'u', 0x1F: 'u',
	'"':  '"',
	'/':  '/',
	'\\': '\\',
}

const upperHex = "0123456789ABCDEF"

// sequenceLen returns the length of the UTF-8 sequence introduced by lead,
// or 0 for bytes that cannot start a sequence.
func sequenceLen(lead byte) int {
	switch {
	case lead < utf8.RuneSelf:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	}
	return 0
}

// AppendEscaped writes b to s as the body of a JSON string, without the
// surrounding quotes.
//
// Control characters, quotes and backslashes are escaped, and so is '/'
// when escapeSlash is set. Multi-byte sequences are copied unchanged once
// enough bytes remain to hold them; a sequence cut short by the end of b
// fails with ErrInvalidUTF8 after the bytes before it have been written.
// Bytes that cannot start a sequence are skipped.
func AppendEscaped(s Sink, b []byte, escapeSlash bool) error {
	start := 0
	for i := 0; i < len(b); {
		c := b[i]
		if c < utf8.RuneSelf {
			esc := escapeTable[c]
			if esc == 0 || (c == '/' && !escapeSlash) {
				i++
				continue
			}
			if start < i {
				s.Append(b[start:i])
			}
			s.AppendByte('\\')
			s.AppendByte(esc)
			if esc == 'u' {
				s.AppendString("00")
				s.AppendByte(upperHex[c>>4])
				s.AppendByte(upperHex[c&0x0F])
			}
			i++
			start = i
			continue
		}

		n := sequenceLen(c)
		if n == 0 {
			// Stray continuation bytes and 0xF8-0xFF are dropped.
			if start < i {
				s.Append(b[start:i])
			}
			i++
			start = i
			continue
		}
		if i+n > len(b) {
			if start < i {
				s.Append(b[start:i])
			}
			return newUTF8Error(i)
		}
		i += n
	}
	if start < len(b) {
		s.Append(b[start:])
	}
	return nil
}

// appendQuoted writes b as a complete JSON string literal.
func appendQuoted(s Sink, b []byte, escapeSlash bool) error {
	s.Grow(len(b) + 2)
	s.AppendByte('"')
	if err := AppendEscaped(s, b, escapeSlash); err != nil {
		return err
	}
	s.AppendByte('"')
	return nil
}
