package jason

import (
	"errors"
	"testing"
	"time"
)

type reflectAddress struct {
	City string `jason:"city"`
	Zip  string `jason:"zip,omitempty"`
}

type reflectUser struct {
	Name     string          `jason:"name"`
	Age      uint8           `jason:"age"`
	Score    float64         `jason:"score"`
	Admin    bool            `jason:"admin"`
	Password string          `jason:"-"`
	Tags     []string        `jason:"tags"`
	Meta     map[string]int  `jason:"meta"`
	Address  *reflectAddress `jason:"address"`
	Raw      []byte          `jason:"raw,omitempty"`
	Extra    Value           `jason:"extra"`
	Labels   map[int]string  `jason:"labels,omitempty"`
	Nick     string          `jason:",omitempty"`
	internal string
}

func TestOf_Struct(t *testing.T) {
	u := reflectUser{
		Name:     "alice",
		Age:      30,
		Score:    -1.25,
		Admin:    true,
		Password: "secret",
		Tags:     []string{"a", "b"},
		Meta:     map[string]int{"z": 1, "a": 2},
		Address:  &reflectAddress{City: "Paris"},
		Extra:    External(Int(5)),
		Nick:     "al",
		internal: "x",
	}

	v, err := Of(u)
	if err != nil {
		t.Fatalf("Of() error: %v", err)
	}
	out, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := `{"name":"alice","age":30,"score":-1.25,"admin":true,"tags":["a","b"],` +
		`"meta":{"a":2,"z":1},"address":{"city":"Paris"},"extra":5,"Nick":"al"}`
	if string(out) != want {
		t.Errorf("Marshal(Of()) = %s\nwant %s", out, want)
	}
}

func TestOf_Pointer(t *testing.T) {
	var u *reflectUser
	v, err := Of(u)
	if err != nil {
		t.Fatalf("Of(nil) error: %v", err)
	}
	if v.Kind() != KindNull {
		t.Errorf("Of(nil) kind = %s, want null", v.Kind())
	}

	v, err = Of(&reflectAddress{City: "Rome", Zip: "00100"})
	if err != nil {
		t.Fatalf("Of() error: %v", err)
	}
	out, _ := Marshal(v)
	if string(out) != `{"city":"Rome","zip":"00100"}` {
		t.Errorf("Marshal(Of(&addr)) = %s", out)
	}
}

func TestOf_Scalars(t *testing.T) {
	ts := time.UnixMilli(1700000000123)

	tests := []struct {
		name string
		in   func() (Value, error)
		kind Kind
	}{
		{"int", func() (Value, error) { return Of(-3) }, KindInt},
		{"uint", func() (Value, error) { return Of(uint64(3)) }, KindUInt},
		{"float", func() (Value, error) { return Of(float32(1.5)) }, KindDouble},
		{"string", func() (Value, error) { return Of("x") }, KindString},
		{"bytes", func() (Value, error) { return Of([]byte("x")) }, KindBinary},
		{"time", func() (Value, error) { return Of(ts) }, KindUTCDate},
		{"nil slice", func() (Value, error) { return Of([]int(nil)) }, KindNull},
		{"nil map", func() (Value, error) { return Of(map[string]int(nil)) }, KindNull},
		{"array", func() (Value, error) { return Of([2]int{1, 2}) }, KindArray},
		{"any", func() (Value, error) { return Of[any](true) }, KindBool},
		{"value", func() (Value, error) { return Of(MaxKey()) }, KindMaxKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.in()
			if err != nil {
				t.Fatalf("Of() error: %v", err)
			}
			if v.Kind() != tt.kind {
				t.Errorf("Of() kind = %s, want %s", v.Kind(), tt.kind)
			}
		})
	}

	v, _ := Of(ts)
	if v.UTCDate() != 1700000000123 {
		t.Errorf("Of(time).UTCDate() = %d", v.UTCDate())
	}
}

func TestOf_Unsupported(t *testing.T) {
	if _, err := Of(make(chan int)); !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("Of(chan) error = %v, want ErrUnsupportedValue", err)
	}
	if _, err := Of(map[float64]int{1: 1}); !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("Of(map[float64]) error = %v, want ErrUnsupportedValue", err)
	}
	if _, err := Of([]any{1, func() {}}); !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("Of([]any{func}) error = %v, want ErrUnsupportedValue", err)
	}
}

func TestOf_Cycle(t *testing.T) {
	type loop struct {
		Next *loop
	}
	l := &loop{}
	l.Next = l
	if _, err := Of(l); !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("Of(cycle) error = %v, want ErrDepthExceeded", err)
	}
}
