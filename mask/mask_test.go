package mask

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/jason"
)

func userDoc() jason.Value {
	return jason.Object(
		jason.Field("id", jason.Int(7)),
		jason.Field("user", jason.Object(
			jason.Field("email", jason.String("alice@example.com")),
			jason.Field("ssn", jason.String("123-45-6789")),
			jason.Field("password", jason.String("hunter2")),
			jason.Field("emails", jason.Array(jason.String("bob@test.org"), jason.Int(1))),
			jason.Field("note", jason.String("kept")),
		)),
	)
}

func TestView(t *testing.T) {
	m, err := New(
		Mask("email", MaskEmail),
		Mask("ssn", MaskSSN),
		Mask("emails", MaskEmail),
		Redact("password", "***"),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	out, err := jason.Marshal(m.View(userDoc()))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := `{"id":7,"user":{"email":"a***@example.com","ssn":"***-**-6789",` +
		`"password":"***","emails":["b***@test.org",1],"note":"kept"}}`
	if string(out) != want {
		t.Errorf("dump = %s\nwant   %s", out, want)
	}
}

func TestViewLeavesSourceUntouched(t *testing.T) {
	m, err := New(Redact("password", "***"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	doc := userDoc()
	if _, err := jason.Marshal(m.View(doc)); err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	out, err := jason.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(out), "hunter2") {
		t.Errorf("source document was modified: %s", out)
	}
}

func TestViewThroughExternal(t *testing.T) {
	m, err := New(Mask("email", MaskEmail))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	doc := jason.Array(jason.External(jason.Object(
		jason.Field("email", jason.String("carol@example.com")),
	)))

	out, err := jason.Marshal(m.View(doc))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if want := `[{"email":"c***@example.com"}]`; string(out) != want {
		t.Errorf("dump = %s, want %s", out, want)
	}
}

func TestSetMasker(t *testing.T) {
	m, err := New(Mask("email", MaskEmail))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	m.SetMasker(MaskEmail, MaskerFunc(func(string) string { return "hidden" }))

	out, err := jason.Marshal(m.View(userDoc()))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(out), `"email":"hidden"`) {
		t.Errorf("custom masker not applied: %s", out)
	}
}

func TestNewUnknownMask(t *testing.T) {
	_, err := New(Mask("x", MaskType("bogus")))
	if !errors.Is(err, ErrUnknownMask) {
		t.Errorf("New() error = %v, want ErrUnknownMask", err)
	}
}

func TestViewHash(t *testing.T) {
	m, err := New(Hash("email", HashSHA256))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	doc := jason.Array(
		jason.Object(jason.Field("email", jason.String("alice@example.com"))),
		jason.Object(jason.Field("email", jason.String("alice@example.com"))),
	)
	v := m.View(doc)

	first := v.At(0).ValueAt(0)
	second := v.At(1).ValueAt(0)
	if string(first.Bytes()) != SHA256Hasher().Hash([]byte("alice@example.com")) {
		t.Errorf("hashed value = %s", first.Bytes())
	}
	if string(first.Bytes()) != string(second.Bytes()) {
		t.Error("equal inputs should hash to equal outputs")
	}
}

func TestNewUnknownHash(t *testing.T) {
	_, err := New(Hash("x", HashAlgo("md5")))
	if !errors.Is(err, ErrUnknownHash) {
		t.Errorf("New() error = %v, want ErrUnknownHash", err)
	}
}

func TestSetHasher(t *testing.T) {
	m, err := New(Hash("id", HashSHA512))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	m.SetHasher(HashSHA512, SHA256Hasher())

	out, err := jason.Marshal(m.View(jason.Object(jason.Field("id", jason.String("42")))))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"id":"` + SHA256Hasher().Hash([]byte("42")) + `"}`
	if string(out) != want {
		t.Errorf("dump = %s, want %s", out, want)
	}
}
