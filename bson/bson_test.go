package bson

import (
	"errors"
	"testing"

	"github.com/zoobzio/jason"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNew(t *testing.T) {
	d := New()
	if d == nil {
		t.Error("New() should return non-nil decoder")
	}
}

func TestContentType(t *testing.T) {
	d := New()
	if d.ContentType() != "application/bson" {
		t.Errorf("ContentType() = %q, want %q", d.ContentType(), "application/bson")
	}
}

func mustMarshal(t *testing.T, doc any) []byte {
	t.Helper()
	data, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("bson.Marshal() error: %v", err)
	}
	return data
}

func TestDecodeDump(t *testing.T) {
	data := mustMarshal(t, bson.D{
		{Key: "z", Value: int64(1)},
		{Key: "a", Value: "x/y"},
		{Key: "arr", Value: bson.A{true, nil, 2.5, int32(-7)}},
		{Key: "nested", Value: bson.D{{Key: "k", Value: "v"}}},
	})

	v, err := New().Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	out, err := jason.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := `{"z":1,"a":"x\/y","arr":[true,null,2.5,-7],"nested":{"k":"v"}}`
	if string(out) != want {
		t.Errorf("dump = %s, want %s", out, want)
	}
}

func TestKinds(t *testing.T) {
	dec, err := primitive.ParseDecimal128("1.5")
	if err != nil {
		t.Fatalf("ParseDecimal128() error: %v", err)
	}

	data := mustMarshal(t, bson.D{
		{Key: "date", Value: primitive.DateTime(1000)},
		{Key: "bin", Value: primitive.Binary{Subtype: 0, Data: []byte{1, 2}}},
		{Key: "dec", Value: dec},
		{Key: "min", Value: primitive.MinKey{}},
		{Key: "max", Value: primitive.MaxKey{}},
		{Key: "oid", Value: primitive.NewObjectID()},
	})

	v, err := View(bson.Raw(data))
	if err != nil {
		t.Fatalf("View() error: %v", err)
	}

	want := []jason.Kind{
		jason.KindUTCDate,
		jason.KindBinary,
		jason.KindBCD,
		jason.KindMinKey,
		jason.KindMaxKey,
		jason.KindCustom,
	}
	if v.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", v.Len(), len(want))
	}
	for i, k := range want {
		if got := v.ValueAt(i).Kind(); got != k {
			t.Errorf("ValueAt(%d).Kind() = %s, want %s", i, got, k)
		}
	}

	if got := v.ValueAt(0).UTCDate(); got != 1000 {
		t.Errorf("UTCDate() = %d, want 1000", got)
	}
	if got := v.ValueAt(1).Bytes(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Binary Bytes() = %v, want [1 2]", got)
	}

	_, err = jason.Marshal(v)
	if !errors.Is(err, jason.ErrUnsupportedValue) {
		t.Errorf("Marshal() error = %v, want ErrUnsupportedValue", err)
	}

	out, err := jason.Marshal(v, jason.WithStrategy(jason.StrategyNullify))
	if err != nil {
		t.Fatalf("Marshal() with nullify error: %v", err)
	}
	wantOut := `{"date":null,"bin":null,"dec":null,"min":null,"max":null,"oid":null}`
	if string(out) != wantOut {
		t.Errorf("dump = %s, want %s", out, wantOut)
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, err := New().Decode([]byte("invalid bson"))
	if err == nil {
		t.Error("Decode(invalid) should return error")
	}
}
