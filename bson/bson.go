// Package bson exposes BSON documents as jason values.
package bson

import (
	"fmt"

	"github.com/zoobzio/jason"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonDecoder implements jason.Decoder for BSON.
type bsonDecoder struct{}

// New returns a BSON decoder.
func New() jason.Decoder {
	return &bsonDecoder{}
}

// ContentType returns the MIME type for BSON.
func (d *bsonDecoder) ContentType() string {
	return "application/bson"
}

// Decode validates data and returns a view over its root document.
// The view reads data in place; data must not change while it is in use.
func (d *bsonDecoder) Decode(data []byte) (jason.Value, error) {
	return View(bson.Raw(data))
}

// View validates doc and returns a read-only view over it.
func View(doc bson.Raw) (jason.Value, error) {
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bson document: %w", err)
	}
	return newView(bson.RawValue{Type: bson.TypeEmbeddedDocument, Value: doc}), nil
}

// view is a jason.Value over one BSON value.
type view struct {
	rv    bson.RawValue
	elems []bson.RawElement // embedded documents
	vals  []bson.RawValue   // arrays
}

func newView(rv bson.RawValue) *view {
	v := &view{rv: rv}
	switch rv.Type {
	case bson.TypeEmbeddedDocument:
		// Validated up front, so iteration cannot fail.
		v.elems, _ = rv.Document().Elements()
	case bson.TypeArray:
		v.vals, _ = rv.Array().Values()
	}
	return v
}

func (v *view) Kind() jason.Kind {
	switch v.rv.Type {
	case bson.TypeDouble:
		return jason.KindDouble
	case bson.TypeString, bson.TypeSymbol:
		return jason.KindString
	case bson.TypeEmbeddedDocument:
		return jason.KindObject
	case bson.TypeArray:
		return jason.KindArray
	case bson.TypeBinary:
		return jason.KindBinary
	case bson.TypeUndefined:
		return jason.KindNone
	case bson.TypeBoolean:
		return jason.KindBool
	case bson.TypeDateTime:
		return jason.KindUTCDate
	case bson.TypeNull:
		return jason.KindNull
	case bson.TypeInt32, bson.TypeInt64:
		return jason.KindInt
	case bson.TypeDecimal128:
		return jason.KindBCD
	case bson.TypeMinKey:
		return jason.KindMinKey
	case bson.TypeMaxKey:
		return jason.KindMaxKey
	}
	return jason.KindCustom
}

func (v *view) Len() int {
	if v.rv.Type == bson.TypeArray {
		return len(v.vals)
	}
	return len(v.elems)
}

func (v *view) At(i int) jason.Value {
	return newView(v.vals[i])
}

func (v *view) KeyAt(i int) jason.Value {
	return jason.String(v.elems[i].Key())
}

func (v *view) ValueAt(i int) jason.Value {
	return newView(v.elems[i].Value())
}

func (v *view) Bool() bool {
	return v.rv.Type == bson.TypeBoolean && v.rv.Boolean()
}

func (v *view) Double() float64 {
	if v.rv.Type != bson.TypeDouble {
		return 0
	}
	return v.rv.Double()
}

func (v *view) Int() int64 {
	switch v.rv.Type {
	case bson.TypeInt32:
		return int64(v.rv.Int32())
	case bson.TypeInt64:
		return v.rv.Int64()
	}
	return 0
}

func (v *view) UInt() uint64 { return 0 }

func (v *view) SmallInt() int64 { return 0 }

func (v *view) UTCDate() int64 {
	if v.rv.Type != bson.TypeDateTime {
		return 0
	}
	return v.rv.DateTime()
}

// Bytes returns string contents without copying. A BSON string is an int32
// length, the bytes and a trailing NUL.
func (v *view) Bytes() []byte {
	switch v.rv.Type {
	case bson.TypeString, bson.TypeSymbol:
		return v.rv.Value[4 : len(v.rv.Value)-1]
	case bson.TypeBinary:
		_, data := v.rv.Binary()
		return data
	}
	return v.rv.Value
}

func (v *view) Target() jason.Value { return nil }
