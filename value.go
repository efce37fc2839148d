package jason

import "math"

// Value is a read-only view over one node of a document.
//
// Only the accessors matching Kind are meaningful: Len, At, KeyAt and
// ValueAt for containers, the typed getters for scalars and Target for
// External. Accessors that do not match the kind return zero values.
// Implementations must not change while a dump is in progress.
type Value interface {
	Kind() Kind

	// Len returns the number of elements of an Array or entries of an Object.
	Len() int
	// At returns the i-th element of an Array.
	At(i int) Value
	// KeyAt returns the key of the i-th Object entry, a String value.
	KeyAt(i int) Value
	// ValueAt returns the value of the i-th Object entry.
	ValueAt(i int) Value

	Bool() bool
	Double() float64
	Int() int64
	UInt() uint64
	SmallInt() int64
	// UTCDate returns milliseconds since the Unix epoch.
	UTCDate() int64
	// Bytes returns the raw payload of String, Binary, BCD and Custom values.
	// String payloads are not guaranteed to be valid UTF-8.
	Bytes() []byte
	// Target returns the value an External points to.
	Target() Value
}

// Entry is one key/value pair of an Object.
type Entry struct {
	Key   Value
	Value Value
}

// Field returns an Entry with a string key.
func Field(key string, v Value) Entry {
	return Entry{Key: String(key), Value: v}
}

// node is the in-memory Value implementation.
type node struct {
	kind   Kind
	bits   uint64
	data   []byte
	items  []Value // elements, or keys and values interleaved for objects
	target Value
}

var (
	noneValue   = &node{kind: KindNone}
	nullValue   = &node{kind: KindNull}
	trueValue   = &node{kind: KindBool, bits: 1}
	falseValue  = &node{kind: KindBool}
	minKeyValue = &node{kind: KindMinKey}
	maxKeyValue = &node{kind: KindMaxKey}
)

// None returns the absent value. It has no JSON equivalent.
func None() Value { return noneValue }

// Null returns the null value.
func Null() Value { return nullValue }

// Bool returns a boolean value.
func Bool(b bool) Value {
	if b {
		return trueValue
	}
	return falseValue
}

// Array returns an array holding elems in order.
func Array(elems ...Value) Value {
	return &node{kind: KindArray, items: elems}
}

// Object returns an object holding entries in the given order.
// Keys are neither sorted nor deduplicated.
func Object(entries ...Entry) Value {
	items := make([]Value, 0, 2*len(entries))
	for _, e := range entries {
		items = append(items, e.Key, e.Value)
	}
	return &node{kind: KindObject, items: items}
}

// Double returns a floating point value.
func Double(f float64) Value {
	return &node{kind: KindDouble, bits: math.Float64bits(f)}
}

// Int returns a signed 64-bit integer value.
func Int(i int64) Value {
	return &node{kind: KindInt, bits: uint64(i)}
}

// UInt returns an unsigned 64-bit integer value.
func UInt(u uint64) Value {
	return &node{kind: KindUInt, bits: u}
}

// SmallInt returns a compact integer. Its magnitude must not exceed 9.
func SmallInt(i int64) Value {
	return &node{kind: KindSmallInt, bits: uint64(i)}
}

// UTCDate returns a date value in milliseconds since the Unix epoch.
func UTCDate(ms int64) Value {
	return &node{kind: KindUTCDate, bits: uint64(ms)}
}

// String returns a string value.
func String(s string) Value {
	return &node{kind: KindString, data: []byte(s)}
}

// StringBytes returns a string value over b without copying it.
// b may hold arbitrary bytes.
func StringBytes(b []byte) Value {
	return &node{kind: KindString, data: b}
}

// Binary returns an opaque byte blob.
func Binary(b []byte) Value {
	return &node{kind: KindBinary, data: b}
}

// BCD returns a packed decimal value.
func BCD(b []byte) Value {
	return &node{kind: KindBCD, data: b}
}

// Custom returns an application specific value.
func Custom(b []byte) Value {
	return &node{kind: KindCustom, data: b}
}

// External returns an indirection to target.
func External(target Value) Value {
	return &node{kind: KindExternal, target: target}
}

// MinKey returns the value that sorts before all others.
func MinKey() Value { return minKeyValue }

// MaxKey returns the value that sorts after all others.
func MaxKey() Value { return maxKeyValue }

func (n *node) Kind() Kind { return n.kind }

func (n *node) Len() int {
	switch n.kind {
	case KindArray:
		return len(n.items)
	case KindObject:
		return len(n.items) / 2
	}
	return 0
}

func (n *node) At(i int) Value {
	if n.kind != KindArray {
		return nil
	}
	return n.items[i]
}

func (n *node) KeyAt(i int) Value {
	if n.kind != KindObject {
		return nil
	}
	return n.items[2*i]
}

func (n *node) ValueAt(i int) Value {
	if n.kind != KindObject {
		return nil
	}
	return n.items[2*i+1]
}

func (n *node) Bool() bool { return n.kind == KindBool && n.bits != 0 }

func (n *node) Double() float64 {
	if n.kind != KindDouble {
		return 0
	}
	return math.Float64frombits(n.bits)
}

func (n *node) Int() int64 {
	if n.kind != KindInt {
		return 0
	}
	return int64(n.bits)
}

func (n *node) UInt() uint64 {
	if n.kind != KindUInt {
		return 0
	}
	return n.bits
}

func (n *node) SmallInt() int64 {
	if n.kind != KindSmallInt {
		return 0
	}
	return int64(n.bits)
}

func (n *node) UTCDate() int64 {
	if n.kind != KindUTCDate {
		return 0
	}
	return int64(n.bits)
}

func (n *node) Bytes() []byte { return n.data }

func (n *node) Target() Value { return n.target }
