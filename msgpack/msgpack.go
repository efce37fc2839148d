// Package msgpack decodes MessagePack documents into jason values.
package msgpack

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
	"github.com/zoobzio/jason"
)

// timestampExt is the extension type reserved for timestamps.
const timestampExt = -1

// ErrTruncated is returned when a length prefix promises more bytes than
// the document holds.
var ErrTruncated = errors.New("msgpack: length exceeds input")

// msgpackDecoder implements jason.Decoder for MessagePack.
type msgpackDecoder struct{}

// New returns a MessagePack decoder.
func New() jason.Decoder {
	return &msgpackDecoder{}
}

// ContentType returns the MIME type for MessagePack.
func (d *msgpackDecoder) ContentType() string {
	return "application/msgpack"
}

// Decode reads one MessagePack value from data.
// Map entries keep their encoded order.
func (d *msgpackDecoder) Decode(data []byte) (jason.Value, error) {
	r := bytes.NewReader(data)
	in := &input{dec: msgpack.NewDecoder(r), r: r}
	v, err := in.value(0)
	if err != nil {
		return nil, fmt.Errorf("msgpack decode: %w", err)
	}
	return v, nil
}

// input pairs the decoder with its reader so declared lengths can be
// checked against the bytes left before anything is allocated.
type input struct {
	dec *msgpack.Decoder
	r   *bytes.Reader
}

// claim rejects a declared length that cannot fit in the remaining input,
// each unit taking at least size bytes.
func (in *input) claim(n, size int) error {
	if n < 0 || n > in.r.Len()/size {
		return fmt.Errorf("%w: declared length %d exceeds %d remaining bytes",
			ErrTruncated, n, in.r.Len())
	}
	return nil
}

func (in *input) value(depth int) (jason.Value, error) {
	dec := in.dec
	if depth > jason.DefaultMaxDepth {
		return nil, jason.ErrDepthExceeded
	}

	c, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}

	switch {
	case c == msgpcode.Nil:
		return jason.Null(), dec.DecodeNil()

	case c == msgpcode.False || c == msgpcode.True:
		b, err := dec.DecodeBool()
		return jason.Bool(b), err

	case msgpcode.IsFixedNum(c):
		i, err := dec.DecodeInt64()
		if err != nil {
			return nil, err
		}
		if i >= -9 && i <= 9 {
			return jason.SmallInt(i), nil
		}
		if i < 0 {
			return jason.Int(i), nil
		}
		return jason.UInt(uint64(i)), nil

	case c == msgpcode.Uint8 || c == msgpcode.Uint16 || c == msgpcode.Uint32 || c == msgpcode.Uint64:
		u, err := dec.DecodeUint64()
		return jason.UInt(u), err

	case c == msgpcode.Int8 || c == msgpcode.Int16 || c == msgpcode.Int32 || c == msgpcode.Int64:
		i, err := dec.DecodeInt64()
		return jason.Int(i), err

	case c == msgpcode.Float || c == msgpcode.Double:
		f, err := dec.DecodeFloat64()
		return jason.Double(f), err

	case msgpcode.IsString(c):
		b, err := dec.DecodeBytes()
		return jason.StringBytes(b), err

	case msgpcode.IsBin(c):
		b, err := dec.DecodeBytes()
		return jason.Binary(b), err

	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		return in.array(depth)

	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		return in.object(depth)

	case msgpcode.IsExt(c):
		return in.ext()
	}
	return nil, fmt.Errorf("unexpected code %x", c)
}

func (in *input) array(depth int) (jason.Value, error) {
	n, err := in.dec.DecodeArrayLen()
	if err != nil {
		return nil, err
	}
	if err := in.claim(n, 1); err != nil {
		return nil, err
	}
	elems := make([]jason.Value, 0, n)
	for i := 0; i < n; i++ {
		v, err := in.value(depth + 1)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return jason.Array(elems...), nil
}

func (in *input) object(depth int) (jason.Value, error) {
	n, err := in.dec.DecodeMapLen()
	if err != nil {
		return nil, err
	}
	if err := in.claim(n, 2); err != nil {
		return nil, err
	}
	entries := make([]jason.Entry, 0, n)
	for i := 0; i < n; i++ {
		k, err := in.value(depth + 1)
		if err != nil {
			return nil, err
		}
		if k.Kind() != jason.KindString {
			return nil, fmt.Errorf("%w: %s map key", jason.ErrUnsupportedValue, k.Kind())
		}
		v, err := in.value(depth + 1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, jason.Entry{Key: k, Value: v})
	}
	return jason.Object(entries...), nil
}

func (in *input) ext() (jason.Value, error) {
	extID, extLen, err := in.dec.DecodeExtHeader()
	if err != nil {
		return nil, err
	}
	if err := in.claim(extLen, 1); err != nil {
		return nil, err
	}
	payload := make([]byte, extLen)
	if err := in.dec.ReadFull(payload); err != nil {
		return nil, err
	}
	if extID != timestampExt {
		return jason.Custom(payload), nil
	}
	ms, err := timestampMillis(payload)
	if err != nil {
		return nil, err
	}
	return jason.UTCDate(ms), nil
}

// timestampMillis decodes the 32, 64 and 96 bit timestamp layouts.
func timestampMillis(b []byte) (int64, error) {
	switch len(b) {
	case 4:
		return int64(binary.BigEndian.Uint32(b)) * 1000, nil
	case 8:
		v := binary.BigEndian.Uint64(b)
		nsec := int64(v >> 34)
		sec := int64(v & 0x00000003ffffffff)
		return sec*1000 + nsec/1e6, nil
	case 12:
		nsec := int64(binary.BigEndian.Uint32(b))
		sec := int64(binary.BigEndian.Uint64(b[4:]))
		return sec*1000 + nsec/1e6, nil
	}
	return 0, fmt.Errorf("invalid timestamp length %d", len(b))
}
