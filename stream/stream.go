// Package stream writes jason values into jsoniter streams.
//
// Sink adapts a *jsoniter.Stream to jason.Sink, and Extension lets a
// jsoniter configuration encode Value fields of ordinary Go structs
// through the dumper.
package stream

import (
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
	"github.com/zoobzio/jason"
)

// Sink appends to the buffer of a jsoniter stream.
// Bytes already flushed to the stream's writer are not affected by Reset.
type Sink struct {
	stream *jsoniter.Stream
}

// NewSink returns a Sink writing into s.
func NewSink(s *jsoniter.Stream) *Sink {
	return &Sink{stream: s}
}

func (k *Sink) Grow(n int) {
	buf := k.stream.Buffer()
	if cap(buf)-len(buf) >= n {
		return
	}
	grown := make([]byte, len(buf), 2*cap(buf)+n)
	copy(grown, buf)
	k.stream.SetBuffer(grown)
}

func (k *Sink) Append(p []byte) {
	k.stream.SetBuffer(append(k.stream.Buffer(), p...))
}

func (k *Sink) AppendByte(c byte) {
	k.stream.SetBuffer(append(k.stream.Buffer(), c))
}

func (k *Sink) AppendString(s string) {
	k.stream.WriteRaw(s)
}

func (k *Sink) Reset() {
	k.stream.SetBuffer(k.stream.Buffer()[:0])
}

// Encode writes v into s. A failure is also recorded as the stream error.
func Encode(s *jsoniter.Stream, v jason.Value, opts ...jason.Option) error {
	err := jason.NewDumper(NewSink(s), opts...).Append(v)
	if err != nil && s.Error == nil {
		s.Error = err
	}
	return err
}

// Value marks a jason value embedded in a Go type encoded by jsoniter.
type Value struct {
	jason.Value
}

// Extension encodes Value through the dumper.
//
// A dump failure is recorded as the stream error, but jsoniter reports
// errors from struct fields as text, so errors.Is no longer matches the
// jason sentinels on the error Marshal returns. Call Encode directly when
// the sentinel matters.
type Extension struct {
	jsoniter.DummyExtension
	opts []jason.Option
}

// NewExtension returns an extension whose dumps use opts.
// Register it with jsoniter.RegisterExtension or API.RegisterExtension.
func NewExtension(opts ...jason.Option) *Extension {
	return &Extension{opts: opts}
}

func (e *Extension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if typ == reflect2.TypeOf(Value{}) {
		return &valueEncoder{opts: e.opts}
	}
	return nil
}

type valueEncoder struct {
	opts []jason.Option
}

func (e *valueEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Value)(ptr).Value == nil
}

func (e *valueEncoder) Encode(ptr unsafe.Pointer, s *jsoniter.Stream) {
	v := (*Value)(ptr)
	if v.Value == nil {
		s.WriteNil()
		return
	}
	_ = Encode(s, v.Value, e.opts...)
}
