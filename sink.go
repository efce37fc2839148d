package jason

// Sink is an append-only byte buffer the dumper writes into.
//
// A Sink is not safe for concurrent use. Output written by a failed dump
// stays in the sink until Reset is called.
type Sink interface {
	// Grow ensures room for n more bytes.
	Grow(n int)
	Append(p []byte)
	AppendByte(c byte)
	AppendString(s string)
	// Reset discards all buffered bytes.
	Reset()
}

// Buffer is a growable in-memory Sink.
// The zero value is an empty buffer ready to use.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a Buffer with room for size bytes.
func NewBuffer(size int) *Buffer {
	return &Buffer{buf: make([]byte, 0, size)}
}

// Grow ensures room for n more bytes.
func (b *Buffer) Grow(n int) {
	if n <= cap(b.buf)-len(b.buf) {
		return
	}
	grown := make([]byte, len(b.buf), 2*cap(b.buf)+n)
	copy(grown, b.buf)
	b.buf = grown
}

func (b *Buffer) Append(p []byte) { b.buf = append(b.buf, p...) }

func (b *Buffer) AppendByte(c byte) { b.buf = append(b.buf, c) }

func (b *Buffer) AppendString(s string) { b.buf = append(b.buf, s...) }

// Reset discards the contents but keeps the allocated capacity.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

// Bytes returns the buffered bytes. The slice aliases the buffer until the
// next write.
func (b *Buffer) Bytes() []byte { return b.buf }

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int { return len(b.buf) }

// String returns the buffered bytes as a string.
func (b *Buffer) String() string { return string(b.buf) }
