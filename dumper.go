package jason

import (
	"math"
	"sync"
)

// Dumper renders Values as JSON text into a Sink.
//
// Every call walks the document with fresh state; the Dumper only tracks
// the current indentation so a Hook can Append nested values. A Dumper and
// its Sink must not be used by concurrent calls, but distinct Dumpers over
// distinct sinks need no coordination.
type Dumper struct {
	sink Sink
	cfg  config

	// Indentation level of the node being visited while a walk runs.
	level   int
	walking bool
}

// NewDumper creates a Dumper writing into sink.
func NewDumper(sink Sink, opts ...Option) *Dumper {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Dumper{sink: sink, cfg: cfg}
}

// SetHook registers or, with nil, removes the interception hook.
// Returns the dumper for chaining.
func (d *Dumper) SetHook(h Hook) *Dumper {
	d.cfg.hook = h
	return d
}

// Sink returns the sink the dumper writes into.
func (d *Dumper) Sink() Sink {
	return d.sink
}

// Strategy returns the configured unsupported-value strategy.
func (d *Dumper) Strategy() Strategy {
	return d.cfg.strategy
}

// Dump writes exactly one JSON document for v, starting at indentation zero.
func (d *Dumper) Dump(v Value) error {
	return d.walk(v, 0)
}

// Append writes v after whatever the sink already holds without resetting
// the indentation. Outside a dump it starts at the configured level; called
// from a Hook it continues at the level of the intercepted node, so
// replacement subtrees nest like the values they stand in for. Several root
// values may be appended in a row.
func (d *Dumper) Append(v Value) error {
	if d.walking {
		return d.walk(v, d.level)
	}
	return d.walk(v, d.cfg.indent)
}

// AppendString writes b as a quoted, escaped JSON string literal.
func (d *Dumper) AppendString(b []byte) error {
	return appendQuoted(d.sink, b, d.cfg.escapeSlash)
}

// Reset clears the sink.
func (d *Dumper) Reset() {
	d.sink.Reset()
}

// Dump writes v into sink using the compact layout.
func Dump(v Value, sink Sink, strategy Strategy) error {
	return NewDumper(sink, WithStrategy(strategy)).Dump(v)
}

// Marshal returns the JSON text of v.
func Marshal(v Value, opts ...Option) ([]byte, error) {
	buf := &Buffer{}
	if err := NewDumper(buf, opts...).Dump(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Dumper) walk(v Value, base int) error {
	level, walking := d.level, d.walking
	w := walkerPool.Get().(*walker)
	w.dumper, w.sink, w.cfg, w.base = d, d.sink, &d.cfg, base
	err := w.run(v)
	w.release()
	d.level, d.walking = level, walking
	return err
}

// frameState tracks progress through the current container entry.
type frameState uint8

const (
	stateNext  frameState = iota // entry i not started
	stateKey                     // key of entry i written, value pending
	stateEntry                   // entry i written
)

// frame is one open container on the work stack.
type frame struct {
	node   Value
	object bool
	n      int
	i      int
	state  frameState
}

// walker holds the state of a single dump.
type walker struct {
	dumper  *Dumper
	sink    Sink
	cfg     *config
	base    int
	stack   []frame
	scratch [32]byte
}

var walkerPool = sync.Pool{
	New: func() any { return &walker{stack: make([]frame, 0, 16)} },
}

func (w *walker) release() {
	clear(w.stack)
	w.stack = w.stack[:0]
	w.dumper, w.sink, w.cfg = nil, nil, nil
	walkerPool.Put(w)
}

// run renders root, descending into containers through the work stack.
func (w *walker) run(root Value) error {
	if err := w.visit(root, nil); err != nil {
		return err
	}
	pretty := w.cfg.pretty
	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		f := &w.stack[top]

		switch f.state {
		case stateKey:
			f.state = stateEntry
			if pretty {
				w.sink.AppendString(" : ")
			} else {
				w.sink.AppendByte(':')
			}
			if err := w.visit(f.node.ValueAt(f.i), f.node); err != nil {
				return err
			}

		case stateEntry:
			f.i++
			f.state = stateNext
			if pretty {
				if f.i < f.n {
					w.sink.AppendByte(',')
				}
				w.sink.AppendByte('\n')
			}

		default:
			if f.i == f.n {
				closing := byte(']')
				if f.object {
					closing = '}'
				}
				w.stack[top] = frame{}
				w.stack = w.stack[:top]
				if pretty {
					w.indent(w.base + top)
				}
				w.sink.AppendByte(closing)
				continue
			}
			if pretty {
				w.indent(w.base + top + 1)
			} else if f.i > 0 {
				w.sink.AppendByte(',')
			}
			parent := f.node
			var child Value
			if f.object {
				f.state = stateKey
				child = parent.KeyAt(f.i)
			} else {
				f.state = stateEntry
				child = parent.At(f.i)
			}
			if err := w.visit(child, parent); err != nil {
				return err
			}
		}
	}
	return nil
}

// visit renders a scalar or opens a container by pushing a frame.
func (w *walker) visit(v, parent Value) error {
	for hops := 0; ; hops++ {
		if v == nil {
			return newKindError(ErrInternal, KindNone)
		}
		if w.cfg.hook != nil {
			w.dumper.level, w.dumper.walking = w.base+len(w.stack), true
			if w.cfg.hook(w.sink, v, parent) {
				return nil
			}
		}

		switch k := v.Kind(); k {
		case KindNull:
			w.sink.AppendString("null")

		case KindBool:
			if v.Bool() {
				w.sink.AppendString("true")
			} else {
				w.sink.AppendString("false")
			}

		case KindArray, KindObject:
			return w.open(v, k)

		case KindDouble:
			f := v.Double()
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return w.cfg.strategy.handle(w.sink, k)
			}
			w.sink.Append(w.cfg.formatDouble(w.scratch[:0], f))

		case KindInt, KindUInt, KindSmallInt:
			return appendInteger(w.sink, v)

		case KindString:
			return appendQuoted(w.sink, v.Bytes(), w.cfg.escapeSlash)

		case KindExternal:
			// The target is rendered detached from the External's parent.
			if hops >= w.cfg.maxDepth {
				return newDepthError(k, w.cfg.maxDepth)
			}
			v, parent = v.Target(), nil
			continue

		default:
			return w.cfg.strategy.handle(w.sink, k)
		}
		return nil
	}
}

func (w *walker) open(v Value, k Kind) error {
	if len(w.stack) >= w.cfg.maxDepth {
		return newDepthError(k, w.cfg.maxDepth)
	}
	if k == KindObject {
		w.sink.AppendByte('{')
	} else {
		w.sink.AppendByte('[')
	}
	if w.cfg.pretty {
		w.sink.AppendByte('\n')
	}
	w.stack = append(w.stack, frame{node: v, object: k == KindObject, n: v.Len()})
	return nil
}

// indent writes two spaces per level.
func (w *walker) indent(level int) {
	w.sink.Grow(2 * level)
	for i := 0; i < level; i++ {
		w.sink.AppendString("  ")
	}
}
