package jason

import (
	"fmt"
	"reflect"
)

// DefaultMaxDepth bounds container nesting and External chains.
const DefaultMaxDepth = 1000

// Hook intercepts the rendering of a node. It receives the sink, the node
// and its parent container, or nil for roots and External targets.
// Returning true marks the node as fully written; the dumper then skips it.
type Hook func(sink Sink, v, parent Value) bool

// config holds dumper settings. It is immutable once a dump starts.
type config struct {
	strategy     Strategy
	pretty       bool
	hook         Hook
	maxDepth     int
	escapeSlash  bool
	formatDouble DoubleFormatter
	indent       int
}

func defaultConfig() config {
	return config{
		strategy:     StrategyFail,
		maxDepth:     DefaultMaxDepth,
		escapeSlash:  true,
		formatDouble: ShortestDouble,
	}
}

// Option configures a Dumper.
type Option func(*config)

// WithStrategy sets the handling of values that have no JSON equivalent.
func WithStrategy(s Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// WithPretty selects the indented layout.
func WithPretty() Option {
	return func(c *config) { c.pretty = true }
}

// WithHook registers an interception hook.
func WithHook(h Hook) Option {
	return func(c *config) { c.hook = h }
}

// WithMaxDepth limits container nesting. Values below 1 keep the default.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithEscapeSlash controls whether '/' is written as "\/". It is on by default.
func WithEscapeSlash(escape bool) Option {
	return func(c *config) { c.escapeSlash = escape }
}

// WithDoubleFormatter replaces the shortest round-trip double formatter.
func WithDoubleFormatter(f DoubleFormatter) Option {
	return func(c *config) {
		if f != nil {
			c.formatDouble = f
		}
	}
}

// WithIndentation sets the indentation level Append starts at in the
// pretty layout. Dump always starts at level zero.
func WithIndentation(level int) Option {
	return func(c *config) {
		if level >= 0 {
			c.indent = level
		}
	}
}

// ConfigKey identifies the output opts produce. Two option lists with the
// same key render every value identically. ok is false when opts install a
// Hook or a custom DoubleFormatter, since functions cannot be compared.
func ConfigKey(opts ...Option) (key string, ok bool) {
	c := defaultConfig()
	for _, o := range opts {
		o(&c)
	}
	if c.hook != nil || reflect.ValueOf(c.formatDouble).Pointer() != reflect.ValueOf(ShortestDouble).Pointer() {
		return "", false
	}
	return fmt.Sprintf("strategy=%d,pretty=%t,depth=%d,slash=%t,indent=%d",
		c.strategy, c.pretty, c.maxDepth, c.escapeSlash, c.indent), true
}
