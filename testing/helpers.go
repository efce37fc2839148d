// Package testing provides test utilities for jason.
package testing

import (
	"github.com/zoobzio/jason"
)

// Fixture returns a document exercising every JSON-representable kind.
// Its compact rendering is FixtureJSON.
func Fixture() jason.Value {
	return jason.Object(
		jason.Field("null", jason.Null()),
		jason.Field("yes", jason.Bool(true)),
		jason.Field("no", jason.Bool(false)),
		jason.Field("small", jason.SmallInt(-3)),
		jason.Field("int", jason.Int(-9223372036854775808)),
		jason.Field("uint", jason.UInt(18446744073709551615)),
		jason.Field("double", jason.Double(1.5)),
		jason.Field("text", jason.String("a/b \"q\"\n")),
		jason.Field("list", jason.Array(
			jason.Int(1),
			jason.Array(),
			jason.Object(),
		)),
		jason.Field("ref", jason.External(jason.String("target"))),
	)
}

// FixtureJSON is the compact rendering of Fixture.
const FixtureJSON = `{"null":null,"yes":true,"no":false,"small":-3,` +
	`"int":-9223372036854775808,"uint":18446744073709551615,"double":1.5,` +
	`"text":"a\/b \"q\"\n","list":[1,[],{}],"ref":"target"}`

// StripWhitespace removes insignificant whitespace from JSON text.
// Whitespace inside string literals is kept.
func StripWhitespace(b []byte) []byte {
	out := make([]byte, 0, len(b))
	inString, escaped := false, false
	for _, c := range b {
		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '"':
			inString = true
		}
		out = append(out, c)
	}
	return out
}

// Visit is one hook invocation recorded by a Recorder.
type Visit struct {
	Kind       jason.Kind
	HasParent  bool
	ParentKind jason.Kind
}

// Recorder records every node a dump visits.
type Recorder struct {
	Visits []Visit
}

// Hook returns a hook that records visits and never intercepts.
func (r *Recorder) Hook() jason.Hook {
	return func(_ jason.Sink, v, parent jason.Value) bool {
		visit := Visit{Kind: v.Kind(), HasParent: parent != nil}
		if parent != nil {
			visit.ParentKind = parent.Kind()
		}
		r.Visits = append(r.Visits, visit)
		return false
	}
}

// Count returns how many recorded visits were of kind k.
func (r *Recorder) Count(k jason.Kind) int {
	n := 0
	for _, v := range r.Visits {
		if v.Kind == k {
			n++
		}
	}
	return n
}
