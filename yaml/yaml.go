// Package yaml exposes YAML documents as jason values.
package yaml

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/zoobzio/jason"
	"gopkg.in/yaml.v3"
)

// yamlDecoder implements jason.Decoder for YAML.
type yamlDecoder struct{}

// New returns a YAML decoder.
func New() jason.Decoder {
	return &yamlDecoder{}
}

// ContentType returns the MIME type for YAML.
func (d *yamlDecoder) ContentType() string {
	return "application/yaml"
}

// Decode parses the first document in data and returns a view over it.
// An empty input decodes to null.
func (d *yamlDecoder) Decode(data []byte) (jason.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	if doc.Kind == 0 {
		return jason.Null(), nil
	}
	return View(&doc), nil
}

// View returns a read-only view over a YAML node tree.
//
// Mappings keep their key order, aliases become External values pointing at
// the anchored node, and scalars are typed by their resolved tag.
func View(n *yaml.Node) jason.Value {
	for n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	v := &view{n: n}
	v.resolve()
	return v
}

// view is a jason.Value over one YAML node. Scalars are parsed once.
type view struct {
	n    *yaml.Node
	kind jason.Kind
	b    bool
	f    float64
	i    int64
	u    uint64
	ms   int64
	data []byte
}

func (v *view) resolve() {
	switch v.n.Kind {
	case yaml.MappingNode:
		v.kind = jason.KindObject
		return
	case yaml.SequenceNode:
		v.kind = jason.KindArray
		return
	case yaml.AliasNode:
		v.kind = jason.KindExternal
		return
	case yaml.ScalarNode:
	default:
		v.kind = jason.KindNone
		return
	}

	v.kind = jason.KindCustom
	switch v.n.ShortTag() {
	case "!!null":
		v.kind = jason.KindNull
	case "!!bool":
		if v.n.Decode(&v.b) == nil {
			v.kind = jason.KindBool
		}
	case "!!int":
		if v.n.Decode(&v.i) == nil {
			v.kind = jason.KindInt
		} else if v.n.Decode(&v.u) == nil {
			v.kind = jason.KindUInt
		}
	case "!!float":
		if v.n.Decode(&v.f) == nil {
			v.kind = jason.KindDouble
		}
	case "!!str":
		v.kind = jason.KindString
		v.data = []byte(v.n.Value)
	case "!!binary":
		if data, err := base64.StdEncoding.DecodeString(stripSpace(v.n.Value)); err == nil {
			v.kind = jason.KindBinary
			v.data = data
		}
	case "!!timestamp":
		var tm time.Time
		if v.n.Decode(&tm) == nil {
			v.kind = jason.KindUTCDate
			v.ms = tm.UnixMilli()
		}
	default:
		v.data = []byte(v.n.Value)
	}
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func (v *view) Kind() jason.Kind { return v.kind }

func (v *view) Len() int {
	switch v.kind {
	case jason.KindArray:
		return len(v.n.Content)
	case jason.KindObject:
		return len(v.n.Content) / 2
	}
	return 0
}

func (v *view) At(i int) jason.Value {
	return View(v.n.Content[i])
}

// KeyAt returns scalar keys as strings whatever their tag, since JSON only
// has string keys. Collection keys have no JSON form and come back as Custom.
func (v *view) KeyAt(i int) jason.Value {
	k := v.n.Content[2*i]
	for k.Kind == yaml.AliasNode && k.Alias != nil {
		k = k.Alias
	}
	if k.Kind != yaml.ScalarNode {
		return jason.Custom(nil)
	}
	return jason.String(k.Value)
}

func (v *view) ValueAt(i int) jason.Value {
	return View(v.n.Content[2*i+1])
}

func (v *view) Bool() bool { return v.b }
func (v *view) Double() float64 { return v.f }
func (v *view) Int() int64 { return v.i }
func (v *view) UInt() uint64 { return v.u }
func (v *view) SmallInt() int64 { return 0 }
func (v *view) UTCDate() int64 { return v.ms }
func (v *view) Bytes() []byte { return v.data }

func (v *view) Target() jason.Value {
	if v.n.Alias == nil {
		return jason.None()
	}
	return View(v.n.Alias)
}
