package jason

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

func init() {
	sentinel.Tag("jason")
}

var (
	valueType = reflect.TypeFor[Value]()
	timeType  = reflect.TypeFor[time.Time]()
)

// fieldPlan describes how one struct field becomes an Object entry.
type fieldPlan struct {
	index     []int
	name      string
	omitEmpty bool
}

var fieldPlans sync.Map // reflect.Type -> []fieldPlan

// Of builds an in-memory Value from a Go value.
//
// Struct fields keep their declaration order and are renamed or skipped
// with the `jason` tag (`jason:"name,omitempty"`, `jason:"-"`). Map entries
// are sorted by key. []byte becomes Binary, time.Time becomes UTCDate and
// nil pointers, slices and maps become Null. Values that already implement
// Value are used as is.
func Of[T any](v T) (Value, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() == reflect.Struct && rt != timeType {
		if _, ok := fieldPlans.Load(rt); !ok {
			meta := sentinel.Scan[T]()
			fieldPlans.Store(rt, plansFromMetadata(rt, meta.Fields))
		}
	}
	return reflectValue(reflect.ValueOf(v), 0)
}

func reflectValue(rv reflect.Value, depth int) (Value, error) {
	if depth > DefaultMaxDepth {
		return nil, newDepthError(KindNone, DefaultMaxDepth)
	}
	if !rv.IsValid() {
		return Null(), nil
	}
	if rv.Type().Implements(valueType) && rv.Kind() != reflect.Interface {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return Null(), nil
		}
		return rv.Interface().(Value), nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return reflectValue(rv.Elem(), depth+1)
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return UInt(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Double(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Binary(rv.Bytes()), nil
		}
		return reflectArray(rv, depth)
	case reflect.Array:
		return reflectArray(rv, depth)
	case reflect.Map:
		if rv.IsNil() {
			return Null(), nil
		}
		return reflectMap(rv, depth)
	case reflect.Struct:
		if rv.Type() == timeType {
			return UTCDate(rv.Interface().(time.Time).UnixMilli()), nil
		}
		return reflectStruct(rv, depth)
	}
	return nil, fmt.Errorf("%w: go type %s", ErrUnsupportedValue, rv.Type())
}

func reflectArray(rv reflect.Value, depth int) (Value, error) {
	elems := make([]Value, rv.Len())
	for i := range elems {
		v, err := reflectValue(rv.Index(i), depth+1)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		elems[i] = v
	}
	return Array(elems...), nil
}

func reflectMap(rv reflect.Value, depth int) (Value, error) {
	type kv struct {
		key string
		val reflect.Value
	}
	pairs := make([]kv, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, err := mapKey(iter.Key())
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, kv{key: key, val: iter.Value()})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	entries := make([]Entry, len(pairs))
	for i, p := range pairs {
		v, err := reflectValue(p.val, depth+1)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", p.key, err)
		}
		entries[i] = Field(p.key, v)
	}
	return Object(entries...), nil
}

func mapKey(k reflect.Value) (string, error) {
	switch k.Kind() {
	case reflect.String:
		return k.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), nil
	}
	return "", fmt.Errorf("%w: map key type %s", ErrUnsupportedValue, k.Type())
}

func reflectStruct(rv reflect.Value, depth int) (Value, error) {
	plans := structPlans(rv.Type())
	entries := make([]Entry, 0, len(plans))
	for _, plan := range plans {
		fv, err := rv.FieldByIndexErr(plan.index)
		if err != nil {
			// Embedded nil pointer; the field does not exist.
			continue
		}
		if plan.omitEmpty && fv.IsZero() {
			continue
		}
		v, err := reflectValue(fv, depth+1)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", plan.name, err)
		}
		entries = append(entries, Field(plan.name, v))
	}
	return Object(entries...), nil
}

// structPlans returns the cached field plans for rt, scanning it on first use.
func structPlans(rt reflect.Type) []fieldPlan {
	if cached, ok := fieldPlans.Load(rt); ok {
		return cached.([]fieldPlan)
	}
	var plans []fieldPlan
	if meta, ok := sentinel.Lookup(rt.String()); ok {
		plans = plansFromMetadata(rt, meta.Fields)
	} else {
		plans = scanFields(rt)
	}
	fieldPlans.Store(rt, plans)
	return plans
}

func plansFromMetadata(rt reflect.Type, fields []sentinel.FieldMetadata) []fieldPlan {
	plans := make([]fieldPlan, 0, len(fields))
	for _, f := range fields {
		if !rt.FieldByIndex(f.Index).IsExported() {
			continue
		}
		if plan, ok := newFieldPlan(f.Name, f.Index, f.Tags["jason"]); ok {
			plans = append(plans, plan)
		}
	}
	return plans
}

func scanFields(rt reflect.Type) []fieldPlan {
	plans := make([]fieldPlan, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if plan, ok := newFieldPlan(sf.Name, sf.Index, sf.Tag.Get("jason")); ok {
			plans = append(plans, plan)
		}
	}
	return plans
}

func newFieldPlan(name string, index []int, tag string) (fieldPlan, bool) {
	if tag == "-" {
		return fieldPlan{}, false
	}
	plan := fieldPlan{index: index, name: name}
	tagName, opts, _ := strings.Cut(tag, ",")
	if tagName != "" {
		plan.name = tagName
	}
	plan.omitEmpty = opts == "omitempty"
	return plan, true
}
