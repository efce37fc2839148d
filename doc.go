// Package jason renders binary-encoded, semi-structured documents as JSON.
//
// Documents are read through the Value interface, a read-only view that
// source formats implement without materializing a tree: see the bson,
// msgpack and yaml subpackages. The root package also offers an in-memory
// implementation built with constructors such as Object, Array and Field,
// or from Go values with Of.
//
// # Dumping
//
// A Dumper walks a Value and writes JSON text into a Sink:
//
//	buf := &jason.Buffer{}
//	d := jason.NewDumper(buf, jason.WithPretty())
//	if err := d.Dump(doc); err != nil {
//	    return err
//	}
//	fmt.Println(buf.String())
//
// Marshal is the one-call form returning the bytes of a compact document.
//
// Object entries are written in stored order and duplicates are kept.
// Integers are written exactly over their full 64-bit range and doubles
// in their shortest round-trip form. Strings are escaped byte by byte;
// multi-byte UTF-8 sequences are copied through, and a sequence cut short
// by the end of the string fails the dump with ErrInvalidUTF8.
//
// # Unsupported values
//
// None, UTCDate, MinKey, MaxKey, Binary, BCD, Custom and non-finite
// doubles have no JSON form. Under StrategyFail, the default, the dump
// stops with ErrUnsupportedValue; StrategyNullify writes null instead.
// A Hook sees every node before the dumper does and may write its own
// rendering, which is how callers give such values a JSON form:
//
//	jason.WithHook(func(sink jason.Sink, v, parent jason.Value) bool {
//	    if v.Kind() != jason.KindUTCDate {
//	        return false
//	    }
//	    jason.AppendInt(sink, v.UTCDate())
//	    return true
//	})
//
// # Errors
//
// All dump failures are *DumpError values wrapping one of the sentinel
// errors; use errors.Is to test for them. Output written before a failure
// stays in the sink.
//
// # Exporting
//
// An Exporter pairs a Decoder for a source format with an Encoder, usually
// the one from the json subpackage, and emits capitan signals around each
// export:
//
//	exp := jason.NewExporter(bson.New(), json.New())
//	out, err := exp.Export(ctx, raw)
package jason
