package jason

// uintPowers are the thresholds 10^19 down to 10^1.
var uintPowers = [...]uint64{
	10000000000000000000,
	1000000000000000000,
	100000000000000000,
	10000000000000000,
	1000000000000000,
	100000000000000,
	10000000000000,
	1000000000000,
	100000000000,
	10000000000,
	1000000000,
	100000000,
	10000000,
	1000000,
	100000,
	10000,
	1000,
	100,
	10,
}

// intPowers are the thresholds 10^18 down to 10^1.
var intPowers = [...]int64{
	1000000000000000000,
	100000000000000000,
	10000000000000000,
	1000000000000000,
	100000000000000,
	10000000000000,
	1000000000000,
	100000000000,
	10000000000,
	1000000000,
	100000000,
	10000000,
	1000000,
	100000,
	10000,
	1000,
	100,
	10,
}

// minInt64Magnitude is the magnitude of math.MinInt64, whose negation overflows.
const minInt64Magnitude = "9223372036854775808"

// AppendUInt writes the decimal form of v to s.
// Thresholds above v are skipped, so no leading zeros are written.
func AppendUInt(s Sink, v uint64) {
	for _, p := range uintPowers {
		if p <= v {
			s.AppendByte('0' + byte(v/p%10))
		}
	}
	s.AppendByte('0' + byte(v%10))
}

// AppendInt writes the decimal form of v to s.
func AppendInt(s Sink, v int64) {
	if v < 0 {
		s.AppendByte('-')
		if v == -1<<63 {
			s.AppendString(minInt64Magnitude)
			return
		}
		v = -v
	}
	for _, p := range intPowers {
		if p <= v {
			s.AppendByte('0' + byte(v/p%10))
		}
	}
	s.AppendByte('0' + byte(v%10))
}

// AppendSmallInt writes a compact integer to s.
// A magnitude above 9 breaks the SmallInt contract and yields ErrInternal.
func AppendSmallInt(s Sink, v int64) error {
	if v < -9 || v > 9 {
		return newKindError(ErrInternal, KindSmallInt)
	}
	if v < 0 {
		s.AppendByte('-')
		v = -v
	}
	s.AppendByte('0' + byte(v))
	return nil
}

// appendInteger renders an Int, UInt or SmallInt value.
func appendInteger(s Sink, v Value) error {
	switch k := v.Kind(); k {
	case KindUInt:
		AppendUInt(s, v.UInt())
	case KindInt:
		AppendInt(s, v.Int())
	case KindSmallInt:
		return AppendSmallInt(s, v.SmallInt())
	default:
		return newKindError(ErrInternal, k)
	}
	return nil
}
