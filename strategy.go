package jason

// Strategy decides what happens to values that have no JSON equivalent:
// None, UTCDate, MinKey, MaxKey, Binary, BCD, Custom and non-finite doubles.
type Strategy uint8

const (
	// StrategyFail aborts the dump with ErrUnsupportedValue. This is the default.
	StrategyFail Strategy = iota

	// StrategyNullify writes null in place of the value and continues.
	StrategyNullify
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyFail:
		return "fail"
	case StrategyNullify:
		return "nullify"
	}
	return "unknown"
}

// handle applies the strategy to a value of kind k.
func (s Strategy) handle(sink Sink, k Kind) error {
	if s == StrategyNullify {
		sink.AppendString("null")
		return nil
	}
	return newKindError(ErrUnsupportedValue, k)
}
