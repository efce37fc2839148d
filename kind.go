package jason

// Kind identifies the variant of a Value.
type Kind uint8

// Value kinds.
const (
	KindNone Kind = iota
	KindNull
	KindBool
	KindArray
	KindObject
	KindDouble
	KindUTCDate
	KindExternal
	KindMinKey
	KindMaxKey
	KindInt
	KindUInt
	KindSmallInt
	KindString
	KindBinary
	KindBCD
	KindCustom
)

var kindNames = [...]string{
	KindNone:     "none",
	KindNull:     "null",
	KindBool:     "bool",
	KindArray:    "array",
	KindObject:   "object",
	KindDouble:   "double",
	KindUTCDate:  "utc-date",
	KindExternal: "external",
	KindMinKey:   "min-key",
	KindMaxKey:   "max-key",
	KindInt:      "int",
	KindUInt:     "uint",
	KindSmallInt: "small-int",
	KindString:   "string",
	KindBinary:   "binary",
	KindBCD:      "bcd",
	KindCustom:   "custom",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsContainer reports whether values of this kind have children.
func (k Kind) IsContainer() bool {
	return k == KindArray || k == KindObject
}

// IsInteger reports whether the kind is rendered by the integer formatter.
func (k Kind) IsInteger() bool {
	return k == KindInt || k == KindUInt || k == KindSmallInt
}
