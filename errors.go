package jason

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnsupportedValue indicates a value with no JSON equivalent under StrategyFail.
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrInvalidUTF8 indicates a string ends inside a multi-byte sequence.
	ErrInvalidUTF8 = errors.New("invalid utf-8 sequence")

	// ErrInternal indicates the document violated the value model contract.
	ErrInternal = errors.New("internal error")

	// ErrDepthExceeded indicates the document nests deeper than the configured limit.
	ErrDepthExceeded = errors.New("nesting depth exceeded")
)

// DumpError represents a failed dump.
// It wraps a sentinel error with the kind of the offending value.
type DumpError struct {
	Err    error // Underlying sentinel error
	Kind   Kind  // Kind of the value being rendered
	Offset int   // Byte offset inside a string for ErrInvalidUTF8, otherwise -1
	Depth  int   // Depth limit for ErrDepthExceeded
}

func (e *DumpError) Error() string {
	switch {
	case e.Offset >= 0:
		return fmt.Sprintf("%s at offset %d", e.Err.Error(), e.Offset)
	case e.Depth > 0:
		return fmt.Sprintf("%s (limit %d)", e.Err.Error(), e.Depth)
	}
	return fmt.Sprintf("%s: kind %s", e.Err.Error(), e.Kind)
}

func (e *DumpError) Unwrap() error {
	return e.Err
}

// newKindError creates a DumpError for a value of the given kind.
func newKindError(sentinel error, kind Kind) error {
	return &DumpError{Err: sentinel, Kind: kind, Offset: -1}
}

// newUTF8Error creates a DumpError for a truncated multi-byte sequence.
func newUTF8Error(offset int) error {
	return &DumpError{Err: ErrInvalidUTF8, Kind: KindString, Offset: offset}
}

// newDepthError creates a DumpError for a document nested past limit.
func newDepthError(kind Kind, limit int) error {
	return &DumpError{Err: ErrDepthExceeded, Kind: kind, Offset: -1, Depth: limit}
}
