// Sentinel errors returned by the stores and containers.

package types

import "errors"

// Container operation errors. Operations wrap these with positional context;
// callers test with errors.Is.
var (
	ErrOutOfRange          = errors.New("index out of range")
	ErrSizeMismatch        = errors.New("size mismatch")
	ErrAlphabetMismatch    = errors.New("alphabet mismatch")
	ErrDuplicateCoordinate = errors.New("duplicate site coordinate")
	ErrSequenceNotAligned  = errors.New("sequence is not aligned")
	ErrNotSupported        = errors.New("operation not supported")
	ErrNotFound            = errors.New("not found")
	ErrDuplicateKey        = errors.New("duplicate key")
)

// Symbol and alphabet errors.
var (
	ErrBadSymbol       = errors.New("invalid symbol for alphabet")
	ErrAlphabetUnknown = errors.New("unknown alphabet")
)
