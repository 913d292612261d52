// Alphabet capability consumed by symbol lists and containers.

package types

// Alphabet is the set of valid symbol codes for one kind of sequence
// (nucleotide, amino acid). Alphabets are referenced by symbol lists and
// containers, never owned or modified by them.
type Alphabet interface {
	// Name identifies the alphabet. Two alphabets with the same name are
	// interchangeable.
	Name() string

	// IsValid reports whether code belongs to the alphabet, including the
	// gap code and ambiguity codes.
	IsValid(code int) bool

	// CodeForText returns the code of a textual symbol.
	// Returns ErrBadSymbol if the text is not part of the alphabet.
	CodeForText(text string) (int, error)

	// TextForCode returns the canonical text of a code.
	// Returns ErrBadSymbol if the code is not valid.
	TextForCode(code int) (string, error)

	// Size is the number of resolved states.
	Size() int

	// GapCode is the code used for alignment gaps and padding.
	GapCode() int

	// IsGap reports whether code is the gap code.
	IsGap(code int) bool

	// IsResolved reports whether code denotes exactly one state.
	IsResolved(code int) bool
}

// SameAlphabet reports whether a and b describe the same alphabet.
func SameAlphabet(a, b Alphabet) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a == b || a.Name() == b.Name()
}
