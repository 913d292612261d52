// Package alphabet provides the nucleotide and amino acid alphabets used to
// validate symbol codes.
//
// Codes are laid out the same way in every alphabet: the gap is -1, the
// resolved states are 0..Size()-1 and ambiguity codes follow them.
package alphabet

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/alignstore/pkg/types"
)

const gapCode = -1

// Alphabet is a table-driven implementation of types.Alphabet.
type Alphabet struct {
	name     string
	symbols  []string // canonical text by code, offset by one for the gap
	resolved int
	byText   map[string]int
}

var _ types.Alphabet = (*Alphabet)(nil)

// newAlphabet builds an alphabet from its resolved states, its ambiguity
// symbols and extra text aliases.
func newAlphabet(name, resolved, ambiguous string, aliases map[string]string) *Alphabet {
	a := &Alphabet{
		name:     name,
		symbols:  []string{"-"},
		resolved: len(resolved),
		byText:   map[string]int{"-": gapCode},
	}
	for i, r := range resolved + ambiguous {
		a.symbols = append(a.symbols, string(r))
		a.byText[string(r)] = i
	}
	for alias, target := range aliases {
		a.byText[alias] = a.byText[target]
	}
	return a
}

// Name implements types.Alphabet.
func (a *Alphabet) Name() string {
	return a.name
}

// IsValid implements types.Alphabet.
func (a *Alphabet) IsValid(code int) bool {
	return code >= gapCode && code < len(a.symbols)-1
}

// CodeForText implements types.Alphabet. Lookup is case-insensitive.
func (a *Alphabet) CodeForText(text string) (int, error) {
	code, ok := a.byText[strings.ToUpper(text)]
	if !ok {
		return 0, fmt.Errorf("%w: %q (%s)", types.ErrBadSymbol, text, a.name)
	}
	return code, nil
}

// TextForCode implements types.Alphabet.
func (a *Alphabet) TextForCode(code int) (string, error) {
	if !a.IsValid(code) {
		return "", fmt.Errorf("%w: code %d (%s)", types.ErrBadSymbol, code, a.name)
	}
	return a.symbols[code+1], nil
}

// Size implements types.Alphabet.
func (a *Alphabet) Size() int {
	return a.resolved
}

// GapCode implements types.Alphabet.
func (a *Alphabet) GapCode() int {
	return gapCode
}

// IsGap implements types.Alphabet.
func (a *Alphabet) IsGap(code int) bool {
	return code == gapCode
}

// IsResolved implements types.Alphabet.
func (a *Alphabet) IsResolved(code int) bool {
	return code >= 0 && code < a.resolved
}

// NumberOfCodes returns how many codes are valid, gap included.
func (a *Alphabet) NumberOfCodes() int {
	return len(a.symbols)
}

// Standard alphabets. They are immutable and safe to share.
var (
	DNA = newAlphabet(types.AlphabetDNA, "ACGT", "RYKMSWBDHVN",
		map[string]string{".": "-", "?": "N", "X": "N"})
	RNA = newAlphabet(types.AlphabetRNA, "ACGU", "RYKMSWBDHVN",
		map[string]string{".": "-", "?": "N", "X": "N"})
	Protein = newAlphabet(types.AlphabetProtein, "ARNDCQEGHILKMFPSTWYV", "BZX",
		map[string]string{".": "-", "?": "X", "*": "X"})
)

// Lookup returns the standard alphabet with the given name.
// Returns types.ErrAlphabetUnknown for any other name.
func Lookup(name string) (*Alphabet, error) {
	switch strings.ToLower(name) {
	case types.AlphabetDNA:
		return DNA, nil
	case types.AlphabetRNA:
		return RNA, nil
	case types.AlphabetProtein:
		return Protein, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrAlphabetUnknown, name)
	}
}
