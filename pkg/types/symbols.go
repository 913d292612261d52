// Ordered, alphabet-validated code lists shared by Sequence and Site.

package types

import (
	"fmt"
	"strings"
)

// SymbolList is an ordered list of codes, each valid in the list's alphabet.
// Every write validates the new codes before anything is modified, so a
// failed call leaves the list unchanged.
type SymbolList struct {
	alphabet Alphabet
	content  []int
}

// NewSymbolList validates codes against alphabet and returns a list holding
// a copy of them. Returns ErrBadSymbol if any code is invalid.
func NewSymbolList(codes []int, alphabet Alphabet) (*SymbolList, error) {
	if err := validateCodes(alphabet, codes); err != nil {
		return nil, err
	}
	content := make([]int, len(codes))
	copy(content, codes)
	return &SymbolList{alphabet: alphabet, content: content}, nil
}

// ParseSymbols converts text to codes, one character per symbol.
// Returns ErrBadSymbol with the offending offset when a character is not in
// the alphabet.
func ParseSymbols(text string, alphabet Alphabet) ([]int, error) {
	codes := make([]int, 0, len(text))
	for i, r := range text {
		code, err := alphabet.CodeForText(string(r))
		if err != nil {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrBadSymbol, r, i)
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func validateCodes(alphabet Alphabet, codes []int) error {
	for i, c := range codes {
		if !alphabet.IsValid(c) {
			return fmt.Errorf("%w: code %d at position %d (%s)", ErrBadSymbol, c, i, alphabet.Name())
		}
	}
	return nil
}

func (l *SymbolList) checkCode(code int) error {
	if !l.alphabet.IsValid(code) {
		return fmt.Errorf("%w: code %d (%s)", ErrBadSymbol, code, l.alphabet.Name())
	}
	return nil
}

func (l *SymbolList) checkPosition(pos int) error {
	if pos < 0 || pos >= len(l.content) {
		return fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, pos, len(l.content))
	}
	return nil
}

// Alphabet returns the alphabet the list is validated against.
func (l *SymbolList) Alphabet() Alphabet {
	return l.alphabet
}

// Size returns the number of codes.
func (l *SymbolList) Size() int {
	return len(l.content)
}

// Value returns the code at pos.
func (l *SymbolList) Value(pos int) (int, error) {
	if err := l.checkPosition(pos); err != nil {
		return 0, err
	}
	return l.content[pos], nil
}

// SetValue replaces the code at pos.
func (l *SymbolList) SetValue(pos, code int) error {
	if err := l.checkPosition(pos); err != nil {
		return err
	}
	if err := l.checkCode(code); err != nil {
		return err
	}
	l.content[pos] = code
	return nil
}

// Append adds code at the end of the list.
func (l *SymbolList) Append(code int) error {
	if err := l.checkCode(code); err != nil {
		return err
	}
	l.content = append(l.content, code)
	return nil
}

// Insert places code at pos, shifting later codes right. pos may equal
// Size, which appends.
func (l *SymbolList) Insert(pos, code int) error {
	if pos < 0 || pos > len(l.content) {
		return fmt.Errorf("%w: insert position %d, size %d", ErrOutOfRange, pos, len(l.content))
	}
	if err := l.checkCode(code); err != nil {
		return err
	}
	l.content = append(l.content, 0)
	copy(l.content[pos+1:], l.content[pos:])
	l.content[pos] = code
	return nil
}

// Delete removes the code at pos.
func (l *SymbolList) Delete(pos int) error {
	if err := l.checkPosition(pos); err != nil {
		return err
	}
	l.content = append(l.content[:pos], l.content[pos+1:]...)
	return nil
}

// DeleteRange removes length codes starting at start.
func (l *SymbolList) DeleteRange(start, length int) error {
	if start < 0 || length < 0 || start+length > len(l.content) {
		return fmt.Errorf("%w: range [%d,%d), size %d", ErrOutOfRange, start, start+length, len(l.content))
	}
	l.content = append(l.content[:start], l.content[start+length:]...)
	return nil
}

// SetContent replaces every code with a copy of codes.
func (l *SymbolList) SetContent(codes []int) error {
	if err := validateCodes(l.alphabet, codes); err != nil {
		return err
	}
	content := make([]int, len(codes))
	copy(content, codes)
	l.content = content
	return nil
}

// ResizeRight truncates or gap-pads the end of the list to size codes.
func (l *SymbolList) ResizeRight(size int) error {
	if size < 0 {
		return fmt.Errorf("%w: size %d", ErrOutOfRange, size)
	}
	if size <= len(l.content) {
		l.content = l.content[:size]
		return nil
	}
	gap := l.alphabet.GapCode()
	for len(l.content) < size {
		l.content = append(l.content, gap)
	}
	return nil
}

// ResizeLeft truncates or gap-pads the start of the list to size codes.
func (l *SymbolList) ResizeLeft(size int) error {
	if size < 0 {
		return fmt.Errorf("%w: size %d", ErrOutOfRange, size)
	}
	if size <= len(l.content) {
		l.content = append([]int(nil), l.content[len(l.content)-size:]...)
		return nil
	}
	content := make([]int, size)
	pad := size - len(l.content)
	gap := l.alphabet.GapCode()
	for i := 0; i < pad; i++ {
		content[i] = gap
	}
	copy(content[pad:], l.content)
	l.content = content
	return nil
}

// Content returns a copy of the codes.
func (l *SymbolList) Content() []int {
	content := make([]int, len(l.content))
	copy(content, l.content)
	return content
}

// Equal reports whether other holds the same codes, stopping at the first
// mismatch. Alphabets are not compared.
func (l *SymbolList) Equal(other *SymbolList) bool {
	if other == nil || len(l.content) != len(other.content) {
		return false
	}
	for i, c := range l.content {
		if other.content[i] != c {
			return false
		}
	}
	return true
}

// Clone returns an independent copy sharing the alphabet.
func (l *SymbolList) Clone() *SymbolList {
	return &SymbolList{alphabet: l.alphabet, content: l.Content()}
}

// String renders the codes with the alphabet's canonical text.
func (l *SymbolList) String() string {
	var b strings.Builder
	b.Grow(len(l.content))
	for _, c := range l.content {
		text, err := l.alphabet.TextForCode(c)
		if err != nil {
			text = "?"
		}
		b.WriteString(text)
	}
	return b.String()
}

// At returns the code at pos without bounds reporting; it panics when pos
// is out of range. Meant for callers that already checked their indices.
func (l *SymbolList) At(pos int) int {
	return l.content[pos]
}
