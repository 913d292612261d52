// Sequence, an alignment row with a name, key and comments.

package types

// Sequence is one named row of an alignment.
type Sequence struct {
	SymbolList

	// Name is the display name, as read from the source file.
	Name string

	// Key is the unique handle of the row inside a container. When empty,
	// containers key the row by Name.
	Key string

	// Comments holds free-text annotations carried with the row.
	Comments []string
}

// NewSequence validates codes and returns a sequence named name.
// Returns ErrBadSymbol if a code is not in alphabet.
func NewSequence(name string, codes []int, alphabet Alphabet) (*Sequence, error) {
	list, err := NewSymbolList(codes, alphabet)
	if err != nil {
		return nil, err
	}
	return &Sequence{SymbolList: *list, Name: name}, nil
}

// NewSequenceFromText parses text one character per symbol.
func NewSequenceFromText(name, text string, alphabet Alphabet) (*Sequence, error) {
	codes, err := ParseSymbols(text, alphabet)
	if err != nil {
		return nil, err
	}
	return NewSequence(name, codes, alphabet)
}

// KeyOrName returns Key, or Name when no key was assigned.
func (s *Sequence) KeyOrName() string {
	if s.Key != "" {
		return s.Key
	}
	return s.Name
}

// Clone returns a deep copy of the sequence.
func (s *Sequence) Clone() *Sequence {
	c := &Sequence{
		SymbolList: *s.SymbolList.Clone(),
		Name:       s.Name,
		Key:        s.Key,
	}
	if s.Comments != nil {
		c.Comments = append([]string(nil), s.Comments...)
	}
	return c
}
