// Site, an alignment column with its coordinate and the column tests.

package types

// Site is one column of an alignment: one code per sequence plus the
// coordinate the column had in its source.
type Site struct {
	SymbolList

	// Coordinate is the caller-facing position of the column. It is
	// independent of where the column is physically stored.
	Coordinate int
}

// NewSite validates codes and returns a site at coordinate.
// Returns ErrBadSymbol if a code is not in alphabet.
func NewSite(codes []int, alphabet Alphabet, coordinate int) (*Site, error) {
	list, err := NewSymbolList(codes, alphabet)
	if err != nil {
		return nil, err
	}
	return &Site{SymbolList: *list, Coordinate: coordinate}, nil
}

// NewSiteFromText parses text one character per symbol.
func NewSiteFromText(text string, alphabet Alphabet, coordinate int) (*Site, error) {
	codes, err := ParseSymbols(text, alphabet)
	if err != nil {
		return nil, err
	}
	return NewSite(codes, alphabet, coordinate)
}

// Clone returns a deep copy of the site.
func (s *Site) Clone() *Site {
	return &Site{SymbolList: *s.SymbolList.Clone(), Coordinate: s.Coordinate}
}

// IsGapOnly reports whether every code is a gap. An empty site is gap-only.
func (s *Site) IsGapOnly() bool {
	for _, c := range s.content {
		if !s.alphabet.IsGap(c) {
			return false
		}
	}
	return true
}

// HasGap reports whether at least one code is a gap.
func (s *Site) HasGap() bool {
	for _, c := range s.content {
		if s.alphabet.IsGap(c) {
			return true
		}
	}
	return false
}

// IsComplete reports whether every code denotes a single resolved state.
func (s *Site) IsComplete() bool {
	for _, c := range s.content {
		if !s.alphabet.IsResolved(c) {
			return false
		}
	}
	return true
}

// IsConstant reports whether all resolved codes are identical. Gaps and
// ambiguous codes are ignored; a site without any resolved code is not
// constant.
func (s *Site) IsConstant() bool {
	var state int
	found := false
	for _, c := range s.content {
		if !s.alphabet.IsResolved(c) {
			continue
		}
		if !found {
			state, found = c, true
			continue
		}
		if c != state {
			return false
		}
	}
	return found
}
