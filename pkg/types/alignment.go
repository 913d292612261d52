// Alignment interfaces shared by every container.

package types

import "fmt"

// Alignment provides uniform row and column access to an M×L matrix of
// codes, independent of whether rows or columns are the primary storage.
//
// Containers copy rows and columns on the way in and on the way out: values
// passed to a mutator, or returned by Sequence and Site, are never shared
// with container state. Use the container's mutators to change content.
type Alignment interface {
	// Alphabet returns the alphabet shared by every row and column.
	Alphabet() Alphabet

	// NumberOfSequences returns M.
	NumberOfSequences() int

	// NumberOfSites returns L.
	NumberOfSites() int

	// Sequence returns a copy of row i. Returns ErrOutOfRange if i >= M.
	Sequence(i int) (*Sequence, error)

	// SequenceByKey returns a copy of the row with the given key.
	// Returns ErrNotFound if no row has that key.
	SequenceByKey(key string) (*Sequence, error)

	// SequenceKey returns the key of row i.
	SequenceKey(i int) (string, error)

	// SequenceKeys returns the keys of all rows in order.
	SequenceKeys() []string

	// SetSequenceKeys renames every row at once. Returns ErrSizeMismatch if
	// len(keys) != M and ErrDuplicateKey if keys are not unique.
	SetSequenceKeys(keys []string) error

	// SequencePosition returns the row index of key.
	SequencePosition(key string) (int, error)

	// AddSequence appends a row. The row length must equal L when rows exist.
	AddSequence(seq *Sequence) error

	// InsertSequence inserts a row at pos, shifting later rows down.
	InsertSequence(seq *Sequence, pos int) error

	// SetSequence replaces row i.
	SetSequence(i int, seq *Sequence) error

	// RemoveSequence detaches row i and hands it to the caller.
	RemoveSequence(i int) (*Sequence, error)

	// DeleteSequence removes row i.
	DeleteSequence(i int) error

	// Site returns a copy of column i. Returns ErrOutOfRange if i >= L.
	Site(i int) (*Site, error)

	// SetSite replaces column i with s. When checkCoordinate is set, fails
	// with ErrDuplicateCoordinate if another column already uses
	// s.Coordinate.
	SetSite(i int, s *Site, checkCoordinate bool) error

	// AddSite appends column s.
	AddSite(s *Site, checkCoordinate bool) error

	// InsertSite inserts column s at pos, shifting later columns right.
	InsertSite(s *Site, pos int, checkCoordinate bool) error

	// RemoveSite detaches column i and hands it to the caller.
	RemoveSite(i int) (*Site, error)

	// DeleteSite removes column i.
	DeleteSite(i int) error

	// DeleteSites removes length columns starting at start.
	DeleteSites(start, length int) error

	// ReindexSites resets the coordinates to 1..L.
	ReindexSites()

	// Coordinates returns a copy of the column coordinates.
	Coordinates() []int

	// SetCoordinates replaces the column coordinates.
	// Returns ErrSizeMismatch if len(coordinates) != L.
	SetCoordinates(coordinates []int) error

	// Value returns the code at row, column.
	Value(row, col int) (int, error)

	// SetValue replaces the code at row, column.
	SetValue(row, col, code int) error

	// Clear removes every row, column and coordinate.
	Clear()
}

// PatternAlignment is an Alignment whose columns are stored once per
// distinct content. Consumers that evaluate a function per column can
// evaluate it per pattern and redistribute the results with PatternIndex.
type PatternAlignment interface {
	Alignment

	// NumberOfUniqueSites returns U, the number of stored patterns.
	NumberOfUniqueSites() int

	// PatternIndex returns a copy of the column to pattern slot mapping.
	PatternIndex() []int

	// Pattern returns a copy of the content of slot.
	Pattern(slot int) (*SymbolList, error)

	// PatternWeights returns how many columns reference each slot.
	PatternWeights() []int
}

// DefaultSequenceKey is the key given to row i when no other key is known.
// Containers move on to i+1, i+2... when the key is already taken.
func DefaultSequenceKey(i int) string {
	return fmt.Sprintf("Seq_%d", i)
}
