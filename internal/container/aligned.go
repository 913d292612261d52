// Package container implements the row-primary and column-primary
// alignment containers and the conversions between them.
package container

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/alignstore/internal/store"
	"github.com/mesh-intelligence/alignstore/pkg/types"
)

// AlignedContainer stores an alignment row by row. Columns are built on
// demand by sampling every row and kept in a per-column cache until a write
// touches them.
type AlignedContainer struct {
	base
	alphabet    types.Alphabet
	rows        *store.Store[*types.Sequence]
	coordinates []int
	sites       []*types.Site // nil cell = not built
}

var _ types.Alignment = (*AlignedContainer)(nil)

// NewAligned returns an empty row-primary container over alphabet.
func NewAligned(alphabet types.Alphabet, opts ...Option) *AlignedContainer {
	return &AlignedContainer{
		base:     newBase(types.ContainerAligned, opts),
		alphabet: alphabet,
		rows:     store.New[*types.Sequence](true),
	}
}

// Alphabet implements types.Alignment.
func (c *AlignedContainer) Alphabet() types.Alphabet {
	return c.alphabet
}

// NumberOfSequences implements types.Alignment.
func (c *AlignedContainer) NumberOfSequences() int {
	return c.rows.Len()
}

// NumberOfSites implements types.Alignment.
func (c *AlignedContainer) NumberOfSites() int {
	return len(c.coordinates)
}

// Sequence implements types.Alignment.
func (c *AlignedContainer) Sequence(i int) (*types.Sequence, error) {
	if err := checkSequenceIndex(i, c.rows.Len()); err != nil {
		return nil, err
	}
	seq, err := c.rows.Get(i)
	if err != nil {
		return nil, err
	}
	return seq.Clone(), nil
}

// SequenceByKey implements types.Alignment.
func (c *AlignedContainer) SequenceByKey(key string) (*types.Sequence, error) {
	seq, err := c.rows.GetByKey(key)
	if err != nil {
		return nil, err
	}
	return seq.Clone(), nil
}

// SequenceKey implements types.Alignment.
func (c *AlignedContainer) SequenceKey(i int) (string, error) {
	return c.rows.Key(i)
}

// SequenceKeys implements types.Alignment.
func (c *AlignedContainer) SequenceKeys() []string {
	return c.rows.Keys()
}

// SetSequenceKeys implements types.Alignment. Stored rows take the new keys.
func (c *AlignedContainer) SetSequenceKeys(keys []string) error {
	if err := c.rows.Rename(keys); err != nil {
		return err
	}
	for i, k := range keys {
		if seq, ok := c.rows.Lookup(i); ok {
			seq.Key = k
		}
	}
	return nil
}

// SequencePosition implements types.Alignment.
func (c *AlignedContainer) SequencePosition(key string) (int, error) {
	return c.rows.Position(key)
}

// checkRow validates seq for storage in a container holding rows rows.
func (c *AlignedContainer) checkRow(seq *types.Sequence, rows int) error {
	if err := checkAlphabet(c.alphabet, seq.Alphabet()); err != nil {
		return err
	}
	if rows > 0 && seq.Size() != len(c.coordinates) {
		return fmt.Errorf("%w: %q has %d sites, alignment has %d",
			types.ErrSequenceNotAligned, seq.Name, seq.Size(), len(c.coordinates))
	}
	return nil
}

// rowKey is the key a row gets at pos: its own key, its name, or the first
// default key from pos upwards not held by another row. self is the
// position of the row being replaced, or -1 on insertion.
func rowKey(rows *store.Store[*types.Sequence], seq *types.Sequence, pos, self int) string {
	if key := seq.KeyOrName(); key != "" {
		return key
	}
	for n := pos; ; n++ {
		key := types.DefaultSequenceKey(n)
		if at, err := rows.Position(key); err != nil || at == self {
			return key
		}
	}
}

// AddSequence implements types.Alignment. The container stores a copy of
// seq.
func (c *AlignedContainer) AddSequence(seq *types.Sequence) error {
	return c.InsertSequence(seq, c.rows.Len())
}

// InsertSequence implements types.Alignment. Inserting into a container
// without rows resets L and the coordinates to 1..seq.Size().
func (c *AlignedContainer) InsertSequence(seq *types.Sequence, pos int) error {
	rows := c.rows.Len()
	if err := c.checkRow(seq, rows); err != nil {
		return err
	}
	row := seq.Clone()
	row.Key = rowKey(c.rows, seq, pos, -1)
	if err := c.rows.Insert(row, pos, row.Key); err != nil {
		return err
	}
	if rows == 0 {
		c.coordinates = sequentialCoordinates(seq.Size())
		c.log.Debug("alignment length set", "sites", seq.Size())
	}
	c.clearSites()
	return nil
}

// SetSequence implements types.Alignment.
func (c *AlignedContainer) SetSequence(i int, seq *types.Sequence) error {
	if err := checkSequenceIndex(i, c.rows.Len()); err != nil {
		return err
	}
	if err := c.checkRow(seq, c.rows.Len()); err != nil {
		return err
	}
	row := seq.Clone()
	row.Key = rowKey(c.rows, seq, i, i)
	if err := c.rows.Replace(i, row, row.Key); err != nil {
		return err
	}
	c.clearSites()
	return nil
}

// RemoveSequence implements types.Alignment.
func (c *AlignedContainer) RemoveSequence(i int) (*types.Sequence, error) {
	seq, err := c.rows.Remove(i)
	if err != nil {
		return nil, err
	}
	c.clearSites()
	return seq, nil
}

// DeleteSequence implements types.Alignment.
func (c *AlignedContainer) DeleteSequence(i int) error {
	_, err := c.RemoveSequence(i)
	return err
}

// clearSites drops every cached column while keeping one cell per column.
func (c *AlignedContainer) clearSites() {
	c.sites = make([]*types.Site, len(c.coordinates))
}

// buildSite samples column i from every row.
func (c *AlignedContainer) buildSite(i int) *types.Site {
	materializations.WithLabelValues(axisSite).Inc()
	codes := make([]int, c.rows.Len())
	for k := range codes {
		row, _ := c.rows.Lookup(k)
		codes[k] = row.At(i)
	}
	list, _ := types.NewSymbolList(codes, c.alphabet)
	return &types.Site{SymbolList: *list, Coordinate: c.coordinates[i]}
}

// Site implements types.Alignment. Callers get a copy of the cached column.
func (c *AlignedContainer) Site(i int) (*types.Site, error) {
	if err := checkSiteIndex(i, len(c.coordinates)); err != nil {
		return nil, err
	}
	if c.sites[i] == nil {
		c.sites[i] = c.buildSite(i)
	}
	return c.sites[i].Clone(), nil
}

func (c *AlignedContainer) checkSite(s *types.Site) error {
	if s.Size() != c.rows.Len() {
		return fmt.Errorf("%w: site has %d codes, alignment has %d sequences",
			types.ErrSizeMismatch, s.Size(), c.rows.Len())
	}
	return checkAlphabet(c.alphabet, s.Alphabet())
}

// SetSite implements types.Alignment.
func (c *AlignedContainer) SetSite(i int, s *types.Site, checkCoordinate bool) error {
	if err := checkSiteIndex(i, len(c.coordinates)); err != nil {
		return err
	}
	if err := c.checkSite(s); err != nil {
		return err
	}
	if checkCoordinate {
		if err := coordinateUnused(c.coordinates, s.Coordinate, i); err != nil {
			return err
		}
	}
	for k, _n := 0, c.rows.Len(); k < _n; k++ {
		row, _ := c.rows.Lookup(k)
		if err := row.SetValue(i, s.At(k)); err != nil {
			return fmt.Errorf("set site %d, sequence %d: %w", i, k, err)
		}
	}
	c.coordinates[i] = s.Coordinate
	c.sites[i] = nil
	return nil
}

// AddSite implements types.Alignment.
func (c *AlignedContainer) AddSite(s *types.Site, checkCoordinate bool) error {
	return c.InsertSite(s, len(c.coordinates), checkCoordinate)
}

// InsertSite implements types.Alignment.
func (c *AlignedContainer) InsertSite(s *types.Site, pos int, checkCoordinate bool) error {
	if pos < 0 || pos > len(c.coordinates) {
		return fmt.Errorf("%w: insert site %d, number of sites %d", types.ErrOutOfRange, pos, len(c.coordinates))
	}
	if err := c.checkSite(s); err != nil {
		return err
	}
	if checkCoordinate {
		if err := coordinateUnused(c.coordinates, s.Coordinate, -1); err != nil {
			return err
		}
	}
	for k, _n := 0, c.rows.Len(); k < _n; k++ {
		row, _ := c.rows.Lookup(k)
		if err := row.Insert(pos, s.At(k)); err != nil {
			return fmt.Errorf("insert site %d, sequence %d: %w", pos, k, err)
		}
	}
	c.coordinates = slices.Insert(c.coordinates, pos, s.Coordinate)
	c.sites = slices.Insert(c.sites, pos, nil)
	return nil
}

// RemoveSite implements types.Alignment. The returned site is no longer
// referenced by the container.
func (c *AlignedContainer) RemoveSite(i int) (*types.Site, error) {
	if err := checkSiteIndex(i, len(c.coordinates)); err != nil {
		return nil, err
	}
	site := c.sites[i]
	if site == nil {
		site = c.buildSite(i)
	}
	c.sites[i] = nil
	if err := c.DeleteSites(i, 1); err != nil {
		return nil, err
	}
	return site, nil
}

// DeleteSite implements types.Alignment.
func (c *AlignedContainer) DeleteSite(i int) error {
	if err := checkSiteIndex(i, len(c.coordinates)); err != nil {
		return err
	}
	return c.DeleteSites(i, 1)
}

// DeleteSites implements types.Alignment. Each row shifts once.
func (c *AlignedContainer) DeleteSites(start, length int) error {
	if err := checkSiteRange(start, length, len(c.coordinates)); err != nil {
		return err
	}
	for k, _n := 0, c.rows.Len(); k < _n; k++ {
		row, _ := c.rows.Lookup(k)
		if err := row.DeleteRange(start, length); err != nil {
			return fmt.Errorf("delete sites, sequence %d: %w", k, err)
		}
	}
	c.coordinates = slices.Delete(c.coordinates, start, start+length)
	c.sites = slices.Delete(c.sites, start, start+length)
	return nil
}

// ReindexSites implements types.Alignment.
func (c *AlignedContainer) ReindexSites() {
	c.coordinates = sequentialCoordinates(len(c.coordinates))
	c.clearSites()
	c.log.Debug("sites reindexed", "sites", len(c.coordinates))
}

// Coordinates implements types.Alignment.
func (c *AlignedContainer) Coordinates() []int {
	return slices.Clone(c.coordinates)
}

// SetCoordinates implements types.Alignment.
func (c *AlignedContainer) SetCoordinates(coordinates []int) error {
	copied, err := copyCoordinates(coordinates, len(c.coordinates))
	if err != nil {
		return err
	}
	c.coordinates = copied
	c.clearSites()
	return nil
}

// Value implements types.Alignment.
func (c *AlignedContainer) Value(row, col int) (int, error) {
	if err := checkSequenceIndex(row, c.rows.Len()); err != nil {
		return 0, err
	}
	seq, _ := c.rows.Lookup(row)
	return seq.Value(col)
}

// SetValue implements types.Alignment.
func (c *AlignedContainer) SetValue(row, col, code int) error {
	if err := checkSequenceIndex(row, c.rows.Len()); err != nil {
		return err
	}
	seq, _ := c.rows.Lookup(row)
	if err := seq.SetValue(col, code); err != nil {
		return err
	}
	c.sites[col] = nil
	return nil
}

// Clear implements types.Alignment.
func (c *AlignedContainer) Clear() {
	c.rows.Clear()
	c.coordinates = nil
	c.sites = nil
	c.log.Debug("alignment cleared")
}
