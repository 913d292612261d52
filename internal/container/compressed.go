// Column-primary alignment container storing each distinct column once.

package container

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/alignstore/internal/store"
	"github.com/mesh-intelligence/alignstore/pkg/types"
)

// CompressedContainer stores an alignment column by column, keeping one copy
// of each distinct column content (a pattern) and an index from column to
// pattern slot. Rows are built on demand and cached until any column
// changes.
//
// The row set is frozen by the first column. Until then zero-length
// sequences may be added to declare row names, keys and comments.
type CompressedContainer struct {
	base
	alphabet    types.Alphabet
	patterns    *store.Store[*types.SymbolList]
	index       []int
	coordinates []int
	names       []string
	comments    [][]string
	rows        *store.Store[*types.Sequence] // keyed by row key, values are cache
	frozen      bool
}

var _ types.PatternAlignment = (*CompressedContainer)(nil)

// NewCompressed returns an empty column-primary container over alphabet.
func NewCompressed(alphabet types.Alphabet, opts ...Option) *CompressedContainer {
	return &CompressedContainer{
		base:     newBase(types.ContainerCompressed, opts),
		alphabet: alphabet,
		patterns: store.New[*types.SymbolList](false),
		rows:     store.New[*types.Sequence](true),
	}
}

// Alphabet implements types.Alignment.
func (c *CompressedContainer) Alphabet() types.Alphabet {
	return c.alphabet
}

// NumberOfSequences implements types.Alignment.
func (c *CompressedContainer) NumberOfSequences() int {
	return c.rows.Len()
}

// NumberOfSites implements types.Alignment.
func (c *CompressedContainer) NumberOfSites() int {
	return len(c.index)
}

// NumberOfUniqueSites implements types.PatternAlignment.
func (c *CompressedContainer) NumberOfUniqueSites() int {
	return c.patterns.Len()
}

// PatternIndex implements types.PatternAlignment.
func (c *CompressedContainer) PatternIndex() []int {
	return slices.Clone(c.index)
}

// Pattern implements types.PatternAlignment. The returned list is a copy.
func (c *CompressedContainer) Pattern(slot int) (*types.SymbolList, error) {
	p, err := c.patterns.Get(slot)
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// PatternWeights implements types.PatternAlignment.
func (c *CompressedContainer) PatternWeights() []int {
	weights := make([]int, c.patterns.Len())
	for _, slot := range c.index {
		weights[slot]++
	}
	return weights
}

func (c *CompressedContainer) pattern(slot int) *types.SymbolList {
	p, _ := c.patterns.Lookup(slot)
	return p
}

// findPattern returns the slot holding content equal to candidate, or U when
// there is none.
func (c *CompressedContainer) findPattern(candidate *types.SymbolList) int {
	patternLookups.Inc()
	for slot, _n := 0, c.patterns.Len(); slot < _n; slot++ {
		if c.pattern(slot).Equal(candidate) {
			return slot
		}
	}
	return c.patterns.Len()
}

// storePattern returns the slot for s, storing a copy of its content when no
// equal pattern exists.
func (c *CompressedContainer) storePattern(s *types.Site) int {
	slot := c.findPattern(&s.SymbolList)
	if slot == c.patterns.Len() {
		_, _ = c.patterns.Append(s.SymbolList.Clone(), "")
		patternsCreated.Inc()
		c.log.Debug("pattern created", "slot", slot, "patterns", c.patterns.Len())
	}
	return slot
}

// releasePattern drops slot when no column references it any more and
// renumbers the index entries above it so slots stay dense.
func (c *CompressedContainer) releasePattern(slot int) {
	if slices.Contains(c.index, slot) {
		return
	}
	_ = c.patterns.Delete(slot)
	for i, s := range c.index {
		if s > slot {
			c.index[i] = s - 1
		}
	}
	patternsDropped.Inc()
	c.log.Debug("pattern dropped", "slot", slot, "patterns", c.patterns.Len())
}

// releasePatterns releases every distinct slot in slots, highest first so
// the lower slot numbers stay valid while renumbering.
func (c *CompressedContainer) releasePatterns(slots []int) {
	slots = slices.Clone(slots)
	slices.Sort(slots)
	slots = slices.Compact(slots)
	for i := len(slots) - 1; i >= 0; i-- {
		c.releasePattern(slots[i])
	}
}

func (c *CompressedContainer) checkSite(s *types.Site) error {
	if (c.frozen || c.rows.Len() > 0) && s.Size() != c.rows.Len() {
		return fmt.Errorf("%w: site has %d codes, alignment has %d sequences",
			types.ErrSizeMismatch, s.Size(), c.rows.Len())
	}
	return checkAlphabet(c.alphabet, s.Alphabet())
}

// freeze fixes the row set. Without declared rows, size rows keyed
// Seq_0..Seq_{size-1} are created.
func (c *CompressedContainer) freeze(size int) {
	if c.frozen {
		return
	}
	if c.rows.Len() == 0 {
		for k, _n := 0, size; k < _n; k++ {
			key := types.DefaultSequenceKey(k)
			_, _ = c.rows.Append(nil, key)
			c.names = append(c.names, key)
			c.comments = append(c.comments, nil)
		}
		c.rows.NullifyAll()
	}
	c.frozen = true
	c.log.Debug("sequences frozen", "sequences", c.rows.Len())
}

// invalidateRows drops every cached row.
func (c *CompressedContainer) invalidateRows() {
	c.rows.NullifyAll()
}

// Site implements types.Alignment. Each call returns a new Site.
func (c *CompressedContainer) Site(i int) (*types.Site, error) {
	if err := checkSiteIndex(i, len(c.index)); err != nil {
		return nil, err
	}
	return &types.Site{
		SymbolList: *c.pattern(c.index[i]).Clone(),
		Coordinate: c.coordinates[i],
	}, nil
}

// SetSite implements types.Alignment. Replacing a column with equal content
// only updates its coordinate.
func (c *CompressedContainer) SetSite(i int, s *types.Site, checkCoordinate bool) error {
	if err := checkSiteIndex(i, len(c.index)); err != nil {
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
	c.coordinates[i] = s.Coordinate
	old := c.index[i]
	if c.pattern(old).Equal(&s.SymbolList) {
		return nil
	}
	c.index[i] = c.storePattern(s)
	c.releasePattern(old)
	c.invalidateRows()
	return nil
}

// AddSite implements types.Alignment.
func (c *CompressedContainer) AddSite(s *types.Site, checkCoordinate bool) error {
	return c.InsertSite(s, len(c.index), checkCoordinate)
}

// InsertSite implements types.Alignment. The first column fixes the number
// of sequences.
func (c *CompressedContainer) InsertSite(s *types.Site, pos int, checkCoordinate bool) error {
	if pos < 0 || pos > len(c.index) {
		return fmt.Errorf("%w: insert site %d, number of sites %d", types.ErrOutOfRange, pos, len(c.index))
	}
	if err := c.checkSite(s); err != nil {
		return err
	}
	if checkCoordinate {
		if err := coordinateUnused(c.coordinates, s.Coordinate, -1); err != nil {
			return err
		}
	}
	c.freeze(s.Size())
	slot := c.storePattern(s)
	c.index = slices.Insert(c.index, pos, slot)
	c.coordinates = slices.Insert(c.coordinates, pos, s.Coordinate)
	c.invalidateRows()
	return nil
}

// RemoveSite implements types.Alignment. The returned site is a copy; the
// pattern stays stored while other columns use it.
func (c *CompressedContainer) RemoveSite(i int) (*types.Site, error) {
	site, err := c.Site(i)
	if err != nil {
		return nil, err
	}
	if err := c.DeleteSites(i, 1); err != nil {
		return nil, err
	}
	return site, nil
}

// DeleteSite implements types.Alignment.
func (c *CompressedContainer) DeleteSite(i int) error {
	if err := checkSiteIndex(i, len(c.index)); err != nil {
		return err
	}
	return c.DeleteSites(i, 1)
}

// DeleteSites implements types.Alignment.
func (c *CompressedContainer) DeleteSites(start, length int) error {
	if err := checkSiteRange(start, length, len(c.index)); err != nil {
		return err
	}
	removed := slices.Clone(c.index[start : start+length])
	c.index = slices.Delete(c.index, start, start+length)
	c.coordinates = slices.Delete(c.coordinates, start, start+length)
	c.releasePatterns(removed)
	c.invalidateRows()
	return nil
}

// ReindexSites implements types.Alignment.
func (c *CompressedContainer) ReindexSites() {
	c.coordinates = sequentialCoordinates(len(c.index))
	c.log.Debug("sites reindexed", "sites", len(c.index))
}

// Coordinates implements types.Alignment.
func (c *CompressedContainer) Coordinates() []int {
	return slices.Clone(c.coordinates)
}

// SetCoordinates implements types.Alignment.
func (c *CompressedContainer) SetCoordinates(coordinates []int) error {
	copied, err := copyCoordinates(coordinates, len(c.index))
	if err != nil {
		return err
	}
	c.coordinates = copied
	return nil
}

// Sequence implements types.Alignment. Rows are built from the patterns on
// first access and cached until a column changes. Callers get a copy of the
// cached row.
func (c *CompressedContainer) Sequence(i int) (*types.Sequence, error) {
	if err := checkSequenceIndex(i, c.rows.Len()); err != nil {
		return nil, err
	}
	if seq, ok := c.rows.Lookup(i); ok {
		return seq.Clone(), nil
	}
	materializations.WithLabelValues(axisSequence).Inc()
	codes := make([]int, len(c.index))
	for j, slot := range c.index {
		codes[j] = c.pattern(slot).At(i)
	}
	seq, err := types.NewSequence(c.names[i], codes, c.alphabet)
	if err != nil {
		return nil, err
	}
	seq.Key, _ = c.rows.Key(i)
	seq.Comments = slices.Clone(c.comments[i])
	if err := c.rows.Set(i, seq); err != nil {
		return nil, err
	}
	return seq.Clone(), nil
}

// SequenceByKey implements types.Alignment.
func (c *CompressedContainer) SequenceByKey(key string) (*types.Sequence, error) {
	pos, err := c.rows.Position(key)
	if err != nil {
		return nil, err
	}
	return c.Sequence(pos)
}

// SequenceKey implements types.Alignment.
func (c *CompressedContainer) SequenceKey(i int) (string, error) {
	return c.rows.Key(i)
}

// SequenceKeys implements types.Alignment.
func (c *CompressedContainer) SequenceKeys() []string {
	return c.rows.Keys()
}

// SetSequenceKeys implements types.Alignment. Renaming is allowed on frozen
// containers.
func (c *CompressedContainer) SetSequenceKeys(keys []string) error {
	if err := c.rows.Rename(keys); err != nil {
		return err
	}
	c.invalidateRows()
	return nil
}

// SequencePosition implements types.Alignment.
func (c *CompressedContainer) SequencePosition(key string) (int, error) {
	return c.rows.Position(key)
}

// checkDeclaration validates a row declaration on an unfrozen container.
func (c *CompressedContainer) checkDeclaration(op string, seq *types.Sequence) error {
	if c.frozen {
		return fmt.Errorf("%w: %s on a compressed alignment with sites", types.ErrNotSupported, op)
	}
	if err := checkAlphabet(c.alphabet, seq.Alphabet()); err != nil {
		return err
	}
	if seq.Size() != 0 {
		return fmt.Errorf("%w: %s: %q has %d sites, compressed rows are declared empty",
			types.ErrSequenceNotAligned, op, seq.Name, seq.Size())
	}
	return nil
}

// AddSequence implements types.Alignment. Only the name, key and comments
// of seq are kept.
func (c *CompressedContainer) AddSequence(seq *types.Sequence) error {
	return c.InsertSequence(seq, c.rows.Len())
}

// InsertSequence implements types.Alignment.
func (c *CompressedContainer) InsertSequence(seq *types.Sequence, pos int) error {
	if err := c.checkDeclaration("insert sequence", seq); err != nil {
		return err
	}
	key := rowKey(c.rows, seq, pos, -1)
	if err := c.rows.Insert(nil, pos, key); err != nil {
		return err
	}
	_ = c.rows.Nullify(pos)
	c.names = slices.Insert(c.names, pos, seq.Name)
	c.comments = slices.Insert(c.comments, pos, slices.Clone(seq.Comments))
	return nil
}

// SetSequence implements types.Alignment.
func (c *CompressedContainer) SetSequence(i int, seq *types.Sequence) error {
	if err := checkSequenceIndex(i, c.rows.Len()); err != nil {
		return err
	}
	if err := c.checkDeclaration("set sequence", seq); err != nil {
		return err
	}
	if err := c.rows.Replace(i, nil, rowKey(c.rows, seq, i, i)); err != nil {
		return err
	}
	_ = c.rows.Nullify(i)
	c.names[i] = seq.Name
	c.comments[i] = slices.Clone(seq.Comments)
	return nil
}

// RemoveSequence implements types.Alignment. The returned declaration is
// empty, as every declared row is.
func (c *CompressedContainer) RemoveSequence(i int) (*types.Sequence, error) {
	if err := checkSequenceIndex(i, c.rows.Len()); err != nil {
		return nil, err
	}
	if c.frozen {
		return nil, fmt.Errorf("%w: remove sequence on a compressed alignment with sites", types.ErrNotSupported)
	}
	key, _ := c.rows.Key(i)
	seq, err := types.NewSequence(c.names[i], nil, c.alphabet)
	if err != nil {
		return nil, err
	}
	seq.Key = key
	seq.Comments = c.comments[i]
	_ = c.rows.Delete(i)
	c.names = slices.Delete(c.names, i, i+1)
	c.comments = slices.Delete(c.comments, i, i+1)
	return seq, nil
}

// DeleteSequence implements types.Alignment.
func (c *CompressedContainer) DeleteSequence(i int) error {
	_, err := c.RemoveSequence(i)
	return err
}

// Value implements types.Alignment.
func (c *CompressedContainer) Value(row, col int) (int, error) {
	if err := checkSequenceIndex(row, c.rows.Len()); err != nil {
		return 0, err
	}
	if err := checkSiteIndex(col, len(c.index)); err != nil {
		return 0, err
	}
	return c.pattern(c.index[col]).At(row), nil
}

// SetValue implements types.Alignment by rebuilding column col with the new
// code and storing it through SetSite.
func (c *CompressedContainer) SetValue(row, col, code int) error {
	if err := checkSequenceIndex(row, c.rows.Len()); err != nil {
		return err
	}
	site, err := c.Site(col)
	if err != nil {
		return err
	}
	if err := site.SetValue(row, code); err != nil {
		return err
	}
	return c.SetSite(col, site, false)
}

// Clear implements types.Alignment. The container accepts row declarations
// again afterwards.
func (c *CompressedContainer) Clear() {
	c.patterns.Clear()
	c.index = nil
	c.coordinates = nil
	c.names = nil
	c.comments = nil
	c.rows.Clear()
	c.frozen = false
	c.log.Debug("alignment cleared")
}
