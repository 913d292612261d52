// Tests for the row-primary container: column sampling and caching, row
// and column edits, coordinates and error reporting.
package container

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/alignstore/pkg/alphabet"
	"github.com/mesh-intelligence/alignstore/pkg/types"
)

func TestAligned_RowsAndColumns(t *testing.T) {
	c := newAlignedFromRows(t, "ACGT", "ACGT", "ACGA")

	assert.Equal(t, 3, c.NumberOfSequences())
	assert.Equal(t, 4, c.NumberOfSites())
	assert.Equal(t, []int{1, 2, 3, 4}, c.Coordinates())

	site, err := c.Site(3)
	require.NoError(t, err)
	assert.Equal(t, "TTA", site.String())
	assert.Equal(t, 4, site.Coordinate)

	require.NoError(t, c.SetSite(3, dnaSite(t, "TTT", 4), false))
	seq, err := c.Sequence(2)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", seq.String())

	site, err = c.Site(3)
	require.NoError(t, err)
	assert.Equal(t, "TTT", site.String(), "the cached column is rebuilt after a write")
}

func TestAligned_SiteIsCached(t *testing.T) {
	c := newAlignedFromRows(t, "AC", "GT")
	builds := materializations.WithLabelValues(axisSite)
	built := testutil.ToFloat64(builds)

	first, err := c.Site(0)
	require.NoError(t, err)
	again, err := c.Site(0)
	require.NoError(t, err)
	assert.Equal(t, first.String(), again.String())
	assert.NotSame(t, first, again, "callers get copies")
	assert.Equal(t, 1.0, testutil.ToFloat64(builds)-built, "the second read hits the cache")

	require.NoError(t, c.SetValue(1, 0, 1))
	rebuilt, err := c.Site(0)
	require.NoError(t, err)
	assert.Equal(t, "AC", rebuilt.String())
	assert.Equal(t, 2.0, testutil.ToFloat64(builds)-built)

	_, err = c.Site(1)
	require.NoError(t, err)
	require.NoError(t, c.AddSequence(dnaSequence(t, "s2", "AA")))
	afterRowChange, err := c.Site(1)
	require.NoError(t, err)
	assert.Equal(t, "CTA", afterRowChange.String())
	assert.Equal(t, 4.0, testutil.ToFloat64(builds)-built, "adding a row clears every column")
}

func TestAligned_RowsAreCopied(t *testing.T) {
	c := newAlignedFromRows(t, "ACGT", "ACGT", "ACGA")

	// Writes through a returned row do not reach the container.
	seq, err := c.Sequence(2)
	require.NoError(t, err)
	require.NoError(t, seq.SetValue(3, 3))
	site, err := c.Site(3)
	require.NoError(t, err)
	assert.Equal(t, "TTA", site.String())
	v, err := c.Value(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	// Nor do writes through a returned column.
	require.NoError(t, site.SetValue(0, 0))
	site, err = c.Site(3)
	require.NoError(t, err)
	assert.Equal(t, "TTA", site.String())

	// Nor through a row handed to AddSequence or SetSequence.
	added := dnaSequence(t, "s3", "CCCC")
	require.NoError(t, c.AddSequence(added))
	require.NoError(t, added.Append(0))
	assert.Equal(t, 4, c.NumberOfSites())
	replaced := dnaSequence(t, "s4", "GGGG")
	require.NoError(t, c.SetSequence(0, replaced))
	require.NoError(t, replaced.SetValue(0, 3))
	assert.Equal(t, []string{"GGGG", "ACGT", "ACGA", "CCCC"}, sequenceTexts(t, c))
	assert.Equal(t, []string{"GAAC", "GCCC", "GGGC", "GTAC"}, siteTexts(t, c))
	assert.Empty(t, added.Key, "the caller's row is left untouched")
}

func TestAligned_ColumnsMatchRows(t *testing.T) {
	c := newAlignedFromRows(t, "ACGTN", "A-GTC", "TTTT-")
	for i, _n := 0, c.NumberOfSequences(); i < _n; i++ {
		seq, err := c.Sequence(i)
		require.NoError(t, err)
		for j, _n := 0, c.NumberOfSites(); j < _n; j++ {
			site, err := c.Site(j)
			require.NoError(t, err)
			v, err := c.Value(i, j)
			require.NoError(t, err)
			assert.Equal(t, seq.At(j), site.At(i))
			assert.Equal(t, v, site.At(i))
		}
	}
}

func TestAligned_SequenceErrors(t *testing.T) {
	c := newAlignedFromRows(t, "ACGT")

	err := c.AddSequence(dnaSequence(t, "short", "ACG"))
	assert.ErrorIs(t, err, types.ErrSequenceNotAligned)

	err = c.AddSequence(dnaSequence(t, "s0", "TTTT"))
	assert.ErrorIs(t, err, types.ErrDuplicateKey)

	rna, err := types.NewSequenceFromText("r", "ACGU", alphabet.RNA)
	require.NoError(t, err)
	assert.ErrorIs(t, c.AddSequence(rna), types.ErrAlphabetMismatch)

	assert.Equal(t, 1, c.NumberOfSequences(), "failed adds leave the container unchanged")

	_, err = c.Sequence(1)
	assert.ErrorIs(t, err, types.ErrOutOfRange)
	_, err = c.SequenceByKey("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.ErrorIs(t, c.InsertSequence(dnaSequence(t, "far", "AAAA"), 5), types.ErrOutOfRange)
}

func TestAligned_SiteErrors(t *testing.T) {
	c := newAlignedFromRows(t, "ACGT", "ACGT")

	_, err := c.Site(4)
	assert.ErrorIs(t, err, types.ErrOutOfRange)
	_, err = c.Site(-1)
	assert.ErrorIs(t, err, types.ErrOutOfRange)

	assert.ErrorIs(t, c.SetSite(0, dnaSite(t, "AAA", 1), false), types.ErrSizeMismatch)
	assert.ErrorIs(t, c.AddSite(dnaSite(t, "A", 9), false), types.ErrSizeMismatch)
	assert.ErrorIs(t, c.SetSite(4, dnaSite(t, "AA", 1), false), types.ErrOutOfRange)
	assert.ErrorIs(t, c.InsertSite(dnaSite(t, "AA", 9), 5, false), types.ErrOutOfRange)

	protein, err := types.NewSiteFromText("AA", alphabet.Protein, 9)
	require.NoError(t, err)
	assert.ErrorIs(t, c.AddSite(protein, false), types.ErrAlphabetMismatch)

	assert.ErrorIs(t, c.SetValue(0, 0, 99), types.ErrBadSymbol)
	assert.ErrorIs(t, c.SetValue(0, 4, 0), types.ErrOutOfRange)
	assert.ErrorIs(t, c.SetValue(2, 0, 0), types.ErrOutOfRange)

	assert.Equal(t, []string{"ACGT", "ACGT"}, sequenceTexts(t, c))
}

func TestAligned_CoordinateChecks(t *testing.T) {
	c := newAlignedFromRows(t, "ACG", "ACG")

	err := c.AddSite(dnaSite(t, "TT", 2), true)
	assert.ErrorIs(t, err, types.ErrDuplicateCoordinate)
	assert.Equal(t, 3, c.NumberOfSites())

	require.NoError(t, c.AddSite(dnaSite(t, "TT", 2), false), "checks are opt-in")
	assert.Equal(t, []int{1, 2, 3, 2}, c.Coordinates())

	require.NoError(t, c.SetSite(2, dnaSite(t, "GG", 3), true), "a column may keep its own coordinate")
	assert.ErrorIs(t, c.SetSite(0, dnaSite(t, "GG", 3), true), types.ErrDuplicateCoordinate)
	assert.ErrorIs(t, c.SetSite(1, dnaSite(t, "GG", 2), true), types.ErrDuplicateCoordinate,
		"site 3 shares coordinate 2")

	c.ReindexSites()
	assert.Equal(t, []int{1, 2, 3, 4}, c.Coordinates())

	require.NoError(t, c.SetCoordinates([]int{10, 20, 30, 40}))
	site, err := c.Site(2)
	require.NoError(t, err)
	assert.Equal(t, 30, site.Coordinate)
	assert.ErrorIs(t, c.SetCoordinates([]int{1}), types.ErrSizeMismatch)
}

func TestAligned_InsertAndDeleteSites(t *testing.T) {
	c := newAlignedFromRows(t, "AC", "GT")

	require.NoError(t, c.InsertSite(dnaSite(t, "--", 7), 1, true))
	assert.Equal(t, []string{"A-C", "G-T"}, sequenceTexts(t, c))
	assert.Equal(t, []int{1, 7, 2}, c.Coordinates())

	require.NoError(t, c.AddSite(dnaSite(t, "NN", 8), false))
	require.NoError(t, c.DeleteSites(0, 2))
	assert.Equal(t, []string{"CN", "TN"}, sequenceTexts(t, c))
	assert.Equal(t, []int{2, 8}, c.Coordinates())

	assert.ErrorIs(t, c.DeleteSites(1, 2), types.ErrOutOfRange)
	require.NoError(t, c.DeleteSite(1))
	assert.Equal(t, []string{"CT"}, siteTexts(t, c))
	assert.ErrorIs(t, c.DeleteSite(1), types.ErrOutOfRange)
}

func TestAligned_RemoveSiteHandsOff(t *testing.T) {
	c := newAlignedFromRows(t, "ACG", "TTT")

	cached, err := c.Site(1)
	require.NoError(t, err)

	removed, err := c.RemoveSite(1)
	require.NoError(t, err)
	assert.Equal(t, cached.String(), removed.String(), "the cached column moves out")
	assert.Equal(t, "CT", removed.String())
	assert.Equal(t, 2, removed.Coordinate)
	assert.Equal(t, []string{"AG", "TT"}, sequenceTexts(t, c))

	removed, err = c.RemoveSite(1)
	require.NoError(t, err)
	assert.Equal(t, "GT", removed.String(), "uncached columns are built for the caller")

	_, err = c.RemoveSite(1)
	assert.ErrorIs(t, err, types.ErrOutOfRange)
}

func TestAligned_EmptyAndZeroLength(t *testing.T) {
	c := NewAligned(alphabet.DNA)
	assert.Equal(t, 0, c.NumberOfSequences())
	assert.Equal(t, 0, c.NumberOfSites())
	_, err := c.Site(0)
	assert.ErrorIs(t, err, types.ErrOutOfRange)

	require.NoError(t, c.AddSequence(dnaSequence(t, "empty", "")))
	assert.Equal(t, 0, c.NumberOfSites())
	assert.Empty(t, c.Coordinates())

	seq, err := c.RemoveSequence(0)
	require.NoError(t, err)
	assert.Equal(t, "empty", seq.Name)

	require.NoError(t, c.AddSequence(dnaSequence(t, "fresh", "ACGTA")))
	assert.Equal(t, 5, c.NumberOfSites(), "the first row sets the length")
	assert.Equal(t, []int{1, 2, 3, 4, 5}, c.Coordinates())
}

func TestAligned_Keys(t *testing.T) {
	c := NewAligned(alphabet.DNA)

	named := dnaSequence(t, "human", "AC")
	require.NoError(t, c.AddSequence(named))
	keyed := dnaSequence(t, "mouse", "GT")
	keyed.Key = "mm10"
	require.NoError(t, c.AddSequence(keyed))
	require.NoError(t, c.AddSequence(dnaSequence(t, "", "AA")))

	assert.Equal(t, []string{"human", "mm10", "Seq_2"}, c.SequenceKeys())

	pos, err := c.SequencePosition("mm10")
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	seq, err := c.SequenceByKey("Seq_2")
	require.NoError(t, err)
	assert.Equal(t, "AA", seq.String())

	assert.ErrorIs(t, c.SetSequenceKeys([]string{"a", "a", "b"}), types.ErrDuplicateKey)
	assert.ErrorIs(t, c.SetSequenceKeys([]string{"a"}), types.ErrSizeMismatch)
	require.NoError(t, c.SetSequenceKeys([]string{"a", "b", "c"}))
	key, err := c.SequenceKey(1)
	require.NoError(t, err)
	assert.Equal(t, "b", key)
	seq, err = c.Sequence(1)
	require.NoError(t, err)
	assert.Equal(t, "b", seq.Key)
	assert.Equal(t, "mouse", seq.Name)
}

func TestAligned_DefaultKeysSkipTakenKeys(t *testing.T) {
	c := NewAligned(alphabet.DNA)
	require.NoError(t, c.AddSequence(dnaSequence(t, "", "AC")))
	require.NoError(t, c.AddSequence(dnaSequence(t, "", "GT")))
	require.NoError(t, c.DeleteSequence(0))
	assert.Equal(t, []string{"Seq_1"}, c.SequenceKeys())

	require.NoError(t, c.AddSequence(dnaSequence(t, "", "CC")), "Seq_1 is taken, Seq_2 is used")
	assert.Equal(t, []string{"Seq_1", "Seq_2"}, c.SequenceKeys())

	require.NoError(t, c.InsertSequence(dnaSequence(t, "", "TT"), 1))
	assert.Equal(t, []string{"Seq_1", "Seq_3", "Seq_2"}, c.SequenceKeys())

	require.NoError(t, c.SetSequence(0, dnaSequence(t, "", "AA")))
	assert.Equal(t, []string{"Seq_0", "Seq_3", "Seq_2"}, c.SequenceKeys())
	require.NoError(t, c.SetSequence(2, dnaSequence(t, "", "GG")), "a row may keep its own default key")
	assert.Equal(t, []string{"Seq_0", "Seq_3", "Seq_2"}, c.SequenceKeys())
}

func TestAligned_SetAndRemoveSequence(t *testing.T) {
	c := newAlignedFromRows(t, "AC", "GT", "CC")

	require.NoError(t, c.SetSequence(1, dnaSequence(t, "new", "TT")))
	assert.Equal(t, []string{"s0", "new", "s2"}, c.SequenceKeys())
	assert.ErrorIs(t, c.SetSequence(1, dnaSequence(t, "long", "TTT")), types.ErrSequenceNotAligned)
	assert.ErrorIs(t, c.SetSequence(0, dnaSequence(t, "s2", "TT")), types.ErrDuplicateKey)

	removed, err := c.RemoveSequence(0)
	require.NoError(t, err)
	assert.Equal(t, "AC", removed.String())
	assert.Equal(t, []string{"TC", "TC"}, siteTexts(t, c))

	require.NoError(t, c.InsertSequence(dnaSequence(t, "front", "GG"), 0))
	assert.Equal(t, []string{"front", "new", "s2"}, c.SequenceKeys())

	require.NoError(t, c.DeleteSequence(2))
	assert.ErrorIs(t, c.DeleteSequence(2), types.ErrOutOfRange)
	assert.Equal(t, []string{"GT", "GT"}, siteTexts(t, c))
}

func TestAligned_Clear(t *testing.T) {
	c := newAlignedFromRows(t, "ACGT", "TTTT")
	c.Clear()
	assert.Equal(t, 0, c.NumberOfSequences())
	assert.Equal(t, 0, c.NumberOfSites())
	assert.Empty(t, c.SequenceKeys())

	require.NoError(t, c.AddSequence(dnaSequence(t, "s0", "AC")), "keys are released")
	assert.Equal(t, 2, c.NumberOfSites())
}

func TestAligned_AddSiteWithoutRows(t *testing.T) {
	c := NewAligned(alphabet.DNA)
	empty, err := types.NewSite(nil, alphabet.DNA, 5)
	require.NoError(t, err)
	require.NoError(t, c.AddSite(empty, false))
	assert.Equal(t, 1, c.NumberOfSites())

	site, err := c.Site(0)
	require.NoError(t, err)
	assert.Equal(t, 0, site.Size())
	assert.True(t, site.IsGapOnly())
}
