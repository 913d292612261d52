package container

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/alignstore/pkg/alphabet"
	"github.com/mesh-intelligence/alignstore/pkg/types"
)

func dnaSequence(t *testing.T, name, text string) *types.Sequence {
	t.Helper()
	seq, err := types.NewSequenceFromText(name, text, alphabet.DNA)
	require.NoError(t, err)
	return seq
}

func dnaSite(t *testing.T, text string, coordinate int) *types.Site {
	t.Helper()
	site, err := types.NewSiteFromText(text, alphabet.DNA, coordinate)
	require.NoError(t, err)
	return site
}

// sequenceTexts renders every row of a.
func sequenceTexts(t *testing.T, a types.Alignment) []string {
	t.Helper()
	texts := make([]string, a.NumberOfSequences())
	for i := range texts {
		seq, err := a.Sequence(i)
		require.NoError(t, err)
		texts[i] = seq.String()
	}
	return texts
}

// siteTexts renders every column of a.
func siteTexts(t *testing.T, a types.Alignment) []string {
	t.Helper()
	texts := make([]string, a.NumberOfSites())
	for j := range texts {
		site, err := a.Site(j)
		require.NoError(t, err)
		texts[j] = site.String()
	}
	return texts
}

// newAlignedFromRows builds an aligned container holding rows named s0, s1...
func newAlignedFromRows(t *testing.T, rows ...string) *AlignedContainer {
	t.Helper()
	c := NewAligned(alphabet.DNA)
	for i, text := range rows {
		require.NoError(t, c.AddSequence(dnaSequence(t, "s"+string(rune('0'+i)), text)))
	}
	return c
}

// newCompressedFromSites builds a compressed container from columns with
// coordinates 1..n.
func newCompressedFromSites(t *testing.T, sites ...string) *CompressedContainer {
	t.Helper()
	c := NewCompressed(alphabet.DNA)
	for j, text := range sites {
		require.NoError(t, c.AddSite(dnaSite(t, text, j+1), true))
	}
	return c
}

// requireDenseIndex checks that every slot is referenced and every index
// entry points at a stored pattern.
func requireDenseIndex(t *testing.T, c *CompressedContainer) {
	t.Helper()
	weights := c.PatternWeights()
	for slot, w := range weights {
		require.Positive(t, w, "slot %d is unreferenced", slot)
	}
	for j, slot := range c.PatternIndex() {
		require.Less(t, slot, c.NumberOfUniqueSites(), "site %d", j)
	}
	for a, _n := 0, c.NumberOfUniqueSites(); a < _n; a++ {
		pa, err := c.Pattern(a)
		require.NoError(t, err)
		for b := a + 1; b < c.NumberOfUniqueSites(); b++ {
			pb, err := c.Pattern(b)
			require.NoError(t, err)
			require.False(t, pa.Equal(pb), "slots %d and %d hold equal patterns", a, b)
		}
	}
}
