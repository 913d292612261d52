package alignstore

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/alignstore/pkg/alphabet"
	"github.com/mesh-intelligence/alignstore/pkg/types"
)

func TestNew(t *testing.T) {
	a, err := New(types.ContainerAligned, alphabet.DNA)
	require.NoError(t, err)
	_, compressed := a.(types.PatternAlignment)
	assert.False(t, compressed)

	a, err = New(types.ContainerCompressed, alphabet.Protein)
	require.NoError(t, err)
	_, compressed = a.(types.PatternAlignment)
	assert.True(t, compressed)
	assert.Equal(t, types.AlphabetProtein, a.Alphabet().Name())

	_, err = New("sparse", alphabet.DNA)
	assert.ErrorIs(t, err, types.ErrContainerUnknown)
}

func TestRowAndColumnAccess(t *testing.T) {
	a := NewAligned(alphabet.DNA)
	for _, text := range []string{"ACGT", "ACGT", "ACGA"} {
		seq, err := types.NewSequenceFromText("", text, alphabet.DNA)
		require.NoError(t, err)
		require.NoError(t, a.AddSequence(seq))
	}
	assert.Equal(t, 4, a.NumberOfSites())

	site, err := a.Site(3)
	require.NoError(t, err)
	assert.Equal(t, "TTA", site.String())

	replacement, err := types.NewSiteFromText("TTT", alphabet.DNA, 4)
	require.NoError(t, err)
	require.NoError(t, a.SetSite(3, replacement, false))
	seq, err := a.Sequence(2)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", seq.String())

	c, err := Compress(a)
	require.NoError(t, err)
	assert.Equal(t, 4, c.NumberOfUniqueSites())

	constant, err := EvaluatePatterns(c, func(p *types.SymbolList) (bool, error) {
		return (&types.Site{SymbolList: *p}).IsConstant(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, true}, constant)

	back, err := Expand(c)
	require.NoError(t, err)
	assert.Equal(t, a.SequenceKeys(), back.SequenceKeys())
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c := NewCompressed(alphabet.DNA, WithLogger(logger))
	site, err := types.NewSiteFromText("AC", alphabet.DNA, 1)
	require.NoError(t, err)
	require.NoError(t, c.AddSite(site, true))

	assert.Contains(t, buf.String(), "pattern created")
	assert.Contains(t, buf.String(), "kind=compressed")
	assert.Contains(t, buf.String(), "alignment=")

	n, err := RemoveGapOnlySites(c)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
