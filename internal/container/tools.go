// Conversions between container kinds and whole-alignment column tools.

package container

import (
	"fmt"

	"github.com/mesh-intelligence/alignstore/pkg/types"
)

// Compress copies src into a new compressed container. Row names, keys,
// comments and site coordinates are kept.
func Compress(src types.Alignment, opts ...Option) (*CompressedContainer, error) {
	dst := NewCompressed(src.Alphabet(), opts...)
	empty, err := types.NewSymbolList(nil, src.Alphabet())
	if err != nil {
		return nil, err
	}
	for i, _n := 0, src.NumberOfSequences(); i < _n; i++ {
		seq, err := src.Sequence(i)
		if err != nil {
			return nil, fmt.Errorf("compress sequence %d: %w", i, err)
		}
		key, err := src.SequenceKey(i)
		if err != nil {
			return nil, fmt.Errorf("compress sequence %d: %w", i, err)
		}
		decl := &types.Sequence{
			SymbolList: *empty.Clone(),
			Name:       seq.Name,
			Key:        key,
			Comments:   seq.Comments,
		}
		if err := dst.AddSequence(decl); err != nil {
			return nil, fmt.Errorf("compress sequence %d: %w", i, err)
		}
	}
	for j, _n := 0, src.NumberOfSites(); j < _n; j++ {
		site, err := src.Site(j)
		if err != nil {
			return nil, fmt.Errorf("compress site %d: %w", j, err)
		}
		if err := dst.AddSite(site, dst.checkCoordinates); err != nil {
			return nil, fmt.Errorf("compress site %d: %w", j, err)
		}
	}
	dst.log.Debug("alignment compressed",
		"sequences", dst.NumberOfSequences(),
		"sites", dst.NumberOfSites(),
		"patterns", dst.NumberOfUniqueSites())
	return dst, nil
}

// Expand copies src into a new aligned container. Row names, keys,
// comments and site coordinates are kept.
func Expand(src types.Alignment, opts ...Option) (*AlignedContainer, error) {
	dst := NewAligned(src.Alphabet(), opts...)
	if src.NumberOfSequences() == 0 {
		// Columns without rows carry nothing but their coordinates.
		for j, _n := 0, src.NumberOfSites(); j < _n; j++ {
			site, err := src.Site(j)
			if err != nil {
				return nil, fmt.Errorf("expand site %d: %w", j, err)
			}
			if err := dst.AddSite(site.Clone(), dst.checkCoordinates); err != nil {
				return nil, fmt.Errorf("expand site %d: %w", j, err)
			}
		}
		return dst, nil
	}
	for i, _n := 0, src.NumberOfSequences(); i < _n; i++ {
		seq, err := src.Sequence(i)
		if err != nil {
			return nil, fmt.Errorf("expand sequence %d: %w", i, err)
		}
		key, err := src.SequenceKey(i)
		if err != nil {
			return nil, fmt.Errorf("expand sequence %d: %w", i, err)
		}
		seq.Key = key
		if err := dst.AddSequence(seq); err != nil {
			return nil, fmt.Errorf("expand sequence %d: %w", i, err)
		}
	}
	coordinates := src.Coordinates()
	if dst.checkCoordinates {
		for j, c := range coordinates {
			if err := coordinateUnused(coordinates[:j], c, -1); err != nil {
				return nil, fmt.Errorf("expand site %d: %w", j, err)
			}
		}
	}
	if err := dst.SetCoordinates(coordinates); err != nil {
		return nil, err
	}
	return dst, nil
}

// RemoveGapOnlySites deletes every column made only of gaps and returns how
// many were removed.
func RemoveGapOnlySites(a types.Alignment) (int, error) {
	removed := 0
	for j := a.NumberOfSites() - 1; j >= 0; j-- {
		site, err := a.Site(j)
		if err != nil {
			return removed, err
		}
		if !site.IsGapOnly() {
			continue
		}
		if err := a.DeleteSite(j); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// EvaluatePatterns calls fn once per stored pattern and returns one result
// per column, in column order.
func EvaluatePatterns[T any](a types.PatternAlignment, fn func(pattern *types.SymbolList) (T, error)) ([]T, error) {
	perPattern := make([]T, a.NumberOfUniqueSites())
	for slot := range perPattern {
		p, err := a.Pattern(slot)
		if err != nil {
			return nil, err
		}
		v, err := fn(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %d: %w", slot, err)
		}
		perPattern[slot] = v
	}
	index := a.PatternIndex()
	results := make([]T, len(index))
	for j, slot := range index {
		results[j] = perPattern[slot]
	}
	return results, nil
}
