// Index, range, coordinate and alphabet checks shared by both containers.

package container

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/alignstore/pkg/types"
)

// coordinateUnused fails with ErrDuplicateCoordinate when coordinate is used
// by any column other than except. Pass -1 to check every column.
func coordinateUnused(coordinates []int, coordinate, except int) error {
	for i, c := range coordinates {
		if c == coordinate && i != except {
			return fmt.Errorf("%w: %d already used by site %d", types.ErrDuplicateCoordinate, coordinate, i)
		}
	}
	return nil
}

// sequentialCoordinates returns 1..n.
func sequentialCoordinates(n int) []int {
	coordinates := make([]int, n)
	for i := range coordinates {
		coordinates[i] = i + 1
	}
	return coordinates
}

func checkSiteIndex(i, length int) error {
	if i < 0 || i >= length {
		return fmt.Errorf("%w: site %d, number of sites %d", types.ErrOutOfRange, i, length)
	}
	return nil
}

func checkSequenceIndex(i, count int) error {
	if i < 0 || i >= count {
		return fmt.Errorf("%w: sequence %d, number of sequences %d", types.ErrOutOfRange, i, count)
	}
	return nil
}

func checkSiteRange(start, length, total int) error {
	if start < 0 || length < 0 || start+length > total {
		return fmt.Errorf("%w: sites [%d,%d), number of sites %d", types.ErrOutOfRange, start, start+length, total)
	}
	return nil
}

func checkAlphabet(want, got types.Alphabet) error {
	if !types.SameAlphabet(want, got) {
		return fmt.Errorf("%w: container uses %s, got %s", types.ErrAlphabetMismatch, want.Name(), alphabetName(got))
	}
	return nil
}

func alphabetName(a types.Alphabet) string {
	if a == nil {
		return "no alphabet"
	}
	return a.Name()
}

// copyCoordinates validates and copies coordinates for a container of length
// columns.
func copyCoordinates(coordinates []int, length int) ([]int, error) {
	if len(coordinates) != length {
		return nil, fmt.Errorf("%w: %d coordinates for %d sites", types.ErrSizeMismatch, len(coordinates), length)
	}
	return slices.Clone(coordinates), nil
}
