// Package fasta reads and writes aligned sequences in FASTA format.
//
// A record starts with a '>' header line. The first word of the header is
// the sequence name; the rest, if any, is kept as a single comment. Residue
// lines are concatenated until the next header. Blank lines are ignored.
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/alignstore/pkg/types"
)

// ErrMalformed reports input that is not FASTA, such as residues before the
// first header.
var ErrMalformed = errors.New("malformed FASTA")

// maxLine bounds a single input line. Unwrapped genome alignments easily
// exceed bufio's default.
const maxLine = 64 << 20

// Read parses every record in r using alphabet.
func Read(r io.Reader, alphabet types.Alphabet) ([]*types.Sequence, error) {
	var (
		seqs    []*types.Sequence
		current *types.Sequence
		codes   []int
	)
	flush := func() error {
		if current == nil {
			return nil
		}
		if err := current.SetContent(codes); err != nil {
			return err
		}
		seqs = append(seqs, current)
		codes = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, ">") {
			if err := flush(); err != nil {
				return nil, err
			}
			current = newRecord(strings.TrimSpace(text[1:]), alphabet)
			continue
		}
		if current == nil {
			return nil, fmt.Errorf("%w: line %d: sequence data before the first header", ErrMalformed, line)
		}
		parsed, err := types.ParseSymbols(strings.Join(strings.Fields(text), ""), alphabet)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		codes = append(codes, parsed...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading FASTA: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return seqs, nil
}

func newRecord(header string, alphabet types.Alphabet) *types.Sequence {
	name, comment, _ := strings.Cut(header, " ")
	seq, _ := types.NewSequence(name, nil, alphabet)
	if comment = strings.TrimSpace(comment); comment != "" {
		seq.Comments = []string{comment}
	}
	return seq
}

// ReadFile parses the FASTA file at path.
func ReadFile(path string, alphabet types.Alphabet) ([]*types.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	seqs, err := Read(f, alphabet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seqs, nil
}

// Write renders every row of a, wrapping residues at width characters.
// A width of zero writes each sequence on one line.
func Write(w io.Writer, a types.Alignment, width int) error {
	bw := bufio.NewWriter(w)
	for i, _n := 0, a.NumberOfSequences(); i < _n; i++ {
		seq, err := a.Sequence(i)
		if err != nil {
			return err
		}
		name := seq.Name
		if name == "" {
			if name, err = a.SequenceKey(i); err != nil {
				return err
			}
		}
		header := ">" + name
		if len(seq.Comments) > 0 {
			header += " " + strings.Join(seq.Comments, " ")
		}
		if _, err := fmt.Fprintln(bw, header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		if err := writeResidues(bw, seq.String(), width); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing buffer: %w", err)
	}
	return nil
}

func writeResidues(w *bufio.Writer, text string, width int) error {
	if width <= 0 || width >= len(text) {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	for start := 0; start < len(text); start += width {
		end := min(start+width, len(text))
		if _, err := fmt.Fprintln(w, text[start:end]); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes a to path atomically: the records go to a temporary file
// in the same directory, which is synced and then renamed over path.
func WriteFile(path string, a types.Alignment, width int) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".fasta-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := Write(tmp, a, width); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
