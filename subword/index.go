// Package subword implements the ragged word -> subword id table.
//
// Runs are stored CSR style: Offsets[w] is where word w starts in Idxs and the
// run ends at Offsets[w+1], or at len(Idxs) for the last word.
package subword

import "github.com/pkg/errors"

var (
	// ErrOffsets reports offsets that do not start at zero or decrease.
	ErrOffsets = errors.New("subword: bad offsets")
	// ErrEmptyRun reports a word without subwords, its mean is undefined.
	ErrEmptyRun = errors.New("subword: empty run")
	// ErrRange reports a subword id past the end of the word table.
	ErrRange = errors.New("subword: id out of range")
)

// Index maps word ids to runs of subword ids.
type Index struct {
	Offsets []uint32
	Idxs    []uint32
}

// FromRuns flattens per word subword lists into an Index.
func FromRuns(runs [][]uint32) (x Index) {
	x.Offsets = make([]uint32, 0, len(runs))
	for _, run := range runs {
		x.Offsets = append(x.Offsets, uint32(len(x.Idxs)))
		x.Idxs = append(x.Idxs, run...)
	}
	return
}

// Words returns the number of words in the index.
func (x Index) Words() int {
	return len(x.Offsets)
}

func (x Index) bounds(w int) (start, end uint32) {
	start = x.Offsets[w]
	if w+1 < len(x.Offsets) {
		end = x.Offsets[w+1]
	} else {
		end = uint32(len(x.Idxs))
	}
	return
}

// Run returns the subword ids of word w, aliasing Idxs.
func (x Index) Run(w int) []uint32 {
	start, end := x.bounds(w)
	return x.Idxs[start:end:end]
}

// RunLen returns the number of subwords of word w.
func (x Index) RunLen(w int) int {
	start, end := x.bounds(w)
	return int(end - start)
}

// Validate checks that every run is non-empty, in order, and only refers to
// rows below rows.
func (x Index) Validate(rows int) error {
	if len(x.Offsets) == 0 {
		return nil
	}
	if x.Offsets[0] != 0 {
		return errors.Wrapf(ErrOffsets, "first offset is %d", x.Offsets[0])
	}
	for w := range x.Offsets {
		start, end := x.bounds(w)
		if end < start || int(end) > len(x.Idxs) {
			return errors.Wrapf(ErrOffsets, "word %d spans [%d, %d) of %d", w, start, end, len(x.Idxs))
		}
		if end == start {
			return errors.Wrapf(ErrEmptyRun, "word %d", w)
		}
	}
	for i, id := range x.Idxs {
		if int(id) >= rows {
			return errors.Wrapf(ErrRange, "position %d holds %d, table has %d rows", i, id, rows)
		}
	}
	return nil
}
