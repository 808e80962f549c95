package solver

import (
	"fmt"

	"github.com/domino14/quartiles/board"
)

// A Word is a dictionary-valid contiguous run of 1 to 4 tiles. Two Words
// are the same word iff they cover the same position range; identical
// letters at different ranges are distinct board usages.
type Word struct {
	Letters   string
	Start     int
	End       int
	Positions board.PositionSet
	Score     float64
}

// TileCount is the number of tiles the word consumes.
func (w Word) TileCount() int {
	return w.End - w.Start + 1
}

// IsQuartile reports whether the word uses exactly four tiles.
func (w Word) IsQuartile() bool {
	return w.TileCount() == board.MaxWordTiles
}

func (w Word) String() string {
	return fmt.Sprintf("%s[%d-%d]", w.Letters, w.Start, w.End)
}

// A Partition is a set of disjoint quartiles that jointly cover every
// position left open on the board. Members are kept sorted by start
// position so equal partitions compare equal.
type Partition struct {
	Quartiles []Word
}

func (p Partition) String() string {
	s := ""
	for i, q := range p.Quartiles {
		if i > 0 {
			s += " • "
		}
		s += q.Letters
	}
	return s
}

// Covers returns the union of the member quartiles' positions.
func (p Partition) Covers() board.PositionSet {
	var ps board.PositionSet
	for _, q := range p.Quartiles {
		ps = ps.Union(q.Positions)
	}
	return ps
}
