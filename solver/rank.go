package solver

import (
	"sort"

	"github.com/samber/lo"

	"github.com/domino14/quartiles/board"
)

// SortWords orders words by letter length descending, then score
// descending, then start position ascending. The final key makes the
// ordering total, so repeated runs produce identical output.
func SortWords(words []Word) {
	sort.Slice(words, func(i, j int) bool {
		a, b := words[i], words[j]
		if len(a.Letters) != len(b.Letters) {
			return len(a.Letters) > len(b.Letters)
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.End < b.End
	})
}

// Grouped is the ranked output handed to presentation: quartiles that
// participate in a full cover stay inside their partitions; everything
// else is listed separately.
type Grouped struct {
	Partitions      []Partition
	UnusedQuartiles []Word
	OtherWords      []Word
}

// Group splits the found words around the partition results. Quartiles
// are identified by position range, so a quartile that appears in any
// partition is excluded from the leftover list even if the same letters
// occur elsewhere on the board.
func Group(words []Word, partitions []Partition) Grouped {
	inPartition := map[board.PositionSet]bool{}
	for _, p := range partitions {
		for _, q := range p.Quartiles {
			inPartition[q.Positions] = true
		}
	}

	quartiles := lo.Filter(words, func(w Word, _ int) bool {
		return w.IsQuartile()
	})
	unused := lo.Filter(quartiles, func(w Word, _ int) bool {
		return !inPartition[w.Positions]
	})
	others := lo.Filter(words, func(w Word, _ int) bool {
		return !w.IsQuartile()
	})

	SortWords(unused)
	SortWords(others)
	return Grouped{
		Partitions:      partitions,
		UnusedQuartiles: unused,
		OtherWords:      others,
	}
}
