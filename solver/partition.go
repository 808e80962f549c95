package solver

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/quartiles/board"
)

// PartitionSolver searches for every way to cover the open board
// positions with disjoint quartiles (an exact cover). Candidates are
// referenced by index; covered positions are tracked in a bitset rather
// than rebuilt per branch.
type PartitionSolver struct {
	quartiles  []Word
	target     board.PositionSet
	byPosition [board.NumTiles][]int
	threads    int
}

// Init prepares the solver. target is the set of positions still open on
// the board; quartiles outside it are discarded. threads > 1 fans the
// first branch level out over that many workers.
func (s *PartitionSolver) Init(quartiles []Word, target board.PositionSet, threads int) error {
	s.target = target
	s.threads = threads
	if s.threads < 1 {
		s.threads = 1
	}
	s.quartiles = s.quartiles[:0]
	for i := range s.byPosition {
		s.byPosition[i] = nil
	}
	for _, q := range quartiles {
		if !q.Positions.SubsetOf(target) {
			continue
		}
		idx := len(s.quartiles)
		s.quartiles = append(s.quartiles, q)
		for _, p := range q.Positions.Positions() {
			s.byPosition[p] = append(s.byPosition[p], idx)
		}
	}
	return nil
}

// Solve returns all full covers. An empty result is a normal outcome, in
// particular whenever the number of open positions is not a multiple of
// four, since no set of quartiles can ever cover it.
func (s *PartitionSolver) Solve(ctx context.Context) ([]Partition, error) {
	if s.target == 0 || s.target.Count()%board.MaxWordTiles != 0 {
		return []Partition{}, nil
	}

	var partitions []Partition
	var err error
	if s.threads > 1 {
		partitions, err = s.solveParallel(ctx)
	} else {
		partitions = []Partition{}
		err = s.search(ctx, 0, nil, &partitions)
	}
	if err != nil {
		return nil, err
	}

	// Within a partition members already come out sorted by start, since
	// the search always extends the cover at its smallest open position.
	// Order the partitions themselves for a deterministic result
	// regardless of thread count.
	sort.Slice(partitions, func(i, j int) bool {
		return lessPartitions(partitions[i], partitions[j])
	})
	log.Debug().Int("partitions", len(partitions)).
		Int("quartiles", len(s.quartiles)).Msg("partition search done")
	return partitions, nil
}

// search branches over every candidate covering the smallest uncovered
// position. That ordering bounds the branch factor by the number of
// quartiles touching a single tile, and guarantees each cover is found
// exactly once (every member is chosen at its own start position).
func (s *PartitionSolver) search(ctx context.Context, covered board.PositionSet,
	chosen []int, out *[]Partition) error {

	if covered == s.target {
		members := make([]Word, len(chosen))
		for i, qi := range chosen {
			members[i] = s.quartiles[qi]
		}
		*out = append(*out, Partition{Quartiles: members})
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p := s.target.Minus(covered).Lowest()
	for _, qi := range s.byPosition[p] {
		q := s.quartiles[qi]
		if q.Positions.Overlaps(covered) {
			continue
		}
		err := s.search(ctx, covered.Union(q.Positions), append(chosen, qi), out)
		if err != nil {
			return err
		}
	}
	return nil
}

// solveParallel explores each first-level branch independently and unions
// the per-branch results. Branch subtrees share no mutable state.
func (s *PartitionSolver) solveParallel(ctx context.Context) ([]Partition, error) {
	first := s.byPosition[s.target.Lowest()]
	results := make([][]Partition, len(first))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.threads)
	for branch, qi := range first {
		branch, qi := branch, qi
		g.Go(func() error {
			q := s.quartiles[qi]
			out := []Partition{}
			err := s.search(ctx, q.Positions, []int{qi}, &out)
			if err != nil {
				return err
			}
			results[branch] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := []Partition{}
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged, nil
}

func lessPartitions(a, b Partition) bool {
	for i := range a.Quartiles {
		if i >= len(b.Quartiles) {
			return false
		}
		if a.Quartiles[i].Start != b.Quartiles[i].Start {
			return a.Quartiles[i].Start < b.Quartiles[i].Start
		}
		if a.Quartiles[i].End != b.Quartiles[i].End {
			return a.Quartiles[i].End < b.Quartiles[i].End
		}
	}
	return len(a.Quartiles) < len(b.Quartiles)
}
