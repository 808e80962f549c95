// Package solver implements the Quartiles search: enumerating candidate
// words from contiguous tile runs, finding exact covers of the board by
// disjoint quartiles, and ranking the results.
package solver

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/domino14/quartiles/board"
	"github.com/domino14/quartiles/lexicon"
)

// Options tunes a solve. The zero value is a sequential full search.
type Options struct {
	// Threads > 1 parallelizes the partition search. Results are
	// identical to a sequential search.
	Threads int
}

// Result is everything a single solve discovered. Empty Partitions is a
// normal outcome, not a failure.
type Result struct {
	Partitions      []Partition
	UnusedQuartiles []Word
	OtherWords      []Word
	Known           []board.KnownWord
}

// NumWords returns the total count of discovered words.
func (r *Result) NumWords() int {
	n := len(r.UnusedQuartiles) + len(r.OtherWords)
	for _, p := range r.Partitions {
		n += len(p.Quartiles)
	}
	return n
}

// Solve runs the full pipeline on one puzzle: resolve known words to
// board positions, enumerate valid words from the remaining tiles, search
// for full covers by disjoint quartiles, and group the output. It returns
// an error only for invalid input; an unsolvable board is a valid empty
// result.
func Solve(ctx context.Context, b *board.Board, knownWords []string,
	lex lexicon.Lexicon, opts Options) (*Result, error) {

	known, consumed, err := b.MatchKnownWords(knownWords)
	if err != nil {
		return nil, err
	}

	words := FindWords(b, consumed, lex)
	quartiles := Quartiles(words)

	ps := &PartitionSolver{}
	if err := ps.Init(quartiles, board.Full().Minus(consumed), opts.Threads); err != nil {
		return nil, err
	}
	partitions, err := ps.Solve(ctx)
	if err != nil {
		return nil, err
	}

	grouped := Group(words, partitions)
	log.Info().Int("words", len(words)).Int("quartiles", len(quartiles)).
		Int("partitions", len(partitions)).Str("lexicon", lex.Name()).
		Msg("solve complete")
	return &Result{
		Partitions:      grouped.Partitions,
		UnusedQuartiles: grouped.UnusedQuartiles,
		OtherWords:      grouped.OtherWords,
		Known:           known,
	}, nil
}
