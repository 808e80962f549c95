package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/quartiles/board"
	"github.com/domino14/quartiles/lexicon"
)

// FindWords enumerates every contiguous run of 1 to 4 tiles that avoids
// the known positions and passes the lexicon's membership test. Tiles may
// not be skipped or reordered within a run; a known position inside an
// otherwise valid range excludes the whole candidate. Each position range
// appears at most once in the output, sorted by (start, length).
func FindWords(b *board.Board, known board.PositionSet, lex lexicon.Lexicon) []Word {
	words := []Word{}
	for start := 0; start < board.NumTiles; start++ {
		if known.Has(start) {
			continue
		}
		for end := start; end < board.NumTiles && end < start+board.MaxWordTiles; end++ {
			if known.Has(end) {
				// runs can't straddle a consumed tile
				break
			}
			letters := b.Concat(start, end)
			if !lex.HasWord(letters) {
				continue
			}
			words = append(words, Word{
				Letters:   letters,
				Start:     start,
				End:       end,
				Positions: board.Span(start, end),
				Score:     scoreWord(lex, letters, end-start+1),
			})
		}
	}
	log.Debug().Int("words", len(words)).Msg("sequencer done")
	return words
}

// scoreWord prefers the lexicon's frequency rank; lexicons without one
// fall back to the tile count.
func scoreWord(lex lexicon.Lexicon, letters string, tiles int) float64 {
	if s := lex.Score(letters); s != 0 {
		return s
	}
	return float64(tiles)
}

// Quartiles filters words down to the 4-tile subset, preserving order.
func Quartiles(words []Word) []Word {
	qs := []Word{}
	for _, w := range words {
		if w.IsQuartile() {
			qs = append(qs, w)
		}
	}
	return qs
}
