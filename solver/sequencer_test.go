package solver

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/quartiles/board"
	"github.com/domino14/quartiles/lexicon"
)

var scenarioTiles = []string{
	"qu", "a", "r", "tile", "s", "a", "re", "fun", "to", "sol",
	"ve", "ea", "ch", "da", "y", "pu", "zz", "le", "no", "w",
}

// scenarioLexicon holds every word findable on scenarioTiles, including
// the five quartiles that form its full cover.
func scenarioLexicon() lexicon.Lexicon {
	return lexicon.NewStatic("scenario", map[string]float64{
		"quartile": 3.6,
		"are":      6.5,
		"fun":      5.3,
		"to":       7.4,
		"solve":    4.8,
		"each":     6.0,
		"day":      6.2,
		"puzzle":   4.4,
		"now":      6.3,
		"sarefun":  3.5,
		"tosolvea": 3.5,
		"chdaypu":  3.5,
		"zzlenow":  3.5,
	})
}

func scenarioBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.NewBoard(scenarioTiles)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestFindWords(t *testing.T) {
	is := is.New(t)
	b := scenarioBoard(t)
	lex := scenarioLexicon()
	words := FindWords(b, 0, lex)
	is.Equal(len(words), 13)

	seen := map[board.PositionSet]bool{}
	for _, w := range words {
		is.True(w.Start >= 0 && w.End < board.NumTiles)
		is.True(w.End >= w.Start && w.TileCount() <= board.MaxWordTiles)
		is.Equal(w.Positions, board.Span(w.Start, w.End))
		is.Equal(w.Letters, b.Concat(w.Start, w.End))
		is.True(lex.HasWord(w.Letters))
		is.True(!seen[w.Positions]) // no duplicate position ranges
		seen[w.Positions] = true
	}
}

func TestFindWordsQuartileSubset(t *testing.T) {
	is := is.New(t)
	words := FindWords(scenarioBoard(t), 0, scenarioLexicon())
	qs := Quartiles(words)
	is.Equal(len(qs), 5)
	for _, q := range qs {
		is.Equal(q.TileCount(), 4)
	}
	is.Equal(qs[0].Letters, "quartile")
	is.Equal(qs[0].Positions, board.Span(0, 3))
}

func TestFindWordsKnownSplitsRun(t *testing.T) {
	is := is.New(t)
	b := scenarioBoard(t)
	// Consuming position 6 kills "are" (5-6) and "sarefun" (4-7), but
	// words entirely outside the known set are unaffected.
	words := FindWords(b, board.Span(6, 6), scenarioLexicon())
	for _, w := range words {
		is.True(!w.Positions.Has(6))
		is.True(w.Letters != "are")
		is.True(w.Letters != "sarefun")
	}
	letters := map[string]bool{}
	for _, w := range words {
		letters[w.Letters] = true
	}
	is.True(letters["fun"])
	is.True(letters["quartile"])
}

func TestFindWordsOverlappingLengths(t *testing.T) {
	is := is.New(t)
	// "to" (1 tile) and "tosolvea" (4 tiles) share start position 8 and
	// are independent words.
	words := FindWords(scenarioBoard(t), 0, scenarioLexicon())
	var short, long bool
	for _, w := range words {
		if w.Start == 8 && w.Letters == "to" {
			short = true
		}
		if w.Start == 8 && w.Letters == "tosolvea" {
			long = true
		}
	}
	is.True(short)
	is.True(long)
}

func TestFindWordsNoMatches(t *testing.T) {
	is := is.New(t)
	words := FindWords(scenarioBoard(t), 0, lexicon.NewStatic("empty", map[string]float64{"unrelated": 5}))
	is.Equal(len(words), 0)
}

func TestScoreFallsBackToTileCount(t *testing.T) {
	is := is.New(t)
	words := FindWords(scenarioBoard(t), 0, lexicon.AcceptAll{})
	for _, w := range words {
		is.Equal(w.Score, float64(w.TileCount()))
	}
}
