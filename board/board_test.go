package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

var testTiles = []string{
	"qu", "a", "r", "tile", "s", "a", "re", "fun", "to", "sol",
	"ve", "ea", "ch", "da", "y", "pu", "zz", "le", "no", "w",
}

func TestNewBoard(t *testing.T) {
	is := is.New(t)
	b, err := NewBoard(testTiles)
	is.NoErr(err)
	is.Equal(b.Letters(0), "qu")
	is.Equal(b.Letters(19), "w")
	is.Equal(b.Tile(3).Pos, 3)
}

func TestNewBoardLowercases(t *testing.T) {
	is := is.New(t)
	tiles := append([]string{}, testTiles...)
	tiles[0] = "QU"
	tiles[3] = "TiLe"
	b, err := NewBoard(tiles)
	is.NoErr(err)
	is.Equal(b.Letters(0), "qu")
	is.Equal(b.Letters(3), "tile")
}

func TestNewBoardWrongCount(t *testing.T) {
	is := is.New(t)
	_, err := NewBoard(testTiles[:19])
	is.True(errors.Is(err, ErrBoardSize))
	_, err = NewBoard(append(append([]string{}, testTiles...), "x"))
	is.True(errors.Is(err, ErrBoardSize))
}

func TestNewBoardNonLetter(t *testing.T) {
	is := is.New(t)
	tiles := append([]string{}, testTiles...)
	tiles[7] = "fu1"
	_, err := NewBoard(tiles)
	is.True(errors.Is(err, ErrTileNotLetter))
	tiles[7] = ""
	_, err = NewBoard(tiles)
	is.True(errors.Is(err, ErrTileNotLetter))
}

func TestConcat(t *testing.T) {
	is := is.New(t)
	b, err := NewBoard(testTiles)
	is.NoErr(err)
	is.Equal(b.Concat(0, 3), "quartile")
	is.Equal(b.Concat(4, 4), "s")
	is.Equal(b.Concat(16, 19), "zzlenow")
}

func TestMatchKnownWords(t *testing.T) {
	is := is.New(t)
	b, err := NewBoard(testTiles)
	is.NoErr(err)

	known, consumed, err := b.MatchKnownWords([]string{"quartile"})
	is.NoErr(err)
	is.Equal(len(known), 1)
	is.Equal(known[0].Positions, Span(0, 3))
	is.Equal(consumed, Span(0, 3))
}

func TestMatchKnownWordsLeftmost(t *testing.T) {
	is := is.New(t)
	b, err := NewBoard(testTiles)
	is.NoErr(err)

	// "a" appears at positions 1 and 5; the leftmost run wins, and a
	// second match then consumes the next one.
	known, consumed, err := b.MatchKnownWords([]string{"a", "a"})
	is.NoErr(err)
	is.Equal(known[0].Positions, Span(1, 1))
	is.Equal(known[1].Positions, Span(5, 5))
	is.Equal(consumed.Count(), 2)
}

func TestMatchKnownWordsNotFound(t *testing.T) {
	is := is.New(t)
	b, err := NewBoard(testTiles)
	is.NoErr(err)

	_, _, err = b.MatchKnownWords([]string{"xylophone"})
	is.True(errors.Is(err, ErrKnownNotFound))

	// "funto" exists on the board but only as a 2-tile run; a word whose
	// letters straddle a consumed tile must not match.
	_, consumed, err := b.MatchKnownWords([]string{"fun"})
	is.NoErr(err)
	is.Equal(consumed, Span(7, 7))
	_, _, err = b.MatchKnownWords([]string{"fun", "funto"})
	is.True(errors.Is(err, ErrKnownNotFound))
}

func TestPositionSet(t *testing.T) {
	is := is.New(t)
	ps := Span(4, 7)
	is.Equal(ps.Count(), 4)
	is.True(ps.Has(4))
	is.True(ps.Has(7))
	is.True(!ps.Has(8))
	is.Equal(ps.Lowest(), 4)
	is.Equal(PositionSet(0).Lowest(), -1)

	other := Span(7, 10)
	is.True(ps.Overlaps(other))
	is.True(!ps.Overlaps(Span(8, 11)))
	is.Equal(ps.Union(other).Count(), 7)
	is.Equal(Full().Count(), NumTiles)
	is.True(ps.SubsetOf(Full()))
	is.True(!Full().SubsetOf(ps))
	is.Equal(Full().Minus(Full()), PositionSet(0))
	is.Equal(ps.Positions(), []int{4, 5, 6, 7})
	is.Equal(ps.String(), "4-5-6-7")
}
