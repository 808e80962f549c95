package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	// NumTiles is the number of tiles in every Quartiles puzzle.
	NumTiles = 20
	// MaxWordTiles is the most tiles a single word may use.
	MaxWordTiles = 4
)

var (
	ErrBoardSize     = errors.New("a quartiles board has exactly 20 tiles")
	ErrTileNotLetter = errors.New("tiles must contain only letters")
	ErrKnownNotFound = errors.New("known word does not match any contiguous run of unused tiles")
)

// A Tile is an immutable letter group identified by its board position.
type Tile struct {
	Letters string
	Pos     int
}

// Board is the ordered sequence of 20 tiles for one puzzle. It is
// read-only after construction.
type Board struct {
	tiles []Tile
}

// NewBoard validates and lowercases the tile strings. It returns an
// error naming the violated constraint rather than guessing.
func NewBoard(tileStrs []string) (*Board, error) {
	if len(tileStrs) != NumTiles {
		return nil, fmt.Errorf("%w (got %d)", ErrBoardSize, len(tileStrs))
	}
	tiles := make([]Tile, NumTiles)
	for i, t := range tileStrs {
		if t == "" {
			return nil, fmt.Errorf("%w: tile %d is empty", ErrTileNotLetter, i)
		}
		for _, r := range t {
			if !unicode.IsLetter(r) {
				return nil, fmt.Errorf("%w: tile %d (%q)", ErrTileNotLetter, i, t)
			}
		}
		tiles[i] = Tile{Letters: strings.ToLower(t), Pos: i}
	}
	return &Board{tiles: tiles}, nil
}

// Tile returns the tile at position p.
func (b *Board) Tile(p int) Tile {
	return b.tiles[p]
}

// Letters returns the letters of the tile at position p.
func (b *Board) Letters(p int) string {
	return b.tiles[p].Letters
}

// Concat joins the letters of the tiles at positions start..end inclusive,
// preserving board order.
func (b *Board) Concat(start, end int) string {
	var sb strings.Builder
	for p := start; p <= end; p++ {
		sb.WriteString(b.tiles[p].Letters)
	}
	return sb.String()
}

func (b *Board) String() string {
	strs := make([]string, NumTiles)
	for i, t := range b.tiles {
		strs[i] = t.Letters
	}
	return strings.Join(strs, " ")
}

// A KnownWord records a word the user already found and the positions
// it consumed.
type KnownWord struct {
	Word      string
	Positions PositionSet
}

// MatchKnownWords resolves each already-found word to the leftmost
// contiguous run of not-yet-consumed tiles whose concatenation equals it.
// The run's positions are consumed before matching the next word. A word
// that matches no run is a validation error; the search must not start.
func (b *Board) MatchKnownWords(words []string) ([]KnownWord, PositionSet, error) {
	var consumed PositionSet
	known := make([]KnownWord, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		ps, ok := b.matchRun(w, consumed)
		if !ok {
			return nil, 0, fmt.Errorf("%w: %q", ErrKnownNotFound, w)
		}
		known = append(known, KnownWord{Word: w, Positions: ps})
		consumed = consumed.Union(ps)
	}
	return known, consumed, nil
}

func (b *Board) matchRun(word string, consumed PositionSet) (PositionSet, bool) {
	for start := 0; start < NumTiles; start++ {
		if consumed.Has(start) {
			continue
		}
		rest := word
		for end := start; end < NumTiles && end < start+MaxWordTiles; end++ {
			if consumed.Has(end) {
				break
			}
			letters := b.tiles[end].Letters
			if !strings.HasPrefix(rest, letters) {
				break
			}
			rest = rest[len(letters):]
			if rest == "" {
				return Span(start, end), true
			}
		}
	}
	return 0, false
}
