package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// PositionSet is a bitset over the 20 board positions. The zero value is
// the empty set; all operations return new sets.
type PositionSet uint32

// Full returns the set of every board position.
func Full() PositionSet {
	return PositionSet(1<<NumTiles - 1)
}

// Span returns the set of consecutive positions start..end inclusive.
func Span(start, end int) PositionSet {
	var ps PositionSet
	for p := start; p <= end; p++ {
		ps |= 1 << p
	}
	return ps
}

func (ps PositionSet) Has(p int) bool {
	return ps&(1<<p) != 0
}

func (ps PositionSet) Add(p int) PositionSet {
	return ps | 1<<p
}

func (ps PositionSet) Union(other PositionSet) PositionSet {
	return ps | other
}

func (ps PositionSet) Minus(other PositionSet) PositionSet {
	return ps &^ other
}

func (ps PositionSet) Overlaps(other PositionSet) bool {
	return ps&other != 0
}

// SubsetOf reports whether every position in ps is also in other.
func (ps PositionSet) SubsetOf(other PositionSet) bool {
	return ps&^other == 0
}

func (ps PositionSet) Count() int {
	return bits.OnesCount32(uint32(ps))
}

// Lowest returns the smallest position in the set, or -1 if empty.
func (ps PositionSet) Lowest() int {
	if ps == 0 {
		return -1
	}
	return bits.TrailingZeros32(uint32(ps))
}

// Positions returns the members in ascending order.
func (ps PositionSet) Positions() []int {
	out := make([]int, 0, ps.Count())
	for p := 0; p < NumTiles; p++ {
		if ps.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// String renders the set as dash-joined positions, e.g. "4-5-6-7".
func (ps PositionSet) String() string {
	pos := ps.Positions()
	strs := make([]string, len(pos))
	for i, p := range pos {
		strs[i] = fmt.Sprintf("%d", p)
	}
	return strings.Join(strs, "-")
}
