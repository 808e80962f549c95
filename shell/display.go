package shell

import (
	"fmt"
	"strings"

	"github.com/domino14/quartiles/solver"
)

const helpText = `Commands:
  tiles <t1 ... t20>   set the puzzle board (20 tiles in reading order)
  known <word ...>     mark words as already found; their tiles are excluded
  forget               clear the known words
  solve                search the board
  show                 reprint the last result
  set all on|off       also list words shorter than four tiles
  help                 this text
  exit                 leave the shell`

// FormatResult renders a solve the way the puzzle is read: full covers
// first, leftover quartiles next, then (optionally) every shorter word.
func FormatResult(res *solver.Result, showAll bool) string {
	var sb strings.Builder

	if len(res.Known) > 0 {
		words := make([]string, len(res.Known))
		for i, k := range res.Known {
			words[i] = fmt.Sprintf("%s [%s]", k.Word, k.Positions)
		}
		fmt.Fprintf(&sb, "Known words: %s\n\n", strings.Join(words, ", "))
	}

	if len(res.Partitions) == 0 {
		sb.WriteString("No full cover found.\n")
	} else {
		sb.WriteString("Full covers (every tile used once):\n")
		for i, p := range res.Partitions {
			fmt.Fprintf(&sb, "%3d. %s\n", i+1, p)
		}
	}

	if len(res.UnusedQuartiles) > 0 {
		sb.WriteString("\nOther 4-tile words:\n")
		for _, q := range res.UnusedQuartiles {
			fmt.Fprintf(&sb, "  %s [%s]\n", q.Letters, q.Positions)
		}
	}

	if showAll && len(res.OtherWords) > 0 {
		sb.WriteString("\nAdditional words:\n")
		for _, w := range res.OtherWords {
			fmt.Fprintf(&sb, "  %-20s [%s] score %.2f\n", w.Letters, w.Positions, w.Score)
		}
	}

	fmt.Fprintf(&sb, "\n%d words, %d full cover(s)\n", res.NumWords(), len(res.Partitions))
	return sb.String()
}
