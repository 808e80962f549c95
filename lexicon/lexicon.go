package lexicon

import "strings"

// Lexicon is the dictionary capability the solver depends on. HasWord
// expects a normalized (lowercase, alphabetic) string. Score returns a
// commonness rank where higher is more common; implementations that have
// no ranking return 0.
type Lexicon interface {
	Name() string
	HasWord(word string) bool
	Score(word string) float64
}

// Normalize lowercases s and reports whether it is purely a-z.
func Normalize(s string) (string, bool) {
	s = strings.ToLower(s)
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return s, false
		}
	}
	return s, len(s) > 0
}

// AcceptAll accepts every normalized string. Only useful for testing.
type AcceptAll struct{}

func (lex AcceptAll) Name() string {
	return "AcceptAll"
}

func (lex AcceptAll) HasWord(word string) bool {
	_, ok := Normalize(word)
	return ok
}

func (lex AcceptAll) Score(word string) float64 {
	return 0
}
