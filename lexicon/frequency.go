package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// FrequencyList is a Lexicon backed by a frequency-ranked word list file.
// Each line holds a word, optionally followed by whitespace and its Zipf
// frequency (higher = more common). Words below minZipf are skipped at
// load time.
type FrequencyList struct {
	name  string
	words map[string]float64
}

// LoadFrequencyList reads the word list at path. A missing or empty word
// source is a configuration error and must be treated as fatal by the
// caller; an empty dictionary would silently report every puzzle as
// unsolvable.
func LoadFrequencyList(path string, minZipf float64) (*FrequencyList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("word list unavailable: %w", err)
	}
	defer f.Close()

	words := map[string]float64{}
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		word, ok := Normalize(fields[0])
		if !ok {
			continue
		}
		score := 0.0
		if len(fields) > 1 {
			score, err = strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("word list %s line %d: bad frequency %q", path, lineno, fields[1])
			}
			if score < minZipf {
				continue
			}
		}
		words[word] = score
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list %s contains no usable words", path)
	}
	log.Debug().Int("words", len(words)).Str("path", path).
		Float64("min-zipf", minZipf).Msg("loaded word list")
	return &FrequencyList{
		name:  strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		words: words,
	}, nil
}

// NewStatic builds an in-memory FrequencyList from word/score pairs.
func NewStatic(name string, words map[string]float64) *FrequencyList {
	normalized := make(map[string]float64, len(words))
	for w, s := range words {
		if nw, ok := Normalize(w); ok {
			normalized[nw] = s
		}
	}
	return &FrequencyList{name: name, words: normalized}
}

func (lex *FrequencyList) Name() string {
	return lex.name
}

func (lex *FrequencyList) HasWord(word string) bool {
	_, found := lex.words[word]
	return found
}

func (lex *FrequencyList) Score(word string) float64 {
	return lex.words[word]
}

// Len returns the number of loaded words.
func (lex *FrequencyList) Len() int {
	return len(lex.words)
}
