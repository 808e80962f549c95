package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	WordListPathKey = "wordlist-path"
	MinZipfKey      = "min-zipf"
	ThreadsKey      = "threads"
	DebugKey        = "debug"
	AllWordsKey     = "all-words"
	KnownKey        = "known"
)

// Config wraps viper. Settings resolve from flags, then QUARTILES_*
// environment variables, then defaults.
type Config struct {
	v    *viper.Viper
	args []string
}

// Load parses args and binds them into the config. The leftover
// positional arguments (the puzzle tiles) are retrievable via Args.
func (c *Config) Load(args []string) error {
	c.v = viper.New()
	c.v.SetEnvPrefix("quartiles")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	c.v.SetDefault(WordListPathKey, "./data/wordlists/english.txt")
	c.v.SetDefault(MinZipfKey, 3.5)
	c.v.SetDefault(ThreadsKey, 1)
	c.v.SetDefault(DebugKey, false)
	c.v.SetDefault(AllWordsKey, false)

	fs := pflag.NewFlagSet("quartiles", pflag.ContinueOnError)
	fs.String(WordListPathKey, c.v.GetString(WordListPathKey),
		"path to a frequency-ranked word list")
	fs.Float64(MinZipfKey, c.v.GetFloat64(MinZipfKey),
		"minimum Zipf frequency for a word to count")
	fs.Int(ThreadsKey, c.v.GetInt(ThreadsKey),
		"number of partition-search threads")
	fs.Bool(DebugKey, c.v.GetBool(DebugKey), "debug logging")
	fs.Bool(AllWordsKey, c.v.GetBool(AllWordsKey),
		"show every valid word, not just quartiles")
	fs.StringSlice(KnownKey, nil,
		"words already found; their tiles are excluded from the search")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()
	return nil
}

// Args returns the positional arguments left after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// AdjustRelativePaths anchors relative path settings at the executable's
// directory so the binary can run from anywhere.
func (c *Config) AdjustRelativePaths(basepath string) {
	p := c.v.GetString(WordListPathKey)
	if !filepath.IsAbs(p) {
		c.v.Set(WordListPathKey, filepath.Clean(filepath.Join(basepath, p)))
	}
}

// Settings returns the current values for display.
func (c *Config) Settings() string {
	return fmt.Sprintf("wordlist-path: %v min-zipf: %v threads: %v all-words: %v debug: %v",
		c.v.GetString(WordListPathKey), c.v.GetFloat64(MinZipfKey),
		c.v.GetInt(ThreadsKey), c.v.GetBool(AllWordsKey), c.v.GetBool(DebugKey))
}
