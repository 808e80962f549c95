package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/quartiles/board"
	"github.com/domino14/quartiles/config"
	"github.com/domino14/quartiles/lexicon"
	"github.com/domino14/quartiles/shell"
	"github.com/domino14/quartiles/solver"
)

var (
	GitVersion string
)

//go:embed quartiles.txt
var banner string

func main() {

	// Determine the directory of the executable. We will use this
	// directory to find the word list if an absolute path is not
	// provided for it.
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)
	fmt.Println(banner)
	fmt.Println(GitVersion)

	cfg := &config.Config{}
	args := os.Args[1:]
	if err := cfg.Load(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.AdjustRelativePaths(exPath)

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.DebugKey) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	log.Debug().Msgf("loaded config: %v", cfg.Settings())

	// A missing or empty word source cannot be worked around; fail now
	// rather than report every puzzle as unsolvable.
	lex, err := lexicon.LoadFrequencyList(
		cfg.GetString(config.WordListPathKey),
		cfg.GetFloat64(config.MinZipfKey))
	if err != nil {
		log.Fatal().Err(err).Msg("could not load word list")
	}

	if tiles := cfg.Args(); len(tiles) > 0 {
		if err := solveOnce(cfg, lex, tiles); err != nil {
			log.Fatal().Err(err).Msg("solve failed")
		}
		return
	}

	idleConnsClosed := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("got quit signal...")
		close(idleConnsClosed)
	}()

	sc := shell.NewShellController(cfg, lex)
	go sc.Loop(sig)

	<-idleConnsClosed
	log.Info().Msg("exiting")
}

// solveOnce runs a single puzzle given on the command line and prints
// the result, like the interactive `tiles` + `solve` commands would.
func solveOnce(cfg *config.Config, lex lexicon.Lexicon, tiles []string) error {
	b, err := board.NewBoard(tiles)
	if err != nil {
		return err
	}
	res, err := solver.Solve(context.Background(), b,
		cfg.GetStringSlice(config.KnownKey), lex,
		solver.Options{Threads: cfg.GetInt(config.ThreadsKey)})
	if err != nil {
		return err
	}
	fmt.Println(shell.FormatResult(res, cfg.GetBool(config.AllWordsKey)))
	return nil
}
