package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/domino14/quartiles/board"
	"github.com/domino14/quartiles/config"
	"github.com/domino14/quartiles/lexicon"
	"github.com/domino14/quartiles/solver"
)

var errExit = errors.New("sending quit signal")

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// ShellController runs the interactive puzzle session: set the tiles,
// mark words as found, and re-solve the remainder.
type ShellController struct {
	l   *readline.Instance
	out io.Writer
	cfg *config.Config
	lex lexicon.Lexicon

	curBoard   *board.Board
	knownWords []string
	showAll    bool
	lastResult *solver.Result
}

func NewShellController(cfg *config.Config, lex lexicon.Lexicon) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mquartiles>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{
		l:       l,
		out:     l.Stderr(),
		cfg:     cfg,
		lex:     lex,
		showAll: cfg.GetBool(config.AllWordsKey),
	}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) setTiles(line string) error {
	b, err := board.NewBoard(strings.Fields(line))
	if err != nil {
		return err
	}
	sc.curBoard = b
	sc.knownWords = nil
	sc.lastResult = nil
	sc.showMessage("Board set: " + b.String())
	return nil
}

func (sc *ShellController) addKnown(line string) error {
	if sc.curBoard == nil {
		return errors.New("set the tiles first")
	}
	words := strings.Fields(strings.ToLower(line))
	if len(words) == 0 {
		return errors.New("provide at least one word")
	}
	// validate the whole known set before committing it
	candidate := append(append([]string{}, sc.knownWords...), words...)
	if _, _, err := sc.curBoard.MatchKnownWords(candidate); err != nil {
		return err
	}
	sc.knownWords = candidate
	sc.showMessage("Known words: " + strings.Join(sc.knownWords, ", "))
	return nil
}

func (sc *ShellController) solve() error {
	if sc.curBoard == nil {
		return errors.New("set the tiles first")
	}
	res, err := solver.Solve(context.Background(), sc.curBoard, sc.knownWords,
		sc.lex, solver.Options{Threads: sc.cfg.GetInt(config.ThreadsKey)})
	if err != nil {
		return err
	}
	sc.lastResult = res
	sc.showMessage(FormatResult(res, sc.showAll))
	return nil
}

func (sc *ShellController) show() error {
	if sc.lastResult == nil {
		return errors.New("nothing solved yet")
	}
	sc.showMessage(FormatResult(sc.lastResult, sc.showAll))
	return nil
}

func (sc *ShellController) set(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != "all" {
		return errors.New("usage: set all on|off")
	}
	switch fields[1] {
	case "on":
		sc.showAll = true
	case "off":
		sc.showAll = false
	default:
		return errors.New("usage: set all on|off")
	}
	sc.showMessage("show all words: " + fields[1])
	return nil
}

func (sc *ShellController) commandSwitch(line string) error {
	switch {
	case strings.HasPrefix(line, "tiles "):
		if err := sc.setTiles(line[6:]); err != nil {
			sc.showError(err)
		}
	case strings.HasPrefix(line, "known "):
		if err := sc.addKnown(line[6:]); err != nil {
			sc.showError(err)
		}
	case line == "forget":
		sc.knownWords = nil
		sc.showMessage("Cleared known words")
	case line == "solve":
		if err := sc.solve(); err != nil {
			sc.showError(err)
		}
	case line == "show":
		if err := sc.show(); err != nil {
			sc.showError(err)
		}
	case strings.HasPrefix(line, "set "):
		if err := sc.set(line[4:]); err != nil {
			sc.showError(err)
		}
	case line == "help":
		sc.showMessage(helpText)
	case line == "exit" || line == "quit":
		return errExit
	default:
		if line != "" {
			sc.showMessage("Unknown command; try `help`")
		}
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		if err := sc.commandSwitch(line); err != nil {
			sig <- syscall.SIGINT
			break
		}
	}
	log.Debug().Msg("exiting readline loop")
}
