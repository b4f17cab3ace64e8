// Package repl provides an interactive terminal front-end for the calculator.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/keys"

	"github.com/peterh/liner"
	"github.com/spf13/afero"
)

// UnknownCommand is printed for input the shell does not understand
const UnknownCommand = "Unknown command"

const helpText = `Commands:
  digit N        enter digit N (0-9)
  decimal        enter a decimal point
  op X           set operator (+ - * / ^)
  equals, =      complete the pending operation
  sign           toggle the sign
  percent        divide the operand by 100
  ce             clear entry
  clear          clear all
  del            delete the last character
  fn NAME        apply sqrt, sin, cos, tan, ln, log or inv
  pi             enter pi
  mc mr ms m+ m- memory clear, recall, store, add, subtract
  keys SEQ       press a key sequence, e.g. keys 5+2==
  history        list past results
  use N          load history entry N
  clearhistory   remove all history
  state          show the full calculator state
  help           show this help
  quit           exit`

// Shell dispatches text commands to a calculator
type Shell struct {
	calc        *calc.Calculator
	logger      *slog.Logger
	fs          afero.Fs
	historyPath string
}

// NewShell creates a shell driving c. Line history is kept at historyPath
// on fs when historyPath is not empty.
func NewShell(c *calc.Calculator, fs afero.Fs, historyPath string, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.Default()
	}

	return &Shell{
		calc:        c,
		logger:      logger,
		fs:          fs,
		historyPath: historyPath,
	}
}

// Prompt returns the prompt showing the current display
func (s *Shell) Prompt() string {
	return "[" + s.calc.Display() + "] > "
}

// Exec runs one command line and returns the text to print. It reports
// true when the shell should exit.
func (s *Shell) Exec(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	command := strings.ToLower(fields[0])
	args := fields[1:]

	switch command {
	case "quit", "exit":
		return "", true
	case "help":
		return helpText, false
	case "digit":
		if len(args) != 1 || len(args[0]) != 1 || args[0][0] < '0' || args[0][0] > '9' {
			return "Usage: digit N", false
		}
		s.calc.InputDigit(args[0])
	case "decimal", ".":
		s.calc.InputDecimal()
	case "op":
		if len(args) != 1 {
			return "Usage: op X", false
		}
		op, ok := calc.ParseOperator(args[0])
		if !ok {
			return fmt.Sprintf("Unknown operator: %s", args[0]), false
		}
		s.calc.SetOperator(op)
	case "equals", "=":
		s.calc.Equals()
	case "sign":
		s.calc.ToggleSign()
	case "percent", "%":
		s.calc.Percent()
	case "ce":
		s.calc.ClearEntry()
	case "clear":
		s.calc.ClearAll()
	case "del":
		s.calc.Backspace()
	case "fn":
		if len(args) != 1 {
			return "Usage: fn NAME", false
		}
		fn, ok := calc.ParseFunction(args[0])
		if !ok {
			return fmt.Sprintf("Unknown function: %s", args[0]), false
		}
		s.calc.ApplyUnary(fn)
	case "pi":
		s.calc.SetPi()
	case "mc":
		s.calc.MemoryClear()
	case "mr":
		s.calc.MemoryRecall()
	case "ms":
		s.calc.MemoryStore()
	case "m+":
		s.calc.MemoryAdd()
	case "m-":
		s.calc.MemorySubtract()
	case "keys":
		if len(args) == 0 {
			return "Usage: keys SEQ", false
		}
		unknown := keys.PressSequence(s.calc, strings.Join(args, ""))
		if len(unknown) > 0 {
			return fmt.Sprintf("Ignored unknown keys: %s", strings.Join(unknown, " ")), false
		}
	case "history":
		return s.history(), false
	case "use":
		return s.use(args), false
	case "clearhistory":
		s.calc.ClearHistory()
		return "History cleared.", false
	case "state":
		return s.state(), false
	default:
		return UnknownCommand, false
	}

	return s.calc.Expression(), false
}

func (s *Shell) history() string {
	entries := s.calc.History()
	if len(entries) == 0 {
		return "History is empty."
	}

	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%2d. %s = %s", i+1, entry.Expression, entry.Result)
	}
	return b.String()
}

func (s *Shell) use(args []string) string {
	if len(args) != 1 {
		return "Usage: use N"
	}

	index, err := strconv.Atoi(args[0])
	entries := s.calc.History()
	if err != nil || index < 1 || index > len(entries) {
		return fmt.Sprintf("No history entry %s", args[0])
	}

	entry := entries[index-1]
	s.calc.SetFromHistory(entry.Value)
	return fmt.Sprintf("Loaded %s = %s", entry.Expression, entry.Result)
}

func (s *Shell) state() string {
	state := s.calc.Snapshot()

	lines := []string{
		"display:    " + state.Display,
		"expression: " + state.Expression,
		"memory:     " + strconv.FormatFloat(state.Memory, 'g', -1, 64),
	}
	if state.Pending.Valid() {
		lines = append(lines, "pending:    "+state.Pending.Symbol())
	}
	if state.Error {
		lines = append(lines, "error:      true")
	}
	return strings.Join(lines, "\n")
}

// Run reads commands from the terminal until quit, EOF, Ctrl-C or ctx is done
func (s *Shell) Run(ctx context.Context, out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	s.readHistory(line)
	defer s.writeHistory(line)

	fmt.Fprintln(out, `Type "help" for commands.`)

	for ctx.Err() == nil {
		input, err := line.Prompt(s.Prompt())
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		output, quit := s.Exec(input)
		if output != "" {
			fmt.Fprintln(out, output)
		}
		if quit {
			return nil
		}
	}

	return nil
}

func (s *Shell) readHistory(line *liner.State) {
	if s.historyPath == "" {
		return
	}

	f, err := s.fs.Open(s.historyPath)
	if err != nil {
		return
	}
	defer f.Close()

	if _, err := line.ReadHistory(f); err != nil {
		s.logger.Warn("Failed to read line history", "path", s.historyPath, "error", err)
	}
}

func (s *Shell) writeHistory(line *liner.State) {
	if s.historyPath == "" {
		return
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.historyPath), 0o755); err != nil {
		s.logger.Warn("Failed to create line history directory", "path", s.historyPath, "error", err)
		return
	}

	f, err := s.fs.OpenFile(s.historyPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		s.logger.Warn("Failed to open line history", "path", s.historyPath, "error", err)
		return
	}
	defer f.Close()

	if _, err := line.WriteHistory(f); err != nil {
		s.logger.Warn("Failed to write line history", "path", s.historyPath, "error", err)
	}
}
