/*
File    : lux/repl/repl.go

Package repl implements the Read-Eval-Print Loop, grounded on the
teacher's repl/repl.go (github.com/akashmaji946/go-mix): readline for
line editing and history, colored error/result output via fatih/color,
and a persistent evaluator so definitions accumulate across the
session. REPL-local commands "/exit" and "/scope" are grounded on the
teacher main package's documented REPL commands.
*/
package repl

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/luxlang/lux/config"
	"github.com/luxlang/lux/eval"
	"github.com/luxlang/lux/lexer"
	"github.com/luxlang/lux/parser"
	"github.com/luxlang/lux/stdlib"
	"github.com/luxlang/lux/values"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session. Construct one with New
// and run it with Start.
type Repl struct {
	Cfg *config.Config
}

// New creates a Repl from cfg. A nil cfg falls back to config.Default().
func New(cfg *config.Config) *Repl {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Repl{Cfg: cfg}
}

func (r *Repl) printBanner(w io.Writer) {
	line := strings.Repeat("-", 60)
	blueColor.Fprintln(w, line)
	greenColor.Fprintln(w, r.Cfg.Banner)
	blueColor.Fprintln(w, line)
	yellowColor.Fprintf(w, "Version: %s | Author: %s | License: %s\n", r.Cfg.Version, r.Cfg.Author, r.Cfg.License)
	blueColor.Fprintln(w, line)
	cyanColor.Fprintln(w, "Welcome to Lux!")
	cyanColor.Fprintln(w, "Type an expression or statement and press enter.")
	cyanColor.Fprintln(w, "Commands: /exit  /scope")
	blueColor.Fprintln(w, line)
}

// Start runs the REPL main loop against os.Stdin via readline (which,
// like the teacher's implementation, owns its own input source; Start
// takes no reader). Output goes to w.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Cfg.Prompt,
		HistoryFile: r.Cfg.HistoryFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator(stdlib.NewSandbox(w))
	evaluator.SetWriter(w)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl+D, or readline.ErrInterrupt
			fmt.Fprintln(w, "Good Bye!")
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "/exit" {
			fmt.Fprintln(w, "Good Bye!")
			return nil
		}
		if line == "/scope" {
			r.printScope(w, evaluator)
			continue
		}
		r.evalLine(w, line, evaluator)
	}
}

func (r *Repl) printScope(w io.Writer, evaluator *eval.Evaluator) {
	bindings := evaluator.Scope.Bindings()
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cyanColor.Fprintf(w, "%s = %s\n", name, values.Inspect(bindings[name]))
	}
}

func (r *Repl) evalLine(w io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(w, "[RUNTIME ERROR] %v\n", rec)
		}
	}()

	prog, err := parser.New(line).Parse()
	if err != nil {
		if lexErr, ok := err.(*lexer.LexError); ok {
			redColor.Fprintf(w, "[LEXICAL ERROR] %s\n", lexErr.Error())
			return
		}
		redColor.Fprintf(w, "[SYNTAX ERROR] %s\n", err.Error())
		return
	}

	result, err := evaluator.Eval(prog)
	if err != nil {
		redColor.Fprintf(w, "[RUNTIME ERROR] %s\n", err.Error())
		return
	}
	if _, isNil := result.(*values.Nil); !isNil && result != nil {
		yellowColor.Fprintln(w, values.Inspect(result))
	}
}
