// Package repl implements GoLox's Read-Eval-Print Loop, adapted from the
// teacher's repl/repl.go: the same chzyer/readline-backed line editor and
// fatih/color theming, re-pointed at interp.Interpreter instead of
// eval.Evaluator.
package repl

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/golox/interp"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `   ____       _
  / ___| ___ | |    _____  __
 | |  _ / _ \| |   / _ \ \/ /
 | |_| | (_) | |__| (_) >  <
  \____|\___/|_____\___/_/\_\`

// Repl is an interactive GoLox session. Banner, Version, and Prompt are
// exposed so the CLI entry point can override them without editing this
// package, mirroring the teacher's NewRepl construction parameters.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New builds a Repl with GoLox's default theming.
func New() *Repl {
	return &Repl{
		Banner:  banner,
		Version: "0.1.0",
		Line:    "----------------------------------------",
		Prompt:  "golox >>> ",
	}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "GoLox "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Type your code and press enter.")
	cyanColor.Fprintln(writer, "Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the loop until '.exit', EOF, or a readline error. Every line
// runs through the same Interpreter, so declarations on one line are
// visible to later lines — per SPEC_FULL.md §6, a single
// *interp.Interpreter survives across the whole session and a failing
// line only reports an error, it never ends the loop.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdout: writer,
	})
	if err != nil {
		fmt.Fprintf(writer, "could not start readline: %v\n", err)
		return
	}
	defer rl.Close()

	it := interp.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "Good bye!")
			return
		}
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(writer, "Good bye!")
			return
		}
		rl.SaveHistory(line)

		for _, e := range it.Run(line) {
			redColor.Fprintln(os.Stderr, e.Error())
		}
	}
}
