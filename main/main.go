// Command golox is the GoLox CLI: no arguments starts the REPL, one
// argument runs a script file, anything else is a usage error. Adapted
// from the teacher's main/main.go, trimmed to the modes SPEC_FULL.md §6
// names (no server mode: that was the teacher's own extension, not part
// of this language's external interface).
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/golox/interp"
	"github.com/akashmaji946/golox/repl"
)

const (
	exitOK       = 0
	exitDataErr  = 65
	exitSoftware = 70
	exitUsage    = 64
)

func main() {
	switch len(os.Args) {
	case 1:
		repl.New().Start(os.Stdout)
	case 2:
		os.Exit(runFile(os.Args[1]))
	default:
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		os.Exit(exitUsage)
	}
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file %q: %v\n", path, err)
		return exitDataErr
	}

	it := interp.NewDefault()
	errs := it.Run(string(source))
	if len(errs) == 0 {
		return exitOK
	}

	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	return errs[0].Stage.ExitCode()
}
