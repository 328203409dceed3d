// Command golox-demo is a small showcase binary, kept at the module root
// the way the teacher keeps a root-level main.go alongside its real
// main/main.go CLI. It parses a handful of sample snippets and prints
// their AST via ast.Printer, then runs the last of them through the real
// interpreter with the DebugTable-only `type()` native wired into its
// globals. The sample that runs does not call `type()`.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/interp"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/native"
	"github.com/akashmaji946/golox/parser"
)

var samples = []string{
	`print 1 + 2 * 3;`,
	`var a = "outer";
{
  var a = "inner";
  print a;
}
print a;`,
	`fun fib(n) {
  if (n < 2) return n;
  return fib(n - 1) + fib(n - 2);
}
print fib(10);`,
}

func main() {
	fmt.Println("=== AST dump ===")
	for _, src := range samples {
		dumpAST(src)
	}

	fmt.Println("=== interpreter run (with debug natives) ===")
	it := interp.New(os.Stdout)
	for name, fn := range native.DebugTable() {
		it.Globals.Define(name, fn)
	}
	for _, err := range it.Run(samples[len(samples)-1]) {
		fmt.Fprintln(os.Stderr, err.Error())
	}
}

func dumpAST(src string) {
	tokens, lexErrs := lexer.New(src).ScanTokens()
	for _, e := range lexErrs {
		fmt.Println(e.Error())
	}
	if len(lexErrs) > 0 {
		return
	}

	stmts, parseErrs := parser.New(tokens).Parse()
	for _, e := range parseErrs {
		fmt.Println(e.Error())
	}
	if len(parseErrs) > 0 {
		return
	}

	p := &ast.Printer{}
	fmt.Print(p.Print(stmts))
	fmt.Println()
}
