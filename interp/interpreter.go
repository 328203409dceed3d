// Package interp is the tree-walking evaluator: it owns the global and
// current environments, the resolver's variable-distance side table, and
// orchestrates the full lexer → parser → resolver → execution pipeline
// behind a single Run call, matching SPEC_FULL.md §2's "strictly
// one-directional... within a single run(source) invocation" contract.
// Structurally this plays the role of the teacher's eval.Evaluator
// (eval/evaluator.go): a struct holding scope state and an injectable
// io.Writer, split across per-concern files (statements, expressions,
// calls, control) the way the teacher splits eval_statements.go,
// eval_expressions.go, and eval_controls.go.
package interp

import (
	"io"
	"os"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/native"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
)

// Interpreter evaluates GoLox programs. Globals is the root environment,
// seeded with the native surface (native.Register); Environment is the
// sliding "current scope" reference that block/function execution
// swaps in and restores; Locals is the resolver's output, read-only once
// populated, keyed on the exact *ast.Variable/*ast.Assign node so that two
// occurrences of the same name at different call sites can resolve to
// different distances (SPEC_FULL.md §3/§9).
type Interpreter struct {
	Globals     *environment.Environment
	Environment *environment.Environment
	Locals      map[ast.Expr]int
	Writer      io.Writer
}

// New creates an Interpreter whose print output goes to writer (pass
// os.Stdout for the real CLI, a bytes.Buffer in tests, following the
// teacher's SetWriter convention).
func New(writer io.Writer) *Interpreter {
	globals := environment.New(nil)
	native.Register(globals)
	return &Interpreter{
		Globals:     globals,
		Environment: globals,
		Locals:      make(map[ast.Expr]int),
		Writer:      writer,
	}
}

// NewDefault creates an Interpreter that prints to os.Stdout, the shape
// both the CLI and the REPL want when not under test.
func NewDefault() *Interpreter {
	return New(os.Stdout)
}

// Resolve implements resolver.Binder: it is the narrow write-only hook
// the resolver uses to populate Locals without this package importing
// the resolver package back (see resolver/resolver.go's doc comment).
func (it *Interpreter) Resolve(expr ast.Expr, depth int) {
	it.Locals[expr] = depth
}

// Run lexes, parses, resolves, and executes source as one unit, exactly
// the "source text -> ... -> effects" pipeline in SPEC_FULL.md §2. It
// stops at the first stage that fails: a lexical or parse error skips
// the resolver and interpreter entirely (SPEC_FULL.md §4.2 "Output
// contract"), and a resolve error skips execution. The returned errors
// are annotated with the Stage that produced them so callers can choose
// an exit code via Stage.ExitCode().
func (it *Interpreter) Run(source string) []*loxerr.Error {
	tokens, lexErrs := lexer.New(source).ScanTokens()
	if len(lexErrs) > 0 {
		return lexErrs
	}

	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) > 0 {
		return parseErrs
	}

	if resolveErrs := resolver.New(it).Resolve(stmts); len(resolveErrs) > 0 {
		return resolveErrs
	}

	if err := it.interpret(stmts); err != nil {
		return []*loxerr.Error{err}
	}
	return nil
}

// interpret executes every top-level statement in order, stopping at the
// first runtime error (SPEC_FULL.md §5: "a runtime error short-circuits
// the rest of the run(source) invocation").
func (it *Interpreter) interpret(stmts []ast.Stmt) *loxerr.Error {
	for _, s := range stmts {
		if err := it.execute(s); err != nil {
			if lerr, ok := err.(*loxerr.Error); ok {
				return lerr
			}
			// A *returnSignal escaping every enclosing function call is a
			// resolver gap, not a user-facing runtime error; the resolver
			// rejects top-level `return` specifically so this should be
			// unreachable in practice.
			return loxerr.Runtime(0, "", "return outside of a function.")
		}
	}
	return nil
}

func (it *Interpreter) execute(s ast.Stmt) error {
	return s.Accept(it)
}

func (it *Interpreter) evaluate(e ast.Expr) (interface{}, error) {
	return e.Accept(it)
}

// executeBlock runs stmts inside env, restoring the previous environment
// on every exit path — including an error or a return unwind — matching
// SPEC_FULL.md §4.4's Block rule.
func (it *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := it.Environment
	it.Environment = env
	defer func() { it.Environment = previous }()

	for _, s := range stmts {
		if err := it.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// lookupVariable reads name either directly from the resolved ancestor
// scope (when the resolver recorded a distance for this exact use site)
// or from globals otherwise — SPEC_FULL.md §4.4's Variable rule.
func (it *Interpreter) lookupVariable(name lexer.Token, expr ast.Expr) (interface{}, error) {
	if distance, ok := it.Locals[expr]; ok {
		v, err := it.Environment.GetAt(distance, name.Lexeme)
		if err != nil {
			return nil, loxerr.Runtime(name.Line, "", err.Error())
		}
		return v, nil
	}
	v, err := it.Globals.Get(name.Lexeme)
	if err != nil {
		return nil, loxerr.Runtime(name.Line, "", err.Error())
	}
	return v, nil
}
