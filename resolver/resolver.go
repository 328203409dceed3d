// Package resolver performs the static scope-depth analysis described in
// SPEC_FULL.md §4.3: a single walk over the statement tree that resolves
// every variable use to a distance — the number of enclosing block
// scopes to ascend to reach the declaring scope — and writes that
// distance into a side table. The side table lives on the interpreter,
// not here; the resolver only needs a narrow Binder interface to record
// results, which keeps this package from importing the interp package
// at all (interp already imports resolver, so a two-way dependency would
// be a cycle). This mirrors the corpus's glox-family resolvers (see
// other_examples' hosome17-glox resolver.go), which hold a pointer back
// to the interpreter purely to call interpreter.resolve(expr, depth).
package resolver

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxerr"
)

// Binder is the one thing the resolver needs from its consumer: a place
// to record that the Expr occurring at this point resolves `depth` block
// scopes outward from its use site.
type Binder interface {
	Resolve(expr ast.Expr, depth int)
}

type functionType int

const (
	noFunction functionType = iota
	inFunction
	inMethod
)

// scope tracks whether a name has merely been declared (false — seen,
// but its initializer has not finished resolving yet) or fully defined
// (true) in the current scope. A name absent from the top scope map
// means "read it from an enclosing scope, or from globals."
type scope map[string]bool

// Resolver walks a statement tree exactly once, before the interpreter
// ever runs it.
type Resolver struct {
	binder          Binder
	scopes          []scope
	currentFunction functionType
	errors          []*loxerr.Error
}

// New creates a Resolver that will write its findings into binder.
func New(binder Binder) *Resolver {
	return &Resolver{binder: binder}
}

// Resolve walks every top-level statement and returns any errors found —
// reading a variable in its own initializer, redeclaring a name in a
// local scope, or a `return` outside a function (SPEC_FULL.md §4.3/§7).
// A non-empty result means the driver must not invoke the interpreter.
func (r *Resolver) Resolve(stmts []ast.Stmt) []*loxerr.Error {
	r.resolveStatements(stmts)
	return r.errors
}

func (r *Resolver) resolveStatements(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStatement(s)
	}
}

func (r *Resolver) resolveStatement(s ast.Stmt) {
	if s == nil {
		return
	}
	s.Accept(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	if e == nil {
		return
	}
	e.Accept(r)
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }

func (r *Resolver) endScope() { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) peekScope() scope {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare adds name to the innermost scope as "not yet defined". A
// redeclaration in that same local scope is an error — SPEC_FULL.md §3's
// "Declaring the same name twice within the same non-global scope is an
// error" invariant. Global scope (the empty scope stack) permits
// redeclaration, matching the reference interpreter.
func (r *Resolver) declare(name lexer.Token) {
	sc := r.peekScope()
	if sc == nil {
		return
	}
	if _, ok := sc[name.Lexeme]; ok {
		r.errorf(name, "Already a variable with this name in this scope.")
	}
	sc[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	sc := r.peekScope()
	if sc == nil {
		return
	}
	sc[name.Lexeme] = true
}

// resolveLocal scans the scope stack innermost-to-outermost; the first
// scope containing name fixes the distance. No match leaves the side
// table untouched, which the interpreter takes to mean "look in globals."
func (r *Resolver) resolveLocal(expr ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.binder.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionType) {
	enclosing := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStatements(fn.Body)
	r.endScope()

	r.currentFunction = enclosing
}

func (r *Resolver) errorf(tok lexer.Token, message string) {
	r.errors = append(r.errors, loxerr.Resolve(tok.Line, "at '"+tok.Lexeme+"'", message))
}

// --- ast.StmtVisitor ---------------------------------------------------

func (r *Resolver) VisitBlockStmt(s *ast.Block) error {
	r.beginScope()
	r.resolveStatements(s.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitVarStmt(s *ast.Var) error {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.Function) error {
	r.declare(s.Name)
	r.define(s.Name)
	kind := inFunction
	if s.IsMethod {
		kind = inMethod
	}
	r.resolveFunction(s, kind)
	return nil
}

func (r *Resolver) VisitExpressionStmt(s *ast.Expression) error {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitIfStmt(s *ast.If) error {
	r.resolveExpr(s.Condition)
	r.resolveStatement(s.ThenBranch)
	if s.ElseBranch != nil {
		r.resolveStatement(s.ElseBranch)
	}
	return nil
}

func (r *Resolver) VisitPrintStmt(s *ast.Print) error {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *ast.Return) error {
	if r.currentFunction == noFunction {
		r.errorf(s.Keyword, "Can't return from top-level code.")
	}
	if s.Value != nil {
		r.resolveExpr(s.Value)
	}
	return nil
}

func (r *Resolver) VisitWhileStmt(s *ast.While) error {
	r.resolveExpr(s.Condition)
	r.resolveStatement(s.Body)
	return nil
}

// VisitClassStmt declares the class name and resolves each method body as
// an ordinary function scope. `this`/`super` are reserved keywords
// (spec.md §3's keyword list) but the grammar gives them no expression
// production (spec.md §4.2's classDecl has no superclass clause, and
// primary() never matches THIS or SUPER), so there is no method-local
// binding to set up here — methods are resolved, stored, and, per
// SPEC_FULL.md §4.2/§9, left uncallable.
func (r *Resolver) VisitClassStmt(s *ast.Class) error {
	r.declare(s.Name)
	r.define(s.Name)

	for _, m := range s.Methods {
		r.resolveFunction(m, inMethod)
	}
	return nil
}

// --- ast.ExprVisitor -----------------------------------------------------

func (r *Resolver) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	if sc := r.peekScope(); sc != nil {
		if defined, declared := sc[e.Name.Lexeme]; declared && !defined {
			r.errorf(e.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	r.resolveExpr(e.Expression)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *ast.Call) (interface{}, error) {
	r.resolveExpr(e.Callee)
	for _, a := range e.Arguments {
		r.resolveExpr(a)
	}
	return nil, nil
}

func (r *Resolver) VisitGetExpr(e *ast.Get) (interface{}, error) {
	r.resolveExpr(e.Object)
	return nil, nil
}
