package interp

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/object"
)

func (it *Interpreter) VisitPrintStmt(s *ast.Print) error {
	v, err := it.evaluate(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(it.Writer, object.Stringify(v))
	return nil
}

func (it *Interpreter) VisitExpressionStmt(s *ast.Expression) error {
	_, err := it.evaluate(s.Expression)
	return err
}

func (it *Interpreter) VisitVarStmt(s *ast.Var) error {
	var value interface{}
	if s.Initializer != nil {
		v, err := it.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	it.Environment.Define(s.Name.Lexeme, value)
	return nil
}

func (it *Interpreter) VisitBlockStmt(s *ast.Block) error {
	return it.executeBlock(s.Statements, environment.New(it.Environment))
}

func (it *Interpreter) VisitIfStmt(s *ast.If) error {
	cond, err := it.evaluate(s.Condition)
	if err != nil {
		return err
	}
	switch {
	case object.IsTruthy(cond):
		return it.execute(s.ThenBranch)
	case s.ElseBranch != nil:
		return it.execute(s.ElseBranch)
	}
	return nil
}

func (it *Interpreter) VisitWhileStmt(s *ast.While) error {
	for {
		cond, err := it.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !object.IsTruthy(cond) {
			return nil
		}
		if err := it.execute(s.Body); err != nil {
			return err
		}
	}
}

// VisitFunctionStmt constructs a User callable that captures the current
// environment as its closure (SPEC_FULL.md §4.4) and binds it to the
// function's own name in that same environment, so later statements —
// and, thanks to the closure capturing the environment by reference
// rather than by value, the function's own body — can call it, including
// recursively.
func (it *Interpreter) VisitFunctionStmt(s *ast.Function) error {
	fn := &object.Function{Declaration: s, Closure: it.Environment}
	it.Environment.Define(s.Name.Lexeme, fn)
	return nil
}

func (it *Interpreter) VisitReturnStmt(s *ast.Return) error {
	var value interface{}
	if s.Value != nil {
		v, err := it.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &returnSignal{value: value}
}

// VisitClassStmt builds an object.Class from the declaration's method
// list and binds it to the class name. Per SPEC_FULL.md §4.2/§9, methods
// are stored but not dispatched through Get/Call yet — calling a class
// always yields an empty Instance regardless of what methods it has.
func (it *Interpreter) VisitClassStmt(s *ast.Class) error {
	methods := make(map[string]*object.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &object.Function{Declaration: m, Closure: it.Environment}
	}

	class := &object.Class{Name: s.Name.Lexeme, Methods: methods}
	it.Environment.Define(s.Name.Lexeme, class)
	return nil
}
