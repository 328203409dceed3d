package interp

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/object"
)

// VisitCallExpr evaluates the callee and every argument left-to-right,
// then dispatches by the callee's runtime kind (SPEC_FULL.md §4.4).
func (it *Interpreter) VisitCallExpr(e *ast.Call) (interface{}, error) {
	callee, err := it.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := it.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	return it.callValue(callee, args, e.Paren)
}

func (it *Interpreter) callValue(callee interface{}, args []interface{}, paren lexer.Token) (interface{}, error) {
	callable, ok := callee.(object.Callable)
	if !ok {
		return nil, loxerr.Runtime(paren.Line, "", "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, loxerr.Runtime(paren.Line, "", fmt.Sprintf(
			"Expected %d arguments but got %d.", callable.Arity(), len(args)))
	}

	switch fn := callable.(type) {
	case *object.Native:
		return fn.Fn(args)
	case *object.Function:
		return it.callFunction(fn, args)
	case *object.Class:
		return object.NewInstance(fn), nil
	default:
		return nil, loxerr.Runtime(paren.Line, "", "Can only call functions and classes.")
	}
}

// callFunction builds a fresh environment enclosing the function's
// captured closure, binds parameters to arguments positionally, and
// executes the body as a block in that environment. A return unwind
// supplies the call's result; falling off the end of the body yields nil
// (SPEC_FULL.md §4.4 "User-function invocation").
func (it *Interpreter) callFunction(fn *object.Function, args []interface{}) (interface{}, error) {
	env := environment.New(fn.Closure)
	for i, p := range fn.Declaration.Params {
		env.Define(p.Lexeme, args[i])
	}

	err := it.executeBlock(fn.Declaration.Body, env)
	if ret, ok := err.(*returnSignal); ok {
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}
