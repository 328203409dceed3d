package interp

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/object"
)

func (it *Interpreter) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return e.Value, nil
}

func (it *Interpreter) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	return it.evaluate(e.Expression)
}

func (it *Interpreter) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case lexer.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, loxerr.Runtime(e.Operator.Line, "", "Operand must be a number.")
		}
		return -n, nil
	case lexer.BANG:
		return !object.IsTruthy(right), nil
	}
	return nil, loxerr.Runtime(e.Operator.Line, "", "Unknown unary operator.")
}

func (it *Interpreter) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	// Strict left-to-right evaluation (SPEC_FULL.md §4.4): left is fully
	// evaluated, including any side effects, before right is touched.
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case lexer.PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, loxerr.Runtime(e.Operator.Line, "", "Operands must be two numbers or two strings.")
	case lexer.MINUS:
		ln, rn, ok := numericOperands(left, right)
		if !ok {
			return nil, numberError(e.Operator)
		}
		return ln - rn, nil
	case lexer.STAR:
		ln, rn, ok := numericOperands(left, right)
		if !ok {
			return nil, numberError(e.Operator)
		}
		return ln * rn, nil
	case lexer.SLASH:
		ln, rn, ok := numericOperands(left, right)
		if !ok {
			return nil, numberError(e.Operator)
		}
		return ln / rn, nil
	case lexer.GREATER:
		ln, rn, ok := numericOperands(left, right)
		if !ok {
			return nil, numberError(e.Operator)
		}
		return ln > rn, nil
	case lexer.GREATER_EQUAL:
		ln, rn, ok := numericOperands(left, right)
		if !ok {
			return nil, numberError(e.Operator)
		}
		return ln >= rn, nil
	case lexer.LESS:
		ln, rn, ok := numericOperands(left, right)
		if !ok {
			return nil, numberError(e.Operator)
		}
		return ln < rn, nil
	case lexer.LESS_EQUAL:
		ln, rn, ok := numericOperands(left, right)
		if !ok {
			return nil, numberError(e.Operator)
		}
		return ln <= rn, nil
	case lexer.EQUAL_EQUAL:
		return object.IsEqual(left, right), nil
	case lexer.BANG_EQUAL:
		return !object.IsEqual(left, right), nil
	}
	return nil, loxerr.Runtime(e.Operator.Line, "", "Unknown binary operator.")
}

func numericOperands(left, right interface{}) (float64, float64, bool) {
	ln, ok1 := left.(float64)
	rn, ok2 := right.(float64)
	return ln, rn, ok1 && ok2
}

func numberError(op lexer.Token) error {
	return loxerr.Runtime(op.Line, "", "Operands must be numbers.")
}

// VisitLogicalExpr implements mandatory short-circuiting (SPEC_FULL.md
// §4.4 and the "Short-circuit evaluation" testable property): the right
// operand is only ever evaluated when it can change the result.
func (it *Interpreter) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Kind == lexer.OR {
		if object.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !object.IsTruthy(left) {
			return left, nil
		}
	}
	return it.evaluate(e.Right)
}

func (it *Interpreter) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	return it.lookupVariable(e.Name, e)
}

func (it *Interpreter) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	value, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := it.Locals[e]; ok {
		it.Environment.AssignAt(distance, e.Name.Lexeme, value)
		return value, nil
	}
	if err := it.Globals.Assign(e.Name.Lexeme, value); err != nil {
		return nil, loxerr.Runtime(e.Name.Line, "", err.Error())
	}
	return value, nil
}

func (it *Interpreter) VisitGetExpr(e *ast.Get) (interface{}, error) {
	obj, err := it.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*object.Instance)
	if !ok {
		return nil, loxerr.Runtime(e.Name.Line, "", "Only instances have properties.")
	}
	if v, found := instance.Get(e.Name.Lexeme); found {
		return v, nil
	}
	return nil, loxerr.Runtime(e.Name.Line, "", "Undefined property '"+e.Name.Lexeme+"'.")
}
