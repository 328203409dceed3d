package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	tokens, lexErrs := lexer.New(src).ScanTokens()
	require.Empty(t, lexErrs)
	stmts, errs := New(tokens).Parse()
	require.Empty(t, errs, "unexpected parse errors: %v", errs)
	return stmts
}

func TestParse_VarDeclaration(t *testing.T) {
	stmts := parse(t, `var x = 1 + 2;`)
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	bin, ok := v.Initializer.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.PLUS, bin.Operator.Kind)
}

func TestParse_Precedence(t *testing.T) {
	// 1 + 2 * 3 should bind as 1 + (2 * 3).
	stmts := parse(t, `1 + 2 * 3;`)
	exprStmt := stmts[0].(*ast.Expression)
	add := exprStmt.Expression.(*ast.Binary)
	assert.Equal(t, lexer.PLUS, add.Operator.Kind)
	_, ok := add.Left.(*ast.Literal)
	require.True(t, ok)
	mul, ok := add.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.STAR, mul.Operator.Kind)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.Len(t, stmts, 1)
	outer, ok := stmts[0].(*ast.Block)
	require.True(t, ok, "for with an initializer desugars to an outer block")
	require.Len(t, outer.Statements, 2)

	_, isVar := outer.Statements[0].(*ast.Var)
	assert.True(t, isVar)

	whileStmt, ok := outer.Statements[1].(*ast.While)
	require.True(t, ok)
	body, ok := whileStmt.Body.(*ast.Block)
	require.True(t, ok, "a for with an increment wraps the body in a block")
	require.Len(t, body.Statements, 2)
}

func TestParse_ForWithoutClausesUsesTrueCondition(t *testing.T) {
	stmts := parse(t, `for (;;) print 1;`)
	whileStmt, ok := stmts[0].(*ast.While)
	require.True(t, ok)
	lit, ok := whileStmt.Condition.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParse_FunctionAndCall(t *testing.T) {
	stmts := parse(t, `fun add(a, b) { return a + b; } add(1, 2);`)
	require.Len(t, stmts, 2)
	fn := stmts[0].(*ast.Function)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)

	call := stmts[1].(*ast.Expression).Expression.(*ast.Call)
	require.Len(t, call.Arguments, 2)
}

func TestParse_ClassWithMethods(t *testing.T) {
	stmts := parse(t, `class Greeter { greet() { print "hi"; } }`)
	require.Len(t, stmts, 1)
	class := stmts[0].(*ast.Class)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "greet", class.Methods[0].Name.Lexeme)
	assert.True(t, class.Methods[0].IsMethod)
}

func TestParse_InvalidAssignmentTargetIsNonFatal(t *testing.T) {
	tokens, _ := lexer.New(`1 = 2; var x = 3;`).ScanTokens()
	stmts, errs := New(tokens).Parse()
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "Invalid assignment target")
	// Parsing recovers and still sees the subsequent declaration.
	found := false
	for _, s := range stmts {
		if _, ok := s.(*ast.Var); ok {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParse_SynchronizeRecoversAcrossBadStatement(t *testing.T) {
	tokens, _ := lexer.New(`var a = 1; ) garbage; var b = 2;`).ScanTokens()
	stmts, errs := New(tokens).Parse()
	require.NotEmpty(t, errs)
	var names []string
	for _, s := range stmts {
		if v, ok := s.(*ast.Var); ok {
			names = append(names, v.Name.Lexeme)
		}
	}
	assert.Contains(t, names, "a")
	assert.Contains(t, names, "b")
}

func TestParse_TooManyParametersIsRejected(t *testing.T) {
	src := "fun f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "p" + string(rune('a'+i%26))
	}
	src += ") {}"

	tokens, _ := lexer.New(src).ScanTokens()
	_, errs := New(tokens).Parse()
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "Can't have more than 255 parameters")
}
