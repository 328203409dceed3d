package ast

import (
	"bytes"
	"fmt"
)

const indentSize = 2

// Printer walks a statement tree and renders an indented debug dump. It is
// adapted from the teacher's PrintingVisitor (root main.go / print_visitor.go
// in the teacher repo): same "visit, indent, recurse, dedent" shape, wired
// against GoLox's Expr/Stmt types instead of GoMix's RootNode family.
//
// Printer has no bearing on language semantics — it exists purely as a
// debugging aid, exercised by the root demo binary.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// Print renders a full program (a slice of statements) and returns the
// accumulated text.
func (p *Printer) Print(stmts []Stmt) string {
	for _, s := range stmts {
		if s != nil {
			s.Accept(p)
		}
	}
	return p.buf.String()
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(" ")
	}
}

func (p *Printer) line(format string, args ...interface{}) {
	p.writeIndent()
	p.buf.WriteString(fmt.Sprintf(format, args...))
	p.buf.WriteString("\n")
}

func (p *Printer) nested(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

// --- expressions ---

func (p *Printer) VisitBinaryExpr(e *Binary) (interface{}, error) {
	p.line("Binary (%s)", e.Operator.Lexeme)
	p.nested(func() {
		e.Left.Accept(p)
		e.Right.Accept(p)
	})
	return nil, nil
}

func (p *Printer) VisitUnaryExpr(e *Unary) (interface{}, error) {
	p.line("Unary (%s)", e.Operator.Lexeme)
	p.nested(func() { e.Right.Accept(p) })
	return nil, nil
}

func (p *Printer) VisitGroupingExpr(e *Grouping) (interface{}, error) {
	p.line("Grouping")
	p.nested(func() { e.Expression.Accept(p) })
	return nil, nil
}

func (p *Printer) VisitLiteralExpr(e *Literal) (interface{}, error) {
	p.line("Literal (%v)", e.Value)
	return nil, nil
}

func (p *Printer) VisitVariableExpr(e *Variable) (interface{}, error) {
	p.line("Variable (%s)", e.Name.Lexeme)
	return nil, nil
}

func (p *Printer) VisitAssignExpr(e *Assign) (interface{}, error) {
	p.line("Assign (%s)", e.Name.Lexeme)
	p.nested(func() { e.Value.Accept(p) })
	return nil, nil
}

func (p *Printer) VisitLogicalExpr(e *Logical) (interface{}, error) {
	p.line("Logical (%s)", e.Operator.Lexeme)
	p.nested(func() {
		e.Left.Accept(p)
		e.Right.Accept(p)
	})
	return nil, nil
}

func (p *Printer) VisitCallExpr(e *Call) (interface{}, error) {
	p.line("Call (%d args)", len(e.Arguments))
	p.nested(func() {
		e.Callee.Accept(p)
		for _, a := range e.Arguments {
			a.Accept(p)
		}
	})
	return nil, nil
}

func (p *Printer) VisitGetExpr(e *Get) (interface{}, error) {
	p.line("Get (.%s)", e.Name.Lexeme)
	p.nested(func() { e.Object.Accept(p) })
	return nil, nil
}

// --- statements ---

func (p *Printer) VisitPrintStmt(s *Print) error {
	p.line("Print")
	p.nested(func() { s.Expression.Accept(p) })
	return nil
}

func (p *Printer) VisitExpressionStmt(s *Expression) error {
	p.line("Expression")
	p.nested(func() { s.Expression.Accept(p) })
	return nil
}

func (p *Printer) VisitVarStmt(s *Var) error {
	p.line("Var (%s)", s.Name.Lexeme)
	if s.Initializer != nil {
		p.nested(func() { s.Initializer.Accept(p) })
	}
	return nil
}

func (p *Printer) VisitBlockStmt(s *Block) error {
	p.line("Block")
	p.nested(func() {
		for _, st := range s.Statements {
			st.Accept(p)
		}
	})
	return nil
}

func (p *Printer) VisitIfStmt(s *If) error {
	p.line("If")
	p.nested(func() {
		s.Condition.Accept(p)
		s.ThenBranch.Accept(p)
		if s.ElseBranch != nil {
			s.ElseBranch.Accept(p)
		}
	})
	return nil
}

func (p *Printer) VisitWhileStmt(s *While) error {
	p.line("While")
	p.nested(func() {
		s.Condition.Accept(p)
		s.Body.Accept(p)
	})
	return nil
}

func (p *Printer) VisitFunctionStmt(s *Function) error {
	p.line("Function (%s)", s.Name.Lexeme)
	p.nested(func() {
		for _, st := range s.Body {
			st.Accept(p)
		}
	})
	return nil
}

func (p *Printer) VisitReturnStmt(s *Return) error {
	p.line("Return")
	if s.Value != nil {
		p.nested(func() { s.Value.Accept(p) })
	}
	return nil
}

func (p *Printer) VisitClassStmt(s *Class) error {
	p.line("Class (%s)", s.Name.Lexeme)
	p.nested(func() {
		for _, m := range s.Methods {
			m.Accept(p)
		}
	})
	return nil
}
