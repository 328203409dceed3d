// Package object defines GoLox's runtime value representation.
// SPEC_FULL.md §3 describes a tagged sum type (Nil, Boolean, Number,
// String, Callable, Class, Instance); this package follows the teacher's
// habit of a closed set of concrete types behind a common interface
// (objects.GoMixObject in the teacher repo) but represents the
// primitives — nil, bool, float64, string — with Go's own types directly
// through a plain `interface{}` alias, since GoLox's Number/Boolean/
// String/Nil variants already have exact, zero-overhead Go equivalents.
// Only the non-primitive variants (Callable, Class, Instance) need
// dedicated struct types.
package object

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
)

// Value is any GoLox runtime value. The concrete dynamic type is one of:
// nil (Nil), bool (Boolean), float64 (Number), string (String), or one of
// the Callable implementations below (Function, Native, *Class),
// or *Instance.
type Value = interface{}

// Callable is satisfied by every value GoLox can invoke with call syntax:
// user functions, native functions, and classes (calling a class
// constructs an instance).
type Callable interface {
	Arity() int
	fmt.Stringer
}

// Function is a user-defined function's runtime representation: its
// declaration plus the environment captured at definition time, which is
// what gives GoLox closures (SPEC_FULL.md §3 "Function handle — User").
type Function struct {
	Declaration *ast.Function
	Closure     *environment.Environment
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme) }

// Native is a builtin function: a fixed arity and a Go closure implementing
// it. SPEC_FULL.md §6 names `clock` as the one native surfaced by default.
type Native struct {
	NameStr string
	ArityN  int
	Fn      func(args []Value) (Value, error)
}

func (n *Native) Arity() int { return n.ArityN }

func (n *Native) String() string { return fmt.Sprintf("<native fn %s>", n.NameStr) }

// Class is a callable constructor. Per SPEC_FULL.md §4.2/§9, methods are
// parsed and resolved but not yet given call semantics; calling a class
// always yields a fresh, field-less Instance regardless of Methods.
type Class struct {
	Name    string
	Methods map[string]*Function
}

func (c *Class) Arity() int { return 0 }

func (c *Class) String() string { return c.Name }

// FindMethod looks up name in c's own method table. It is not yet called
// by the interpreter but is exercised by the class tests exploring the
// stored method table.
func (c *Class) FindMethod(name string) (*Function, bool) {
	m, ok := c.Methods[name]
	return m, ok
}

// Instance is what calling a Class produces: an empty field bag tagged
// with the class that created it (SPEC_FULL.md §3/§4.4).
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get returns a field by name, or ok=false if it is not set. Per
// SPEC_FULL.md §4.4, property access never falls back to a method table
// since methods are not yet runtime-callable.
func (i *Instance) Get(name string) (Value, bool) {
	v, ok := i.Fields[name]
	return v, ok
}

func (i *Instance) Set(name string, value Value) {
	i.Fields[name] = value
}

// IsTruthy implements SPEC_FULL.md §3's truthiness rule: everything is
// truthy except nil and the boolean false.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements SPEC_FULL.md §4.4's `==`: structural equality,
// mismatched kinds are never equal, nil equals only nil, and numeric
// comparison follows IEEE-754 (so NaN != NaN).
func IsEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// Stringify renders v the way `print` does: numbers in shortest
// round-trip decimal with the Lox convention that an integral value drops
// its fractional part ("Print" rule, SPEC_FULL.md §4.4), booleans as
// true/false, nil as "nil", strings unquoted, and callables/instances via
// their own String().
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// TypeName returns the runtime type tag used by diagnostics and by the
// native package's debugging-only `type()` helper.
func TypeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case *Class:
		return "class"
	case *Instance:
		return "instance"
	case Callable:
		return "function"
	default:
		return "unknown"
	}
}
