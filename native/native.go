// Package native implements GoLox's native (builtin) function surface.
// SPEC_FULL.md §6 names exactly one default intrinsic, `clock`, per
// spec.md's explicit Non-goal of "standard library beyond a clock
// intrinsic" — a language-surface Non-goal, so it binds what Register
// wires into every interpreter's globals, not what this package may
// contain. DebugTable holds additional introspection helpers gated out
// of the default scope for that reason (see SPEC_FULL.md §6).
package native

import (
	"time"

	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/object"
)

// processStart anchors clock()'s readings. Using a fixed instant captured
// once at package init, rather than a raw epoch timestamp, is what makes
// "non-decreasing between adjacent script-visible calls" (SPEC_FULL.md
// §5) trivially true regardless of wall-clock adjustments during the
// process's lifetime.
var processStart = time.Now()

// Register binds every default native into env. Interpreters call this
// exactly once, against their globals environment, at construction time.
func Register(env *environment.Environment) {
	env.Define("clock", &object.Native{
		NameStr: "clock",
		ArityN:  0,
		Fn: func(args []object.Value) (object.Value, error) {
			return time.Since(processStart).Seconds(), nil
		},
	})
}

// DebugTable returns introspection natives not part of the default
// language surface — currently just `type(v)`, which reports a value's
// runtime type tag. It exists for the root demo binary's own debugging,
// not for scripts run through the CLI or REPL (SPEC_FULL.md §6).
func DebugTable() map[string]*object.Native {
	return map[string]*object.Native{
		"type": {
			NameStr: "type",
			ArityN:  1,
			Fn: func(args []object.Value) (object.Value, error) {
				return object.TypeName(args[0]), nil
			},
		},
	}
}
