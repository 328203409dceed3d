package interp

// returnSignal is the non-error control channel SPEC_FULL.md §4.4/§7
// calls for: `return` unwinds through ordinary Go error returns (so
// every statement executor just has to check "did execution fail" once,
// the same check it already needs for real runtime errors) but must
// never be mistaken for a loxerr.Error. The function-call dispatch in
// calls.go type-asserts for it, and interpret() turns any non-loxerr.Error
// that reaches the top level into a runtime error; everywhere else it
// simply propagates like any other error.
type returnSignal struct {
	value interface{}
}

func (r *returnSignal) Error() string { return "return" }
