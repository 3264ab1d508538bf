package logprovider

import (
	"runtime"

	"github.com/pkg/errors"
)

// Stack is a captured call stack, innermost frame first.
// Format with %+v for function and file:line per frame.
type Stack = errors.StackTrace

const maxStackDepth = 64

// callers captures the stack of the function that invoked callers, dropping
// skip additional frames above it. callers(0) starts at its immediate caller.
func callers(skip int) Stack {
	var pcs [maxStackDepth]uintptr
	// 0: runtime.Callers, 1: callers, 2: invoker.
	n := runtime.Callers(skip+2, pcs[:])
	st := make(Stack, n)
	for i := 0; i < n; i++ {
		st[i] = errors.Frame(pcs[i])
	}
	return st
}
