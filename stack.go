// stack.go — opt-in stack capture for field-carrying errors.
//
// Design:
//   - runtime.Callers + runtime.CallersFrames for accurate frame resolution
//     (CallersFrames expands inlined calls correctly; FuncForPC does not).
//   - Capture is opt-in via (*Error).WithStack; nothing on the log path pays
//     for stacks unless asked.
//   - Bounded depth; frames render only under %+v (see format.go).
package xgxlogctx

import "runtime"

// Frame is a single call site in a captured stack.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string // fully-qualified (pkg.Func or recv.method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// stackMaxDepth bounds capture cost on exceptional paths.
const stackMaxDepth = 64

// captureStackDefault captures a stack skipping 'skip' caller frames beyond
// the internal helpers. The +3 accounts for runtime.Callers, captureStack,
// and captureStackDefault, so the first recorded frame lands at (or near)
// the user-visible call site.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, stackMaxDepth)
}

func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = stackMaxDepth
	}
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
