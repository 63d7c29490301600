// format.go — fmt.Formatter implementations for xgx-logctx errors.
//
// Behavior:
//
//	%s, %v   → concise string (Error()).
//	%+v      → verbose, structured multi-line format:
//	             msg="<message>"
//	             fields: key1=text1 key2=text2 ...
//	             cause: <recursively formatted with %+v>
//	             stack:
//	               funcA file.go:123
//	               funcB other.go:45
//
// Rationale:
//   - No logging/JSON policy in formatting; the backend adapter owns record
//     encoding. %+v is for humans reading test failures and crash output.
//   - Deterministic field order straight from the fieldList.
//   - Cause recurses with %+v so nested holders render their own detail.
package xgxlogctx

import (
	"fmt"
	"io"
)

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes the structured multi-line representation. Empty
// sections (no fields, nil cause, no stack) are omitted.
func formatVerbose(w io.Writer, msg string, fs fieldList, cause error, stk Stack) {
	_, _ = fmt.Fprintf(w, "msg=%q", msg)

	if len(fs) > 0 {
		_, _ = io.WriteString(w, "\nfields:")
		for _, f := range fs {
			if f.Key == "" {
				continue
			}
			_, _ = fmt.Fprintf(w, " %s=%s", f.Key, f.Text)
		}
	}

	if cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", cause)
	}

	if len(stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e.msg, e.fields, e.cause, e.stk)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}

// carrier formatting: the message belongs to the wrapped error, so verbose
// output lists the attached fields and then recurses into the cause.
func (c *carrier) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, "attached:")
			for _, f := range c.fields {
				if f.Key == "" {
					continue
				}
				_, _ = fmt.Fprintf(s, " %s=%s", f.Key, f.Text)
			}
			_, _ = fmt.Fprintf(s, "\ncause: %+v", c.cause)
			return
		}
		formatConcise(s, c)
	case 's':
		formatConcise(s, c)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", c.Error())
	default:
		formatConcise(s, c)
	}
}
