// sidelink.go — suppressed-error container for xgx-logctx.
//
// Suppress groups a primary error with errors that occurred alongside it
// (cleanup failures, parallel branch failures) without disturbing the
// primary's causal chain. The children become side-links of one node:
// Unwrap() []error exposes them to stdlib traversal (errors.Is/As) and to
// this package's Walk, which visits them in order after backtracking from
// the primary's own chain.
//
// Error() follows the errors.Join convention (newline-joined child
// messages); %+v recurses into children so holders and causes deep in either
// branch still render.
package xgxlogctx

import (
	"fmt"
	"strings"
)

// suppressed is a multi-error node: the primary first, side errors after.
type suppressed struct {
	errs []error // non-nil children only; primary at index 0
}

// Suppress returns an error grouping primary with the given side errors,
// ignoring nils. All nil → nil; a lone non-nil error is returned unchanged.
func Suppress(primary error, side ...error) error {
	nz := make([]error, 0, 1+len(side))
	if primary != nil {
		nz = append(nz, primary)
	}
	for _, e := range side {
		if e != nil {
			nz = append(nz, e)
		}
	}
	switch len(nz) {
	case 0:
		return nil
	case 1:
		return nz[0] // identity preserved for the trivial case
	default:
		return &suppressed{errs: nz}
	}
}

// Error newline-joins child messages, identical to errors.Join.
func (m *suppressed) Error() string {
	if len(m.errs) == 1 {
		return m.errs[0].Error()
	}
	sb := strings.Builder{}
	for i, e := range m.errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Unwrap exposes the children as side-links, primary first.
func (m *suppressed) Unwrap() []error { return m.errs }

// Format implements fmt.Formatter.
//
//	%v, %s, %q → concise, stdlib-compatible (Error()).
//	%+v        → each child rendered with %+v, newline-separated.
func (m *suppressed) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			for i, e := range m.errs {
				if i > 0 {
					fmt.Fprint(s, "\n")
				}
				fmt.Fprintf(s, "%+v", e)
			}
			return
		}
		formatConcise(s, m)
	case 's':
		formatConcise(s, m)
	case 'q':
		fmt.Fprintf(s, "%q", m.Error())
	default:
		formatConcise(s, m)
	}
}
