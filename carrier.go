// carrier.go — field-carrying errors for xgx-logctx.
//
// Two ways for fields to ride along with an error:
//   • Native: *Error holds an explicit field list from construction. Capture
//     additionally folds in a Store snapshot taken at construction time,
//     explicit fields winning per-key.
//   • Attached: *carrier wraps an ARBITRARY error whose type knows nothing
//     about fields. The wrapper is a side channel: Unwrap exposes the
//     original, so errors.Is/As and existing handling are unaffected.
//
// Capability model: "does this error carry fields?" is a closed set —
// native holder, attached carrier, or neither. Both holders implement
// FieldHolder (read) and the unexported appender used by the scope boundary
// (accumulate). Traversal discovers holders anywhere in the graph.
//
// Mutability: fluent methods on *Error are non-mutating (copy-on-write) like
// the rest of the xgx family. The one deliberate exception is the boundary
// append: outer scopes fold their fields into an already-attached holder in
// place, so N nested scopes produce one holder, not N carriers.
package xgxlogctx

// FieldHolder is the capability interface for errors that carry log fields.
// LogFields returns a copy; callers may retain or mutate it freely.
type FieldHolder interface {
	error
	LogFields() []Field
}

// fieldAppender is the accumulate capability used by the scope boundary.
// Kept unexported: only the boundary may grow an attached field set.
type fieldAppender interface {
	appendLogFields(fs []Field)
}

// -----------------------------------------------------------------------------
// Native holder
// -----------------------------------------------------------------------------

// Error is an error with an explicit field list attached at construction.
type Error struct {
	msg    string
	fields fieldList
	cause  error
	stk    Stack
}

// New creates an Error carrying the given fields.
func New(msg string, fields ...Field) *Error {
	return &Error{msg: msg, fields: cloneFields(fields)}
}

// Wrap creates an Error carrying fields with cause as its causal parent.
// A nil cause is allowed; Unwrap then returns nil.
func Wrap(cause error, msg string, fields ...Field) *Error {
	return &Error{msg: msg, fields: cloneFields(fields), cause: cause}
}

// Capture creates an Error whose field list combines the explicit fields
// with a snapshot of s taken now: explicit fields first, then every snapshot
// field whose key was not explicitly given (explicit wins per-key). The
// combined list is fixed at construction; later changes to s do not show.
// A nil store behaves like New.
func Capture(s *Store, msg string, fields ...Field) *Error {
	e := &Error{msg: msg, fields: cloneFields(fields)}
	if s == nil {
		return e
	}
	for _, f := range s.Snapshot() {
		if containsKey(e.fields, f.Key) {
			continue
		}
		e.fields = append(e.fields, f)
	}
	return e
}

func (e *Error) Error() string {
	if e.msg == "" {
		return "error"
	}
	return e.msg
}

// Unwrap exposes the causal parent for stdlib traversal (errors.Is/As).
func (e *Error) Unwrap() error { return e.cause }

// LogFields returns a copy of the attached fields in attachment order.
func (e *Error) LogFields() []Field { return cloneFields(e.fields) }

// With returns a NEW Error with extra fields appended. The receiver is not
// modified.
func (e *Error) With(fields ...Field) *Error {
	n := e.clone()
	n.fields = cloneAppend(n.fields, fields...)
	return n
}

// WithStack returns a NEW Error with a stack captured at the caller.
func (e *Error) WithStack() *Error {
	n := e.clone()
	n.stk = captureStackDefault(1) // skip this method
	return n
}

// appendLogFields grows the field list in place. Boundary use only; see the
// mutability note in the file header.
func (e *Error) appendLogFields(fs []Field) {
	e.fields = cloneAppend(e.fields, fs...)
}

func (e *Error) clone() *Error {
	n := *e
	n.fields = cloneFields(e.fields)
	return &n
}

// -----------------------------------------------------------------------------
// Attached carrier
// -----------------------------------------------------------------------------

// carrier attaches a field set to an error whose own type cannot hold one.
// It preserves the wrapped error's message and exposes it via Unwrap, so the
// attachment changes neither identity checks nor the cause chain.
type carrier struct {
	cause  error
	fields fieldList
}

func (c *carrier) Error() string { return c.cause.Error() }

// Unwrap exposes the original error; errors.Is/As see through the carrier.
func (c *carrier) Unwrap() error { return c.cause }

// LogFields returns a copy of the carried fields.
func (c *carrier) LogFields() []Field { return cloneFields(c.fields) }

func (c *carrier) appendLogFields(fs []Field) {
	c.fields = cloneAppend(c.fields, fs...)
}
