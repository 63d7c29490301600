// field.go — the atomic key/value unit for xgx-logctx.
//
// Design:
//   • Field is pure data (no behavior beyond equality); everything else in
//     this package moves Fields around.
//   • Internal representation for field lists: append-only []Field with
//     deterministic order. Builders return NEW slices (no aliasing).
//   • Structured is encoder metadata, never identity: two Fields are equal
//     iff Key and Text match.
//
// Rationale:
//   • Go map iteration order is unspecified; slices preserve insertion order,
//     which the merge resolver depends on.
//   • Append may re-use capacity; we allocate a fresh backing array whenever
//     a list is "mutated" so published slices stay immutable.
package xgxlogctx

// Field is a single key/value pair destined for one log record.
//
// Text holds the rendered value. Structured marks Text as already valid
// embeddable structured data (JSON); a backend may splice it into its output
// verbatim instead of escaping it. Structured does NOT participate in
// equality — it is a rendering hint for the backend, not part of identity.
type Field struct {
	Key        string
	Text       string
	Structured bool
}

// Equal reports whether f and g denote the same field.
// Only Key and Text are compared; Structured is encoder metadata.
func (f Field) Equal(g Field) bool {
	return f.Key == g.Key && f.Text == g.Text
}

// fieldList is the internal representation of an ordered field set.
// Treat it as append-only; never modify elements in place once published.
type fieldList []Field

// emptyFieldList is a canonical empty list.
var emptyFieldList = make(fieldList, 0)

// cloneAppend returns a NEW slice with dst's contents followed by add.
// It always allocates a fresh backing array to avoid aliasing via append.
func cloneAppend(dst fieldList, add ...Field) fieldList {
	n := len(dst)
	m := len(add)
	if m == 0 {
		if n == 0 {
			return emptyFieldList
		}
		out := make(fieldList, n)
		copy(out, dst)
		return out
	}
	out := make(fieldList, n+m)
	copy(out, dst)
	copy(out[n:], add)
	return out
}

// cloneFields copies fs into a fresh backing array. Nil-safe.
func cloneFields(fs []Field) fieldList {
	if len(fs) == 0 {
		return emptyFieldList
	}
	out := make(fieldList, len(fs))
	copy(out, fs)
	return out
}

// containsKey reports whether fs already holds key.
// Linear scan: field lists are short (a handful of entries), so a map would
// cost more than it saves.
func containsKey(fs []Field, key string) bool {
	for _, f := range fs {
		if f.Key == key {
			return true
		}
	}
	return false
}
