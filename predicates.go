// predicates.go — capability predicates over error graphs.
//
// Scope:
//   • Zero-policy helpers answering "does this error carry fields?" and
//     "what is the value of key k anywhere in the graph?".
//   • All traversal is the depth-bounded Walk from walk.go, so these are
//     cycle-safe and O(depth).
//
// Out of scope (by design):
//   • Classification, severity, retry policy — this module only moves log
//     fields.
package xgxlogctx

// HasFields reports whether any node reachable from err carries at least one
// field. A holder with an empty field list does not count.
func HasFields(err error) bool {
	found := false
	Walk(err, func(node error) bool {
		if h, ok := node.(FieldHolder); ok && len(h.LogFields()) > 0 {
			found = true
			return false
		}
		return true
	})
	return found
}

// LookupField returns the value of key among err's aggregated fields, using
// the same nearer-ancestors-first order as CollectFields: the first holder
// on the traversal path that defines key wins.
func LookupField(err error, key string) (Field, bool) {
	var (
		hit Field
		ok  bool
	)
	Walk(err, func(node error) bool {
		h, isHolder := node.(FieldHolder)
		if !isHolder {
			return true
		}
		for _, f := range h.LogFields() {
			if f.Key == key {
				hit, ok = f, true
				return false
			}
		}
		return true
	})
	return hit, ok
}
