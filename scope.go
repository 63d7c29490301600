// scope.go — structured Enter/Exit pairing with capture of escaping errors.
//
// Scoped is the recommended way to open a scope: it guarantees the Exit runs
// on every path out of the block (normal return, error return, panic), and it
// performs the error-capture step of the scope boundary. Callers that manage
// tokens by hand get the same store semantics but must arrange both the LIFO
// Exit discipline and any error capture themselves.
//
// Capture contract at the scope boundary — exactly one of:
//   • no escaping error → the scope's fields simply go out of scope;
//   • escaping error with no field holder anywhere in its graph → a new
//     carrier holding the CURRENT snapshot is attached (context at the
//     failure site, outer scopes included);
//   • escaping error whose graph already holds fields → THIS scope's fields
//     are appended into the existing holder. Outer scopes accumulate into
//     one holder instead of stacking N carriers for N nested scopes.
package xgxlogctx

// Scoped runs fn with fields in scope and always exits the scope afterwards.
//
// If fn returns an error, the error is captured per the boundary contract
// above before the scope closes, so the returned error carries the context
// that was visible where it escaped. The returned error is the attached
// carrier when one had to be created; errors.Is/As still reach the original
// through Unwrap.
func (s *Store) Scoped(fields []Field, fn func() error) error {
	tok := s.Enter(fields...)
	defer s.Exit(tok)

	err := fn()
	if err == nil {
		return nil
	}
	return s.captureEscaping(err, fields)
}

// captureEscaping implements the boundary contract for an error escaping a
// scope. It must run while the scope is still entered: a fresh carrier
// captures the full current snapshot.
func (s *Store) captureEscaping(err error, scopeFields []Field) error {
	if holder := findAppender(err); holder != nil {
		// Something in the graph already captured context; fold this
		// scope's own fields into it rather than stacking a second carrier.
		holder.appendLogFields(scopeFields)
		return err
	}
	snap := s.Snapshot()
	if len(snap) == 0 {
		return err
	}
	return &carrier{cause: err, fields: cloneFields(snap)}
}
