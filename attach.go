// attach.go — attach fields to arbitrary errors.
//
// These helpers apply the one-holder-per-graph rule outside the Scoped
// boundary: libraries that want to decorate an escaping error by hand get
// the same semantics the scope exit applies automatically.
package xgxlogctx

// Attach makes err's graph carry fields without altering its identity or
// cause chain.
//
//   - nil err → nil (nothing to attach to).
//   - A holder already reachable in the graph → fields are appended into it
//     and err is returned unchanged.
//   - No holder anywhere → err is wrapped in a lightweight carrier; the
//     result Unwraps to err, so errors.Is/As and existing handling are
//     unaffected.
//
// Attaching zero fields to a holderless error still creates the carrier, so
// a later Attach in an outer frame finds a holder to append into.
func Attach(err error, fields ...Field) error {
	if err == nil {
		return nil
	}
	if holder := findAppender(err); holder != nil {
		holder.appendLogFields(fields)
		return err
	}
	return &carrier{cause: err, fields: cloneFields(fields)}
}

// AttachSnapshot attaches the visible context of s to err under the same
// one-holder rule. The snapshot is taken now; later Store changes do not
// show in the attached fields.
func AttachSnapshot(s *Store, err error) error {
	if err == nil || s == nil {
		return err
	}
	return Attach(err, s.Snapshot()...)
}
