// resolve.go — the field merge resolver for xgx-logctx.
//
// One log record draws fields from three sources, merged in fixed priority:
//
//  1. Call-site fields — supplied at the specific log statement.
//  2. Error-derived fields — collected by traversal over the attached error,
//     nearer ancestors first.
//  3. Ambient context — the Store snapshot, newest scope first.
//
// Concatenate in that order, then keep only the FIRST occurrence of each
// key: call-site overrides error overrides context, while each source keeps
// its own internal order.
//
// The resolver's output is a complete, self-sufficient field sequence. It
// never consults the backend about what the backend might already surface —
// that concern belongs to backend adapters, via Store.HasKey.
package xgxlogctx

import "github.com/samber/lo"

// Resolve produces the final ordered, deduplicated field sequence for one
// log record. err and snap may be nil/empty; call-site fields may be nil.
// The result is a fresh slice.
func Resolve(callsite []Field, err error, snap Snapshot) []Field {
	var derived []Field
	if err != nil {
		derived = CollectFields(err)
	}

	merged := make([]Field, 0, len(callsite)+len(derived)+len(snap))
	merged = append(merged, callsite...)
	merged = append(merged, derived...)
	merged = append(merged, snap...)

	// UniqBy keeps the first occurrence per key, which is exactly the
	// priority rule above.
	return lo.UniqBy(merged, func(f Field) string { return f.Key })
}
