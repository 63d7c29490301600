// doc.go — package documentation for xgx-logctx
//
// Package xgxlogctx lets call sites, error values, and ambient scoped
// context each contribute key/value fields to a single log record, combined
// deterministically and without leaking per-worker state. It is designed to
// be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As/Join, fmt.Formatter)
//   - Policy-free (no levels, encoders, or transports in core; backends
//     attach via adapters such as the zapadapter subpackage)
//
// # Scoped Context
//
// A Store is a worker-local stack of visible fields. Enter pushes a scope,
// Exit pops it, restoring whatever the scope shadowed:
//
//	var s xgxlogctx.Store
//	tok := s.Enter(xgxlogctx.String("tenant", "acme"))
//	defer s.Exit(tok)
//
// Prefer Scoped, which pairs Enter/Exit structurally and captures context on
// errors escaping the block:
//
//	err := s.Scoped([]xgxlogctx.Field{xgxlogctx.String("order", "O1")}, func() error {
//	    return process()
//	})
//	// err now carries order=O1 even though process's error type has no
//	// notion of fields.
//
// A Store belongs to one goroutine. To carry context across a spawn, take a
// Snapshot — a detached copy, safe to re-Enter on the other side:
//
//	snap := s.Snapshot()
//	go func() {
//	    var local xgxlogctx.Store
//	    tok := local.Enter(snap...)
//	    defer local.Exit(tok)
//	    ...
//	}()
//
// # Fields On Errors
//
// Two carrier paths. Native: New/Wrap/Capture build an *Error holding fields
// from construction (Capture folds in the Store snapshot, explicit fields
// winning per-key). Attached: Attach and the Scoped boundary decorate an
// ARBITRARY error through a side channel — the wrapper Unwraps to the
// original, so errors.Is/As and existing handling are unaffected. At most
// one holder ever exists per error graph: outer scopes append into the
// holder traversal discovers instead of stacking carriers.
//
// # Traversal
//
// Walk visits an error's cause/side-link graph depth-first in a fixed,
// deterministic order under a depth ceiling (default 8). The ceiling is the
// cycle defense: cyclic cause chains terminate without a visited set. See
// walk.go for the trade-off discussion.
//
// # Merging
//
// Resolve combines call-site fields, error-derived fields, and a context
// snapshot into one ordered sequence with first-occurrence-wins dedup:
// call-site overrides error overrides context. Backends receive a complete,
// self-sufficient field list.
//
// # Error Handling Policy
//
// Nothing here raises because log metadata could not be perfectly computed.
// Unencodable values fall back to text, invalid JSON claims are demoted to
// escaped text, traversal past the depth ceiling stops silently, and scope
// token misuse stays memory-safe. Logging runs on already-failing paths and
// must not add failures of its own.
package xgxlogctx
