// walk.go — depth-bounded traversal over an error's cause/side-link graph.
//
// Edge model (stdlib-interop):
//   • cause:      Unwrap() error — the causal parent.
//   • side-links: Unwrap() []error — auxiliary attachments (suppressed
//     errors, joins). A Go type exposes one form or the other, never both,
//     since the method name is shared.
//
// Traversal order (deterministic, depth-first, pre-order):
//   • At each node, follow its cause edge if present; otherwise its first
//     side-link. On exhausting a node's edges, backtrack to the parent and
//     resume at the parent's NEXT side-link — each frame on the path tracks
//     which edge led to the child just finished.
//
// Cycle defense:
//   • The depth ceiling (default 8) is the only guard: a cycle cannot outrun
//     the ceiling before traversal halts. This is a deliberate trade-off
//     against an O(n) visited-set check — real error chains are shallow, and
//     a bounded ceiling is cheap and sufficient. Hitting the ceiling is
//     documented behavior, not a failure: traversal simply stops with what
//     it has collected.
package xgxlogctx

// DefaultMaxDepth bounds how deep Walk descends into an error graph.
const DefaultMaxDepth = 8

// Walk traverses err's graph with the default depth ceiling, invoking visit
// for every node in pre-order (node before its edges). If visit returns
// false, traversal stops early. Nil err or visit is a no-op.
func Walk(err error, visit func(error) bool) {
	WalkDepth(err, DefaultMaxDepth, visit)
}

// WalkDepth is Walk with an explicit depth ceiling. The root sits at depth
// one; nodes deeper than maxDepth are not visited.
func WalkDepth(err error, maxDepth int, visit func(error) bool) {
	if err == nil || visit == nil || maxDepth <= 0 {
		return
	}
	if !visit(err) {
		return
	}

	// One frame per ancestor on the current path; idx is the next edge to
	// take, which is exactly what backtracking needs to resume at the
	// sibling after the child just finished.
	type frame struct {
		links []error
		idx   int
	}
	stack := make([]frame, 0, maxDepth)
	stack = append(stack, frame{links: edgesOf(err)})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		for top.idx < len(top.links) && top.links[top.idx] == nil {
			top.idx++ // skip nil children defensively
		}
		if top.idx >= len(top.links) || len(stack) >= maxDepth {
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.links[top.idx]
		top.idx++
		if !visit(child) {
			return
		}
		stack = append(stack, frame{links: edgesOf(child)})
	}
}

// edgesOf returns a node's outgoing edges: the cause edge when the node is a
// single wrapper, its side-links when it is a multi wrapper, nil otherwise.
func edgesOf(err error) []error {
	switch t := err.(type) {
	case interface{ Unwrap() error }:
		if c := t.Unwrap(); c != nil {
			return []error{c}
		}
	case interface{ Unwrap() []error }:
		return t.Unwrap()
	}
	return nil
}

// CollectFields aggregates the fields of every holder reachable from err, in
// traversal order — nearer ancestors first. The result is a fresh slice;
// duplicated keys are kept (the merge resolver dedups).
func CollectFields(err error) []Field {
	var out []Field
	Walk(err, func(node error) bool {
		if h, ok := node.(FieldHolder); ok {
			out = append(out, h.LogFields()...)
		}
		return true
	})
	return out
}

// findAppender returns the first reachable holder that can accumulate
// fields, or nil. Used by the scope boundary to guarantee at most one
// holder per error graph.
func findAppender(err error) fieldAppender {
	var found fieldAppender
	Walk(err, func(node error) bool {
		if a, ok := node.(fieldAppender); ok {
			found = a
			return false // early termination: one holder is enough
		}
		return true
	})
	return found
}
