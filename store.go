// store.go — worker-local scoped field store for xgx-logctx.
//
// Responsibility:
//   • Maintain, per goroutine, the ordered set of fields currently in scope,
//     with nested shadow/restore behavior and bounded memory growth.
//
// Ownership model (normative):
//   • A Store is owned and mutated by exactly ONE goroutine at a time. No
//     locks are used because no other goroutine may observe or mutate it.
//   • Cross-goroutine sharing happens only through Snapshot, which is a
//     detached copy: the receiving goroutine's subsequent Enter cannot touch
//     the origin Store.
//
// Storage layout:
//   • slots is used as a stack; top counts the live entries, slots[top:] are
//     freed capacity. Exit does not shrink the slice — freed slots sit
//     contiguously at the high end and are the first candidates reused by
//     the next Enter, which suits the common pattern of many sequential
//     sibling scopes (nesting is LIFO). Growth happens only when no freed
//     slot is available, sized for existing entries plus the new fields.
//   • When the last entry is removed the backing array is released, so an
//     idle goroutine holds no per-worker memory.
//
// Visibility:
//   • The visible value for a key is the one written by the innermost scope
//     that entered it: lookups scan from the top of the stack, so exactly
//     one entry per key is ever visible. An entry that overrides an outer
//     key records the prior (text, structured) pair as its shadow; Exit
//     restores that pair into the re-exposed outer entry.
package xgxlogctx

// entry is one slot of the store stack.
//
// shadowed entries override a key entered by an outer scope; the prior
// value rides along so scope exit can restore it.
type entry struct {
	key        string
	text       string
	structured bool

	shadowText       string
	shadowStructured bool
	shadowed         bool
}

// Store is a worker-local stack of visible fields.
//
// The zero value is ready to use. A Store must not be copied after first use
// and must not be shared between goroutines; hand a Snapshot to a spawned
// goroutine instead.
type Store struct {
	slots []entry
	top   int
}

// ScopeToken identifies the entries one Enter call pushed, so the matching
// Exit can undo exactly those. Tokens are opaque to callers and must be
// passed to Exit in strict LIFO order: exiting out of order is a usage
// contract violation — the store stays memory-safe but which fields get
// removed is undefined. The store does not detect misuse at runtime; the
// cost is not worth it on a per-log-call path.
type ScopeToken struct {
	pushed int
}

// Snapshot is an immutable ordered copy of the currently visible fields,
// newest scope first, exactly one entry per key. It has no link to the live
// Store and is safe to move to another goroutine; re-entering it there
// (Store.Enter(snap...)) reproduces the captured context.
type Snapshot []Field

// Enter pushes fields into scope and returns the token for the matching
// Exit.
//
// Per-key semantics:
//   • A key not yet visible is inserted fresh.
//   • A key already visible is overridden; the prior value becomes the new
//     entry's shadow and is restored on Exit.
//   • If the SAME key appears more than once within one call, only the
//     FIRST occurrence is applied; later duplicates are suppressed. This
//     avoids ambiguous shadow chains within a single scope.
//
// Entering zero fields is a no-op and returns a token representing nothing
// to undo.
func (s *Store) Enter(fields ...Field) ScopeToken {
	if len(fields) == 0 {
		return ScopeToken{}
	}
	pushed := 0
	for i, f := range fields {
		if duplicateWithinCall(fields[:i], f.Key) {
			continue
		}
		e := entry{key: f.Key, text: f.Text, structured: f.Structured}
		if prior, ok := s.lookup(f.Key); ok {
			e.shadowText = prior.text
			e.shadowStructured = prior.structured
			e.shadowed = true
		}
		s.push(e)
		pushed++
	}
	return ScopeToken{pushed: pushed}
}

// Exit undoes the entries pushed by the matching Enter: shadowed entries
// restore the prior value into the re-exposed outer entry, fresh entries are
// removed. Exit must be called exactly once per Enter, in reverse order of
// nesting. When the store empties, the backing storage is released.
func (s *Store) Exit(tok ScopeToken) {
	n := tok.pushed
	if n > s.top {
		// Stale or mismatched token; clamp so we stay memory-safe.
		n = s.top
	}
	for i := 0; i < n; i++ {
		s.top--
		popped := s.slots[s.top]
		s.slots[s.top] = entry{} // drop string references for GC
		if popped.shadowed {
			if outer := s.lookupSlot(popped.key); outer >= 0 {
				s.slots[outer].text = popped.shadowText
				s.slots[outer].structured = popped.shadowStructured
			}
		}
	}
	if s.top == 0 {
		// Nesting returned to zero: hold no idle per-worker memory.
		s.slots = nil
	}
}

// Snapshot returns a detached copy of the visible fields, newest scope
// first, shadowing already resolved to one entry per key.
func (s *Store) Snapshot() Snapshot {
	if s.top == 0 {
		return nil
	}
	out := make(Snapshot, 0, s.top)
	for i := s.top - 1; i >= 0; i-- {
		e := &s.slots[i]
		if containsKey(out, e.key) {
			continue // an inner scope already contributed this key
		}
		out = append(out, Field{Key: e.key, Text: e.text, Structured: e.structured})
	}
	return out
}

// HasKey reports whether key is currently visible. Backend adapters use this
// to avoid re-emitting a field their own native context mechanism already
// surfaces; the core merge resolver never consults it.
func (s *Store) HasKey(key string) bool {
	_, ok := s.lookup(key)
	return ok
}

// Len returns the number of live entries (including shadowing overrides).
func (s *Store) Len() int { return s.top }

// lookup returns the visible entry for key, scanning innermost-first.
func (s *Store) lookup(key string) (*entry, bool) {
	if i := s.lookupSlot(key); i >= 0 {
		return &s.slots[i], true
	}
	return nil, false
}

// lookupSlot returns the index of the visible entry for key, or -1.
func (s *Store) lookupSlot(key string) int {
	for i := s.top - 1; i >= 0; i-- {
		if s.slots[i].key == key {
			return i
		}
	}
	return -1
}

// push stores e at the top, reusing a freed slot when one is available and
// growing the backing array only when none is.
func (s *Store) push(e entry) {
	if s.top < len(s.slots) {
		s.slots[s.top] = e
	} else {
		s.slots = append(s.slots, e)
	}
	s.top++
}

// duplicateWithinCall reports whether key already occurred among the fields
// applied earlier in the same Enter call.
func duplicateWithinCall(applied []Field, key string) bool {
	return containsKey(applied, key)
}
