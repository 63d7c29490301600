// ctx.go — context.Context plumbing for per-request Stores.
//
// Go has no implicit goroutine-local storage, so a Store travels the call
// stack explicitly. For stacks that already thread a context.Context these
// helpers carry the Store in it. The single-owner rule is unchanged: the
// goroutine that put the Store into the context is the one that may call
// Enter/Exit on it; hand other goroutines a Snapshot, never the Store.
package xgxlogctx

import "context"

type storeCtxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeCtxKey{}, s)
}

// FromContext returns the Store carried by ctx, if any.
func FromContext(ctx context.Context) (*Store, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(storeCtxKey{}).(*Store)
	return s, ok
}
