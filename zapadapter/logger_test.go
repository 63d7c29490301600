// logger_test.go — adapter behavior against zap's observer core.
package zapadapter

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	xgxlogctx "github.com/xgx-io/xgx-logctx"
)

func newObserved(store *xgxlogctx.Store) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return New(zap.New(core), store), logs
}

func TestLogger_EmitsResolvedFieldsInOrder(t *testing.T) {
	t.Parallel()

	var store xgxlogctx.Store
	tok := store.Enter(xgxlogctx.String("contextField", "value"))
	defer store.Exit(tok)

	l, logs := newObserved(&store)
	err := xgxlogctx.Attach(errors.New("boom"), xgxlogctx.String("exceptionField", "value"))
	l.Error("charge failed", err, xgxlogctx.String("logEventField", "value"))

	entries := logs.All()
	require.Len(t, entries, 1)

	keys := make([]string, 0, len(entries[0].Context))
	for _, f := range entries[0].Context {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"logEventField", "exceptionField", "contextField", "error"}, keys)
}

func TestLogger_StructuredFieldsSplicedRaw(t *testing.T) {
	t.Parallel()

	l, logs := newObserved(nil)
	l.Info("metrics", xgxlogctx.Int("count", 7), xgxlogctx.String("note", "plain"))

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()

	assert.Equal(t, json.RawMessage("7"), ctx["count"])
	assert.Equal(t, "plain", ctx["note"])
}

func TestLogger_NilStoreAndNilError(t *testing.T) {
	t.Parallel()

	l, logs := newObserved(nil)
	l.Error("plain failure", nil, xgxlogctx.String("k", "v"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "plain failure", entries[0].Message)
	assert.NotContains(t, entries[0].ContextMap(), "error")
}

func TestLogger_CallSiteBeatsContext(t *testing.T) {
	t.Parallel()

	var store xgxlogctx.Store
	tok := store.Enter(xgxlogctx.String("k", "ctx"))
	defer store.Exit(tok)

	l, logs := newObserved(&store)
	l.Info("msg", xgxlogctx.String("k", "call"))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Context, 1)
	assert.Equal(t, "call", entries[0].ContextMap()["k"])
}

func TestBound_ContextEncodedOncePerLogger(t *testing.T) {
	t.Parallel()

	var store xgxlogctx.Store
	tok := store.Enter(xgxlogctx.String("tenant", "acme"))
	defer store.Exit(tok)

	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core), &store).Bound()

	l.Info("first", xgxlogctx.String("event", "e1"))

	entries := logs.All()
	require.Len(t, entries, 1)

	// tenant arrives via zap's own With binding; the per-record fields must
	// not duplicate it (HasKey advisory).
	var tenantCount int
	for _, f := range entries[0].Context {
		if f.Key == "tenant" {
			tenantCount++
		}
	}
	assert.Equal(t, 1, tenantCount)
	assert.Equal(t, "e1", entries[0].ContextMap()["event"])
}

func TestBound_FieldsEnteredAfterBindingStillFlow(t *testing.T) {
	t.Parallel()

	var store xgxlogctx.Store
	tok := store.Enter(xgxlogctx.String("tenant", "acme"))
	defer store.Exit(tok)

	l, logs := func() (*Logger, *observer.ObservedLogs) {
		core, logs := observer.New(zapcore.DebugLevel)
		return New(zap.New(core), &store).Bound(), logs
	}()

	inner := store.Enter(xgxlogctx.String("phase", "late"))
	defer store.Exit(inner)

	l.Info("msg")
	entries := logs.All()
	require.Len(t, entries, 1)

	// "phase" was entered after Bound(); only keys bound at bind time are
	// covered by the advisory skip, so it must flow through the resolver.
	assert.Equal(t, "late", entries[0].ContextMap()["phase"])
	var tenantCount int
	for _, f := range entries[0].Context {
		if f.Key == "tenant" {
			tenantCount++
		}
	}
	assert.Equal(t, 1, tenantCount)
}

func TestConvert_Mapping(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zap.String("k", "v"), Convert(xgxlogctx.String("k", "v")))
	assert.Equal(t,
		zap.Any("n", json.RawMessage("5")),
		Convert(xgxlogctx.Field{Key: "n", Text: "5", Structured: true}),
	)
}
