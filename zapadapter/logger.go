// logger.go — zap backend adapter for xgx-logctx.
//
// The core resolves one complete field sequence per record (see
// xgxlogctx.Resolve); this adapter renders it through go.uber.org/zap.
// Mapping:
//   - Field{Structured: false} → zap.String (zap escapes the text).
//   - Field{Structured: true}  → zap.Any over json.RawMessage, spliced into
//     JSON output verbatim.
//
// Bound mode: zap has its own ambient-field mechanism (Logger.With). Bound()
// binds the store's current snapshot natively and afterwards uses
// Store.HasKey to skip fields zap will already surface from its own copy,
// avoiding double-encoding. The store's copy is authoritative for those keys
// while they remain in scope; unbound loggers get the resolver's priority
// order unmodified.
package zapadapter

import (
	"encoding/json"

	"go.uber.org/zap"

	xgxlogctx "github.com/xgx-io/xgx-logctx"
)

// Logger emits log records whose fields come from the xgx-logctx resolver.
// The zero value is not usable; construct with New.
type Logger struct {
	z     *zap.Logger
	store *xgxlogctx.Store
	bound map[string]struct{} // keys bound natively via zap.With; nil when unbound
}

// New returns a Logger emitting through z with ambient context drawn from
// store. store may be nil; records then carry call-site and error-derived
// fields only.
func New(z *zap.Logger, store *xgxlogctx.Store) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{z: z, store: store}
}

// Bound returns a Logger with the store's CURRENT snapshot bound natively
// via zap's own With mechanism, so that context is encoded once per logger
// instead of once per record. For each record, a bound key the store still
// surfaces (HasKey) is skipped rather than re-emitted. The binding is a
// snapshot: fields entered after Bound() flow through the resolver as
// usual, and a bound key whose scope has since exited falls back to the
// resolver too.
func (l *Logger) Bound() *Logger {
	if l.store == nil {
		return l
	}
	snap := l.store.Snapshot()
	bound := make(map[string]struct{}, len(snap))
	for _, f := range snap {
		bound[f.Key] = struct{}{}
	}
	return &Logger{
		z:     l.z.With(Fields(snap)...),
		store: l.store,
		bound: bound,
	}
}

// Debug emits a debug record.
func (l *Logger) Debug(msg string, fields ...xgxlogctx.Field) {
	l.z.Debug(msg, l.resolve(nil, fields)...)
}

// Info emits an info record.
func (l *Logger) Info(msg string, fields ...xgxlogctx.Field) {
	l.z.Info(msg, l.resolve(nil, fields)...)
}

// Warn emits a warning record.
func (l *Logger) Warn(msg string, fields ...xgxlogctx.Field) {
	l.z.Warn(msg, l.resolve(nil, fields)...)
}

// Error emits an error record. err may be nil; when present, its aggregated
// fields join the record per resolver priority and the error itself is
// rendered under zap's standard "error" key.
func (l *Logger) Error(msg string, err error, fields ...xgxlogctx.Field) {
	zf := l.resolve(err, fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	l.z.Error(msg, zf...)
}

// resolve runs the core resolver and converts its output for zap.
func (l *Logger) resolve(err error, callsite []xgxlogctx.Field) []zap.Field {
	var snap xgxlogctx.Snapshot
	if l.store != nil {
		snap = l.store.Snapshot()
	}
	resolved := xgxlogctx.Resolve(callsite, err, snap)

	out := make([]zap.Field, 0, len(resolved))
	for _, f := range resolved {
		if l.skipBound(f.Key) {
			continue // zap already surfaces this key from the bound copy
		}
		out = append(out, Convert(f))
	}
	return out
}

// skipBound reports whether key was bound at Bound() time and the store
// still surfaces it, in which case zap's native copy is authoritative.
func (l *Logger) skipBound(key string) bool {
	if l.bound == nil {
		return false
	}
	if _, ok := l.bound[key]; !ok {
		return false
	}
	return l.store.HasKey(key)
}

// Convert maps one core Field to a zap.Field.
func Convert(f xgxlogctx.Field) zap.Field {
	if f.Structured {
		return zap.Any(f.Key, json.RawMessage(f.Text))
	}
	return zap.String(f.Key, f.Text)
}

// Fields maps a field sequence to zap fields.
func Fields(fs []xgxlogctx.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fs))
	for _, f := range fs {
		out = append(out, Convert(f))
	}
	return out
}
