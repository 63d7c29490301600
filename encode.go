// encode.go — value-to-Field encoding for xgx-logctx.
//
// Scope:
//   • Typed constructors (String, Int, Bool, …) for the common cases.
//   • Any: arbitrary values via JSON marshalling with a text fallback.
//   • JSON: caller-supplied payloads, demoted to plain text when invalid.
//   • Key[T]: optional typed-key helpers for authors who prefer typed access.
//
// Contract (normative):
//   • Encoding NEVER fails. A value that cannot be marshalled falls back to
//     its fmt representation as plain text. Logging runs on already-failing
//     paths and must not introduce new failures.
//   • A Field marked Structured carries Text that is valid embeddable JSON.
//     Constructors uphold this; JSON() verifies the caller's claim.
package xgxlogctx

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Encoder turns an arbitrary value into a Field. The core consumes only the
// output shape; backends may install their own implementation.
//
// Implementations MUST NOT return an error or panic: on internal failure they
// fall back to a text representation (see AnyEncoder for the reference
// behavior).
type Encoder interface {
	Encode(key string, value any) Field
}

// AnyEncoder is the default Encoder: it behaves exactly like Any.
type AnyEncoder struct{}

// Encode implements Encoder.
func (AnyEncoder) Encode(key string, value any) Field { return Any(key, value) }

// -----------------------------------------------------------------------------
// Typed constructors
// -----------------------------------------------------------------------------

// String builds a plain-text field. The text is opaque to backends and will
// be escaped on output.
func String(key, val string) Field {
	return Field{Key: key, Text: val}
}

// Stringer builds a plain-text field from any fmt.Stringer.
func Stringer(key string, val fmt.Stringer) Field {
	if val == nil {
		return Field{Key: key, Text: "<nil>"}
	}
	return Field{Key: key, Text: val.String()}
}

// Int builds a structured numeric field.
func Int(key string, val int) Field {
	return Field{Key: key, Text: strconv.Itoa(val), Structured: true}
}

// Int64 builds a structured numeric field.
func Int64(key string, val int64) Field {
	return Field{Key: key, Text: strconv.FormatInt(val, 10), Structured: true}
}

// Uint64 builds a structured numeric field.
func Uint64(key string, val uint64) Field {
	return Field{Key: key, Text: strconv.FormatUint(val, 10), Structured: true}
}

// Float64 builds a structured numeric field. NaN and infinities are not
// valid JSON, so they demote to plain text.
func Float64(key string, val float64) Field {
	text := strconv.FormatFloat(val, 'g', -1, 64)
	return Field{Key: key, Text: text, Structured: json.Valid([]byte(text))}
}

// Bool builds a structured boolean field.
func Bool(key string, val bool) Field {
	return Field{Key: key, Text: strconv.FormatBool(val), Structured: true}
}

// Duration builds a plain-text field using time.Duration's string form
// (e.g. "1.5s"), which reads better in logs than raw nanoseconds.
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Text: val.String()}
}

// Time builds a plain-text field in RFC 3339 form with nanoseconds.
func Time(key string, val time.Time) Field {
	return Field{Key: key, Text: val.Format(time.RFC3339Nano)}
}

// JSON builds a structured field from a caller-supplied JSON payload.
// If payload is NOT valid JSON the claim is demoted: the field is returned
// as plain text so the backend escapes it. Invalid payloads are never an
// error — see the package error-handling policy.
func JSON(key, payload string) Field {
	return Field{Key: key, Text: payload, Structured: json.Valid([]byte(payload))}
}

// Any encodes an arbitrary value.
//
// Fast paths cover the common scalar types. Everything else goes through
// encoding/json; values json cannot represent (channels, funcs, cyclic
// graphs) fall back to their fmt representation as plain text. Any never
// fails and never panics on ordinary inputs.
func Any(key string, value any) Field {
	switch v := value.(type) {
	case nil:
		return Field{Key: key, Text: "null", Structured: true}
	case string:
		return String(key, v)
	case bool:
		return Bool(key, v)
	case int:
		return Int(key, v)
	case int64:
		return Int64(key, v)
	case uint64:
		return Uint64(key, v)
	case float64:
		return Float64(key, v)
	case time.Duration:
		return Duration(key, v)
	case time.Time:
		return Time(key, v)
	case error:
		return String(key, v.Error())
	}
	b, err := json.Marshal(value)
	if err != nil {
		// Fallback text representation; never propagate encoding failures.
		return Field{Key: key, Text: fmt.Sprint(value)}
	}
	return Field{Key: key, Text: string(b), Structured: true}
}

// -----------------------------------------------------------------------------
// Typed keys
// -----------------------------------------------------------------------------

// Key is a small, zero-policy helper for building fields with a fixed key
// and a fixed Go type. It complements the plain constructors; nothing in the
// core requires it.
//
// Usage:
//
//	var fOrderID = xgxlogctx.NewKey[int64]("order_id")
//	store.Enter(fOrderID.Field(42))
type Key[T any] struct {
	name string
}

// NewKey constructs a Key[T] for a given name.
// Names SHOULD be snake_case for consistency across logs.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the underlying field key.
func (k Key[T]) Name() string { return k.name }

// Field encodes val under this key via Any.
func (k Key[T]) Field(val T) Field {
	return Any(k.name, val)
}
