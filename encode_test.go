// encode_test.go — typed constructors, JSON demotion, fallback behavior.
package xgxlogctx

import (
	"math"
	"testing"
	"time"
)

func TestString_PlainText(t *testing.T) {
	t.Parallel()

	f := String("k", `{"not":"parsed"}`)
	if f.Structured {
		t.Fatalf("String must never claim structured, even for JSON-looking text")
	}
}

func TestNumericConstructors_AreStructured(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		f    Field
		text string
	}{
		{"int", Int("k", -7), "-7"},
		{"int64", Int64("k", 1 << 40), "1099511627776"},
		{"uint64", Uint64("k", 18446744073709551615), "18446744073709551615"},
		{"bool", Bool("k", true), "true"},
		{"float", Float64("k", 1.5), "1.5"},
	}
	for _, tc := range cases {
		if !tc.f.Structured {
			t.Fatalf("%s: expected structured", tc.name)
		}
		if tc.f.Text != tc.text {
			t.Fatalf("%s: want %q got %q", tc.name, tc.text, tc.f.Text)
		}
	}
}

func TestFloat64_NaNDemotesToText(t *testing.T) {
	t.Parallel()

	f := Float64("k", math.NaN())
	if f.Structured {
		t.Fatalf("NaN is not valid JSON and must demote to plain text")
	}
	if f.Text != "NaN" {
		t.Fatalf("want NaN, got %q", f.Text)
	}
}

func TestJSON_ValidPayloadStaysStructured(t *testing.T) {
	t.Parallel()

	f := JSON("k", `{"a":[1,2,3]}`)
	if !f.Structured {
		t.Fatalf("valid JSON payload demoted unexpectedly")
	}
}

func TestJSON_InvalidPayloadDemotedNotRejected(t *testing.T) {
	t.Parallel()

	f := JSON("k", `{"a":`)
	if f.Structured {
		t.Fatalf("invalid JSON must be demoted to escaped text")
	}
	if f.Text != `{"a":` {
		t.Fatalf("demotion must keep the payload verbatim: %q", f.Text)
	}
}

func TestAny_ScalarFastPaths(t *testing.T) {
	t.Parallel()

	if f := Any("k", "text"); f.Structured || f.Text != "text" {
		t.Fatalf("string: %#v", f)
	}
	if f := Any("k", 42); !f.Structured || f.Text != "42" {
		t.Fatalf("int: %#v", f)
	}
	if f := Any("k", nil); !f.Structured || f.Text != "null" {
		t.Fatalf("nil: %#v", f)
	}
	if f := Any("k", 2*time.Second); f.Structured || f.Text != "2s" {
		t.Fatalf("duration: %#v", f)
	}
}

func TestAny_StructMarshalsToJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	f := Any("k", payload{ID: 1, Name: "x"})
	if !f.Structured || f.Text != `{"id":1,"name":"x"}` {
		t.Fatalf("struct encoding wrong: %#v", f)
	}
}

func TestAny_UnmarshalableFallsBackToText(t *testing.T) {
	t.Parallel()

	// Channels cannot be marshalled; encoding must degrade, never fail.
	f := Any("k", make(chan int))
	if f.Structured {
		t.Fatalf("fallback representation must not claim structured")
	}
	if f.Text == "" {
		t.Fatalf("fallback must produce some text representation")
	}
}

func TestAnyEncoder_MatchesAny(t *testing.T) {
	t.Parallel()

	var enc Encoder = AnyEncoder{}
	if got, want := enc.Encode("k", 7), Any("k", 7); got != want {
		t.Fatalf("AnyEncoder diverges from Any: %#v vs %#v", got, want)
	}
}

func TestKey_TypedHelper(t *testing.T) {
	t.Parallel()

	orderID := NewKey[int64]("order_id")
	f := orderID.Field(42)
	if f.Key != "order_id" || f.Text != "42" || !f.Structured {
		t.Fatalf("typed key encoding wrong: %#v", f)
	}
	if orderID.Name() != "order_id" {
		t.Fatalf("Name() = %q", orderID.Name())
	}
}
