// attach_test.go — one-holder-per-graph attachment semantics.
package xgxlogctx

import (
	"errors"
	"fmt"
	"testing"
)

func TestAttach_NilErrorIsNil(t *testing.T) {
	t.Parallel()

	if Attach(nil, String("k", "v")) != nil {
		t.Fatalf("Attach(nil) must stay nil")
	}
}

func TestAttach_WrapsHolderlessError(t *testing.T) {
	t.Parallel()

	base := errors.New("boom")
	err := Attach(base, String("k", "v"))

	if err == base {
		t.Fatalf("expected a carrier wrapper, got the original value")
	}
	if !errors.Is(err, base) {
		t.Fatalf("carrier must not break errors.Is with the original")
	}
	if err.Error() != base.Error() {
		t.Fatalf("carrier must preserve the message: %q vs %q", err.Error(), base.Error())
	}
	if f, ok := LookupField(err, "k"); !ok || f.Text != "v" {
		t.Fatalf("attached field not discoverable: %#v", CollectFields(err))
	}
}

func TestAttach_AppendsIntoExistingHolder(t *testing.T) {
	t.Parallel()

	err := Attach(errors.New("boom"), String("a", "1"))
	again := Attach(err, String("b", "2"))

	if again != err {
		t.Fatalf("second attach must reuse the existing holder, not wrap again")
	}
	fs := CollectFields(again)
	if len(fs) != 2 || fs[0].Key != "a" || fs[1].Key != "b" {
		t.Fatalf("fields should accumulate in order on one holder: %#v", fs)
	}
}

func TestAttach_FindsNativeHolderThroughWrapping(t *testing.T) {
	t.Parallel()

	native := New("boom", String("a", "1"))
	wrapped := fmt.Errorf("outer: %w", native)

	got := Attach(wrapped, String("b", "2"))
	if got != wrapped {
		t.Fatalf("a native holder deeper in the chain must absorb the fields")
	}
	if _, ok := LookupField(wrapped, "b"); !ok {
		t.Fatalf("appended field missing from native holder: %#v", CollectFields(wrapped))
	}
}

func TestAttach_ZeroFieldsStillCreatesCarrier(t *testing.T) {
	t.Parallel()

	err := Attach(errors.New("boom"))
	if _, ok := err.(FieldHolder); !ok {
		t.Fatalf("empty attach should still install a holder for later appends")
	}
	later := Attach(err, String("k", "v"))
	if later != err {
		t.Fatalf("later attach should append into the empty carrier")
	}
}

func TestAttachSnapshot_UsesCurrentVisibleContext(t *testing.T) {
	t.Parallel()

	var s Store
	tok := s.Enter(String("tenant", "acme"))
	err := AttachSnapshot(&s, errors.New("boom"))
	s.Exit(tok)

	if f, ok := LookupField(err, "tenant"); !ok || f.Text != "acme" {
		t.Fatalf("snapshot fields not attached: %#v", CollectFields(err))
	}
}
