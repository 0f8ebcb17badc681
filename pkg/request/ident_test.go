package request

import (
	"strings"
	"testing"
)

type identifiableRef struct{ id string }

func (r identifiableRef) StripeID() string { return r.id }

func TestIDFromString(t *testing.T) {
	if got := ID("ch_1"); got != "ch_1" {
		t.Fatalf("ID = %q, want ch_1", got)
	}
}

func TestIDFromIdentifiable(t *testing.T) {
	if got := ID(identifiableRef{id: "ch_1"}); got != "ch_1" {
		t.Fatalf("ID = %q, want ch_1", got)
	}
}

func TestIDFromStruct(t *testing.T) {
	ref := fakeCustomer{ID: "cus_9"}
	if got := ID(ref); got != "cus_9" {
		t.Fatalf("ID = %q, want cus_9", got)
	}
	if got := ID(&ref); got != "cus_9" {
		t.Fatalf("ID from pointer = %q, want cus_9", got)
	}
}

func TestIDFromMapping(t *testing.T) {
	if got := ID(map[string]any{"id": "cus_2"}); got != "cus_2" {
		t.Fatalf("ID = %q, want cus_2", got)
	}
	if got := ID(Params{"id": "cus_3"}); got != "cus_3" {
		t.Fatalf("ID = %q, want cus_3", got)
	}
}

func TestIDPanicsOnMisuse(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic for a value with no id")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "cannot extract an id") {
			t.Fatalf("panic message = %v", r)
		}
	}()
	ID(42)
}

func TestIDOfRejectsUnrecognizedShapes(t *testing.T) {
	for _, v := range []any{42, nil, []string{"ch_1"}, map[string]any{"id": 7}, (*fakeCustomer)(nil)} {
		if id, ok := idOf(v); ok {
			t.Fatalf("idOf(%#v) unexpectedly yielded %q", v, id)
		}
	}
}
