package request

import (
	"reflect"
	"testing"
)

type fakeCustomer struct {
	ID    string
	Email string
}

func TestApplyCastsSimpleKey(t *testing.T) {
	params := Params{
		"customer": fakeCustomer{ID: "cus_1", Email: "x@y.z"},
		"amount":   500,
	}

	got := applyCasts(params, []castPath{{"customer"}})

	want := Params{"customer": "cus_1", "amount": 500}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("applyCasts = %v, want %v", got, want)
	}
}

func TestApplyCastsPathPreservesSiblings(t *testing.T) {
	params := Params{
		"destination": Params{
			"account": map[string]any{"id": "acct_1", "object": "account"},
			"amount":  5,
		},
	}

	got := applyCasts(params, []castPath{{"destination", "account"}})

	want := Params{"destination": Params{"account": "acct_1", "amount": 5}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("applyCasts = %v, want %v", got, want)
	}
}

func TestApplyCastsMissingPathIsNoOp(t *testing.T) {
	got := applyCasts(Params{}, []castPath{{"destination", "account"}})
	if len(got) != 0 {
		t.Fatalf("applyCasts on empty params = %v", got)
	}

	params := Params{"destination": "acct_raw"}
	got = applyCasts(params, []castPath{{"destination", "account"}})
	if !reflect.DeepEqual(got, params) {
		t.Fatalf("cast through a non-mapping changed params: %v", got)
	}
}

func TestApplyCastsLeavesUnrecognizedLeafAlone(t *testing.T) {
	params := Params{"customer": 42}
	got := applyCasts(params, []castPath{{"customer"}})
	if got["customer"] != 42 {
		t.Fatalf("unrecognized leaf rewritten to %v", got["customer"])
	}
}

func TestApplyCastsDoesNotMutateInput(t *testing.T) {
	inner := Params{"account": fakeCustomer{ID: "acct_1"}, "amount": 5}
	params := Params{"destination": inner, "currency": "usd"}

	got := applyCasts(params, []castPath{{"destination", "account"}})

	if _, ok := inner["account"].(fakeCustomer); !ok {
		t.Fatalf("input nested map was mutated: %v", inner)
	}
	if _, ok := params["destination"].(Params); !ok {
		t.Fatalf("input top-level map was replaced in place")
	}
	rewritten, _ := got["destination"].(Params)
	if rewritten["account"] != "acct_1" {
		t.Fatalf("result not rewritten: %v", got)
	}
}

func TestApplyCastsPlainStringAlreadyCast(t *testing.T) {
	params := Params{"customer": "cus_1"}
	got := applyCasts(params, []castPath{{"customer"}})
	if got["customer"] != "cus_1" {
		t.Fatalf("plain id changed: %v", got["customer"])
	}
}
