package request

import (
	"fmt"
	"reflect"
)

// Identifiable marks a domain value that carries its own remote id. Typed
// resource structs implement it so they can stand in for an id anywhere a
// param or path expects one.
type Identifiable interface {
	StripeID() string
}

// ID returns the plain identifier behind v: a string is returned unchanged,
// a structured reference (Identifiable, a struct with an exported ID string
// field, or a mapping with an "id" string entry) yields its id. Anything
// else is a misuse of the API by the caller and panics with a descriptive
// message. Resource modules use it to obtain an id up front, e.g. when
// embedding one into an endpoint path.
func ID(v any) string {
	if id, ok := idOf(v); ok {
		return id
	}
	panic(fmt.Sprintf("request: cannot extract an id from %T (%+v); pass an id string or a value carrying one", v, v))
}

// idOf is the tolerant counterpart used by the casting engine: it reports
// whether v is a recognizable reference instead of panicking.
func idOf(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case Identifiable:
		return t.StripeID(), true
	case Params:
		return stringField(t, "id")
	case map[string]any:
		return stringField(t, "id")
	}
	return structID(v)
}

// stringField reads a string entry from a mapping.
func stringField(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

// structID resolves the exported ID string field of a struct or pointer to
// struct via reflection.
func structID(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return "", false
	}
	f := rv.FieldByName("ID")
	if !f.IsValid() || f.Kind() != reflect.String {
		return "", false
	}
	return f.String(), true
}
