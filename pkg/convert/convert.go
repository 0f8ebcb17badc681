// Package convert maps raw API responses onto registered Go types keyed by
// the payload's "object" field. Unregistered objects pass through as
// decoded maps, and list envelopes convert element-wise.
package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/hassan/stripity-stripe/pkg/request"
)

// List is the decoded form of the API's list envelope. Data holds the
// converted elements in response order.
type List struct {
	Object  string `json:"object"`
	Data    []any  `json:"data"`
	HasMore bool   `json:"has_more"`
	URL     string `json:"url"`
}

// Converter holds the object-name registry and implements
// request.Converter. The zero value is not usable; call New.
type Converter struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

var _ request.Converter = (*Converter)(nil)

// New returns an empty Converter. Resource packages register their object
// types against it.
func New() *Converter {
	return &Converter{types: make(map[string]reflect.Type)}
}

// Register associates an object name with the concrete type of prototype.
// Pointer prototypes are dereferenced; blank names and nil prototypes are
// ignored.
func (c *Converter) Register(object string, prototype any) {
	object = strings.TrimSpace(object)
	if object == "" || prototype == nil {
		return
	}
	t := reflect.TypeOf(prototype)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	c.mu.Lock()
	c.types[object] = t
	c.mu.Unlock()
}

// Convert decodes the response body and maps it onto registered types.
// Empty bodies yield nil.
func (c *Converter) Convert(resp request.Response) (any, error) {
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil, nil
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	return c.convertValue(raw)
}

func (c *Converter) convertValue(v any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return v, nil
	}

	object, _ := m["object"].(string)
	if object == "list" {
		return c.convertList(m)
	}

	t, ok := c.typeFor(object)
	if !ok {
		return m, nil
	}

	buf, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("re-encode %q payload: %w", object, err)
	}
	out := reflect.New(t).Interface()
	if err := json.Unmarshal(buf, out); err != nil {
		return nil, fmt.Errorf("decode %q into %s: %w", object, t, err)
	}
	return out, nil
}

func (c *Converter) convertList(m map[string]any) (*List, error) {
	list := &List{Object: "list"}
	list.HasMore, _ = m["has_more"].(bool)
	list.URL, _ = m["url"].(string)

	items, _ := m["data"].([]any)
	list.Data = make([]any, 0, len(items))
	for _, item := range items {
		converted, err := c.convertValue(item)
		if err != nil {
			return nil, err
		}
		list.Data = append(list.Data, converted)
	}
	return list, nil
}

func (c *Converter) typeFor(object string) (reflect.Type, bool) {
	if object == "" {
		return nil, false
	}
	c.mu.RLock()
	t, ok := c.types[object]
	c.mu.RUnlock()
	return t, ok
}
