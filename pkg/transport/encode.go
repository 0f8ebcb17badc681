package transport

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/hassan/stripity-stripe/pkg/request"
)

// encodeParams flattens params into the API's form encoding: nested
// mappings become `a[b]=v`, sequences become `a[0]=v`. Keys are visited in
// sorted order so the encoding is deterministic.
func encodeParams(params request.Params) url.Values {
	vals := url.Values{}
	for _, k := range sortedKeys(params) {
		encodeValue(vals, k, params[k])
	}
	return vals
}

func encodeValue(vals url.Values, key string, v any) {
	switch t := v.(type) {
	case nil:
		vals.Set(key, "")
	case string:
		vals.Set(key, t)
	case bool:
		vals.Set(key, strconv.FormatBool(t))
	case int:
		vals.Set(key, strconv.Itoa(t))
	case int32:
		vals.Set(key, strconv.FormatInt(int64(t), 10))
	case int64:
		vals.Set(key, strconv.FormatInt(t, 10))
	case uint64:
		vals.Set(key, strconv.FormatUint(t, 10))
	case float32:
		vals.Set(key, strconv.FormatFloat(float64(t), 'f', -1, 32))
	case float64:
		vals.Set(key, strconv.FormatFloat(t, 'f', -1, 64))
	case request.Params:
		encodeNested(vals, key, t)
	case map[string]any:
		encodeNested(vals, key, t)
	case []string:
		for i, item := range t {
			vals.Set(indexedKey(key, i), item)
		}
	case []any:
		for i, item := range t {
			encodeValue(vals, indexedKey(key, i), item)
		}
	default:
		// Last resort for fmt.Stringer-ish values the cases above miss.
		vals.Set(key, stringify(t))
	}
}

func encodeNested(vals url.Values, key string, m map[string]any) {
	for _, k := range sortedKeys(m) {
		encodeValue(vals, key+"["+k+"]", m[k])
	}
}

func stringify(v any) string {
	return fmt.Sprint(v)
}

func indexedKey(key string, i int) string {
	return key + "[" + strconv.Itoa(i) + "]"
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
