package algolia

import (
	"fmt"
	"strconv"
)

// objectIDKey is the canonical attribute addressing an object. Incoming maps
// are plain Go maps, so the lookup is a single key access; normalization of
// heterogeneous key types happens at the JSON boundary.
const objectIDKey = "objectID"

// injectIndex stamps the index name into a decoded response body, producing
// the structure the task waiter extracts from. A nil body passes through
// untouched.
func injectIndex(body map[string]any, index string) map[string]any {
	if body == nil {
		return body
	}
	body["indexName"] = index
	return body
}

// objectIDOf returns the object's identifier attribute, if present and
// non-nil.
func objectIDOf(obj map[string]any) (any, bool) {
	v, ok := obj[objectIDKey]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// objectIDString resolves the identifier to the string form used in URL
// paths. JSON numbers are accepted since decoded payloads carry identifiers
// as float64.
func objectIDString(obj map[string]any) (string, error) {
	v, ok := objectIDOf(obj)
	if !ok {
		return "", ErrMissingObjectID
	}
	var id string
	switch t := v.(type) {
	case string:
		id = t
	case float64:
		id = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		id = strconv.Itoa(t)
	case int64:
		id = strconv.FormatInt(t, 10)
	case fmt.Stringer:
		id = t.String()
	default:
		return "", ErrMissingObjectID
	}
	if id == "" {
		return "", ErrEmptyObjectID
	}
	return id, nil
}
