package algolia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/britto/algolia-go/pkg/transport"
)

// Params carries search or deletion parameters. String values pass through
// as-is, booleans and numbers are stringified, and composite values
// (attribute lists, facet filters) are JSON-encoded the way the API expects.
type Params map[string]any

// encodeParams flattens params into the url-encoded form the query endpoints
// accept in their "params" body field. Key order is stable (sorted by
// url.Values) so request bodies are deterministic.
func encodeParams(params Params) string {
	values := url.Values{}
	for k, v := range params {
		switch t := v.(type) {
		case string:
			values.Set(k, t)
		case bool:
			values.Set(k, fmt.Sprintf("%v", t))
		case int, int64, float64:
			values.Set(k, fmt.Sprintf("%v", t))
		default:
			encoded, err := json.Marshal(t)
			if err != nil {
				continue
			}
			values.Set(k, string(encoded))
		}
	}
	return values.Encode()
}

// paramsBody wraps encoded params into the {"params": "..."} request body.
func paramsBody(params Params) ([]byte, error) {
	return json.Marshal(map[string]string{"params": encodeParams(params)})
}

// Search runs a full-text query against the index. Extra params (filters,
// pagination, facets) merge with the query; an explicit "query" key in
// params is overridden by the query argument.
func (i *Index) Search(ctx context.Context, query string, params Params) (map[string]any, error) {
	merged := Params{}
	for k, v := range params {
		merged[k] = v
	}
	merged["query"] = query

	body, err := paramsBody(merged)
	if err != nil {
		return nil, err
	}
	return i.read(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   i.route("query"),
		Body:   body,
	})
}

// SearchForFacetValues searches the values of a single facet attribute.
func (i *Index) SearchForFacetValues(ctx context.Context, facet, text string, params Params) (map[string]any, error) {
	merged := Params{}
	for k, v := range params {
		merged[k] = v
	}
	merged["facetQuery"] = text

	body, err := paramsBody(merged)
	if err != nil {
		return nil, err
	}
	return i.read(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   i.route("facets", facet, "query"),
		Body:   body,
	})
}

// Browse iterates the index without ranking. Pass "cursor" in params to
// continue from a previous page.
func (i *Index) Browse(ctx context.Context, params Params) (map[string]any, error) {
	path := i.route("browse")
	if len(params) > 0 {
		path += "?" + encodeParams(params)
	}
	return i.read(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}
