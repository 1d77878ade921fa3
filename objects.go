package algolia

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/britto/algolia-go/pkg/transport"
)

// GetObject fetches one object by identifier. Optional attrs restrict which
// attributes are returned.
func (i *Index) GetObject(ctx context.Context, objectID string, attrs ...string) (map[string]any, error) {
	if objectID == "" {
		return nil, ErrEmptyObjectID
	}
	path := i.route(objectID)
	if len(attrs) > 0 {
		path += "?" + encodeParams(Params{"attributes": strings.Join(attrs, ",")})
	}
	return i.read(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// GetObjects fetches several objects of this index in one round trip.
func (i *Index) GetObjects(ctx context.Context, objectIDs []string) (map[string]any, error) {
	requests := make([]map[string]string, 0, len(objectIDs))
	for _, id := range objectIDs {
		if id == "" {
			return nil, ErrEmptyObjectID
		}
		requests = append(requests, map[string]string{
			"indexName": i.name,
			"objectID":  id,
		})
	}
	body, err := json.Marshal(map[string]any{"requests": requests})
	if err != nil {
		return nil, err
	}
	return i.read(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "*/objects",
		Body:   body,
	})
}

// AddObject indexes an object, letting the server assign an identifier when
// the object carries none.
func (i *Index) AddObject(ctx context.Context, obj map[string]any) (map[string]any, error) {
	body, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return i.write(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   i.route(),
		Body:   body,
	})
}

// SaveObject creates or fully replaces the object at its objectID. Objects
// without an objectID attribute are rejected locally.
func (i *Index) SaveObject(ctx context.Context, obj map[string]any) (map[string]any, error) {
	id, err := objectIDString(obj)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return i.write(ctx, transport.Request{
		Method: http.MethodPut,
		Path:   i.route(id),
		Body:   body,
	})
}

// PartialUpdateObject updates only the attributes present in obj. When
// createIfNotExists is false a missing object is left uncreated.
func (i *Index) PartialUpdateObject(ctx context.Context, obj map[string]any, createIfNotExists bool) (map[string]any, error) {
	id, err := objectIDString(obj)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	path := i.route(id, "partial")
	if !createIfNotExists {
		path += "?" + encodeParams(Params{"createIfNotExists": false})
	}
	return i.write(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// DeleteObject removes one object. An empty identifier is rejected before
// any network call: the empty path would address the whole index.
func (i *Index) DeleteObject(ctx context.Context, objectID string) (map[string]any, error) {
	if objectID == "" {
		return nil, ErrEmptyObjectID
	}
	return i.write(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   i.route(objectID),
	})
}

// DeleteBy removes every object matching the given filter params.
func (i *Index) DeleteBy(ctx context.Context, params Params) (map[string]any, error) {
	body, err := paramsBody(params)
	if err != nil {
		return nil, err
	}
	return i.write(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   i.route("deleteByQuery"),
		Body:   body,
	})
}
