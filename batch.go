package algolia

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/britto/algolia-go/pkg/transport"
)

// Batch actions understood by the service.
const (
	ActionAddObject             = "addObject"
	ActionUpdateObject          = "updateObject"
	ActionPartialUpdateObject   = "partialUpdateObject"
	ActionPartialUpdateNoCreate = "partialUpdateObjectNoCreate"
	ActionDeleteObject          = "deleteObject"
)

// BatchOperation is one indexed mutation inside a batch envelope. ObjectID
// is emitted iff the source object carried one.
type BatchOperation struct {
	Action   string         `json:"action"`
	ObjectID any            `json:"objectID,omitempty"`
	Body     map[string]any `json:"body"`
}

// BatchRequest is the envelope POSTed to the batch endpoint. The service
// applies requests in array order.
type BatchRequest struct {
	Requests []BatchOperation `json:"requests"`
}

// BuildBatch bundles objects into a batch envelope with a uniform action,
// preserving input order. Objects carrying a non-nil objectID attribute get
// it lifted into the operation; the rest leave identifier assignment to the
// server.
func BuildBatch(objects []map[string]any, action string) BatchRequest {
	requests := make([]BatchOperation, 0, len(objects))
	for _, obj := range objects {
		op := BatchOperation{Action: action, Body: obj}
		if id, ok := objectIDOf(obj); ok {
			op.ObjectID = id
		}
		requests = append(requests, op)
	}
	return BatchRequest{Requests: requests}
}

// SendBatch posts a batch envelope against the index.
func (i *Index) SendBatch(ctx context.Context, batch BatchRequest) (map[string]any, error) {
	body, err := json.Marshal(batch)
	if err != nil {
		return nil, err
	}
	return i.write(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   i.route("batch"),
		Body:   body,
	})
}

// AddObjects indexes several objects in one batch; objects without an
// objectID get server-assigned identifiers.
func (i *Index) AddObjects(ctx context.Context, objects []map[string]any) (map[string]any, error) {
	return i.SendBatch(ctx, BuildBatch(objects, ActionAddObject))
}

// SaveObjects creates or replaces several objects in one batch. Every object
// must carry an objectID attribute.
func (i *Index) SaveObjects(ctx context.Context, objects []map[string]any) (map[string]any, error) {
	for _, obj := range objects {
		if _, err := objectIDString(obj); err != nil {
			return nil, err
		}
	}
	return i.SendBatch(ctx, BuildBatch(objects, ActionUpdateObject))
}

// PartialUpdateObjects applies attribute-level updates in one batch.
func (i *Index) PartialUpdateObjects(ctx context.Context, objects []map[string]any, createIfNotExists bool) (map[string]any, error) {
	action := ActionPartialUpdateObject
	if !createIfNotExists {
		action = ActionPartialUpdateNoCreate
	}
	for _, obj := range objects {
		if _, err := objectIDString(obj); err != nil {
			return nil, err
		}
	}
	return i.SendBatch(ctx, BuildBatch(objects, action))
}

// DeleteObjects removes several objects by identifier in one batch.
func (i *Index) DeleteObjects(ctx context.Context, objectIDs []string) (map[string]any, error) {
	objects := make([]map[string]any, 0, len(objectIDs))
	for _, id := range objectIDs {
		if id == "" {
			return nil, ErrEmptyObjectID
		}
		objects = append(objects, map[string]any{objectIDKey: id})
	}
	return i.SendBatch(ctx, BuildBatch(objects, ActionDeleteObject))
}
