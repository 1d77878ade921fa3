package algolia

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/britto/algolia-go/pkg/transport"
)

// Clear removes every object of the index while keeping its settings.
func (i *Index) Clear(ctx context.Context) (map[string]any, error) {
	return i.write(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   i.route("clear"),
	})
}

// Delete removes the index entirely, settings included.
func (i *Index) Delete(ctx context.Context) (map[string]any, error) {
	return i.write(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   i.route(),
	})
}

// MoveTo renames the index, atomically replacing destination if it exists.
func (i *Index) MoveTo(ctx context.Context, destination string) (map[string]any, error) {
	return i.operation(ctx, "move", destination)
}

// CopyTo duplicates the index, objects and settings both, onto destination.
func (i *Index) CopyTo(ctx context.Context, destination string) (map[string]any, error) {
	return i.operation(ctx, "copy", destination)
}

func (i *Index) operation(ctx context.Context, op, destination string) (map[string]any, error) {
	if destination == "" {
		return nil, ErrEmptyIndexName
	}
	body, err := json.Marshal(map[string]string{
		"operation":   op,
		"destination": destination,
	})
	if err != nil {
		return nil, err
	}
	return i.write(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   i.route("operation"),
		Body:   body,
	})
}
