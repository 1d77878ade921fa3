package algolia

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/britto/algolia-go/pkg/transport"
)

// GetSettings returns the index configuration.
func (i *Index) GetSettings(ctx context.Context) (map[string]any, error) {
	return i.read(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   i.route("settings"),
	})
}

// SetSettings updates the index configuration. Only the provided keys
// change; the result carries a task to wait on like any other write.
func (i *Index) SetSettings(ctx context.Context, settings map[string]any) (map[string]any, error) {
	body, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}
	return i.write(ctx, transport.Request{
		Method: http.MethodPut,
		Path:   i.route("settings"),
		Body:   body,
	})
}
