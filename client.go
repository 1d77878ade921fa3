package algolia

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/britto/algolia-go/pkg/credentials"
	"github.com/britto/algolia-go/pkg/transport"
)

// Client is the entry point of the library. It is a thin facade over the
// transport dispatcher and is safe for concurrent use; obtain per-index
// handles with Index.
type Client struct {
	d *transport.Dispatcher
}

// New creates a client reading credentials from the given provider. A nil
// provider defaults to the environment. Options are forwarded to the
// transport dispatcher.
func New(provider credentials.Provider, opts ...transport.Option) *Client {
	return NewWithDispatcher(transport.NewDispatcher(provider, opts...))
}

// NewWithDispatcher wraps an already-configured dispatcher.
func NewWithDispatcher(d *transport.Dispatcher) *Client {
	return &Client{d: d}
}

// Index returns a handle on the named index. No network activity happens
// until an operation is invoked.
func (c *Client) Index(name string) *Index {
	return &Index{c: c, name: name}
}

// ListIndexes returns every index of the application with its metadata.
func (c *Client) ListIndexes(ctx context.Context) (map[string]any, error) {
	return c.d.Dispatch(ctx, transport.Read, transport.Request{
		Method: http.MethodGet,
		Path:   "",
	})
}

// IndexedQuery is one query of a MultipleQueries call.
type IndexedQuery struct {
	IndexName string
	Query     string
	Params    Params
}

// MultipleQueries runs several search queries, possibly across indexes, in a
// single round trip. Strategy is "none" (run all) or "stopIfEnoughMatches";
// empty means "none".
func (c *Client) MultipleQueries(ctx context.Context, queries []IndexedQuery, strategy string) (map[string]any, error) {
	requests := make([]map[string]any, 0, len(queries))
	for _, q := range queries {
		if q.IndexName == "" {
			return nil, ErrEmptyIndexName
		}
		merged := Params{"query": q.Query}
		for k, v := range q.Params {
			merged[k] = v
		}
		requests = append(requests, map[string]any{
			"indexName": q.IndexName,
			"params":    encodeParams(merged),
		})
	}

	payload := map[string]any{"requests": requests}
	if strategy != "" {
		payload["strategy"] = strategy
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return c.d.Dispatch(ctx, transport.Read, transport.Request{
		Method: http.MethodPost,
		Path:   "*/queries",
		Body:   body,
	})
}

// Index is a handle on one named index. All operations are synchronous; the
// write-class ones return bodies carrying "indexName" and "taskID" so they
// can be piped into Client.Wait.
type Index struct {
	c    *Client
	name string
}

// Name returns the index name this handle addresses.
func (i *Index) Name() string {
	return i.name
}

// route builds a path under the index, percent-encoding each segment.
func (i *Index) route(segments ...string) string {
	path := url.PathEscape(i.name)
	for _, s := range segments {
		path += "/" + url.PathEscape(s)
	}
	return path
}

func (i *Index) read(ctx context.Context, req transport.Request) (map[string]any, error) {
	if i.name == "" {
		return nil, ErrEmptyIndexName
	}
	return i.c.d.Dispatch(ctx, transport.Read, req)
}

// write dispatches against the primary and stamps the index name into the
// decoded body, the shape the task waiter expects.
func (i *Index) write(ctx context.Context, req transport.Request) (map[string]any, error) {
	if i.name == "" {
		return nil, ErrEmptyIndexName
	}
	body, err := i.c.d.Dispatch(ctx, transport.Write, req)
	if err != nil {
		return nil, err
	}
	return injectIndex(body, i.name), nil
}
