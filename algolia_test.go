package algolia_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	algolia "github.com/britto/algolia-go"
	"github.com/britto/algolia-go/pkg/credentials"
	"github.com/britto/algolia-go/pkg/transport"
)

// newTestClient builds a client whose dispatcher targets a local test server
// for every attempt.
func newTestClient(t *testing.T, handler http.Handler) *algolia.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	d := transport.NewDispatcher(credentials.Static("app", "key"),
		transport.WithScheme("http"),
		transport.WithHostResolver(func(string, transport.HostClass, int) string {
			return srv.Listener.Addr().String()
		}),
	)
	return algolia.NewWithDispatcher(d)
}

// newOfflineClient builds a client that fails the test if any host is ever
// resolved, for asserting that local validation never touches the network.
func newOfflineClient(t *testing.T) (*algolia.Client, *atomic.Int32) {
	t.Helper()

	var resolved atomic.Int32
	d := transport.NewDispatcher(credentials.Static("app", "key"),
		transport.WithHostResolver(func(string, transport.HostClass, int) string {
			resolved.Add(1)
			return "unreachable.invalid"
		}),
	)
	return algolia.NewWithDispatcher(d), &resolved
}
