// Package transport implements the request dispatch core of the client:
// host selection across the fixed cluster topology, bounded retry with
// linearly scaled timeouts, and classification of outcomes into definitive
// answers versus transient failures.
//
// # Host selection
//
// Each logical request carries a HostClass. The first attempt targets the
// class-specific endpoint: reads go to the DSN-backed replica
// ({app}-dsn.algolia.net), writes to the primary ({app}.algolia.net).
// Failover attempts 1 through 3 target the numbered cluster members
// ({app}-1.algolianet.com and so on) regardless of class. After four failed
// attempts the dispatcher gives up and returns ErrExhausted.
//
// # Retry semantics
//
// Only transport-level failures (DNS, connection refused, TLS, timeout)
// trigger failover. An HTTP response with any status is a definitive answer:
// 2xx bodies are decoded as JSON, everything else is returned immediately as
// an *HTTPError without a second attempt. There is no sleep between
// attempts; backoff takes the form of growing timeouts, with attempt k using
// a connect timeout of 3s·(k+1) and a receive timeout of 30s·(k+1).
//
// # Usage
//
//	d := transport.NewDispatcher(credentials.FromEnv())
//	body, err := d.Dispatch(ctx, transport.Read, transport.Request{
//	    Method: http.MethodGet,
//	    Path:   "movies/settings",
//	})
//	var httpErr *transport.HTTPError
//	switch {
//	case errors.As(err, &httpErr):
//	    // the service answered with a non-2xx status
//	case errors.Is(err, transport.ErrExhausted):
//	    // every cluster member was unreachable
//	}
//
// Credentials are read from the provider freshly on every attempt, so
// rotating keys mid-retry is safe. TLS is pinned to version 1.2 exactly.
package transport
