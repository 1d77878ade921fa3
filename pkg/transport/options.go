package transport

import (
	"log/slog"
	"net/http"
)

// Option is a functional option for configuring a Dispatcher.
type Option func(*Dispatcher)

// WithLogger attaches a structured logger. Attempts and failovers are logged
// at debug level, exhaustion at warn. Default is a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// WithHostResolver overrides the cluster topology. Intended for tests that
// point attempts at local servers or unreachable ports.
func WithHostResolver(r HostResolver) Option {
	return func(d *Dispatcher) {
		if r != nil {
			d.resolve = r
		}
	}
}

// WithScheme sets the URL scheme. Production traffic is always HTTPS; plain
// HTTP exists for httptest servers. Any other value is ignored.
func WithScheme(scheme string) Option {
	return func(d *Dispatcher) {
		if scheme == "http" || scheme == "https" {
			d.scheme = scheme
		}
	}
}

// WithHTTPClient replaces the per-tier HTTP clients with a single custom
// client for every attempt. Useful for proxies or recording transports;
// note it also bypasses the per-tier connect timeout scaling.
func WithHTTPClient(client *http.Client) Option {
	return func(d *Dispatcher) {
		if client == nil {
			return
		}
		for i := range d.clients {
			d.clients[i] = client
		}
	}
}
