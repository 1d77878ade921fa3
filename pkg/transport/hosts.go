package transport

import (
	"fmt"
	"time"
)

// HostClass selects which endpoint naming scheme a request targets.
type HostClass int

const (
	// Read favors the low-latency DSN replica for search and retrieval.
	Read HostClass = iota
	// Write targets the authoritative primary for mutations and task status.
	Write
)

func (c HostClass) String() string {
	if c == Write {
		return "write"
	}
	return "read"
}

// maxAttempts bounds the retry loop: one class-specific attempt plus three
// cluster fallbacks.
const maxAttempts = 4

const (
	baseConnectTimeout = 3 * time.Second
	baseReceiveTimeout = 30 * time.Second
)

// HostResolver maps (app id, host class, retry count) to a hostname.
// Overridable for tests; production code uses the fixed cluster topology.
type HostResolver func(appID string, class HostClass, retry int) string

// clusterHost is the production topology. Failover attempts deliberately
// ignore the host class: the numbered cluster members serve both reads and
// writes.
func clusterHost(appID string, class HostClass, retry int) string {
	if retry == 0 {
		if class == Read {
			return appID + "-dsn.algolia.net"
		}
		return appID + ".algolia.net"
	}
	return fmt.Sprintf("%s-%d.algolianet.com", appID, retry)
}

// timeoutsFor returns the connect and receive timeouts for a given attempt.
// Both grow linearly with the retry count, trading latency for reach on the
// later attempts.
func timeoutsFor(retry int) (connect, receive time.Duration) {
	scale := time.Duration(retry + 1)
	return baseConnectTimeout * scale, baseReceiveTimeout * scale
}
