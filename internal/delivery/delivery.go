// Package delivery defines the transport abstraction shared by all servers.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker loop) managed by
// the application lifecycle. Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
