// Package delivery holds the entry points that drive the use cases: HTTP servers and the in-process scheduler.
package delivery

import "context"

// Delivery is a long-running entry point started by the binaries.
// Serve blocks until the entry point stops; shutdown goes through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
