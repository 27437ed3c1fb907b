// Package delivery defines the contract every transport entry point
// implements, so the application can run them uniformly.
package delivery

import "context"

// Delivery is a long-running transport, such as an HTTP server.
// Serve blocks until the delivery stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
