// Package delivery defines the contract shared by all inbound adapters
// (HTTP servers, workers) managed by the application lifecycle.
package delivery

import "context"

// Delivery is implemented by every server the application runs.
type Delivery interface {
	// Serve blocks until the delivery stops or the context is cancelled.
	Serve(ctx context.Context) error
}
