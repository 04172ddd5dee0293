// Package delivery defines the contract shared by everything that serves
// traffic or runs in the background, so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running component started by the application entrypoint.
// Serve blocks until the component stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
