// Package delivery holds the transports that expose the usecases.
package delivery

import "context"

// Delivery is a long-running transport started by fx.
type Delivery interface {
	Serve(ctx context.Context) error
}
