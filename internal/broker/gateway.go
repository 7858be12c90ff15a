// Package broker defines the order gateway boundary. Real order routing lives
// in the host; strategies only hand intents across this interface.
package broker

import (
	"github.com/rxtech-lab/argo-strategies/internal/types"
)

// OrderGateway accepts an order intent and returns a handle for the host to
// track. Implementations decide fills; the core never does.
type OrderGateway interface {
	PlaceOrder(order *types.ExecuteOrder) (types.OrderHandle, error)
}
