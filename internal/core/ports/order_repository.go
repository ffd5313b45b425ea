package ports

import (
	"context"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates.
type OrderRepository interface {
	// Add stores a new order aggregate.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, o *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllOpen retrieves every order that has not been finalized yet.
	GetAllOpen(ctx context.Context) ([]*order.Order, error)
}
