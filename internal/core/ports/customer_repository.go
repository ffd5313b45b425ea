package ports

import (
	"context"

	"reservation/internal/core/domain/model/customer"
	"reservation/internal/core/domain/model/kernel"
)

// CustomerRepository defines the storage contract for customer aggregates.
type CustomerRepository interface {
	// Add stores a new customer aggregate.
	// The customer must be valid and not already exist in the repository.
	Add(ctx context.Context, c *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByName retrieves a customer aggregate by its full name.
	GetByName(ctx context.Context, name string) (*customer.Customer, error)
}
