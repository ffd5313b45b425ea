// Package customerrepo provides the in-memory CustomerRepository
// implementation.
package customerrepo

import (
	"context"

	"reservation/internal/core/domain/model/customer"
	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/errs"
)

// Repository stores customer aggregates keyed by identity.
type Repository struct {
	customers map[kernel.UUID]*customer.Customer
}

// NewRepository creates an empty customer repository.
func NewRepository() *Repository {
	return &Repository{customers: make(map[kernel.UUID]*customer.Customer)}
}

// Add stores a new customer aggregate.
func (r *Repository) Add(_ context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if _, ok := r.customers[c.ID()]; ok {
		return errs.NewValueIsInvalidError("customer ID")
	}
	r.customers[c.ID()] = c
	return nil
}

// Get retrieves a customer aggregate by its unique identifier.
func (r *Repository) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	c, ok := r.customers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id.String())
	}
	return c, nil
}

// GetByName retrieves a customer aggregate by its full name.
func (r *Repository) GetByName(_ context.Context, name string) (*customer.Customer, error) {
	for _, c := range r.customers {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("customer name", name)
}
