// Package orderrepo provides the in-memory OrderRepository implementation.
package orderrepo

import (
	"context"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/domain/model/order"
	"reservation/internal/pkg/errs"
)

// Repository stores order aggregates keyed by identity. Insertion order is
// preserved for listing.
type Repository struct {
	byID  map[kernel.UUID]*order.Order
	added []*order.Order
}

// NewRepository creates an empty order repository.
func NewRepository() *Repository {
	return &Repository{byID: make(map[kernel.UUID]*order.Order)}
}

// Add stores a new order aggregate.
func (r *Repository) Add(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if _, ok := r.byID[o.ID()]; ok {
		return errs.NewValueIsInvalidError("order ID")
	}
	r.byID[o.ID()] = o
	r.added = append(r.added, o)
	return nil
}

// Get retrieves an order aggregate by its unique identifier.
func (r *Repository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	o, ok := r.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o, nil
}

// GetAllOpen retrieves every order that has not been finalized yet, oldest
// first.
func (r *Repository) GetAllOpen(_ context.Context) ([]*order.Order, error) {
	var open []*order.Order
	for _, o := range r.added {
		if !o.IsClosed() {
			open = append(open, o)
		}
	}
	return open, nil
}
