// Package flightrepo provides the in-memory FlightRepository implementation.
package flightrepo

import (
	"context"
	"sort"

	"reservation/internal/core/domain/model/flight"
	"reservation/internal/pkg/errs"
)

// Repository stores scheduled flights keyed by flight number.
type Repository struct {
	flights map[int]*flight.ScheduledFlight
}

// NewRepository creates an empty flight repository.
func NewRepository() *Repository {
	return &Repository{flights: make(map[int]*flight.ScheduledFlight)}
}

// Add stores a new scheduled flight.
func (r *Repository) Add(_ context.Context, f *flight.ScheduledFlight) error {
	if f == nil {
		return errs.NewValueIsRequiredError("flight")
	}
	if _, ok := r.flights[f.Number()]; ok {
		return errs.NewValueIsInvalidError("flight number")
	}
	r.flights[f.Number()] = f
	return nil
}

// Get retrieves a scheduled flight by its flight number.
func (r *Repository) Get(_ context.Context, number int) (*flight.ScheduledFlight, error) {
	f, ok := r.flights[number]
	if !ok {
		return nil, errs.NewObjectNotFoundError("flight number", number)
	}
	return f, nil
}

// GetAll retrieves every scheduled flight, ordered by flight number.
func (r *Repository) GetAll(_ context.Context) ([]*flight.ScheduledFlight, error) {
	all := make([]*flight.ScheduledFlight, 0, len(r.flights))
	for _, f := range r.flights {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Number() < all[j].Number() })
	return all, nil
}
