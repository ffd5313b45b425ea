// Package ports defines repository interfaces for the reservation domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"reservation/internal/core/domain/model/flight"
)

// FlightRepository defines the storage contract for scheduled flights.
// Flights are identified by their flight number.
type FlightRepository interface {
	// Add stores a new scheduled flight.
	// The flight must not already exist in the repository.
	Add(ctx context.Context, f *flight.ScheduledFlight) error

	// Get retrieves a scheduled flight by its flight number.
	Get(ctx context.Context, number int) (*flight.ScheduledFlight, error)

	// GetAll retrieves every scheduled flight, ordered by flight number.
	GetAll(ctx context.Context) ([]*flight.ScheduledFlight, error)
}
