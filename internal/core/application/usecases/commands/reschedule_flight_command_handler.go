package commands

import (
	"context"

	"reservation/internal/core/ports"
)

// RescheduleFlightCommandHandler moves a scheduled flight to a new departure
// time.
type RescheduleFlightCommandHandler struct {
	flights ports.FlightRepository
}

// NewRescheduleFlightCommandHandler creates a handler for reschedule
// operations.
func NewRescheduleFlightCommandHandler(flights ports.FlightRepository) RescheduleFlightCommandHandler {
	return RescheduleFlightCommandHandler{flights: flights}
}

// Handle processes the reschedule command.
func (h *RescheduleFlightCommandHandler) Handle(ctx context.Context, cmd RescheduleFlightCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	f, err := h.flights.Get(ctx, cmd.FlightNumber())
	if err != nil {
		return err
	}

	return f.Reschedule(cmd.DepartureTime())
}
