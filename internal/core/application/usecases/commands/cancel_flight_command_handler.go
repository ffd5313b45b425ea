package commands

import (
	"context"

	"reservation/internal/core/ports"
)

// CancelFlightCommandHandler cancels a scheduled flight.
type CancelFlightCommandHandler struct {
	flights ports.FlightRepository
}

// NewCancelFlightCommandHandler creates a handler for cancel operations.
func NewCancelFlightCommandHandler(flights ports.FlightRepository) CancelFlightCommandHandler {
	return CancelFlightCommandHandler{flights: flights}
}

// Handle processes the cancel command.
func (h *CancelFlightCommandHandler) Handle(ctx context.Context, cmd CancelFlightCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	f, err := h.flights.Get(ctx, cmd.FlightNumber())
	if err != nil {
		return err
	}

	f.Cancel()
	return nil
}
