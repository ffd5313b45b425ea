package commands

import (
	"context"

	"reservation/internal/core/ports"
)

// ChangeFlightPriceCommandHandler reprices a scheduled flight.
type ChangeFlightPriceCommandHandler struct {
	flights ports.FlightRepository
}

// NewChangeFlightPriceCommandHandler creates a handler for reprice operations.
func NewChangeFlightPriceCommandHandler(flights ports.FlightRepository) ChangeFlightPriceCommandHandler {
	return ChangeFlightPriceCommandHandler{flights: flights}
}

// Handle processes the reprice command. Subscribed customers are notified as
// a side effect of the price change.
func (h *ChangeFlightPriceCommandHandler) Handle(ctx context.Context, cmd ChangeFlightPriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	f, err := h.flights.Get(ctx, cmd.FlightNumber())
	if err != nil {
		return err
	}

	return f.SetPrice(cmd.NewPrice())
}
