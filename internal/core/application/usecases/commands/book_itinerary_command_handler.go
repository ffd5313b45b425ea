package commands

import (
	"context"

	"reservation/internal/core/domain/model/flight"
	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/ports"
)

// BookItineraryResult reports the outcome of a booking.
// Paid is false when the payment method declined the charge; the order is
// then stored open and can be processed again with another method.
type BookItineraryResult struct {
	OrderID   kernel.UUID
	Reference string
	Paid      bool
}

// BookItineraryCommandHandler handles the business logic for bookings.
// Loads the customer and flights, lets the customer aggregate create the
// order, charges it and stores the result.
type BookItineraryCommandHandler struct {
	customers ports.CustomerRepository
	flights   ports.FlightRepository
	orders    ports.OrderRepository
}

// NewBookItineraryCommandHandler creates a handler for booking operations.
func NewBookItineraryCommandHandler(
	customers ports.CustomerRepository,
	flights ports.FlightRepository,
	orders ports.OrderRepository,
) BookItineraryCommandHandler {
	return BookItineraryCommandHandler{
		customers: customers,
		flights:   flights,
		orders:    orders,
	}
}

// Handle processes the booking command.
//
// A declined charge is not an error: the order is stored open and the result
// reports Paid as false. Booking failures (unknown customer or flight, no-fly
// match, insufficient seats) are returned as errors and nothing is stored.
// Payment errors are returned after the open order is stored, so it can be
// retried with another method.
func (h *BookItineraryCommandHandler) Handle(ctx context.Context, cmd BookItineraryCommand) (BookItineraryResult, error) {
	if err := cmd.Validate(); err != nil {
		return BookItineraryResult{}, err
	}

	c, err := h.customers.GetByName(ctx, cmd.CustomerName())
	if err != nil {
		return BookItineraryResult{}, err
	}

	legs := make([]*flight.ScheduledFlight, 0, len(cmd.FlightNumbers()))
	for _, number := range cmd.FlightNumbers() {
		f, err := h.flights.Get(ctx, number)
		if err != nil {
			return BookItineraryResult{}, err
		}
		legs = append(legs, f)
	}

	o, err := c.CreateOrder(cmd.PassengerNames(), legs, cmd.Price())
	if err != nil {
		return BookItineraryResult{}, err
	}
	if err := o.SetPaymentMethod(cmd.Method()); err != nil {
		return BookItineraryResult{}, err
	}
	if err := h.orders.Add(ctx, o); err != nil {
		return BookItineraryResult{}, err
	}

	paid, err := o.Process()
	if err != nil {
		return BookItineraryResult{}, err
	}

	return BookItineraryResult{
		OrderID:   o.ID(),
		Reference: o.Reference(),
		Paid:      paid,
	}, nil
}
