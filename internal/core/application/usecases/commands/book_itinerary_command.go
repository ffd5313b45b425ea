// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation, domain
// mutation through aggregates, and persistence.
package commands

import (
	"errors"

	"reservation/internal/core/domain/model/payment"
	"reservation/internal/pkg/guard"
)

var (
	ErrBookItineraryCommandIsNotConstructed = errors.New(
		"BookItineraryCommand must be created via NewBookItineraryCommand constructor",
	)
	ErrCustomerNameIsRequired    = errors.New("customer name is required")
	ErrPassengerNamesAreRequired = errors.New("at least one passenger name is required")
	ErrFlightNumbersAreRequired  = errors.New("at least one flight number is required")
	ErrPriceIsInvalid            = errors.New("price must not be negative")
	ErrPaymentMethodIsRequired   = errors.New("payment method is required")
)

// BookItineraryCommand represents a request to book a set of flights for a
// customer and charge them through the given payment method.
//
// Example:
//
//	cmd, err := NewBookItineraryCommand("John", []string{"John", "Jane"},
//	    []int{101, 102}, 360, payment.NewPayPalMethod(email, password, wallets))
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewBookItineraryCommandHandler(customers, flights, orders)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("booking failed: %w", err)
//	}
//	fmt.Printf("Order %s paid: %v", result.Reference, result.Paid)
type BookItineraryCommand struct { //nolint:recvcheck //using for validation
	customerName   string
	passengerNames []string
	flightNumbers  []int
	price          float64
	method         payment.Method

	guard guard.ConstructorGuard
}

// NewBookItineraryCommand creates a command to book an itinerary.
// Validates that every name and flight number is given, the price is
// non-negative and a payment method is attached.
func NewBookItineraryCommand(
	customerName string,
	passengerNames []string,
	flightNumbers []int,
	price float64,
	method payment.Method,
) (BookItineraryCommand, error) {
	cmd := BookItineraryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setPassengerNames(passengerNames),
		cmd.setFlightNumbers(flightNumbers),
		cmd.setPrice(price),
		cmd.setMethod(method),
	); err != nil {
		return BookItineraryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BookItineraryCommand) Validate() error {
	return c.guard.Validate(ErrBookItineraryCommandIsNotConstructed)
}

// CustomerName returns the booking customer's full name.
func (c BookItineraryCommand) CustomerName() string {
	return c.customerName
}

// PassengerNames returns the names of the passengers to seat.
func (c BookItineraryCommand) PassengerNames() []string {
	return c.passengerNames
}

// FlightNumbers returns the flight numbers of the itinerary, in travel order.
func (c BookItineraryCommand) FlightNumbers() []int {
	return c.flightNumbers
}

// Price returns the total order price.
func (c BookItineraryCommand) Price() float64 {
	return c.price
}

// Method returns the payment method to charge.
func (c BookItineraryCommand) Method() payment.Method {
	return c.method
}

func (c *BookItineraryCommand) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = name
	return nil
}

func (c *BookItineraryCommand) setPassengerNames(names []string) error {
	if len(names) == 0 {
		return ErrPassengerNamesAreRequired
	}

	c.passengerNames = names
	return nil
}

func (c *BookItineraryCommand) setFlightNumbers(numbers []int) error {
	if len(numbers) == 0 {
		return ErrFlightNumbersAreRequired
	}

	c.flightNumbers = numbers
	return nil
}

func (c *BookItineraryCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *BookItineraryCommand) setMethod(method payment.Method) error {
	if method == nil {
		return ErrPaymentMethodIsRequired
	}

	c.method = method
	return nil
}
