package commands

import (
	"errors"

	"reservation/internal/pkg/guard"
)

var (
	ErrChangeFlightPriceCommandIsNotConstructed = errors.New(
		"ChangeFlightPriceCommand must be created via NewChangeFlightPriceCommand constructor",
	)
	ErrFlightNumberIsInvalid = errors.New("flight number must be positive")
	ErrNewPriceIsInvalid     = errors.New("new price must not be negative")
)

// ChangeFlightPriceCommand represents a request to reprice a scheduled
// flight. Every customer subscribed to the flight is notified.
type ChangeFlightPriceCommand struct { //nolint:recvcheck //using for validation
	flightNumber int
	newPrice     float64

	guard guard.ConstructorGuard
}

// NewChangeFlightPriceCommand creates a command to reprice a flight.
func NewChangeFlightPriceCommand(flightNumber int, newPrice float64) (ChangeFlightPriceCommand, error) {
	cmd := ChangeFlightPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFlightNumber(flightNumber),
		cmd.setNewPrice(newPrice),
	); err != nil {
		return ChangeFlightPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeFlightPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeFlightPriceCommandIsNotConstructed)
}

// FlightNumber returns the number of the flight to reprice.
func (c ChangeFlightPriceCommand) FlightNumber() int {
	return c.flightNumber
}

// NewPrice returns the price to set.
func (c ChangeFlightPriceCommand) NewPrice() float64 {
	return c.newPrice
}

func (c *ChangeFlightPriceCommand) setFlightNumber(number int) error {
	if number <= 0 {
		return ErrFlightNumberIsInvalid
	}

	c.flightNumber = number
	return nil
}

func (c *ChangeFlightPriceCommand) setNewPrice(price float64) error {
	if price < 0 {
		return ErrNewPriceIsInvalid
	}

	c.newPrice = price
	return nil
}
