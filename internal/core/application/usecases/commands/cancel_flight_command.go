package commands

import (
	"errors"

	"reservation/internal/pkg/guard"
)

var ErrCancelFlightCommandIsNotConstructed = errors.New(
	"CancelFlightCommand must be created via NewCancelFlightCommand constructor",
)

// CancelFlightCommand represents a request to cancel a scheduled flight.
// Every customer subscribed to the flight is notified.
type CancelFlightCommand struct { //nolint:recvcheck //using for validation
	flightNumber int

	guard guard.ConstructorGuard
}

// NewCancelFlightCommand creates a command to cancel a flight.
func NewCancelFlightCommand(flightNumber int) (CancelFlightCommand, error) {
	cmd := CancelFlightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setFlightNumber(flightNumber); err != nil {
		return CancelFlightCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelFlightCommand) Validate() error {
	return c.guard.Validate(ErrCancelFlightCommandIsNotConstructed)
}

// FlightNumber returns the number of the flight to cancel.
func (c CancelFlightCommand) FlightNumber() int {
	return c.flightNumber
}

func (c *CancelFlightCommand) setFlightNumber(number int) error {
	if number <= 0 {
		return ErrFlightNumberIsInvalid
	}

	c.flightNumber = number
	return nil
}
