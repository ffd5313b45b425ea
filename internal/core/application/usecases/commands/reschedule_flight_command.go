package commands

import (
	"errors"
	"time"

	"reservation/internal/pkg/guard"
)

var (
	ErrRescheduleFlightCommandIsNotConstructed = errors.New(
		"RescheduleFlightCommand must be created via NewRescheduleFlightCommand constructor",
	)
	ErrDepartureTimeIsRequired = errors.New("departure time is required")
)

// RescheduleFlightCommand represents a request to move a scheduled flight to
// a new departure time. Every customer subscribed to the flight is notified.
type RescheduleFlightCommand struct { //nolint:recvcheck //using for validation
	flightNumber  int
	departureTime time.Time

	guard guard.ConstructorGuard
}

// NewRescheduleFlightCommand creates a command to reschedule a flight.
func NewRescheduleFlightCommand(flightNumber int, departureTime time.Time) (RescheduleFlightCommand, error) {
	cmd := RescheduleFlightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFlightNumber(flightNumber),
		cmd.setDepartureTime(departureTime),
	); err != nil {
		return RescheduleFlightCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RescheduleFlightCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleFlightCommandIsNotConstructed)
}

// FlightNumber returns the number of the flight to reschedule.
func (c RescheduleFlightCommand) FlightNumber() int {
	return c.flightNumber
}

// DepartureTime returns the new departure time.
func (c RescheduleFlightCommand) DepartureTime() time.Time {
	return c.departureTime
}

func (c *RescheduleFlightCommand) setFlightNumber(number int) error {
	if number <= 0 {
		return ErrFlightNumberIsInvalid
	}

	c.flightNumber = number
	return nil
}

func (c *RescheduleFlightCommand) setDepartureTime(departureTime time.Time) error {
	if departureTime.IsZero() {
		return ErrDepartureTimeIsRequired
	}

	c.departureTime = departureTime
	return nil
}
