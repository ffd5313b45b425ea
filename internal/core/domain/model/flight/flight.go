package flight

import (
	"fmt"

	"reservation/internal/core/domain/model/aircraft"
	"reservation/internal/core/domain/model/airport"
	"reservation/internal/pkg/errs"
)

// ErrAircraftNotAllowed is returned when the aircraft model assigned to a
// flight is not permitted at one of the route's endpoints.
var ErrAircraftNotAllowed = errs.NewValueIsInvalidError(
	"selected aircraft is not valid for the selected route")

// Flight describes a route flown by a specific aircraft. The route is checked
// once at construction: the aircraft model must be permitted at both the
// departure and the arrival airport, and construction fails otherwise.
//
// Flight carries no schedule; ScheduledFlight adds the departure time, price
// and passenger roster for one concrete instance of the route.
type Flight struct {
	number    int
	departure airport.Airport
	arrival   airport.Airport
	craft     aircraft.Aircraft
}

// NewFlight creates a route-validated Flight.
func NewFlight(number int, departure, arrival airport.Airport, craft aircraft.Aircraft) (*Flight, error) {
	if craft == nil {
		return nil, errs.NewValueIsRequiredError("aircraft")
	}
	if err := departure.Validate(); err != nil {
		return nil, err
	}
	if err := arrival.Validate(); err != nil {
		return nil, err
	}
	if number <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("flight number",
			fmt.Errorf("%d is not greater than 0", number))
	}

	if !departure.Allows(craft.Model()) || !arrival.Allows(craft.Model()) {
		return nil, ErrAircraftNotAllowed
	}

	return &Flight{
		number:    number,
		departure: departure,
		arrival:   arrival,
		craft:     craft,
	}, nil
}

// Number returns the flight number.
func (f *Flight) Number() int {
	return f.number
}

// Departure returns the departure airport.
func (f *Flight) Departure() airport.Airport {
	return f.departure
}

// Arrival returns the arrival airport.
func (f *Flight) Arrival() airport.Airport {
	return f.arrival
}

// Aircraft returns the aircraft flying the route.
func (f *Flight) Aircraft() aircraft.Aircraft {
	return f.craft
}

func (f *Flight) String() string {
	return fmt.Sprintf("%s-%d-%s/%s", f.craft.Model(), f.number, f.departure.Code(), f.arrival.Code())
}
