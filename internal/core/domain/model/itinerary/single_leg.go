package itinerary

import (
	"time"

	"reservation/internal/core/domain/model/airport"
	"reservation/internal/core/domain/model/flight"
	"reservation/internal/core/domain/model/passenger"
	"reservation/internal/pkg/errs"
)

// SingleLeg is an itinerary wrapping exactly one scheduled flight. All
// queries delegate to the flight; the arrival time is estimated from the
// leg distance at cruise speed.
type SingleLeg struct {
	flight   *flight.ScheduledFlight
	distance DistanceFunc
}

// NewSingleLeg wraps a scheduled flight using the default distance model.
func NewSingleLeg(f *flight.ScheduledFlight) (*SingleLeg, error) {
	return NewSingleLegWithDistance(f, defaultDistance)
}

// NewSingleLegWithDistance wraps a scheduled flight with a custom distance
// estimator.
func NewSingleLegWithDistance(f *flight.ScheduledFlight, distance DistanceFunc) (*SingleLeg, error) {
	if f == nil {
		return nil, errs.NewValueIsRequiredError("flight")
	}
	if distance == nil {
		distance = defaultDistance
	}
	return &SingleLeg{flight: f, distance: distance}, nil
}

// Flight returns the wrapped scheduled flight.
func (l *SingleLeg) Flight() *flight.ScheduledFlight {
	return l.flight
}

func (l *SingleLeg) Price() float64 {
	return l.flight.Price()
}

func (l *SingleLeg) Departure() (airport.Airport, bool) {
	return l.flight.Departure(), true
}

func (l *SingleLeg) Arrival() (airport.Airport, bool) {
	return l.flight.Arrival(), true
}

func (l *SingleLeg) DepartureTime() (time.Time, bool) {
	return l.flight.DepartureTime(), true
}

// ArrivalTime estimates the arrival as departure time plus flight time at
// cruise speed over the leg distance.
func (l *SingleLeg) ArrivalTime() (time.Time, bool) {
	flightTime := time.Duration(float64(l.TotalDistance()) / cruiseSpeedKmh * float64(time.Hour))
	return l.flight.DepartureTime().Add(flightTime), true
}

// Stops is always empty for a single leg.
func (l *SingleLeg) Stops() []airport.Airport {
	return []airport.Airport{}
}

func (l *SingleLeg) Flights() []*flight.ScheduledFlight {
	return []*flight.ScheduledFlight{l.flight}
}

func (l *SingleLeg) TotalDistance() int {
	return l.distance(l.flight.Departure(), l.flight.Arrival())
}

// AddPassenger books the passenger onto the flight. Capacity is the caller's
// concern; the roster itself accepts the booking.
func (l *SingleLeg) AddPassenger(p passenger.Passenger) error {
	l.flight.AddPassengers([]passenger.Passenger{p})
	return nil
}

// RemovePassenger removes the passenger from the flight.
func (l *SingleLeg) RemovePassenger(p passenger.Passenger) error {
	l.flight.RemovePassengers([]passenger.Passenger{p})
	return nil
}

func (l *SingleLeg) Passengers() []passenger.Passenger {
	return l.flight.Passengers()
}

func (l *SingleLeg) AvailableCapacity() (int, error) {
	return l.flight.AvailableCapacity()
}
