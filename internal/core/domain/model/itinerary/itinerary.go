// Package itinerary models bookable travel units. An itinerary is either a
// single leg wrapping one scheduled flight, or a composite aggregating an
// ordered sequence of sub-itineraries whose legs connect in space and time.
package itinerary

import (
	"errors"
	"time"

	"reservation/internal/core/domain/model/airport"
	"reservation/internal/core/domain/model/flight"
	"reservation/internal/core/domain/model/passenger"
)

var (
	// ErrIncompatibleLeg is returned when a leg cannot be appended to a
	// composite because its departure does not match the current last
	// arrival, or because it departs before the previous leg arrives.
	// A rejected leg leaves the composite untouched.
	ErrIncompatibleLeg = errors.New("leg is not compatible: endpoints do not connect or timing is invalid")

	// ErrInsufficientCapacity is returned when a passenger cannot be added
	// because at least one leg has no available seat. An unknown leg
	// capacity counts as no seat.
	ErrInsufficientCapacity = errors.New("itinerary has insufficient available capacity")
)

// Itinerary is the capability contract shared by single legs and composites.
//
// Endpoint and time queries return an explicit ok flag instead of a zero
// value: an empty composite has no departure or arrival. All queries are pure
// recomputation over the current structure, so a mutation of an underlying
// flight is immediately reflected.
type Itinerary interface {
	// Price is the summed price of all legs.
	Price() float64
	// Departure returns the first endpoint, ok=false when the itinerary is empty.
	Departure() (airport.Airport, bool)
	// Arrival returns the last endpoint, ok=false when the itinerary is empty.
	Arrival() (airport.Airport, bool)
	// DepartureTime returns the first leg's departure time, ok=false when empty.
	DepartureTime() (time.Time, bool)
	// ArrivalTime returns the last leg's estimated arrival time, ok=false when empty.
	ArrivalTime() (time.Time, bool)
	// Stops lists the intermediate endpoints: every leg's arrival except the last.
	Stops() []airport.Airport
	// Flights flattens the itinerary into its scheduled flights in travel order.
	Flights() []*flight.ScheduledFlight
	// TotalDistance is the summed leg distance in kilometers.
	TotalDistance() int
	// AddPassenger books the passenger onto every underlying flight.
	AddPassenger(p passenger.Passenger) error
	// RemovePassenger removes the passenger from every underlying flight.
	RemovePassenger(p passenger.Passenger) error
	// Passengers returns the itinerary's own roster.
	Passengers() []passenger.Passenger
	// AvailableCapacity is the minimum available capacity over all legs;
	// a leg with unknown capacity counts as zero.
	AvailableCapacity() (int, error)
}

// FromFlights builds a composite from scheduled flights taken in travel
// order, wrapping each in a single leg. Fails with ErrIncompatibleLeg when
// consecutive flights do not connect.
func FromFlights(flights []*flight.ScheduledFlight) (*Composite, error) {
	composite := NewComposite()
	for _, f := range flights {
		leg, err := NewSingleLeg(f)
		if err != nil {
			return nil, err
		}
		if err := composite.AddLeg(leg); err != nil {
			return nil, err
		}
	}
	return composite, nil
}

// Compose builds a composite from existing itineraries taken in travel order.
// Fails with ErrIncompatibleLeg when consecutive itineraries do not connect.
func Compose(itineraries []Itinerary) (*Composite, error) {
	composite := NewComposite()
	for _, it := range itineraries {
		if err := composite.AddLeg(it); err != nil {
			return nil, err
		}
	}
	return composite, nil
}
