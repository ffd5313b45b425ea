package itinerary

import (
	"slices"
	"time"

	"reservation/internal/core/domain/model/airport"
	"reservation/internal/core/domain/model/flight"
	"reservation/internal/core/domain/model/passenger"
	"reservation/internal/pkg/errs"

	"github.com/samber/lo"
)

// Composite is an itinerary built from an ordered sequence of child
// itineraries; insertion order is travel order. It keeps its own passenger
// roster, synchronized with every child's roster through AddPassenger and
// RemovePassenger.
//
// Invariant: for every adjacent pair of children, the previous arrival equals
// the next departure and the next departure time is after the previous
// arrival time. AddLeg rejects violations; a rejected leg is never partially
// applied.
//
// All aggregate queries are recomputed from the children on every call, so
// price and capacity changes on an underlying flight show up immediately.
type Composite struct {
	children   []Itinerary
	passengers []passenger.Passenger
}

// NewComposite creates an empty composite itinerary.
func NewComposite() *Composite {
	return &Composite{}
}

// Legs returns how many direct children the composite holds.
func (c *Composite) Legs() int {
	return len(c.children)
}

// AddLeg appends a child itinerary. The first leg is always accepted; every
// later leg must depart from the current last arrival, strictly after the
// current last arrival time, or the append is rejected with
// ErrIncompatibleLeg.
func (c *Composite) AddLeg(child Itinerary) error {
	if child == nil {
		return errs.NewValueIsRequiredError("leg")
	}

	if len(c.children) > 0 {
		last := c.children[len(c.children)-1]

		lastArrival, ok := last.Arrival()
		if !ok {
			return ErrIncompatibleLeg
		}
		childDeparture, ok := child.Departure()
		if !ok {
			return ErrIncompatibleLeg
		}
		lastArrivalTime, ok := last.ArrivalTime()
		if !ok {
			return ErrIncompatibleLeg
		}
		childDepartureTime, ok := child.DepartureTime()
		if !ok {
			return ErrIncompatibleLeg
		}

		if !lastArrival.IsEqual(childDeparture) || !childDepartureTime.After(lastArrivalTime) {
			return ErrIncompatibleLeg
		}
	}

	c.children = append(c.children, child)
	return nil
}

// RemoveLeg removes a child by identity. Removing an absent child is a no-op.
func (c *Composite) RemoveLeg(child Itinerary) {
	idx := slices.IndexFunc(c.children, func(existing Itinerary) bool {
		return existing == child
	})
	if idx >= 0 {
		c.children = slices.Delete(c.children, idx, idx+1)
	}
}

func (c *Composite) Price() float64 {
	return lo.SumBy(c.children, func(child Itinerary) float64 {
		return child.Price()
	})
}

func (c *Composite) Departure() (airport.Airport, bool) {
	if len(c.children) == 0 {
		return airport.Airport{}, false
	}
	return c.children[0].Departure()
}

func (c *Composite) Arrival() (airport.Airport, bool) {
	if len(c.children) == 0 {
		return airport.Airport{}, false
	}
	return c.children[len(c.children)-1].Arrival()
}

func (c *Composite) DepartureTime() (time.Time, bool) {
	if len(c.children) == 0 {
		return time.Time{}, false
	}
	return c.children[0].DepartureTime()
}

func (c *Composite) ArrivalTime() (time.Time, bool) {
	if len(c.children) == 0 {
		return time.Time{}, false
	}
	return c.children[len(c.children)-1].ArrivalTime()
}

// Stops lists the arrival of every child except the last.
func (c *Composite) Stops() []airport.Airport {
	if len(c.children) <= 1 {
		return []airport.Airport{}
	}

	stops := make([]airport.Airport, 0, len(c.children)-1)
	for _, child := range c.children[:len(c.children)-1] {
		if arrival, ok := child.Arrival(); ok {
			stops = append(stops, arrival)
		}
	}
	return stops
}

func (c *Composite) Flights() []*flight.ScheduledFlight {
	return lo.FlatMap(c.children, func(child Itinerary, _ int) []*flight.ScheduledFlight {
		return child.Flights()
	})
}

func (c *Composite) TotalDistance() int {
	return lo.SumBy(c.children, func(child Itinerary) int {
		return child.TotalDistance()
	})
}

// AddPassenger books the passenger onto the composite and every child,
// all-or-nothing: available capacity is validated across every child before
// any roster is touched, so a failure never leaves the passenger on a subset
// of the legs.
func (c *Composite) AddPassenger(p passenger.Passenger) error {
	for _, child := range c.children {
		if childCapacity(child) < 1 {
			return ErrInsufficientCapacity
		}
	}

	c.passengers = append(c.passengers, p)
	for _, child := range c.children {
		if err := child.AddPassenger(p); err != nil {
			return err
		}
	}
	return nil
}

// RemovePassenger removes the passenger from the composite roster and from
// every child. Removing an unknown passenger still propagates, where it is a
// no-op per child.
func (c *Composite) RemovePassenger(p passenger.Passenger) error {
	idx := slices.IndexFunc(c.passengers, p.IsEqual)
	if idx >= 0 {
		c.passengers = slices.Delete(c.passengers, idx, idx+1)
	}

	for _, child := range c.children {
		if err := child.RemovePassenger(p); err != nil {
			return err
		}
	}
	return nil
}

func (c *Composite) Passengers() []passenger.Passenger {
	return slices.Clone(c.passengers)
}

// AvailableCapacity is the minimum available capacity over all children: the
// composite can only carry as many passengers as its tightest leg. A child
// that cannot report capacity counts as zero. An empty composite has
// capacity zero.
func (c *Composite) AvailableCapacity() (int, error) {
	if len(c.children) == 0 {
		return 0, nil
	}

	minimum := childCapacity(c.children[0])
	for _, child := range c.children[1:] {
		if capacity := childCapacity(child); capacity < minimum {
			minimum = capacity
		}
	}
	return minimum, nil
}

// childCapacity reads a child's available capacity, treating an unreportable
// capacity as zero rather than propagating the failure.
func childCapacity(child Itinerary) int {
	capacity, err := child.AvailableCapacity()
	if err != nil {
		return 0
	}
	return capacity
}
