package flight

import (
	"fmt"
	"slices"
	"time"

	"reservation/internal/core/domain/model/aircraft"
	"reservation/internal/core/domain/model/airport"
	"reservation/internal/core/domain/model/passenger"
	"reservation/internal/pkg/errs"
)

// Observer receives change notifications from a ScheduledFlight.
// Implementations must not fail: Update is a one-way broadcast.
type Observer interface {
	Update(f *ScheduledFlight, message string)
}

// ScheduledFlight is one concrete instance of a route: a Flight with a
// departure time, a current price, a passenger roster and the list of
// registered observers.
//
// ScheduledFlight is the notification subject of the model. Every
// state-changing operation (price change, reschedule, roster change,
// cancellation) broadcasts a human-readable message describing the old and
// new value to all registered observers, synchronously and in registration
// order. Delivery iterates a snapshot of the observer list taken when the
// notification starts, so an observer registered during delivery does not
// receive the in-flight message and reentrant removal cannot skip anyone.
//
// The model assumes a single logical actor mutates a given flight at a time;
// it performs no locking of its own.
type ScheduledFlight struct {
	Flight

	departureTime time.Time
	price         float64
	passengers    []passenger.Passenger
	observers     []Observer
	cancelled     bool
}

// NewScheduledFlight creates a scheduled instance of a route. Route validity
// (aircraft permitted at both endpoints) is checked exactly as for NewFlight;
// the price must be non-negative and the departure time must be set.
func NewScheduledFlight(
	number int,
	departure, arrival airport.Airport,
	craft aircraft.Aircraft,
	departureTime time.Time,
	price float64,
) (*ScheduledFlight, error) {
	base, err := NewFlight(number, departure, arrival, craft)
	if err != nil {
		return nil, err
	}
	if departureTime.IsZero() {
		return nil, errs.NewValueIsRequiredError("departure time")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%g is negative", price))
	}

	return &ScheduledFlight{
		Flight:        *base,
		departureTime: departureTime,
		price:         price,
	}, nil
}

// RegisterObserver adds an observer to the notification list. Registration is
// idempotent: registering an already registered observer keeps a single entry,
// so each event is delivered to it exactly once.
func (sf *ScheduledFlight) RegisterObserver(o Observer) {
	if o == nil {
		return
	}
	if slices.Contains(sf.observers, o) {
		return
	}
	sf.observers = append(sf.observers, o)
}

// RemoveObserver removes an observer from the notification list. Removing an
// observer that is not registered is a no-op. This is the only teardown path
// for the flight-to-observer relation; a forgotten removal retains the
// observer reference for the lifetime of the flight.
func (sf *ScheduledFlight) RemoveObserver(o Observer) {
	sf.observers = slices.DeleteFunc(sf.observers, func(registered Observer) bool {
		return registered == o
	})
}

// notifyObservers delivers message to every observer registered at the moment
// the call starts, in registration order, before returning.
func (sf *ScheduledFlight) notifyObservers(message string) {
	snapshot := slices.Clone(sf.observers)
	for _, o := range snapshot {
		o.Update(sf, message)
	}
}

// Observers returns how many observers are currently registered.
func (sf *ScheduledFlight) Observers() int {
	return len(sf.observers)
}

// DepartureTime returns the scheduled departure time.
func (sf *ScheduledFlight) DepartureTime() time.Time {
	return sf.departureTime
}

// Price returns the current seat price.
func (sf *ScheduledFlight) Price() float64 {
	return sf.price
}

// IsCancelled reports whether the flight has been cancelled.
func (sf *ScheduledFlight) IsCancelled() bool {
	return sf.cancelled
}

// Passengers returns a copy of the current roster.
func (sf *ScheduledFlight) Passengers() []passenger.Passenger {
	return slices.Clone(sf.passengers)
}

// SetPrice changes the current price and notifies observers with the old and
// new value.
func (sf *ScheduledFlight) SetPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%g is negative", price))
	}

	oldPrice := sf.price
	sf.price = price
	sf.notifyObservers(fmt.Sprintf("Flight %d price changed from %g to %g",
		sf.number, oldPrice, price))
	return nil
}

// Reschedule moves the departure time and notifies observers with the old and
// new value.
func (sf *ScheduledFlight) Reschedule(departureTime time.Time) error {
	if departureTime.IsZero() {
		return errs.NewValueIsRequiredError("departure time")
	}

	oldTime := sf.departureTime
	sf.departureTime = departureTime
	sf.notifyObservers(fmt.Sprintf("Flight %d departure time changed from %s to %s",
		sf.number, oldTime.Format(time.RFC3339), departureTime.Format(time.RFC3339)))
	return nil
}

// AddPassengers appends the given passengers to the roster and notifies
// observers. The caller is responsible for checking available capacity first;
// the roster itself does not reject overbooking.
func (sf *ScheduledFlight) AddPassengers(newPassengers []passenger.Passenger) {
	if len(newPassengers) == 0 {
		return
	}
	sf.passengers = append(sf.passengers, newPassengers...)
	sf.notifyObservers(fmt.Sprintf("New passengers added to flight %d", sf.number))
}

// RemovePassengers removes the given passengers from the roster (first match
// per passenger) and notifies observers. Unknown passengers are ignored.
func (sf *ScheduledFlight) RemovePassengers(removed []passenger.Passenger) {
	if len(removed) == 0 {
		return
	}
	for _, p := range removed {
		idx := slices.IndexFunc(sf.passengers, p.IsEqual)
		if idx >= 0 {
			sf.passengers = slices.Delete(sf.passengers, idx, idx+1)
		}
	}
	sf.notifyObservers(fmt.Sprintf("Passengers removed from flight %d", sf.number))
}

// Cancel marks the flight cancelled and notifies observers. Cancelling an
// already cancelled flight notifies again; the flag stays set.
func (sf *ScheduledFlight) Cancel() {
	sf.cancelled = true
	sf.notifyObservers(fmt.Sprintf("Flight %d has been cancelled", sf.number))
}

// Capacity returns the aircraft's passenger capacity.
// Signals aircraft.ErrCapacityUnknown when the aircraft cannot report it.
func (sf *ScheduledFlight) Capacity() (int, error) {
	return sf.craft.PassengerCapacity()
}

// CrewCapacity returns the aircraft's crew capacity.
func (sf *ScheduledFlight) CrewCapacity() (int, error) {
	return sf.craft.CrewCapacity()
}

// AvailableCapacity returns the passenger capacity minus the current roster
// size. Signals aircraft.ErrCapacityUnknown when the aircraft cannot report
// its capacity; aggregating callers treat that as zero when computing minima.
func (sf *ScheduledFlight) AvailableCapacity() (int, error) {
	capacity, err := sf.Capacity()
	if err != nil {
		return 0, err
	}
	return capacity - len(sf.passengers), nil
}
