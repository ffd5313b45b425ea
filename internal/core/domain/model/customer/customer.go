package customer

import (
	"errors"
	"fmt"

	"reservation/internal/core/domain/model/aircraft"
	"reservation/internal/core/domain/model/flight"
	"reservation/internal/core/domain/model/itinerary"
	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/domain/model/noflylist"
	"reservation/internal/core/domain/model/order"
	"reservation/internal/core/domain/model/passenger"
	"reservation/internal/pkg/errs"
	"reservation/internal/pkg/guard"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not
	// created through the NewCustomer constructor.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	// ErrInvalidOrder is the unwrap target of every booking-precondition
	// failure reported by CreateOrder. When CreateOrder returns an error
	// wrapping it, no flight roster and no subscription has been touched.
	ErrInvalidOrder = errors.New("order cannot be created")
)

// Customer is an aggregate root representing a person who books itineraries.
//
// Besides creating orders, a customer observes the flights it has booked:
// price changes, reschedules and cancellations arrive through Update and
// accumulate in the notification feed in delivery order.
type Customer struct {
	id    kernel.UUID
	name  string
	email string

	noFly *noflylist.Registry

	orders        []*order.Order
	notifications []string

	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer.
//
// Parameters:
//   - id: unique identity (must be a constructed UUID)
//   - name: full name, checked against the no-fly registry on booking (must
//     not be empty)
//   - email: contact address (must not be empty)
//   - noFly: the no-fly registry bookings are validated against (must not be
//     nil)
func NewCustomer(id kernel.UUID, name, email string, noFly *noflylist.Registry) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if noFly == nil {
		return nil, errs.NewValueIsRequiredError("no-fly registry")
	}

	return &Customer{
		id:    id,
		name:  name,
		email: email,
		noFly: noFly,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Customer instance was properly constructed through
// NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer identity.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's full name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's contact address.
func (c *Customer) Email() string {
	return c.email
}

// Orders returns every order this customer has created, oldest first.
func (c *Customer) Orders() []*order.Order {
	return c.orders
}

// Notifications returns the flight notifications received so far, oldest
// first.
func (c *Customer) Notifications() []string {
	return c.notifications
}

// Update records a notification about a flight the customer is subscribed to.
// It never fails and never blocks the notifying flight.
func (c *Customer) Update(f *flight.ScheduledFlight, message string) {
	c.notifications = append(c.notifications,
		fmt.Sprintf("Notification for flight %d from %s to %s: %s",
			f.Number(), f.Departure(), f.Arrival(), message))
}

// CreateOrder books the given flights for the named passengers and returns an
// open order priced at price.
//
// Every precondition is checked before any flight is touched: the customer
// and each passenger must be absent from the no-fly registry, and every
// flight must have a seat left for each passenger. A flight with unknown
// capacity is treated as full. On the first failed check CreateOrder returns
// an error wrapping ErrInvalidOrder and no roster or subscription changes.
//
// On success the passengers are seated on every flight, the customer is
// subscribed to every flight's notifications, and the order is recorded on
// the customer. The order still needs a payment method before processing.
func (c *Customer) CreateOrder(passengerNames []string, flights []*flight.ScheduledFlight, price float64) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(passengerNames) == 0 {
		return nil, fmt.Errorf("%w: no passengers given", ErrInvalidOrder)
	}
	if len(flights) == 0 {
		return nil, fmt.Errorf("%w: no flights given", ErrInvalidOrder)
	}

	if c.noFly.Contains(c.name) {
		return nil, fmt.Errorf("%w: customer %q is on the no-fly list", ErrInvalidOrder, c.name)
	}
	passengers := make([]passenger.Passenger, 0, len(passengerNames))
	for _, name := range passengerNames {
		if c.noFly.Contains(name) {
			return nil, fmt.Errorf("%w: passenger %q is on the no-fly list", ErrInvalidOrder, name)
		}
		p, err := passenger.New(name)
		if err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}

	for _, f := range flights {
		available, err := f.AvailableCapacity()
		if err != nil {
			if !errors.Is(err, aircraft.ErrCapacityUnknown) {
				return nil, err
			}
			available = 0
		}
		if available < len(passengers) {
			return nil, fmt.Errorf("%w: flight %d has %d seats left, %d requested",
				ErrInvalidOrder, f.Number(), available, len(passengers))
		}
	}

	itin, err := c.buildItinerary(flights)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}

	o, err := order.NewOrder(kernel.NewUUID(), itin, price, c.noFly)
	if err != nil {
		return nil, err
	}
	if err := o.SetCustomer(c.name); err != nil {
		return nil, err
	}
	if err := o.SetPassengers(passengers); err != nil {
		return nil, err
	}

	// All checks passed, mutate the flights.
	for _, f := range flights {
		f.AddPassengers(passengers)
		f.RegisterObserver(c)
	}

	c.orders = append(c.orders, o)
	return o, nil
}

func (c *Customer) buildItinerary(flights []*flight.ScheduledFlight) (itinerary.Itinerary, error) {
	if len(flights) == 1 {
		return itinerary.NewSingleLeg(flights[0])
	}
	return itinerary.FromFlights(flights)
}
