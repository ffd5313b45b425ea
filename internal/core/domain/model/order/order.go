package order

import (
	"errors"
	"fmt"
	"slices"

	"reservation/internal/core/domain/model/itinerary"
	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/domain/model/noflylist"
	"reservation/internal/core/domain/model/passenger"
	"reservation/internal/core/domain/model/payment"
	"reservation/internal/pkg/errs"
	"reservation/internal/pkg/guard"

	"github.com/lithammer/shortuuid/v3"
	"github.com/samber/lo"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderValidation is the unwrap target of every order-precondition
	// failure raised by Process. Validation failures are fatal to the call
	// and are never retried automatically.
	ErrOrderValidation = errors.New("order validation failed")
)

// Order is the finalize-once transaction wrapping an itinerary, its price,
// its passenger list and a payment method.
//
// Order follows these invariants:
//   - Identity is assigned at creation and never changes
//   - The closed flag is monotonic: once closed, an order never reopens
//   - Customer and passenger list are each assigned exactly once, before
//     processing
//   - The payment method is replaceable, because a declined payment is
//     retryable with a corrected or different method
//   - An order with no payment method or no customer never leaves the open
//     state
//
// Processing runs a fixed validate, pay, finalize sequence; see Process.
type Order struct {
	// id is the opaque unique identity of the order
	id kernel.UUID

	// reference is the short human-facing booking reference
	reference string

	// price is the total charged on successful processing
	price float64

	// closed flips to true exactly once, on successful payment
	closed bool

	// customerName is the ordering customer, set once before processing
	customerName string

	// passengers travel on the order, set once before processing
	passengers []passenger.Passenger

	// itin is the booked travel unit
	itin itinerary.Itinerary

	// method executes the charge; nil until assigned
	method payment.Method

	// noFly is the registry every involved name is validated against
	noFly *noflylist.Registry

	// guard ensures the order was created via NewOrder
	guard guard.ConstructorGuard
}

// NewOrder creates an open, unpaid order over the given itinerary.
//
// Parameters:
//   - id: unique identity (must be a constructed UUID)
//   - itin: the booked itinerary (must not be nil)
//   - price: total order price (must be non-negative)
//   - noFly: the no-fly registry processing validates against (must not be nil)
//
// The order starts with no customer, passengers or payment method; those are
// assigned before processing.
func NewOrder(id kernel.UUID, itin itinerary.Itinerary, price float64, noFly *noflylist.Registry) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if itin == nil {
		return nil, errs.NewValueIsRequiredError("itinerary")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%g is negative", price))
	}
	if noFly == nil {
		return nil, errs.NewValueIsRequiredError("no-fly registry")
	}

	return &Order{
		id:        id,
		reference: shortuuid.New(),
		price:     price,
		itin:      itin,
		noFly:     noFly,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identity.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Reference returns the short booking reference shown to customers.
func (o *Order) Reference() string {
	return o.reference
}

// Price returns the order total.
func (o *Order) Price() float64 {
	return o.price
}

// IsClosed reports whether the order has been finalized.
func (o *Order) IsClosed() bool {
	return o.closed
}

// CustomerName returns the ordering customer's name, empty until assigned.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Passengers returns the travellers on the order.
func (o *Order) Passengers() []passenger.Passenger {
	return slices.Clone(o.passengers)
}

// Itinerary returns the booked travel unit.
func (o *Order) Itinerary() itinerary.Itinerary {
	return o.itin
}

// PaymentMethod returns the currently assigned payment method, nil if none.
func (o *Order) PaymentMethod() payment.Method {
	return o.method
}

// SetCustomer assigns the ordering customer. The customer is assigned exactly
// once; reassignment is rejected.
func (o *Order) SetCustomer(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	if o.customerName != "" {
		return errs.NewValueIsInvalidErrorWithCause("customer",
			errors.New("customer is already assigned"))
	}
	o.customerName = name
	return nil
}

// SetPassengers assigns the passenger list. The list is assigned exactly
// once; reassignment is rejected.
func (o *Order) SetPassengers(passengers []passenger.Passenger) error {
	if len(passengers) == 0 {
		return errs.NewValueIsRequiredError("passengers")
	}
	if len(o.passengers) > 0 {
		return errs.NewValueIsInvalidErrorWithCause("passengers",
			errors.New("passengers are already assigned"))
	}
	o.passengers = slices.Clone(passengers)
	return nil
}

// SetPaymentMethod assigns the payment method. Unlike customer and
// passengers the method is replaceable: a declined charge is retried with a
// corrected or different method.
func (o *Order) SetPaymentMethod(method payment.Method) error {
	if method == nil {
		return errs.NewValueIsRequiredError("payment method")
	}
	o.method = method
	return nil
}

// Process drives the order through its fixed lifecycle:
//
//  1. An already closed order returns (true, nil) without re-charging.
//  2. Preconditions are validated; a violation is returned as an error
//     wrapping ErrOrderValidation and the order stays open.
//  3. The payment method is re-checked and charged with the order price.
//     A declined charge returns (false, nil): the order stays open and the
//     caller may retry with a corrected or different method. A charge the
//     instrument cannot cover propagates its error.
//  4. On a settled charge the order is marked closed, irreversibly, and
//     (true, nil) is returned.
func (o *Order) Process() (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	if o.closed {
		return true, nil
	}

	if err := o.validateOrder(); err != nil {
		return false, err
	}

	paid, err := o.processPayment()
	if err != nil || !paid {
		return false, err
	}

	o.finalizeOrder()
	return true, nil
}

// validateOrder checks every processing precondition.
func (o *Order) validateOrder() error {
	if o.method == nil {
		return fmt.Errorf("%w: no payment method assigned", ErrOrderValidation)
	}
	if o.customerName == "" {
		return fmt.Errorf("%w: no customer assigned", ErrOrderValidation)
	}
	if len(o.passengers) == 0 {
		return fmt.Errorf("%w: no passengers assigned", ErrOrderValidation)
	}
	if o.noFly.Contains(o.customerName) {
		return fmt.Errorf("%w: customer %q is on the no-fly list", ErrOrderValidation, o.customerName)
	}
	if barred, found := lo.Find(o.passengers, func(p passenger.Passenger) bool {
		return o.noFly.Contains(p.Name())
	}); found {
		return fmt.Errorf("%w: passenger %q is on the no-fly list", ErrOrderValidation, barred.Name())
	}
	return nil
}

// processPayment re-checks the method and executes the charge.
func (o *Order) processPayment() (bool, error) {
	if !o.method.IsValid() {
		return false, payment.ErrMethodNotValid
	}
	return o.method.Pay(o.price)
}

// finalizeOrder closes the order. No operation reopens it.
func (o *Order) finalizeOrder() {
	o.closed = true
}
