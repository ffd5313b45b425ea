// Package queries contains read-only operations over the reservation state.
// Implements the Query side of the CQRS architecture; handlers never mutate
// aggregates.
package queries

import (
	"errors"

	"reservation/internal/pkg/guard"
)

var (
	ErrGetCustomerNotificationsQueryIsNotConstructed = errors.New(
		"GetCustomerNotificationsQuery must be created via NewGetCustomerNotificationsQuery constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// GetCustomerNotificationsQuery retrieves the flight notifications a customer
// has received, oldest first.
type GetCustomerNotificationsQuery struct { //nolint:recvcheck //using for validation
	customerName string

	guard guard.ConstructorGuard
}

// NewGetCustomerNotificationsQuery creates a query for a customer's
// notification feed.
func NewGetCustomerNotificationsQuery(customerName string) (GetCustomerNotificationsQuery, error) {
	q := GetCustomerNotificationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCustomerName(customerName); err != nil {
		return GetCustomerNotificationsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerNotificationsQueryIsNotConstructed)
}

// CustomerName returns the name of the customer whose feed is requested.
func (q GetCustomerNotificationsQuery) CustomerName() string {
	return q.customerName
}

func (q *GetCustomerNotificationsQuery) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	q.customerName = name
	return nil
}
