package commands_test

import (
	"context"
	"testing"
	"time"

	"reservation/internal/adapters/inmemory/customerrepo"
	"reservation/internal/adapters/inmemory/flightrepo"
	"reservation/internal/adapters/inmemory/orderrepo"
	"reservation/internal/core/domain/model/aircraft"
	"reservation/internal/core/domain/model/airport"
	"reservation/internal/core/domain/model/customer"
	"reservation/internal/core/domain/model/flight"
	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/domain/model/noflylist"

	"github.com/stretchr/testify/require"
)

var departure = time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)

// alwaysPaid settles every charge.
type alwaysPaid struct{}

func (alwaysPaid) IsValid() bool             { return true }
func (alwaysPaid) Pay(float64) (bool, error) { return true, nil }

// alwaysDeclined is valid but declines every charge.
type alwaysDeclined struct{}

func (alwaysDeclined) IsValid() bool             { return true }
func (alwaysDeclined) Pay(float64) (bool, error) { return false, nil }

type fixture struct {
	customers *customerrepo.Repository
	flights   *flightrepo.Repository
	orders    *orderrepo.Repository
	noFly     *noflylist.Registry
}

// newFixture seeds flight 101 (a four seat helicopter hop) and customer John.
func newFixture(t *testing.T, barred ...string) fixture {
	t.Helper()
	ctx := context.Background()
	fx := fixture{
		customers: customerrepo.NewRepository(),
		flights:   flightrepo.NewRepository(),
		orders:    orderrepo.NewRepository(),
		noFly:     noflylist.NewRegistry(barred...),
	}

	ber, err := airport.NewAirport("Berlin", "BER", "Berlin", []string{"H1"})
	require.NoError(t, err)
	fra, err := airport.NewAirport("Frankfurt", "FRA", "Frankfurt", []string{"H1"})
	require.NoError(t, err)
	craft, err := aircraft.NewHelicopter("H1")
	require.NoError(t, err)
	f, err := flight.NewScheduledFlight(101, ber, fra, craft, departure, 100)
	require.NoError(t, err)
	require.NoError(t, fx.flights.Add(ctx, f))

	john, err := customer.NewCustomer(kernel.NewUUID(), "John", "john@example.com", fx.noFly)
	require.NoError(t, err)
	require.NoError(t, fx.customers.Add(ctx, john))

	return fx
}
