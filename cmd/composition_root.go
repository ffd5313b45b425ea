package cmd

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"reservation/internal/adapters/inmemory/customerrepo"
	"reservation/internal/adapters/inmemory/flightrepo"
	"reservation/internal/adapters/inmemory/orderrepo"
	"reservation/internal/core/application/usecases/commands"
	"reservation/internal/core/application/usecases/queries"
	"reservation/internal/core/domain/model/aircraft"
	"reservation/internal/core/domain/model/airport"
	"reservation/internal/core/domain/model/customer"
	"reservation/internal/core/domain/model/flight"
	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/domain/model/noflylist"
	"reservation/internal/core/domain/model/payment"
	"reservation/internal/jobs"
)

type CompositionRoot struct {
	config Config

	customers *customerrepo.Repository
	flights   *flightrepo.Repository
	orders    *orderrepo.Repository
	noFly     *noflylist.Registry
	wallets   payment.WalletDirectory
}

func NewCompositionRoot(config Config) CompositionRoot {
	noFly := noflylist.NewRegistry()
	for _, name := range strings.Split(config.NoFlyNames, ",") {
		if name = strings.TrimSpace(name); name != "" {
			noFly.Add(name)
		}
	}

	wallets := payment.WalletDirectory{}
	if config.PayPalEmail != "" {
		wallets[config.PayPalEmail] = config.PayPalPassword
	}

	return CompositionRoot{
		config:    config,
		customers: customerrepo.NewRepository(),
		flights:   flightrepo.NewRepository(),
		orders:    orderrepo.NewRepository(),
		noFly:     noFly,
		wallets:   wallets,
	}
}

func (c *CompositionRoot) NoFlyRegistry() *noflylist.Registry {
	return c.noFly
}

func (c *CompositionRoot) Wallets() payment.WalletDirectory {
	return c.wallets
}

func (c *CompositionRoot) CreateBookItineraryCommandHandler() commands.BookItineraryCommandHandler {
	return commands.NewBookItineraryCommandHandler(c.customers, c.flights, c.orders)
}

func (c *CompositionRoot) CreateChangeFlightPriceCommandHandler() commands.ChangeFlightPriceCommandHandler {
	return commands.NewChangeFlightPriceCommandHandler(c.flights)
}

func (c *CompositionRoot) CreateRescheduleFlightCommandHandler() commands.RescheduleFlightCommandHandler {
	return commands.NewRescheduleFlightCommandHandler(c.flights)
}

func (c *CompositionRoot) CreateCancelFlightCommandHandler() commands.CancelFlightCommandHandler {
	return commands.NewCancelFlightCommandHandler(c.flights)
}

func (c *CompositionRoot) CreateGetCustomerNotificationsQueryHandler() queries.GetCustomerNotificationsQueryHandler {
	return queries.NewGetCustomerNotificationsQueryHandler(c.customers)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateChangeFlightPriceCommandHandler(),
		c.flights,
		c.CreateGetOpenOrdersQueryHandler(),
		c.config.JobSchedule,
		logger,
	)
}

// SeedDemoData fills the in-memory stores with a small airline: three
// airports, a plane, a helicopter and a drone schedule, and two customers.
func (c *CompositionRoot) SeedDemoData(ctx context.Context) error {
	ber, err := airport.NewAirport("Berlin Brandenburg", "BER", "Berlin", []string{"A380", "A350", "H1", "HypaHype"})
	if err != nil {
		return err
	}
	fra, err := airport.NewAirport("Frankfurt am Main", "FRA", "Frankfurt", []string{"A380", "A350", "H1", "H2"})
	if err != nil {
		return err
	}
	muc, err := airport.NewAirport("Munich Franz Josef Strauss", "MUC", "Munich", []string{"A350", "H2", "HypaHype"})
	if err != nil {
		return err
	}

	departure := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	schedule := []struct {
		number int
		from   airport.Airport
		to     airport.Airport
		kind   aircraft.Kind
		model  string
		offset time.Duration
		price  float64
	}{
		{101, ber, fra, aircraft.KindPlane, "A380", 0, 120},
		{102, fra, muc, aircraft.KindPlane, "A350", 3 * time.Hour, 90},
		{790, fra, ber, aircraft.KindHelicopter, "H1", time.Hour, 400},
		{900, ber, muc, aircraft.KindDrone, "HypaHype", 2 * time.Hour, 950},
	}
	for _, s := range schedule {
		craft, err := aircraft.New(s.kind, s.model)
		if err != nil {
			return err
		}
		f, err := flight.NewScheduledFlight(s.number, s.from, s.to, craft, departure.Add(s.offset), s.price)
		if err != nil {
			return err
		}
		if err := c.flights.Add(ctx, f); err != nil {
			return err
		}
	}

	for _, name := range []string{"John", "Jane"} {
		cust, err := customer.NewCustomer(kernel.NewUUID(), name, strings.ToLower(name)+"@example.com", c.noFly)
		if err != nil {
			return err
		}
		if err := c.customers.Add(ctx, cust); err != nil {
			return err
		}
	}

	return nil
}
