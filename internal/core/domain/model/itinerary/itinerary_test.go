package itinerary_test

import (
	"testing"
	"time"

	"reservation/internal/core/domain/model/aircraft"
	"reservation/internal/core/domain/model/airport"
	"reservation/internal/core/domain/model/flight"
	"reservation/internal/core/domain/model/itinerary"
	"reservation/internal/core/domain/model/passenger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)

// unknownCapacityAircraft reports no passenger capacity.
type unknownCapacityAircraft struct{}

func (unknownCapacityAircraft) Model() string { return "X1" }

func (unknownCapacityAircraft) PassengerCapacity() (int, error) {
	return 0, aircraft.ErrCapacityUnknown
}

func (unknownCapacityAircraft) CrewCapacity() (int, error) { return 0, nil }

func testAirport(t *testing.T, code string) airport.Airport {
	t.Helper()
	a, err := airport.NewAirport(code+" Airport", code, code, []string{"H1", "H2", "A380", "X1"})
	require.NoError(t, err)
	return a
}

func testPassenger(t *testing.T, name string) passenger.Passenger {
	t.Helper()
	p, err := passenger.New(name)
	require.NoError(t, err)
	return p
}

// testFlight builds a scheduled flight on the given helicopter model so that
// capacity can be shaped through the roster.
func testFlight(t *testing.T, number int, from, to string, departure time.Time, price float64, model string) *flight.ScheduledFlight {
	t.Helper()
	craft, err := aircraft.NewHelicopter(model)
	require.NoError(t, err)
	sf, err := flight.NewScheduledFlight(number, testAirport(t, from), testAirport(t, to), craft, departure, price)
	require.NoError(t, err)
	return sf
}

func leg(t *testing.T, f *flight.ScheduledFlight) *itinerary.SingleLeg {
	t.Helper()
	l, err := itinerary.NewSingleLeg(f)
	require.NoError(t, err)
	return l
}

func TestSingleLeg(t *testing.T) {
	sf := testFlight(t, 101, "BER", "FRA", baseTime, 100, "H1")
	l := leg(t, sf)

	t.Run("delegates queries to the flight", func(t *testing.T) {
		assert.InDelta(t, 100.0, l.Price(), 0.001)

		dep, ok := l.Departure()
		require.True(t, ok)
		assert.Equal(t, "BER", dep.Code())

		arr, ok := l.Arrival()
		require.True(t, ok)
		assert.Equal(t, "FRA", arr.Code())

		depTime, ok := l.DepartureTime()
		require.True(t, ok)
		assert.Equal(t, baseTime, depTime)

		assert.Empty(t, l.Stops())
		assert.Equal(t, []*flight.ScheduledFlight{sf}, l.Flights())
	})

	t.Run("default distance model is the flat placeholder", func(t *testing.T) {
		assert.Equal(t, 500, l.TotalDistance())
	})

	t.Run("arrival time is departure plus distance at cruise speed", func(t *testing.T) {
		arrTime, ok := l.ArrivalTime()
		require.True(t, ok)
		// 500 km at 800 km/h is 37.5 minutes.
		assert.Equal(t, baseTime.Add(37*time.Minute+30*time.Second), arrTime)
	})

	t.Run("custom distance model is honored", func(t *testing.T) {
		far, err := itinerary.NewSingleLegWithDistance(sf, itinerary.FixedDistance(1600))
		require.NoError(t, err)

		assert.Equal(t, 1600, far.TotalDistance())

		arrTime, ok := far.ArrivalTime()
		require.True(t, ok)
		assert.Equal(t, baseTime.Add(2*time.Hour), arrTime)
	})

	t.Run("should fail without a flight", func(t *testing.T) {
		_, err := itinerary.NewSingleLeg(nil)
		require.Error(t, err)
	})
}

func TestCompositeAddLeg(t *testing.T) {
	t.Run("first leg is always accepted", func(t *testing.T) {
		composite := itinerary.NewComposite()

		err := composite.AddLeg(leg(t, testFlight(t, 101, "BER", "FRA", baseTime, 100, "H1")))

		require.NoError(t, err)
		assert.Equal(t, 1, composite.Legs())
	})

	t.Run("connecting leg is accepted", func(t *testing.T) {
		composite := itinerary.NewComposite()
		require.NoError(t, composite.AddLeg(leg(t, testFlight(t, 101, "BER", "FRA", baseTime, 100, "H1"))))

		err := composite.AddLeg(leg(t, testFlight(t, 102, "FRA", "MUC", baseTime.Add(3*time.Hour), 80, "H1")))

		require.NoError(t, err)
		assert.Equal(t, 2, composite.Legs())
	})

	t.Run("non-connecting airports are rejected", func(t *testing.T) {
		composite := itinerary.NewComposite()
		require.NoError(t, composite.AddLeg(leg(t, testFlight(t, 101, "BER", "FRA", baseTime, 100, "H1"))))

		err := composite.AddLeg(leg(t, testFlight(t, 103, "MUC", "LHR", baseTime.Add(3*time.Hour), 80, "H1")))

		require.ErrorIs(t, err, itinerary.ErrIncompatibleLeg)
		assert.Equal(t, 1, composite.Legs())
	})

	t.Run("time-inverted connection is rejected", func(t *testing.T) {
		composite := itinerary.NewComposite()
		require.NoError(t, composite.AddLeg(leg(t, testFlight(t, 101, "BER", "FRA", baseTime, 100, "H1"))))

		// Departs before the first leg's 10:37:30 estimated arrival.
		err := composite.AddLeg(leg(t, testFlight(t, 102, "FRA", "MUC", baseTime.Add(15*time.Minute), 80, "H1")))

		require.ErrorIs(t, err, itinerary.ErrIncompatibleLeg)
		assert.Equal(t, 1, composite.Legs())
	})

	t.Run("nil leg is rejected", func(t *testing.T) {
		composite := itinerary.NewComposite()

		require.Error(t, composite.AddLeg(nil))
	})

	t.Run("empty composite child is rejected as incompatible", func(t *testing.T) {
		composite := itinerary.NewComposite()
		require.NoError(t, composite.AddLeg(leg(t, testFlight(t, 101, "BER", "FRA", baseTime, 100, "H1"))))

		err := composite.AddLeg(itinerary.NewComposite())

		require.ErrorIs(t, err, itinerary.ErrIncompatibleLeg)
	})
}

func TestCompositeRemoveLeg(t *testing.T) {
	t.Run("removes by identity", func(t *testing.T) {
		composite := itinerary.NewComposite()
		first := leg(t, testFlight(t, 101, "BER", "FRA", baseTime, 100, "H1"))
		require.NoError(t, composite.AddLeg(first))

		composite.RemoveLeg(first)

		assert.Zero(t, composite.Legs())
	})

	t.Run("absent leg is a no-op", func(t *testing.T) {
		composite := itinerary.NewComposite()
		require.NoError(t, composite.AddLeg(leg(t, testFlight(t, 101, "BER", "FRA", baseTime, 100, "H1"))))

		composite.RemoveLeg(leg(t, testFlight(t, 102, "FRA", "MUC", baseTime.Add(3*time.Hour), 80, "H1")))

		assert.Equal(t, 1, composite.Legs())
	})
}

// connectedPair builds a two-leg composite BER -> FRA -> MUC.
func connectedPair(t *testing.T) (*itinerary.Composite, *flight.ScheduledFlight, *flight.ScheduledFlight) {
	t.Helper()
	first := testFlight(t, 101, "BER", "FRA", baseTime, 100, "H1")
	second := testFlight(t, 102, "FRA", "MUC", baseTime.Add(3*time.Hour), 80, "H2")
	composite, err := itinerary.FromFlights([]*flight.ScheduledFlight{first, second})
	require.NoError(t, err)
	return composite, first, second
}

func TestCompositeAggregates(t *testing.T) {
	t.Run("price and distance are sums over children", func(t *testing.T) {
		composite, _, _ := connectedPair(t)

		assert.InDelta(t, 180.0, composite.Price(), 0.001)
		assert.Equal(t, 1000, composite.TotalDistance())
	})

	t.Run("sums hold for nested composites", func(t *testing.T) {
		inner, _, _ := connectedPair(t)
		tail := leg(t, testFlight(t, 103, "MUC", "LHR", baseTime.Add(6*time.Hour), 120, "H1"))
		outer, err := itinerary.Compose([]itinerary.Itinerary{inner, tail})
		require.NoError(t, err)

		assert.InDelta(t, 300.0, outer.Price(), 0.001)
		assert.Equal(t, 1500, outer.TotalDistance())
		assert.Len(t, outer.Flights(), 3)
	})

	t.Run("a price change on a leg is reflected immediately", func(t *testing.T) {
		composite, first, _ := connectedPair(t)

		require.NoError(t, first.SetPrice(150))

		assert.InDelta(t, 230.0, composite.Price(), 0.001)
	})

	t.Run("endpoints and times come from the first and last child", func(t *testing.T) {
		composite, first, second := connectedPair(t)

		dep, ok := composite.Departure()
		require.True(t, ok)
		assert.Equal(t, "BER", dep.Code())

		arr, ok := composite.Arrival()
		require.True(t, ok)
		assert.Equal(t, "MUC", arr.Code())

		depTime, ok := composite.DepartureTime()
		require.True(t, ok)
		assert.Equal(t, first.DepartureTime(), depTime)

		arrTime, ok := composite.ArrivalTime()
		require.True(t, ok)
		assert.Equal(t, second.DepartureTime().Add(37*time.Minute+30*time.Second), arrTime)
	})

	t.Run("stops are every arrival except the last", func(t *testing.T) {
		composite, _, _ := connectedPair(t)

		stops := composite.Stops()

		require.Len(t, stops, 1)
		assert.Equal(t, "FRA", stops[0].Code())
	})

	t.Run("empty composite yields no value, not a crash", func(t *testing.T) {
		composite := itinerary.NewComposite()

		_, ok := composite.Departure()
		assert.False(t, ok)
		_, ok = composite.Arrival()
		assert.False(t, ok)
		_, ok = composite.DepartureTime()
		assert.False(t, ok)
		_, ok = composite.ArrivalTime()
		assert.False(t, ok)
		assert.Empty(t, composite.Stops())
		assert.Zero(t, composite.TotalDistance())
		assert.Zero(t, composite.Price())
	})
}

func TestCompositeAvailableCapacity(t *testing.T) {
	t.Run("is the minimum over children", func(t *testing.T) {
		// Shape availabilities {2, 5, 3} through the rosters.
		first := testFlight(t, 101, "BER", "FRA", baseTime, 100, "H1") // seats 4
		first.AddPassengers([]passenger.Passenger{testPassenger(t, "A"), testPassenger(t, "B")})
		second := testFlight(t, 102, "FRA", "MUC", baseTime.Add(3*time.Hour), 80, "H2") // seats 6
		second.AddPassengers([]passenger.Passenger{testPassenger(t, "C")})
		third := testFlight(t, 103, "MUC", "LHR", baseTime.Add(6*time.Hour), 120, "H1") // seats 4
		third.AddPassengers([]passenger.Passenger{testPassenger(t, "D")})

		composite, err := itinerary.FromFlights([]*flight.ScheduledFlight{first, second, third})
		require.NoError(t, err)

		available, err := composite.AvailableCapacity()

		require.NoError(t, err)
		assert.Equal(t, 2, available)
	})

	t.Run("unknown child capacity counts as zero", func(t *testing.T) {
		first := testFlight(t, 101, "BER", "FRA", baseTime, 100, "H1")
		unknown, err := flight.NewScheduledFlight(104, testAirport(t, "FRA"), testAirport(t, "MUC"),
			unknownCapacityAircraft{}, baseTime.Add(3*time.Hour), 60)
		require.NoError(t, err)

		composite, err := itinerary.FromFlights([]*flight.ScheduledFlight{first, unknown})
		require.NoError(t, err)

		available, err := composite.AvailableCapacity()

		require.NoError(t, err)
		assert.Zero(t, available)
	})

	t.Run("empty composite has zero capacity", func(t *testing.T) {
		available, err := itinerary.NewComposite().AvailableCapacity()

		require.NoError(t, err)
		assert.Zero(t, available)
	})
}

func TestCompositePassengers(t *testing.T) {
	t.Run("add propagates to every child and the own roster", func(t *testing.T) {
		composite, first, second := connectedPair(t)
		p := testPassenger(t, "John")

		require.NoError(t, composite.AddPassenger(p))

		assert.Len(t, composite.Passengers(), 1)
		assert.Len(t, first.Passengers(), 1)
		assert.Len(t, second.Passengers(), 1)
	})

	t.Run("add is all-or-nothing when a leg is full", func(t *testing.T) {
		first := testFlight(t, 101, "BER", "FRA", baseTime, 100, "H1") // seats 4
		second := testFlight(t, 102, "FRA", "MUC", baseTime.Add(3*time.Hour), 80, "H1")
		second.AddPassengers([]passenger.Passenger{
			testPassenger(t, "A"), testPassenger(t, "B"), testPassenger(t, "C"), testPassenger(t, "D"),
		})
		composite, err := itinerary.FromFlights([]*flight.ScheduledFlight{first, second})
		require.NoError(t, err)

		err = composite.AddPassenger(testPassenger(t, "John"))

		require.ErrorIs(t, err, itinerary.ErrInsufficientCapacity)
		assert.Empty(t, composite.Passengers())
		assert.Empty(t, first.Passengers())
		assert.Len(t, second.Passengers(), 4)
	})

	t.Run("remove propagates to every child", func(t *testing.T) {
		composite, first, second := connectedPair(t)
		p := testPassenger(t, "John")
		require.NoError(t, composite.AddPassenger(p))

		require.NoError(t, composite.RemovePassenger(p))

		assert.Empty(t, composite.Passengers())
		assert.Empty(t, first.Passengers())
		assert.Empty(t, second.Passengers())
	})
}
