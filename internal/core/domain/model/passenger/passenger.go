package passenger

import (
	"reservation/internal/pkg/errs"
)

// Passenger is an immutable value object identifying a traveller by name.
// Passengers are compared by name: the roster of a flight and the roster of
// an itinerary refer to the same traveller through equal Passenger values.
type Passenger struct {
	name string
}

// New creates a Passenger. The name must be non-empty.
func New(name string) (Passenger, error) {
	if name == "" {
		return Passenger{}, errs.NewValueIsRequiredError("name")
	}
	return Passenger{name: name}, nil
}

// Name returns the traveller's name.
func (p Passenger) Name() string {
	return p.name
}

// IsEqual compares two passengers by name.
func (p Passenger) IsEqual(other Passenger) bool {
	return p.name == other.name
}

func (p Passenger) String() string {
	return p.name
}
