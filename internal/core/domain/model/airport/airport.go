package airport

import (
	"errors"
	"slices"

	"reservation/internal/pkg/errs"
	"reservation/internal/pkg/guard"
)

// ErrAirportIsNotConstructed is returned when an Airport instance was not
// created through the NewAirport constructor.
var ErrAirportIsNotConstructed = errors.New("Airport must be created via NewAirport constructor")

// Airport is an immutable value object describing one endpoint of a flight.
// Besides its identifying code it carries the set of aircraft models that are
// permitted to operate there; route validation checks an aircraft against both
// endpoints of a flight.
//
// Airports are compared by code: two airports with the same code are the same
// airport regardless of the other fields.
//
// Example:
//
//	ber, err := airport.NewAirport("Berlin Airport", "BER", "Berlin", []string{"A380", "A350"})
//	if err != nil {
//	    // handle validation error
//	}
//	ber.Allows("A380") // true
type Airport struct {
	name            string
	code            string
	city            string
	allowedAircraft []string

	guard guard.ConstructorGuard
}

// NewAirport creates a validated Airport value object.
// Name and code must be non-empty; the allowed-aircraft list may be empty,
// meaning no aircraft is permitted there.
func NewAirport(name, code, city string, allowedAircraft []string) (Airport, error) {
	if name == "" {
		return Airport{}, errs.NewValueIsRequiredError("name")
	}
	if code == "" {
		return Airport{}, errs.NewValueIsRequiredError("code")
	}

	return Airport{
		name:            name,
		code:            code,
		city:            city,
		allowedAircraft: slices.Clone(allowedAircraft),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Airport was created through NewAirport.
func (a Airport) Validate() error {
	return a.guard.Validate(ErrAirportIsNotConstructed)
}

// Name returns the full airport name.
func (a Airport) Name() string {
	return a.name
}

// Code returns the identifying airport code.
func (a Airport) Code() string {
	return a.code
}

// City returns the city the airport serves.
func (a Airport) City() string {
	return a.city
}

// AllowedAircraft returns the aircraft models permitted at this airport.
func (a Airport) AllowedAircraft() []string {
	return slices.Clone(a.allowedAircraft)
}

// Allows reports whether the given aircraft model is permitted at this airport.
func (a Airport) Allows(model string) bool {
	return slices.Contains(a.allowedAircraft, model)
}

// IsEqual compares two airports by code.
func (a Airport) IsEqual(other Airport) bool {
	return a.code == other.code
}

// String returns the airport code, which is how flights reference endpoints
// in notification messages.
func (a Airport) String() string {
	return a.code
}
