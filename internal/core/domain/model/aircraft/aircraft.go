package aircraft

import (
	"errors"
	"fmt"

	"reservation/internal/pkg/errs"
)

// ErrCapacityUnknown indicates that an aircraft cannot report the requested
// capacity figure. Callers that aggregate capacity across several flights
// treat an unknown capacity as zero instead of propagating the failure
// through the arithmetic.
var ErrCapacityUnknown = errors.New("aircraft capacity is unknown")

// Aircraft is the capability contract every fleet variant satisfies.
// Capacities are reported per query and either capacity may be unreportable
// for a given variant, in which case the query returns ErrCapacityUnknown.
type Aircraft interface {
	// Model returns the model designation, e.g. "A380" or "H1".
	Model() string
	// PassengerCapacity returns the number of passenger seats.
	PassengerCapacity() (int, error)
	// CrewCapacity returns the number of crew positions.
	CrewCapacity() (int, error)
}

// PassengerPlane is a fixed-wing passenger aircraft. Known models and their
// seat/crew numbers are the catalogued fleet data.
type PassengerPlane struct {
	model             string
	passengerCapacity int
	crewCapacity      int
}

// planeModels is the catalogue of recognized passenger plane models.
var planeModels = map[string]struct{ passengers, crew int }{
	"A380":        {passengers: 500, crew: 42},
	"A350":        {passengers: 320, crew: 40},
	"Embraer 190": {passengers: 25, crew: 5},
}

// NewPassengerPlane creates a passenger plane of a catalogued model.
// Returns an error for unrecognized models.
func NewPassengerPlane(model string) (*PassengerPlane, error) {
	data, ok := planeModels[model]
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("model",
			fmt.Errorf("model type '%s' is not recognized", model))
	}

	return &PassengerPlane{
		model:             model,
		passengerCapacity: data.passengers,
		crewCapacity:      data.crew,
	}, nil
}

func (p *PassengerPlane) Model() string {
	return p.model
}

func (p *PassengerPlane) PassengerCapacity() (int, error) {
	return p.passengerCapacity, nil
}

func (p *PassengerPlane) CrewCapacity() (int, error) {
	return p.crewCapacity, nil
}

// Helicopter is a rotary-wing variant. All helicopters fly with a crew of two.
type Helicopter struct {
	model             string
	passengerCapacity int
}

// NewHelicopter creates a helicopter of a recognized model ("H1" or "H2").
func NewHelicopter(model string) (*Helicopter, error) {
	var passengers int
	switch model {
	case "H1":
		passengers = 4
	case "H2":
		passengers = 6
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("model",
			fmt.Errorf("model type '%s' is not recognized", model))
	}

	return &Helicopter{model: model, passengerCapacity: passengers}, nil
}

func (h *Helicopter) Model() string {
	return h.model
}

func (h *Helicopter) PassengerCapacity() (int, error) {
	return h.passengerCapacity, nil
}

// CrewCapacity is fixed for all helicopter models.
func (h *Helicopter) CrewCapacity() (int, error) {
	return 2, nil
}

// PassengerDrone is an autonomous variant. The only certified model is
// "HypaHype". Drones carry no crew, and the manufacturer publishes no seat
// figure for them, so the passenger capacity is unreportable.
type PassengerDrone struct {
	model string
}

// NewPassengerDrone creates a passenger drone of the certified model.
func NewPassengerDrone(model string) (*PassengerDrone, error) {
	if model != "HypaHype" {
		return nil, errs.NewValueIsInvalidErrorWithCause("model",
			fmt.Errorf("model type '%s' is not recognized", model))
	}
	return &PassengerDrone{model: model}, nil
}

func (d *PassengerDrone) Model() string {
	return d.model
}

// PassengerCapacity signals ErrCapacityUnknown: no seat figure is published
// for the drone. Aggregating callers count it as zero.
func (d *PassengerDrone) PassengerCapacity() (int, error) {
	return 0, ErrCapacityUnknown
}

// CrewCapacity is zero: drones are autonomous.
func (d *PassengerDrone) CrewCapacity() (int, error) {
	return 0, nil
}
