package aircraft

import (
	"fmt"

	"reservation/internal/pkg/errs"
)

// Kind selects an aircraft variant in the name-keyed factory.
type Kind string

const (
	KindPlane      Kind = "plane"
	KindHelicopter Kind = "helicopter"
	KindDrone      Kind = "drone"
)

// New is the name-keyed factory over the fleet variants. The kind selects the
// variant and the model is validated against that variant's catalogue.
//
// Example:
//
//	craft, err := aircraft.New(aircraft.KindPlane, "A380")
//	if err != nil {
//	    // unknown kind or model
//	}
func New(kind Kind, model string) (Aircraft, error) {
	switch kind {
	case KindPlane:
		return NewPassengerPlane(model)
	case KindHelicopter:
		return NewHelicopter(model)
	case KindDrone:
		return NewPassengerDrone(model)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("unknown aircraft kind: %s", kind))
	}
}
