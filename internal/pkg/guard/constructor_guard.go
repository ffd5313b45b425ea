package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard is
// validated and no specific error was supplied by the caller.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated constructor.
// Embedding a ConstructorGuard in a struct makes zero-value instances detectable:
// the internal flag is only set when the guard itself was produced by
// NewConstructorGuard, which only constructors should do.
//
// Example usage:
//
//	type Fare struct {
//	    amount float64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewFare(amount float64) (Fare, error) {
//	    if amount < 0 {
//	        return Fare{}, errors.New("amount cannot be negative")
//	    }
//	    return Fare{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (f Fare) Validate() error {
//	    return f.guard.Validate(ErrFareNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value guard it
// returns notConstructedErr, or ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
