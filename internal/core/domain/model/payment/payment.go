// Package payment provides the interchangeable payment contract used by
// orders, and its built-in variants. Orders never inspect which variant they
// hold; new methods are added by implementing the same two operations.
package payment

import "errors"

var (
	// ErrMethodNotValid is returned when Pay is called on a method whose
	// credentials do not currently validate. Pay never succeeds while
	// IsValid would report false.
	ErrMethodNotValid = errors.New("payment method is not valid")

	// ErrCardLimitExceeded is returned when credentials are valid but the
	// instrument cannot cover the amount. This is distinct from a declined
	// payment: the instrument itself is unusable for this amount.
	ErrCardLimitExceeded = errors.New("card limit reached")
)

// Method validates credentials and executes a charge.
//
// IsValid is pure and must be checked before Pay. Pay returns (true, nil) on
// a completed charge, (false, nil) on a declined but retryable charge, and an
// error when the method is invalid or the instrument cannot cover the amount.
type Method interface {
	IsValid() bool
	Pay(amount float64) (bool, error)
}
