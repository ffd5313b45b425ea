// Package order implements the finalize-once order lifecycle of the
// reservation system.
//
// An order wraps an itinerary, a price, a passenger list and an
// interchangeable payment method. Processing runs a fixed sequence:
// an already closed order is an idempotent no-op; precondition violations
// (missing payment method or customer, empty passenger list, a name on the
// no-fly registry) surface as validation errors; a declined charge is a
// normal, retryable outcome reported as a boolean; a settled charge closes
// the order irreversibly.
//
// The package follows Domain-Driven Design principles: orders are created
// through a validating constructor, keep private state, and enforce their
// invariants in every mutating method.
package order
