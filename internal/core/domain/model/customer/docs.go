// Package customer contains the Customer aggregate.
//
// A Customer is both the factory for orders and a flight observer. CreateOrder
// validates the booking (no-fly registry, seat availability) before touching
// any flight roster, then seats the passengers, subscribes the customer to
// every flight of the itinerary and returns an open Order ready for payment.
// Schedule changes on subscribed flights land in the customer's notification
// feed via Update.
package customer
