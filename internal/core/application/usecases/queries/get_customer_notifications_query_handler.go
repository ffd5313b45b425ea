package queries

import (
	"context"

	"reservation/internal/core/ports"
)

// GetCustomerNotificationsQueryHandler reads a customer's notification feed.
type GetCustomerNotificationsQueryHandler struct {
	customers ports.CustomerRepository
}

// NewGetCustomerNotificationsQueryHandler creates a handler for notification
// feed queries.
func NewGetCustomerNotificationsQueryHandler(customers ports.CustomerRepository) GetCustomerNotificationsQueryHandler {
	return GetCustomerNotificationsQueryHandler{customers: customers}
}

// Handle returns the customer's notifications, oldest first.
func (h *GetCustomerNotificationsQueryHandler) Handle(ctx context.Context, q GetCustomerNotificationsQuery) ([]string, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	c, err := h.customers.GetByName(ctx, q.CustomerName())
	if err != nil {
		return nil, err
	}

	return c.Notifications(), nil
}
