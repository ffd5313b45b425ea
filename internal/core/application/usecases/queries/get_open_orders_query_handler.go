package queries

import (
	"context"

	"reservation/internal/core/domain/model/order"
	"reservation/internal/core/ports"

	"github.com/samber/lo"
)

// GetOpenOrdersQueryHandler reads the orders still awaiting a successful
// charge.
type GetOpenOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOpenOrdersQueryHandler creates a handler for open order queries.
func NewGetOpenOrdersQueryHandler(orders ports.OrderRepository) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{orders: orders}
}

// Handle returns every open order, oldest first.
func (h *GetOpenOrdersQueryHandler) Handle(ctx context.Context, q GetOpenOrdersQuery) ([]GetOpenOrdersQueryResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	open, err := h.orders.GetAllOpen(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(open, func(o *order.Order, _ int) GetOpenOrdersQueryResponse {
		return GetOpenOrdersQueryResponse{
			ID:           o.ID(),
			Reference:    o.Reference(),
			CustomerName: o.CustomerName(),
			Price:        o.Price(),
		}
	}), nil
}
