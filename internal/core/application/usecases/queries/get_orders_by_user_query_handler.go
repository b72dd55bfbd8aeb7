package queries

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// GetOrdersByUserQueryHandler lists a user's non-deleted orders.
// The user is not required to exist: an unknown id yields an empty slice.
type GetOrdersByUserQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetOrdersByUserQueryHandler(repo ports.OrderRepository) GetOrdersByUserQueryHandler {
	return GetOrdersByUserQueryHandler{repo: repo}
}

func (h GetOrdersByUserQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByUserQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.GetAllByUser(ctx, query.UserID())
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	return orders, nil
}
