package queries

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// GetAllOrdersQueryHandler lists every non-deleted order with its user.
type GetAllOrdersQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetAllOrdersQueryHandler(repo ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{repo: repo}
}

func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	return orders, nil
}
