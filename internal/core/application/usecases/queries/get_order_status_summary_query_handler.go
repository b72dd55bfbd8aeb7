package queries

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// GetOrderStatusSummaryQueryHandler aggregates order counts per status.
// Used by the periodic status report job.
type GetOrderStatusSummaryQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetOrderStatusSummaryQueryHandler(repo ports.OrderRepository) GetOrderStatusSummaryQueryHandler {
	return GetOrderStatusSummaryQueryHandler{repo: repo}
}

func (h GetOrderStatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusSummaryQuery,
) (GetOrderStatusSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusSummaryQueryResponse{}, err
	}

	counts, err := h.repo.CountByStatus(ctx)
	if err != nil {
		return GetOrderStatusSummaryQueryResponse{}, err
	}

	resp := GetOrderStatusSummaryQueryResponse{
		Statuses: make([]StatusCount, 0, len(order.AllStatuses())),
	}
	for _, s := range order.AllStatuses() {
		resp.Statuses = append(resp.Statuses, StatusCount{Status: s, Count: counts[s]})
		resp.Total += counts[s]
	}
	return resp, nil
}
