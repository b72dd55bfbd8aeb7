package queries

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var (
	ErrGetOrderStatusSummaryQueryIsNotConstructed = errors.New(
		"GetOrderStatusSummaryQuery must be created via NewGetOrderStatusSummaryQuery constructor",
	)
)

// GetOrderStatusSummaryQuery counts non-deleted orders per status.
//
// Example:
//
//	query := NewGetOrderStatusSummaryQuery()
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, line := range summary.Statuses {
//	    fmt.Printf("%s: %d\n", line.Status, line.Count)
//	}
type GetOrderStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatusSummaryQuery() GetOrderStatusSummaryQuery {
	return GetOrderStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusSummaryQueryIsNotConstructed)
}

// StatusCount is the number of orders currently in Status.
type StatusCount struct {
	Status order.Status
	Count  int64
}

// GetOrderStatusSummaryQueryResponse lists every status, zero counts included,
// in declaration order.
type GetOrderStatusSummaryQueryResponse struct {
	Statuses []StatusCount
	Total    int64
}
