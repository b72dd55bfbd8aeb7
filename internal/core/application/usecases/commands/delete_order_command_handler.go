package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
)

// DeleteOrderCommandHandler soft-deletes orders: the row stays in storage
// with a deletion timestamp and disappears from every read.
//
// Example:
//
//	cmd, _ := NewDeleteOrderCommand(orderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err // errs.ObjectNotFoundError for a missing or already deleted order
//	}
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		now:        kernel.Now,
	}
}

// Handle locks the order and marks it deleted.
// A second call for the same id fails with errs.ObjectNotFoundError.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderRepo.SoftDelete(ctx, o.ID(), h.now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
