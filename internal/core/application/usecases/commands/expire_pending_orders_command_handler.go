package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// ExpirePendingOrdersCommandHandler cancels stale Pending orders through
// the same state machine and compare-and-swap write the interactive status
// update uses, so the expiry job can never overwrite a concurrent payment.
//
// Each cancellation runs in its own transaction. An order paid mid-sweep
// surfaces as a CAS miss on that order alone and is skipped; the rest of
// the sweep still makes progress.
type ExpirePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewExpirePendingOrdersCommandHandler creates a handler for the expiry sweep.
func NewExpirePendingOrdersCommandHandler(uowFactory OrderUoWFactory, clock Clock) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle cancels every Pending order created before now minus the
// command's max age. Returns the number of orders cancelled.
func (h *ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := h.clock().UTC().Add(-cmd.MaxAge())

	stale, err := h.findStale(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, aggregate := range stale {
		if err = h.cancel(ctx, aggregate); err != nil {
			if errs.KindOf(err) == errs.ConcurrencyConflict {
				continue
			}
			return cancelled, err
		}
		cancelled++
	}

	return cancelled, nil
}

func (h *ExpirePendingOrdersCommandHandler) findStale(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetPendingBefore(ctx, cutoff)
}

func (h *ExpirePendingOrdersCommandHandler) cancel(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := aggregate.ChangeStatus(order.Cancelled); err != nil {
		return err
	}

	if err := uow.OrderRepository().UpdateStatus(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
