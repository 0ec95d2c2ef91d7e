package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler enforces the order status state machine
// under optimistic concurrency control.
//
// Check sequence, in order: the order must exist (NotFound); a supplied
// concurrency token must match the stored version (ConcurrencyConflict,
// the caller must re-fetch and retry); the current status must be Pending
// (BusinessRule, terminal states are immutable); the target must be Paid
// or Cancelled (Validation). The persisting write is itself a
// compare-and-swap on the row version, so a racing writer between read
// and write also surfaces as ConcurrencyConflict rather than a lost update.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status-update command. Returns true when the new
// status was persisted.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	if v := cmd.ExpectedVersion(); v != nil && *v != aggregate.Version() {
		return false, errs.New(errs.ConcurrencyConflict,
			"The order was modified by another user. Please refresh and try again.")
	}

	// An unrecognized target name maps onto the Unknown status so the
	// state machine still runs its checks in order; its Validation error
	// is then reworded to name the caller's literal input.
	target, parseErr := order.ParseStatus(cmd.Target())

	if err = aggregate.ChangeStatus(target); err != nil {
		if parseErr != nil && errs.KindOf(err) == errs.Validation {
			return false, errs.Newf(errs.Validation,
				"Invalid target status %s. Only Paid or Cancelled allowed", cmd.Target())
		}
		return false, err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
