package commands

import (
	"context"

	"orders/internal/pkg/errs"
)

// UpdateCustomerCommandHandler replaces a customer's name and email,
// keeping the email unique across other customers.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update. Returns true when the change was persisted.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (bool, error) {
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

	customerRepo := uow.CustomerRepository()

	aggregate, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return false, err
	}

	taken, err := customerRepo.EmailTaken(ctx, cmd.Email(), cmd.CustomerID())
	if err != nil {
		return false, err
	}
	if taken {
		return false, errs.Newf(errs.Conflict,
			"Customer with email %s already exists", cmd.Email())
	}

	if err = aggregate.Rename(cmd.Name(), cmd.Email()); err != nil {
		return false, err
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
