package commands

import (
	"context"

	"orders/internal/core/application/responses"
	"orders/internal/core/domain/model/customer"
	"orders/internal/pkg/errs"
)

// CreateCustomerCommandHandler registers new customers, enforcing email
// uniqueness as a Conflict error.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	clock      Clock
}

// NewCreateCustomerCommandHandler creates a handler for customer creation.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory, clock Clock) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle persists the new customer and returns its response shape.
func (h *CreateCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCustomerCommand,
) (responses.CustomerResponse, error) {
	if err := cmd.Validate(); err != nil {
		return responses.CustomerResponse{}, err
	}

	uow := h.uowFactory.Create()

	taken, err := uow.CustomerRepository().EmailTaken(ctx, cmd.Email(), 0)
	if err != nil {
		return responses.CustomerResponse{}, err
	}
	if taken {
		return responses.CustomerResponse{}, errs.Newf(errs.Conflict,
			"Email %s already exists", cmd.Email())
	}

	aggregate, err := customer.NewCustomer(cmd.Name(), cmd.Email(), h.clock().UTC())
	if err != nil {
		return responses.CustomerResponse{}, err
	}

	if err = uow.Begin(ctx); err != nil {
		return responses.CustomerResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	persisted, err := uow.CustomerRepository().Add(ctx, aggregate)
	if err != nil {
		return responses.CustomerResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return responses.CustomerResponse{}, err
	}

	return responses.FromCustomer(persisted), nil
}
