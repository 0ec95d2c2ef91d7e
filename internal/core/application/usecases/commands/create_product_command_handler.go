package commands

import (
	"context"

	"orders/internal/core/application/responses"
	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"
)

// CreateProductCommandHandler persists a new catalog product after
// checking the SKU for uniqueness, surfacing a duplicate as a Conflict.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the new product and returns its response shape.
func (h *CreateProductCommandHandler) Handle(
	ctx context.Context,
	cmd CreateProductCommand,
) (responses.ProductResponse, error) {
	if err := cmd.Validate(); err != nil {
		return responses.ProductResponse{}, err
	}

	uow := h.uowFactory.Create()

	taken, err := uow.ProductRepository().SkuTaken(ctx, cmd.Sku(), 0)
	if err != nil {
		return responses.ProductResponse{}, err
	}
	if taken {
		return responses.ProductResponse{}, errs.Newf(errs.Conflict,
			"Product with SKU %s already exist.", cmd.Sku())
	}

	aggregate, err := product.NewProduct(cmd.Sku(), cmd.Name(), cmd.Price(), cmd.IsActive())
	if err != nil {
		return responses.ProductResponse{}, err
	}

	if err = uow.Begin(ctx); err != nil {
		return responses.ProductResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	persisted, err := uow.ProductRepository().Add(ctx, aggregate)
	if err != nil {
		return responses.ProductResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return responses.ProductResponse{}, err
	}

	return responses.FromProduct(persisted), nil
}
