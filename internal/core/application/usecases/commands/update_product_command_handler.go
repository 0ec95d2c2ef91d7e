package commands

import (
	"context"

	"orders/internal/pkg/errs"
)

// UpdateProductCommandHandler replaces an existing product's attributes,
// keeping the SKU unique across other products. Order lines keep their
// snapshotted unit price regardless of price edits here.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update. Returns true when the change was persisted.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (bool, error) {
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

	productRepo := uow.ProductRepository()

	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return false, err
	}

	if cmd.Sku() != aggregate.Sku() {
		taken, takenErr := productRepo.SkuTaken(ctx, cmd.Sku(), cmd.ProductID())
		if takenErr != nil {
			return false, takenErr
		}
		if taken {
			return false, errs.Newf(errs.Conflict,
				"Product with SKU %s already exist.", cmd.Sku())
		}
	}

	if err = aggregate.Update(cmd.Sku(), cmd.Name(), cmd.Price(), cmd.IsActive()); err != nil {
		return false, err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
