package commands

import (
	"context"

	"orders/internal/core/application/responses"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// CreateOrderCommandHandler orchestrates the order-creation workflow:
// customer existence check, product existence and activity checks, and
// the transactional write of the order header, lines, and totals.
//
// Failure semantics: referenced-customer absence is a Validation error
// (a caller input problem, deliberately not NotFound), a missing product
// is NotFound and an inactive product is Validation, both short-circuiting
// before anything is persisted. Any store failure before commit rolls the
// transaction back, so no partial order or lines ever become visible.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence and a Clock
// for the CreatedAt stamp.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order-creation command and returns the response
// shape of the persisted order, including its concurrency token.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (responses.OrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return responses.OrderResponse{}, err
	}

	uow := h.uowFactory.Create()

	exists, err := uow.CustomerRepository().ExistsByID(ctx, cmd.CustomerID())
	if err != nil {
		return responses.OrderResponse{}, err
	}
	if !exists {
		return responses.OrderResponse{}, errs.Newf(errs.Validation,
			"Customer with id %d not found", cmd.CustomerID())
	}

	products, err := uow.ProductRepository().GetByIDs(ctx, distinctProductIDs(cmd.Lines()))
	if err != nil {
		return responses.OrderResponse{}, err
	}

	lines := make([]order.Line, 0, len(cmd.Lines()))
	for _, input := range cmd.Lines() {
		p, ok := products[input.ProductID]
		if !ok {
			return responses.OrderResponse{}, errs.Newf(errs.NotFound,
				"Product with Id %d not found", input.ProductID)
		}
		if !p.IsActive() {
			return responses.OrderResponse{}, errs.Newf(errs.Validation,
				"Product with id %d not active", p.ID())
		}

		// Price is snapshotted here, immune to later product price edits.
		line, lineErr := order.NewLine(input.ProductID, input.Quantity, p.Price())
		if lineErr != nil {
			return responses.OrderResponse{}, lineErr
		}
		lines = append(lines, line)
	}

	aggregate, err := order.NewOrder(cmd.CustomerID(), lines, cmd.DiscountPercent(), h.clock().UTC())
	if err != nil {
		return responses.OrderResponse{}, err
	}

	if err = uow.Begin(ctx); err != nil {
		return responses.OrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	persisted, err := uow.OrderRepository().Add(ctx, aggregate)
	if err != nil {
		return responses.OrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return responses.OrderResponse{}, err
	}

	return responses.FromOrder(persisted), nil
}

// distinctProductIDs returns the set of referenced product ids,
// keeping first-seen order for a deterministic batch query.
func distinctProductIDs(lines []OrderLineInput) []int64 {
	seen := make(map[int64]struct{}, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}
	return ids
}
