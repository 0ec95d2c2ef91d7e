// Package http adapts the generated API surface onto the application's
// command and query handlers. It owns the HTTP-only concerns: request
// binding, the error-to-status mapping, entity tags on order reads and
// bearer-token checks on destructive endpoints.
package http

import (
	"net/http"

	"orders/internal/core/application/responses"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	CreateCustomer    commands.CreateCustomerCommandHandler
	UpdateCustomer    commands.UpdateCustomerCommandHandler
	DeleteCustomer    commands.DeleteCustomerCommandHandler
	CreateProduct     commands.CreateProductCommandHandler
	UpdateProduct     commands.UpdateProductCommandHandler
	DeleteProduct     commands.DeleteProductCommandHandler
}

// QueryHandlers bundles the read-side handlers the server dispatches to.
type QueryHandlers struct {
	GetOrder        queries.GetOrderQueryHandler
	GetAllOrders    queries.GetAllOrdersQueryHandler
	GetCustomer     queries.GetCustomerQueryHandler
	GetAllCustomers queries.GetAllCustomersQueryHandler
	GetProduct      queries.GetProductQueryHandler
	GetAllProducts  queries.GetAllProductsQueryHandler
}

// Server implements servers.ServerInterface, coordinating between HTTP
// requests and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	tokens   *TokenIssuer
}

// NewServer creates the HTTP server with its command and query handlers
// and the token issuer backing the auth endpoints.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, tokens *TokenIssuer) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		tokens:   tokens,
	}
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req servers.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.New(errs.Validation, "Invalid request body"))
	}

	token, expiresAt, err := s.tokens.Issue(req.Email, req.Password)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid email or password",
		})
	}

	return ctx.JSON(http.StatusOK, servers.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context, params servers.GetCustomersParams) error {
	page, pageSize := pagingParams(params.Page, params.PageSize)
	query := queries.NewGetAllCustomersQuery(
		page,
		pageSize,
		stringOrEmpty(params.Sort),
	)

	result, err := s.queries.GetAllCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]servers.Customer, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, customerToAPI(item))
	}

	return ctx.JSON(http.StatusOK, servers.PagedCustomers{
		Items:           items,
		TotalCount:      result.TotalCount,
		Page:            result.Page,
		PageSize:        result.PageSize,
		TotalPages:      result.TotalPages(),
		HasNextPage:     result.HasNextPage(),
		HasPreviousPage: result.HasPreviousPage(),
	})
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req servers.NewCustomer
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.New(errs.Validation, "Invalid request body"))
	}

	cmd, err := commands.NewCreateCustomerCommand(req.Name, req.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.commands.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, customerToAPI(created))
}

// GetCustomerById handles GET /api/v1/customers/{id}.
func (s *Server) GetCustomerById(ctx echo.Context, id int64) error {
	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.queries.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerToAPI(found))
}

// UpdateCustomer handles PUT /api/v1/customers/{id}.
func (s *Server) UpdateCustomer(ctx echo.Context, id int64) error {
	var req servers.NewCustomer
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.New(errs.Validation, "Invalid request body"))
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, req.Name, req.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err := s.commands.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCustomer handles DELETE /api/v1/customers/{id}. Requires a valid
// bearer token.
func (s *Server) DeleteCustomer(ctx echo.Context, id int64) error {
	if err := s.authorize(ctx); err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err := s.commands.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context, params servers.GetProductsParams) error {
	activeOnly := params.ActiveOnly != nil && *params.ActiveOnly

	page, pageSize := pagingParams(params.Page, params.PageSize)
	query := queries.NewGetAllProductsQuery(
		activeOnly,
		page,
		pageSize,
		stringOrEmpty(params.Sort),
	)

	result, err := s.queries.GetAllProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]servers.Product, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, productToAPI(item))
	}

	return ctx.JSON(http.StatusOK, servers.PagedProducts{
		Items:           items,
		TotalCount:      result.TotalCount,
		Page:            result.Page,
		PageSize:        result.PageSize,
		TotalPages:      result.TotalPages(),
		HasNextPage:     result.HasNextPage(),
		HasPreviousPage: result.HasPreviousPage(),
	})
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req servers.NewProduct
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.New(errs.Validation, "Invalid request body"))
	}

	isActive := req.IsActive == nil || *req.IsActive

	cmd, err := commands.NewCreateProductCommand(req.Sku, req.Name, decimal.NewFromFloat(req.Price), isActive)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.commands.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productToAPI(created))
}

// GetProductById handles GET /api/v1/products/{id}.
func (s *Server) GetProductById(ctx echo.Context, id int64) error {
	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.queries.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productToAPI(found))
}

// UpdateProduct handles PUT /api/v1/products/{id}.
func (s *Server) UpdateProduct(ctx echo.Context, id int64) error {
	var req servers.NewProduct
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.New(errs.Validation, "Invalid request body"))
	}

	isActive := req.IsActive == nil || *req.IsActive

	cmd, err := commands.NewUpdateProductCommand(id, req.Sku, req.Name, decimal.NewFromFloat(req.Price), isActive)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err := s.commands.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/{id}. Requires a valid
// bearer token.
func (s *Server) DeleteProduct(ctx echo.Context, id int64) error {
	if err := s.authorize(ctx); err != nil {
		return err
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err := s.commands.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	filters := queries.OrderFilters{
		Status:   stringOrEmpty(params.Status),
		DateFrom: params.DateFrom,
		DateTo:   params.DateTo,
	}
	if params.CustomerId != nil {
		filters.CustomerID = *params.CustomerId
	}

	page, pageSize := pagingParams(params.Page, params.PageSize)
	query, err := queries.NewGetAllOrdersQuery(
		filters,
		page,
		pageSize,
		stringOrEmpty(params.Sort),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.queries.GetAllOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]servers.Order, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, orderToAPI(item))
	}

	return ctx.JSON(http.StatusOK, servers.PagedOrders{
		Items:           items,
		TotalCount:      result.TotalCount,
		Page:            result.Page,
		PageSize:        result.PageSize,
		TotalPages:      result.TotalPages(),
		HasNextPage:     result.HasNextPage(),
		HasPreviousPage: result.HasPreviousPage(),
	})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req servers.NewOrder
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.New(errs.Validation, "Invalid request body"))
	}

	lines := make([]commands.OrderLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, commands.OrderLineInput{
			ProductID: line.ProductId,
			Quantity:  line.Quantity,
		})
	}

	var discount *decimal.Decimal
	if req.DiscountPercent != nil {
		d := decimal.NewFromFloat(*req.DiscountPercent)
		discount = &d
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerId, lines, discount)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	ctx.Response().Header().Set("ETag", created.ETag)
	return ctx.JSON(http.StatusCreated, orderToAPI(created))
}

// GetOrderById handles GET /api/v1/orders/{id}. The concurrency token is
// exposed both in the body and as an ETag header.
func (s *Server) GetOrderById(ctx echo.Context, id int64) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	ctx.Response().Header().Set("ETag", found.ETag)
	return ctx.JSON(http.StatusOK, orderToAPI(found))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{id}/status. The expected
// concurrency token may arrive as an If-Match header or in the body; the
// header wins when both are present. Without a token the update is
// unconditional.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id int64, params servers.UpdateOrderStatusParams) error {
	var req servers.UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.New(errs.Validation, "Invalid request body"))
	}

	token := req.Etag
	if params.IfMatch != nil {
		token = params.IfMatch
	}

	var expectedVersion *uint64
	if token != nil && *token != "" {
		version, err := order.DecodeToken(*token)
		if err != nil {
			return writeError(ctx, err)
		}
		expectedVersion = &version
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, req.Status, expectedVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err := s.commands.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Status: "Healthy"})
}

// authorize verifies the request's bearer token.
func (s *Server) authorize(ctx echo.Context) error {
	token, ok := bearerToken(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: "Missing bearer token",
		})
	}

	if _, err := s.tokens.Verify(token); err != nil {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired token",
		})
	}

	return nil
}

func customerToAPI(c responses.CustomerResponse) servers.Customer {
	return servers.Customer{
		Id:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

func productToAPI(p responses.ProductResponse) servers.Product {
	return servers.Product{
		Id:       p.ID,
		Sku:      p.Sku,
		Name:     p.Name,
		Price:    p.Price.InexactFloat64(),
		IsActive: p.IsActive,
	}
}

func orderToAPI(o responses.OrderResponse) servers.Order {
	lines := make([]servers.OrderLine, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, servers.OrderLine{
			ProductId: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.InexactFloat64(),
		})
	}

	var discount *float64
	if o.DiscountPercent != nil {
		d := o.DiscountPercent.InexactFloat64()
		discount = &d
	}

	return servers.Order{
		Id:              o.ID,
		CustomerId:      o.CustomerID,
		Status:          o.Status,
		SubTotal:        o.SubTotal.InexactFloat64(),
		Total:           o.Total.InexactFloat64(),
		DiscountPercent: discount,
		CreatedAt:       o.CreatedAt,
		Etag:            o.ETag,
		Lines:           lines,
	}
}

// maxPageSize bounds the page sizes this API hands to the query layer,
// which itself accepts any size.
const maxPageSize = 100

func pagingParams(page, pageSize *int) (int, int) {
	size := intOrZero(pageSize)
	if size > maxPageSize {
		size = maxPageSize
	}
	return intOrZero(page), size
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
