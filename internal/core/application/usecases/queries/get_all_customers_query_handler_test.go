package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/customerrepo"
	"orders/internal/adapters/out/postgres/productrepo"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CatalogQueryHandlersTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	customersList   queries.GetAllCustomersQueryHandler
	customerGet     queries.GetCustomerQueryHandler
	productsList    queries.GetAllProductsQueryHandler
	productGet      queries.GetProductQueryHandler
	customerRepo    *customerrepo.GormCustomerRepository
	productRepo     *productrepo.GormProductRepository
	seededCustomers []*customer.Customer
	seededProducts  []*product.Product
}

func (suite *CatalogQueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&customerrepo.CustomerDTO{}, &productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.customersList = queries.NewGetAllCustomersQueryHandler(db)
	suite.customerGet = queries.NewGetCustomerQueryHandler(db)
	suite.productsList = queries.NewGetAllProductsQueryHandler(db)
	suite.productGet = queries.NewGetProductQueryHandler(db)
	suite.customerRepo = customerrepo.NewGormCustomerRepository(db, &mockAggregateTracker{})
	suite.productRepo = productrepo.NewGormProductRepository(db, &mockAggregateTracker{})
}

func (suite *CatalogQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *CatalogQueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products, customers CASCADE").Error
	suite.Require().NoError(err)

	ctx := context.Background()
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	suite.seededCustomers = nil
	names := []string{"Carol Davis", "Alice Johnson", "Bob Smith"}
	for i, name := range names {
		aggregate, err := customer.NewCustomer(name, fmt.Sprintf("user%d@example.com", i+1), createdAt)
		suite.Require().NoError(err)
		persisted, err := suite.customerRepo.Add(ctx, aggregate)
		suite.Require().NoError(err)
		suite.seededCustomers = append(suite.seededCustomers, persisted)
	}

	suite.seededProducts = nil
	catalog := []struct {
		sku    string
		name   string
		price  string
		active bool
	}{
		{"LAPTOP-001", "Laptop", "999.00", true},
		{"MOUSE-001", "Mouse", "29.90", true},
		{"DOCK-USB4", "USB4 Dock", "199.00", false},
	}
	for _, item := range catalog {
		aggregate, err := product.NewProduct(item.sku, item.name, decimal.RequireFromString(item.price), item.active)
		suite.Require().NoError(err)
		persisted, err := suite.productRepo.Add(ctx, aggregate)
		suite.Require().NoError(err)
		suite.seededProducts = append(suite.seededProducts, persisted)
	}
}

func (suite *CatalogQueryHandlersTestSuite) TestGetAllCustomers_ReturnsPage() {
	query := queries.NewGetAllCustomersQuery(1, 10, "")

	result, err := suite.customersList.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(3, result.TotalCount)
	suite.Len(result.Items, 3)
}

func (suite *CatalogQueryHandlersTestSuite) TestGetAllCustomers_SortByName() {
	query := queries.NewGetAllCustomersQuery(1, 10, "name")

	result, err := suite.customersList.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 3)
	suite.Equal("Alice Johnson", result.Items[0].Name)
	suite.Equal("Bob Smith", result.Items[1].Name)
	suite.Equal("Carol Davis", result.Items[2].Name)
}

func (suite *CatalogQueryHandlersTestSuite) TestGetAllCustomers_SortByNameDescending() {
	query := queries.NewGetAllCustomersQuery(1, 10, "name_desc")

	result, err := suite.customersList.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 3)
	suite.Equal("Carol Davis", result.Items[0].Name)
}

func (suite *CatalogQueryHandlersTestSuite) TestGetAllCustomers_SecondPage() {
	query := queries.NewGetAllCustomersQuery(2, 2, "id")

	result, err := suite.customersList.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(3, result.TotalCount)
	suite.Len(result.Items, 1)
	suite.Equal(2, result.TotalPages())
	suite.False(result.HasNextPage())
}

func (suite *CatalogQueryHandlersTestSuite) TestGetAllCustomers_LargePageSizePassesThrough() {
	query := queries.NewGetAllCustomersQuery(1, 500, "")

	result, err := suite.customersList.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(500, result.PageSize)
	suite.Len(result.Items, 3)
	suite.Equal(1, result.TotalPages())
}

func (suite *CatalogQueryHandlersTestSuite) TestGetCustomer_ReturnsCustomer() {
	target := suite.seededCustomers[0]
	query, err := queries.NewGetCustomerQuery(target.ID())
	suite.Require().NoError(err)

	resp, err := suite.customerGet.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(target.ID(), resp.ID)
	suite.Equal(target.Name(), resp.Name)
	suite.Equal(target.Email(), resp.Email)
}

func (suite *CatalogQueryHandlersTestSuite) TestGetCustomer_NotFound() {
	query, err := queries.NewGetCustomerQuery(99999)
	suite.Require().NoError(err)

	_, err = suite.customerGet.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Equal(errs.NotFound, errs.KindOf(err))
	suite.Contains(err.Error(), "Customer with id 99999 not found")
}

func (suite *CatalogQueryHandlersTestSuite) TestGetAllProducts_ReturnsAll() {
	query := queries.NewGetAllProductsQuery(false, 1, 10, "")

	result, err := suite.productsList.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(3, result.TotalCount)
	suite.Len(result.Items, 3)
}

func (suite *CatalogQueryHandlersTestSuite) TestGetAllProducts_ActiveOnly() {
	query := queries.NewGetAllProductsQuery(true, 1, 10, "")

	result, err := suite.productsList.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(2, result.TotalCount)
	for _, item := range result.Items {
		suite.True(item.IsActive)
	}
}

func (suite *CatalogQueryHandlersTestSuite) TestGetAllProducts_SortByPriceDescending() {
	query := queries.NewGetAllProductsQuery(false, 1, 10, "price_desc")

	result, err := suite.productsList.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 3)
	for i := range len(result.Items) - 1 {
		suite.True(result.Items[i].Price.GreaterThanOrEqual(result.Items[i+1].Price),
			"products should be sorted by price descending")
	}
}

func (suite *CatalogQueryHandlersTestSuite) TestGetProduct_ReturnsProduct() {
	target := suite.seededProducts[2]
	query, err := queries.NewGetProductQuery(target.ID())
	suite.Require().NoError(err)

	resp, err := suite.productGet.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(target.ID(), resp.ID)
	suite.Equal("DOCK-USB4", resp.Sku)
	suite.False(resp.IsActive)
}

func (suite *CatalogQueryHandlersTestSuite) TestGetProduct_NotFound() {
	query, err := queries.NewGetProductQuery(99999)
	suite.Require().NoError(err)

	_, err = suite.productGet.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Equal(errs.NotFound, errs.KindOf(err))
	suite.Contains(err.Error(), "Product with id 99999 was not found")
}

func TestCatalogQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogQueryHandlersTestSuite))
}
