package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	baseTime   time.Time
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))

	suite.baseTime = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_lines, orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(discount *decimal.Decimal, createdAt time.Time) *order.Order {
	line1, err := order.NewLine(1, 2, decimal.RequireFromString("10.00"))
	suite.Require().NoError(err)
	line2, err := order.NewLine(2, 1, decimal.RequireFromString("20.00"))
	suite.Require().NoError(err)

	o, err := order.NewOrder(42, []order.Line{line1, line2}, discount, createdAt)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsHeaderLinesAndTotals() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Once()

	persisted, err := suite.repository.Add(ctx, suite.newOrder(nil, suite.baseTime))

	suite.Require().NoError(err)
	suite.Positive(persisted.ID())
	suite.Equal(uint64(1), persisted.Version())
	suite.True(persisted.SubTotal().Equal(decimal.RequireFromString("40.00")))
	suite.True(persisted.Total().Equal(decimal.RequireFromString("40.00")))
	suite.Require().Len(persisted.Lines(), 2)
	for _, line := range persisted.Lines() {
		suite.Positive(line.ID())
		suite.Equal(persisted.ID(), line.OrderID())
	}

	var headerCount, lineCount int64
	suite.Require().NoError(suite.db.Table("orders").Count(&headerCount).Error)
	suite.Require().NoError(suite.db.Table("order_lines").Count(&lineCount).Error)
	suite.Equal(int64(1), headerCount)
	suite.Equal(int64(2), lineCount)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DiscountRoundTrips() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Once()
	discount := decimal.RequireFromString("10")

	persisted, err := suite.repository.Add(ctx, suite.newOrder(&discount, suite.baseTime))

	suite.Require().NoError(err)
	suite.Require().NotNil(persisted.DiscountPercent())
	suite.True(persisted.DiscountPercent().Equal(discount))
	suite.True(persisted.Total().Equal(decimal.RequireFromString("4.00")),
		"total was %s", persisted.Total())

	loaded, err := suite.repository.Get(ctx, persisted.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.DiscountPercent())
	suite.True(loaded.DiscountPercent().Equal(discount))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ReturnsOrderWithOrderedLines() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Once()
	persisted, err := suite.repository.Add(ctx, suite.newOrder(nil, suite.baseTime))
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, persisted.ID())

	suite.Require().NoError(err)
	suite.Equal(persisted.ID(), loaded.ID())
	suite.Equal(int64(42), loaded.CustomerID())
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(uint64(1), loaded.Version())
	suite.Require().Len(loaded.Lines(), 2)
	suite.Less(loaded.Lines()[0].ID(), loaded.Lines()[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 99999)

	suite.Require().Error(err)
	suite.Equal(errs.NotFound, errs.KindOf(err))
	suite.Contains(err.Error(), "Order with id 99999 not found")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_BumpsVersion() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Twice()
	persisted, err := suite.repository.Add(ctx, suite.newOrder(nil, suite.baseTime))
	suite.Require().NoError(err)

	suite.Require().NoError(persisted.ChangeStatus(order.Paid))
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, persisted))

	loaded, err := suite.repository.Get(ctx, persisted.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paid, loaded.Status())
	suite.Equal(uint64(2), loaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_StaleVersion_ConcurrencyConflict() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Twice()
	persisted, err := suite.repository.Add(ctx, suite.newOrder(nil, suite.baseTime))
	suite.Require().NoError(err)

	// First writer wins and bumps the row version.
	winner, err := suite.repository.Get(ctx, persisted.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(winner.ChangeStatus(order.Paid))
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, winner))

	// Second writer still holds version 1 and must be rejected.
	suite.Require().NoError(persisted.ChangeStatus(order.Cancelled))
	err = suite.repository.UpdateStatus(ctx, persisted)

	suite.Require().Error(err)
	suite.Equal(errs.ConcurrencyConflict, errs.KindOf(err))
	suite.Contains(err.Error(), "The order was modified by another user. Please refresh and try again.")

	loaded, err := suite.repository.Get(ctx, persisted.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paid, loaded.Status())
	suite.Equal(uint64(2), loaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetPendingBefore_ReturnsOnlyStalePending() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Times(4)

	stale, err := suite.repository.Add(ctx, suite.newOrder(nil, suite.baseTime.Add(-48*time.Hour)))
	suite.Require().NoError(err)

	fresh, err := suite.repository.Add(ctx, suite.newOrder(nil, suite.baseTime))
	suite.Require().NoError(err)

	paid := suite.newOrder(nil, suite.baseTime.Add(-48*time.Hour))
	suite.Require().NoError(paid.ChangeStatus(order.Paid))
	_, err = suite.repository.Add(ctx, paid)
	suite.Require().NoError(err)

	// An order created exactly at the cutoff is not stale yet.
	atCutoff, err := suite.repository.Add(ctx, suite.newOrder(nil, suite.baseTime.Add(-24*time.Hour)))
	suite.Require().NoError(err)

	result, err := suite.repository.GetPendingBefore(ctx, suite.baseTime.Add(-24*time.Hour))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(stale.ID(), result[0].ID())
	suite.NotEqual(fresh.ID(), result[0].ID())
	suite.NotEqual(atCutoff.ID(), result[0].ID())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
