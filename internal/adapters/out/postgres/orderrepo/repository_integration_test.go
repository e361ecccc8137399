package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/testdb"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a real PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

var placedAt = time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := testdb.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(testdb.Truncate(suite.db, "orders"))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(quantity int, price string) *order.Order {
	o, err := order.NewOrder(order.Params{
		CustomerID: 3,
		ProductID:  4,
		Quantity:   quantity,
		UnitPrice:  decimal.RequireFromString(price),
		Date:       placedAt,
		Notes:      "ring twice",
	}, order.StandardDefaults(), placedAt)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsIdentifierAndTracks() {
	ctx := context.Background()
	first := suite.newOrder(2, "10.50")
	second := suite.newOrder(1, "1")

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	suite.Equal(int64(1), first.ID())
	suite.Equal(int64(2), second.ID())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", int64(1), first)
	suite.tracker.AssertNumberOfCalls(suite.T(), "TrackAggregate", 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_ReturnsError() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsEveryField() {
	ctx := context.Background()
	stored := suite.newOrder(2, "10.50")
	suite.Require().NoError(suite.repository.Add(ctx, stored))

	loaded, err := suite.repository.Get(ctx, stored.ID())

	suite.Require().NoError(err)
	suite.Equal(stored.ID(), loaded.ID())
	suite.Equal(int64(3), loaded.CustomerID())
	suite.Equal(int64(4), loaded.ProductID())
	suite.Equal(2, loaded.Quantity())
	suite.Equal("10.50", loaded.UnitPrice().String())
	suite.Equal("21.00", loaded.Total().String())
	suite.Equal(order.Pending, loaded.Status())
	suite.True(placedAt.Equal(loaded.Date()))
	suite.Equal("ring twice", loaded.Notes())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	loaded, err := suite.repository.Get(context.Background(), 99999)

	suite.Nil(loaded)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesAllColumnsIncludingEmptyNotes() {
	ctx := context.Background()
	stored := suite.newOrder(2, "10.50")
	suite.Require().NoError(suite.repository.Add(ctx, stored))

	suite.Require().NoError(stored.Update(order.Params{
		CustomerID: 8,
		ProductID:  9,
		Quantity:   5,
		UnitPrice:  decimal.RequireFromString("2"),
		Status:     order.Completed,
	}))
	suite.Require().NoError(suite.repository.Update(ctx, stored))

	loaded, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(8), loaded.CustomerID())
	suite.Equal(5, loaded.Quantity())
	suite.Equal("10.00", loaded.Total().String())
	suite.Equal(order.Completed, loaded.Status())
	suite.Empty(loaded.Notes())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	ghost, err := order.RestoreOrder(4242, 1, 1, 1, decimal.NewFromInt(1), decimal.NewFromInt(1), order.Pending, placedAt, "")
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.repository.Update(context.Background(), ghost), errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.UpdateStatus(context.Background(), ghost), errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_WritesOnlyTheStatusColumn() {
	ctx := context.Background()
	stored := suite.newOrder(2, "10.50")
	suite.Require().NoError(suite.repository.Add(ctx, stored))

	// A stale in-memory copy with different amounts must not overwrite them.
	stale, err := order.RestoreOrder(stored.ID(), 3, 4, 50, decimal.NewFromInt(1), decimal.NewFromInt(50),
		order.Shipped, placedAt, "stale")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, stale))

	loaded, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, loaded.Status())
	suite.Equal(2, loaded.Quantity())
	suite.Equal("21.00", loaded.Total().String())
	suite.Equal("ring twice", loaded.Notes())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_IsIdempotent() {
	ctx := context.Background()
	stored := suite.newOrder(1, "1")
	suite.Require().NoError(suite.repository.Add(ctx, stored))

	suite.Require().NoError(suite.repository.Delete(ctx, stored.ID()))
	suite.Require().NoError(suite.repository.Delete(ctx, stored.ID()))
	suite.Require().NoError(suite.repository.Delete(ctx, 99999))

	_, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCancelledContext_ReturnsPersistenceError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := suite.repository.Add(ctx, suite.newOrder(1, "1"))

	suite.Require().ErrorIs(err, errs.ErrPersistence)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
