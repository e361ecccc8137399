package postgres_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/testdb"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// UnitOfWorkIntegrationTestSuite exercises transactions and post-commit event publishing
// against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *MockEventPublisher
	factory   ports.UnitOfWorkFactory
}

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := testdb.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(testdb.Truncate(suite.db, "orders", "customers", "products"))
	suite.publisher = new(MockEventPublisher)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, logger)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotNil(first)
	suite.NotSame(first, second)
	suite.NotNil(first.OrderRepository())
	suite.NotNil(first.CustomerRepository())
	suite.NotNil(first.ProductRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c, _ := customer.NewCustomer("Ada", "")
	p, _ := product.NewProduct("Widget", decimal.NewFromInt(5))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))

	o, err := order.NewOrder(order.Params{CustomerID: c.ID(), ProductID: p.ID(), Quantity: 2,
		UnitPrice: decimal.NewFromInt(5)}, order.StandardDefaults(), now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount("customers", 1)
	suite.assertCount("products", 1)
	suite.assertCount("orders", 1)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c, _ := customer.NewCustomer("Ada", "")
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount("customers", 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PublishesStatusEventsAfterCommit() {
	ctx := context.Background()
	stored := suite.storeOrder(order.Active)

	suite.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(events []kernel.DomainEvent) bool {
		if len(events) != 1 {
			return false
		}
		event, ok := events[0].(order.StatusChangedEvent)
		return ok && event.OrderID == stored.ID() && event.From == order.Active && event.To == order.Shipped
	})).Return(nil).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(order.Shipped, order.DefaultTransitionPolicy(), now))
	suite.Require().NoError(uow.OrderRepository().UpdateStatus(ctx, loaded))

	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
	suite.Require().NoError(uow.Commit(ctx))

	suite.publisher.AssertExpectations(suite.T())
	suite.Empty(loaded.DomainEvents())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackNeverPublishes() {
	ctx := context.Background()
	stored := suite.storeOrder(order.Active)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(order.Completed, order.DefaultTransitionPolicy(), now))
	suite.Require().NoError(uow.OrderRepository().UpdateStatus(ctx, loaded))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)

	reloaded, err := suite.factory.Create().OrderRepository().Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Active, reloaded.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PublishFailureKeepsCommittedState() {
	ctx := context.Background()
	stored := suite.storeOrder(order.Active)
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(order.Completed, order.DefaultTransitionPolicy(), now))
	suite.Require().NoError(uow.OrderRepository().UpdateStatus(ctx, loaded))

	suite.Require().NoError(uow.Commit(ctx))

	reloaded, err := suite.factory.Create().OrderRepository().Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, reloaded.Status())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	c, _ := customer.NewCustomer("Ada", "")

	suite.Require().NoError(suite.factory.Create().CustomerRepository().Add(ctx, c))

	suite.assertCount("customers", 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) storeOrder(status order.Status) *order.Order {
	o, err := order.NewOrder(order.Params{Quantity: 1, Status: status}, order.StandardDefaults(), now)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(context.Background()))
	suite.Require().NoError(uow.OrderRepository().Add(context.Background(), o))
	suite.Require().NoError(uow.Commit(context.Background()))
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
