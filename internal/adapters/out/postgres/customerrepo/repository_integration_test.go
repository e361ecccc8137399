package customerrepo_test

import (
	"context"
	"testing"

	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/testdb"

	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(int64, any) {}

type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := testdb.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
	suite.Require().NoError(postgres.Migrate(db))
	suite.repository = customerrepo.NewGormCustomerRepository(db, noopTracker{})
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(testdb.Truncate(suite.db, "customers"))
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	c, err := customer.NewCustomer("Ada", "ada@example.com")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, c))
	suite.Equal(int64(1), c.ID())

	loaded, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("Ada", loaded.Name())
	suite.Equal("ada@example.com", loaded.Email())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_Missing() {
	_, err := suite.repository.Get(context.Background(), 5)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
