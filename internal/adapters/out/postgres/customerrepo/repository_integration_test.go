package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/customerrepo"
	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// CustomerRepositoryIntegrationTestSuite verifies customer persistence
// against a real PostgreSQL container.
type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
	tracker    *MockAggregateTracker
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
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

	// TranslateError turns unique index violations into gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&customerrepo.CustomerDTO{}))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = customerrepo.NewGormCustomerRepository(suite.db, suite.tracker)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_AssignsIDAndPersists() {
	ctx := context.Background()
	aggregate, err := customer.NewCustomer("Ada Lovelace", "ada@example.com", "11987654321")
	suite.Require().NoError(err)
	suite.Require().Nil(aggregate.ID())

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), aggregate).Once()

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	suite.Require().NotNil(aggregate.ID())

	loaded, err := suite.repository.Get(ctx, *aggregate.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(aggregate))
	suite.Equal("Ada Lovelace", loaded.Name())
	suite.Equal("ada@example.com", loaded.Email())
	suite.Equal("11987654321", loaded.Phone())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail() {
	ctx := context.Background()
	first, _ := customer.NewCustomer("Ada Lovelace", "ada@example.com", "")
	second, _ := customer.NewCustomer("Another Ada", "ada@example.com", "")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, customer.ErrEmailAlreadyRegistered)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_EmptyPhoneStoredAsNull() {
	ctx := context.Background()
	aggregate, _ := customer.NewCustomer("Ada Lovelace", "ada@example.com", "")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	var nullPhones int64
	err := suite.db.Model(&customerrepo.CustomerDTO{}).
		Where("phone IS NULL").
		Count(&nullPhones).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), nullPhones)

	loaded, err := suite.repository.Get(ctx, *aggregate.ID())
	suite.Require().NoError(err)
	suite.Empty(loaded.Phone())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetByEmail() {
	ctx := context.Background()
	aggregate, _ := customer.NewCustomer("Ada Lovelace", "ada@example.com", "")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.GetByEmail(ctx, "ada@example.com")
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(aggregate))

	_, err = suite.repository.GetByEmail(ctx, "nobody@example.com")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestExistsWithEmail() {
	ctx := context.Background()
	aggregate, _ := customer.NewCustomer("Ada Lovelace", "ada@example.com", "")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	exists, err := suite.repository.ExistsWithEmail(ctx, "ada@example.com")
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsWithEmail(ctx, "nobody@example.com")
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_OverwritesContactInfo() {
	ctx := context.Background()
	aggregate, _ := customer.NewCustomer("Ada Lovelace", "ada@example.com", "11987654321")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.UpdateInfo("Ada King", "countess@example.com", ""))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, *aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("Ada King", loaded.Name())
	suite.Equal("countess@example.com", loaded.Email())
	suite.Empty(loaded.Phone())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_UnknownCustomer() {
	ctx := context.Background()
	ghost, err := customer.RestoreCustomer(kernel.NewUUID(), "Ghost", "ghost@example.com", "")
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, ghost)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetAll_SortedByName() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(3)

	for _, seed := range []struct{ name, email string }{
		{"Charles Babbage", "charles@example.com"},
		{"Ada Lovelace", "ada@example.com"},
		{"Grace Hopper", "grace@example.com"},
	} {
		aggregate, err := customer.NewCustomer(seed.name, seed.email, "")
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	}

	customers, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(customers, 3)
	suite.Equal("Ada Lovelace", customers[0].Name())
	suite.Equal("Charles Babbage", customers[1].Name())
	suite.Equal("Grace Hopper", customers[2].Name())
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
