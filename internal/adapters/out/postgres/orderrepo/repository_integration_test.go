package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"saddleoms/internal/adapters/out/postgres/orderrepo"
	"saddleoms/internal/core/domain/model/order"
	"saddleoms/internal/pkg/errs"

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
// GormOrderRepository using a PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	saddleID := int64(11)
	delivery := time.Now().UTC().AddDate(0, 2, 0).Truncate(time.Second)
	aggregate, err := order.NewOrder(
		42, "Anna Keller", "ORD-2026-0001",
		&saddleID, []int64{3, 5},
		map[string]any{"leather": "black"},
		"extra padding", &delivery, 4800,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsStorageID() {
	ctx := context.Background()
	aggregate := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), aggregate).Once()

	err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)
	suite.Positive(aggregate.ID())

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsAllFields() {
	ctx := context.Background()
	aggregate := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Equal(aggregate.CustomerID(), restored.CustomerID())
	suite.Equal(aggregate.CustomerName(), restored.CustomerName())
	suite.Equal(aggregate.OrderNumber(), restored.OrderNumber())
	suite.Equal(order.StatusPending, restored.Status())
	suite.Equal(order.PriorityNormal, restored.Priority())
	suite.Equal(aggregate.SeatSizeIDs(), restored.SeatSizeIDs())
	suite.Equal("black", restored.SaddleSpecifications()["leather"])
	suite.InDelta(4800.0, restored.TotalAmount(), 0.001)
	suite.InDelta(4800.0, restored.BalanceOwing(), 0.001)
	suite.Require().NotNil(restored.EstimatedDeliveryDate())
	suite.True(aggregate.EstimatedDeliveryDate().Equal(*restored.EstimatedDeliveryDate()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 9999)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsMutations() {
	ctx := context.Background()
	aggregate := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.ChangeStatus(order.StatusConfirmed))
	suite.Require().NoError(aggregate.RecordDepositPayment(1800))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, restored.Status())
	suite.InDelta(1800.0, restored.DepositPaid(), 0.001)
	suite.InDelta(3000.0, restored.BalanceOwing(), 0.001)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingRow() {
	ctx := context.Background()
	aggregate := suite.createTestOrder()
	suite.Require().NoError(aggregate.SetID(9999))

	err := suite.repository.Update(ctx, aggregate)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByOrderNumber() {
	ctx := context.Background()
	aggregate := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.GetByOrderNumber(ctx, "ORD-2026-0001")
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), restored.ID())

	_, err = suite.repository.GetByOrderNumber(ctx, "ORD-MISSING")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_LocksRow() {
	ctx := context.Background()
	aggregate := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := orderrepo.NewGormOrderRepository(tx, suite.tracker)
	locked, err := txRepo.GetForUpdate(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), locked.ID())

	suite.Require().NoError(locked.RecordDepositPayment(400))
	suite.Require().NoError(txRepo.Update(ctx, locked))
	suite.Require().NoError(tx.Commit().Error)

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.InDelta(400.0, restored.DepositPaid(), 0.001)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
