package postgres_test

import (
	"context"
	"testing"
	"time"

	"saddleoms/internal/adapters/out/postgres"
	"saddleoms/internal/adapters/out/postgres/orderrepo"
	"saddleoms/internal/core/domain/model/order"
	"saddleoms/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the
// GORM unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(orderNumber string) *order.Order {
	aggregate, err := order.NewOrder(
		42, "Anna Keller", orderNumber,
		nil, nil, nil, "", nil, 1000,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) orderCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	first := suite.factory.Create()
	second := suite.factory.Create()
	suite.NotNil(first)
	suite.NotNil(second)
	suite.NotSame(first, second)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("ORD-UOW-0001")))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("ORD-UOW-0002")))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoryWithoutTransaction_WritesDirectly() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// no Begin: the repository falls back to the main connection
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("ORD-UOW-0003")))
	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderLifecycleWorkflow() {
	ctx := context.Background()

	var orderID int64
	createUoW := suite.factory.Create()
	suite.Require().NoError(createUoW.Begin(ctx))
	aggregate := suite.newOrder("ORD-UOW-0004")
	suite.Require().NoError(createUoW.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(createUoW.Commit(ctx))
	orderID = aggregate.ID()
	suite.Positive(orderID)

	confirmUoW := suite.factory.Create()
	suite.Require().NoError(confirmUoW.Begin(ctx))
	repo := confirmUoW.OrderRepository()
	loaded, err := repo.Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(order.StatusConfirmed))
	suite.Require().NoError(loaded.RecordDepositPayment(300))
	suite.Require().NoError(repo.Update(ctx, loaded))
	suite.Require().NoError(confirmUoW.Commit(ctx))

	var verifyUoW ports.UnitOfWork = suite.factory.Create()
	final, err := verifyUoW.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, final.Status())
	suite.InDelta(300.0, final.DepositPaid(), 0.001)
	suite.InDelta(700.0, final.BalanceOwing(), 0.001)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWorkflowRollback_KeepsPreviousState() {
	ctx := context.Background()

	createUoW := suite.factory.Create()
	suite.Require().NoError(createUoW.Begin(ctx))
	aggregate := suite.newOrder("ORD-UOW-0005")
	suite.Require().NoError(createUoW.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(createUoW.Commit(ctx))

	mutateUoW := suite.factory.Create()
	suite.Require().NoError(mutateUoW.Begin(ctx))
	repo := mutateUoW.OrderRepository()
	loaded, err := repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(order.StatusConfirmed))
	suite.Require().NoError(repo.Update(ctx, loaded))
	suite.Require().NoError(mutateUoW.Rollback(ctx))

	final, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPending, final.Status())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
