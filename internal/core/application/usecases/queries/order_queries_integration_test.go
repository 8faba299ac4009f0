package queries_test

import (
	"context"
	"testing"
	"time"

	"saddleoms/internal/adapters/out/postgres/orderrepo"
	"saddleoms/internal/core/application/usecases/queries"
	"saddleoms/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderQueriesIntegrationTestSuite exercises every read-side handler
// against a PostgreSQL container seeded with a small mixed order set.
type OrderQueriesIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB

	search      queries.SearchOrdersQueryHandler
	suggestions queries.OrderSuggestionsQueryHandler
	stats       queries.OrderStatsQueryHandler
	getOrder    queries.GetOrderQueryHandler
	overdue     queries.GetOverdueOrdersQueryHandler
}

func (suite *OrderQueriesIntegrationTestSuite) SetupSuite() {
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

	suite.search = queries.NewSearchOrdersQueryHandler(db)
	suite.suggestions = queries.NewOrderSuggestionsQueryHandler(db)
	suite.stats = queries.NewOrderStatsQueryHandler(db)
	suite.getOrder = queries.NewGetOrderQueryHandler(db)
	suite.overdue = queries.NewGetOverdueOrdersQueryHandler(db)

	suite.seedOrders()
}

func (suite *OrderQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesIntegrationTestSuite) seedOrders() {
	now := time.Now().UTC()
	past := now.AddDate(0, 0, -10)
	future := now.AddDate(0, 1, 0)
	fitterID := int64(3)
	saddleID := int64(11)

	rows := []orderrepo.OrderDTO{
		{
			CustomerID: 42, CustomerName: "Anna Keller", OrderNumber: "ORD-1001",
			Status: "pending", Priority: "normal",
			SeatSizeIDs: []int64{3, 5},
			TotalAmount: 1000, BalanceOwing: 1000,
			CreatedAt: now.AddDate(0, 0, -30), UpdatedAt: now.AddDate(0, 0, -30),
		},
		{
			CustomerID: 7, CustomerName: "Bruno Maier", OrderNumber: "ORD-1002",
			Status: "in_production", Priority: "urgent", IsUrgent: true,
			FitterID: &fitterID, SaddleID: &saddleID,
			SeatSizeIDs:           []int64{5},
			TotalAmount:           2500, DepositPaid: 1000, BalanceOwing: 1500,
			EstimatedDeliveryDate: &past,
			CreatedAt:             now.AddDate(0, 0, -20), UpdatedAt: now.AddDate(0, 0, -5),
		},
		{
			CustomerID: 8, CustomerName: "Annabelle Kern", OrderNumber: "ORD-1003",
			Status: "delivered", Priority: "high",
			TotalAmount:           4000, DepositPaid: 4000,
			EstimatedDeliveryDate: &past, ActualDeliveryDate: &past,
			CreatedAt:             now.AddDate(0, 0, -60), UpdatedAt: now.AddDate(0, 0, -8),
		},
		{
			CustomerID: 9, CustomerName: "Clara Vogt", OrderNumber: "ORD-1004",
			Status: "confirmed", Priority: "low",
			TotalAmount:           500, DepositPaid: 150, BalanceOwing: 350,
			EstimatedDeliveryDate: &future,
			CreatedAt:             now.AddDate(0, 0, -2), UpdatedAt: now.AddDate(0, 0, -2),
		},
	}

	for i := range rows {
		suite.Require().NoError(suite.db.Create(&rows[i]).Error)
	}
}

func (suite *OrderQueriesIntegrationTestSuite) TestSearch_NoFilters_ReturnsAllNewestFirst() {
	query, err := queries.NewSearchOrdersQuery(queries.OrderFilters{}, 0, 0, "", "")
	suite.Require().NoError(err)

	result, err := suite.search.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(4), result.Total)
	suite.Len(result.Items, 4)
	suite.Equal("ORD-1004", result.Items[0].OrderNumber)
	suite.False(result.HasNext)
	suite.False(result.HasPrev)
}

func (suite *OrderQueriesIntegrationTestSuite) TestSearch_CustomerNameSubstring() {
	query, err := queries.NewSearchOrdersQuery(queries.OrderFilters{CustomerName: "ann"}, 1, 20, "", "")
	suite.Require().NoError(err)

	result, err := suite.search.Handle(context.Background(), query)
	suite.Require().NoError(err)
	// matches Anna Keller and Annabelle Kern, case-insensitively
	suite.Equal(int64(2), result.Total)
}

func (suite *OrderQueriesIntegrationTestSuite) TestSearch_SeatSizeContainment() {
	seatSize := int64(5)
	query, err := queries.NewSearchOrdersQuery(queries.OrderFilters{SeatSizeID: &seatSize}, 1, 20, "", "")
	suite.Require().NoError(err)

	result, err := suite.search.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(2), result.Total)
}

func (suite *OrderQueriesIntegrationTestSuite) TestSearch_ConjunctiveFilters() {
	urgent := true
	query, err := queries.NewSearchOrdersQuery(queries.OrderFilters{
		IsUrgent: &urgent,
		Status:   "in_production",
	}, 1, 20, "", "")
	suite.Require().NoError(err)

	result, err := suite.search.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.Equal("ORD-1002", result.Items[0].OrderNumber)
	suite.Require().NotNil(result.Items[0].FitterID)
	suite.Equal(int64(3), *result.Items[0].FitterID)
	suite.Equal([]int64{5}, result.Items[0].SeatSizeIDs)
}

func (suite *OrderQueriesIntegrationTestSuite) TestSearch_Pagination() {
	query, err := queries.NewSearchOrdersQuery(queries.OrderFilters{}, 1, 3, "", "")
	suite.Require().NoError(err)

	result, err := suite.search.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(result.Items, 3)
	suite.True(result.HasNext)
	suite.False(result.HasPrev)

	query, err = queries.NewSearchOrdersQuery(queries.OrderFilters{}, 2, 3, "", "")
	suite.Require().NoError(err)

	result, err = suite.search.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(result.Items, 1)
	suite.False(result.HasNext)
	suite.True(result.HasPrev)
}

func (suite *OrderQueriesIntegrationTestSuite) TestSearch_SortByTotalAmountAsc() {
	query, err := queries.NewSearchOrdersQuery(queries.OrderFilters{}, 1, 20, "total_amount", "asc")
	suite.Require().NoError(err)

	result, err := suite.search.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 4)
	suite.Equal("ORD-1004", result.Items[0].OrderNumber)
	suite.Equal("ORD-1003", result.Items[3].OrderNumber)
}

func (suite *OrderQueriesIntegrationTestSuite) TestSearch_CreatedAtBounds() {
	from := time.Now().UTC().AddDate(0, 0, -25)
	to := time.Now().UTC()
	query, err := queries.NewSearchOrdersQuery(queries.OrderFilters{
		CreatedFrom: &from,
		CreatedTo:   &to,
	}, 1, 20, "", "")
	suite.Require().NoError(err)

	result, err := suite.search.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(2), result.Total) // ORD-1002 and ORD-1004
}

func (suite *OrderQueriesIntegrationTestSuite) TestSuggestions_CustomerName() {
	query, err := queries.NewOrderSuggestionsQuery("customer_name", "ann")
	suite.Require().NoError(err)

	values, err := suite.suggestions.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal([]string{"Anna Keller", "Annabelle Kern"}, values)
}

func (suite *OrderQueriesIntegrationTestSuite) TestSuggestions_ShortQuerySkipsStorage() {
	query, err := queries.NewOrderSuggestionsQuery("customer_name", "a")
	suite.Require().NoError(err)

	values, err := suite.suggestions.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(values)
}

func (suite *OrderQueriesIntegrationTestSuite) TestStats_Unfiltered() {
	query, err := queries.NewOrderStatsQuery(queries.OrderFilters{})
	suite.Require().NoError(err)

	stats, err := suite.stats.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(4), stats.Total)
	suite.Equal(int64(1), stats.Urgent)
	suite.Equal(int64(1), stats.ByStatus["pending"])
	suite.Equal(int64(1), stats.ByStatus["in_production"])
	suite.Equal(int64(1), stats.ByStatus["delivered"])
	suite.Equal(int64(1), stats.ByStatus["confirmed"])
	suite.InDelta(2000.0, stats.AverageTotalAmount, 0.001)
}

func (suite *OrderQueriesIntegrationTestSuite) TestStats_FilteredPredicate() {
	customerID := int64(7)
	query, err := queries.NewOrderStatsQuery(queries.OrderFilters{CustomerID: &customerID})
	suite.Require().NoError(err)

	stats, err := suite.stats.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), stats.Total)
	suite.Equal(int64(1), stats.Urgent)
	suite.InDelta(2500.0, stats.AverageTotalAmount, 0.001)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrder_ByID() {
	query, err := queries.NewGetOrderQuery(1)
	suite.Require().NoError(err)

	resp, err := suite.getOrder.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("ORD-1001", resp.OrderNumber)
	suite.Equal("Anna Keller", resp.CustomerName)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(9999)
	suite.Require().NoError(err)

	_, err = suite.getOrder.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesIntegrationTestSuite) TestOverdue_ExcludesFinalStatuses() {
	overdue, err := suite.overdue.Handle(context.Background(), queries.NewGetOverdueOrdersQuery())
	suite.Require().NoError(err)

	// ORD-1002 is past its date and active; ORD-1003 is past but delivered
	suite.Require().Len(overdue, 1)
	suite.Equal("ORD-1002", overdue[0].OrderNumber)
	suite.Equal("Bruno Maier", overdue[0].CustomerName)
}

func TestOrderQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesIntegrationTestSuite))
}
