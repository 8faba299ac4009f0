package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"saddleoms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestDomainError_StatusMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected int
	}{
		{"required value", errs.NewValueIsRequiredError("reason"), http.StatusBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"not found", errs.NewObjectNotFoundError("orderId", 7), http.StatusNotFound},
		{"invalid transition", errs.NewInvalidTransitionError("pending", "delivered"), http.StatusConflict},
		{"out of range", errs.NewValueIsOutOfRangeError("depositPaid", 1200.0, 0.0, 1000.0), http.StatusConflict},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run("should map "+tc.name, func(t *testing.T) {
			ctx, rec := newTestContext(t, "/")
			require.NoError(t, domainError(ctx, tc.err))
			assert.Equal(t, tc.expected, rec.Code)
		})
	}
}

func TestParseOrderFilters_ReadsAllParams(t *testing.T) {
	ctx, _ := newTestContext(t,
		"/api/v1/orders?customerName=keller&orderId=7&seatSizeId=5&isUrgent=true"+
			"&saddleId=11&fitterId=3&customerId=42&status=pending&priority=urgent"+
			"&createdFrom=2026-01-01T00:00:00Z&createdTo=2026-06-30T00:00:00Z")

	filters, err := parseOrderFilters(ctx)
	require.NoError(t, err)
	assert.Equal(t, "keller", filters.CustomerName)
	require.NotNil(t, filters.OrderID)
	assert.Equal(t, int64(7), *filters.OrderID)
	require.NotNil(t, filters.SeatSizeID)
	assert.Equal(t, int64(5), *filters.SeatSizeID)
	require.NotNil(t, filters.IsUrgent)
	assert.True(t, *filters.IsUrgent)
	require.NotNil(t, filters.SaddleID)
	assert.Equal(t, int64(11), *filters.SaddleID)
	require.NotNil(t, filters.FitterID)
	assert.Equal(t, int64(3), *filters.FitterID)
	require.NotNil(t, filters.CustomerID)
	assert.Equal(t, int64(42), *filters.CustomerID)
	assert.Equal(t, "pending", filters.Status)
	assert.Equal(t, "urgent", filters.Priority)
	require.NotNil(t, filters.CreatedFrom)
	require.NotNil(t, filters.CreatedTo)
}

func TestParseOrderFilters_RejectsMalformedValues(t *testing.T) {
	for _, target := range []string{
		"/api/v1/orders?orderId=abc",
		"/api/v1/orders?isUrgent=maybe",
		"/api/v1/orders?createdFrom=yesterday",
	} {
		t.Run("should reject "+target, func(t *testing.T) {
			ctx, _ := newTestContext(t, target)
			_, err := parseOrderFilters(ctx)
			require.Error(t, err)
		})
	}
}
