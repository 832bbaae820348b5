//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"parkops/internal/handler/api"
	resdto "parkops/internal/handler/dto/response"
	"parkops/internal/pkg/errs"
	"parkops/internal/usecase/commands"
	"parkops/internal/usecase/queries"
	"parkops/tests/common/builder"
	"parkops/tests/common/httptest"
	"parkops/tests/common/testutil"
	commandsmock "parkops/tests/mock/commands"
	queriesmock "parkops/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SaleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSaleCommands
	mockQueries  *queriesmock.MockSalesQueries
	handler      *api.SaleHandler
}

func (s *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSaleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSalesQueries(s.mockCtrl)
	s.handler = api.NewSaleHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("operator_email", "operator@example.com")
		c.Next()
	}

	s.router.POST("/sales", authMiddleware, s.handler.Sell)
	s.router.GET("/lots/:id/sales", authMiddleware, s.handler.ReportByLot)
	s.router.GET("/products/:id/sales", authMiddleware, s.handler.ReportByProduct)
}

func (s *SaleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSaleHandlerSuite(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}

// ================================================================================
// TestSell
// ================================================================================

func (s *SaleHandlerTestSuite) TestSell() {
	url := "/sales"

	b := builder.NewProductBuilder()
	soldAt := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	result := &commands.SellResult{
		SaleID:            uuid.New(),
		ProductID:         b.ID,
		LotID:             b.LotID,
		Quantity:          3,
		Amount:            decimal.RequireFromString("10.50"),
		SoldAt:            soldAt,
		RemainingQuantity: 22,
	}
	reqBody := map[string]any{
		"product_id": b.ID.String(),
		"lot_id":     b.LotID.String(),
		"quantity":   3,
	}

	s.Run("success: returns 201 Created with receipt", func() {
		s.mockCommands.EXPECT().Sell(gomock.Any(), b.ID, b.LotID, 3).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.SaleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.SaleID, response.SaleID)
		s.Equal(3, response.Quantity)
		s.Equal("10.50", response.Amount)
		s.Equal(22, response.RemainingQuantity)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: product_id", mutate: testutil.Field("product_id", nil)},
			{name: "missing field: lot_id", mutate: testutil.Field("lot_id", nil)},
			{name: "missing field: quantity", mutate: testutil.Field("quantity", nil)},
			{name: "quantity zero", mutate: testutil.Field("quantity", 0)},
			{name: "quantity negative", mutate: testutil.Field("quantity", -1)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "product not found",
				commandsError:  errs.ErrProductNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Product not found",
			},
			{
				name:           "no stock at lot",
				commandsError:  errs.ErrStockNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "No stock for product at this lot",
			},
			{
				name:           "insufficient stock",
				commandsError:  errs.ErrInsufficientStock,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Insufficient stock",
			},
			{
				name:           "domain validation failed",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Sell(gomock.Any(), b.ID, b.LotID, 3).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestReportByLot
// ================================================================================

func (s *SaleHandlerTestSuite) TestReportByLot() {
	lotID := uuid.New()
	baseURL := "/lots/" + lotID.String() + "/sales"

	totals := []*queries.ProductSalesTotal{
		{
			ProductID:     uuid.New(),
			ProductName:   "Car Wash Token",
			TotalQuantity: 12,
			TotalAmount:   decimal.RequireFromString("42.00"),
		},
		{
			ProductID:     uuid.New(),
			ProductName:   "Air Freshener",
			TotalQuantity: 4,
			TotalAmount:   decimal.RequireFromString("8.40"),
		},
	}

	s.Run("success: returns per-product totals for RFC3339 interval", func() {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
		url := baseURL + "?start=2025-06-01T00:00:00Z&end=2025-06-30T23:59:59Z"

		s.mockQueries.EXPECT().TotalSalesByLot(gomock.Any(), lotID, start, end).
			Return(totals, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.ProductSalesTotalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("Car Wash Token", response[0].ProductName)
		s.Equal(int64(12), response[0].TotalQuantity)
		s.Equal("42.00", response[0].TotalAmount)
	})

	s.Run("success: date-only end covers the whole day", func() {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Nanosecond)
		url := baseURL + "?start=2025-06-01&end=2025-06-30"

		s.mockQueries.EXPECT().TotalSalesByLot(gomock.Any(), lotID, start, end).
			Return(totals, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid lot UUID", func() {
		url := "/lots/invalid-uuid/sales?start=2025-06-01&end=2025-06-30"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lot ID")
	})

	s.Run("error: 400 Bad Request when interval params are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?start=2025-06-01", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "start and end query parameters are required")
	})

	s.Run("error: 400 Bad Request for malformed start", func() {
		url := baseURL + "?start=June-1&end=2025-06-30"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid start format")
	})

	s.Run("error: 400 Bad Request when end precedes start", func() {
		start := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
		url := baseURL + "?start=2025-06-30&end=2025-06-01"

		s.mockQueries.EXPECT().TotalSalesByLot(gomock.Any(), lotID, start, gomock.Any()).
			Return(nil, errs.ErrInvalidInterval).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "End before start")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		url := baseURL + "?start=2025-06-01&end=2025-06-30"

		s.mockQueries.EXPECT().TotalSalesByLot(gomock.Any(), lotID, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestReportByProduct
// ================================================================================

func (s *SaleHandlerTestSuite) TestReportByProduct() {
	productID := uuid.New()
	baseURL := "/products/" + productID.String() + "/sales"
	url := baseURL + "?start=2025-06-01&end=2025-06-30"

	summary := &queries.ProductSalesSummary{
		ProductID:     productID,
		ProductName:   "Car Wash Token",
		TotalQuantity: 16,
		TotalAmount:   decimal.RequireFromString("56.00"),
		ByLot: []*queries.LotSalesTotal{
			{
				LotID:         uuid.New(),
				LotName:       "Central Lot",
				TotalQuantity: 12,
				TotalAmount:   decimal.RequireFromString("42.00"),
			},
			{
				LotID:         uuid.New(),
				LotName:       "Harbor Lot",
				TotalQuantity: 4,
				TotalAmount:   decimal.RequireFromString("14.00"),
			},
		},
	}

	s.Run("success: returns per-lot totals and grand total", func() {
		s.mockQueries.EXPECT().TotalSalesByProduct(gomock.Any(), productID, gomock.Any(), gomock.Any()).
			Return(summary, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ProductSalesSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(productID, response.ProductID)
		s.Equal(int64(16), response.TotalQuantity)
		s.Equal("56.00", response.TotalAmount)
		s.Require().Len(response.ByLot, 2)
		s.Equal("Central Lot", response.ByLot[0].LotName)
		s.Equal("42.00", response.ByLot[0].TotalAmount)
	})

	s.Run("error: 400 Bad Request for invalid product UUID", func() {
		badURL := "/products/invalid-uuid/sales?start=2025-06-01&end=2025-06-30"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, badURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product ID")
	})

	s.Run("error: 404 Not Found for unknown product", func() {
		s.mockQueries.EXPECT().TotalSalesByProduct(gomock.Any(), productID, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: 400 Bad Request when end precedes start", func() {
		badURL := baseURL + "?start=2025-06-30&end=2025-06-01"

		s.mockQueries.EXPECT().TotalSalesByProduct(gomock.Any(), productID, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidInterval).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, badURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "End before start")
	})
}
