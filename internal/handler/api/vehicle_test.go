//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"parkops/internal/handler/api"
	resdto "parkops/internal/handler/dto/response"
	"parkops/internal/pkg/errs"
	"parkops/tests/common/builder"
	"parkops/tests/common/httptest"
	"parkops/tests/common/testutil"
	commandsmock "parkops/tests/mock/commands"
	queriesmock "parkops/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VehicleHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockAssignments *commandsmock.MockAssignmentCommands
	mockRedemptions *commandsmock.MockRedemptionCommands
	mockQueries     *queriesmock.MockCatalogQueries
	handler         *api.VehicleHandler
}

func (s *VehicleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAssignments = commandsmock.NewMockAssignmentCommands(s.mockCtrl)
	s.mockRedemptions = commandsmock.NewMockRedemptionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewVehicleHandler(s.mockAssignments, s.mockRedemptions, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("operator_email", "operator@example.com")
		c.Next()
	}

	s.router.PATCH("/vehicles/:id", authMiddleware, s.handler.Edit)
	s.router.GET("/vehicles/plate/:plate", authMiddleware, s.handler.GetByPlate)
	s.router.POST("/vehicles/redeem", authMiddleware, s.handler.Redeem)
}

func (s *VehicleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVehicleHandlerSuite(t *testing.T) {
	suite.Run(t, new(VehicleHandlerTestSuite))
}

// ================================================================================
// TestEdit
// ================================================================================

func (s *VehicleHandlerTestSuite) TestEdit() {
	b := builder.NewVehicleBuilder()
	returnView := b.BuildView()
	url := "/vehicles/" + b.ID.String()
	reqBody := map[string]any{
		"plate": "XYZ-9999",
		"color": "red",
	}

	s.Run("success: returns 200 OK with updated vehicle", func() {
		s.mockAssignments.EXPECT().
			EditPlate(gomock.Any(), b.ID, gomock.Eq("XYZ-9999"), gomock.Nil(), gomock.Nil(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.VehicleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Score, response.Score)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/vehicles/invalid-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid vehicle ID")
	})

	s.Run("error: 400 Bad Request when plate is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("plate", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid plate",
				commandsError:  errs.ErrInvalidPlate,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid plate",
			},
			{
				name:           "vehicle not found",
				commandsError:  errs.ErrVehicleNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Vehicle not found",
			},
			{
				name:           "duplicate plate",
				commandsError:  errs.ErrDuplicatePlate,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Plate already registered",
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
				s.mockAssignments.EXPECT().
					EditPlate(gomock.Any(), b.ID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetByPlate
// ================================================================================

func (s *VehicleHandlerTestSuite) TestGetByPlate() {
	b := builder.NewVehicleBuilder()
	returnView := b.BuildView()
	url := "/vehicles/plate/" + b.Plate

	s.Run("success: returns 200 OK with vehicle", func() {
		s.mockQueries.EXPECT().GetVehicleByPlate(gomock.Any(), b.Plate).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.VehicleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.Plate, response.Plate)
	})

	s.Run("error: 404 Not Found for unknown plate", func() {
		s.mockQueries.EXPECT().GetVehicleByPlate(gomock.Any(), b.Plate).
			Return(nil, errs.ErrVehicleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Vehicle not found")
	})
}

// ================================================================================
// TestRedeem
// ================================================================================

func (s *VehicleHandlerTestSuite) TestRedeem() {
	url := "/vehicles/redeem"

	b := builder.NewVehicleBuilder()
	prizeID := uuid.New()

	returnView := b.BuildView()
	returnView.Score = 20

	reqBody := map[string]any{
		"plate":    b.Plate,
		"prize_id": prizeID.String(),
	}

	s.Run("success: returns 200 OK with the debited vehicle", func() {
		s.mockRedemptions.EXPECT().Redeem(gomock.Any(), b.Plate, prizeID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.VehicleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(20, response.Score)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: plate", mutate: testutil.Field("plate", nil)},
			{name: "missing field: prize_id", mutate: testutil.Field("prize_id", nil)},
			{name: "malformed prize_id", mutate: testutil.Field("prize_id", "not-a-uuid")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid plate",
				commandsError:  errs.ErrInvalidPlate,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid plate",
			},
			{
				name:           "vehicle not found",
				commandsError:  errs.ErrVehicleNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Vehicle not found",
			},
			{
				name:           "prize not found",
				commandsError:  errs.ErrPrizeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Prize not found",
			},
			{
				name:           "insufficient score",
				commandsError:  errs.ErrInsufficientScore,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Insufficient score",
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
				s.mockRedemptions.EXPECT().Redeem(gomock.Any(), b.Plate, prizeID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
