package api

import (
	"errors"
	"net/http"

	reqdto "parkops/internal/handler/dto/request"
	resdto "parkops/internal/handler/dto/response"
	"parkops/internal/handler/httperr"
	"parkops/internal/pkg/errs"
	"parkops/internal/usecase/commands"
	"parkops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	assignmentCommands commands.AssignmentCommands
	redemptionCommands commands.RedemptionCommands
	catalogQueries     queries.CatalogQueries
}

func NewVehicleHandler(
	assignmentCommands commands.AssignmentCommands,
	redemptionCommands commands.RedemptionCommands,
	catalogQueries queries.CatalogQueries,
) *VehicleHandler {
	return &VehicleHandler{
		assignmentCommands: assignmentCommands,
		redemptionCommands: redemptionCommands,
		catalogQueries:     catalogQueries,
	}
}

// @Summary Edit vehicle
// @Description Correct the plate and optional identity fields
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param request body reqdto.EditVehicleRequest true "Patch"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vehicles/{id} [patch]
func (h *VehicleHandler) Edit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}

	var req reqdto.EditVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.assignmentCommands.EditPlate(c.Request.Context(), id, req.Plate, req.Make, req.Model, req.Color)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidPlate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid plate", nil)
		case errors.Is(err, errs.ErrVehicleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
		case errors.Is(err, errs.ErrDuplicatePlate):
			httperr.AbortWithError(c, http.StatusConflict, err, "Plate already registered", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}

// @Summary Get vehicle by plate
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param plate path string true "Plate"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 404 {object} httperr.Response
// @Router /vehicles/plate/{plate} [get]
func (h *VehicleHandler) GetByPlate(c *gin.Context) {
	view, err := h.catalogQueries.GetVehicleByPlate(c.Request.Context(), c.Param("plate"))
	if err != nil {
		if errors.Is(err, errs.ErrVehicleNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}

// @Summary Redeem prize
// @Description Spend loyalty points of a vehicle on a prize
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemRequest true "Redemption"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vehicles/redeem [post]
func (h *VehicleHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.redemptionCommands.Redeem(c.Request.Context(), req.Plate, req.PrizeID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidPlate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid plate", nil)
		case errors.Is(err, errs.ErrVehicleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
		case errors.Is(err, errs.ErrPrizeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Prize not found", nil)
		case errors.Is(err, errs.ErrInsufficientScore):
			httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient score", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}
