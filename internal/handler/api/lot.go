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

type LotHandler struct {
	lotCommands    commands.LotCommands
	catalogQueries queries.CatalogQueries
}

func NewLotHandler(lotCommands commands.LotCommands, catalogQueries queries.CatalogQueries) *LotHandler {
	return &LotHandler{
		lotCommands:    lotCommands,
		catalogQueries: catalogQueries,
	}
}

// @Summary Create lot
// @Tags lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLotRequest true "Lot"
// @Success 201 {object} resdto.LotResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /lots [post]
func (h *LotHandler) Create(c *gin.Context) {
	var req reqdto.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.lotCommands.CreateLot(c.Request.Context(), commands.CreateLotParams{
		Name:        req.Name,
		Address:     req.Address,
		HourlyRate:  req.HourlyRate,
		MinimumRate: req.MinimumRate,
		Capacity:    req.Capacity,
	})
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromLotView(view))
}

// @Summary List lots
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LotResponse
// @Router /lots [get]
func (h *LotHandler) List(c *gin.Context) {
	views, err := h.catalogQueries.ListLots(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLotViews(views))
}

// @Summary Update lot
// @Tags lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param request body reqdto.UpdateLotRequest true "Patch"
// @Success 200 {object} resdto.LotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /lots/{id} [patch]
func (h *LotHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lot ID format", nil)
		return
	}

	var req reqdto.UpdateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.lotCommands.UpdateLot(c.Request.Context(), id, commands.UpdateLotParams{
		Name:             req.Name,
		Address:          req.Address,
		HourlyRate:       req.HourlyRate,
		MinimumRate:      req.MinimumRate,
		ClearMinimumRate: req.ClearMinimumRate,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrLotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Lot not found", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLotView(view))
}
