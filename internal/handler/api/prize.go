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
)

type PrizeHandler struct {
	prizeCommands  commands.PrizeCommands
	catalogQueries queries.CatalogQueries
}

func NewPrizeHandler(prizeCommands commands.PrizeCommands, catalogQueries queries.CatalogQueries) *PrizeHandler {
	return &PrizeHandler{
		prizeCommands:  prizeCommands,
		catalogQueries: catalogQueries,
	}
}

// @Summary List prizes
// @Tags prizes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PrizeResponse
// @Router /prizes [get]
func (h *PrizeHandler) List(c *gin.Context) {
	views, err := h.catalogQueries.ListPrizes(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPrizeViews(views))
}

// @Summary Create prize
// @Tags prizes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePrizeRequest true "Prize"
// @Success 201 {object} resdto.PrizeResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /prizes [post]
func (h *PrizeHandler) Create(c *gin.Context) {
	var req reqdto.CreatePrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.prizeCommands.CreatePrize(c.Request.Context(), commands.CreatePrizeParams{
		Name:           req.Name,
		PointsRequired: req.PointsRequired,
		Description:    req.Description,
	})
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPrizeView(view))
}
