package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "parkops/internal/handler/dto/request"
	resdto "parkops/internal/handler/dto/response"
	"parkops/internal/handler/httperr"
	"parkops/internal/pkg/errs"
	"parkops/internal/usecase/commands"
	"parkops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssignmentHandler struct {
	assignmentCommands commands.AssignmentCommands
	assignmentQueries  queries.AssignmentQueries
}

func NewAssignmentHandler(
	assignmentCommands commands.AssignmentCommands,
	assignmentQueries queries.AssignmentQueries,
) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentCommands: assignmentCommands,
		assignmentQueries:  assignmentQueries,
	}
}

// @Summary Vehicle entry
// @Description Open an active assignment for the plate at the lot
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EnterRequest true "Entry request"
// @Success 201 {object} resdto.AssignmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /assignments [post]
func (h *AssignmentHandler) Enter(c *gin.Context) {
	var req reqdto.EnterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.assignmentCommands.Enter(c.Request.Context(), req.Plate, req.LotID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidPlate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid plate", nil)
		case errors.Is(err, errs.ErrLotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Lot not found", nil)
		case errors.Is(err, errs.ErrDuplicateActiveAssignment):
			httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle already has an active assignment in this lot", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAssignmentView(view))
}

// @Summary Vehicle checkout
// @Description Close the assignment at the given exit time and bill it
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.AssignmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /assignments/{id} [patch]
func (h *AssignmentHandler) Checkout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid assignment ID format", nil)
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.assignmentCommands.Checkout(c.Request.Context(), id, req.ExitTime)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAssignmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Assignment not found", nil)
		case errors.Is(err, errs.ErrAlreadyCompleted):
			httperr.AbortWithError(c, http.StatusConflict, err, "Assignment already completed", nil)
		case errors.Is(err, errs.ErrInvalidInterval):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Exit time before entry time", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAssignmentView(view))
}

// @Summary Active assignments
// @Description List active assignments of a lot with running fees
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 200 {array} resdto.AssignmentResponse
// @Failure 400 {object} httperr.Response
// @Router /lots/{id}/assignments/active [get]
func (h *AssignmentHandler) ListActive(c *gin.Context) {
	lotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lot ID format", nil)
		return
	}

	views, err := h.assignmentQueries.ListActive(c.Request.Context(), lotID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAssignmentViews(views))
}

// @Summary Completed assignments
// @Description List completed assignments of a lot, optionally for one day
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param day query string false "Calendar day (YYYY-MM-DD)"
// @Success 200 {array} resdto.AssignmentResponse
// @Failure 400 {object} httperr.Response
// @Router /lots/{id}/assignments/completed [get]
func (h *AssignmentHandler) ListCompleted(c *gin.Context) {
	lotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lot ID format", nil)
		return
	}

	var day *time.Time
	if dayStr := c.Query("day"); dayStr != "" {
		parsed, err := time.Parse("2006-01-02", dayStr)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid day format, expected YYYY-MM-DD", nil)
			return
		}
		day = &parsed
	}

	views, err := h.assignmentQueries.ListCompleted(c.Request.Context(), lotID, day)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAssignmentViews(views))
}
