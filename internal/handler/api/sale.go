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

type SaleHandler struct {
	saleCommands commands.SaleCommands
	salesQueries queries.SalesQueries
}

func NewSaleHandler(saleCommands commands.SaleCommands, salesQueries queries.SalesQueries) *SaleHandler {
	return &SaleHandler{
		saleCommands: saleCommands,
		salesQueries: salesQueries,
	}
}

// @Summary Sell product
// @Description Decrement stock and record the sale atomically
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SellRequest true "Sale"
// @Success 201 {object} resdto.SaleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /sales [post]
func (h *SaleHandler) Sell(c *gin.Context) {
	var req reqdto.SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.saleCommands.Sell(c.Request.Context(), req.ProductID, req.LotID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errors.Is(err, errs.ErrStockNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No stock for product at this lot", nil)
		case errors.Is(err, errs.ErrInsufficientStock):
			httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient stock", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSellResult(result))
}

// @Summary Sales report by lot
// @Description Per-product sales totals of a lot over an inclusive interval
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param start query string true "Interval start (RFC3339 or YYYY-MM-DD)"
// @Param end query string true "Interval end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} resdto.ProductSalesTotalResponse
// @Failure 400 {object} httperr.Response
// @Router /lots/{id}/sales [get]
func (h *SaleHandler) ReportByLot(c *gin.Context) {
	lotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lot ID format", nil)
		return
	}

	start, end, err := parseInterval(c.Query("start"), c.Query("end"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	totals, err := h.salesQueries.TotalSalesByLot(c.Request.Context(), lotID, start, end)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidInterval) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "End before start", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductSalesTotals(totals))
}

// @Summary Sales report by product
// @Description Per-lot sales totals of a product plus a grand total
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param start query string true "Interval start (RFC3339 or YYYY-MM-DD)"
// @Param end query string true "Interval end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} resdto.ProductSalesSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/sales [get]
func (h *SaleHandler) ReportByProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID format", nil)
		return
	}

	start, end, err := parseInterval(c.Query("start"), c.Query("end"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	summary, err := h.salesQueries.TotalSalesByProduct(c.Request.Context(), productID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidInterval):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "End before start", nil)
		case errors.Is(err, errs.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductSalesSummary(summary))
}

// parseInterval accepts RFC3339 timestamps or plain dates. A date-only end
// means the whole day, so it is pushed to the last instant of that day.
func parseInterval(startStr, endStr string) (time.Time, time.Time, error) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, errors.New("start and end query parameters are required")
	}

	start, _, err := parseTimeParam(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid start format, expected RFC3339 or YYYY-MM-DD")
	}

	end, endDateOnly, err := parseTimeParam(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid end format, expected RFC3339 or YYYY-MM-DD")
	}
	if endDateOnly {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}

	return start, end, nil
}

func parseTimeParam(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
