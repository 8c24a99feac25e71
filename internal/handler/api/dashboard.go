package api

import (
	"net/http"

	"barber-booking/internal/domain/schedule"
	resdto "barber-booking/internal/handler/dto/response"
	"barber-booking/internal/handler/httperr"
	"barber-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DashboardHandler struct {
	dashboard queries.DashboardQueries
}

func NewDashboardHandler(dashboard queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// @Summary Provider dashboard stats
// @Description Aggregate booking counts and realized revenue over a date range
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Param from query string true "From date (YYYY-MM-DD)"
// @Param to query string true "To date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DashboardStatsResponse
// @Failure 400 {object} map[string]string
// @Router /providers/{id}/dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider ID", nil)
		return
	}
	from, err := schedule.ParseDate(c.Query("from"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from date, expected YYYY-MM-DD", nil)
		return
	}
	to, err := schedule.ParseDate(c.Query("to"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid to date, expected YYYY-MM-DD", nil)
		return
	}
	if to.Before(from) {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Date range is inverted", nil)
		return
	}

	stats, err := h.dashboard.Stats(c.Request.Context(), providerID, from, to)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardStats(stats))
}
