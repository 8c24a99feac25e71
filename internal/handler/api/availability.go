package api

import (
	"errors"
	"net/http"

	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/handler/dto/response"
	"barber-booking/internal/handler/httperr"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// @Summary List available slots
// @Description List bookable slots for a provider, service and date
// @Tags availability
// @Produce json
// @Param id path string true "Provider ID"
// @Param service_id query string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD, provider-local)"
// @Success 200 {object} response.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /providers/{id}/availability [get]
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider ID", nil)
		return
	}
	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID", nil)
		return
	}
	date, err := schedule.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	slots, err := h.availability.ListSlots(c.Request.Context(), providerID, serviceID, date)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProviderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Provider not found", nil)
		case errors.Is(err, errs.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, errs.ErrNoScheduleConfigured):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Provider has no schedule configured", nil)
		case errors.Is(err, errs.ErrTransientStore):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Temporary store failure, retry shortly", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, response.FromSlotViews(date.String(), slots))
}
