package api

import (
	"errors"
	"net/http"
	"strconv"

	"barber-booking/internal/domain/schedule"
	reqdto "barber-booking/internal/handler/dto/request"
	resdto "barber-booking/internal/handler/dto/response"
	"barber-booking/internal/handler/httperr"
	"barber-booking/internal/handler/middleware"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/usecase/commands"
	"barber-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	booking     commands.BookingCommands
	appointment queries.AppointmentQueries
}

func NewAppointmentHandler(booking commands.BookingCommands, appointment queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{
		booking:     booking,
		appointment: appointment,
	}
}

// @Summary Book appointment
// @Description Reserve a slot for the authenticated customer
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return
	}

	var req reqdto.BookAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	params := commands.BookParams{
		ProviderID: req.ProviderID,
		CustomerID: customerID,
		ServiceID:  req.ServiceID,
		Date:       date,
		Start:      req.StartTime,
	}

	view, err := h.booking.Book(c.Request.Context(), params)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

func (h *AppointmentHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrProviderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Provider not found", nil)
	case errors.Is(err, errs.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, errs.ErrCustomerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
	case errors.Is(err, errs.ErrServiceInactive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Service is no longer offered", nil)
	case errors.Is(err, errs.ErrNoScheduleConfigured):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Provider has no schedule configured", nil)
	case errors.Is(err, errs.ErrOutsideWorkingHours):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Requested time is outside working hours", nil)
	case errors.Is(err, errs.ErrInvalidSlot):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Requested time is not a valid slot", nil)
	case errors.Is(err, errs.ErrSlotNoLongerAvailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot is no longer available", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	case errors.Is(err, errs.ErrTransientStore):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Temporary store failure, retry shortly", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

// @Summary Transition appointment
// @Description Move an appointment through its lifecycle
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.TransitionAppointmentRequest true "Target state"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id}/transition [post]
func (h *AppointmentHandler) Transition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment ID", nil)
		return
	}

	var req reqdto.TransitionAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	target, err := req.ParseTarget()
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Unknown target state", nil)
		return
	}

	view, err := h.booking.Transition(c.Request.Context(), id, target)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		case errors.Is(err, errs.ErrInvalidStateTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid state transition", nil)
		case errors.Is(err, errs.ErrTransientStore):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Temporary store failure, retry shortly", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Get appointment
// @Description Get appointment by ID
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment ID", nil)
		return
	}

	view, err := h.appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List own appointments
// @Description List the authenticated customer's appointments, newest first
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items"
// @Success 200 {array} resdto.AppointmentListResponse
// @Router /appointments [get]
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	items, err := h.appointment.ListByCustomer(c.Request.Context(), customerID, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentListItems(items))
}

// @Summary List provider appointments for a date
// @Description List a provider's appointments for one provider-local date
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.AppointmentListResponse
// @Router /providers/{id}/appointments [get]
func (h *AppointmentHandler) ListForProviderDate(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider ID", nil)
		return
	}
	date, err := schedule.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	items, err := h.appointment.ListByProviderDate(c.Request.Context(), providerID, date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentListItems(items))
}
