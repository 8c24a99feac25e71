package api

import (
	"errors"
	"net/http"

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

type ProviderHandler struct {
	provider commands.ProviderCommands
	catalog  queries.CatalogQueries
}

func NewProviderHandler(provider commands.ProviderCommands, catalog queries.CatalogQueries) *ProviderHandler {
	return &ProviderHandler{
		provider: provider,
		catalog:  catalog,
	}
}

// @Summary Replace working hours
// @Description Replace the provider's weekly working hour rules
// @Tags providers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Param request body reqdto.UpsertWorkingHoursRequest true "Weekly rules"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /providers/{id}/working-hours [put]
func (h *ProviderHandler) UpsertWorkingHours(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider ID", nil)
		return
	}

	var req reqdto.UpsertWorkingHoursRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	rules, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid working hours", nil)
		return
	}

	err = h.provider.UpsertWorkingHours(c.Request.Context(), commands.UpsertWorkingHoursParams{
		ProviderID: providerID,
		Rules:      rules,
	})
	if err != nil {
		h.writeProviderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Set booking buffer
// @Description Set the spacing enforced between the provider's appointments
// @Tags providers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Param request body reqdto.SetBufferRequest true "Buffer minutes"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /providers/{id}/buffer [put]
func (h *ProviderHandler) SetBuffer(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider ID", nil)
		return
	}

	var req reqdto.SetBufferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.provider.SetBuffer(c.Request.Context(), providerID, req.BufferMin); err != nil {
		h.writeProviderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Create service
// @Description Add a bookable service to the provider's catalog
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Param request body reqdto.CreateServiceRequest true "Service definition"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /providers/{id}/services [post]
func (h *ProviderHandler) CreateService(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider ID", nil)
		return
	}

	var req reqdto.CreateServiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	id, err := h.provider.CreateService(c.Request.Context(), commands.CreateServiceParams{
		ProviderID:  providerID,
		Name:        req.Name,
		DurationMin: req.DurationMin,
		PriceCents:  req.PriceCents,
	})
	if err != nil {
		h.writeProviderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update service
// @Description Change price or duration, or deactivate a service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param service_id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Fields to change"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /services/{service_id} [patch]
func (h *ProviderHandler) UpdateService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("service_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID", nil)
		return
	}

	var req reqdto.UpdateServiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
		return
	}
	actorRole, _ := middleware.GetUserRole(c)

	err = h.provider.UpdateService(c.Request.Context(), commands.UpdateServiceParams{
		ServiceID:   serviceID,
		ActorID:     actorID,
		ActorRole:   actorRole,
		PriceCents:  req.PriceCents,
		DurationMin: req.DurationMin,
		Deactivate:  req.Deactivate,
	})
	if err != nil {
		h.writeProviderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List services
// @Description List a provider's bookable services
// @Tags services
// @Produce json
// @Param id path string true "Provider ID"
// @Param include_inactive query bool false "Include retired services"
// @Success 200 {array} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Router /providers/{id}/services [get]
func (h *ProviderHandler) ListServices(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider ID", nil)
		return
	}

	includeInactive := c.Query("include_inactive") == "true"

	views, err := h.catalog.ListServices(c.Request.Context(), providerID, includeInactive)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

func (h *ProviderHandler) writeProviderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrProviderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Provider not found", nil)
	case errors.Is(err, errs.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, errs.ErrServiceNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	case errors.Is(err, errs.ErrInvalidWorkingHours):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid working hours", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	case errors.Is(err, errs.ErrTransientStore):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Temporary store failure, retry shortly", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
