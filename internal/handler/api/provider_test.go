//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"barber-booking/internal/domain/user"
	"barber-booking/internal/handler/api"
	reqdto "barber-booking/internal/handler/dto/request"
	resdto "barber-booking/internal/handler/dto/response"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/usecase/commands"
	"barber-booking/internal/usecase/queries"
	"barber-booking/tests/common/httptest"
	"barber-booking/tests/common/testutil"
	commandsmock "barber-booking/tests/mock/commands"
	queriesmock "barber-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProviderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockProvider *commandsmock.MockProviderCommands
	mockCatalog  *queriesmock.MockCatalogQueries
	handler      *api.ProviderHandler
	actorID      uuid.UUID
}

func (s *ProviderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockProvider = commandsmock.NewMockProviderCommands(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewProviderHandler(s.mockProvider, s.mockCatalog)

	// Mock authentication middleware for testing
	s.actorID = uuid.New()
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleProvider)
		c.Next()
	}

	s.router.PUT("/providers/:id/working-hours", authMiddleware, s.handler.UpsertWorkingHours)
	s.router.PUT("/providers/:id/buffer", authMiddleware, s.handler.SetBuffer)
	s.router.POST("/providers/:id/services", authMiddleware, s.handler.CreateService)
	s.router.PATCH("/services/:service_id", authMiddleware, s.handler.UpdateService)
	s.router.GET("/providers/:id/services", s.handler.ListServices)
}

func (s *ProviderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProviderHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProviderHandlerTestSuite))
}

func weeklyRulesBody() reqdto.UpsertWorkingHoursRequest {
	return reqdto.UpsertWorkingHoursRequest{
		Rules: []reqdto.WorkingHourRuleRequest{
			{Weekday: 1, Start: "09:00", End: "17:00"},
			{Weekday: 2, Start: "09:00", End: "17:00"},
			{Weekday: 6, Start: "10:00", End: "14:00"},
		},
	}
}

// ================================================================================
// TestUpsertWorkingHours
// ================================================================================

func (s *ProviderHandlerTestSuite) TestUpsertWorkingHours() {
	providerID := uuid.New()
	url := "/providers/" + providerID.String() + "/working-hours"
	reqBody := weeklyRulesBody()

	s.Run("success: returns 204 No Content and forwards all rules", func() {
		s.mockProvider.EXPECT().
			UpsertWorkingHours(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.UpsertWorkingHoursParams) error {
				s.Equal(providerID, params.ProviderID)
				s.Len(params.Rules, 3)
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on invalid provider ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/providers/not-a-uuid/working-hours", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid provider ID")
	})

	s.Run("error: 422 Unprocessable Entity on malformed time of day", func() {
		broken := weeklyRulesBody()
		broken.Rules[0].Start = "9am"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, broken, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid working hours")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: usecase errors map to status codes", func() {
		testCases := []struct {
			name       string
			err        error
			wantStatus int
			wantMsg    string
		}{
			{name: "overlapping rules", err: errs.ErrInvalidWorkingHours, wantStatus: http.StatusUnprocessableEntity, wantMsg: "Invalid working hours"},
			{name: "provider missing", err: errs.ErrProviderNotFound, wantStatus: http.StatusNotFound, wantMsg: "Provider not found"},
			{name: "store timeout", err: errs.ErrTransientStore, wantStatus: http.StatusServiceUnavailable, wantMsg: "Temporary store failure"},
			{name: "unexpected failure", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockProvider.EXPECT().
					UpsertWorkingHours(gomock.Any(), gomock.Any()).
					Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.wantStatus, tc.wantMsg)
			})
		}
	})
}

// ================================================================================
// TestSetBuffer
// ================================================================================

func (s *ProviderHandlerTestSuite) TestSetBuffer() {
	providerID := uuid.New()
	url := "/providers/" + providerID.String() + "/buffer"
	reqBody := reqdto.SetBufferRequest{BufferMin: 15}

	s.Run("success: returns 204 No Content", func() {
		s.mockProvider.EXPECT().
			SetBuffer(gomock.Any(), providerID, 15).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on negative buffer", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("buffer_min", -5))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for unknown provider", func() {
		s.mockProvider.EXPECT().
			SetBuffer(gomock.Any(), providerID, 15).
			Return(errs.ErrProviderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Provider not found")
	})
}

// ================================================================================
// TestCreateService
// ================================================================================

func (s *ProviderHandlerTestSuite) TestCreateService() {
	providerID := uuid.New()
	url := "/providers/" + providerID.String() + "/services"
	reqBody := reqdto.CreateServiceRequest{Name: "Beard Trim", DurationMin: 20, PriceCents: 1500}

	s.Run("success: returns 201 Created with the new service ID", func() {
		serviceID := uuid.New()
		s.mockProvider.EXPECT().
			CreateService(gomock.Any(), commands.CreateServiceParams{
				ProviderID:  providerID,
				Name:        "Beard Trim",
				DurationMin: 20,
				PriceCents:  1500,
			}).
			Return(serviceID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(serviceID.String(), body["id"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name", mutate: testutil.Field("name", nil)},
			{name: "missing field: duration_min", mutate: testutil.Field("duration_min", nil)},
			{name: "zero duration", mutate: testutil.Field("duration_min", 0)},
			{name: "negative price", mutate: testutil.Field("price_cents", -100)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 422 Unprocessable Entity on domain validation failure", func() {
		s.mockProvider.EXPECT().
			CreateService(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

// ================================================================================
// TestUpdateService
// ================================================================================

func (s *ProviderHandlerTestSuite) TestUpdateService() {
	serviceID := uuid.New()
	url := "/services/" + serviceID.String()

	s.Run("success: price change returns 204 No Content", func() {
		newPrice := int64(4200)
		s.mockProvider.EXPECT().
			UpdateService(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.UpdateServiceParams) error {
				s.Equal(serviceID, params.ServiceID)
				s.Equal(s.actorID, params.ActorID)
				s.Equal(user.RoleProvider, params.ActorRole)
				s.Require().NotNil(params.PriceCents)
				s.Equal(newPrice, *params.PriceCents)
				s.False(params.Deactivate)
				return nil
			}).Times(1)

		reqBody := reqdto.UpdateServiceRequest{PriceCents: &newPrice}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: deactivation returns 204 No Content", func() {
		s.mockProvider.EXPECT().
			UpdateService(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.UpdateServiceParams) error {
				s.True(params.Deactivate)
				return nil
			}).Times(1)

		reqBody := reqdto.UpdateServiceRequest{Deactivate: true}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on invalid service ID", func() {
		reqBody := reqdto.UpdateServiceRequest{Deactivate: true}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/services/not-a-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service ID")
	})

	s.Run("error: 403 Forbidden for another provider's service", func() {
		s.mockProvider.EXPECT().
			UpdateService(gomock.Any(), gomock.Any()).
			Return(errs.ErrServiceNotOwned).Times(1)

		reqBody := reqdto.UpdateServiceRequest{Deactivate: true}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 404 Not Found for unknown service", func() {
		s.mockProvider.EXPECT().
			UpdateService(gomock.Any(), gomock.Any()).
			Return(errs.ErrServiceNotFound).Times(1)

		reqBody := reqdto.UpdateServiceRequest{Deactivate: true}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})
}

// ================================================================================
// TestListServices
// ================================================================================

func (s *ProviderHandlerTestSuite) TestListServices() {
	providerID := uuid.New()
	url := "/providers/" + providerID.String() + "/services"

	active := &queries.ServiceView{
		ID:          uuid.New(),
		ProviderID:  providerID,
		Name:        "Classic Cut",
		DurationMin: 30,
		PriceCents:  3500,
		Active:      true,
	}

	s.Run("success: returns active services without auth", func() {
		s.mockCatalog.EXPECT().
			ListServices(gomock.Any(), providerID, false).
			Return([]*queries.ServiceView{active}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []*resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Classic Cut", body[0].Name)
		s.True(body[0].Active)
	})

	s.Run("success: include_inactive flag is forwarded", func() {
		s.mockCatalog.EXPECT().
			ListServices(gomock.Any(), providerID, true).
			Return([]*queries.ServiceView{active}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?include_inactive=true", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on invalid provider ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/providers/not-a-uuid/services", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid provider ID")
	})

	s.Run("error: 500 Internal Server Error on read store failure", func() {
		s.mockCatalog.EXPECT().
			ListServices(gomock.Any(), providerID, false).
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}
