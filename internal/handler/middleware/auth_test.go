//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"barber-booking/internal/domain/user"
	"barber-booking/internal/handler/middleware"
	"barber-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	actorID uuid.UUID
	router  *gin.Engine
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.actorID = uuid.New()
}

// buildRouter wires a context-seeding stub in place of RequireAuth ahead of
// the middleware under test.
func (s *AuthMiddlewareTestSuite) buildRouter(role user.Role) {
	m := middleware.NewAuthMiddleware(nil)
	s.router = gin.New()
	s.router.PUT("/providers/:id/buffer",
		func(c *gin.Context) {
			c.Set("user_id", s.actorID)
			c.Set("user_role", role)
		},
		m.RequireProviderSelf(),
		func(c *gin.Context) { c.Status(http.StatusNoContent) },
	)
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireProviderSelf() {
	s.Run("success: a provider reaches their own resource", func() {
		s.buildRouter(user.RoleProvider)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/providers/"+s.actorID.String()+"/buffer", nil, "token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden for another provider's resource", func() {
		s.buildRouter(user.RoleProvider)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/providers/"+uuid.NewString()+"/buffer", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("success: admins bypass the ownership check", func() {
		s.buildRouter(user.RoleAdmin)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/providers/"+uuid.NewString()+"/buffer", nil, "token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on a malformed provider ID", func() {
		s.buildRouter(user.RoleProvider)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/providers/not-a-uuid/buffer", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid provider ID")
	})
}
