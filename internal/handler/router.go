package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"barber-booking/internal/domain/user"
	"barber-booking/internal/handler/api"
	"barber-booking/internal/handler/middleware"
	"barber-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	availabilityHandler *api.AvailabilityHandler,
	appointmentHandler *api.AppointmentHandler,
	providerHandler *api.ProviderHandler,
	dashboardHandler *api.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, availabilityHandler, appointmentHandler, providerHandler, dashboardHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	availabilityHandler *api.AvailabilityHandler,
	appointmentHandler *api.AppointmentHandler,
	providerHandler *api.ProviderHandler,
	dashboardHandler *api.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		providers := apiGroup.Group("/providers/:id")
		{
			addRoutes(providers, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.ListSlots},
				{Method: http.MethodGet, Path: "/services", Handler: providerHandler.ListServices},
			})

			providerOnly := providers.Group("")
			providerOnly.Use(
				authMiddleware.RequireAuth(),
				authMiddleware.RequireRoleAtLeast(user.RoleProvider),
				authMiddleware.RequireProviderSelf(),
			)
			addRoutes(providerOnly, []route{
				{Method: http.MethodPut, Path: "/working-hours", Handler: providerHandler.UpsertWorkingHours},
				{Method: http.MethodPut, Path: "/buffer", Handler: providerHandler.SetBuffer},
				{Method: http.MethodPost, Path: "/services", Handler: providerHandler.CreateService},
				{Method: http.MethodGet, Path: "/appointments", Handler: appointmentHandler.ListForProviderDate},
				{Method: http.MethodGet, Path: "/dashboard", Handler: dashboardHandler.Stats},
			})
		}

		services := apiGroup.Group("/services")
		services.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleProvider))
		{
			addRoutes(services, []route{
				{Method: http.MethodPatch, Path: "/:service_id", Handler: providerHandler.UpdateService},
			})
		}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: appointmentHandler.Book},
				{Method: http.MethodGet, Path: "", Handler: appointmentHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: appointmentHandler.Get},
				{Method: http.MethodPost, Path: "/:id/transition", Handler: appointmentHandler.Transition},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
