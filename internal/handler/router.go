package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"campus-tickets/internal/handler/api"
	"campus-tickets/internal/handler/middleware"
	"campus-tickets/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	eventHandler *api.EventHandler,
	assistantHandler *api.AssistantHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, eventHandler, assistantHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	eventHandler *api.EventHandler,
	assistantHandler *api.AssistantHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		events := apiGroup.Group("/events")
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "", Handler: eventHandler.ListEvents},
				{Method: http.MethodGet, Path: "/:id", Handler: eventHandler.GetEvent},
				{Method: http.MethodPost, Path: "/:id/purchase", Handler: eventHandler.PurchaseTickets},
			})
		}

		assistant := apiGroup.Group("/assistant")
		{
			addRoutes(assistant, []route{
				{Method: http.MethodPost, Path: "/messages", Handler: assistantHandler.PostMessage},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: adminHandler.Login},
			})

			adminRequired := admin.Group("")
			adminRequired.Use(authMiddleware.RequireAdmin())
			addRoutes(adminRequired, []route{
				{Method: http.MethodPost, Path: "/events", Handler: adminHandler.CreateEvent},
				{Method: http.MethodPut, Path: "/events/:id/tickets", Handler: adminHandler.SetTickets},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
