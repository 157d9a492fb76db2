package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"travel-planner-api/internal/handlers"
	"travel-planner-api/internal/middleware"
)

// SetupRouter assembles the gin engine: CORS, public auth routes, and the
// session-guarded plan routes.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	// Credentialed CORS: the session cookie has to survive cross-origin
	// requests from the configured frontends.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     h.Config.FrontendURLs,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to AI Travel Planner API",
			"status":  "running",
		})
	})

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// --- Auth Routes (Public) ---
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)

		// --- Protected Routes (Session Required) ---
		auth := api.Group("/")
		auth.Use(middleware.Auth(h.Sessions))
		{
			auth.POST("/logout", h.Logout)
			auth.GET("/user", h.CurrentUser)

			auth.POST("/generate-plan", h.GeneratePlan)
			auth.GET("/plans", h.ListPlans)
			auth.DELETE("/plans/:id", h.DeletePlan)
			auth.GET("/plans/:id/download", h.DownloadPlan)
		}
	}

	return router
}
