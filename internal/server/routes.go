// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "github.com/jiyaaggarwal267-maker/career-tracker/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jiyaaggarwal267-maker/career-tracker/internal/controller"
	"github.com/jiyaaggarwal267-maker/career-tracker/internal/middleware"
	"github.com/jiyaaggarwal267-maker/career-tracker/internal/utilities"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.New()
	r.Use(gin.Logger(), gin.CustomRecovery(recoveryHandler))

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")
	if allowOrginsStr == "" {
		allowOrgins = []string{"*"}
	}

	applications := controller.NewApplicationController(s.Store)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowOrgins, // Add your frontend URL
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.EnvRateLimitMiddleware())

	r.GET("/", s.HelloHandler)
	r.GET("/health", s.healthHandler)

	api := r.Group("/api")
	{
		api.GET("/stats", applications.GetStats)

		appRoute := api.Group("/applications")
		{
			appRoute.GET("", applications.ListApplications)
			appRoute.GET(":id", applications.GetApplication)

			appRoute.Use(middleware.SizeLimit(1 << 20))
			appRoute.POST("", applications.CreateApplication)
			appRoute.PUT(":id", applications.UpdateApplication)
			appRoute.DELETE(":id", applications.DeleteApplication)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utilities.RouteErrorResponse{
			Error:  "Route not found",
			Path:   c.Request.URL.Path,
			Method: c.Request.Method,
		})
	})

	return r
}

func recoveryHandler(c *gin.Context, err any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"message": "The server encountered an unexpected condition",
	})
}

// HelloHandler handle request by return welcome message and store health
func (s *Server) HelloHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "career-tracker API",
		"store":   s.Store.Health(),
	})
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
