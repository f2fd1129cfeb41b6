package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	// CORS Middleware
	trusted := app.Config.GetCORSOrigins()
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if lo.Contains(trusted, origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/signup", app.Handler.SignUp)
		v1.POST("/login", app.Handler.Login)
	}

	protected := v1.Group("/")
	protected.Use(app.AuthMiddleware())
	{
		protected.GET("/me", app.Handler.Me)
		protected.PUT("/me", app.Handler.UpdateProfile)
		protected.POST("/me/resumes", app.Handler.AddResume)

		// application routes
		protected.POST("/applications", app.Handler.CreateApplication)
		protected.GET("/applications", app.Handler.ListApplications)
		protected.GET("/applications/stats", app.Handler.DashboardStats)
		protected.GET("/applications/shared-with-me", app.Handler.ListSharedWithMe)
		protected.GET("/applications/:id", app.Handler.GetApplication)
		protected.PATCH("/applications/:id", app.Handler.PatchApplication)
		protected.DELETE("/applications/:id", app.Handler.DeleteApplication)
		protected.POST("/applications/:id/share", app.Handler.ShareApplication)
		protected.DELETE("/applications/:id/share/:user_id", app.Handler.UnshareApplication)

		// planned application routes
		protected.POST("/planned", app.Handler.CreatePlanned)
		protected.GET("/planned", app.Handler.ListPlanned)
		protected.GET("/planned/schedule", app.Handler.PlannedSchedule)
		protected.GET("/planned/today", app.Handler.TodayProgress)
		protected.GET("/planned/history", app.Handler.ApplicationHistory)
		protected.POST("/planned/distribute", app.Handler.DistributePlanned)
		protected.PATCH("/planned/:id", app.Handler.PatchPlanned)
		protected.DELETE("/planned/:id", app.Handler.DeletePlanned)
		protected.POST("/planned/:id/applied", app.Handler.MarkPlannedApplied)

		// analytics and settings
		protected.GET("/analytics", app.Handler.Analytics)
		protected.GET("/settings", app.Handler.GetSettings)
		protected.PUT("/settings", app.Handler.UpdateSettings)

		// community directory
		protected.GET("/users", app.Handler.ListSharingUsers)
		protected.GET("/users/:id", app.Handler.GetUserProfile)
		protected.GET("/users/:id/stats", app.Handler.UserStats)
	}

	return r
}
