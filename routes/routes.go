package routes

import (
	"net/http"
	"time"

	"edunex/handlers"
	"edunex/middleware"
	"edunex/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterConsultationRoutes sets up the endpoints for consultation scheduling.
func RegisterConsultationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/consultations")
	{
		api.Use(middleware.JWTAuthMiddleware())

		// Student-facing slot query and booking.
		api.GET("/instructors/:id/slots", hb.GetAvailableSlots)
		api.POST("/sessions", hb.BookSession)
		api.GET("/sessions", hb.ListSessions)
		api.DELETE("/sessions/:id", hb.CancelSession)

		// Instructor schedule management.
		instructor := api.Group("/availability")
		instructor.Use(middleware.RequireRole("instructor"))
		instructor.PUT("", hb.SetAvailability)
		instructor.GET("/:date", hb.GetAvailability)
		instructor.PUT("/:date/block", hb.BlockDay)
	}
}

// RegisterCourseRoutes sets up course, lesson and enrollment endpoints.
func RegisterCourseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/courses")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListCourses)
		api.GET("/:id", hb.GetCourse)
		api.POST("/:id/enroll", hb.Enroll)
		api.GET("/:id/progress", hb.GetProgress)
		api.POST("/:id/lessons/:lessonID/complete", hb.CompleteLesson)

		// Endpoints that modify course content require the instructor role.
		protected := api.Group("")
		protected.Use(middleware.RequireRole("instructor"))
		protected.POST("", hb.CreateCourse)
		protected.POST("/:id/lessons", hb.AddLesson)
	}
}

// RegisterNotificationRoutes sets up the in-app notification feed.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListNotifications)
		api.PUT("/:id/read", hb.MarkNotificationRead)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterConsultationRoutes(r, hb)
	RegisterCourseRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
}
