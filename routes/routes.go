package routes

import (
	"os"

	"workshop-backend/config"
	"workshop-backend/controllers"
	"workshop-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontend},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.POST("", controllers.CreateBooking)
			bookings.GET("", controllers.GetBookings)
			bookings.GET("/events", controllers.GetBookingEvents)
			bookings.POST("/reconcile", controllers.ReconcileBookings)
			bookings.GET("/:id", controllers.GetBooking)
			bookings.PUT("/:id", controllers.UpdateBooking)
			bookings.DELETE("/:id", controllers.DeleteBooking)
		}

		// Job routes
		jobs := api.Group("/jobs")
		{
			jobs.POST("", controllers.CreateJob)
			jobs.GET("", controllers.GetJobs)
			jobs.GET("/:id", controllers.GetJob)
			jobs.PUT("/:id", controllers.UpdateJob)
			jobs.DELETE("/:id", controllers.DeleteJob)
		}

		// Parts order routes
		radiators := api.Group("/radiators")
		{
			radiators.POST("", controllers.CreateRadiator)
			radiators.GET("", controllers.GetRadiators)
			radiators.GET("/:id", controllers.GetRadiator)
			radiators.PUT("/:id", controllers.UpdateRadiator)
			radiators.DELETE("/:id", controllers.DeleteRadiator)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Reports routes
		api.GET("/reports/download", controllers.DownloadReport)
	}

	return r
}
