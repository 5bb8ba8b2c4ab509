package routes

import (
	"net/http"
	"time"

	userRepo "wirehaul/database/repository/user"
	"wirehaul/handlers"
	"wirehaul/middleware"
	"wirehaul/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTripRoutes registers the trip lifecycle endpoints.
func RegisterTripRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userRepo.UserRepository) {
	auth := middleware.JWTAuthMiddleware(users, utils.GetAuthCacheClient())

	api := r.Group("/api")
	{
		// Tracking endpoints are public: the tracking id is the credential.
		api.POST("/trip/track", hb.Trips.TrackTrip)
		api.POST("/trip/done", hb.Trips.CompleteTrip)

		protected := api.Group("")
		protected.Use(auth)
		protected.POST("/trips", hb.Trips.CreateTrip)
		protected.GET("/all_trip/client", hb.Trips.ClientTrips)

		// Driver-side endpoints additionally require the driver role.
		driverSide := protected.Group("")
		driverSide.Use(middleware.RequireRole("driver", "admin"))
		driverSide.GET("/trips/accept/:tripId", hb.Trips.AcceptTrip)
		driverSide.GET("/trips/reject/:tripId", hb.Trips.RejectTrip)
		driverSide.GET("/all_request", hb.Trips.PendingRequests)
		driverSide.GET("/all_trip/driver", hb.Trips.DriverTrips)
		driverSide.PUT("/trip/location", hb.Trips.UpdateLocation)
	}
}

// RegisterNotificationRoutes registers the notification inbox endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userRepo.UserRepository) {
	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(users, utils.GetAuthCacheClient()))
	api.GET("/notifications", hb.Notifications.ListNotifications)
}

// RegisterDriverRoutes registers driver onboarding endpoints.
func RegisterDriverRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userRepo.UserRepository) {
	api := r.Group("/api/driver")
	api.Use(middleware.JWTAuthMiddleware(users, utils.GetAuthCacheClient()))
	api.POST("/apply", hb.Drivers.ApplyAsDriver)
	api.GET("/me", hb.Drivers.DriverProfile)
}

// RegisterHealthRoute registers the liveness probe.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userRepo.UserRepository) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterTripRoutes(r, hb, users)
	RegisterNotificationRoutes(r, hb, users)
	RegisterDriverRoutes(r, hb, users)
}
