package routes

import (
	"net/http"
	"time"

	"roomly/handlers"
	"roomly/middleware"
	"roomly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the session-exchange endpoint.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/session", middleware.FirebaseAuthMiddleware(), handlers.SessionTokenHandler)
	}
}

// RegisterRoomRoutes registers room listing for the booking UI.
func RegisterRoomRoutes(r *gin.Engine, rh *handlers.RoomHandler) {
	api := r.Group("/api/rooms")
	{
		api.GET("", rh.ListRooms)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		// Protected routes (Require Authentication)
		api.Use(middleware.AuthMiddleware())
		api.POST("", bh.CreateBooking)
		api.POST("/recurring", bh.ExpandRecurring)
		api.GET("/room/:roomID", bh.ListRoomDay)
		api.GET("/mine", bh.ListMine)
		api.DELETE("/:id", bh.CancelBooking)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, rh *handlers.RoomHandler, bh *handlers.BookingHandler) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.POST("/rooms", rh.CreateRoom)
		adminGroup.GET("/rooms", rh.ListRooms)
		adminGroup.PATCH("/rooms/:id/enabled", rh.SetRoomEnabled)
		adminGroup.DELETE("/bookings/:id", bh.CancelBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler, rh *handlers.RoomHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		// Browser clients expect a plain 200 on preflight.
		OptionsResponseStatusCode: http.StatusOK,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r)
	RegisterRoomRoutes(r, rh)
	RegisterBookingRoutes(r, bh)
	RegisterAdminRoutes(r, rh, bh)
}
