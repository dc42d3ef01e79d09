package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"roomify/handlers"
)

// RegisterRoomRoutes registers the reference-data endpoints.
func RegisterRoomRoutes(r *gin.Engine, rh *handlers.RoomHandler) {
	api := r.Group("/api/rooms")
	{
		api.GET("", rh.ListRooms)
		api.GET("/slots", rh.ListSlots)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking store.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		api.GET("", bh.ListBookings)
		api.GET("/availability", bh.CheckAvailability)
		api.GET("/day", bh.DaySchedule)
		api.POST("", bh.CreateBooking)
		api.DELETE("/:id", bh.DeleteBooking)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	admin := r.Group("/api/admin")
	{
		admin.DELETE("/bookings", bh.ClearBookings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, rh *handlers.RoomHandler, bh *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterRoomRoutes(r, rh)
	RegisterBookingRoutes(r, bh)
	RegisterAdminRoutes(r, bh)
}
