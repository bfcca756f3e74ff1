package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hometown/handlers"
)

// RegisterBookingRoutes registers the wizard session endpoints.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", bh.StartSession)
		booking.GET("/session/:sessionID", bh.GetSession)
		booking.PUT("/session/:sessionID", bh.ApplyAction)
		booking.POST("/session/:sessionID/vehicles", bh.AddVehicle)
		booking.DELETE("/session/:sessionID/vehicles/:vehicleID", bh.RemoveVehicle)
		booking.POST("/session/:sessionID/promo", bh.ApplyPromo)
		booking.DELETE("/session/:sessionID/promo", bh.RemovePromo)
		booking.POST("/session/:sessionID/next", bh.NextStep)
		booking.POST("/session/:sessionID/back", bh.PrevStep)
		booking.POST("/session/:sessionID/submit", bh.Submit)
		booking.POST("/session/:sessionID/dismiss", bh.Dismiss)
	}
}

// RegisterCatalogRoutes registers the reference-data endpoints.
func RegisterCatalogRoutes(r *gin.Engine, ch *handlers.CatalogHandler) {
	api := r.Group("/api/catalog")
	{
		api.GET("", ch.GetCatalog)
		api.GET("/timeslots", ch.GetTimeSlots)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Home Town Detailing"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler, ch *handlers.CatalogHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, ch)
	RegisterBookingRoutes(r, bh)
}
