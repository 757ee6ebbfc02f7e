package routes

import (
	"net/http"
	"time"

	"triptailor/handlers"
	"triptailor/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the user directory endpoints.
func RegisterUserRoutes(r *gin.Engine, gate gin.HandlerFunc, hb *handlers.HandlerBundle) {
	r.POST("/jwt", hb.Auth.IssueTokenHandler)
	r.PUT("/users", hb.User.SaveUserHandler)
	r.GET("/user/:email", gate, hb.User.GetUserHandler)
	r.GET("/users", gate, hb.User.ListUsersHandler)
	r.PATCH("/users/admin/:id", gate, hb.User.MakeAdminHandler)
	r.PATCH("/users/tourGuide/:id", gate, hb.User.MakeTourGuideHandler)
	r.GET("/tourGuides", hb.User.TourGuidesHandler)
}

// RegisterCatalogRoutes registers package and story endpoints.
func RegisterCatalogRoutes(r *gin.Engine, gate gin.HandlerFunc, hb *handlers.HandlerBundle) {
	r.GET("/tour-types", hb.Catalog.TourTypesHandler)
	r.GET("/tour-types/:category", hb.Catalog.PackagesByTourTypeHandler)
	r.GET("/packages", hb.Catalog.ListPackagesHandler)
	r.POST("/packages", gate, hb.Catalog.CreatePackageHandler)
	r.GET("/package/:id", hb.Catalog.GetPackageHandler)
	r.GET("/highestPricePackages", hb.Catalog.HighestPricePackagesHandler)

	r.POST("/stories", gate, hb.Catalog.CreateStoryHandler)
	r.GET("/stories", hb.Catalog.ListStoriesHandler)
	r.GET("/limitedStories", hb.Catalog.LimitedStoriesHandler)
	r.GET("/featuredStories", hb.Catalog.FeaturedStoriesHandler)
}

// RegisterBookingRoutes registers booking and wishlist endpoints. The
// /wishlist/accept and /wishlist/reject paths transition bookings; the naming
// is part of the frozen API surface.
func RegisterBookingRoutes(r *gin.Engine, gate gin.HandlerFunc, hb *handlers.HandlerBundle) {
	r.POST("/bookings", gate, hb.Booking.CreateBookingHandler)
	r.GET("/bookings", gate, hb.Booking.ListBookingsHandler)
	r.DELETE("/booking/:id", gate, hb.Booking.CancelBookingHandler)
	r.GET("/singleBooking/:id", hb.Booking.GetBookingHandler)
	r.GET("/myTours/:name", hb.Booking.MyToursHandler)
	r.PATCH("/wishlist/accept/:id", gate, hb.Booking.AcceptBookingHandler)
	r.PATCH("/wishlist/reject/:id", gate, hb.Booking.RejectBookingHandler)

	r.POST("/wishlist", gate, hb.Booking.AddWishlistHandler)
	r.GET("/wishlist", hb.Booking.ListWishlistHandler)
	r.DELETE("/wishlist/:id", gate, hb.Booking.DeleteWishlistHandler)
}

// RegisterEngagementRoutes registers comment and newsletter endpoints.
func RegisterEngagementRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/comments", hb.Engagement.CreateCommentHandler)
	r.GET("/comments", hb.Engagement.ListCommentsHandler)
	r.POST("/newsletters", hb.Engagement.SubscribeHandler)
}

// RegisterPaymentRoutes registers payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", hb.Payment.CreateIntentHandler)
	r.POST("/payments", hb.Payment.RecordPaymentHandler)
	r.GET("/payments/:bookingId", hb.Payment.PaymentStatusHandler)
	r.GET("/total", hb.Stats.TotalsHandler)
}

// RegisterHealthRoutes registers liveness endpoints.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Trip Tailor Bangladesh server is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	gate := middleware.TokenAuthMiddleware()

	RegisterHealthRoutes(r)
	RegisterUserRoutes(r, gate, hb)
	RegisterCatalogRoutes(r, gate, hb)
	RegisterBookingRoutes(r, gate, hb)
	RegisterEngagementRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
