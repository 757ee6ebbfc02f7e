package handlers

// HandlerBundle aggregates the handler groups so routes can be registered
// from a single value assembled in main.
type HandlerBundle struct {
	Auth       *AuthHandler
	User       *UserHandler
	Catalog    *CatalogHandler
	Booking    *BookingHandler
	Engagement *EngagementHandler
	Payment    *PaymentHandler
	Stats      *StatsHandler
}
