package http

import "github.com/labstack/echo/v4"

// RegisterRoutes wires every endpoint into the echo instance. Courier and
// distributor groups read their caller identity from gateway headers; the
// internal group is guarded by a shared API key.
func (s *Server) RegisterRoutes(e *echo.Echo, internalAPIKey string) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	// Registration and public endpoints carry no identity headers.
	api.POST("/couriers", s.RegisterCourier)
	api.POST("/distributors", s.RegisterDistributor)
	api.GET("/couriers/:id/rating", s.GetCourierRating)
	api.GET("/track/:code", s.TrackShipment)
	api.POST("/track/:code/note", s.AddDeliveryNote)
	api.POST("/track/:code/review", s.AddReview)

	couriers := api.Group("", CourierIdentity())
	couriers.POST("/couriers/status", s.SetCourierStatus)
	couriers.GET("/couriers/dashboard", s.GetCourierDashboard)
	couriers.GET("/couriers/offers", s.GetOffers)
	couriers.POST("/offers/:id/accept", s.AcceptOffer)
	couriers.POST("/shipments/:id/status/picked-up", s.MarkShipmentPickedUp)
	couriers.POST("/shipments/:id/status/delivered", s.MarkShipmentDelivered)

	distributors := api.Group("", DistributorIdentity())
	distributors.GET("/distributors/dashboard", s.GetDistributorDashboard)
	distributors.POST("/shipments", s.CreateShipment)
	distributors.GET("/shipments", s.GetShipments)
	distributors.GET("/shipments/:id", s.GetShipment)
	distributors.POST("/shipments/:id/cancel", s.CancelShipment)

	admin := api.Group("/admin")
	admin.GET("/documents/pending", s.GetPendingDocuments)
	admin.POST("/documents/:id/approve", s.ApproveDocument)
	admin.POST("/documents/:id/reject", s.RejectDocument)
	api.POST("/documents", s.UploadDocument)

	internal := e.Group("/api/internal", APIKey(internalAPIKey))
	internal.GET("/couriers/available", s.GetAvailableCouriers)
}
