package http

import (
	"net/http"
	"strconv"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every use case the HTTP surface exposes.
type Handlers struct {
	RegisterCourier        commands.RegisterCourierCommandHandler
	RegisterDistributor    commands.RegisterDistributorCommandHandler
	SetCourierAvailability commands.SetCourierAvailabilityCommandHandler
	CreateShipment         commands.CreateShipmentCommandHandler
	AcceptOffer            commands.AcceptOfferCommandHandler
	AdvanceShipment        commands.AdvanceShipmentCommandHandler
	CancelShipment         commands.CancelShipmentCommandHandler
	AddDeliveryNote        commands.AddDeliveryNoteCommandHandler
	AddReview              commands.AddReviewCommandHandler
	UploadDocument         commands.UploadDocumentCommandHandler
	ApproveDocument        commands.ApproveDocumentCommandHandler
	RejectDocument         commands.RejectDocumentCommandHandler

	GetOffers               queries.GetOffersQueryHandler
	TrackShipment           queries.TrackShipmentQueryHandler
	GetShipment             queries.GetShipmentQueryHandler
	GetDistributorShipments queries.GetDistributorShipmentsQueryHandler
	GetCourierDashboard     queries.GetCourierDashboardQueryHandler
	GetDistributorDashboard queries.GetDistributorDashboardQueryHandler
	GetCourierRating        queries.GetCourierRatingQueryHandler
	GetPendingDocuments     queries.GetPendingDocumentsQueryHandler
	GetAvailableCouriers    queries.GetAvailableCouriersQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server over the given use case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterCourier handles POST /api/v1/couriers - registers a new courier.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var request RegisterCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	transport, err := parseTransport(request.Transport)
	if err != nil {
		return respondError(ctx, err)
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCourierCommand(courierID, request.Name, request.Phone, transport)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RegisterCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: courierID.String()})
}

// RegisterDistributor handles POST /api/v1/distributors - registers a new distributor.
func (s *Server) RegisterDistributor(ctx echo.Context) error {
	var request RegisterDistributorRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	distributorID := kernel.NewUUID()
	cmd, err := commands.NewRegisterDistributorCommand(
		distributorID, request.Name, request.Phone, addressFromPayload(request.Address))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RegisterDistributor.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: distributorID.String()})
}

// SetCourierStatus handles POST /api/v1/couriers/status - updates the calling
// courier's availability and position.
func (s *Server) SetCourierStatus(ctx echo.Context) error {
	var request SetCourierStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	status, err := parseCourierStatus(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	location, err := kernel.NewLocation(request.Latitude, request.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetCourierAvailabilityCommand(courierIDFromContext(ctx), status, location)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.SetCourierAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCourierDashboard handles GET /api/v1/couriers/dashboard.
func (s *Server) GetCourierDashboard(ctx echo.Context) error {
	query, err := queries.NewGetCourierDashboardQuery(courierIDFromContext(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	dashboard, err := s.handlers.GetCourierDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierDashboardResponse{
		CourierID:       dashboard.CourierID.String(),
		AverageRating:   dashboard.AverageRating,
		TotalReviews:    dashboard.TotalReviews,
		TotalDelivered:  dashboard.TotalDelivered,
		ActiveShipments: dashboard.ActiveShipments,
		RecentDelivered: deliveredSummariesToPayload(dashboard.RecentDelivered),
	})
}

// GetOffers handles GET /api/v1/couriers/offers - lists claimable shipments
// near the calling courier. Order is unspecified.
func (s *Server) GetOffers(ctx echo.Context) error {
	query, err := queries.NewGetOffersQuery(courierIDFromContext(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	offers, err := s.handlers.GetOffers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OfferResponse, len(offers))
	for i, offer := range offers {
		response[i] = OfferResponse{
			ShipmentID:       offer.ShipmentID.String(),
			PickupAddress:    addressToPayload(offer.PickupAddress),
			DeliveryAddress:  addressToPayload(offer.DeliveryAddress),
			Description:      offer.Description,
			DistanceToPickup: offer.DistanceToPickup,
			TotalDistance:    offer.TotalDistance,
			EstimatedEarning: offer.EstimatedEarning,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOffer handles POST /api/v1/offers/:id/accept - claims a shipment for
// the calling courier. Losing a race for the shipment yields a 409.
func (s *Server) AcceptOffer(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid shipment id")
	}

	cmd, err := commands.NewAcceptOfferCommand(shipmentID, courierIDFromContext(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AcceptOffer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkShipmentPickedUp handles POST /api/v1/shipments/:id/status/picked-up.
func (s *Server) MarkShipmentPickedUp(ctx echo.Context) error {
	return s.advanceShipment(ctx, shipment.PickedUp)
}

// MarkShipmentDelivered handles POST /api/v1/shipments/:id/status/delivered.
func (s *Server) MarkShipmentDelivered(ctx echo.Context) error {
	return s.advanceShipment(ctx, shipment.Delivered)
}

func (s *Server) advanceShipment(ctx echo.Context, target shipment.Status) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid shipment id")
	}

	cmd, err := commands.NewAdvanceShipmentCommand(shipmentID, courierIDFromContext(ctx), target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AdvanceShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDistributorDashboard handles GET /api/v1/distributors/dashboard.
func (s *Server) GetDistributorDashboard(ctx echo.Context) error {
	query, err := queries.NewGetDistributorDashboardQuery(distributorIDFromContext(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	dashboard, err := s.handlers.GetDistributorDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DistributorDashboardResponse{
		DistributorID:   dashboard.DistributorID.String(),
		TotalShipments:  dashboard.TotalShipments,
		ActiveShipments: dashboard.ActiveShipments,
		TotalDelivered:  dashboard.TotalDelivered,
		TotalCancelled:  dashboard.TotalCancelled,
		RecentDelivered: deliveredSummariesToPayload(dashboard.RecentDelivered),
	})
}

// CreateShipment handles POST /api/v1/shipments - registers a new shipment
// for the calling distributor.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request CreateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	pickupLocation, err := kernel.NewLocation(request.Pickup.Latitude, request.Pickup.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}
	deliveryLocation, err := kernel.NewLocation(request.Delivery.Latitude, request.Delivery.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}

	size, err := parseSizeClass(request.Measure.Size)
	if err != nil {
		return respondError(ctx, err)
	}
	measure, err := shipment.NewMeasure(
		request.Measure.Weight, request.Measure.Width,
		request.Measure.Length, request.Measure.Height, size)
	if err != nil {
		return respondError(ctx, err)
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID, distributorIDFromContext(ctx),
		pickupLocation, addressFromPayload(request.Pickup.Address),
		deliveryLocation, addressFromPayload(request.Delivery.Address),
		measure, request.RecipientPhone, request.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID.String()})
}

// GetShipments handles GET /api/v1/shipments - lists the calling
// distributor's shipments, newest first.
func (s *Server) GetShipments(ctx echo.Context) error {
	query, err := queries.NewGetDistributorShipmentsQuery(distributorIDFromContext(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	shipments, err := s.handlers.GetDistributorShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ShipmentSummaryResponse, len(shipments))
	for i, item := range shipments {
		summary := ShipmentSummaryResponse{
			ID:               item.ShipmentID.String(),
			Status:           item.Status.String(),
			PickupAddress:    addressToPayload(item.PickupAddress),
			DeliveryAddress:  addressToPayload(item.DeliveryAddress),
			VerificationCode: item.VerificationCode,
			CreatedAt:        item.CreatedAt,
		}
		if item.CourierID != nil {
			id := item.CourierID.String()
			summary.CourierID = &id
		}
		response[i] = summary
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipment handles GET /api/v1/shipments/:id - returns the full shipment
// view. Shipments of other distributors read as not found.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(shipmentID, distributorIDFromContext(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.handlers.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentDetailToPayload(detail))
}

// CancelShipment handles POST /api/v1/shipments/:id/cancel.
func (s *Server) CancelShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid shipment id")
	}

	cmd, err := commands.NewCancelShipmentCommand(shipmentID, distributorIDFromContext(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackShipment handles GET /api/v1/track/:code - the public tracking page.
func (s *Server) TrackShipment(ctx echo.Context) error {
	query, err := queries.NewTrackShipmentQuery(ctx.Param("code"))
	if err != nil {
		return respondError(ctx, err)
	}

	tracking, err := s.handlers.TrackShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackResponse{
		Status: tracking.Status.String(),
		CurrentLocation: LocationPayload{
			Latitude:  tracking.CurrentLocation.Latitude(),
			Longitude: tracking.CurrentLocation.Longitude(),
		},
		DeliveryAddress:  addressToPayload(tracking.DeliveryAddress),
		CourierName:      tracking.CourierName,
		CourierPhone:     tracking.CourierPhone,
		DeliveredAt:      tracking.DeliveredAt,
		DeliveryNote:     tracking.DeliveryNote,
		EstimatedMinutes: tracking.EstimatedMinutes,
	})
}

// AddDeliveryNote handles POST /api/v1/track/:code/note.
func (s *Server) AddDeliveryNote(ctx echo.Context) error {
	var request AddDeliveryNoteRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewAddDeliveryNoteCommand(ctx.Param("code"), request.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AddDeliveryNote.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddReview handles POST /api/v1/track/:code/review - one review per
// delivered shipment, by verification code.
func (s *Server) AddReview(ctx echo.Context) error {
	var request AddReviewRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	reviewer, err := parseReviewer(request.Reviewer)
	if err != nil {
		return respondError(ctx, err)
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewAddReviewCommand(
		reviewID, ctx.Param("code"), request.Rating, request.Comment, reviewer)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AddReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: reviewID.String()})
}

// GetCourierRating handles GET /api/v1/couriers/:id/rating - the public
// rating summary of a courier.
func (s *Server) GetCourierRating(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid courier id")
	}

	query, err := queries.NewGetCourierRatingQuery(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	rating, err := s.handlers.GetCourierRating.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RatingResponse{
		CourierID:     rating.CourierID.String(),
		AverageRating: rating.AverageRating,
		TotalReviews:  rating.TotalReviews,
	})
}

// UploadDocument handles POST /api/v1/documents - registers an onboarding
// document for verification.
func (s *Server) UploadDocument(ctx echo.Context) error {
	var request UploadDocumentRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(request.OwnerID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid owner id")
	}
	ownerRole, err := parseOwnerRole(request.OwnerRole)
	if err != nil {
		return respondError(ctx, err)
	}
	kind, err := parseDocumentKind(request.Kind)
	if err != nil {
		return respondError(ctx, err)
	}

	documentID := kernel.NewUUID()
	cmd, err := commands.NewUploadDocumentCommand(documentID, ownerID, ownerRole, kind, request.FileURL)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UploadDocument.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: documentID.String()})
}

// GetPendingDocuments handles GET /api/v1/admin/documents/pending - the
// verification queue, oldest upload first.
func (s *Server) GetPendingDocuments(ctx echo.Context) error {
	pending, err := s.handlers.GetPendingDocuments.Handle(
		ctx.Request().Context(), queries.NewGetPendingDocumentsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PendingDocumentResponse, len(pending))
	for i, doc := range pending {
		response[i] = PendingDocumentResponse{
			ID:         doc.ID.String(),
			OwnerID:    doc.OwnerID.String(),
			OwnerRole:  doc.OwnerRole.String(),
			Kind:       doc.Kind.String(),
			FileURL:    doc.FileURL,
			UploadedAt: doc.UploadedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ApproveDocument handles POST /api/v1/admin/documents/:id/approve.
func (s *Server) ApproveDocument(ctx echo.Context) error {
	documentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid document id")
	}

	cmd, err := commands.NewApproveDocumentCommand(documentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ApproveDocument.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectDocument handles POST /api/v1/admin/documents/:id/reject.
func (s *Server) RejectDocument(ctx echo.Context) error {
	documentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid document id")
	}

	var request RejectDocumentRequest
	if err = ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewRejectDocumentCommand(documentID, request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RejectDocument.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableCouriers handles GET /api/internal/couriers/available - the
// service-to-service list of enabled Active couriers. With latitude and
// longitude query parameters the listing is restricted to a radius around
// that point (radius_km, default 10).
func (s *Server) GetAvailableCouriers(ctx echo.Context) error {
	query, err := availableCouriersQuery(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	couriers, err := s.handlers.GetAvailableCouriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AvailableCourierResponse, len(couriers))
	for i, item := range couriers {
		response[i] = AvailableCourierResponse{
			ID:        item.ID.String(),
			Name:      item.Name,
			Phone:     item.Phone,
			Transport: item.Transport.String(),
			Location: LocationPayload{
				Latitude:  item.Location.Latitude(),
				Longitude: item.Location.Longitude(),
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DefaultAvailableRadiusKm is the proximity radius applied when the internal
// fleet listing is filtered by point without an explicit radius.
const DefaultAvailableRadiusKm = 10.0

func availableCouriersQuery(ctx echo.Context) (queries.GetAvailableCouriersQuery, error) {
	latParam := ctx.QueryParam("latitude")
	lonParam := ctx.QueryParam("longitude")
	if latParam == "" && lonParam == "" {
		return queries.NewGetAvailableCouriersQuery(), nil
	}

	latitude, err := strconv.ParseFloat(latParam, 64)
	if err != nil {
		return queries.GetAvailableCouriersQuery{}, errs.NewValueIsInvalidErrorWithCause("latitude", err)
	}
	longitude, err := strconv.ParseFloat(lonParam, 64)
	if err != nil {
		return queries.GetAvailableCouriersQuery{}, errs.NewValueIsInvalidErrorWithCause("longitude", err)
	}

	radiusKm := DefaultAvailableRadiusKm
	if radiusParam := ctx.QueryParam("radius_km"); radiusParam != "" {
		radiusKm, err = strconv.ParseFloat(radiusParam, 64)
		if err != nil {
			return queries.GetAvailableCouriersQuery{}, errs.NewValueIsInvalidErrorWithCause("radius_km", err)
		}
	}

	location, err := kernel.NewLocation(latitude, longitude)
	if err != nil {
		return queries.GetAvailableCouriersQuery{}, err
	}

	return queries.NewGetAvailableCouriersNearQuery(location, radiusKm)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
