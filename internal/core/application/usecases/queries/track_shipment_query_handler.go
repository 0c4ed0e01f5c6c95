package queries

import (
	"context"

	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// TrackShipmentQueryHandler builds the public tracking view of a shipment.
type TrackShipmentQueryHandler struct {
	shipments  ports.ShipmentRepository
	couriers   ports.CourierRepository
	calculator services.OfferCalculator
}

// NewTrackShipmentQueryHandler creates a handler for tracking queries.
func NewTrackShipmentQueryHandler(
	shipments ports.ShipmentRepository,
	couriers ports.CourierRepository,
) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{
		shipments:  shipments,
		couriers:   couriers,
		calculator: services.NewOfferCalculator(),
	}
}

// Handle executes the tracking query.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (TrackShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	tracked, err := h.shipments.GetByVerificationCode(ctx, query.VerificationCode())
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	response := TrackShipmentQueryResponse{
		Status:          tracked.Status(),
		CurrentLocation: tracked.PickupLocation(),
		DeliveryAddress: tracked.DeliveryAddress(),
		DeliveredAt:     tracked.DeliveryTime(),
		DeliveryNote:    tracked.Description(),
	}

	if tracked.Courier() == nil {
		return response, nil
	}

	assignee, err := h.couriers.Get(ctx, *tracked.Courier())
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}
	response.CourierName = assignee.Name()
	response.CourierPhone = assignee.Phone()

	if assignee.Location() == nil {
		return response, nil
	}
	response.CurrentLocation = *assignee.Location()

	if tracked.Status() == shipment.PickedUp {
		minutes, etaErr := h.calculator.EstimatedMinutesRemaining(
			*assignee.Location(), tracked.DeliveryLocation())
		if etaErr != nil {
			return TrackShipmentQueryResponse{}, etaErr
		}
		response.EstimatedMinutes = &minutes
	}

	return response, nil
}
