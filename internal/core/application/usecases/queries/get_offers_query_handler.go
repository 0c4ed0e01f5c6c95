package queries

import (
	"context"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// GetOffersQueryHandler computes the offer list for a courier.
//
// Business rules:
//   - A courier that has not passed document verification gets a
//     user-not-active error, distinguishable from an empty list.
//   - Offers exist only while the courier's availability accepts work
//     (Active or DestinationBased) and a position is known; otherwise the
//     result is an empty list.
//   - Only Created shipments whose pickup point is within OfferRadiusKm of
//     the courier are offered. No ordering is applied.
type GetOffersQueryHandler struct {
	couriers   ports.CourierRepository
	shipments  ports.ShipmentRepository
	calculator services.OfferCalculator
}

// NewGetOffersQueryHandler creates a handler for offer queries.
func NewGetOffersQueryHandler(
	couriers ports.CourierRepository,
	shipments ports.ShipmentRepository,
) GetOffersQueryHandler {
	return GetOffersQueryHandler{
		couriers:   couriers,
		shipments:  shipments,
		calculator: services.NewOfferCalculator(),
	}
}

// Handle executes the offer query.
func (h GetOffersQueryHandler) Handle(ctx context.Context, query GetOffersQuery) ([]GetOffersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	courier, err := h.couriers.Get(ctx, query.CourierID())
	if err != nil {
		return nil, err
	}

	if !courier.Enabled() {
		return nil, errs.NewUserNotActiveError(query.CourierID())
	}

	if !courier.CanSeeOffers() {
		return []GetOffersQueryResponse{}, nil
	}

	nearby, err := h.shipments.GetAllCreatedNear(ctx, *courier.Location(), OfferRadiusKm)
	if err != nil {
		return nil, err
	}

	offers, err := h.calculator.CalculateAll(nearby, *courier.Location())
	if err != nil {
		return nil, err
	}

	responses := make([]GetOffersQueryResponse, 0, len(offers))
	for _, offer := range offers {
		responses = append(responses, GetOffersQueryResponse{
			ShipmentID:       offer.Shipment.ID(),
			PickupAddress:    offer.Shipment.PickupAddress(),
			DeliveryAddress:  offer.Shipment.DeliveryAddress(),
			Description:      offer.Shipment.Description(),
			DistanceToPickup: offer.DistanceToPickup,
			TotalDistance:    offer.TotalDistance,
			EstimatedEarning: offer.EstimatedEarning,
		})
	}

	return responses, nil
}
