package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetDistributorShipmentsQueryHandler lists a distributor's shipments.
type GetDistributorShipmentsQueryHandler struct {
	shipments ports.ShipmentRepository
}

// NewGetDistributorShipmentsQueryHandler creates a handler for shipment listings.
func NewGetDistributorShipmentsQueryHandler(shipments ports.ShipmentRepository) GetDistributorShipmentsQueryHandler {
	return GetDistributorShipmentsQueryHandler{shipments: shipments}
}

// Handle executes the listing query, newest shipment first.
func (h GetDistributorShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetDistributorShipmentsQuery,
) ([]GetDistributorShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments, err := h.shipments.GetAllByDistributor(ctx, query.DistributorID())
	if err != nil {
		return nil, err
	}

	responses := make([]GetDistributorShipmentsQueryResponse, 0, len(shipments))
	for _, s := range shipments {
		responses = append(responses, GetDistributorShipmentsQueryResponse{
			ShipmentID:       s.ID(),
			Status:           s.Status(),
			PickupAddress:    s.PickupAddress(),
			DeliveryAddress:  s.DeliveryAddress(),
			VerificationCode: s.VerificationCode(),
			CourierID:        s.Courier(),
			CreatedAt:        s.CreatedAt(),
		})
	}

	return responses, nil
}
