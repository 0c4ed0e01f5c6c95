package queries

import (
	"context"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// GetShipmentQueryHandler retrieves one shipment for its distributor.
type GetShipmentQueryHandler struct {
	shipments ports.ShipmentRepository
}

// NewGetShipmentQueryHandler creates a handler for shipment detail queries.
func NewGetShipmentQueryHandler(shipments ports.ShipmentRepository) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{shipments: shipments}
}

// Handle executes the detail query.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	s, err := h.shipments.Get(ctx, query.ShipmentID())
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	if !s.DistributorID().IsEqual(query.DistributorID()) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipmentID", query.ShipmentID())
	}

	return GetShipmentQueryResponse{
		ShipmentID:       s.ID(),
		Status:           s.Status(),
		PickupLocation:   s.PickupLocation(),
		PickupAddress:    s.PickupAddress(),
		DeliveryLocation: s.DeliveryLocation(),
		DeliveryAddress:  s.DeliveryAddress(),
		Measure:          s.Measure(),
		RecipientPhone:   s.Phone(),
		Description:      s.Description(),
		VerificationCode: s.VerificationCode(),
		CourierID:        s.Courier(),
		PickupTime:       s.PickupTime(),
		DeliveryTime:     s.DeliveryTime(),
		CreatedAt:        s.CreatedAt(),
	}, nil
}
