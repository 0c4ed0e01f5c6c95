package queries

import (
	"context"

	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/core/ports"
)

// GetDistributorDashboardQueryHandler assembles the distributor dashboard
// from the shipment repository.
type GetDistributorDashboardQueryHandler struct {
	shipmentRepository ports.ShipmentRepository
}

// NewGetDistributorDashboardQueryHandler creates a handler for distributor dashboards.
func NewGetDistributorDashboardQueryHandler(
	shipmentRepository ports.ShipmentRepository,
) GetDistributorDashboardQueryHandler {
	return GetDistributorDashboardQueryHandler{shipmentRepository: shipmentRepository}
}

// Handle executes the dashboard query.
func (h GetDistributorDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDistributorDashboardQuery,
) (GetDistributorDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDistributorDashboardQueryResponse{}, err
	}

	shipments, err := h.shipmentRepository.GetAllByDistributor(ctx, query.DistributorID())
	if err != nil {
		return GetDistributorDashboardQueryResponse{}, err
	}

	response := GetDistributorDashboardQueryResponse{
		DistributorID:   query.DistributorID(),
		TotalShipments:  len(shipments),
		RecentDelivered: recentDelivered(shipments),
	}
	for _, s := range shipments {
		switch s.Status() {
		case shipment.Created, shipment.Assigned, shipment.PickedUp:
			response.ActiveShipments++
		case shipment.Delivered:
			response.TotalDelivered++
		case shipment.Cancelled:
			response.TotalCancelled++
		}
	}

	return response, nil
}
