package queries

import (
	"context"
	"sort"

	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/core/ports"
)

// RecentDeliveredLimit caps the completed-deliveries list on dashboards.
const RecentDeliveredLimit = 5

// GetCourierDashboardQueryHandler assembles the courier dashboard from the
// shipment and review repositories.
type GetCourierDashboardQueryHandler struct {
	shipmentRepository ports.ShipmentRepository
	reviewRepository   ports.ReviewRepository
}

// NewGetCourierDashboardQueryHandler creates a handler for courier dashboards.
func NewGetCourierDashboardQueryHandler(
	shipmentRepository ports.ShipmentRepository,
	reviewRepository ports.ReviewRepository,
) GetCourierDashboardQueryHandler {
	return GetCourierDashboardQueryHandler{
		shipmentRepository: shipmentRepository,
		reviewRepository:   reviewRepository,
	}
}

// Handle executes the dashboard query.
func (h GetCourierDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetCourierDashboardQuery,
) (GetCourierDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierDashboardQueryResponse{}, err
	}

	average, err := h.reviewRepository.AverageRatingByCourier(ctx, query.CourierID())
	if err != nil {
		return GetCourierDashboardQueryResponse{}, err
	}

	reviews, err := h.reviewRepository.GetAllByCourier(ctx, query.CourierID())
	if err != nil {
		return GetCourierDashboardQueryResponse{}, err
	}

	shipments, err := h.shipmentRepository.GetAllByCourier(ctx, query.CourierID())
	if err != nil {
		return GetCourierDashboardQueryResponse{}, err
	}

	response := GetCourierDashboardQueryResponse{
		CourierID:       query.CourierID(),
		AverageRating:   average,
		TotalReviews:    len(reviews),
		RecentDelivered: recentDelivered(shipments),
	}
	for _, s := range shipments {
		switch s.Status() {
		case shipment.Delivered:
			response.TotalDelivered++
		case shipment.Assigned, shipment.PickedUp:
			response.ActiveShipments++
		}
	}

	return response, nil
}

// recentDelivered projects the delivered shipments in the slice into
// summaries, most recent delivery first, capped at RecentDeliveredLimit.
func recentDelivered(shipments []*shipment.Shipment) []DeliveredShipmentSummary {
	delivered := make([]*shipment.Shipment, 0, len(shipments))
	for _, s := range shipments {
		if s.Status() == shipment.Delivered && s.DeliveryTime() != nil {
			delivered = append(delivered, s)
		}
	}

	sort.Slice(delivered, func(i, j int) bool {
		return delivered[i].DeliveryTime().After(*delivered[j].DeliveryTime())
	})
	if len(delivered) > RecentDeliveredLimit {
		delivered = delivered[:RecentDeliveredLimit]
	}

	summaries := make([]DeliveredShipmentSummary, 0, len(delivered))
	for _, s := range delivered {
		summaries = append(summaries, DeliveredShipmentSummary{
			ShipmentID:      s.ID(),
			DeliveryAddress: s.DeliveryAddress(),
			DeliveredAt:     *s.DeliveryTime(),
		})
	}

	return summaries
}
