package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetCourierDashboardQueryIsNotConstructed = errors.New(
	"GetCourierDashboardQuery must be created via NewGetCourierDashboardQuery constructor",
)

// GetCourierDashboardQuery retrieves a courier's work summary: reputation,
// delivery totals, what is currently on their hands, and the most recent
// completed deliveries.
type GetCourierDashboardQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierDashboardQuery creates a dashboard query for a courier.
func NewGetCourierDashboardQuery(courierID kernel.UUID) (GetCourierDashboardQuery, error) {
	q := GetCourierDashboardQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCourierID(courierID); err != nil {
		return GetCourierDashboardQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierDashboardQueryIsNotConstructed)
}

// CourierID returns the identifier of the courier.
func (q GetCourierDashboardQuery) CourierID() kernel.UUID { return q.courierID }

func (q *GetCourierDashboardQuery) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.courierID = id
	return nil
}

// DeliveredShipmentSummary is one completed delivery in a dashboard.
type DeliveredShipmentSummary struct {
	ShipmentID      kernel.UUID
	DeliveryAddress kernel.Address
	DeliveredAt     time.Time
}

// GetCourierDashboardQueryResponse is the courier dashboard read model.
type GetCourierDashboardQueryResponse struct {
	CourierID       kernel.UUID
	AverageRating   float64
	TotalReviews    int
	TotalDelivered  int
	ActiveShipments int
	RecentDelivered []DeliveredShipmentSummary
}
