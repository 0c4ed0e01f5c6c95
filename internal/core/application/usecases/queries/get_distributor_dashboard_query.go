package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDistributorDashboardQueryIsNotConstructed = errors.New(
	"GetDistributorDashboardQuery must be created via NewGetDistributorDashboardQuery constructor",
)

// GetDistributorDashboardQuery retrieves a distributor's shipment summary.
type GetDistributorDashboardQuery struct { //nolint:recvcheck //using for validation
	distributorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDistributorDashboardQuery creates a dashboard query for a distributor.
func NewGetDistributorDashboardQuery(distributorID kernel.UUID) (GetDistributorDashboardQuery, error) {
	q := GetDistributorDashboardQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setDistributorID(distributorID); err != nil {
		return GetDistributorDashboardQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDistributorDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDistributorDashboardQueryIsNotConstructed)
}

// DistributorID returns the identifier of the distributor.
func (q GetDistributorDashboardQuery) DistributorID() kernel.UUID { return q.distributorID }

func (q *GetDistributorDashboardQuery) setDistributorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.distributorID = id
	return nil
}

// GetDistributorDashboardQueryResponse is the distributor dashboard read model.
type GetDistributorDashboardQueryResponse struct {
	DistributorID   kernel.UUID
	TotalShipments  int
	ActiveShipments int
	TotalDelivered  int
	TotalCancelled  int
	RecentDelivered []DeliveredShipmentSummary
}
