package queries

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/ports"
)

// GetAvailableCouriersQueryHandler retrieves the available courier fleet.
type GetAvailableCouriersQueryHandler struct {
	courierRepository ports.CourierRepository
}

// NewGetAvailableCouriersQueryHandler creates a handler for fleet queries.
func NewGetAvailableCouriersQueryHandler(courierRepository ports.CourierRepository) GetAvailableCouriersQueryHandler {
	return GetAvailableCouriersQueryHandler{courierRepository: courierRepository}
}

// Handle executes the fleet query. A courier is listed when the account is
// enabled, the status is Active, and a position is known.
func (h GetAvailableCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableCouriersQuery,
) ([]GetAvailableCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var couriers []*courier.Courier
	var err error
	if near := query.Near(); near != nil {
		couriers, err = h.courierRepository.GetActiveNear(ctx, *near, query.RadiusKm())
	} else {
		couriers, err = h.courierRepository.GetAllAvailable(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]GetAvailableCouriersQueryResponse, 0, len(couriers))
	for _, c := range couriers {
		responses = append(responses, GetAvailableCouriersQueryResponse{
			ID:        c.ID(),
			Name:      c.Name(),
			Phone:     c.Phone(),
			Transport: c.Transport(),
			Location:  *c.Location(),
		})
	}

	return responses, nil
}
