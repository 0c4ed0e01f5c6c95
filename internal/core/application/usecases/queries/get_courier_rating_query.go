package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetCourierRatingQueryIsNotConstructed = errors.New(
	"GetCourierRatingQuery must be created via NewGetCourierRatingQuery constructor",
)

// GetCourierRatingQuery retrieves a courier's reputation: the plain average
// of their ratings and the number of reviews behind it. The average is 0.0
// for couriers with no reviews.
type GetCourierRatingQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierRatingQuery creates a rating query for a courier.
func NewGetCourierRatingQuery(courierID kernel.UUID) (GetCourierRatingQuery, error) {
	q := GetCourierRatingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCourierID(courierID); err != nil {
		return GetCourierRatingQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierRatingQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierRatingQueryIsNotConstructed)
}

// CourierID returns the identifier of the rated courier.
func (q GetCourierRatingQuery) CourierID() kernel.UUID { return q.courierID }

func (q *GetCourierRatingQuery) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.courierID = id
	return nil
}

// GetCourierRatingQueryResponse is the reputation read model.
type GetCourierRatingQueryResponse struct {
	CourierID     kernel.UUID
	AverageRating float64
	TotalReviews  int
}
