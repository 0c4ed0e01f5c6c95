package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetCourierRatingQueryHandler computes a courier's reputation.
type GetCourierRatingQueryHandler struct {
	reviewRepository ports.ReviewRepository
}

// NewGetCourierRatingQueryHandler creates a handler for rating queries.
func NewGetCourierRatingQueryHandler(reviewRepository ports.ReviewRepository) GetCourierRatingQueryHandler {
	return GetCourierRatingQueryHandler{reviewRepository: reviewRepository}
}

// Handle executes the rating query. A courier with no reviews gets an
// average of 0.0, not an error.
func (h GetCourierRatingQueryHandler) Handle(
	ctx context.Context,
	query GetCourierRatingQuery,
) (GetCourierRatingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierRatingQueryResponse{}, err
	}

	average, err := h.reviewRepository.AverageRatingByCourier(ctx, query.CourierID())
	if err != nil {
		return GetCourierRatingQueryResponse{}, err
	}

	reviews, err := h.reviewRepository.GetAllByCourier(ctx, query.CourierID())
	if err != nil {
		return GetCourierRatingQueryResponse{}, err
	}

	return GetCourierRatingQueryResponse{
		CourierID:     query.CourierID(),
		AverageRating: average,
		TotalReviews:  len(reviews),
	}, nil
}
