package review

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// ErrReviewIsNotConstructed is returned when using an improperly initialized Review.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Reviewer identifies who left the review.
type Reviewer int

const (
	// ReviewerUnknown represents an invalid or undefined reviewer.
	ReviewerUnknown Reviewer = iota
	// ReviewerCustomer is the recipient of the shipment.
	ReviewerCustomer
	// ReviewerDistributor is the distributor that created the shipment.
	ReviewerDistributor
)

func getReviewerStrings() map[Reviewer]string {
	return map[Reviewer]string{
		ReviewerUnknown:     "Unknown",
		ReviewerCustomer:    "Customer",
		ReviewerDistributor: "Distributor",
	}
}

// Validate checks if the Reviewer is one of the defined parties.
func (r Reviewer) Validate() error {
	switch r {
	case ReviewerCustomer, ReviewerDistributor:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("reviewer is invalid",
			fmt.Errorf("%d is not a valid reviewer", r))
	}
}

// String returns the human-readable name of the reviewer.
func (r Reviewer) String() string {
	if str, ok := getReviewerStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// Review represents a single immutable rating of a courier for one shipment.
type Review struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	courierID  kernel.UUID
	rating     int
	comment    string
	reviewer   Reviewer
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewReview creates a Review for a delivered shipment.
// The comment may be empty, the rating must be between MinRating and MaxRating.
func NewReview(id, shipmentID, courierID kernel.UUID, rating int, comment string, reviewer Reviewer) (*Review, error) {
	r := &Review{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setShipmentID(shipmentID),
		r.setCourierID(courierID),
		r.setRating(rating),
		r.setReviewer(reviewer),
	); err != nil {
		return nil, err
	}
	r.comment = comment

	return r, nil
}

// RestoreReview reconstructs a Review aggregate from persistent storage.
func RestoreReview(
	id, shipmentID, courierID kernel.UUID,
	rating int,
	comment string,
	reviewer Reviewer,
	createdAt time.Time,
) (*Review, error) {
	r, err := NewReview(id, shipmentID, courierID, rating, comment, reviewer)
	if err != nil {
		return nil, err
	}
	r.createdAt = createdAt
	return r, nil
}

// Validate ensures the Review was properly constructed.
func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

// IsEqual compares two reviews by their unique identifiers.
func (r *Review) IsEqual(other *Review) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID { return r.id }

// ShipmentID returns the identifier of the reviewed shipment.
func (r *Review) ShipmentID() kernel.UUID { return r.shipmentID }

// CourierID returns the identifier of the rated courier.
func (r *Review) CourierID() kernel.UUID { return r.courierID }

// Rating returns the score, between MinRating and MaxRating inclusive.
func (r *Review) Rating() int { return r.rating }

// Comment returns the free-form comment, possibly empty.
func (r *Review) Comment() string { return r.comment }

// Reviewer returns who left the review.
func (r *Review) Reviewer() Reviewer { return r.reviewer }

// CreatedAt returns when the review was recorded.
func (r *Review) CreatedAt() time.Time { return r.createdAt }

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	r.shipmentID = shipmentID
	return nil
}

func (r *Review) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	r.courierID = courierID
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	r.rating = rating
	return nil
}

func (r *Review) setReviewer(reviewer Reviewer) error {
	if err := reviewer.Validate(); err != nil {
		return err
	}
	r.reviewer = reviewer
	return nil
}
