package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrTrackShipmentQueryIsNotConstructed = errors.New(
		"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
	)
	ErrTrackingCodeIsRequired = errs.NewValueIsRequiredError("verificationCode")
)

// TrackShipmentQuery retrieves the public tracking view of a shipment,
// addressed by its verification code. No authentication is required;
// knowing the code is the capability.
type TrackShipmentQuery struct { //nolint:recvcheck //using for validation
	verificationCode string

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a tracking query for a verification code.
func NewTrackShipmentQuery(verificationCode string) (TrackShipmentQuery, error) {
	q := TrackShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setVerificationCode(verificationCode); err != nil {
		return TrackShipmentQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// VerificationCode returns the tracked shipment's handover code.
func (q TrackShipmentQuery) VerificationCode() string { return q.verificationCode }

func (q *TrackShipmentQuery) setVerificationCode(code string) error {
	if code == "" {
		return ErrTrackingCodeIsRequired
	}
	q.verificationCode = code
	return nil
}

// TrackShipmentQueryResponse is the public tracking read model.
// CurrentLocation is the courier's last reported position when the shipment
// has an assigned courier with a known position, otherwise the pickup point.
// EstimatedMinutes is set only while the cargo is out for delivery and the
// courier's position is known.
type TrackShipmentQueryResponse struct {
	Status           shipment.Status
	CurrentLocation  kernel.Location
	DeliveryAddress  kernel.Address
	CourierName      string
	CourierPhone     string
	DeliveredAt      *time.Time
	DeliveryNote     string
	EstimatedMinutes *float64
}
