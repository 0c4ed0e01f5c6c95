package commands

import (
	"context"

	"dispatch/internal/core/domain/model/review"
	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/pkg/errs"
)

// AddReviewCommandHandler handles recording reviews.
//
// Business rules:
//   - The shipment must be Delivered; earlier stages cannot be reviewed.
//   - The review targets the courier who delivered the shipment.
//   - One review per shipment. The repository enforces uniqueness, a second
//     insert comes back as an operation-not-allowed error.
type AddReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewAddReviewCommandHandler creates a handler for recording reviews.
func NewAddReviewCommandHandler(uowFactory ReviewUoWFactory) AddReviewCommandHandler {
	return AddReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
func (h *AddReviewCommandHandler) Handle(ctx context.Context, cmd AddReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewed, err := uow.ShipmentRepository().GetByVerificationCode(ctx, cmd.VerificationCode())
	if err != nil {
		return err
	}

	if reviewed.Status() != shipment.Delivered {
		return errs.NewOperationNotAllowedError("shipment has not been delivered yet")
	}

	courierID := reviewed.Courier()
	if courierID == nil {
		return errs.NewOperationNotAllowedError("shipment has no courier assigned")
	}

	aggregate, err := review.NewReview(
		cmd.ReviewID(), reviewed.ID(), *courierID,
		cmd.Rating(), cmd.Comment(), cmd.Reviewer())
	if err != nil {
		return err
	}

	if err = uow.ReviewRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
