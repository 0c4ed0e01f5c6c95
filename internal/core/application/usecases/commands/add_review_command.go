package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/review"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAddReviewCommandIsNotConstructed = errors.New(
		"AddReviewCommand must be created via NewAddReviewCommand constructor",
	)
	ErrVerificationCodeIsRequired = errs.NewValueIsRequiredError("verificationCode")
)

// AddReviewCommand represents a rating left for the courier of a delivered
// shipment, addressed by the shipment's public verification code.
type AddReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID         kernel.UUID
	verificationCode string
	rating           int
	comment          string
	reviewer         review.Reviewer

	guard guard.ConstructorGuard
}

// NewAddReviewCommand creates a command to record a review.
func NewAddReviewCommand(
	reviewID kernel.UUID,
	verificationCode string,
	rating int,
	comment string,
	reviewer review.Reviewer,
) (AddReviewCommand, error) {
	cmd := AddReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setVerificationCode(verificationCode),
		cmd.setRating(rating),
		cmd.setReviewer(reviewer),
	); err != nil {
		return AddReviewCommand{}, err
	}
	cmd.comment = comment

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddReviewCommand) Validate() error {
	return c.guard.Validate(ErrAddReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier the new review will be created with.
func (c AddReviewCommand) ReviewID() kernel.UUID { return c.reviewID }

// VerificationCode returns the reviewed shipment's handover code.
func (c AddReviewCommand) VerificationCode() string { return c.verificationCode }

// Rating returns the score being given.
func (c AddReviewCommand) Rating() int { return c.rating }

// Comment returns the free-form comment, possibly empty.
func (c AddReviewCommand) Comment() string { return c.comment }

// Reviewer returns who is leaving the review.
func (c AddReviewCommand) Reviewer() review.Reviewer { return c.reviewer }

func (c *AddReviewCommand) setReviewID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.reviewID = id
	return nil
}

func (c *AddReviewCommand) setVerificationCode(code string) error {
	if code == "" {
		return ErrVerificationCodeIsRequired
	}
	c.verificationCode = code
	return nil
}

func (c *AddReviewCommand) setRating(rating int) error {
	if rating < review.MinRating || rating > review.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, review.MinRating, review.MaxRating)
	}
	c.rating = rating
	return nil
}

func (c *AddReviewCommand) setReviewer(reviewer review.Reviewer) error {
	if err := reviewer.Validate(); err != nil {
		return err
	}
	c.reviewer = reviewer
	return nil
}
