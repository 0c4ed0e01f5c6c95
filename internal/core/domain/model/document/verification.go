package document

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Verification is the review state of an uploaded document.
type Verification int

const (
	// VerificationUnknown represents an invalid or undefined state.
	VerificationUnknown Verification = iota
	// VerificationPending means the document awaits review.
	VerificationPending
	// VerificationApproved means the document passed review.
	VerificationApproved
	// VerificationRejected means the document failed review.
	VerificationRejected
)

func getVerificationStrings() map[Verification]string {
	return map[Verification]string{
		VerificationUnknown:  "Unknown",
		VerificationPending:  "Pending",
		VerificationApproved: "Approved",
		VerificationRejected: "Rejected",
	}
}

// Validate checks if the Verification is one of the defined states.
func (v Verification) Validate() error {
	switch v {
	case VerificationPending, VerificationApproved, VerificationRejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("verification is invalid",
			fmt.Errorf("%d is not a valid verification state", v))
	}
}

// IsTerminal reports whether the document already received a verdict.
// Approved and Rejected documents cannot be reviewed again, a rejected
// document is replaced by uploading a fresh Pending one.
func (v Verification) IsTerminal() bool {
	return v == VerificationApproved || v == VerificationRejected
}

// Approve transitions the state from Pending to Approved.
func (v Verification) Approve() (Verification, error) {
	if v != VerificationPending {
		return 0, errs.NewOperationNotAllowedErrorWithCause(
			"document has already been reviewed",
			fmt.Errorf("cannot approve document in %s state", v))
	}
	return VerificationApproved, nil
}

// Reject transitions the state from Pending to Rejected.
func (v Verification) Reject() (Verification, error) {
	if v != VerificationPending {
		return 0, errs.NewOperationNotAllowedErrorWithCause(
			"document has already been reviewed",
			fmt.Errorf("cannot reject document in %s state", v))
	}
	return VerificationRejected, nil
}

// String returns the human-readable name of the verification state.
func (v Verification) String() string {
	if str, ok := getVerificationStrings()[v]; ok {
		return str
	}
	return "Unknown"
}
