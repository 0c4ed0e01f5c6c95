package document

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for document operations.
var (
	// ErrFileURLIsRequired is returned when attempting to upload a document without a file.
	ErrFileURLIsRequired = errs.NewValueIsRequiredError("fileURL")
	// ErrRejectionReasonIsRequired is returned when rejecting a document without a reason.
	ErrRejectionReasonIsRequired = errs.NewValueIsRequiredError("rejectionReason")
	// ErrDocumentIsNotConstructed is returned when using an improperly initialized Document.
	ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument constructor")
)

// Document represents an uploaded verification document.
// It is an aggregate root that tracks the review verdict for a single upload.
//
// Business rules:
//   - An upload starts Pending and receives exactly one verdict.
//   - Approved and Rejected are terminal; a rejected document is superseded
//     by uploading a fresh Pending one, never edited in place.
//   - A rejection always carries a reason; approval clears any reason left
//     over from restored state.
type Document struct {
	id        kernel.UUID
	ownerID   kernel.UUID
	ownerRole Role
	kind      Kind
	fileURL   string

	verification    Verification
	rejectionReason string
	uploadedAt      time.Time
	verifiedAt      *time.Time

	guard guard.ConstructorGuard
}

// NewDocument creates a freshly uploaded Document in the Pending state.
func NewDocument(id, ownerID kernel.UUID, ownerRole Role, kind Kind, fileURL string) (*Document, error) {
	d := &Document{
		verification: VerificationPending,
		uploadedAt:   time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOwner(ownerID, ownerRole),
		d.setKind(kind),
		d.setFileURL(fileURL),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDocument reconstructs a Document aggregate from persistent storage.
func RestoreDocument(
	id, ownerID kernel.UUID,
	ownerRole Role,
	kind Kind,
	fileURL string,
	verification Verification,
	rejectionReason string,
	uploadedAt time.Time,
	verifiedAt *time.Time,
) (*Document, error) {
	d := &Document{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOwner(ownerID, ownerRole),
		d.setKind(kind),
		d.setFileURL(fileURL),
		verification.Validate(),
	); err != nil {
		return nil, err
	}
	d.verification = verification
	d.rejectionReason = rejectionReason
	d.uploadedAt = uploadedAt

	if verifiedAt != nil {
		ts := *verifiedAt
		d.verifiedAt = &ts
	}

	return d, nil
}

// Validate ensures the Document was properly constructed.
func (d *Document) Validate() error {
	if d == nil {
		return ErrDocumentIsNotConstructed
	}
	return d.guard.Validate(ErrDocumentIsNotConstructed)
}

// IsEqual compares two documents by their unique identifiers.
func (d *Document) IsEqual(other *Document) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the document's unique identifier.
func (d *Document) ID() kernel.UUID { return d.id }

// OwnerID returns the identifier of the account that uploaded the document.
func (d *Document) OwnerID() kernel.UUID { return d.ownerID }

// OwnerRole returns the role of the owning account.
func (d *Document) OwnerRole() Role { return d.ownerRole }

// Kind returns the document category.
func (d *Document) Kind() Kind { return d.kind }

// FileURL returns the storage location of the uploaded file.
func (d *Document) FileURL() string { return d.fileURL }

// Verification returns the current review state.
func (d *Document) Verification() Verification { return d.verification }

// RejectionReason returns the reviewer's reason, empty unless rejected.
func (d *Document) RejectionReason() string { return d.rejectionReason }

// UploadedAt returns when the document was uploaded.
func (d *Document) UploadedAt() time.Time { return d.uploadedAt }

// VerifiedAt returns when the verdict was recorded, or nil while pending.
func (d *Document) VerifiedAt() *time.Time { return d.verifiedAt }

// IsApproved reports whether the document passed review.
func (d *Document) IsApproved() bool {
	return d.verification == VerificationApproved
}

// Approve records a positive verdict on a pending document.
func (d *Document) Approve() error {
	verification, err := d.verification.Approve()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	d.verification = verification
	d.rejectionReason = ""
	d.verifiedAt = &now
	return nil
}

// Reject records a negative verdict on a pending document.
// The reason is mandatory, it is delivered to the owner so they can upload
// a corrected replacement.
func (d *Document) Reject(reason string) error {
	if reason == "" {
		return ErrRejectionReasonIsRequired
	}

	verification, err := d.verification.Reject()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	d.verification = verification
	d.rejectionReason = reason
	d.verifiedAt = &now
	return nil
}

func (d *Document) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Document) setOwner(ownerID kernel.UUID, ownerRole Role) error {
	if err := errors.Join(ownerID.Validate(), ownerRole.Validate()); err != nil {
		return err
	}
	d.ownerID = ownerID
	d.ownerRole = ownerRole
	return nil
}

func (d *Document) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	d.kind = kind
	return nil
}

func (d *Document) setFileURL(fileURL string) error {
	if fileURL == "" {
		return ErrFileURLIsRequired
	}
	d.fileURL = fileURL
	return nil
}
