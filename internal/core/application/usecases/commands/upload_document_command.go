package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/document"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUploadDocumentCommandIsNotConstructed = errors.New(
	"UploadDocumentCommand must be created via NewUploadDocumentCommand constructor",
)

// UploadDocumentCommand represents an account holder submitting a document
// for verification. Uploading after a rejection creates a fresh Pending
// document, the rejected one is kept for the audit trail.
type UploadDocumentCommand struct { //nolint:recvcheck //using for validation
	documentID kernel.UUID
	ownerID    kernel.UUID
	ownerRole  document.Role
	kind       document.Kind
	fileURL    string

	guard guard.ConstructorGuard
}

// NewUploadDocumentCommand creates a command to record a document upload.
// The file itself lives in external storage; fileURL is its opaque reference.
func NewUploadDocumentCommand(
	documentID, ownerID kernel.UUID,
	ownerRole document.Role,
	kind document.Kind,
	fileURL string,
) (UploadDocumentCommand, error) {
	cmd := UploadDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDocumentID(documentID),
		cmd.setOwner(ownerID, ownerRole),
		cmd.setKind(kind),
		cmd.setFileURL(fileURL),
	); err != nil {
		return UploadDocumentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadDocumentCommand) Validate() error {
	return c.guard.Validate(ErrUploadDocumentCommandIsNotConstructed)
}

// DocumentID returns the identifier the new document will be created with.
func (c UploadDocumentCommand) DocumentID() kernel.UUID { return c.documentID }

// OwnerID returns the identifier of the uploading account.
func (c UploadDocumentCommand) OwnerID() kernel.UUID { return c.ownerID }

// OwnerRole returns the role of the uploading account.
func (c UploadDocumentCommand) OwnerRole() document.Role { return c.ownerRole }

// Kind returns the document category.
func (c UploadDocumentCommand) Kind() document.Kind { return c.kind }

// FileURL returns the storage reference of the uploaded file.
func (c UploadDocumentCommand) FileURL() string { return c.fileURL }

func (c *UploadDocumentCommand) setDocumentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.documentID = id
	return nil
}

func (c *UploadDocumentCommand) setOwner(ownerID kernel.UUID, ownerRole document.Role) error {
	if err := errors.Join(ownerID.Validate(), ownerRole.Validate()); err != nil {
		return err
	}
	c.ownerID = ownerID
	c.ownerRole = ownerRole
	return nil
}

func (c *UploadDocumentCommand) setKind(kind document.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *UploadDocumentCommand) setFileURL(fileURL string) error {
	if fileURL == "" {
		return document.ErrFileURLIsRequired
	}
	c.fileURL = fileURL
	return nil
}
