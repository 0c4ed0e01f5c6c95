package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/document"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRejectDocumentCommandIsNotConstructed = errors.New(
	"RejectDocumentCommand must be created via NewRejectDocumentCommand constructor",
)

// RejectDocumentCommand represents a reviewer rejecting a pending document
// with a reason the owner will be notified about.
type RejectDocumentCommand struct { //nolint:recvcheck //using for validation
	documentID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewRejectDocumentCommand creates a command to reject a document.
func NewRejectDocumentCommand(documentID kernel.UUID, reason string) (RejectDocumentCommand, error) {
	cmd := RejectDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDocumentID(documentID),
		cmd.setReason(reason),
	); err != nil {
		return RejectDocumentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectDocumentCommand) Validate() error {
	return c.guard.Validate(ErrRejectDocumentCommandIsNotConstructed)
}

// DocumentID returns the identifier of the document being rejected.
func (c RejectDocumentCommand) DocumentID() kernel.UUID { return c.documentID }

// Reason returns the reviewer's rejection reason.
func (c RejectDocumentCommand) Reason() string { return c.reason }

func (c *RejectDocumentCommand) setDocumentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.documentID = id
	return nil
}

func (c *RejectDocumentCommand) setReason(reason string) error {
	if reason == "" {
		return document.ErrRejectionReasonIsRequired
	}
	c.reason = reason
	return nil
}
