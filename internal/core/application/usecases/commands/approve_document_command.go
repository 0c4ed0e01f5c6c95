package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrApproveDocumentCommandIsNotConstructed = errors.New(
	"ApproveDocumentCommand must be created via NewApproveDocumentCommand constructor",
)

// ApproveDocumentCommand represents a reviewer approving a pending document.
type ApproveDocumentCommand struct { //nolint:recvcheck //using for validation
	documentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveDocumentCommand creates a command to approve a document.
func NewApproveDocumentCommand(documentID kernel.UUID) (ApproveDocumentCommand, error) {
	cmd := ApproveDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDocumentID(documentID); err != nil {
		return ApproveDocumentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveDocumentCommand) Validate() error {
	return c.guard.Validate(ErrApproveDocumentCommandIsNotConstructed)
}

// DocumentID returns the identifier of the document being approved.
func (c ApproveDocumentCommand) DocumentID() kernel.UUID { return c.documentID }

func (c *ApproveDocumentCommand) setDocumentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.documentID = id
	return nil
}
