package commands

import (
	"context"

	"dispatch/internal/core/domain/model/document"
)

// UploadDocumentCommandHandler records document uploads for verification.
type UploadDocumentCommandHandler struct {
	uowFactory DocumentUoWFactory
}

// NewUploadDocumentCommandHandler creates a handler for document uploads.
func NewUploadDocumentCommandHandler(uowFactory DocumentUoWFactory) UploadDocumentCommandHandler {
	return UploadDocumentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the upload command, persisting a new Pending document.
func (h *UploadDocumentCommandHandler) Handle(ctx context.Context, cmd UploadDocumentCommand) error {
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

	aggregate, err := document.NewDocument(
		cmd.DocumentID(), cmd.OwnerID(), cmd.OwnerRole(), cmd.Kind(), cmd.FileURL())
	if err != nil {
		return err
	}

	if err = uow.DocumentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
