package commands

import (
	"context"
	"fmt"
	"log/slog"

	"dispatch/internal/core/ports"
)

// RejectDocumentCommandHandler handles document rejection.
// The verdict is persisted first; the owner notification is enqueued after
// the transaction commits so a failed rejection never produces a notice.
// Notification is fire-and-forget: an enqueue failure is logged and does not
// fail the rejection, the verdict is already committed.
type RejectDocumentCommandHandler struct {
	uowFactory DocumentUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewRejectDocumentCommandHandler creates a handler for document rejection.
func NewRejectDocumentCommandHandler(
	uowFactory DocumentUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) RejectDocumentCommandHandler {
	return RejectDocumentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "reject_document_command_handler"),
	}
}

// Handle processes the rejection command.
func (h *RejectDocumentCommandHandler) Handle(ctx context.Context, cmd RejectDocumentCommand) error {
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

	aggregate, err := uow.DocumentRepository().Get(ctx, cmd.DocumentID())
	if err != nil {
		return err
	}

	if err = aggregate.Reject(cmd.Reason()); err != nil {
		return err
	}

	if err = uow.DocumentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notification := ports.Notification{
		RecipientID: aggregate.OwnerID(),
		Subject:     "Document rejected",
		Body: fmt.Sprintf("Your %s document was rejected: %s. Please upload a corrected version.",
			aggregate.Kind(), cmd.Reason()),
	}
	if err = h.notifier.Notify(ctx, notification); err != nil {
		h.logger.WarnContext(ctx, "Failed to enqueue rejection notification",
			"document_id", cmd.DocumentID().String(),
			"recipient_id", notification.RecipientID.String(),
			"error", err)
	}

	return nil
}
