package commands

import (
	"context"

	"dispatch/internal/core/domain/model/document"
)

// ApproveDocumentCommandHandler handles document approval and the account
// activation that may follow.
//
// Business rules:
//   - Approval is legal only on Pending documents.
//   - When the owner is a courier and, after this approval, every document
//     they ever uploaded is Approved, the courier account is enabled. The
//     document set must be non-empty for that to happen, which it is here
//     since the approved document itself belongs to it.
//   - Activation is one-way. Documents uploaded after activation go through
//     review like any other but cannot disable the account.
type ApproveDocumentCommandHandler struct {
	uowFactory DocumentUoWFactory
}

// NewApproveDocumentCommandHandler creates a handler for document approval.
func NewApproveDocumentCommandHandler(uowFactory DocumentUoWFactory) ApproveDocumentCommandHandler {
	return ApproveDocumentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
func (h *ApproveDocumentCommandHandler) Handle(ctx context.Context, cmd ApproveDocumentCommand) error {
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

	if err = aggregate.Approve(); err != nil {
		return err
	}

	if err = uow.DocumentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if aggregate.OwnerRole().RequiresActivationGate() {
		if err = h.activateOwnerIfComplete(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h *ApproveDocumentCommandHandler) activateOwnerIfComplete(
	ctx context.Context,
	uow DocumentUoW,
	approved *document.Document,
) error {
	documents, err := uow.DocumentRepository().GetAllByOwner(ctx, approved.OwnerID())
	if err != nil {
		return err
	}

	for _, d := range documents {
		if !d.IsApproved() {
			return nil
		}
	}

	courier, err := uow.CourierRepository().Get(ctx, approved.OwnerID())
	if err != nil {
		return err
	}
	if courier.Enabled() {
		return nil
	}

	courier.Enable()
	return uow.CourierRepository().Update(ctx, courier)
}
