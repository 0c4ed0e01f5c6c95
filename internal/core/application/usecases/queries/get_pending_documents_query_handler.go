package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetPendingDocumentsQueryHandler retrieves the document review queue.
type GetPendingDocumentsQueryHandler struct {
	documentRepository ports.DocumentRepository
}

// NewGetPendingDocumentsQueryHandler creates a handler for review queue queries.
func NewGetPendingDocumentsQueryHandler(documentRepository ports.DocumentRepository) GetPendingDocumentsQueryHandler {
	return GetPendingDocumentsQueryHandler{documentRepository: documentRepository}
}

// Handle executes the review queue query, oldest upload first.
func (h GetPendingDocumentsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingDocumentsQuery,
) ([]GetPendingDocumentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pending, err := h.documentRepository.GetAllPending(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetPendingDocumentsQueryResponse, 0, len(pending))
	for _, d := range pending {
		responses = append(responses, GetPendingDocumentsQueryResponse{
			ID:         d.ID(),
			OwnerID:    d.OwnerID(),
			OwnerRole:  d.OwnerRole(),
			Kind:       d.Kind(),
			FileURL:    d.FileURL(),
			UploadedAt: d.UploadedAt(),
		})
	}

	return responses, nil
}
