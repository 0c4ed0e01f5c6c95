package ports

import (
	"context"

	"dispatch/internal/core/domain/model/document"
	"dispatch/internal/core/domain/model/kernel"
)

// DocumentRepository defines the persistence contract for document aggregates.
type DocumentRepository interface {
	// Add persists a new document aggregate to storage.
	Add(ctx context.Context, aggregate *document.Document) error

	// Update persists changes to an existing document aggregate.
	// The document must exist in the repository.
	Update(ctx context.Context, aggregate *document.Document) error

	// Get retrieves a document aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*document.Document, error)

	// GetAllByOwner retrieves every document uploaded by the given account,
	// newest first. The activation check evaluates this full set.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*document.Document, error)

	// GetAllPending retrieves every document awaiting review, oldest first.
	GetAllPending(ctx context.Context) ([]*document.Document, error)
}
