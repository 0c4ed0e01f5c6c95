package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/document"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetPendingDocumentsQueryIsNotConstructed = errors.New(
	"GetPendingDocumentsQuery must be created via NewGetPendingDocumentsQuery constructor",
)

// GetPendingDocumentsQuery retrieves every document awaiting review, oldest
// upload first, for the administrative review queue.
type GetPendingDocumentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingDocumentsQuery creates a query for the review queue.
func NewGetPendingDocumentsQuery() GetPendingDocumentsQuery {
	return GetPendingDocumentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingDocumentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingDocumentsQueryIsNotConstructed)
}

// GetPendingDocumentsQueryResponse is one entry in the review queue.
type GetPendingDocumentsQueryResponse struct {
	ID         kernel.UUID
	OwnerID    kernel.UUID
	OwnerRole  document.Role
	Kind       document.Kind
	FileURL    string
	UploadedAt time.Time
}
