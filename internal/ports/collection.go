package ports

import (
	"context"

	"flowdoc/internal/domain"
)

// CollectionService defines the remote CMS operations the application needs
type CollectionService interface {
	// ListItems returns one page of items starting at offset
	ListItems(ctx context.Context, collectionID string, limit, offset int) (*domain.Page, error)

	// GetItem returns a single item by ID
	GetItem(ctx context.Context, collectionID, itemID string) (*domain.CollectionItem, error)

	// UpdateItem sends a PATCH for an item and returns the updated item.
	// The service replaces fieldData as a whole; it does not deep-merge.
	UpdateItem(ctx context.Context, collectionID, itemID string, payload domain.UpdatePayload) (*domain.CollectionItem, error)
}
