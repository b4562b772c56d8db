package commands

import (
	"context"
	"fmt"

	"flowdoc/internal/application"
	"flowdoc/internal/domain"
	"flowdoc/internal/ports"
)

// ProgressFunc reports how many items have been fetched out of the reported total
type ProgressFunc func(fetched, total int)

// ListAll fetches every item of a collection, one page at a time.
//
// Pages are requested strictly in sequence starting at offset 0. Fetching stops
// once the server-reported total is reached or a page comes back shorter than
// pageSize, whichever happens first; the short-page rule keeps a stale total
// from looping forever. Any request error aborts the whole fetch and no items
// are returned.
func ListAll(ctx context.Context, svc ports.CollectionService, collectionID string, pageSize int, progress ProgressFunc) ([]domain.CollectionItem, error) {
	if pageSize <= 0 {
		pageSize = application.DefaultPageSize
	}

	var all []domain.CollectionItem
	offset := 0

	for {
		page, err := svc.ListItems(ctx, collectionID, pageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("listing items at offset %d: %w", offset, err)
		}

		all = append(all, page.Items...)
		total := page.Pagination.Total

		if progress != nil {
			progress(len(all), total)
		}

		if len(page.Items) < pageSize || len(all) >= total {
			break
		}

		offset += pageSize
	}

	return all, nil
}

// GetOne fetches a single item. Errors are propagated unchanged.
func GetOne(ctx context.Context, svc ports.CollectionService, collectionID, itemID string) (*domain.CollectionItem, error) {
	return svc.GetItem(ctx, collectionID, itemID)
}

// UpdateOne sends a single PATCH for an item. Errors are propagated unchanged.
func UpdateOne(ctx context.Context, svc ports.CollectionService, collectionID, itemID string, payload domain.UpdatePayload) (*domain.CollectionItem, error) {
	return svc.UpdateItem(ctx, collectionID, itemID, payload)
}

// ListItemsCommand lists all items in a collection
type ListItemsCommand struct {
	svc          ports.CollectionService
	CollectionID string
	PageSize     int
	Progress     ProgressFunc
}

// NewListItemsCommand creates a new ListItemsCommand
func NewListItemsCommand(svc ports.CollectionService, collectionID string, pageSize int) *ListItemsCommand {
	return &ListItemsCommand{
		svc:          svc,
		CollectionID: collectionID,
		PageSize:     pageSize,
	}
}

// Validate checks if the list operation is valid
func (c *ListItemsCommand) Validate() error {
	if err := application.ValidateRequired("collectionID", c.CollectionID); err != nil {
		return err
	}
	return application.ValidatePageSize(c.PageSize, application.DefaultPageSize)
}

// Execute runs the list items command
func (c *ListItemsCommand) Execute(ctx context.Context) ([]domain.CollectionItem, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return ListAll(ctx, c.svc, c.CollectionID, c.PageSize, c.Progress)
}
