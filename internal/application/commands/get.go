package commands

import (
	"context"

	"flowdoc/internal/application"
	"flowdoc/internal/domain"
	"flowdoc/internal/ports"
)

// GetItemCommand fetches a single item
type GetItemCommand struct {
	svc          ports.CollectionService
	CollectionID string
	ItemID       string
}

// NewGetItemCommand creates a new GetItemCommand
func NewGetItemCommand(svc ports.CollectionService, collectionID, itemID string) *GetItemCommand {
	return &GetItemCommand{
		svc:          svc,
		CollectionID: collectionID,
		ItemID:       itemID,
	}
}

// Validate checks if the get operation is valid
func (c *GetItemCommand) Validate() error {
	if err := application.ValidateRequired("collectionID", c.CollectionID); err != nil {
		return err
	}
	return application.ValidateRequired("itemID", c.ItemID)
}

// Execute runs the get item command
func (c *GetItemCommand) Execute(ctx context.Context) (*domain.CollectionItem, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return GetOne(ctx, c.svc, c.CollectionID, c.ItemID)
}

// ExtractResult contains the value found at a path
type ExtractResult struct {
	Item  *domain.CollectionItem
	Path  domain.Path
	Value any
	Found bool
}

// ExtractCommand reads the value at a dot path inside an item's field data
type ExtractCommand struct {
	svc          ports.CollectionService
	CollectionID string
	ItemID       string
	Path         string
}

// NewExtractCommand creates a new ExtractCommand
func NewExtractCommand(svc ports.CollectionService, collectionID, itemID, path string) *ExtractCommand {
	return &ExtractCommand{
		svc:          svc,
		CollectionID: collectionID,
		ItemID:       itemID,
		Path:         path,
	}
}

// Execute fetches the item and resolves the path. An unresolved path is
// reported through Found, not as an error.
func (c *ExtractCommand) Execute(ctx context.Context) (*ExtractResult, error) {
	get := NewGetItemCommand(c.svc, c.CollectionID, c.ItemID)
	item, err := get.Execute(ctx)
	if err != nil {
		return nil, err
	}

	path := domain.ParsePath(c.Path)
	value, found := domain.Get(item.FieldData, path)

	return &ExtractResult{
		Item:  item,
		Path:  path,
		Value: value,
		Found: found,
	}, nil
}
