package commands

import (
	"context"
	"fmt"

	"flowdoc/internal/application"
	"flowdoc/internal/domain"
	"flowdoc/internal/ports"
)

// PatchItemResult contains the result of patching an item
type PatchItemResult struct {
	Item    *domain.CollectionItem
	Message string
}

// PatchItemCommand sends a caller-built payload for an item. FieldData, when
// present, replaces the item's field data as a whole.
type PatchItemCommand struct {
	svc          ports.CollectionService
	CollectionID string
	ItemID       string
	Payload      domain.UpdatePayload
}

// NewPatchItemCommand creates a new PatchItemCommand
func NewPatchItemCommand(svc ports.CollectionService, collectionID, itemID string, payload domain.UpdatePayload) *PatchItemCommand {
	return &PatchItemCommand{
		svc:          svc,
		CollectionID: collectionID,
		ItemID:       itemID,
		Payload:      payload,
	}
}

// Validate checks if the patch operation is valid
func (c *PatchItemCommand) Validate() error {
	if err := application.ValidateRequired("collectionID", c.CollectionID); err != nil {
		return err
	}
	if err := application.ValidateRequired("itemID", c.ItemID); err != nil {
		return err
	}
	if c.Payload.IsEmpty() {
		return application.ErrNothingToUpdate
	}
	return nil
}

// Execute runs the patch item command
func (c *PatchItemCommand) Execute(ctx context.Context) (*PatchItemResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	item, err := UpdateOne(ctx, c.svc, c.CollectionID, c.ItemID, c.Payload)
	if err != nil {
		return nil, &application.UpdateError{ItemID: c.ItemID, Err: err}
	}

	return &PatchItemResult{
		Item:    item,
		Message: fmt.Sprintf("Item updated successfully (last updated %s)", item.LastUpdated.Format("2006-01-02 15:04:05")),
	}, nil
}
