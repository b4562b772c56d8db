package commands

import (
	"context"
	"fmt"

	"flowdoc/internal/application"
	"flowdoc/internal/domain"
	"flowdoc/internal/ports"
)

// UpdatePathResult contains the result of writing a value at a path
type UpdatePathResult struct {
	Item      *domain.CollectionItem // Item as returned by the service; nil on dry run
	FieldData domain.Document        // Full field data that was (or would be) sent
	Previous  any
	HadValue  bool
	DryRun    bool
	Message   string
}

// UpdatePathCommand writes a value at a dot path inside an item's field data
// and sends the whole updated field data back to the service
type UpdatePathCommand struct {
	svc          ports.CollectionService
	CollectionID string
	ItemID       string
	Path         string
	Value        any
	DryRun       bool
}

// NewUpdatePathCommand creates a new UpdatePathCommand
func NewUpdatePathCommand(svc ports.CollectionService, collectionID, itemID, path string, value any) *UpdatePathCommand {
	return &UpdatePathCommand{
		svc:          svc,
		CollectionID: collectionID,
		ItemID:       itemID,
		Path:         path,
		Value:        value,
	}
}

// Validate checks if the update operation is valid
func (c *UpdatePathCommand) Validate() error {
	if err := application.ValidateRequired("collectionID", c.CollectionID); err != nil {
		return err
	}
	if err := application.ValidateRequired("itemID", c.ItemID); err != nil {
		return err
	}
	if c.Path == "" {
		return &application.ValidationError{
			Field:   "path",
			Message: domain.ErrEmptyPath.Error(),
		}
	}
	return nil
}

// Execute runs the read-modify-write cycle
func (c *UpdatePathCommand) Execute(ctx context.Context) (*UpdatePathResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	item, err := GetOne(ctx, c.svc, c.CollectionID, c.ItemID)
	if err != nil {
		return nil, err
	}

	path := domain.ParsePath(c.Path)
	previous, hadValue := domain.Get(item.FieldData, path)

	updated, err := domain.Set(item.FieldData, path, c.Value)
	if err != nil {
		return nil, &application.UpdateError{ItemID: c.ItemID, Path: c.Path, Err: err}
	}

	result := &UpdatePathResult{
		FieldData: updated,
		Previous:  previous,
		HadValue:  hadValue,
		DryRun:    c.DryRun,
	}

	if c.DryRun {
		result.Message = fmt.Sprintf("Dry run: %s would be updated at %s", c.ItemID, c.Path)
		return result, nil
	}

	saved, err := UpdateOne(ctx, c.svc, c.CollectionID, c.ItemID, domain.UpdatePayload{FieldData: updated})
	if err != nil {
		return nil, &application.UpdateError{ItemID: c.ItemID, Path: c.Path, Err: err}
	}

	result.Item = saved
	result.Message = fmt.Sprintf("Updated %s at %s", c.ItemID, c.Path)
	return result, nil
}
