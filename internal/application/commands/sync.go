package commands

import (
	"context"
	"time"

	"flowdoc/internal/application"
	"flowdoc/internal/domain"
	"flowdoc/internal/ports"
)

// SyncIndexCommand refreshes the local summary index of a collection
type SyncIndexCommand struct {
	svc          ports.CollectionService
	index        ports.ItemIndex
	CollectionID string
	PageSize     int
	Progress     ProgressFunc
}

// NewSyncIndexCommand creates a new SyncIndexCommand
func NewSyncIndexCommand(svc ports.CollectionService, index ports.ItemIndex, collectionID string, pageSize int) *SyncIndexCommand {
	return &SyncIndexCommand{
		svc:          svc,
		index:        index,
		CollectionID: collectionID,
		PageSize:     pageSize,
	}
}

// Execute fetches every item and replaces the indexed summaries.
// The index is left untouched when the fetch fails.
func (c *SyncIndexCommand) Execute(ctx context.Context) (*domain.SyncStats, error) {
	if err := application.ValidateRequired("collectionID", c.CollectionID); err != nil {
		return nil, err
	}

	start := time.Now()

	items, err := ListAll(ctx, c.svc, c.CollectionID, c.PageSize, c.Progress)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ItemSummary, len(items))
	for i, it := range items {
		summaries[i] = it.Summary()
	}

	stats, err := c.index.Sync(c.CollectionID, summaries)
	if err != nil {
		return nil, err
	}
	stats.ItemsFetched = len(items)
	stats.Duration = time.Since(start)
	return stats, nil
}
