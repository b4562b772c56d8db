package ports

import (
	"time"

	"flowdoc/internal/domain"
)

// ItemIndex keeps searchable item summaries per collection.
// It never stores field data.
type ItemIndex interface {
	// Lifecycle
	Open(dbPath string) error
	Close() error

	// Sync replaces the indexed summaries of a collection with items
	Sync(collectionID string, items []domain.ItemSummary) (*domain.SyncStats, error)
	LastSync(collectionID string) (time.Time, error)

	// Queries
	Search(collectionID, query string) ([]domain.ItemSummary, error)
	Count(collectionID string) (int, error)
}
