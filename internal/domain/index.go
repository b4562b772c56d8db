package domain

import "time"

// SyncStats holds statistics from an index sync
type SyncStats struct {
	CollectionID string
	ItemsAdded   int
	ItemsUpdated int
	ItemsDeleted int
	ItemsFetched int
	Duration     time.Duration
}
