package sqlite

import (
	"fmt"
	"time"

	"flowdoc/internal/domain"
)

// Sync replaces the collection's summaries with items in one transaction:
// new items are added, known ones updated and vanished ones deleted.
func (idx *Index) Sync(collectionID string, items []domain.ItemSummary) (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{CollectionID: collectionID}

	existing, err := idx.existingIDs(collectionID)
	if err != nil {
		return nil, err
	}

	tx, err := idx.beginTx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	seen := make(map[string]bool, len(items))
	for i := range items {
		item := &items[i]
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true

		if err := tx.upsertItem(collectionID, item); err != nil {
			return nil, fmt.Errorf("failed to index item %s: %w", item.ID, err)
		}
		if existing[item.ID] {
			stats.ItemsUpdated++
		} else {
			stats.ItemsAdded++
		}
	}

	for id := range existing {
		if !seen[id] {
			if err := tx.deleteItem(collectionID, id); err != nil {
				return nil, fmt.Errorf("failed to remove item %s: %w", id, err)
			}
			stats.ItemsDeleted++
		}
	}

	if err := tx.setMeta(lastSyncKey(collectionID), fmt.Sprint(time.Now().Unix())); err != nil {
		return nil, err
	}

	if err := tx.commit(); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

func (idx *Index) existingIDs(collectionID string) (map[string]bool, error) {
	rows, err := idx.db.Query(`SELECT id FROM items WHERE collection_id = ?`, collectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, rows.Err()
}
