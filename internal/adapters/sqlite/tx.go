package sqlite

import (
	"database/sql"

	"flowdoc/internal/domain"
)

// indexTx groups index writes so a sync is applied all or nothing
type indexTx struct {
	tx *sql.Tx
}

func (idx *Index) beginTx() (*indexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx}, nil
}

// upsertItem inserts or updates an item summary
func (t *indexTx) upsertItem(collectionID string, item *domain.ItemSummary) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO items (collection_id, id, name, slug, last_updated, created_on, is_draft, is_archived)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, collectionID, item.ID, item.Name, item.Slug,
		item.LastUpdated.Unix(), item.CreatedOn.Unix(), item.IsDraft, item.IsArchived)
	return err
}

// deleteItem removes an item summary
func (t *indexTx) deleteItem(collectionID, id string) error {
	_, err := t.tx.Exec(`DELETE FROM items WHERE collection_id = ? AND id = ?`, collectionID, id)
	return err
}

// setMeta stores a metadata value
func (t *indexTx) setMeta(key, value string) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

// commit commits the transaction
func (t *indexTx) commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction; it is a no-op after commit
func (t *indexTx) Rollback() error {
	err := t.tx.Rollback()
	if err == sql.ErrTxDone {
		return nil
	}
	return err
}
