package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"flowdoc/internal/domain"
	"flowdoc/internal/ports"
)

const schemaVersion = "1"

// Index implements ports.ItemIndex using SQLite
type Index struct {
	db     *sql.DB
	dbPath string
}

// Ensure Index implements ItemIndex
var _ ports.ItemIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open opens (creating if needed) the index database at dbPath
func (idx *Index) Open(dbPath string) error {
	// Expand ~ in path
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	idx.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS items (
			collection_id TEXT NOT NULL,
			id TEXT NOT NULL,
			name TEXT NOT NULL,
			slug TEXT NOT NULL,
			last_updated INTEGER NOT NULL,
			created_on INTEGER NOT NULL,
			is_draft INTEGER NOT NULL DEFAULT 0,
			is_archived INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (collection_id, id)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_items_name ON items(collection_id, name);
		CREATE INDEX IF NOT EXISTS idx_items_slug ON items(collection_id, slug);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Path returns the database file location
func (idx *Index) Path() string {
	return idx.dbPath
}

// LastSync returns when the collection was last synced, or the zero time
func (idx *Index) LastSync(collectionID string) (time.Time, error) {
	var value string
	err := idx.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, lastSyncKey(collectionID)).Scan(&value)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}

	unix, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("corrupt last sync time %q: %w", value, err)
	}
	return time.Unix(unix, 0), nil
}

// Count returns the number of indexed items in a collection
func (idx *Index) Count(collectionID string) (int, error) {
	var n int
	err := idx.db.QueryRow(`SELECT COUNT(*) FROM items WHERE collection_id = ?`, collectionID).Scan(&n)
	return n, err
}

// Search returns summaries whose id, name or slug contain query
func (idx *Index) Search(collectionID, query string) ([]domain.ItemSummary, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	rows, err := idx.db.Query(`
		SELECT id, name, slug, last_updated, created_on, is_draft, is_archived
		FROM items
		WHERE collection_id = ?
		  AND (lower(id) LIKE ? ESCAPE '\' OR lower(name) LIKE ? ESCAPE '\' OR lower(slug) LIKE ? ESCAPE '\')
		ORDER BY name
	`, collectionID, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.ItemSummary
	for rows.Next() {
		var s domain.ItemSummary
		var lastUpdated, createdOn int64
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &lastUpdated, &createdOn, &s.IsDraft, &s.IsArchived); err != nil {
			return nil, err
		}
		s.LastUpdated = time.Unix(lastUpdated, 0).UTC()
		s.CreatedOn = time.Unix(createdOn, 0).UTC()
		results = append(results, s)
	}

	return results, rows.Err()
}

func lastSyncKey(collectionID string) string {
	return "last_sync_time:" + collectionID
}

// escapeLike escapes LIKE wildcards so the query matches literally
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
