package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"flowdoc/internal/domain"
	"flowdoc/internal/ports"
)

// Store implements ports.ItemStore on the local filesystem
type Store struct {
	baseDir string
}

// Ensure Store implements ItemStore
var _ ports.ItemStore = (*Store)(nil)

// NewStore creates a store writing under baseDir
func NewStore(baseDir string) *Store {
	return &Store{baseDir: expandHome(baseDir)}
}

// BaseDir returns the output directory
func (s *Store) BaseDir() string {
	return s.baseDir
}

// SaveContent writes content to <name>_<id>.json. Mappings and sequences are
// written as indented JSON, anything else as its plain string form.
func (s *Store) SaveContent(item *domain.CollectionItem, content any) (string, error) {
	data, err := encodeContent(content)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.baseDir, ContentFileName(item))
	if err := s.write(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// SaveItemsList writes the summaries of items as an indented JSON array
func (s *Store) SaveItemsList(items []domain.CollectionItem, filename string) (string, error) {
	summaries := make([]domain.ItemSummary, len(items))
	for i, it := range items {
		summaries[i] = it.Summary()
	}

	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode items list: %w", err)
	}

	path := filepath.Join(s.baseDir, filepath.Base(filename))
	if err := s.write(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// ContentFileName returns the file name used for an item's saved content
func ContentFileName(item *domain.CollectionItem) string {
	name := slug.Make(item.Name())
	if name == "" {
		name = "untitled"
	}
	id := item.ID
	if id == "" {
		id = "unknown"
	}
	return fmt.Sprintf("%s_%s.json", name, id)
}

func encodeContent(content any) ([]byte, error) {
	switch v := content.(type) {
	case map[string]any, []any:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode content: %w", err)
		}
		return data, nil
	case nil:
		return []byte("null"), nil
	case string:
		return []byte(v), nil
	default:
		return []byte(fmt.Sprint(v)), nil
	}
}

func (s *Store) write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return WriteFileAtomic(path, data, 0)
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
