package ports

import "flowdoc/internal/domain"

// ItemStore persists fetched content to local files
type ItemStore interface {
	// SaveContent writes content extracted from item and returns the file path
	SaveContent(item *domain.CollectionItem, content any) (string, error)

	// SaveItemsList writes item summaries under filename and returns the file path
	SaveItemsList(items []domain.CollectionItem, filename string) (string, error)
}
