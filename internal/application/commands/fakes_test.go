package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"flowdoc/internal/application"
	"flowdoc/internal/domain"
)

var errTransport = errors.New("connection reset by peer")

// fakeService serves pages with fixed sizes and records every request
type fakeService struct {
	pageSizes []int
	total     int
	failAt    int // 1-based page request that fails; 0 never fails

	items   map[string]*domain.CollectionItem
	updated []domain.UpdatePayload

	listCalls []int // offsets requested
}

func newFakeService(total int, pageSizes ...int) *fakeService {
	return &fakeService{
		pageSizes: pageSizes,
		total:     total,
		items:     make(map[string]*domain.CollectionItem),
	}
}

func (f *fakeService) ListItems(_ context.Context, _ string, limit, offset int) (*domain.Page, error) {
	f.listCalls = append(f.listCalls, offset)
	n := len(f.listCalls)

	if f.failAt == n {
		return nil, errTransport
	}

	size := 0
	if n <= len(f.pageSizes) {
		size = f.pageSizes[n-1]
	}

	items := make([]domain.CollectionItem, size)
	for i := range items {
		items[i] = domain.CollectionItem{
			ID:        fmt.Sprintf("item-%d", offset+i),
			FieldData: domain.Document{"name": fmt.Sprintf("Doc %d", offset+i)},
		}
	}

	return &domain.Page{
		Items:      items,
		Pagination: domain.Pagination{Limit: limit, Offset: offset, Total: f.total},
	}, nil
}

func (f *fakeService) GetItem(_ context.Context, _ string, itemID string) (*domain.CollectionItem, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", itemID, application.ErrNotFound)
	}
	copied := *item
	return &copied, nil
}

func (f *fakeService) UpdateItem(_ context.Context, _ string, itemID string, payload domain.UpdatePayload) (*domain.CollectionItem, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", itemID, application.ErrNotFound)
	}
	f.updated = append(f.updated, payload)

	saved := *item
	if payload.FieldData != nil {
		saved.FieldData = payload.FieldData
	}
	if payload.IsDraft != nil {
		saved.IsDraft = *payload.IsDraft
	}
	if payload.IsArchived != nil {
		saved.IsArchived = *payload.IsArchived
	}
	saved.LastUpdated = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	return &saved, nil
}

// fakeIndex keeps summaries in memory
type fakeIndex struct {
	summaries map[string][]domain.ItemSummary
	synced    int
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{summaries: make(map[string][]domain.ItemSummary)}
}

func (f *fakeIndex) Open(string) error { return nil }
func (f *fakeIndex) Close() error      { return nil }

func (f *fakeIndex) Sync(collectionID string, items []domain.ItemSummary) (*domain.SyncStats, error) {
	f.synced++
	stats := &domain.SyncStats{CollectionID: collectionID, ItemsAdded: len(items)}
	f.summaries[collectionID] = items
	return stats, nil
}

func (f *fakeIndex) LastSync(string) (time.Time, error) { return time.Time{}, nil }

func (f *fakeIndex) Search(collectionID, query string) ([]domain.ItemSummary, error) {
	var out []domain.ItemSummary
	for _, s := range f.summaries[collectionID] {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(query)) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeIndex) Count(collectionID string) (int, error) {
	return len(f.summaries[collectionID]), nil
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
