package commands

import (
	"context"
	"errors"
	"testing"
)

func TestListAll_Pagination(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		pageSizes   []int
		pageSize    int
		wantItems   int
		wantOffsets []int
	}{
		{
			name:        "three pages ending short",
			total:       237,
			pageSizes:   []int{100, 100, 37},
			pageSize:    100,
			wantItems:   237,
			wantOffsets: []int{0, 100, 200},
		},
		{
			name:        "short page stops before reported total",
			total:       200,
			pageSizes:   []int{100, 60},
			pageSize:    100,
			wantItems:   160,
			wantOffsets: []int{0, 100},
		},
		{
			name:        "exact multiple stops at total",
			total:       200,
			pageSizes:   []int{100, 100, 100},
			pageSize:    100,
			wantItems:   200,
			wantOffsets: []int{0, 100},
		},
		{
			name:        "empty collection",
			total:       0,
			pageSizes:   []int{0},
			pageSize:    100,
			wantItems:   0,
			wantOffsets: []int{0},
		},
		{
			name:        "small page size",
			total:       5,
			pageSizes:   []int{2, 2, 1},
			pageSize:    2,
			wantItems:   5,
			wantOffsets: []int{0, 2, 4},
		},
		{
			name:        "zero page size uses default",
			total:       30,
			pageSizes:   []int{30},
			pageSize:    0,
			wantItems:   30,
			wantOffsets: []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeService(tt.total, tt.pageSizes...)

			items, err := ListAll(context.Background(), svc, "col", tt.pageSize, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(items) != tt.wantItems {
				t.Errorf("expected %d items, got %d", tt.wantItems, len(items))
			}
			if len(svc.listCalls) != len(tt.wantOffsets) {
				t.Fatalf("expected %d requests, got %d (%v)", len(tt.wantOffsets), len(svc.listCalls), svc.listCalls)
			}
			for i, off := range tt.wantOffsets {
				if svc.listCalls[i] != off {
					t.Errorf("request %d: expected offset %d, got %d", i, off, svc.listCalls[i])
				}
			}
		})
	}
}

func TestListAll_PreservesOrder(t *testing.T) {
	svc := newFakeService(5, 2, 2, 1)

	items, err := ListAll(context.Background(), svc, "col", 2, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, it := range items {
		want := "item-" + string(rune('0'+i))
		if it.ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, it.ID)
		}
	}
}

func TestListAll_ErrorDiscardsPartialResults(t *testing.T) {
	svc := newFakeService(300, 100, 100, 100)
	svc.failAt = 2

	items, err := ListAll(context.Background(), svc, "col", 100, nil)
	if !errors.Is(err, errTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if items != nil {
		t.Errorf("expected no items, got %d", len(items))
	}
	if len(svc.listCalls) != 2 {
		t.Errorf("expected fetch to stop after failing request, got %d requests", len(svc.listCalls))
	}
}

func TestListAll_ReportsProgress(t *testing.T) {
	svc := newFakeService(237, 100, 100, 37)

	var reports [][2]int
	_, err := ListAll(context.Background(), svc, "col", 100, func(fetched, total int) {
		reports = append(reports, [2]int{fetched, total})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [][2]int{{100, 237}, {200, 237}, {237, 237}}
	if len(reports) != len(want) {
		t.Fatalf("expected %d progress reports, got %d", len(want), len(reports))
	}
	for i := range want {
		if reports[i] != want[i] {
			t.Errorf("report %d: expected %v, got %v", i, want[i], reports[i])
		}
	}
}

func TestListItemsCommand_Validate(t *testing.T) {
	tests := []struct {
		name         string
		collectionID string
		pageSize     int
		wantErr      bool
		errMsg       string
	}{
		{"valid", "col", 100, false, ""},
		{"missing collection", "", 100, true, "collection ID is required"},
		{"page size above service maximum", "col", 500, true, "must be between 1 and 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &ListItemsCommand{CollectionID: tt.collectionID, PageSize: tt.pageSize}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
