package commands

import (
	"context"
	"errors"
	"testing"

	"flowdoc/internal/application"
	"flowdoc/internal/domain"
)

func serviceWithDoc() *fakeService {
	svc := newFakeService(0)
	svc.items["doc-1"] = &domain.CollectionItem{
		ID: "doc-1",
		FieldData: domain.Document{
			"name": "Getting Started",
			"content": map[string]any{
				"sections": []any{
					map[string]any{"text": "Install the CLI"},
				},
			},
		},
	}
	return svc
}

func TestExtractCommand(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantFound bool
		want      any
	}{
		{"whole document", "", true, nil},
		{"top-level field", "name", true, "Getting Started"},
		{"through sequence", "content.sections.0.text", true, "Install the CLI"},
		{"missing", "content.summary", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := serviceWithDoc()
			cmd := NewExtractCommand(svc, "col", "doc-1", tt.path)

			result, err := cmd.Execute(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Found != tt.wantFound {
				t.Fatalf("expected found=%v, got %v", tt.wantFound, result.Found)
			}
			if tt.path == "" {
				if !domain.Equal(result.Value, svc.items["doc-1"].FieldData) {
					t.Errorf("expected whole field data, got %#v", result.Value)
				}
				return
			}
			if !domain.Equal(result.Value, tt.want) {
				t.Errorf("expected %#v, got %#v", tt.want, result.Value)
			}
		})
	}
}

func TestExtractCommand_PropagatesServiceError(t *testing.T) {
	cmd := NewExtractCommand(serviceWithDoc(), "col", "missing", "name")

	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetItemCommand_Validate(t *testing.T) {
	cmd := NewGetItemCommand(serviceWithDoc(), "col", " ")

	_, err := cmd.Execute(context.Background())
	var valErr *application.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if valErr.Field != "itemID" {
		t.Errorf("expected field itemID, got %s", valErr.Field)
	}
}

func TestGetOneAndUpdateOne_PropagateErrors(t *testing.T) {
	svc := serviceWithDoc()
	ctx := context.Background()

	item, err := GetOne(ctx, svc, "col-1", "doc-1")
	if err != nil {
		t.Fatalf("GetOne failed: %v", err)
	}
	if item.Name() != "Getting Started" {
		t.Errorf("expected Getting Started, got %q", item.Name())
	}

	if _, err := GetOne(ctx, svc, "col-1", "nope"); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound from GetOne, got %v", err)
	}

	draft := true
	if _, err := UpdateOne(ctx, svc, "col-1", "nope", domain.UpdatePayload{IsDraft: &draft}); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound from UpdateOne, got %v", err)
	}
	if len(svc.updated) != 0 {
		t.Errorf("expected no recorded updates, got %d", len(svc.updated))
	}
}
