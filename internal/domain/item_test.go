package domain

import (
	"encoding/json"
	"testing"
)

func TestCollectionItem_Name(t *testing.T) {
	tests := []struct {
		name      string
		fieldData Document
		want      string
	}{
		{"has name", Document{"name": "Install Guide"}, "Install Guide"},
		{"empty name", Document{"name": ""}, "Untitled"},
		{"non-string name", Document{"name": 3.0}, "Untitled"},
		{"nil field data", nil, "Untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := CollectionItem{ID: "abc", FieldData: tt.fieldData}
			if got := item.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUpdatePayload_IsEmpty(t *testing.T) {
	draft := false

	if !(UpdatePayload{}).IsEmpty() {
		t.Error("expected zero payload to be empty")
	}
	if (UpdatePayload{IsDraft: &draft}).IsEmpty() {
		t.Error("expected payload with isDraft=false to be non-empty")
	}
	if (UpdatePayload{FieldData: Document{}}).IsEmpty() {
		t.Error("expected payload with empty fieldData to be non-empty")
	}
}

func TestUpdatePayload_MarshalJSON(t *testing.T) {
	draft := false

	tests := []struct {
		name    string
		payload UpdatePayload
		want    string
	}{
		{"zero payload", UpdatePayload{}, `{}`},
		{"empty field data is sent", UpdatePayload{FieldData: Document{}}, `{"fieldData":{}}`},
		{"field data and flags", UpdatePayload{FieldData: Document{"name": "A"}, IsDraft: &draft}, `{"fieldData":{"name":"A"},"isDraft":false}`},
		{"locale only", UpdatePayload{CMSLocaleID: "loc-1"}, `{"cmsLocaleId":"loc-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("got %s, want %s", data, tt.want)
			}
		})
	}
}
