package domain

import (
	"encoding/json"
	"time"
)

// CollectionItem is one record of a CMS collection
type CollectionItem struct {
	ID            string     `json:"id"`
	CMSLocaleID   string     `json:"cmsLocaleId,omitempty"`
	LastPublished *time.Time `json:"lastPublished,omitempty"`
	LastUpdated   time.Time  `json:"lastUpdated"`
	CreatedOn     time.Time  `json:"createdOn"`
	IsArchived    bool       `json:"isArchived"`
	IsDraft       bool       `json:"isDraft"`
	FieldData     Document   `json:"fieldData"`
}

// Name returns the item's display name from fieldData
func (i CollectionItem) Name() string {
	if name, ok := i.FieldData["name"].(string); ok && name != "" {
		return name
	}
	return "Untitled"
}

// Slug returns the item's slug from fieldData
func (i CollectionItem) Slug() string {
	slug, _ := i.FieldData["slug"].(string)
	return slug
}

// Summary returns the searchable subset of the item
func (i CollectionItem) Summary() ItemSummary {
	return ItemSummary{
		ID:          i.ID,
		Name:        i.Name(),
		Slug:        i.Slug(),
		LastUpdated: i.LastUpdated,
		CreatedOn:   i.CreatedOn,
		IsArchived:  i.IsArchived,
		IsDraft:     i.IsDraft,
	}
}

// Pagination is the paging envelope returned with a list response
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// Page is one list response
type Page struct {
	Items      []CollectionItem `json:"items"`
	Pagination Pagination       `json:"pagination"`
}

// UpdatePayload is the PATCH body for an item. Nil fields are omitted; a
// non-nil FieldData is always sent, even when empty.
type UpdatePayload struct {
	FieldData   Document `json:"fieldData,omitempty"`
	IsArchived  *bool    `json:"isArchived,omitempty"`
	IsDraft     *bool    `json:"isDraft,omitempty"`
	CMSLocaleID string   `json:"cmsLocaleId,omitempty"`
}

// MarshalJSON encodes the payload, keeping an empty but non-nil FieldData
func (p UpdatePayload) MarshalJSON() ([]byte, error) {
	type payload UpdatePayload
	var fieldData *Document
	if p.FieldData != nil {
		fieldData = &p.FieldData
	}
	return json.Marshal(struct {
		FieldData *Document `json:"fieldData,omitempty"`
		payload
	}{fieldData, payload(p)})
}

// IsEmpty reports whether the payload would change nothing
func (p UpdatePayload) IsEmpty() bool {
	return p.FieldData == nil && p.IsArchived == nil && p.IsDraft == nil && p.CMSLocaleID == ""
}

// ItemSummary is the part of an item kept in the local search index and in
// saved item lists. It never carries field data.
type ItemSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	LastUpdated time.Time `json:"lastUpdated"`
	CreatedOn   time.Time `json:"createdOn"`
	IsArchived  bool      `json:"-"`
	IsDraft     bool      `json:"-"`
}
