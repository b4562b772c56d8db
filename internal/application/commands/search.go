package commands

import (
	"context"
	"sort"
	"strings"

	"flowdoc/internal/application"
	"flowdoc/internal/domain"
	"flowdoc/internal/ports"
)

// SearchResult wraps domain.ItemSummary with a relevance score
type SearchResult struct {
	domain.ItemSummary
	Score int
}

// SearchCommand searches the local item index with fuzzy matching
type SearchCommand struct {
	index        ports.ItemIndex
	CollectionID string
	Query        string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(index ports.ItemIndex, collectionID, query string) *SearchCommand {
	return &SearchCommand{
		index:        index,
		CollectionID: collectionID,
		Query:        query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if err := application.ValidateRequired("collectionID", c.CollectionID); err != nil {
		return nil, err
	}
	if len(c.Query) < 2 {
		return nil, nil
	}

	results, err := c.index.Search(c.CollectionID, c.Query)
	if err != nil {
		return nil, err
	}

	return FuzzySort(results, c.Query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		// Bonus if it starts with query
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '-' || target[i-1] == '_') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores summaries against the query by ID, name and slug, drops
// non-matches and sorts the rest by relevance
func FuzzySort(items []domain.ItemSummary, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(items))

	for _, it := range items {
		best := max(
			FuzzyScore(it.ID, query),
			FuzzyScore(it.Name, query),
			FuzzyScore(it.Slug, query),
		)

		if best > 0 {
			scored = append(scored, SearchResult{
				ItemSummary: it,
				Score:       best,
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
