package exercise

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("exercise not found")

// Status represents the review state of a catalog entry.
type Status string

const (
	StatusApproved Status = "approved"
	StatusPending  Status = "pending"
)

// Translation is one localized name of a catalog exercise, together with
// extra search terms curated for that locale.
type Translation struct {
	Locale      string
	Name        string
	SearchTerms []string
}

// CatalogExercise is an immutable snapshot of one catalog entry as loaded
// from the store. The matching engine never mutates it.
type CatalogExercise struct {
	ID           uuid.UUID
	Slug         string
	Translations []Translation
}

// Method identifies which matching strategy produced a result.
type Method string

const (
	MethodExact    Method = "exact"
	MethodAlias    Method = "alias"
	MethodNgram    Method = "ngram"
	MethodFuzzy    Method = "fuzzy"
	MethodPhonetic Method = "phonetic"
)

// Suggestion is one alternative candidate returned alongside a match.
type Suggestion struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Confidence float64   `json:"confidence"`
}

// MatchResult is the outcome of resolving a single free-text name against
// the catalog. Found is true when Confidence cleared the threshold used for
// the call; Method is empty when Found is false. Suggestions lists
// alternatives only, best first, and never includes the accepted match.
type MatchResult struct {
	OriginalName string       `json:"original_name"`
	MatchedID    *uuid.UUID   `json:"matched_id,omitempty"`
	MatchedName  string       `json:"matched_name,omitempty"`
	MatchedSlug  string       `json:"matched_slug,omitempty"`
	Confidence   float64      `json:"confidence"`
	Found        bool         `json:"found"`
	Suggestions  []Suggestion `json:"suggestions"`
	Method       Method       `json:"match_method,omitempty"`
}
