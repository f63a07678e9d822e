package matcher

import "time"

// Config centralizes every tunable of the matching pipeline so thresholds
// are adjusted in one place instead of inside matching logic.
type Config struct {
	// DefaultThreshold is the confidence a candidate must reach for a
	// match to be accepted when the caller passes no threshold.
	DefaultThreshold float64

	// AliasConfidence is assigned to matches resolved through the synonym
	// table. PhoneticConfidence is assigned to phonetic-code matches,
	// deliberately below 1.0 since sound-alike matches are never certain.
	AliasConfidence    float64
	PhoneticConfidence float64

	// CreateMissingThreshold is the stricter threshold CreateMissing
	// re-matches at before inserting a new entry.
	CreateMissingThreshold float64

	// NgramSize is the character n-gram length used by the index.
	// JaccardFloor discards index candidates at or below this similarity.
	// MaxCandidates bounds how many index candidates are scored.
	NgramSize     int
	JaccardFloor  float64
	MaxCandidates int

	// JaccardWeight and LevenshteinWeight combine the two similarity
	// signals for index candidates. SearchTermFactor discounts similarity
	// against curated search terms relative to display names.
	JaccardWeight     float64
	LevenshteinWeight float64
	SearchTermFactor  float64

	// PrefilterFactor scales the call threshold into the keep-bar applied
	// while collecting candidates (kept ≥ PrefilterFactor * threshold).
	PrefilterFactor float64

	// MinCandidates triggers the full-scan fallback when the index yields
	// fewer survivors. Tunable: the right floor depends on catalog and
	// n-gram size.
	MinCandidates int

	// MaxSuggestions caps the alternatives attached to a result.
	MaxSuggestions int

	// BatchWindow is how many names a batch matches concurrently before
	// awaiting the window.
	BatchWindow int

	// CatalogTTL and IndexTTL expire the catalog snapshot and derived
	// n-gram index together; ResultTTL is shorter since match outcomes
	// are cheap to recompute.
	CatalogTTL time.Duration
	IndexTTL   time.Duration
	ResultTTL  time.Duration
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	return Config{
		DefaultThreshold:       0.7,
		AliasConfidence:        0.95,
		PhoneticConfidence:     0.75,
		CreateMissingThreshold: 0.95,
		NgramSize:              3,
		JaccardFloor:           0.1,
		MaxCandidates:          50,
		JaccardWeight:          0.4,
		LevenshteinWeight:      0.6,
		SearchTermFactor:       0.9,
		PrefilterFactor:        0.7,
		MinCandidates:          3,
		MaxSuggestions:         5,
		BatchWindow:            10,
		CatalogTTL:             30 * time.Minute,
		IndexTTL:               30 * time.Minute,
		ResultTTL:              5 * time.Minute,
	}
}
