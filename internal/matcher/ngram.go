package matcher

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/nmaclean/liftbase/internal/exercise"
)

// ngramPad is the sentinel padded onto both ends of a string before n-gram
// extraction, so prefixes and suffixes carry their own context.
const ngramPad = "$"

// indexEntry is one indexed (exercise, name) pair. Entries are immutable
// once the index is built; the index is rebuilt wholesale when the catalog
// snapshot changes, never patched in place.
type indexEntry struct {
	ExerciseID uuid.UUID
	Name       string
	Slug       string
	Locale     string
	Normalized string
	Phonetic   string
	SearchTerm bool
	Ngrams     map[string]struct{}
}

// ngramIndex is an inverted index from character n-grams to the entries
// containing them. Candidate retrieval walks only the posting lists of the
// input's n-grams instead of scanning the whole catalog.
type ngramIndex struct {
	size     int
	postings map[string][]*indexEntry
	entries  []*indexEntry
}

// ngramSet extracts the padded n-gram set of an already-normalized string.
func ngramSet(normalized string, n int) map[string]struct{} {
	grams := make(map[string]struct{})
	if normalized == "" {
		return grams
	}

	pad := strings.Repeat(ngramPad, n-1)
	runes := []rune(pad + normalized + pad)

	for i := 0; i+n <= len(runes); i++ {
		grams[string(runes[i:i+n])] = struct{}{}
	}

	return grams
}

// buildIndex derives the inverted index from a catalog snapshot. Every
// translation contributes an entry for its display name; every curated
// search term contributes one more under the same display name. Entries are
// deduplicated per (exercise, indexed string) to keep posting lists tight.
func buildIndex(exercises []exercise.CatalogExercise, n int) *ngramIndex {
	ix := &ngramIndex{
		size:     n,
		postings: make(map[string][]*indexEntry),
	}

	type entryKey struct {
		id         uuid.UUID
		normalized string
	}

	seen := make(map[entryKey]struct{})

	add := func(ex exercise.CatalogExercise, tr exercise.Translation, indexed string, searchTerm bool) {
		normalized := Normalize(indexed)
		if normalized == "" {
			return
		}

		key := entryKey{id: ex.ID, normalized: normalized}
		if _, dup := seen[key]; dup {
			return
		}

		seen[key] = struct{}{}

		entry := &indexEntry{
			ExerciseID: ex.ID,
			Name:       tr.Name,
			Slug:       ex.Slug,
			Locale:     tr.Locale,
			Normalized: normalized,
			Phonetic:   PhoneticCode(tr.Name),
			SearchTerm: searchTerm,
			Ngrams:     ngramSet(normalized, n),
		}

		ix.entries = append(ix.entries, entry)

		for gram := range entry.Ngrams {
			ix.postings[gram] = append(ix.postings[gram], entry)
		}
	}

	for _, ex := range exercises {
		for _, tr := range ex.Translations {
			add(ex, tr, tr.Name, false)

			for _, term := range tr.SearchTerms {
				add(ex, tr, term, true)
			}
		}
	}

	return ix
}

// rankedEntry is an index candidate with its Jaccard similarity to the input.
type rankedEntry struct {
	entry   *indexEntry
	jaccard float64
}

// candidates retrieves and ranks index entries for a normalized input.
// Posting-list hits are tallied per entry; the tally equals the n-gram
// intersection size, which feeds Jaccard = intersection/union. Entries above the
// similarity floor are returned best first, capped at maxCandidates.
func (ix *ngramIndex) candidates(normalized string, floor float64, maxCandidates int) []rankedEntry {
	grams := ngramSet(normalized, ix.size)
	if len(grams) == 0 {
		return nil
	}

	hits := make(map[*indexEntry]int)

	for gram := range grams {
		for _, entry := range ix.postings[gram] {
			hits[entry]++
		}
	}

	ranked := make([]rankedEntry, 0, len(hits))

	for entry, intersection := range hits {
		union := len(grams) + len(entry.Ngrams) - intersection

		jaccard := float64(intersection) / float64(union)
		if jaccard <= floor {
			continue
		}

		ranked = append(ranked, rankedEntry{entry: entry, jaccard: jaccard})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].jaccard != ranked[j].jaccard {
			return ranked[i].jaccard > ranked[j].jaccard
		}

		// Deterministic order for equal similarity.
		if ranked[i].entry.Normalized != ranked[j].entry.Normalized {
			return ranked[i].entry.Normalized < ranked[j].entry.Normalized
		}

		return ranked[i].entry.ExerciseID.String() < ranked[j].entry.ExerciseID.String()
	})

	if len(ranked) > maxCandidates {
		ranked = ranked[:maxCandidates]
	}

	return ranked
}
