package matcher

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/nmaclean/liftbase/internal/exercise"
)

const defaultLocale = "en"

//go:generate mockgen -source=engine.go -destination=store_mock.go -package=matcher

// CatalogStore supplies the catalog snapshot the engine matches against and
// accepts new pending entries. LoadApproved must return only entries
// eligible for matching.
type CatalogStore interface {
	LoadApproved(ctx context.Context, locale string) ([]exercise.CatalogExercise, error)
	InsertPending(ctx context.Context, slug, locale, name string, creatorID uuid.UUID) (uuid.UUID, error)
}

// Engine resolves free-text exercise names to catalog entries through an
// ordered strategy: result cache, exact, alias, n-gram plus edit distance,
// phonetic fallback. Catalog snapshots and the derived n-gram index are
// cached per locale with a TTL and replaced wholesale on refresh, so
// concurrent readers never see a partially built structure.
type Engine struct {
	store   CatalogStore
	cfg     Config
	aliases *AliasTable

	catalogs *gocache.Cache // locale -> []exercise.CatalogExercise
	indexes  *gocache.Cache // locale -> *ngramIndex
	results  *gocache.Cache // locale|threshold|normalized -> exercise.MatchResult

	loadGroup  singleflight.Group
	buildGroup singleflight.Group
}

// NewEngine builds an engine with its own isolated caches.
func NewEngine(store CatalogStore, cfg Config) *Engine {
	return &Engine{
		store:    store,
		cfg:      cfg,
		aliases:  NewAliasTable(),
		catalogs: gocache.New(cfg.CatalogTTL, cfg.CatalogTTL),
		indexes:  gocache.New(cfg.IndexTTL, cfg.IndexTTL),
		results:  gocache.New(cfg.ResultTTL, cfg.ResultTTL),
	}
}

// Match resolves a single name. A non-positive threshold selects the
// configured default; an empty locale selects "en". "No match" is a normal
// outcome, not an error; the only errors are catalog load failures.
func (e *Engine) Match(ctx context.Context, name, locale string, threshold float64) (*exercise.MatchResult, error) {
	if locale == "" {
		locale = defaultLocale
	}

	if threshold <= 0 {
		threshold = e.cfg.DefaultThreshold
	}

	normalized := Normalize(name)
	if normalized == "" {
		return &exercise.MatchResult{
			OriginalName: name,
			Suggestions:  []exercise.Suggestion{},
		}, nil
	}

	key := resultKey(locale, threshold, normalized)

	if v, ok := e.results.Get(key); ok {
		// The cache is keyed on the normalized form; rehydrate the raw
		// input of this call.
		res := v.(exercise.MatchResult)
		res.OriginalName = name

		return &res, nil
	}

	res, err := e.resolve(ctx, name, normalized, locale, threshold)
	if err != nil {
		return nil, err
	}

	// Misses are cached too, so repeated unknown names do not re-walk
	// the pipeline.
	e.results.Set(key, *res, gocache.DefaultExpiration)

	return res, nil
}

// MatchAll resolves a batch of names. Input names are deduplicated on their
// raw form (the original casing round-trips into OriginalName), the catalog
// and index are warmed once up front, and the deduplicated names are
// matched in fixed-size concurrent windows, each window awaited before the
// next starts.
func (e *Engine) MatchAll(ctx context.Context, names []string, locale string, threshold float64) (map[string]*exercise.MatchResult, error) {
	results := make(map[string]*exercise.MatchResult, len(names))
	if len(names) == 0 {
		return results, nil
	}

	if locale == "" {
		locale = defaultLocale
	}

	// Pre-warm: a catalog load failure aborts the whole batch here,
	// before any window is dispatched.
	if _, err := e.index(ctx, locale); err != nil {
		return nil, err
	}

	unique := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}
		unique = append(unique, name)
	}

	var mu sync.Mutex

	window := e.cfg.BatchWindow
	if window <= 0 {
		window = 1
	}

	for start := 0; start < len(unique); start += window {
		end := min(start+window, len(unique))

		g, gctx := errgroup.WithContext(ctx)

		for _, name := range unique[start:end] {
			g.Go(func() error {
				res, err := e.Match(gctx, name, locale, threshold)
				if err != nil {
					return err
				}

				mu.Lock()
				results[name] = res
				mu.Unlock()

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// CreateMissing materializes an unmatched name as a new pending catalog
// entry. It first re-matches at the stricter configured threshold to avoid
// racing a duplicate creation and returns the existing ID when that still
// resolves. On insert, all caches are invalidated; the next read rebuilds
// from the store.
func (e *Engine) CreateMissing(ctx context.Context, name, locale string, requesterID uuid.UUID) (uuid.UUID, error) {
	if locale == "" {
		locale = defaultLocale
	}

	res, err := e.Match(ctx, name, locale, e.cfg.CreateMissingThreshold)
	if err != nil {
		return uuid.Nil, err
	}

	if res.Found && res.MatchedID != nil {
		return *res.MatchedID, nil
	}

	id, err := e.store.InsertPending(ctx, uniqueSlug(name), locale, name, requesterID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting pending exercise: %w", err)
	}

	e.InvalidateCaches()

	return id, nil
}

// InvalidateCaches drops the catalog snapshots, the derived indexes and all
// memoized match results together. The three must always go at once: a
// stale result cache could keep reporting found=false for a name that was
// just resolved by creating a new entry.
func (e *Engine) InvalidateCaches() {
	e.catalogs.Flush()
	e.indexes.Flush()
	e.results.Flush()
}

func (e *Engine) catalog(ctx context.Context, locale string) ([]exercise.CatalogExercise, error) {
	if v, ok := e.catalogs.Get(locale); ok {
		return v.([]exercise.CatalogExercise), nil
	}

	// Single-writer gate: under a cache race only one caller loads;
	// recomputing after a lost race would also be correct, just wasteful.
	v, err, _ := e.loadGroup.Do(locale, func() (any, error) {
		exs, err := e.store.LoadApproved(ctx, locale)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}

		e.catalogs.Set(locale, exs, gocache.DefaultExpiration)

		return exs, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]exercise.CatalogExercise), nil
}

func (e *Engine) index(ctx context.Context, locale string) (*ngramIndex, error) {
	if v, ok := e.indexes.Get(locale); ok {
		return v.(*ngramIndex), nil
	}

	exs, err := e.catalog(ctx, locale)
	if err != nil {
		return nil, err
	}

	v, err, _ := e.buildGroup.Do(locale, func() (any, error) {
		ix := buildIndex(exs, e.cfg.NgramSize)
		e.indexes.Set(locale, ix, gocache.DefaultExpiration)

		return ix, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*ngramIndex), nil
}

// scoredCandidate accumulates the best score seen for one (exercise, name)
// pair across pipeline steps.
type scoredCandidate struct {
	entry  *indexEntry
	score  float64
	method exercise.Method
}

// resolve walks the strategy chain for one name. Strict priority order,
// terminating at the first certain step; fuzzy and phonetic candidates
// accumulate and are decided together at the end.
func (e *Engine) resolve(ctx context.Context, name, normalized, locale string, threshold float64) (*exercise.MatchResult, error) {
	ix, err := e.index(ctx, locale)
	if err != nil {
		return nil, err
	}

	// Exact: format-insensitive equality against any translation name.
	for _, entry := range ix.entries {
		if !entry.SearchTerm && entry.Normalized == normalized {
			return accepted(name, entry, 1.0, exercise.MethodExact, nil), nil
		}
	}

	// Alias: the input and a translation share a canonical synonym key.
	if key, ok := e.aliases.canonicalOfNormalized(normalized); ok {
		for _, entry := range ix.entries {
			if entry.SearchTerm {
				continue
			}

			entryKey, known := e.aliases.canonicalOfNormalized(entry.Normalized)
			if known && entryKey == key {
				return accepted(name, entry, e.cfg.AliasConfidence, exercise.MethodAlias, nil), nil
			}
		}
	}

	type candKey struct {
		id   uuid.UUID
		name string
	}

	scored := make(map[candKey]*scoredCandidate)

	keep := func(entry *indexEntry, score float64, method exercise.Method, replace bool) {
		k := candKey{id: entry.ExerciseID, name: entry.Name}

		existing, ok := scored[k]
		if !ok {
			scored[k] = &scoredCandidate{entry: entry, score: score, method: method}
			return
		}

		if replace && score > existing.score {
			existing.entry = entry
			existing.score = score
			existing.method = method
		}
	}

	bar := e.cfg.PrefilterFactor * threshold

	// N-gram retrieval plus edit-distance scoring. Search-term entries
	// are discounted so a curated term can never outrank a display name,
	// and only a true exact match reports confidence 1.0.
	for _, ranked := range ix.candidates(normalized, e.cfg.JaccardFloor, e.cfg.MaxCandidates) {
		score := e.cfg.JaccardWeight*ranked.jaccard +
			e.cfg.LevenshteinWeight*similarity(normalized, ranked.entry.Normalized)
		if ranked.entry.SearchTerm {
			score *= e.cfg.SearchTermFactor
		}

		if score >= bar {
			keep(ranked.entry, score, exercise.MethodNgram, true)
		}
	}

	// The index under-serves short or odd strings; when too few
	// candidates survive, fall back to scanning every translation and
	// search term.
	if len(scored) < e.cfg.MinCandidates {
		for _, entry := range ix.entries {
			score := similarity(normalized, entry.Normalized)
			if entry.SearchTerm {
				score *= e.cfg.SearchTermFactor
			}

			if score >= bar {
				keep(entry, score, exercise.MethodFuzzy, true)
			}
		}
	}

	best := 0.0
	for _, c := range scored {
		best = max(best, c.score)
	}

	// Phonetic fallback, last resort only: injects sound-alike entries
	// for exercises that have not scored yet, never overriding one that
	// already did.
	if best < threshold {
		scoredIDs := make(map[uuid.UUID]struct{}, len(scored))
		for k := range scored {
			scoredIDs[k.id] = struct{}{}
		}

		if code := PhoneticCode(name); code != "" {
			for _, entry := range ix.entries {
				if entry.SearchTerm {
					continue
				}

				if _, dup := scoredIDs[entry.ExerciseID]; dup {
					continue
				}

				if phoneticEqual(code, entry.Phonetic) {
					keep(entry, e.cfg.PhoneticConfidence, exercise.MethodPhonetic, false)
				}
			}
		}
	}

	candidates := make([]*scoredCandidate, 0, len(scored))
	for _, c := range scored {
		candidates = append(candidates, c)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}

		if candidates[i].entry.Normalized != candidates[j].entry.Normalized {
			return candidates[i].entry.Normalized < candidates[j].entry.Normalized
		}

		return candidates[i].entry.ExerciseID.String() < candidates[j].entry.ExerciseID.String()
	})

	if len(candidates) == 0 {
		return &exercise.MatchResult{
			OriginalName: name,
			Suggestions:  []exercise.Suggestion{},
		}, nil
	}

	top := candidates[0]
	if top.score >= threshold {
		return accepted(name, top.entry, top.score, top.method, suggestionsOf(candidates[1:], e.cfg.MaxSuggestions-1)), nil
	}

	return &exercise.MatchResult{
		OriginalName: name,
		Confidence:   top.score,
		Suggestions:  suggestionsOf(candidates, e.cfg.MaxSuggestions),
	}, nil
}

func accepted(name string, entry *indexEntry, confidence float64, method exercise.Method, suggestions []exercise.Suggestion) *exercise.MatchResult {
	id := entry.ExerciseID

	if suggestions == nil {
		suggestions = []exercise.Suggestion{}
	}

	return &exercise.MatchResult{
		OriginalName: name,
		MatchedID:    &id,
		MatchedName:  entry.Name,
		MatchedSlug:  entry.Slug,
		Confidence:   confidence,
		Found:        true,
		Suggestions:  suggestions,
		Method:       method,
	}
}

func suggestionsOf(candidates []*scoredCandidate, limit int) []exercise.Suggestion {
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	suggestions := make([]exercise.Suggestion, 0, len(candidates))

	for _, c := range candidates {
		suggestions = append(suggestions, exercise.Suggestion{
			ID:         c.entry.ExerciseID,
			Name:       c.entry.Name,
			Slug:       c.entry.Slug,
			Confidence: c.score,
		})
	}

	return suggestions
}

func resultKey(locale string, threshold float64, normalized string) string {
	return fmt.Sprintf("%s|%g|%s", locale, threshold, normalized)
}

// uniqueSlug derives a URL-safe slug from a raw name plus a short random
// suffix so concurrent creations of the same name cannot collide.
func uniqueSlug(name string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}

	slug := strings.Trim(b.String(), "-")

	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	if slug == "" {
		slug = "exercise"
	}

	return slug + "-" + uuid.NewString()[:8]
}
