package matcher

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmaclean/liftbase/internal/exercise"
)

func TestNgramSet(t *testing.T) {
	grams := ngramSet("row", 3)

	// Padded "$$row$$" yields prefix- and suffix-anchored trigrams.
	want := []string{"$$r", "$ro", "row", "ow$", "w$$"}
	require.Len(t, grams, len(want))

	for _, g := range want {
		assert.Contains(t, grams, g)
	}

	assert.Empty(t, ngramSet("", 3))
}

func TestBuildIndex_DeduplicatesEntries(t *testing.T) {
	id := uuid.New()
	exs := []exercise.CatalogExercise{
		{
			ID:   id,
			Slug: "bench-press",
			Translations: []exercise.Translation{
				{
					Locale: "en",
					Name:   "Barbell Bench Press",
					// First term collides with the name entry once
					// normalized; second is genuinely new.
					SearchTerms: []string{"Barbell Bench Press", "flat bench"},
				},
			},
		},
	}

	ix := buildIndex(exs, 3)

	require.Len(t, ix.entries, 2)
	assert.Equal(t, "barbell bench press", ix.entries[0].Normalized)
	assert.False(t, ix.entries[0].SearchTerm)
	assert.Equal(t, "flat bench", ix.entries[1].Normalized)
	assert.True(t, ix.entries[1].SearchTerm)

	for _, entry := range ix.entries {
		assert.Equal(t, id, entry.ExerciseID)
		assert.Equal(t, "Barbell Bench Press", entry.Name)
		assert.Equal(t, "bench-press", entry.Slug)
	}
}

func TestNgramIndex_Candidates(t *testing.T) {
	exs := []exercise.CatalogExercise{
		{
			ID:   uuid.New(),
			Slug: "barbell-back-squat",
			Translations: []exercise.Translation{
				{Locale: "en", Name: "Barbell Back Squat"},
			},
		},
		{
			ID:   uuid.New(),
			Slug: "front-squat",
			Translations: []exercise.Translation{
				{Locale: "en", Name: "Front Squat"},
			},
		},
		{
			ID:   uuid.New(),
			Slug: "deadlift",
			Translations: []exercise.Translation{
				{Locale: "en", Name: "Deadlift"},
			},
		},
	}

	ix := buildIndex(exs, 3)

	ranked := ix.candidates(Normalize("back squat"), 0.1, 50)
	require.NotEmpty(t, ranked)

	// Best first, and the closest translation wins.
	assert.Equal(t, "barbell back squat", ranked[0].entry.Normalized)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].jaccard, ranked[i].jaccard)
	}

	// An input sharing no trigrams retrieves nothing.
	assert.Empty(t, ix.candidates("zzzzqqqq", 0.1, 50))

	// The candidate cap is honored.
	capped := ix.candidates(Normalize("squat"), 0.0, 1)
	assert.Len(t, capped, 1)
}
