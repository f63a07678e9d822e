package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/nmaclean/liftbase/internal/exercise"
)

const defaultLocale = "en"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadApproved returns the catalog entries eligible for matching in the
// given locale, with English translations included as a fallback. Only
// approved entries participate in matching; pending ones wait for review.
func (s *Store) LoadApproved(ctx context.Context, locale string) ([]exercise.CatalogExercise, error) {
	terms, err := s.loadSearchTerms(ctx, locale)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT e.id, e.slug, t.id, t.locale, t.name
		FROM exercises e
		JOIN exercise_translations t ON t.exercise_id = e.id
		WHERE e.status = $1 AND t.locale IN ($2, $3)
		ORDER BY e.slug, t.locale
	`

	rows, err := s.db.QueryContext(ctx, query, exercise.StatusApproved, locale, defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	defer rows.Close()

	var (
		exercises []exercise.CatalogExercise
		byID      = make(map[uuid.UUID]int)
	)

	for rows.Next() {
		var (
			exID, trID uuid.UUID
			slug       string
			tr         exercise.Translation
		)

		if err := rows.Scan(&exID, &slug, &trID, &tr.Locale, &tr.Name); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}

		tr.SearchTerms = terms[trID]

		idx, ok := byID[exID]
		if !ok {
			idx = len(exercises)
			byID[exID] = idx

			exercises = append(exercises, exercise.CatalogExercise{ID: exID, Slug: slug})
		}

		exercises[idx].Translations = append(exercises[idx].Translations, tr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog rows: %w", err)
	}

	return exercises, nil
}

// loadSearchTerms collects the curated search terms per translation ID for
// all approved entries visible in the locale.
func (s *Store) loadSearchTerms(ctx context.Context, locale string) (map[uuid.UUID][]string, error) {
	query := `
		SELECT st.translation_id, st.term
		FROM exercise_search_terms st
		JOIN exercise_translations t ON t.id = st.translation_id
		JOIN exercises e ON e.id = t.exercise_id
		WHERE e.status = $1 AND t.locale IN ($2, $3)
		ORDER BY st.term
	`

	rows, err := s.db.QueryContext(ctx, query, exercise.StatusApproved, locale, defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("loading search terms: %w", err)
	}
	defer rows.Close()

	terms := make(map[uuid.UUID][]string)

	for rows.Next() {
		var (
			trID uuid.UUID
			term string
		)

		if err := rows.Scan(&trID, &term); err != nil {
			return nil, fmt.Errorf("scanning search term: %w", err)
		}

		terms[trID] = append(terms[trID], term)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search terms: %w", err)
	}

	return terms, nil
}

// InsertPending creates a minimally populated catalog entry awaiting
// review, with a single translation in the requested locale. The exercise
// and its translation are inserted in one database transaction.
func (s *Store) InsertPending(ctx context.Context, slug, locale, name string, creatorID uuid.UUID) (uuid.UUID, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	exerciseQuery := `
		INSERT INTO exercises (slug, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`

	var id uuid.UUID
	if err := dbTx.QueryRowContext(ctx, exerciseQuery, slug, exercise.StatusPending, creatorID).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("inserting exercise: %w", err)
	}

	translationQuery := `
		INSERT INTO exercise_translations (exercise_id, locale, name)
		VALUES ($1, $2, $3)
	`
	if _, err := dbTx.ExecContext(ctx, translationQuery, id, locale, name); err != nil {
		return uuid.Nil, fmt.Errorf("inserting translation: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("committing transaction: %w", err)
	}

	return id, nil
}
