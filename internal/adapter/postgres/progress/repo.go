// Package progress implements the progress repository on PostgreSQL:
// one row per rated card plus a key/value settings table for the voice
// preference.
package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/flashdeck/internal/adapter/postgres"
	"github.com/heartmarshall/flashdeck/internal/domain"
)

const voiceURIKey = "voice_uri"

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides progress persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new progress repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Load reads the full progress document: every rating row plus the
// voice preference.
func (r *Repo) Load(ctx context.Context) (domain.ProgressState, error) {
	state := domain.NewProgressState()

	query, args, err := qb.
		Select("card_id", "level", "rated_at").
		From("ratings").
		ToSql()
	if err != nil {
		return domain.ProgressState{}, fmt.Errorf("build ratings query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return domain.ProgressState{}, postgres.MapError(err, "load ratings")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cardID string
			rec    domain.RatingRecord
		)
		if err := rows.Scan(&cardID, &rec.Level, &rec.At); err != nil {
			return domain.ProgressState{}, postgres.MapError(err, "scan rating")
		}
		state.Ratings[cardID] = rec
	}
	if err := rows.Err(); err != nil {
		return domain.ProgressState{}, postgres.MapError(err, "iterate ratings")
	}

	voice, err := r.loadVoice(ctx)
	if err != nil {
		return domain.ProgressState{}, err
	}
	state.VoiceURI = voice

	return state, nil
}

// SaveRating upserts the rating row for the card.
func (r *Repo) SaveRating(ctx context.Context, cardID string, rec domain.RatingRecord) error {
	query, args, err := qb.
		Insert("ratings").
		Columns("card_id", "level", "rated_at").
		Values(cardID, rec.Level, rec.At).
		Suffix("ON CONFLICT (card_id) DO UPDATE SET level = EXCLUDED.level, rated_at = EXCLUDED.rated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build rating upsert: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "save rating")
	}
	return nil
}

// SaveVoice upserts the voice preference setting.
func (r *Repo) SaveVoice(ctx context.Context, voiceURI string) error {
	query, args, err := qb.
		Insert("settings").
		Columns("key", "value").
		Values(voiceURIKey, voiceURI).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("build voice upsert: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "save voice")
	}
	return nil
}

// Reset deletes all rating rows. Settings survive.
func (r *Repo) Reset(ctx context.Context) error {
	query, args, err := qb.Delete("ratings").ToSql()
	if err != nil {
		return fmt.Errorf("build ratings delete: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "reset ratings")
	}
	return nil
}

func (r *Repo) loadVoice(ctx context.Context) (string, error) {
	query, args, err := qb.
		Select("value").
		From("settings").
		Where(squirrel.Eq{"key": voiceURIKey}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build voice query: %w", err)
	}

	var voice string
	err = r.db.QueryRow(ctx, query, args...).Scan(&voice)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", postgres.MapError(err, "load voice")
	}
	return voice, nil
}
