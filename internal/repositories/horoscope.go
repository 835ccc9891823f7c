package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/personal-horoscope/internal/errs"
	"github.com/sbilibin2017/personal-horoscope/internal/models"
)

const horoscopeColumns = `id, user_id, date, zodiac_sign, content, mood, compatibility,
	lucky_number, lucky_time, lucky_color, created_at, updated_at`

// HoroscopeReadRepository reads horoscopes from PostgreSQL.
type HoroscopeReadRepository struct {
	db *sqlx.DB
}

func NewHoroscopeReadRepository(db *sqlx.DB) *HoroscopeReadRepository {
	return &HoroscopeReadRepository{db: db}
}

// FindForDay returns the user's horoscope dated within [day, day+24h), or nil if absent.
func (r *HoroscopeReadRepository) FindForDay(ctx context.Context, userID uuid.UUID, day time.Time) (*models.HoroscopeDB, error) {
	const query = `
		SELECT ` + horoscopeColumns + `
		FROM horoscopes
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
		LIMIT 1
	`
	args := []any{userID, day, day.Add(24 * time.Hour)}

	var h models.HoroscopeDB
	err := r.db.GetContext(ctx, &h, query, args...)
	logQuery(query, args, h.ID, err)

	if err = mapPgError(err); err != nil {
		if err == errs.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return normalizeHoroscope(&h), nil
}

// FindHistory returns the user's horoscopes dated on or after since, newest first.
func (r *HoroscopeReadRepository) FindHistory(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.HoroscopeDB, error) {
	const query = `
		SELECT ` + horoscopeColumns + `
		FROM horoscopes
		WHERE user_id = $1 AND date >= $2
		ORDER BY date DESC
	`
	args := []any{userID, since}

	history := []models.HoroscopeDB{}
	err := r.db.SelectContext(ctx, &history, query, args...)
	logQuery(query, args, len(history), err)

	if err != nil {
		return nil, errs.Storage(err)
	}
	for i := range history {
		normalizeHoroscope(&history[i])
	}
	return history, nil
}

// HoroscopeWriteRepository writes horoscopes to PostgreSQL.
type HoroscopeWriteRepository struct {
	db *sqlx.DB
}

func NewHoroscopeWriteRepository(db *sqlx.DB) *HoroscopeWriteRepository {
	return &HoroscopeWriteRepository{db: db}
}

// Create inserts a horoscope dated at the UTC midnight of h.Date.
// A second record for the same user and day yields errs.ErrConflict.
func (r *HoroscopeWriteRepository) Create(ctx context.Context, h *models.HoroscopeDB) (*models.HoroscopeDB, error) {
	const query = `
		INSERT INTO horoscopes (id, user_id, date, zodiac_sign, content, mood, compatibility,
			lucky_number, lucky_time, lucky_color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING ` + horoscopeColumns
	args := []any{
		h.ID, h.UserID, models.DayStart(h.Date), string(h.ZodiacSign), h.Content,
		h.Mood, h.Compatibility, h.LuckyNumber, h.LuckyTime, h.LuckyColor,
	}

	var created models.HoroscopeDB
	err := r.db.GetContext(ctx, &created, query, args...)
	logQuery(query, args, created.ID, err)

	if err = mapPgError(err); err != nil {
		return nil, err
	}
	return normalizeHoroscope(&created), nil
}

// UpdateByID applies the non-nil patch fields. A missing id yields errs.ErrNotFound.
func (r *HoroscopeWriteRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch models.HoroscopePatch) (*models.HoroscopeDB, error) {
	const query = `
		UPDATE horoscopes SET
			zodiac_sign   = COALESCE($2, zodiac_sign),
			content       = COALESCE($3, content),
			mood          = COALESCE($4, mood),
			compatibility = COALESCE($5, compatibility),
			lucky_number  = COALESCE($6, lucky_number),
			lucky_time    = COALESCE($7, lucky_time),
			lucky_color   = COALESCE($8, lucky_color),
			updated_at    = NOW()
		WHERE id = $1
		RETURNING ` + horoscopeColumns

	var sign *string
	if patch.ZodiacSign != nil {
		s := string(*patch.ZodiacSign)
		sign = &s
	}
	args := []any{
		id, sign, patch.Content, patch.Mood, patch.Compatibility,
		patch.LuckyNumber, patch.LuckyTime, patch.LuckyColor,
	}

	var updated models.HoroscopeDB
	err := r.db.GetContext(ctx, &updated, query, args...)
	logQuery(query, args, updated.ID, err)

	if err = mapPgError(err); err != nil {
		return nil, err
	}
	return normalizeHoroscope(&updated), nil
}

// DeleteByID removes a horoscope. A missing id yields errs.ErrNotFound.
func (r *HoroscopeWriteRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM horoscopes WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return errs.Storage(err)
	}
	if rowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func normalizeHoroscope(h *models.HoroscopeDB) *models.HoroscopeDB {
	h.Date = h.Date.UTC()
	h.CreatedAt = h.CreatedAt.UTC()
	h.UpdatedAt = h.UpdatedAt.UTC()
	return h
}
