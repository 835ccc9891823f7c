package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/personal-horoscope/internal/errs"
	"github.com/sbilibin2017/personal-horoscope/internal/models"
)

const userColumns = `user_id, name, email, password_hash, birthdate, zodiac_sign, created_at, updated_at`

// UserReadRepository reads users from PostgreSQL.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil if there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)
	logQuery(query, []any{email}, user.UserID, err)

	if err = mapPgError(err); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return normalizeUser(&user), nil
}

// GetByID returns the user with the given id or errs.ErrNotFound.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)
	logQuery(query, []any{userID}, user.Email, err)

	if err = mapPgError(err); err != nil {
		return nil, err
	}
	return normalizeUser(&user), nil
}

// UserWriteRepository writes users to PostgreSQL.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. A duplicate email yields errs.ErrConflict.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (user_id, name, email, password_hash, birthdate, zodiac_sign, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + userColumns

	args := []any{user.UserID, user.Name, user.Email, user.PasswordHash, user.Birthdate, string(user.ZodiacSign)}

	var saved models.UserDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	// Never log the password hash
	logQuery(query, []any{user.UserID, user.Name, user.Email, "***", user.Birthdate, user.ZodiacSign}, saved.UserID, err)

	if err = mapPgError(err); err != nil {
		return nil, err
	}
	return normalizeUser(&saved), nil
}

func normalizeUser(u *models.UserDB) *models.UserDB {
	u.Birthdate = u.Birthdate.UTC()
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u
}
