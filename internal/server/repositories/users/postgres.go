package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/examhub/internal/common"
	"github.com/dmitrijs2005/examhub/internal/dbx"
	"github.com/dmitrijs2005/examhub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts user with its preassigned ID and fills CreatedAt.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (id, telegram_id, username, bio, avatar_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.TelegramID, user.Username, user.Bio, user.AvatarURL).Scan(&user.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

const selectUser = `SELECT id, telegram_id, username, bio, avatar_url, created_at FROM users`

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.TelegramID, &u.Username, &u.Bio, &u.AvatarURL, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) GetByTelegramID(ctx context.Context, telegramID string) (*models.User, error) {
	return r.getOne(ctx, selectUser+` WHERE telegram_id = $1`, telegramID)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, selectUser+` WHERE id = $1`, id)
}

func (r *PostgresRepository) UpdateAvatar(ctx context.Context, id, avatarURL string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET avatar_url = $1 WHERE id = $2`, avatarURL, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Update applies the non-nil fields of upd and returns the updated row.
func (r *PostgresRepository) Update(ctx context.Context, id string, upd models.ProfileUpdate) (*models.User, error) {

	query :=
		`UPDATE users SET
		   username   = COALESCE($1, username),
		   bio        = COALESCE($2, bio),
		   avatar_url = COALESCE($3, avatar_url)
		 WHERE id = $4
		 RETURNING id, telegram_id, username, bio, avatar_url, created_at`

	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, nullable(upd.Username), nullable(upd.Bio), nullable(upd.AvatarURL), id).
		Scan(&u.ID, &u.TelegramID, &u.Username, &u.Bio, &u.AvatarURL, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
