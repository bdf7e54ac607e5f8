package follows

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/examhub/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2)`,
		followerID, followingID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}

// Create is a no-op when the pair already exists.
func (r *PostgresRepository) Create(ctx context.Context, followerID, followingID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO follows (follower_id, following_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		followerID, followingID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, followerID, followingID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`,
		followerID, followingID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Counts(ctx context.Context, userID string) (int, int, error) {
	var followers, following int
	err := r.db.QueryRowContext(ctx,
		`SELECT
		   (SELECT count(*) FROM follows WHERE following_id = $1),
		   (SELECT count(*) FROM follows WHERE follower_id = $1)`,
		userID).Scan(&followers, &following)
	if err != nil {
		return 0, 0, fmt.Errorf("db error: %w", err)
	}
	return followers, following, nil
}
