package likes

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

func (r *PostgresRepository) Exists(ctx context.Context, examID, userID string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM exam_likes WHERE exam_id = $1 AND user_id = $2)`,
		examID, userID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}

func (r *PostgresRepository) Create(ctx context.Context, examID, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO exam_likes (exam_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		examID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, examID, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM exam_likes WHERE exam_id = $1 AND user_id = $2`, examID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
