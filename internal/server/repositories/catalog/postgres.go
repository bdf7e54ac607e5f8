package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/examhub/internal/dbx"
	"github.com/dmitrijs2005/examhub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type namedRow struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// listNamed reads id, name, created_at rows of table ordered by name.
func (r *PostgresRepository) listNamed(ctx context.Context, table string) ([]namedRow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM `+table+` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []namedRow
	for rows.Next() {
		var n namedRow
		if err := rows.Scan(&n.ID, &n.Name, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) insertNamed(ctx context.Context, table, id, name string) (time.Time, error) {
	var created time.Time
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO `+table+` (id, name) VALUES ($1, $2) RETURNING created_at`, id, name).Scan(&created)
	if err != nil {
		return time.Time{}, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

func (r *PostgresRepository) ListUniversities(ctx context.Context) ([]models.University, error) {
	rows, err := r.listNamed(ctx, "universities")
	if err != nil {
		return nil, err
	}
	out := make([]models.University, len(rows))
	for i, n := range rows {
		out[i] = models.University{ID: n.ID, Name: n.Name, CreatedAt: n.CreatedAt}
	}
	return out, nil
}

func (r *PostgresRepository) CreateUniversity(ctx context.Context, u *models.University) (*models.University, error) {
	created, err := r.insertNamed(ctx, "universities", u.ID, u.Name)
	if err != nil {
		return nil, err
	}
	u.CreatedAt = created
	return u, nil
}

func (r *PostgresRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	rows, err := r.listNamed(ctx, "courses")
	if err != nil {
		return nil, err
	}
	out := make([]models.Course, len(rows))
	for i, n := range rows {
		out[i] = models.Course{ID: n.ID, Name: n.Name, CreatedAt: n.CreatedAt}
	}
	return out, nil
}

func (r *PostgresRepository) CreateCourse(ctx context.Context, c *models.Course) (*models.Course, error) {
	created, err := r.insertNamed(ctx, "courses", c.ID, c.Name)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = created
	return c, nil
}
