package reports

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/examhub/internal/dbx"
	"github.com/dmitrijs2005/examhub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rep *models.Report) (*models.Report, error) {

	query :=
		`INSERT INTO reports (id, reporter_id, report_type, reported_id, reason, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		rep.ID, rep.ReporterID, rep.ReportType, rep.ReportedID, rep.Reason, rep.Status).Scan(&rep.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rep, nil
}

func (r *PostgresRepository) CountPending(ctx context.Context, reportType, reportedID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM reports WHERE report_type = $1 AND reported_id = $2 AND status = 'pending'`,
		reportType, reportedID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
