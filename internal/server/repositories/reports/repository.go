package reports

import (
	"context"

	"github.com/dmitrijs2005/examhub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.Report) (*models.Report, error)
	CountPending(ctx context.Context, reportType, reportedID string) (int, error)
}
