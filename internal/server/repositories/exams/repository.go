package exams

import (
	"context"

	"github.com/dmitrijs2005/examhub/internal/server/models"
)

// Repository reads and writes exams. viewerID decides Exam.IsLiked.
type Repository interface {
	Create(ctx context.Context, e *models.Exam) (*models.Exam, error)
	AddFile(ctx context.Context, f *models.ExamFile) error
	List(ctx context.Context, viewerID string, filter models.ExamFilter) ([]models.Exam, error)
	Get(ctx context.Context, viewerID, id string) (*models.Exam, error)
	Files(ctx context.Context, examID string) ([]models.ExamFile, error)
	Hide(ctx context.Context, id string) error
}
