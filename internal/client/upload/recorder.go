package upload

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/examhub/internal/client/client"
	"github.com/dmitrijs2005/examhub/internal/client/models"
	"github.com/dmitrijs2005/examhub/internal/dbx"
	"github.com/google/uuid"
)

// APIRecorder creates the exam through POST /api/exams, keeping the
// client-generated id.
type APIRecorder struct {
	api client.API
}

func NewAPIRecorder(api client.API) *APIRecorder {
	return &APIRecorder{api: api}
}

func (r *APIRecorder) RecordExam(ctx context.Context, rec ExamRecord) error {
	_, err := r.api.CreateExam(ctx, models.NewExam{
		ID:           rec.ID,
		UniversityID: rec.UniversityID,
		CourseID:     rec.CourseID,
		Year:         rec.Year,
		ExamType:     rec.ExamType,
		TeacherName:  rec.TeacherName,
		Title:        rec.Title,
		Files:        rec.Pages,
	})
	return err
}

// SQLRecorder inserts the exam and its page rows directly, in one
// transaction.
type SQLRecorder struct {
	db *sql.DB
}

func NewSQLRecorder(db *sql.DB) *SQLRecorder {
	return &SQLRecorder{db: db}
}

func (r *SQLRecorder) RecordExam(ctx context.Context, rec ExamRecord) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO exams (id, user_id, university_id, course_id, year, exam_type, teacher_name, title)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			rec.ID, rec.OwnerID, rec.UniversityID, rec.CourseID, rec.Year, rec.ExamType, rec.TeacherName, rec.Title)
		if err != nil {
			return fmt.Errorf("insert exam: %w", err)
		}

		for i, page := range rec.Pages {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO exam_files (id, exam_id, file_url, page_order) VALUES ($1, $2, $3, $4)`,
				uuid.NewString(), rec.ID, page, i)
			if err != nil {
				return fmt.Errorf("insert exam file %d: %w", i, err)
			}
		}
		return nil
	})
}
