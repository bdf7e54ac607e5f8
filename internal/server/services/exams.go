package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/examhub/internal/common"
	"github.com/dmitrijs2005/examhub/internal/dbx"
	"github.com/dmitrijs2005/examhub/internal/server/models"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// ExamInput is a new exam as submitted by its author. Files are page URLs in
// page order.
type ExamInput struct {
	ID           string
	UniversityID string
	CourseID     string
	Year         int
	ExamType     string
	TeacherName  string
	Title        string
	Files        []string
}

func (in ExamInput) validate() error {
	switch {
	case strings.TrimSpace(in.UniversityID) == "":
		return common.Required("university_id")
	case strings.TrimSpace(in.CourseID) == "":
		return common.Required("course_id")
	case in.Year == 0:
		return common.Required("year")
	case strings.TrimSpace(in.ExamType) == "":
		return common.Required("exam_type")
	case len(in.Files) == 0:
		return common.Required("files")
	}
	return checkIDs("university_id", in.UniversityID, "course_id", in.CourseID, "id", in.ID)
}

type ExamService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewExamService(db *sql.DB, m repomanager.RepositoryManager) *ExamService {
	return &ExamService{db: db, repomanager: m}
}

// List returns visible exams, newest first, each with its pages. feedType
// "following" keeps only authors viewerID follows.
func (s *ExamService) List(ctx context.Context, viewerID, feedType string, f models.ExamFilter) ([]models.Exam, error) {
	switch feedType {
	case "", models.FeedAll:
	case models.FeedFollowing:
		f.FollowerID = viewerID
	default:
		return nil, common.Invalid("feed_type", "must be all or following")
	}
	if err := checkIDs("university_id", f.UniversityID, "course_id", f.CourseID, "user_id", f.UserID); err != nil {
		return nil, err
	}

	repo := s.repomanager.Exams(s.db)
	list, err := repo.List(ctx, viewerID, f)
	if err != nil {
		return nil, err
	}
	for i := range list {
		files, err := repo.Files(ctx, list[i].ID)
		if err != nil {
			return nil, err
		}
		list[i].Files = files
	}
	if list == nil {
		list = []models.Exam{}
	}
	return list, nil
}

func (s *ExamService) Get(ctx context.Context, viewerID, id string) (*models.Exam, error) {
	if !isID(id) {
		return nil, common.NotFound("Exam")
	}
	repo := s.repomanager.Exams(s.db)
	exam, err := repo.Get(ctx, viewerID, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.NotFound("Exam")
		}
		return nil, err
	}
	files, err := repo.Files(ctx, id)
	if err != nil {
		return nil, err
	}
	exam.Files = files
	return exam, nil
}

// Create stores the exam and its pages in one transaction. Pages keep the
// order of in.Files starting at 0.
func (s *ExamService) Create(ctx context.Context, authorID string, in ExamInput) (*models.Exam, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}

	exam := &models.Exam{
		ID:           in.ID,
		UserID:       authorID,
		UniversityID: in.UniversityID,
		CourseID:     in.CourseID,
		Year:         in.Year,
		ExamType:     in.ExamType,
		TeacherName:  in.TeacherName,
		Title:        in.Title,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Exams(tx)
		if _, err := repo.Create(ctx, exam); err != nil {
			return fmt.Errorf("create exam: %w", err)
		}
		exam.Files = make([]models.ExamFile, 0, len(in.Files))
		for i, url := range in.Files {
			f := models.ExamFile{ID: uuid.NewString(), ExamID: exam.ID, FileURL: url, PageOrder: i}
			if err := repo.AddFile(ctx, &f); err != nil {
				return fmt.Errorf("add page %d: %w", i+1, err)
			}
			exam.Files = append(exam.Files, f)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return exam, nil
}

// Like records a like from userID. already reports an existing like.
func (s *ExamService) Like(ctx context.Context, userID, examID string) (already bool, err error) {
	if _, err := s.Get(ctx, userID, examID); err != nil {
		return false, err
	}
	likes := s.repomanager.Likes(s.db)
	exists, err := likes.Exists(ctx, examID, userID)
	if err != nil {
		return false, err
	}
	if exists {
		return true, nil
	}
	return false, likes.Create(ctx, examID, userID)
}

func (s *ExamService) Unlike(ctx context.Context, userID, examID string) error {
	if !isID(examID) {
		return nil
	}
	return s.repomanager.Likes(s.db).Delete(ctx, examID, userID)
}
