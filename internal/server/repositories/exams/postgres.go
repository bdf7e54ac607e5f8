package exams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

func (r *PostgresRepository) Create(ctx context.Context, e *models.Exam) (*models.Exam, error) {

	query :=
		`INSERT INTO exams (id, user_id, university_id, course_id, year, exam_type, teacher_name, title)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING is_hidden, created_at`

	err := r.db.QueryRowContext(ctx, query,
		e.ID, e.UserID, e.UniversityID, e.CourseID, e.Year, e.ExamType, e.TeacherName, e.Title).
		Scan(&e.IsHidden, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) AddFile(ctx context.Context, f *models.ExamFile) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO exam_files (id, exam_id, file_url, page_order) VALUES ($1, $2, $3, $4)`,
		f.ID, f.ExamID, f.FileURL, f.PageOrder)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// selectExam joins the author, university and course. $1 is the viewer.
const selectExam = `SELECT
  e.id, e.user_id, e.university_id, e.course_id, e.year, e.exam_type, e.teacher_name, e.title, e.is_hidden, e.created_at,
  u.id, u.telegram_id, u.username, u.bio, u.avatar_url, u.created_at,
  un.id, un.name, un.created_at,
  c.id, c.name, c.created_at,
  (SELECT count(*) FROM exam_likes l WHERE l.exam_id = e.id),
  EXISTS (SELECT 1 FROM exam_likes l WHERE l.exam_id = e.id AND l.user_id = $1)
FROM exams e
JOIN users u ON u.id = e.user_id
JOIN universities un ON un.id = e.university_id
JOIN courses c ON c.id = e.course_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExam(s rowScanner) (*models.Exam, error) {
	e := &models.Exam{User: &models.User{}, University: &models.University{}, Course: &models.Course{}}
	err := s.Scan(
		&e.ID, &e.UserID, &e.UniversityID, &e.CourseID, &e.Year, &e.ExamType, &e.TeacherName, &e.Title, &e.IsHidden, &e.CreatedAt,
		&e.User.ID, &e.User.TelegramID, &e.User.Username, &e.User.Bio, &e.User.AvatarURL, &e.User.CreatedAt,
		&e.University.ID, &e.University.Name, &e.University.CreatedAt,
		&e.Course.ID, &e.Course.Name, &e.Course.CreatedAt,
		&e.LikesCount, &e.IsLiked,
	)
	if err != nil {
		return nil, err
	}
	e.Files = []models.ExamFile{}
	return e, nil
}

// buildListQuery renders the listing query for f. Hidden exams are always
// excluded; newest come first.
func buildListQuery(viewerID string, f models.ExamFilter) (string, []any) {
	args := []any{viewerID}
	conds := []string{"NOT e.is_hidden"}

	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.UniversityID != "" {
		add("e.university_id = $%d", f.UniversityID)
	}
	if f.CourseID != "" {
		add("e.course_id = $%d", f.CourseID)
	}
	if f.Year != 0 {
		add("e.year = $%d", f.Year)
	}
	if f.UserID != "" {
		add("e.user_id = $%d", f.UserID)
	}
	if f.FollowerID != "" {
		add("e.user_id IN (SELECT following_id FROM follows WHERE follower_id = $%d)", f.FollowerID)
	}
	if f.Search != "" {
		args = append(args, "%"+escapeLike(f.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(c.name ILIKE $%d OR u.username ILIKE $%d)", n, n))
	}

	query := selectExam + "\nWHERE " + strings.Join(conds, " AND ") + "\nORDER BY e.created_at DESC"
	return query, args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *PostgresRepository) List(ctx context.Context, viewerID string, f models.ExamFilter) ([]models.Exam, error) {
	query, args := buildListQuery(viewerID, f)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []models.Exam{}
	for rows.Next() {
		e, err := scanExam(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, viewerID, id string) (*models.Exam, error) {
	e, err := scanExam(r.db.QueryRowContext(ctx, selectExam+"\nWHERE e.id = $2", viewerID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

// Files returns the pages of an exam ordered by page_order.
func (r *PostgresRepository) Files(ctx context.Context, examID string) ([]models.ExamFile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, exam_id, file_url, page_order FROM exam_files WHERE exam_id = $1 ORDER BY page_order`, examID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []models.ExamFile{}
	for rows.Next() {
		var f models.ExamFile
		if err := rows.Scan(&f.ID, &f.ExamID, &f.FileURL, &f.PageOrder); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Hide(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE exams SET is_hidden = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
