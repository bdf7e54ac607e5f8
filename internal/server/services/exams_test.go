package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/examhub/internal/common"
	"github.com/dmitrijs2005/examhub/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() ExamInput {
	return ExamInput{
		UniversityID: uniID,
		CourseID:     courseID,
		Year:         2024,
		ExamType:     "final",
		Title:        "Calc final",
		Files:        []string{"https://cdn/p1.pdf", "https://cdn/p2.pdf"},
	}
}

func TestExamInput_Validate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*ExamInput)
		field string
	}{
		{"university", func(in *ExamInput) { in.UniversityID = "" }, "university_id"},
		{"course", func(in *ExamInput) { in.CourseID = " " }, "course_id"},
		{"year", func(in *ExamInput) { in.Year = 0 }, "year"},
		{"type", func(in *ExamInput) { in.ExamType = "" }, "exam_type"},
		{"files", func(in *ExamInput) { in.Files = nil }, "files"},
		{"bad university", func(in *ExamInput) { in.UniversityID = "x" }, "university_id"},
		{"bad id", func(in *ExamInput) { in.ID = "exam-1" }, "id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.edit(&in)
			var verr *common.ValidationError
			require.ErrorAs(t, in.validate(), &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
	assert.NoError(t, validInput().validate())
}

func TestExamCreate_WritesPagesInOrder(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	s := NewExamService(db, rm)

	in := validInput()
	in.ID = examID
	exam, err := s.Create(context.Background(), aliceID, in)
	require.NoError(t, err)
	assert.Equal(t, examID, exam.ID)
	assert.Equal(t, aliceID, exam.UserID)

	got := make([]int, 0, len(rm.exams.files[examID]))
	urls := make([]string, 0, len(rm.exams.files[examID]))
	for _, f := range rm.exams.files[examID] {
		got = append(got, f.PageOrder)
		urls = append(urls, f.FileURL)
	}
	if diff := cmp.Diff([]int{0, 1}, got); diff != "" {
		t.Errorf("page order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, in.Files, urls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamCreate_GeneratesID(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	s := NewExamService(db, newFakeRepoManager())
	exam, err := s.Create(context.Background(), aliceID, validInput())
	require.NoError(t, err)
	assert.True(t, isID(exam.ID))
}

func TestExamCreate_PageFailureRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := newFakeRepoManager()
	rm.exams.addErrAt = 1
	s := NewExamService(db, rm)

	_, err := s.Create(context.Background(), aliceID, validInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, errDB)
	assert.Contains(t, err.Error(), "add page 2")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamCreate_ValidationSkipsDB(t *testing.T) {
	db, mock := newSQLMockDB(t)
	s := NewExamService(db, newFakeRepoManager())

	in := validInput()
	in.Files = nil
	_, err := s.Create(context.Background(), aliceID, in)
	assert.EqualError(t, err, "files is required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamList(t *testing.T) {
	now := time.Now()
	rm := newFakeRepoManager()
	rm.exams = newFakeExams(
		&models.Exam{ID: "old", CreatedAt: now.Add(-time.Hour)},
		&models.Exam{ID: "new", CreatedAt: now},
		&models.Exam{ID: "hidden", CreatedAt: now, IsHidden: true},
	)
	rm.exams.files["new"] = []models.ExamFile{{ID: "f1", ExamID: "new", PageOrder: 0}}
	s := NewExamService(nil, rm)

	list, err := s.List(context.Background(), aliceID, "", models.ExamFilter{Year: 2024})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)
	assert.Len(t, list[0].Files, 1)
	assert.Equal(t, 2024, rm.exams.LastFilter.Year)
	assert.Empty(t, rm.exams.LastFilter.FollowerID)
}

func TestExamList_FollowingFeed(t *testing.T) {
	rm := newFakeRepoManager()
	s := NewExamService(nil, rm)

	list, err := s.List(context.Background(), aliceID, models.FeedFollowing, models.ExamFilter{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.Equal(t, aliceID, rm.exams.LastFilter.FollowerID)
}

func TestExamList_BadFilters(t *testing.T) {
	s := NewExamService(nil, newFakeRepoManager())

	_, err := s.List(context.Background(), aliceID, "popular", models.ExamFilter{})
	assert.EqualError(t, err, "feed_type must be all or following")

	_, err = s.List(context.Background(), aliceID, "", models.ExamFilter{CourseID: "calc"})
	assert.EqualError(t, err, "course_id must be a UUID")
}

func TestExamGet(t *testing.T) {
	rm := newFakeRepoManager()
	rm.exams = newFakeExams(&models.Exam{ID: examID, IsHidden: true})
	s := NewExamService(nil, rm)

	e, err := s.Get(context.Background(), aliceID, examID)
	require.NoError(t, err)
	assert.True(t, e.IsHidden)

	_, err = s.Get(context.Background(), aliceID, bobID)
	assert.EqualError(t, err, "Exam not found")

	_, err = s.Get(context.Background(), aliceID, "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestExamLike(t *testing.T) {
	rm := newFakeRepoManager()
	rm.exams = newFakeExams(&models.Exam{ID: examID})
	s := NewExamService(nil, rm)
	ctx := context.Background()

	already, err := s.Like(ctx, aliceID, examID)
	require.NoError(t, err)
	assert.False(t, already)

	already, err = s.Like(ctx, aliceID, examID)
	require.NoError(t, err)
	assert.True(t, already)
	assert.Equal(t, 1, rm.likes.Creates)

	require.NoError(t, s.Unlike(ctx, aliceID, examID))
	ok, _ := rm.likes.Exists(ctx, examID, aliceID)
	assert.False(t, ok)

	_, err = s.Like(ctx, aliceID, bobID)
	assert.EqualError(t, err, "Exam not found")
}
