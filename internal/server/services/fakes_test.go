package services

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/examhub/internal/common"
	"github.com/dmitrijs2005/examhub/internal/dbx"
	"github.com/dmitrijs2005/examhub/internal/server/models"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/catalog"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/exams"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/follows"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/likes"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/reports"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/users"
)

var errDB = errors.New("db error: boom")

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// --- users ---

type fakeUsersRepo struct {
	byID      map[string]*models.User
	createErr error
	getErr    error

	LastAvatar string
	LastUpdate models.ProfileUpdate
}

func newFakeUsers(list ...*models.User) *fakeUsersRepo {
	f := &fakeUsersRepo{byID: map[string]*models.User{}}
	for _, u := range list {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.CreatedAt = time.Now()
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByTelegramID(_ context.Context, telegramID string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.TelegramID == telegramID {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

func (f *fakeUsersRepo) UpdateAvatar(_ context.Context, id, avatarURL string) error {
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	f.LastAvatar = avatarURL
	u.AvatarURL = avatarURL
	return nil
}

func (f *fakeUsersRepo) Update(_ context.Context, id string, upd models.ProfileUpdate) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	f.LastUpdate = upd
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.AvatarURL != nil {
		u.AvatarURL = *upd.AvatarURL
	}
	c := *u
	return &c, nil
}

// --- follows ---

type followKey struct{ from, to string }

type fakeFollowsRepo struct {
	set       map[followKey]bool
	createErr error

	Creates int
}

func newFakeFollows() *fakeFollowsRepo {
	return &fakeFollowsRepo{set: map[followKey]bool{}}
}

func (f *fakeFollowsRepo) Exists(_ context.Context, from, to string) (bool, error) {
	return f.set[followKey{from, to}], nil
}

func (f *fakeFollowsRepo) Create(_ context.Context, from, to string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.Creates++
	f.set[followKey{from, to}] = true
	return nil
}

func (f *fakeFollowsRepo) Delete(_ context.Context, from, to string) error {
	delete(f.set, followKey{from, to})
	return nil
}

func (f *fakeFollowsRepo) Counts(_ context.Context, userID string) (int, int, error) {
	var followers, following int
	for k := range f.set {
		if k.to == userID {
			followers++
		}
		if k.from == userID {
			following++
		}
	}
	return followers, following, nil
}

// --- catalog ---

type fakeCatalogRepo struct {
	universities []models.University
	courses      []models.Course
}

func (f *fakeCatalogRepo) ListUniversities(context.Context) ([]models.University, error) {
	return f.universities, nil
}

func (f *fakeCatalogRepo) CreateUniversity(_ context.Context, u *models.University) (*models.University, error) {
	f.universities = append(f.universities, *u)
	return u, nil
}

func (f *fakeCatalogRepo) ListCourses(context.Context) ([]models.Course, error) {
	return f.courses, nil
}

func (f *fakeCatalogRepo) CreateCourse(_ context.Context, c *models.Course) (*models.Course, error) {
	f.courses = append(f.courses, *c)
	return c, nil
}

// --- exams ---

type fakeExamsRepo struct {
	exams     map[string]*models.Exam
	files     map[string][]models.ExamFile
	addErrAt  int
	createErr error

	LastFilter models.ExamFilter
	Hidden     []string
}

func newFakeExams(list ...*models.Exam) *fakeExamsRepo {
	f := &fakeExamsRepo{exams: map[string]*models.Exam{}, files: map[string][]models.ExamFile{}, addErrAt: -1}
	for _, e := range list {
		f.exams[e.ID] = e
	}
	return f
}

func (f *fakeExamsRepo) Create(_ context.Context, e *models.Exam) (*models.Exam, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	e.CreatedAt = time.Now()
	f.exams[e.ID] = e
	return e, nil
}

func (f *fakeExamsRepo) AddFile(_ context.Context, file *models.ExamFile) error {
	if file.PageOrder == f.addErrAt {
		return errDB
	}
	f.files[file.ExamID] = append(f.files[file.ExamID], *file)
	return nil
}

func (f *fakeExamsRepo) List(_ context.Context, _ string, filter models.ExamFilter) ([]models.Exam, error) {
	f.LastFilter = filter
	var out []models.Exam
	for _, e := range f.exams {
		if !e.IsHidden {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeExamsRepo) Get(_ context.Context, _ string, id string) (*models.Exam, error) {
	e, ok := f.exams[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *e
	return &c, nil
}

func (f *fakeExamsRepo) Files(_ context.Context, examID string) ([]models.ExamFile, error) {
	return f.files[examID], nil
}

func (f *fakeExamsRepo) Hide(_ context.Context, id string) error {
	f.Hidden = append(f.Hidden, id)
	if e, ok := f.exams[id]; ok {
		e.IsHidden = true
	}
	return nil
}

// --- likes ---

type fakeLikesRepo struct {
	set map[followKey]bool

	Creates int
}

func newFakeLikes() *fakeLikesRepo {
	return &fakeLikesRepo{set: map[followKey]bool{}}
}

func (f *fakeLikesRepo) Exists(_ context.Context, examID, userID string) (bool, error) {
	return f.set[followKey{examID, userID}], nil
}

func (f *fakeLikesRepo) Create(_ context.Context, examID, userID string) error {
	f.Creates++
	f.set[followKey{examID, userID}] = true
	return nil
}

func (f *fakeLikesRepo) Delete(_ context.Context, examID, userID string) error {
	delete(f.set, followKey{examID, userID})
	return nil
}

// --- reports ---

type fakeReportsRepo struct {
	list      []models.Report
	createErr error
}

func (f *fakeReportsRepo) Create(_ context.Context, r *models.Report) (*models.Report, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	r.CreatedAt = time.Now()
	f.list = append(f.list, *r)
	return r, nil
}

func (f *fakeReportsRepo) CountPending(_ context.Context, reportType, reportedID string) (int, error) {
	n := 0
	for _, r := range f.list {
		if r.ReportType == reportType && r.ReportedID == reportedID && r.Status == models.ReportStatusPending {
			n++
		}
	}
	return n, nil
}

// --- manager ---

type fakeRepoManager struct {
	users   *fakeUsersRepo
	follows *fakeFollowsRepo
	catalog *fakeCatalogRepo
	exams   *fakeExamsRepo
	likes   *fakeLikesRepo
	reports *fakeReportsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:   newFakeUsers(),
		follows: newFakeFollows(),
		catalog: &fakeCatalogRepo{},
		exams:   newFakeExams(),
		likes:   newFakeLikes(),
		reports: &fakeReportsRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.users }
func (m *fakeRepoManager) Follows(dbx.DBTX) follows.Repository          { return m.follows }
func (m *fakeRepoManager) Catalog(dbx.DBTX) catalog.Repository          { return m.catalog }
func (m *fakeRepoManager) Exams(dbx.DBTX) exams.Repository              { return m.exams }
func (m *fakeRepoManager) Likes(dbx.DBTX) likes.Repository              { return m.likes }
func (m *fakeRepoManager) Reports(dbx.DBTX) reports.Repository          { return m.reports }
