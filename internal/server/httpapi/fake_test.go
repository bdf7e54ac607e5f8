package httpapi

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dmitrijs2005/examhub/internal/common"
	"github.com/dmitrijs2005/examhub/internal/logging"
	"github.com/dmitrijs2005/examhub/internal/server/auth"
	"github.com/dmitrijs2005/examhub/internal/server/models"
	"github.com/dmitrijs2005/examhub/internal/server/services"
	"github.com/dmitrijs2005/examhub/internal/server/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	botToken = "123456:TEST"
	meID     = "0b9f2c4e-0000-4a00-8000-000000000001"
	otherID  = "0b9f2c4e-0000-4a00-8000-000000000002"
	examID   = "0b9f2c4e-0000-4a00-8000-000000000003"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeUsers struct {
	known map[int64]*models.User
	err   error

	LastProfileID string
	LastViewerID  string
	LastUpdate    models.ProfileUpdate
	LastTarget    string
	already       bool
}

func (f *fakeUsers) Verify(_ context.Context, tg *auth.TelegramUser) (*models.User, error) {
	if u, ok := f.known[tg.ID]; ok {
		return u, nil
	}
	u := &models.User{ID: otherID, TelegramID: tg.IDString(), Username: "user_" + tg.IDString()}
	f.known[tg.ID] = u
	return u, nil
}

func (f *fakeUsers) Resolve(_ context.Context, tg *auth.TelegramUser) (*models.User, error) {
	if u, ok := f.known[tg.ID]; ok {
		return u, nil
	}
	return nil, common.NotFound("User")
}

func (f *fakeUsers) Profile(_ context.Context, userID, viewerID string) (*models.Profile, error) {
	f.LastProfileID, f.LastViewerID = userID, viewerID
	if f.err != nil {
		return nil, f.err
	}
	return &models.Profile{User: models.User{ID: userID, Username: "alice"}, FollowersCount: 2}, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, userID string, upd models.ProfileUpdate) (*models.User, error) {
	f.LastUpdate = upd
	if upd.Empty() {
		return nil, nil
	}
	return &models.User{ID: userID, Username: *upd.Username}, nil
}

func (f *fakeUsers) Follow(_ context.Context, _, targetID string) (bool, error) {
	f.LastTarget = targetID
	return f.already, f.err
}

func (f *fakeUsers) Unfollow(_ context.Context, _, targetID string) error {
	f.LastTarget = targetID
	return f.err
}

type fakeCatalog struct {
	LastName string
}

func (f *fakeCatalog) Universities(context.Context) ([]models.University, error) { return nil, nil }

func (f *fakeCatalog) AddUniversity(_ context.Context, name string) (*models.University, error) {
	f.LastName = name
	if strings.TrimSpace(name) == "" {
		return nil, common.Required("name")
	}
	return &models.University{ID: "u1", Name: name}, nil
}

func (f *fakeCatalog) Courses(context.Context) ([]models.Course, error) {
	return []models.Course{{ID: "c1", Name: "Calculus"}}, nil
}

func (f *fakeCatalog) AddCourse(_ context.Context, name string) (*models.Course, error) {
	f.LastName = name
	return &models.Course{ID: "c2", Name: name}, nil
}

type fakeExams struct {
	err     error
	already bool
	panics  bool

	LastViewer string
	LastFeed   string
	LastFilter models.ExamFilter
	LastInput  services.ExamInput
	LastID     string
}

func (f *fakeExams) List(_ context.Context, viewerID, feedType string, flt models.ExamFilter) ([]models.Exam, error) {
	if f.panics {
		panic("boom")
	}
	f.LastViewer, f.LastFeed, f.LastFilter = viewerID, feedType, flt
	return nil, f.err
}

func (f *fakeExams) Get(_ context.Context, _ string, id string) (*models.Exam, error) {
	f.LastID = id
	if id != examID {
		return nil, common.NotFound("Exam")
	}
	return &models.Exam{ID: id, Files: []models.ExamFile{{FileURL: "https://cdn/p1.pdf"}}}, nil
}

func (f *fakeExams) Create(_ context.Context, authorID string, in services.ExamInput) (*models.Exam, error) {
	f.LastInput = in
	if f.err != nil {
		return nil, f.err
	}
	return &models.Exam{ID: examID, UserID: authorID, Year: in.Year}, nil
}

func (f *fakeExams) Like(_ context.Context, _, examID string) (bool, error) {
	f.LastID = examID
	return f.already, f.err
}

func (f *fakeExams) Unlike(_ context.Context, _, examID string) error {
	f.LastID = examID
	return f.err
}

type fakeUploads struct {
	LastCaller string
	LastReq    services.UploadRequest
}

func (f *fakeUploads) URL(_ context.Context, callerID string, req services.UploadRequest) (*storage.PresignedUpload, error) {
	f.LastCaller, f.LastReq = callerID, req
	return &storage.PresignedUpload{URL: "https://s3/put", Key: "2025/03/x.pdf", Token: "sig"}, nil
}

func (f *fakeUploads) Confirm(callerID, key string) (string, error) {
	f.LastCaller = callerID
	if key == "" {
		return "", common.Required("path")
	}
	return "https://cdn/" + key, nil
}

type fakeReports struct {
	LastType, LastID, LastReason string
}

func (f *fakeReports) Create(_ context.Context, reporterID, reportType, reportedID, reason string) (*models.Report, error) {
	f.LastType, f.LastID, f.LastReason = reportType, reportedID, reason
	return &models.Report{ID: "r1", ReporterID: reporterID, ReportType: reportType, Status: models.ReportStatusPending}, nil
}

type testAPI struct {
	router  *gin.Engine
	users   *fakeUsers
	catalog *fakeCatalog
	exams   *fakeExams
	uploads *fakeUploads
	reports *fakeReports
}

func newTestAPI(t *testing.T, opts Options) *testAPI {
	t.Helper()
	opts.GinMode = "test"
	a := &testAPI{
		users:   &fakeUsers{known: map[int64]*models.User{1001: {ID: meID, TelegramID: "1001", Username: "alice"}}},
		catalog: &fakeCatalog{},
		exams:   &fakeExams{},
		uploads: &fakeUploads{},
		reports: &fakeReports{},
	}
	a.router = NewRouter(nopLogger{}, Deps{
		Validator: auth.NewValidator(botToken, 0),
		Users:     a.users,
		Catalog:   a.catalog,
		Exams:     a.exams,
		Uploads:   a.uploads,
		Reports:   a.reports,
	}, opts)
	return a
}

func initDataFor(telegramID string) string {
	return auth.Sign(botToken, url.Values{
		"auth_date": {"1700000000"},
		"user":      {`{"id":` + telegramID + `,"first_name":"A"}`},
	})
}

// do sends a request as Telegram user 1001 unless initData is overridden.
func (a *testAPI) do(t *testing.T, method, target, body string, initData ...string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	payload := initDataFor("1001")
	if len(initData) > 0 {
		payload = initData[0]
	}
	if payload != "" {
		req.Header.Set(common.InitDataHeaderName, payload)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var out map[string]any
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

