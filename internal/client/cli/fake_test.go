package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/examhub/internal/client/bridge"
	"github.com/dmitrijs2005/examhub/internal/client/client"
	"github.com/dmitrijs2005/examhub/internal/client/config"
	"github.com/dmitrijs2005/examhub/internal/client/models"
	"github.com/dmitrijs2005/examhub/internal/client/services"
	"github.com/dmitrijs2005/examhub/internal/client/session"
	"github.com/dmitrijs2005/examhub/internal/client/upload"
	"github.com/dmitrijs2005/examhub/internal/logging"
)

// fakeAPI implements client.API; methods not overridden panic through the
// nil embedded interface.
type fakeAPI struct {
	client.API

	mu sync.Mutex

	VerifyRet *client.AuthResponse
	VerifyErr error

	ProfileRet  *client.ProfileResponse
	LastUserID  string
	LastUpdate  *models.ProfileUpdate
	UpdateRet   *client.ProfileUpdateResponse
	FollowRet   *client.SuccessResponse
	LikeRet     *client.SuccessResponse
	CallErr     error
	LastFilters client.ExamFilters
	ExamsRet    *client.ExamsResponse
	ExamRet     *client.ExamResponse
	LastReport  models.NewReport
	LastName    string
	HealthErr   error
	HealthCalls int
}

func (f *fakeAPI) VerifyAuth(context.Context) (*client.AuthResponse, error) {
	return f.VerifyRet, f.VerifyErr
}

func (f *fakeAPI) GetProfile(context.Context) (*client.ProfileResponse, error) {
	return f.ProfileRet, f.CallErr
}

func (f *fakeAPI) GetUserProfile(_ context.Context, id string) (*client.ProfileResponse, error) {
	f.LastUserID = id
	return f.ProfileRet, f.CallErr
}

func (f *fakeAPI) UpdateProfile(_ context.Context, u models.ProfileUpdate) (*client.ProfileUpdateResponse, error) {
	f.LastUpdate = &u
	return f.UpdateRet, f.CallErr
}

func (f *fakeAPI) Follow(_ context.Context, id string) (*client.SuccessResponse, error) {
	f.LastUserID = id
	return f.FollowRet, f.CallErr
}

func (f *fakeAPI) CreateUniversity(_ context.Context, name string) (*client.UniversityResponse, error) {
	f.LastName = name
	if f.CallErr != nil {
		return nil, f.CallErr
	}
	return &client.UniversityResponse{University: models.University{ID: "u1", Name: name}, Success: true}, nil
}

func (f *fakeAPI) ListCourses(context.Context) (*client.CoursesResponse, error) {
	return &client.CoursesResponse{Courses: []models.Course{{ID: "c1", Name: "Algebra"}, {ID: "c2", Name: "Physics"}}}, f.CallErr
}

func (f *fakeAPI) ListExams(_ context.Context, filters client.ExamFilters) (*client.ExamsResponse, error) {
	f.LastFilters = filters
	return f.ExamsRet, f.CallErr
}

func (f *fakeAPI) GetExam(context.Context, string) (*client.ExamResponse, error) {
	return f.ExamRet, f.CallErr
}

func (f *fakeAPI) LikeExam(context.Context, string) (*client.SuccessResponse, error) {
	return f.LikeRet, f.CallErr
}

func (f *fakeAPI) CreateReport(_ context.Context, r models.NewReport) (*client.ReportResponse, error) {
	f.LastReport = r
	if f.CallErr != nil {
		return nil, f.CallErr
	}
	return &client.ReportResponse{Report: models.Report{ID: "r1", Status: "pending"}, Success: true}, nil
}

func (f *fakeAPI) Health(context.Context) (*client.HealthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.HealthCalls++
	if f.HealthErr != nil {
		return nil, f.HealthErr
	}
	return &client.HealthResponse{Status: "ok"}, nil
}

// memStore keeps stored pages in memory.
type memStore struct {
	Paths []string
	Err   error
}

func (m *memStore) Store(_ context.Context, path string, _ []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.Paths = append(m.Paths, path)
	return nil
}

func (m *memStore) PublicURL(path string) string {
	return "https://cdn.test/" + path
}

type memRecorder struct {
	Records []upload.ExamRecord
}

func (m *memRecorder) RecordExam(_ context.Context, rec upload.ExamRecord) error {
	m.Records = append(m.Records, rec)
	return nil
}

type testApp struct {
	*App
	api      *fakeAPI
	store    *memStore
	recorder *memRecorder
	out      *bytes.Buffer
}

// newTestApp builds an App around fakes; input feeds the prompts.
func newTestApp(t *testing.T, api *fakeAPI, initData string, input ...string) *testApp {
	t.Helper()

	manual := &manualSource{}
	source := bridge.First{bridge.Static(initData), manual}
	holder := session.NewHolder()
	store := &memStore{}
	rec := &memRecorder{}
	out := &bytes.Buffer{}

	app := &App{
		config:   &config.Config{},
		api:      api,
		auth:     services.NewAuthGate(api, source, holder),
		status:   services.NewStatusService(api),
		holder:   holder,
		pipeline: upload.NewPipeline(store, rec),
		source:   source,
		manual:   manual,
		log:      logging.NewTextLogger(io.Discard, "error"),
		reader:   bufio.NewReader(strings.NewReader(strings.Join(input, "\n") + "\n")),
		out:      out,
		mode:     ModeOffline,
	}
	return &testApp{App: app, api: api, store: store, recorder: rec, out: out}
}

func (ta *testApp) login(id, username string) {
	ta.holder.Set(&session.Session{User: models.User{ID: id, Username: username}, InitData: "payload"})
}

// stubTerminal makes GetSecret fall back to line reads.
func stubTerminal(t *testing.T, terminal bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return terminal }
	t.Cleanup(func() { isTerminal = orig })
}
