package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/examhub/internal/client/bridge"
	"github.com/dmitrijs2005/examhub/internal/client/client"
	"github.com/dmitrijs2005/examhub/internal/client/config"
	"github.com/dmitrijs2005/examhub/internal/client/services"
	"github.com/dmitrijs2005/examhub/internal/client/session"
	"github.com/dmitrijs2005/examhub/internal/client/upload"
	"github.com/dmitrijs2005/examhub/internal/logging"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config   *config.Config
	api      client.API
	auth     services.AuthGate
	status   services.StatusService
	holder   *session.Holder
	pipeline *upload.Pipeline
	source   bridge.Source
	manual   *manualSource
	db       *sql.DB
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer

	mu   sync.Mutex
	mode Mode
}

// NewApp builds the client stack for c. Pages go to the presigned-URL flow
// or straight to S3 depending on c.StorageMode, and exams are recorded
// through the API or a direct database connection depending on
// c.RecorderMode.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	manual := &manualSource{}
	source := bridge.First{
		bridge.EnvSource{Name: c.InitDataEnv},
		bridge.FileSource{Path: c.InitDataFile},
		manual,
	}

	httpClient := &http.Client{Timeout: c.RequestTimeout}
	api := client.NewHTTPClient(c.ServerURL, source, httpClient)

	var store upload.ObjectStore
	switch c.StorageMode {
	case config.StorageS3:
		s3store, err := upload.NewS3Store(ctx, upload.S3Config{
			Endpoint:      c.S3.Endpoint,
			Region:        c.S3.Region,
			AccessKey:     c.S3.AccessKey,
			SecretKey:     c.S3.SecretKey,
			Bucket:        c.S3.Bucket,
			PublicBaseURL: c.S3.PublicBaseURL,
		})
		if err != nil {
			return nil, err
		}
		store = s3store
	default:
		store = upload.NewSignedURLStore(api, httpClient)
	}

	var (
		recorder upload.ExamRecorder
		db       *sql.DB
	)
	switch c.RecorderMode {
	case config.RecorderSQL:
		var err error
		db, err = sql.Open("pgx", c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		recorder = upload.NewSQLRecorder(db)
	default:
		recorder = upload.NewAPIRecorder(api)
	}

	holder := session.NewHolder()
	pipeline := upload.NewPipeline(store, recorder)
	pipeline.OnTransition(func(from, to upload.State) {
		log.Debug(ctx, "upload state", "from", from.String(), "to", to.String())
	})

	return &App{
		config:   c,
		api:      api,
		auth:     services.NewAuthGate(api, source, holder),
		status:   services.NewStatusService(api),
		holder:   holder,
		pipeline: pipeline,
		source:   source,
		manual:   manual,
		db:       db,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		mode:     ModeOffline,
	}, nil
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "switched mode", "mode", string(mode))
	}
}

func (a *App) isLoggedIn() bool {
	_, ok := a.holder.Get()
	return ok
}

// statusLine renders "(username mode)" for the prompt.
func (a *App) statusLine() string {
	s := string(a.Mode())
	if sess, ok := a.holder.Get(); ok {
		s = sess.User.Username + " " + s
	}
	return "(" + s + ")"
}

// Run tries a silent login with whatever payload is already available,
// starts the health watcher and blocks in the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	if a.db != nil {
		defer a.db.Close()
	}

	fmt.Fprintln(a.out, "Welcome to ExamHub CLI (type 'help' for commands)")

	a.checkHealth(ctx)
	if a.source.InitData() != "" && a.auth.Login(ctx) {
		sess, _ := a.holder.Get()
		fmt.Fprintf(a.out, "Logged in as %s\n", sess.User.Username)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.HealthCheckInterval)

	runREPL(ctx, a, a.statusLine, a.reader)
}

func (a *App) checkHealth(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := a.status.Ping(ctx)
	if err != nil {
		a.setMode(ModeOffline)
		return err
	}
	a.setMode(ModeOnline)
	return nil
}

// StartOnlineStatusWatcher pings the server every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = a.checkHealth(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// manualSource holds a payload typed in at the login prompt.
type manualSource struct {
	mu   sync.RWMutex
	data string
}

func (m *manualSource) InitData() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data
}

func (m *manualSource) set(v string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = v
}
