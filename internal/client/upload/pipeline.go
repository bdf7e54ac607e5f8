package upload

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/examhub/internal/client/session"
	"github.com/dmitrijs2005/examhub/internal/common"
	"github.com/google/uuid"
)

var (
	ErrNoFiles         = errors.New("select at least one file")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrBusy            = errors.New("upload already in progress")
)

// newExamID is a test seam for the per-attempt exam identifier.
var newExamID = uuid.NewString

type State int

const (
	StateIdle State = iota
	StateSelecting
	StateUploading
	StateRecording
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	case StateUploading:
		return "uploading"
	case StateRecording:
		return "recording"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Stage names the pipeline step a StageError comes from.
type Stage string

const (
	StageStore  Stage = "store"
	StageRecord Stage = "record"
)

// StageError is a failed page store or record write. Page is 1-based and
// zero for the record stage.
type StageError struct {
	Stage Stage
	Page  int
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	if e.Stage == StageStore {
		return fmt.Sprintf("upload failed: store page %d (%s): %v", e.Page, e.Path, e.Err)
	}
	return fmt.Sprintf("upload failed: record exam: %v", e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type File struct {
	Name string
	Data []byte
}

// LoadFiles reads the given paths in order.
func LoadFiles(paths []string) ([]File, error) {
	files := make([]File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		files = append(files, File{Name: filepath.Base(p), Data: data})
	}
	return files, nil
}

// ExamMeta is the user-entered part of an exam record.
type ExamMeta struct {
	UniversityID string
	CourseID     string
	Title        string
	Year         int
	ExamType     string
	TeacherName  string
}

func (m ExamMeta) validate() error {
	switch {
	case m.UniversityID == "":
		return common.Required("university_id")
	case m.CourseID == "":
		return common.Required("course_id")
	case m.Year <= 0:
		return common.Required("year")
	case m.ExamType == "":
		return common.Required("exam_type")
	}
	return nil
}

type UploadTarget struct {
	Path      string
	PublicURL string
}

type Result struct {
	ExamID  string
	Targets []UploadTarget
}

// Pages returns the public URLs in page order.
func (r *Result) Pages() []string {
	pages := make([]string, len(r.Targets))
	for i, t := range r.Targets {
		pages[i] = t.PublicURL
	}
	return pages
}

// PagePath is the storage key of the zero-based page index of an exam.
func PagePath(ownerID, examID string, index int, fileName string) string {
	return fmt.Sprintf("%s/%s/%s/page-%d.%s", common.ExamFilesPrefix, ownerID, examID, index+1, extension(fileName))
}

func extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return name[i+1:]
}

func checkExtension(name string) error {
	ext := strings.ToLower(extension(name))
	if ext == "" || !slices.Contains(common.AllowedExtensions, ext) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, name)
	}
	return nil
}

// Pipeline drives Idle → Selecting → Uploading → Recording → Idle, passing
// through Failed when a stage errors. The selection is cleared once an
// upload starts, whatever its outcome.
type Pipeline struct {
	store    ObjectStore
	recorder ExamRecorder

	mu        sync.Mutex
	state     State
	selection []File
	observer  func(from, to State)
}

func NewPipeline(store ObjectStore, recorder ExamRecorder) *Pipeline {
	return &Pipeline{store: store, recorder: recorder}
}

// OnTransition registers fn to be called after every state change.
func (p *Pipeline) OnTransition(fn func(from, to State)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observer = fn
}

func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Selection returns a copy of the selected files.
func (p *Pipeline) Selection() []File {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.selection)
}

func (p *Pipeline) setState(to State) {
	p.mu.Lock()
	from := p.state
	p.state = to
	obs := p.observer
	p.mu.Unlock()

	if obs != nil && from != to {
		obs(from, to)
	}
}

// Select replaces the selection and returns one preview line per page.
// An empty list clears the selection.
func (p *Pipeline) Select(files []File) ([]string, error) {
	for _, f := range files {
		if err := checkExtension(f.Name); err != nil {
			return nil, err
		}
	}

	p.mu.Lock()
	if p.state == StateUploading || p.state == StateRecording {
		p.mu.Unlock()
		return nil, ErrBusy
	}
	p.selection = slices.Clone(files)
	p.mu.Unlock()

	if len(files) == 0 {
		p.setState(StateIdle)
		return nil, nil
	}
	p.setState(StateSelecting)

	previews := make([]string, len(files))
	for i, f := range files {
		previews[i] = fmt.Sprintf("Page %d: %s", i+1, f.Name)
	}
	return previews, nil
}

// Upload stores the selected files and records the exam. The selection is
// consumed by every attempt, including one rejected for a missing session
// or bad metadata. Only ErrNoFiles and ErrBusy leave the pipeline as is.
func (p *Pipeline) Upload(ctx context.Context, sess *session.Session, meta ExamMeta) (*Result, error) {
	files, err := p.begin(sess, meta)
	if err != nil {
		return nil, err
	}

	res, err := p.run(ctx, sess.OwnerID(), files, meta)
	if err != nil {
		p.setState(StateFailed)
		p.setState(StateIdle)
		return nil, err
	}
	p.setState(StateIdle)
	return res, nil
}

// begin checks the preconditions and atomically takes the selection,
// moving to Uploading, or back to Idle when the attempt is rejected.
func (p *Pipeline) begin(sess *session.Session, meta ExamMeta) ([]File, error) {
	p.mu.Lock()
	if p.state == StateUploading || p.state == StateRecording {
		p.mu.Unlock()
		return nil, ErrBusy
	}
	files := p.selection
	if len(files) == 0 {
		p.mu.Unlock()
		return nil, ErrNoFiles
	}

	var err error
	if sess == nil || sess.OwnerID() == "" {
		err = session.ErrNoSession
	} else {
		err = meta.validate()
	}

	next := StateUploading
	if err != nil {
		next = StateIdle
	}
	from := p.state
	p.selection = nil
	p.state = next
	obs := p.observer
	p.mu.Unlock()

	if obs != nil && from != next {
		obs(from, next)
	}
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (p *Pipeline) run(ctx context.Context, ownerID string, files []File, meta ExamMeta) (*Result, error) {
	res := &Result{ExamID: newExamID(), Targets: make([]UploadTarget, 0, len(files))}

	for i, f := range files {
		path := PagePath(ownerID, res.ExamID, i, f.Name)
		if err := p.store.Store(ctx, path, f.Data); err != nil {
			return nil, &StageError{Stage: StageStore, Page: i + 1, Path: path, Err: err}
		}
		res.Targets = append(res.Targets, UploadTarget{Path: path, PublicURL: p.store.PublicURL(path)})
	}

	p.setState(StateRecording)

	rec := ExamRecord{
		ID:           res.ExamID,
		OwnerID:      ownerID,
		UniversityID: meta.UniversityID,
		CourseID:     meta.CourseID,
		Title:        meta.Title,
		Year:         meta.Year,
		ExamType:     meta.ExamType,
		TeacherName:  meta.TeacherName,
		Pages:        res.Pages(),
	}
	if err := p.recorder.RecordExam(ctx, rec); err != nil {
		return nil, &StageError{Stage: StageRecord, Err: err}
	}
	return res, nil
}
