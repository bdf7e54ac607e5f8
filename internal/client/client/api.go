package client

import (
	"context"

	"github.com/dmitrijs2005/examhub/internal/client/models"
)

// API is the set of ExamHub endpoints used by the services and the CLI.
// Each method is one call to HTTPClient.Request.
type API interface {
	VerifyAuth(ctx context.Context) (*AuthResponse, error)

	GetProfile(ctx context.Context) (*ProfileResponse, error)
	GetUserProfile(ctx context.Context, userID string) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*ProfileUpdateResponse, error)

	Follow(ctx context.Context, userID string) (*SuccessResponse, error)
	Unfollow(ctx context.Context, userID string) (*SuccessResponse, error)

	ListUniversities(ctx context.Context) (*UniversitiesResponse, error)
	CreateUniversity(ctx context.Context, name string) (*UniversityResponse, error)
	ListCourses(ctx context.Context) (*CoursesResponse, error)
	CreateCourse(ctx context.Context, name string) (*CourseResponse, error)

	ListExams(ctx context.Context, filters ExamFilters) (*ExamsResponse, error)
	GetExam(ctx context.Context, examID string) (*ExamResponse, error)
	CreateExam(ctx context.Context, exam models.NewExam) (*CreateExamResponse, error)
	LikeExam(ctx context.Context, examID string) (*SuccessResponse, error)
	UnlikeExam(ctx context.Context, examID string) (*SuccessResponse, error)

	GetUploadURL(ctx context.Context, in UploadURLRequest) (*UploadURLResponse, error)
	ConfirmUpload(ctx context.Context, path string) (*ConfirmUploadResponse, error)

	CreateReport(ctx context.Context, report models.NewReport) (*ReportResponse, error)

	Health(ctx context.Context) (*HealthResponse, error)
}

var _ API = (*HTTPClient)(nil)

// AuthResponse is the body of POST /api/auth/verify. A 2xx body may still
// carry Error, which callers treat as a rejection.
type AuthResponse struct {
	User    *models.User `json:"user"`
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
}

type ProfileResponse struct {
	User models.User `json:"user"`
}

// ProfileUpdateResponse carries User only when something was updated.
type ProfileUpdateResponse struct {
	User    *models.User `json:"user,omitempty"`
	Success bool         `json:"success"`
}

// SuccessResponse is returned by follow and like toggles. Message is set for
// idempotent repeats such as "Already following".
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type UniversitiesResponse struct {
	Universities []models.University `json:"universities"`
}

type UniversityResponse struct {
	University models.University `json:"university"`
	Success    bool              `json:"success"`
}

type CoursesResponse struct {
	Courses []models.Course `json:"courses"`
}

type CourseResponse struct {
	Course  models.Course `json:"course"`
	Success bool          `json:"success"`
}

type ExamsResponse struct {
	Exams []models.Exam `json:"exams"`
}

type ExamResponse struct {
	Exam models.Exam `json:"exam"`
}

type CreateExamResponse struct {
	Exam    models.Exam `json:"exam"`
	Success bool        `json:"success"`
}

// UploadURLRequest asks for a presigned PUT URL. Empty fields fall back to
// server defaults; Path pins the storage key.
type UploadURLRequest struct {
	Filename    string `json:"filename,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Path        string `json:"path,omitempty"`
}

type UploadURLResponse struct {
	SignedURL string `json:"signed_url"`
	Path      string `json:"path"`
	Token     string `json:"token"`
}

type ConfirmUploadResponse struct {
	URL string `json:"url"`
}

type ReportResponse struct {
	Report  models.Report `json:"report"`
	Success bool          `json:"success"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
