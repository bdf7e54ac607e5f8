package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/examhub/internal/client/models"
)

func call[T any](ctx context.Context, c *HTTPClient, method, endpoint string, body any) (*T, error) {
	out := new(T)
	if err := c.Request(ctx, endpoint, RequestOptions{Method: method, Body: body}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// VerifyAuth exchanges the init payload for the caller's user record.
// Success shape: {user, success}.
func (c *HTTPClient) VerifyAuth(ctx context.Context) (*AuthResponse, error) {
	return call[AuthResponse](ctx, c, http.MethodPost, "/api/auth/verify", nil)
}

// GetProfile returns the caller's profile with follower counts: {user}.
func (c *HTTPClient) GetProfile(ctx context.Context) (*ProfileResponse, error) {
	return call[ProfileResponse](ctx, c, http.MethodGet, "/api/user/profile", nil)
}

// GetUserProfile returns another user's profile including is_following: {user}.
func (c *HTTPClient) GetUserProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	return call[ProfileResponse](ctx, c, http.MethodGet, "/api/user/profile/"+url.PathEscape(userID), nil)
}

// UpdateProfile changes username, bio or avatar: {user?, success}.
func (c *HTTPClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*ProfileUpdateResponse, error) {
	return call[ProfileUpdateResponse](ctx, c, http.MethodPut, "/api/user/profile", update)
}

// Follow: {success, message?}.
func (c *HTTPClient) Follow(ctx context.Context, userID string) (*SuccessResponse, error) {
	return call[SuccessResponse](ctx, c, http.MethodPost, "/api/follow/"+url.PathEscape(userID), nil)
}

// Unfollow: {success}.
func (c *HTTPClient) Unfollow(ctx context.Context, userID string) (*SuccessResponse, error) {
	return call[SuccessResponse](ctx, c, http.MethodDelete, "/api/follow/"+url.PathEscape(userID), nil)
}

// ListUniversities: {universities}, ordered by name.
func (c *HTTPClient) ListUniversities(ctx context.Context) (*UniversitiesResponse, error) {
	return call[UniversitiesResponse](ctx, c, http.MethodGet, "/api/universities", nil)
}

// CreateUniversity: {university, success}.
func (c *HTTPClient) CreateUniversity(ctx context.Context, name string) (*UniversityResponse, error) {
	return call[UniversityResponse](ctx, c, http.MethodPost, "/api/universities", map[string]string{"name": name})
}

// ListCourses: {courses}, ordered by name.
func (c *HTTPClient) ListCourses(ctx context.Context) (*CoursesResponse, error) {
	return call[CoursesResponse](ctx, c, http.MethodGet, "/api/courses", nil)
}

// CreateCourse: {course, success}.
func (c *HTTPClient) CreateCourse(ctx context.Context, name string) (*CourseResponse, error) {
	return call[CourseResponse](ctx, c, http.MethodPost, "/api/courses", map[string]string{"name": name})
}

// ListExams: {exams}. Only the set filter fields reach the query string.
func (c *HTTPClient) ListExams(ctx context.Context, filters ExamFilters) (*ExamsResponse, error) {
	return call[ExamsResponse](ctx, c, http.MethodGet, filters.Endpoint(), nil)
}

// GetExam: {exam}.
func (c *HTTPClient) GetExam(ctx context.Context, examID string) (*ExamResponse, error) {
	return call[ExamResponse](ctx, c, http.MethodGet, "/api/exams/"+url.PathEscape(examID), nil)
}

// CreateExam: {exam, success}.
func (c *HTTPClient) CreateExam(ctx context.Context, exam models.NewExam) (*CreateExamResponse, error) {
	return call[CreateExamResponse](ctx, c, http.MethodPost, "/api/exams", exam)
}

// LikeExam: {success, message?}.
func (c *HTTPClient) LikeExam(ctx context.Context, examID string) (*SuccessResponse, error) {
	return call[SuccessResponse](ctx, c, http.MethodPost, "/api/exams/"+url.PathEscape(examID)+"/like", nil)
}

// UnlikeExam: {success}.
func (c *HTTPClient) UnlikeExam(ctx context.Context, examID string) (*SuccessResponse, error) {
	return call[SuccessResponse](ctx, c, http.MethodDelete, "/api/exams/"+url.PathEscape(examID)+"/like", nil)
}

// GetUploadURL: {signed_url, path, token}.
func (c *HTTPClient) GetUploadURL(ctx context.Context, in UploadURLRequest) (*UploadURLResponse, error) {
	return call[UploadURLResponse](ctx, c, http.MethodPost, "/api/upload/url", in)
}

// ConfirmUpload resolves the public URL of a stored object: {url}.
func (c *HTTPClient) ConfirmUpload(ctx context.Context, path string) (*ConfirmUploadResponse, error) {
	return call[ConfirmUploadResponse](ctx, c, http.MethodPost, "/api/upload/confirm", map[string]string{"path": path})
}

// CreateReport: {report, success}.
func (c *HTTPClient) CreateReport(ctx context.Context, report models.NewReport) (*ReportResponse, error) {
	return call[ReportResponse](ctx, c, http.MethodPost, "/api/reports", report)
}

// Health: {status}.
func (c *HTTPClient) Health(ctx context.Context) (*HealthResponse, error) {
	return call[HealthResponse](ctx, c, http.MethodGet, "/api/health", nil)
}
