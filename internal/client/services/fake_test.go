package services

import (
	"context"

	"github.com/dmitrijs2005/examhub/internal/client/client"
	"github.com/dmitrijs2005/examhub/internal/client/models"
)

// fakeAPI implements client.API for unit tests. Only VerifyAuth and Health
// carry behavior; the rest satisfy the interface.
type fakeAPI struct {
	VerifyRet   *client.AuthResponse
	VerifyErr   error
	VerifyCalls int

	HealthErr error
}

func (f *fakeAPI) VerifyAuth(ctx context.Context) (*client.AuthResponse, error) {
	f.VerifyCalls++
	return f.VerifyRet, f.VerifyErr
}

func (f *fakeAPI) GetProfile(ctx context.Context) (*client.ProfileResponse, error) {
	return &client.ProfileResponse{}, nil
}

func (f *fakeAPI) GetUserProfile(ctx context.Context, userID string) (*client.ProfileResponse, error) {
	return &client.ProfileResponse{}, nil
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*client.ProfileUpdateResponse, error) {
	return &client.ProfileUpdateResponse{}, nil
}

func (f *fakeAPI) Follow(ctx context.Context, userID string) (*client.SuccessResponse, error) {
	return &client.SuccessResponse{Success: true}, nil
}

func (f *fakeAPI) Unfollow(ctx context.Context, userID string) (*client.SuccessResponse, error) {
	return &client.SuccessResponse{Success: true}, nil
}

func (f *fakeAPI) ListUniversities(ctx context.Context) (*client.UniversitiesResponse, error) {
	return &client.UniversitiesResponse{}, nil
}

func (f *fakeAPI) CreateUniversity(ctx context.Context, name string) (*client.UniversityResponse, error) {
	return &client.UniversityResponse{}, nil
}

func (f *fakeAPI) ListCourses(ctx context.Context) (*client.CoursesResponse, error) {
	return &client.CoursesResponse{}, nil
}

func (f *fakeAPI) CreateCourse(ctx context.Context, name string) (*client.CourseResponse, error) {
	return &client.CourseResponse{}, nil
}

func (f *fakeAPI) ListExams(ctx context.Context, filters client.ExamFilters) (*client.ExamsResponse, error) {
	return &client.ExamsResponse{}, nil
}

func (f *fakeAPI) GetExam(ctx context.Context, examID string) (*client.ExamResponse, error) {
	return &client.ExamResponse{}, nil
}

func (f *fakeAPI) CreateExam(ctx context.Context, exam models.NewExam) (*client.CreateExamResponse, error) {
	return &client.CreateExamResponse{}, nil
}

func (f *fakeAPI) LikeExam(ctx context.Context, examID string) (*client.SuccessResponse, error) {
	return &client.SuccessResponse{Success: true}, nil
}

func (f *fakeAPI) UnlikeExam(ctx context.Context, examID string) (*client.SuccessResponse, error) {
	return &client.SuccessResponse{Success: true}, nil
}

func (f *fakeAPI) GetUploadURL(ctx context.Context, in client.UploadURLRequest) (*client.UploadURLResponse, error) {
	return &client.UploadURLResponse{}, nil
}

func (f *fakeAPI) ConfirmUpload(ctx context.Context, path string) (*client.ConfirmUploadResponse, error) {
	return &client.ConfirmUploadResponse{}, nil
}

func (f *fakeAPI) CreateReport(ctx context.Context, report models.NewReport) (*client.ReportResponse, error) {
	return &client.ReportResponse{}, nil
}

func (f *fakeAPI) Health(ctx context.Context) (*client.HealthResponse, error) {
	if f.HealthErr != nil {
		return nil, f.HealthErr
	}
	return &client.HealthResponse{Status: "ok"}, nil
}
