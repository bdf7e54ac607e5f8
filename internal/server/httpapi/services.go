// Package httpapi is the ExamHub REST API: a gin router with Telegram
// init-data authentication, request logging, rate limiting and Prometheus
// metrics in front of the services package.
package httpapi

import (
	"context"

	"github.com/dmitrijs2005/examhub/internal/server/auth"
	"github.com/dmitrijs2005/examhub/internal/server/models"
	"github.com/dmitrijs2005/examhub/internal/server/services"
	"github.com/dmitrijs2005/examhub/internal/server/storage"
)

// InitDataValidator checks the X-Telegram-Auth payload.
type InitDataValidator interface {
	Validate(initData string) (*auth.TelegramUser, error)
}

type UserService interface {
	Verify(ctx context.Context, tg *auth.TelegramUser) (*models.User, error)
	Resolve(ctx context.Context, tg *auth.TelegramUser) (*models.User, error)
	Profile(ctx context.Context, userID, viewerID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (*models.User, error)
	Follow(ctx context.Context, followerID, targetID string) (bool, error)
	Unfollow(ctx context.Context, followerID, targetID string) error
}

type CatalogService interface {
	Universities(ctx context.Context) ([]models.University, error)
	AddUniversity(ctx context.Context, name string) (*models.University, error)
	Courses(ctx context.Context) ([]models.Course, error)
	AddCourse(ctx context.Context, name string) (*models.Course, error)
}

type ExamService interface {
	List(ctx context.Context, viewerID, feedType string, f models.ExamFilter) ([]models.Exam, error)
	Get(ctx context.Context, viewerID, id string) (*models.Exam, error)
	Create(ctx context.Context, authorID string, in services.ExamInput) (*models.Exam, error)
	Like(ctx context.Context, userID, examID string) (bool, error)
	Unlike(ctx context.Context, userID, examID string) error
}

type UploadService interface {
	URL(ctx context.Context, callerID string, req services.UploadRequest) (*storage.PresignedUpload, error)
	Confirm(callerID, key string) (string, error)
}

type ReportService interface {
	Create(ctx context.Context, reporterID, reportType, reportedID, reason string) (*models.Report, error)
}

var (
	_ UserService    = (*services.UserService)(nil)
	_ CatalogService = (*services.CatalogService)(nil)
	_ ExamService    = (*services.ExamService)(nil)
	_ UploadService  = (*services.UploadService)(nil)
	_ ReportService  = (*services.ReportService)(nil)
)

// Deps are the collaborators of the router.
type Deps struct {
	Validator InitDataValidator
	Users     UserService
	Catalog   CatalogService
	Exams     ExamService
	Uploads   UploadService
	Reports   ReportService
}
