package services

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/dmitrijs2005/examhub/internal/common"
	"github.com/dmitrijs2005/examhub/internal/server/storage"
	"github.com/google/uuid"
)

const defaultContentType = "application/pdf"

// Presigner issues upload targets and public object URLs.
type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string) (*storage.PresignedUpload, error)
	PublicURL(key string) string
}

type UploadRequest struct {
	Filename    string
	ContentType string
	Path        string
}

type UploadService struct {
	presigner Presigner
	now       func() time.Time
}

func NewUploadService(p Presigner) *UploadService {
	return &UploadService{presigner: p, now: time.Now}
}

// uploadKey is YYYY/MM/{uuid}_{filename}. The filename defaults to {uuid}.pdf.
func (s *UploadService) uploadKey(filename string) string {
	id := uuid.NewString()
	filename = path.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." || filename == "/" {
		filename = id + ".pdf"
	}
	return s.now().UTC().Format("2006/01") + "/" + id + "_" + filename
}

// checkPath accepts only clean keys below exam-files/{callerID}/.
func checkPath(callerID, p string) error {
	prefix := common.ExamFilesPrefix + "/" + callerID + "/"
	if path.Clean(p) != p || !strings.HasPrefix(p, prefix) || len(p) == len(prefix) {
		return common.Invalid("path", "must be under "+prefix)
	}
	return nil
}

// URL presigns a PUT for req on behalf of callerID.
func (s *UploadService) URL(ctx context.Context, callerID string, req UploadRequest) (*storage.PresignedUpload, error) {
	key := strings.TrimSpace(req.Path)
	if key != "" {
		if err := checkPath(callerID, key); err != nil {
			return nil, err
		}
	} else {
		key = s.uploadKey(req.Filename)
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	return s.presigner.PresignPut(ctx, key, contentType)
}

// Confirm returns the public URL of an uploaded object. The key must be
// clean and relative, and keys in the exam-files namespace must belong to
// callerID.
func (s *UploadService) Confirm(callerID, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", common.Required("path")
	}
	if path.Clean(key) != key || strings.HasPrefix(key, "/") || strings.HasPrefix(key, "../") {
		return "", common.Invalid("path", "must be a clean relative key")
	}
	if strings.HasPrefix(key, common.ExamFilesPrefix+"/") {
		if err := checkPath(callerID, key); err != nil {
			return "", err
		}
	}
	return s.presigner.PublicURL(key), nil
}
