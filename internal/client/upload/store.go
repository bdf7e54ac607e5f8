package upload

import (
	"context"
	"mime"
	"path"
)

// ObjectStore persists page bytes and resolves their public URLs.
type ObjectStore interface {
	Store(ctx context.Context, path string, data []byte) error
	PublicURL(path string) string
}

// ExamRecord is the row written once all pages are stored. Pages holds the
// public URLs in page order.
type ExamRecord struct {
	ID           string
	OwnerID      string
	UniversityID string
	CourseID     string
	Title        string
	Year         int
	ExamType     string
	TeacherName  string
	Pages        []string
}

// ExamRecorder writes exam records.
type ExamRecorder interface {
	RecordExam(ctx context.Context, rec ExamRecord) error
}

func contentTypeFor(p string) string {
	if ct := mime.TypeByExtension(path.Ext(p)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
