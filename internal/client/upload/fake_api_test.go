package upload

import (
	"context"

	"github.com/dmitrijs2005/examhub/internal/client/client"
	"github.com/dmitrijs2005/examhub/internal/client/models"
)

// fakeAPI overrides the upload-related endpoints; any other call panics on
// the nil embedded interface.
type fakeAPI struct {
	client.API

	SignedURL    string
	UploadURLErr error
	LastURLReq   client.UploadURLRequest

	ConfirmURL     string
	ConfirmErr     error
	LastConfirmed  string
	ConfirmedPaths []string

	CreateErr  error
	LastCreate models.NewExam
}

func (f *fakeAPI) GetUploadURL(ctx context.Context, in client.UploadURLRequest) (*client.UploadURLResponse, error) {
	f.LastURLReq = in
	if f.UploadURLErr != nil {
		return nil, f.UploadURLErr
	}
	return &client.UploadURLResponse{SignedURL: f.SignedURL, Path: in.Path, Token: "tok"}, nil
}

func (f *fakeAPI) ConfirmUpload(ctx context.Context, path string) (*client.ConfirmUploadResponse, error) {
	f.LastConfirmed = path
	f.ConfirmedPaths = append(f.ConfirmedPaths, path)
	if f.ConfirmErr != nil {
		return nil, f.ConfirmErr
	}
	return &client.ConfirmUploadResponse{URL: f.ConfirmURL + path}, nil
}

func (f *fakeAPI) CreateExam(ctx context.Context, exam models.NewExam) (*client.CreateExamResponse, error) {
	f.LastCreate = exam
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	return &client.CreateExamResponse{Exam: models.Exam{ID: exam.ID}, Success: true}, nil
}
