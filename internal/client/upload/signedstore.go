package upload

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"sync"

	"github.com/dmitrijs2005/examhub/internal/client/client"
	"github.com/dmitrijs2005/examhub/internal/netx"
)

// SignedURLStore stores pages through the API: it requests a presigned PUT
// URL for the exact path, uploads the bytes, then confirms the upload to
// learn the public URL.
type SignedURLStore struct {
	api  client.API
	http *http.Client

	mu   sync.Mutex
	urls map[string]string
}

func NewSignedURLStore(api client.API, httpClient *http.Client) *SignedURLStore {
	return &SignedURLStore{api: api, http: httpClient, urls: make(map[string]string)}
}

func (s *SignedURLStore) Store(ctx context.Context, p string, data []byte) error {
	ct := contentTypeFor(p)

	signed, err := s.api.GetUploadURL(ctx, client.UploadURLRequest{
		Filename:    path.Base(p),
		ContentType: ct,
		Path:        p,
	})
	if err != nil {
		return fmt.Errorf("get upload url: %w", err)
	}

	if err := netx.UploadToPresignedURL(ctx, s.http, signed.SignedURL, data, ct); err != nil {
		return err
	}

	confirmed, err := s.api.ConfirmUpload(ctx, signed.Path)
	if err != nil {
		return fmt.Errorf("confirm upload: %w", err)
	}

	s.mu.Lock()
	s.urls[p] = confirmed.URL
	s.mu.Unlock()
	return nil
}

// PublicURL returns the URL confirmed by a previous Store of p, or "".
func (s *SignedURLStore) PublicURL(p string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.urls[p]
}
