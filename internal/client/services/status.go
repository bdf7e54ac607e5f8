package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/examhub/internal/client/client"
)

// StatusService probes backend liveness for the CLI's online indicator.
type StatusService interface {
	Ping(ctx context.Context) error
}

type statusService struct {
	api client.API
}

func NewStatusService(api client.API) StatusService {
	return &statusService{api: api}
}

// Ping calls the health endpoint; any status other than "ok" counts as
// unavailable.
func (s *statusService) Ping(ctx context.Context) error {
	resp, err := s.api.Health(ctx)
	if err != nil {
		return err
	}
	if resp.Status != "ok" {
		return fmt.Errorf("%w: status %q", client.ErrUnavailable, resp.Status)
	}
	return nil
}
