// Package services contains the application services of the ExamHub client.
// This file defines the AuthGate: the one-shot exchange of the Telegram init
// payload for a verified session.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/examhub/internal/client/bridge"
	"github.com/dmitrijs2005/examhub/internal/client/client"
	"github.com/dmitrijs2005/examhub/internal/client/session"
)

var (
	// ErrAuthFailed matches every AuthError.
	ErrAuthFailed = errors.New("telegram login failed")
	// ErrNoInitData means the init payload is empty, e.g. outside Telegram.
	ErrNoInitData = errors.New("init data unavailable")
)

// AuthError wraps the cause of a rejected login.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %v", ErrAuthFailed, e.Err)
}

func (e *AuthError) Unwrap() []error {
	return []error{ErrAuthFailed, e.Err}
}

// AuthGate obtains a verified session before gated features are used.
//
// Contract:
//   - Authenticate: one verify call; on success the session is stored in
//     the holder and returned, otherwise an *AuthError is returned.
//   - Login: same as Authenticate but reports only success, never an error.
//
// There is no retry; a cancelled ctx aborts the single attempt.
type AuthGate interface {
	Authenticate(ctx context.Context) (*session.Session, error)
	Login(ctx context.Context) bool
}

type authGate struct {
	api    client.API
	source bridge.Source
	holder *session.Holder
}

// NewAuthGate binds the gate to the API, the payload source it verifies and
// the holder that receives the session.
func NewAuthGate(api client.API, source bridge.Source, holder *session.Holder) AuthGate {
	return &authGate{api: api, source: source, holder: holder}
}

func (a *authGate) Authenticate(ctx context.Context) (*session.Session, error) {
	initData := a.source.InitData()
	if initData == "" {
		return nil, &AuthError{Err: ErrNoInitData}
	}

	resp, err := a.api.VerifyAuth(ctx)
	if err != nil {
		return nil, &AuthError{Err: err}
	}
	if resp.Error != "" {
		return nil, &AuthError{Err: errors.New(resp.Error)}
	}
	if resp.User == nil || resp.User.ID == "" {
		return nil, &AuthError{Err: errors.New("no session")}
	}

	s := &session.Session{User: *resp.User, InitData: initData}
	a.holder.Set(s)
	return s, nil
}

func (a *authGate) Login(ctx context.Context) bool {
	_, err := a.Authenticate(ctx)
	return err == nil
}
