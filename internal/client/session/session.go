// Package session holds the verified identity of the current user.
//
// A Holder is created once at startup and handed to every component that
// needs the session; nothing reads it from package-level state.
package session

import (
	"errors"
	"sync"

	"github.com/dmitrijs2005/examhub/internal/client/models"
)

// ErrNoSession is returned by operations that require a logged-in user.
var ErrNoSession = errors.New("not logged in")

// Session is the server-confirmed identity together with the payload it was
// derived from.
type Session struct {
	User     models.User
	InitData string
}

// OwnerID returns the user id pages and exams are stored under.
func (s *Session) OwnerID() string {
	return s.User.ID
}

type Holder struct {
	mu  sync.RWMutex
	cur *Session
}

func NewHolder() *Holder {
	return &Holder{}
}

func (h *Holder) Set(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cur = s
}

func (h *Holder) Get() (*Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cur, h.cur != nil
}

// Require returns the current session or ErrNoSession.
func (h *Holder) Require() (*Session, error) {
	s, ok := h.Get()
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}

func (h *Holder) Clear() {
	h.Set(nil)
}
