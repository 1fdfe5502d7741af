package service

import (
	"log/slog"
	"time"

	"github.com/socialsched/socialsched/internal/domain"
	"github.com/socialsched/socialsched/internal/store"
)

// Default expiry windows. "Remember me" trades a long window for the
// convenience of staying signed in.
const (
	DefaultSessionTTL  = 24 * time.Hour
	DefaultRememberTTL = 30 * 24 * time.Hour
)

// SessionManager owns the single session slot. A session is valid only
// while its age is under the window selected by its rememberMe flag;
// expiry is lazy — detected and cleaned up on the next validity check, no
// background timer.
type SessionManager struct {
	store       *store.Store
	log         *slog.Logger
	now         func() time.Time
	sessionTTL  time.Duration
	rememberTTL time.Duration
}

func NewSessionManager(st *store.Store, logger *slog.Logger) *SessionManager {
	return &SessionManager{
		store:       st,
		log:         logger,
		now:         time.Now,
		sessionTTL:  DefaultSessionTTL,
		rememberTTL: DefaultRememberTTL,
	}
}

// WithClock replaces the time source, letting tests drive expiry without
// sleeping.
func (m *SessionManager) WithClock(now func() time.Time) *SessionManager {
	m.now = now
	return m
}

// WithTTLs overrides the expiry windows. Zero values keep the defaults.
func (m *SessionManager) WithTTLs(session, remember time.Duration) *SessionManager {
	if session > 0 {
		m.sessionTTL = session
	}
	if remember > 0 {
		m.rememberTTL = remember
	}
	return m
}

// Create overwrites any existing session with a fresh record for userID.
func (m *SessionManager) Create(userID string, rememberMe bool) error {
	return m.store.Session().Put(domain.Session{
		UserID:     userID,
		RememberMe: rememberMe,
		Timestamp:  m.now().UnixMilli(),
	})
}

// Read returns the stored session, or nil when absent or corrupt. It does
// not check expiry; use Valid for that.
func (m *SessionManager) Read() *domain.Session {
	return m.store.Session().Get()
}

// Valid reports whether a live session exists. An expired session is
// deleted as a side effect before reporting false, so a later Read sees
// nothing.
func (m *SessionManager) Valid() bool {
	sess := m.Read()
	if sess == nil {
		return false
	}

	maxAge := m.sessionTTL
	if sess.RememberMe {
		maxAge = m.rememberTTL
	}

	if m.now().Sub(sess.CreatedAt()) >= maxAge {
		if err := m.Clear(); err != nil {
			m.log.Error("failed to clear expired session", "error", err)
		}
		return false
	}
	return true
}

// Clear deletes the session record unconditionally.
func (m *SessionManager) Clear() error {
	return m.store.Session().Clear()
}
