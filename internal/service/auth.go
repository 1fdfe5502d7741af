package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/socialsched/socialsched/internal/domain"
	"github.com/socialsched/socialsched/internal/store"
	"github.com/socialsched/socialsched/pkg/cryptox"
	"github.com/socialsched/socialsched/pkg/idx"
	"github.com/socialsched/socialsched/pkg/slogx"
)

// AuthService orchestrates the user store and session manager into the
// identity operations the UI calls: login, signup, logout, profile update,
// and password change. Each returns nil on success or a single
// user-facing error; nothing here panics across the boundary.
//
// The service keeps the current user in memory the way the original
// dashboard kept ambient auth state, but as an explicit dependency-
// injected object with an Init lifecycle instead of a global.
type AuthService struct {
	store    *store.Store
	sessions *SessionManager
	log      *slog.Logger
	cost     int
	limiter  *loginLimiter
	now      func() time.Time

	current *domain.User
}

// ProfileChanges is a partial profile update; nil fields are untouched.
type ProfileChanges struct {
	Username *string
	Email    *string
}

func NewAuthService(st *store.Store, sessions *SessionManager, logger *slog.Logger, bcryptCost int) *AuthService {
	return &AuthService{
		store:    st,
		sessions: sessions,
		log:      logger,
		cost:     bcryptCost,
		limiter:  newLoginLimiter(loginAttemptsPerWindow, loginWindow, loginBurst),
		now:      time.Now,
	}
}

// WithClock replaces the time source used for createdAt/updatedAt stamps.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// Init restores identity from a previously stored session, the same way
// the dashboard re-authenticates on page load. A valid session pointing
// at a user that no longer exists is cleared.
func (s *AuthService) Init(ctx context.Context) {
	if !s.sessions.Valid() {
		return
	}

	sess := s.sessions.Read()
	if sess == nil {
		return
	}

	user, ok := s.store.Users().FindByID(sess.UserID)
	if !ok {
		slogx.FromContext(ctx).Warn("session references unknown user, clearing", "user_id", sess.UserID)
		if err := s.sessions.Clear(); err != nil {
			s.log.Error("failed to clear orphaned session", "error", err)
		}
		return
	}
	s.current = &user
}

// CurrentUser returns a copy of the signed-in user, or nil when nobody is
// authenticated.
func (s *AuthService) CurrentUser() *domain.User {
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// Login authenticates by email and password. Unknown email and wrong
// password fail identically with ErrInvalidCredentials so the response
// never confirms whether an account exists.
func (s *AuthService) Login(ctx context.Context, email, password string, rememberMe bool) error {
	l := slogx.FromContext(ctx)

	email = domain.SanitizeInput(strings.ToLower(email))
	if !domain.ValidateEmail(email) {
		return ErrInvalidEmail
	}

	if !s.limiter.Allow(email) {
		l.Warn("login throttled", "email", email)
		return ErrTooManyAttempts
	}

	user, ok := s.store.Users().FindByEmail(email)
	if !ok {
		l.Info("login failed: unknown email")
		return ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrMismatch) {
			l.Error("password verification failed", "error", err)
		}
		l.Info("login failed: bad password", "user_id", user.ID)
		return ErrInvalidCredentials
	}

	if err := s.sessions.Create(user.ID, rememberMe); err != nil {
		l.Error("failed to persist session", "error", err)
		return ErrPersistence
	}

	s.current = &user
	l.Info("user logged in", "user_id", user.ID, "remember_me", rememberMe)
	return nil
}

// Signup registers a new account and signs it in. The fresh session is
// never a remember-me session.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) error {
	l := slogx.FromContext(ctx)

	username = domain.SanitizeInput(username)
	if len(username) < domain.MinUsernameLength {
		return ErrUsernameTooShort
	}

	email = domain.SanitizeInput(strings.ToLower(email))
	if !domain.ValidateEmail(email) {
		return ErrInvalidEmail
	}

	if err := firstViolation(domain.ValidatePassword(password)); err != nil {
		return err
	}

	users := s.store.Users()
	all := users.List()

	if _, taken := users.FindByEmail(email); taken {
		return ErrEmailTaken
	}
	for _, u := range all {
		if strings.EqualFold(u.Username, username) {
			return ErrUsernameTaken
		}
	}

	hash, err := cryptox.HashPassword(password, s.cost)
	if err != nil {
		l.Error("password hashing failed", "error", err)
		return ErrPersistence
	}

	now := s.now()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := users.Save(append(all, user)); err != nil {
		l.Error("failed to persist new user", "error", err)
		return ErrPersistence
	}

	if err := s.sessions.Create(user.ID, false); err != nil {
		l.Error("failed to persist session", "error", err)
		return ErrPersistence
	}

	s.current = &user
	l.Info("user signed up", "user_id", user.ID)
	return nil
}

// Logout clears the session slot and the in-memory identity.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.sessions.Clear(); err != nil {
		slogx.FromContext(ctx).Error("failed to clear session", "error", err)
	}
	s.current = nil
}

// UpdateProfile applies the provided username/email changes after running
// the same sanitization, validation, and uniqueness rules as signup,
// excluding the current user from the uniqueness checks.
func (s *AuthService) UpdateProfile(ctx context.Context, changes ProfileChanges) error {
	l := slogx.FromContext(ctx)

	if s.current == nil {
		return ErrNotAuthenticated
	}

	users := s.store.Users()
	all := users.List()

	pos := -1
	for i := range all {
		if all[i].ID == s.current.ID {
			pos = i
			break
		}
	}
	if pos == -1 {
		return ErrNotAuthenticated
	}

	if changes.Username != nil {
		username := domain.SanitizeInput(*changes.Username)
		if len(username) < domain.MinUsernameLength {
			return ErrUsernameTooShort
		}
		for _, u := range all {
			if u.ID != s.current.ID && strings.EqualFold(u.Username, username) {
				return ErrUsernameTaken
			}
		}
		changes.Username = &username
	}

	if changes.Email != nil {
		email := domain.SanitizeInput(strings.ToLower(*changes.Email))
		if !domain.ValidateEmail(email) {
			return ErrInvalidEmail
		}
		for _, u := range all {
			if u.ID != s.current.ID && u.Email == email {
				return ErrEmailTaken
			}
		}
		changes.Email = &email
	}

	if changes.Username != nil {
		all[pos].Username = *changes.Username
	}
	if changes.Email != nil {
		all[pos].Email = *changes.Email
	}
	all[pos].UpdatedAt = s.now()

	if err := users.Save(all); err != nil {
		l.Error("failed to persist profile update", "error", err)
		return ErrPersistence
	}

	s.current = &all[pos]
	l.Info("profile updated", "user_id", all[pos].ID)
	return nil
}

// ChangePassword verifies the current password before accepting a new one
// that passes the strength rules.
func (s *AuthService) ChangePassword(ctx context.Context, current, next string) error {
	l := slogx.FromContext(ctx)

	if s.current == nil {
		return ErrNotAuthenticated
	}

	if err := cryptox.VerifyPassword(current, s.current.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrMismatch) {
			l.Error("password verification failed", "error", err)
		}
		return ErrWrongPassword
	}

	if err := firstViolation(domain.ValidatePassword(next)); err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(next, s.cost)
	if err != nil {
		l.Error("password hashing failed", "error", err)
		return ErrPersistence
	}

	users := s.store.Users()
	all := users.List()
	for i := range all {
		if all[i].ID != s.current.ID {
			continue
		}
		all[i].PasswordHash = hash
		all[i].UpdatedAt = s.now()

		if err := users.Save(all); err != nil {
			l.Error("failed to persist password change", "error", err)
			return ErrPersistence
		}

		s.current = &all[i]
		l.Info("password changed", "user_id", all[i].ID)
		return nil
	}
	return ErrNotAuthenticated
}
