package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/socialsched/socialsched/internal/kv"
	"github.com/socialsched/socialsched/internal/store"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	clock    *fakeClock
	store    *store.Store
	sessions *SessionManager
	auth     *AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	clock := newFakeClock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(kv.NewMemory(), logger).WithClock(clock.Now)
	sessions := NewSessionManager(st, logger).WithClock(clock.Now)

	// MinCost keeps the bcrypt calls fast in tests.
	auth := NewAuthService(st, sessions, logger, bcrypt.MinCost).WithClock(clock.Now)

	return &authFixture{clock: clock, store: st, sessions: sessions, auth: auth}
}

func TestSignup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates the account and signs in", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.auth.Signup(ctx, "alice", "alice@x.com", "Abcdef1!"))

		user := f.auth.CurrentUser()
		require.NotNil(t, user)
		require.Equal(t, "alice", user.Username)
		require.Equal(t, "alice@x.com", user.Email)
		require.NotEmpty(t, user.ID)
		require.NotEqual(t, "Abcdef1!", user.PasswordHash)
		require.Equal(t, f.clock.Now(), user.CreatedAt)
		require.Equal(t, f.clock.Now(), user.UpdatedAt)

		// A signup session is never remember-me.
		sess := f.sessions.Read()
		require.NotNil(t, sess)
		require.Equal(t, user.ID, sess.UserID)
		require.False(t, sess.RememberMe)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.auth.Signup(ctx, "alice", "alice@x.com", "Abcdef1!"))

		err := f.auth.Signup(ctx, "bob", "alice@x.com", "Qwerty2@")
		require.ErrorIs(t, err, ErrEmailTaken)
		require.Len(t, f.store.Users().List(), 1)
	})

	t.Run("rejects a duplicate username case-insensitively", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.auth.Signup(ctx, "alice", "alice@x.com", "Abcdef1!"))

		err := f.auth.Signup(ctx, "ALICE", "other@x.com", "Qwerty2@")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("rejects a short username after sanitization", func(t *testing.T) {
		f := newAuthFixture(t)
		require.ErrorIs(t, f.auth.Signup(ctx, " <a> ", "alice@x.com", "Abcdef1!"), ErrUsernameTooShort)
		require.ErrorIs(t, f.auth.Signup(ctx, "", "alice@x.com", "Abcdef1!"), ErrUsernameTooShort)
	})

	t.Run("rejects a bad email shape", func(t *testing.T) {
		f := newAuthFixture(t)
		require.ErrorIs(t, f.auth.Signup(ctx, "alice", "not-an-email", "Abcdef1!"), ErrInvalidEmail)
	})

	t.Run("reports the first violated password rule", func(t *testing.T) {
		f := newAuthFixture(t)
		err := f.auth.Signup(ctx, "alice", "alice@x.com", "short")
		var verr ValidationError
		require.ErrorAs(t, err, &verr)
		require.EqualError(t, verr, "password must be at least 8 characters long")
		require.Empty(t, f.store.Users().List())
	})

	t.Run("lowercases the email", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.auth.Signup(ctx, "alice", "Alice@X.COM", "Abcdef1!"))
		require.Equal(t, "alice@x.com", f.auth.CurrentUser().Email)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("succeeds with correct credentials", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.auth.Signup(ctx, "alice", "alice@x.com", "Abcdef1!"))
		f.auth.Logout(ctx)
		require.Nil(t, f.auth.CurrentUser())

		require.NoError(t, f.auth.Login(ctx, "alice@x.com", "Abcdef1!", true))
		require.Equal(t, "alice", f.auth.CurrentUser().Username)
		require.True(t, f.sessions.Read().RememberMe)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.auth.Signup(ctx, "alice", "alice@x.com", "Abcdef1!"))
		f.auth.Logout(ctx)

		wrongPassword := f.auth.Login(ctx, "alice@x.com", "wrongpass", false)
		unknownEmail := f.auth.Login(ctx, "nobody@x.com", "Abcdef1!", false)

		require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
		require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
		require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
		require.Nil(t, f.auth.CurrentUser())
	})

	t.Run("rejects a malformed email before touching the store", func(t *testing.T) {
		f := newAuthFixture(t)
		require.ErrorIs(t, f.auth.Login(ctx, "not-an-email", "Abcdef1!", false), ErrInvalidEmail)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.auth.Signup(ctx, "alice", "alice@x.com", "Abcdef1!"))
		f.auth.Logout(ctx)

		require.NoError(t, f.auth.Login(ctx, "ALICE@X.com", "Abcdef1!", false))
	})

	t.Run("throttles repeated attempts per email", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.auth.Signup(ctx, "alice", "alice@x.com", "Abcdef1!"))
		f.auth.Logout(ctx)

		for i := 0; i < loginBurst; i++ {
			require.ErrorIs(t, f.auth.Login(ctx, "alice@x.com", "wrongpass", false), ErrInvalidCredentials)
		}
		require.ErrorIs(t, f.auth.Login(ctx, "alice@x.com", "Abcdef1!", false), ErrTooManyAttempts)

		// Other emails are unaffected.
		require.ErrorIs(t, f.auth.Login(ctx, "bob@x.com", "whatever1!", false), ErrInvalidCredentials)
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newAuthFixture(t)
	require.NoError(t, f.auth.Signup(ctx, "alice", "alice@x.com", "Abcdef1!"))

	f.auth.Logout(ctx)
	require.Nil(t, f.auth.CurrentUser())
	require.Nil(t, f.sessions.Read())
}

func TestInit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("restores identity from a live session", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.auth.Signup(ctx, "alice", "alice@x.com", "Abcdef1!"))

		// Fresh service over the same store, as after a restart.
		restarted := NewAuthService(f.store, f.sessions, slog.New(slog.NewTextHandler(io.Discard, nil)), bcrypt.MinCost).
			WithClock(f.clock.Now)
		restarted.Init(ctx)

		user := restarted.CurrentUser()
		require.NotNil(t, user)
		require.Equal(t, "alice", user.Username)
	})

	t.Run("expired session stays logged out", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.auth.Signup(ctx, "alice", "alice@x.com", "Abcdef1!"))
		f.clock.Advance(25 * time.Hour)

		restarted := NewAuthService(f.store, f.sessions, slog.New(slog.NewTextHandler(io.Discard, nil)), bcrypt.MinCost).
			WithClock(f.clock.Now)
		restarted.Init(ctx)

		require.Nil(t, restarted.CurrentUser())
		require.Nil(t, f.sessions.Read())
	})

	t.Run("session for a vanished user is cleared", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.sessions.Create("ghost", false))

		f.auth.Init(ctx)
		require.Nil(t, f.auth.CurrentUser())
		require.Nil(t, f.sessions.Read())
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	str := func(s string) *string { return &s }

	t.Run("requires authentication", func(t *testing.T) {
		f := newAuthFixture(t)
		err := f.auth.UpdateProfile(ctx, ProfileChanges{Username: str("new")})
		require.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("updates username and email and bumps updatedAt", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.auth.Signup(ctx, "alice", "alice@x.com", "Abcdef1!"))
		created := f.auth.CurrentUser().UpdatedAt

		f.clock.Advance(time.Hour)
		require.NoError(t, f.auth.UpdateProfile(ctx, ProfileChanges{
			Username: str("  alicia  "),
			Email:    str("Alicia@X.com"),
		}))

		user := f.auth.CurrentUser()
		require.Equal(t, "alicia", user.Username)
		require.Equal(t, "alicia@x.com", user.Email)
		require.True(t, user.UpdatedAt.After(created))

		persisted, ok := f.store.Users().FindByID(user.ID)
		require.True(t, ok)
		require.Equal(t, "alicia", persisted.Username)
	})

	t.Run("uniqueness excludes the current user", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.auth.Signup(ctx, "alice", "alice@x.com", "Abcdef1!"))

		// Re-saving your own name/email is not a conflict.
		require.NoError(t, f.auth.UpdateProfile(ctx, ProfileChanges{
			Username: str("alice"),
			Email:    str("alice@x.com"),
		}))
	})

	t.Run("rejects values taken by another user", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.auth.Signup(ctx, "alice", "alice@x.com", "Abcdef1!"))
		f.auth.Logout(ctx)
		require.NoError(t, f.auth.Signup(ctx, "bob", "bob@x.com", "Qwerty2@"))

		require.ErrorIs(t,
			f.auth.UpdateProfile(ctx, ProfileChanges{Username: str("Alice")}),
			ErrUsernameTaken)
		require.ErrorIs(t,
			f.auth.UpdateProfile(ctx, ProfileChanges{Email: str("alice@x.com")}),
			ErrEmailTaken)

		// Nothing was persisted.
		bob, _ := f.store.Users().FindByEmail("bob@x.com")
		require.Equal(t, "bob", bob.Username)
	})
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("requires authentication", func(t *testing.T) {
		f := newAuthFixture(t)
		require.ErrorIs(t, f.auth.ChangePassword(ctx, "Abcdef1!", "Qwerty2@"), ErrNotAuthenticated)
	})

	t.Run("rejects a wrong current password", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.auth.Signup(ctx, "alice", "alice@x.com", "Abcdef1!"))

		require.ErrorIs(t, f.auth.ChangePassword(ctx, "wrongpass", "Qwerty2@"), ErrWrongPassword)
	})

	t.Run("rejects a weak new password", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.auth.Signup(ctx, "alice", "alice@x.com", "Abcdef1!"))

		err := f.auth.ChangePassword(ctx, "Abcdef1!", "weak")
		var verr ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("old password stops working, new one logs in", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.auth.Signup(ctx, "alice", "alice@x.com", "Abcdef1!"))

		require.NoError(t, f.auth.ChangePassword(ctx, "Abcdef1!", "Qwerty2@"))
		f.auth.Logout(ctx)

		require.ErrorIs(t, f.auth.Login(ctx, "alice@x.com", "Abcdef1!", false), ErrInvalidCredentials)
		require.NoError(t, f.auth.Login(ctx, "alice@x.com", "Qwerty2@", false))
	})
}
