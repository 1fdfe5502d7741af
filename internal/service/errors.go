package service

import "errors"

// Facade outcomes. Each carries the single user-facing message for the
// failure; callers check identity with errors.Is and show err.Error()
// verbatim. Credential failures share one deliberately generic message so
// the login flow never confirms whether an email is registered.
var (
	ErrInvalidEmail       = errors.New("please enter a valid email address")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUsernameTooShort   = errors.New("username must be at least 2 characters long")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrUsernameTaken      = errors.New("this username is already taken")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrNotAuthenticated   = errors.New("you must be signed in to do that")
	ErrTooManyAttempts    = errors.New("too many login attempts, please try again later")
	ErrPostNotFound       = errors.New("post not found")
	ErrPersistence        = errors.New("your changes could not be saved, please try again")
)

// ValidationError wraps a single rule-violation message (password strength,
// post content rules). The facade reports only the first violated rule.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// firstViolation converts a validator's message list into the facade's
// single-message outcome.
func firstViolation(msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	return ValidationError(msgs[0])
}
