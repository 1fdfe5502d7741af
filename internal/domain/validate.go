package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Validation messages surfaced to the user. One message per violated rule;
// validators collect every applicable violation rather than stopping at the
// first.
const (
	MsgPasswordLength    = "password must be at least 8 characters long"
	MsgPasswordLowercase = "password must contain at least one lowercase letter"
	MsgPasswordUppercase = "password must contain at least one uppercase letter"
	MsgPasswordDigit     = "password must contain at least one number"
	MsgPasswordSymbol    = "password must contain at least one special character"

	MsgContentRequired  = "post content is required"
	MsgContentTooLong   = "post content must be less than 2200 characters"
	MsgPlatformRequired = "platform selection is required"
	MsgScheduleRequired = "scheduled time is required"
	MsgScheduleInPast   = "scheduled time must be in the future"
)

const (
	// MaxContentLength is the longest allowed post body in characters,
	// matching the strictest platform caption limit.
	MaxContentLength = 2200

	// MinUsernameLength applies after sanitization.
	MinUsernameLength = 2

	passwordSymbols = "@$!%*?&"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SanitizeInput trims surrounding whitespace and strips angle brackets so
// stored values can't smuggle markup into fields later rendered as text.
func SanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.NewReplacer("<", "", ">", "").Replace(s)
}

// ValidateEmail reports whether s has a local@domain.tld shape.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePassword returns every violated strength rule, in a fixed order:
// length, lowercase, uppercase, digit, symbol. An empty slice means the
// password is acceptable.
func ValidatePassword(s string) []string {
	var errs []string

	if utf8.RuneCountInString(s) < 8 {
		errs = append(errs, MsgPasswordLength)
	}
	if !strings.ContainsFunc(s, unicode.IsLower) {
		errs = append(errs, MsgPasswordLowercase)
	}
	if !strings.ContainsFunc(s, unicode.IsUpper) {
		errs = append(errs, MsgPasswordUppercase)
	}
	if !strings.ContainsFunc(s, unicode.IsDigit) {
		errs = append(errs, MsgPasswordDigit)
	}
	if !strings.ContainsAny(s, passwordSymbols) {
		errs = append(errs, MsgPasswordSymbol)
	}

	return errs
}

// ValidatePost checks the provided fields of a partial post against the
// content rules, cumulatively. Fields left nil are not checked, which is
// what allows partial edits. now anchors the future-schedule check.
func ValidatePost(c PostChanges, now time.Time) []string {
	var errs []string

	if c.Content != nil {
		content := *c.Content
		if strings.TrimSpace(content) == "" {
			errs = append(errs, MsgContentRequired)
		}
		if utf8.RuneCountInString(content) > MaxContentLength {
			errs = append(errs, MsgContentTooLong)
		}
	}

	if c.Platform != nil && !c.Platform.Valid() {
		errs = append(errs, MsgPlatformRequired)
	}

	if c.ScheduledTime != nil {
		switch at := *c.ScheduledTime; {
		case at.IsZero():
			errs = append(errs, MsgScheduleRequired)
		case !at.After(now):
			errs = append(errs, MsgScheduleInPast)
		}
	}

	return errs
}
