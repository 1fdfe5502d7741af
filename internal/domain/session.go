package domain

import "time"

// Session identifies the currently authenticated user. There is a single
// session slot: creating a new session replaces the previous one.
type Session struct {
	UserID     string `json:"userId"`
	RememberMe bool   `json:"rememberMe"`
	// Timestamp is the creation time in epoch milliseconds; expiry is
	// computed from it on read.
	Timestamp int64 `json:"timestamp"`
}

// CreatedAt returns the session creation time.
func (s Session) CreatedAt() time.Time {
	return time.UnixMilli(s.Timestamp)
}
