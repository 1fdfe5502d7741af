package store

import "github.com/socialsched/socialsched/internal/domain"

// Session is the single-slot record of who is logged in.
type Session struct {
	s *Store
}

// Get returns the stored session, or nil when absent or corrupt. A corrupt
// record is indistinguishable from no session; the caller just sees
// logged-out.
func (r *Session) Get() *domain.Session {
	sess := kvLoad[*domain.Session](r.s, keySession, nil)
	if sess == nil || sess.UserID == "" {
		return nil
	}
	return sess
}

// Put overwrites the session slot.
func (r *Session) Put(sess domain.Session) error {
	return kvSave(r.s, keySession, sess)
}

// Clear deletes the session record unconditionally.
func (r *Session) Clear() error {
	return r.s.kv.Delete(keySession)
}
