package store

import "github.com/socialsched/socialsched/internal/domain"

// Analytics is the per-user cached dashboard snapshot. It is written
// through by the post service and can always be recomputed from posts, so
// a lost or corrupt record costs nothing.
type Analytics struct {
	s *Store
}

func analyticsKey(userID string) string {
	return analyticsKeyPrefix + userID
}

// Get returns the cached snapshot for userID, or the zero snapshot.
func (r *Analytics) Get(userID string) domain.Analytics {
	return kvLoad(r.s, analyticsKey(userID), domain.Analytics{})
}

// Put overwrites the cached snapshot for userID.
func (r *Analytics) Put(userID string, a domain.Analytics) error {
	return kvSave(r.s, analyticsKey(userID), a)
}

// Delete drops the cached snapshot for userID.
func (r *Analytics) Delete(userID string) error {
	return r.s.kv.Delete(analyticsKey(userID))
}
