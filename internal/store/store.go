// Package store holds the persisted collections: users, posts, the single
// session slot, and the per-user analytics cache. Every collection is a
// JSON record in the kv engine; repositories do whole-collection
// read-modify-write, which is the durability model of the original
// dashboard (single caller, last writer wins).
package store

import (
	"errors"
	"log/slog"
	"time"

	"github.com/socialsched/socialsched/internal/kv"
)

// ErrNotFound reports a mutation that targeted a record no longer present.
var ErrNotFound = errors.New("store: not found")

// Persisted key layout. The socialsched_ prefix namespaces this
// application's records inside the shared kv store.
const (
	keyUsers   = "socialsched_users"
	keyPosts   = "socialsched_posts"
	keySession = "socialsched_session"

	analyticsKeyPrefix = "socialsched_analytics_"
)

// Store is the root data access object. Sub-repositories share the kv
// engine, logger, and clock.
type Store struct {
	kv  kv.Store
	log *slog.Logger
	now func() time.Time
}

func New(engine kv.Store, logger *slog.Logger) *Store {
	return &Store{
		kv:  engine,
		log: logger,
		now: time.Now,
	}
}

// WithClock replaces the time source. Tests use it to drive updatedAt
// stamps deterministically.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func kvLoad[T any](s *Store, key string, fallback T) T {
	return kv.Load(s.kv, s.log, key, fallback)
}

func kvSave[T any](s *Store, key string, v T) error {
	return kv.Save(s.kv, key, v)
}

func (s *Store) Users() *Users         { return &Users{s} }
func (s *Store) Posts() *Posts         { return &Posts{s} }
func (s *Store) Session() *Session     { return &Session{s} }
func (s *Store) Analytics() *Analytics { return &Analytics{s} }
