package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/socialsched/socialsched/internal/domain"
	"github.com/socialsched/socialsched/internal/store"
	"github.com/socialsched/socialsched/pkg/idx"
	"github.com/socialsched/socialsched/pkg/slogx"
)

// PostService is the per-user content facade. It is bound to one owner at
// construction, keeps a read cache of that user's posts (the way the
// dashboard held them in component state), and refreshes the cache after
// every mutation. Posts of other users are invisible through it.
type PostService struct {
	store  *store.Store
	log    *slog.Logger
	userID string
	now    func() time.Time

	posts []domain.Post
}

// PostDraft is the input to Create. A zero Status defaults to scheduled.
type PostDraft struct {
	Content       string
	Platform      domain.Platform
	ScheduledTime time.Time
	Status        domain.Status
}

func NewPostService(st *store.Store, logger *slog.Logger, userID string) *PostService {
	s := &PostService{
		store:  st,
		log:    logger,
		userID: userID,
		now:    time.Now,
	}
	s.Refresh()
	return s
}

// WithClock replaces the time source used for validation and timestamps.
func (s *PostService) WithClock(now func() time.Time) *PostService {
	s.now = now
	return s
}

// Refresh re-reads the owner's posts from storage and returns them.
func (s *PostService) Refresh() []domain.Post {
	s.posts = s.store.Posts().ListForUser(s.userID)
	return s.posts
}

// List returns the cached posts in storage insertion order.
func (s *PostService) List() []domain.Post {
	return s.posts
}

// ListByPlatform filters the cached posts by target platform.
func (s *PostService) ListByPlatform(platform domain.Platform) []domain.Post {
	var out []domain.Post
	for _, p := range s.posts {
		if p.Platform == platform {
			out = append(out, p)
		}
	}
	return out
}

// ListByStatus filters the cached posts by lifecycle status.
func (s *PostService) ListByStatus(status domain.Status) []domain.Post {
	var out []domain.Post
	for _, p := range s.posts {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// Create validates the draft as a complete post and appends it to the
// collection. Every required-field rule applies; the first violation is
// returned and nothing is written.
func (s *PostService) Create(ctx context.Context, draft PostDraft) (domain.Post, error) {
	l := slogx.FromContext(ctx)

	err := firstViolation(domain.ValidatePost(domain.PostChanges{
		Content:       &draft.Content,
		Platform:      &draft.Platform,
		ScheduledTime: &draft.ScheduledTime,
	}, s.now()))
	if err != nil {
		return domain.Post{}, err
	}

	status := draft.Status
	if status == "" {
		status = domain.StatusScheduled
	}
	if !status.Valid() {
		return domain.Post{}, ValidationError("invalid post status")
	}

	now := s.now()
	post := domain.Post{
		ID:            idx.New().String(),
		UserID:        s.userID,
		Platform:      draft.Platform,
		Content:       draft.Content,
		ScheduledTime: draft.ScheduledTime,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Posts().Add(post); err != nil {
		l.Error("failed to persist post", "error", err)
		return domain.Post{}, ErrPersistence
	}

	s.Refresh()
	l.Info("post created", "post_id", post.ID, "platform", post.Platform)
	return post, nil
}

// Edit applies a partial update to an owned post. Provided fields are
// validated; absent fields are untouched and unchecked. Editing a post
// that doesn't exist (or isn't owned by this user) is ErrPostNotFound.
func (s *PostService) Edit(ctx context.Context, id string, changes domain.PostChanges) error {
	l := slogx.FromContext(ctx)

	if err := firstViolation(domain.ValidatePost(changes, s.now())); err != nil {
		return err
	}

	if !s.owns(id) {
		return ErrPostNotFound
	}

	if err := s.store.Posts().Update(id, changes); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPostNotFound
		}
		l.Error("failed to persist post update", "post_id", id, "error", err)
		return ErrPersistence
	}

	s.Refresh()
	l.Info("post updated", "post_id", id)
	return nil
}

// Remove deletes an owned post.
func (s *PostService) Remove(ctx context.Context, id string) error {
	l := slogx.FromContext(ctx)

	if !s.owns(id) {
		return ErrPostNotFound
	}

	if err := s.store.Posts().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPostNotFound
		}
		l.Error("failed to delete post", "post_id", id, "error", err)
		return ErrPersistence
	}

	s.Refresh()
	l.Info("post deleted", "post_id", id)
	return nil
}

// Analytics recomputes the owner's dashboard snapshot from the current
// post collection and writes it through to the cache. The computation is
// authoritative; a cache write failure is only logged. The followers
// counter is carried over from the previous snapshot since it isn't
// derivable from posts.
func (s *PostService) Analytics(ctx context.Context) domain.Analytics {
	s.Refresh()

	snapshot := domain.ComputeAnalytics(s.posts)
	snapshot.Followers = s.store.Analytics().Get(s.userID).Followers

	if err := s.store.Analytics().Put(s.userID, snapshot); err != nil {
		slogx.FromContext(ctx).Error("failed to cache analytics", "error", err)
	}
	return snapshot
}

// ClearData removes every post and the cached analytics for the owner.
func (s *PostService) ClearData(ctx context.Context) error {
	l := slogx.FromContext(ctx)

	if err := s.store.Posts().DeleteForUser(s.userID); err != nil {
		l.Error("failed to clear posts", "error", err)
		return ErrPersistence
	}
	if err := s.store.Analytics().Delete(s.userID); err != nil {
		l.Error("failed to clear analytics", "error", err)
		return ErrPersistence
	}

	s.Refresh()
	l.Info("user content cleared", "user_id", s.userID)
	return nil
}

// owns consults storage, not the cache, so a stale cache can't let an
// edit slip through to another user's post.
func (s *PostService) owns(id string) bool {
	for _, p := range s.store.Posts().ListForUser(s.userID) {
		if p.ID == id {
			return true
		}
	}
	return false
}
