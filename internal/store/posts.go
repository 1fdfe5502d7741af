package store

import "github.com/socialsched/socialsched/internal/domain"

// Posts is the global post collection, filtered by owner at read time.
type Posts struct {
	s *Store
}

// ListAll returns every post in storage insertion order.
func (r *Posts) ListAll() []domain.Post {
	return kvLoad(r.s, keyPosts, []domain.Post{})
}

// ListForUser returns the posts owned by userID, preserving insertion
// order. Posts belonging to other users never leak through.
func (r *Posts) ListForUser(userID string) []domain.Post {
	var out []domain.Post
	for _, p := range r.ListAll() {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

// Add appends a post to the collection. No dedup by id happens here; ids
// come from idx and are unique by construction.
func (r *Posts) Add(post domain.Post) error {
	all := r.ListAll()
	return kvSave(r.s, keyPosts, append(all, post))
}

// Update shallow-merges the provided fields over the post with the given
// id and refreshes updatedAt. A missing id yields ErrNotFound.
func (r *Posts) Update(id string, changes domain.PostChanges) error {
	all := r.ListAll()
	for i := range all {
		if all[i].ID != id {
			continue
		}
		changes.Apply(&all[i])
		all[i].UpdatedAt = r.s.now()
		return kvSave(r.s, keyPosts, all)
	}
	return ErrNotFound
}

// Delete removes the post with the given id, or reports ErrNotFound.
func (r *Posts) Delete(id string) error {
	all := r.ListAll()
	for i := range all {
		if all[i].ID == id {
			return kvSave(r.s, keyPosts, append(all[:i:i], all[i+1:]...))
		}
	}
	return ErrNotFound
}

// DeleteForUser drops every post owned by userID. Used when clearing a
// user's data wholesale.
func (r *Posts) DeleteForUser(userID string) error {
	all := r.ListAll()
	kept := all[:0]
	for _, p := range all {
		if p.UserID != userID {
			kept = append(kept, p)
		}
	}
	return kvSave(r.s, keyPosts, kept)
}
