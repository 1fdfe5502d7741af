package store

import (
	"strings"

	"github.com/socialsched/socialsched/internal/domain"
)

// Users is the account collection. It is a pure collection abstraction:
// uniqueness and validation are enforced by the auth facade before
// anything reaches Save.
type Users struct {
	s *Store
}

// List returns all users in storage insertion order.
func (r *Users) List() []domain.User {
	return kvLoad(r.s, keyUsers, []domain.User{})
}

// Save replaces the entire collection.
func (r *Users) Save(users []domain.User) error {
	return kvSave(r.s, keyUsers, users)
}

// FindByID scans for a user by id.
func (r *Users) FindByID(id string) (domain.User, bool) {
	for _, u := range r.List() {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// FindByEmail scans for a user by case-normalized email.
func (r *Users) FindByEmail(email string) (domain.User, bool) {
	email = strings.ToLower(email)
	for _, u := range r.List() {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}
