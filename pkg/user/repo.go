package user

import (
	"errors"
	"sync"
)

// MemoryRepo is an append-only account directory. Accounts are never
// updated or removed once created.
type MemoryRepo struct {
	mu       sync.RWMutex
	accounts []*User
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Create(user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// check-then-insert under one lock keeps usernames unique
	for _, u := range r.accounts {
		if u.Username == user.Username {
			return ErrUserExists
		}
	}
	r.accounts = append(r.accounts, user)
	return nil
}

func (r *MemoryRepo) FindByUsername(username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.accounts {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepo) UsernameAvailable(username string) bool {
	_, err := r.FindByUsername(username)
	return errors.Is(err, ErrNotFound)
}
