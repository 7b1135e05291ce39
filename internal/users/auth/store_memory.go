// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package auth

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
)

// MemoryUserRepository is an in-process [UserRepository] used by tests.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	rows   map[int64]User
	nextID int64
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{rows: make(map[int64]User)}
}

func (repository *MemoryUserRepository) FindByID(_ context.Context, id int64) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	user, ok := repository.rows[id]
	if !ok {
		return nil, apperr.NotFound(resource)
	}
	return &user, nil
}

func (repository *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, user := range repository.rows {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, apperr.NotFound(resource)
}

func (repository *MemoryUserRepository) List(_ context.Context) ([]*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	users := make([]*User, 0, len(repository.rows))
	for _, user := range repository.rows {
		users = append(users, &user)
	}
	slices.SortFunc(users, func(a, b *User) int { return cmp.Compare(a.ID, b.ID) })
	return users, nil
}

func (repository *MemoryUserRepository) UsernameTaken(_ context.Context, username string, excludeID int64) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.taken(func(u User) bool { return u.Username == username }, excludeID), nil
}

func (repository *MemoryUserRepository) EmailTaken(_ context.Context, email string, excludeID int64) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.taken(func(u User) bool { return u.Email == email }, excludeID), nil
}

func (repository *MemoryUserRepository) Create(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if err := repository.unique(user, 0); err != nil {
		return err
	}

	repository.nextID++
	now := time.Now().UTC()
	user.ID, user.CreatedAt, user.UpdatedAt = repository.nextID, now, now
	repository.rows[user.ID] = *user
	return nil
}

func (repository *MemoryUserRepository) Update(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.rows[user.ID]
	if !ok {
		return apperr.NotFound(resource)
	}
	if err := repository.unique(user, user.ID); err != nil {
		return err
	}

	user.CreatedAt = stored.CreatedAt
	user.UpdatedAt = time.Now().UTC()
	repository.rows[user.ID] = *user
	return nil
}

func (repository *MemoryUserRepository) Delete(_ context.Context, id int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.rows[id]; !ok {
		return apperr.NotFound(resource)
	}
	delete(repository.rows, id)
	return nil
}

func (repository *MemoryUserRepository) unique(user *User, excludeID int64) error {
	if repository.taken(func(u User) bool { return u.Username == user.Username }, excludeID) {
		return apperr.DuplicateUsername()
	}
	if repository.taken(func(u User) bool { return u.Email == user.Email }, excludeID) {
		return apperr.DuplicateEmail()
	}
	return nil
}

func (repository *MemoryUserRepository) taken(match func(User) bool, excludeID int64) bool {
	for id, user := range repository.rows {
		if id != excludeID && match(user) {
			return true
		}
	}
	return false
}
