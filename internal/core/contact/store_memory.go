// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package contact

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
)

// MemoryRepository is an in-process [Repository] used by tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	rows   map[int64]Message
	nextID int64
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rows: make(map[int64]Message),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (repository *MemoryRepository) Create(_ context.Context, m *Message) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.nextID++
	m.ID = repository.nextID
	m.CreatedAt = repository.now()
	repository.rows[m.ID] = *m
	return nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id int64) (*Message, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	m, ok := repository.rows[id]
	if !ok {
		return nil, apperr.NotFound(resource)
	}
	return &m, nil
}

func (repository *MemoryRepository) Count(_ context.Context, status Status) (int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return len(repository.matching(status)), nil
}

func (repository *MemoryRepository) List(_ context.Context, status Status, offset, limit int) ([]*Message, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	matched := repository.matching(status)
	slices.SortFunc(matched, func(a, b *Message) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})

	offset = min(max(offset, 0), len(matched))
	end := min(offset+limit, len(matched))
	return matched[offset:end], nil
}

func (repository *MemoryRepository) UpdateStatus(_ context.Context, id int64, status Status) (*Message, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	m, ok := repository.rows[id]
	if !ok {
		return nil, apperr.NotFound(resource)
	}
	m.Status = status
	repository.rows[id] = m
	return &m, nil
}

func (repository *MemoryRepository) matching(status Status) []*Message {
	matched := []*Message{}
	for _, m := range repository.rows {
		if status == "" || m.Status == status {
			matched = append(matched, &m)
		}
	}
	return matched
}
