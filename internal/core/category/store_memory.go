// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package category

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
)

// MemoryRepository is an in-process [Repository] used by tests.
//
// InUse consults the references registered with [MemoryRepository.Reference].
type MemoryRepository struct {
	mu         sync.RWMutex
	rows       map[int64]Category
	references map[int64]int
	nextID     int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rows:       make(map[int64]Category),
		references: make(map[int64]int),
	}
}

// Reference records that one more content row points at category id.
func (repository *MemoryRepository) Reference(id int64) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.references[id]++
}

func (repository *MemoryRepository) FindByID(_ context.Context, id int64) (*Category, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	row, ok := repository.rows[id]
	if !ok {
		return nil, apperr.NotFound(resource)
	}
	return &row, nil
}

func (repository *MemoryRepository) FindBySlug(_ context.Context, slug string) (*Category, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, row := range repository.rows {
		if row.Slug == slug {
			return &row, nil
		}
	}
	return nil, apperr.NotFound(resource)
}

func (repository *MemoryRepository) ListByType(_ context.Context, categoryType Type) ([]*Category, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	categories := []*Category{}
	for _, row := range repository.rows {
		if categoryType == "" || row.Type == categoryType {
			categories = append(categories, &row)
		}
	}

	slices.SortFunc(categories, func(a, b *Category) int {
		return cmp.Or(cmp.Compare(a.NameEN, b.NameEN), cmp.Compare(a.ID, b.ID))
	})
	return categories, nil
}

func (repository *MemoryRepository) SlugTaken(_ context.Context, slug string, excludeID int64) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.slugTaken(slug, excludeID), nil
}

func (repository *MemoryRepository) InUse(_ context.Context, id int64) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.references[id] > 0, nil
}

func (repository *MemoryRepository) Create(_ context.Context, category *Category) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.slugTaken(category.Slug, 0) {
		return apperr.DuplicateSlug(resource)
	}

	repository.nextID++
	category.ID = repository.nextID
	category.CreatedAt = time.Now().UTC()
	repository.rows[category.ID] = *category
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, category *Category) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.rows[category.ID]
	if !ok {
		return apperr.NotFound(resource)
	}
	if repository.slugTaken(category.Slug, category.ID) {
		return apperr.DuplicateSlug(resource)
	}

	category.CreatedAt = stored.CreatedAt
	repository.rows[category.ID] = *category
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.rows[id]; !ok {
		return apperr.NotFound(resource)
	}
	delete(repository.rows, id)
	return nil
}

func (repository *MemoryRepository) slugTaken(slug string, excludeID int64) bool {
	for id, row := range repository.rows {
		if id != excludeID && row.Slug == slug {
			return true
		}
	}
	return false
}
