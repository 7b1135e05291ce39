// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package content

import (
	"cmp"
	"context"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
)

// MemoryRepository is an in-process [Repository] with the same ordering,
// filtering and uniqueness semantics as [PostgresRepository].
//
// It backs service and handler tests; rows are copied on the way in and out.
type MemoryRepository[T Entity] struct {
	mu     sync.RWMutex
	schema Schema[T]
	rows   map[int64]T
	nextID int64
	now    func() time.Time
}

// NewMemoryRepository creates an empty repository for schema.
func NewMemoryRepository[T Entity](schema Schema[T]) *MemoryRepository[T] {
	return &MemoryRepository[T]{
		schema: schema,
		rows:   make(map[int64]T),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (repository *MemoryRepository[T]) Count(_ context.Context, query Query) (int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return len(repository.matching(query)), nil
}

func (repository *MemoryRepository[T]) List(_ context.Context, query Query, offset, limit int) ([]T, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	matched := repository.matching(query)
	slices.SortFunc(matched, repository.compare)

	offset = min(max(offset, 0), len(matched))
	matched = matched[offset:]
	if limit >= 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	result := make([]T, len(matched))
	for index, entity := range matched {
		result[index] = repository.clone(entity)
	}
	return result, nil
}

func (repository *MemoryRepository[T]) FindBySlug(_ context.Context, slug string, visibleOnly bool) (T, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, entity := range repository.rows {
		if entity.Base().Slug == slug && (!visibleOnly || entity.Visible()) {
			return repository.clone(entity), nil
		}
	}

	var zero T
	return zero, apperr.NotFound(repository.schema.Resource)
}

func (repository *MemoryRepository[T]) FindByID(_ context.Context, id int64) (T, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	entity, ok := repository.rows[id]
	if !ok {
		var zero T
		return zero, apperr.NotFound(repository.schema.Resource)
	}
	return repository.clone(entity), nil
}

func (repository *MemoryRepository[T]) SlugTaken(_ context.Context, slug string, excludeID int64) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.slugTaken(slug, excludeID), nil
}

func (repository *MemoryRepository[T]) Create(_ context.Context, entity T) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	base := entity.Base()
	if repository.slugTaken(base.Slug, 0) {
		return apperr.DuplicateSlug(repository.schema.Resource)
	}

	repository.nextID++
	now := repository.now()
	base.ID, base.CreatedAt, base.UpdatedAt = repository.nextID, now, now

	repository.rows[base.ID] = repository.clone(entity)
	return nil
}

func (repository *MemoryRepository[T]) Update(_ context.Context, entity T) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	base := entity.Base()
	stored, ok := repository.rows[base.ID]
	if !ok {
		return apperr.NotFound(repository.schema.Resource)
	}
	if repository.slugTaken(base.Slug, base.ID) {
		return apperr.DuplicateSlug(repository.schema.Resource)
	}

	base.CreatedAt = stored.Base().CreatedAt
	base.UpdatedAt = repository.now()

	repository.rows[base.ID] = repository.clone(entity)
	return nil
}

func (repository *MemoryRepository[T]) Delete(_ context.Context, id int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.rows[id]; !ok {
		return apperr.NotFound(repository.schema.Resource)
	}
	delete(repository.rows, id)
	return nil
}

// # Evaluation

func (repository *MemoryRepository[T]) slugTaken(slug string, excludeID int64) bool {
	for id, entity := range repository.rows {
		if id != excludeID && entity.Base().Slug == slug {
			return true
		}
	}
	return false
}

func (repository *MemoryRepository[T]) matching(query Query) []T {
	var matched []T
	for _, entity := range repository.rows {
		if query.VisibleOnly && !entity.Visible() {
			continue
		}
		if repository.satisfies(entity, query.Conditions) {
			matched = append(matched, entity)
		}
	}
	return matched
}

func (repository *MemoryRepository[T]) satisfies(entity T, conditions []Condition) bool {
	values := repository.schema.Values(entity)

	for _, condition := range conditions {
		if condition.Operator == OpNever {
			return false
		}

		index := repository.schema.columnIndex(condition.Column)
		if index < 0 {
			return false
		}
		value := deref(values[index])

		switch condition.Operator {
		case OpContains:
			items, _ := value.([]string)
			if !slices.Contains(items, condition.Value.(string)) {
				return false
			}
		default:
			if value == nil || !reflect.DeepEqual(value, condition.Value) {
				return false
			}
		}
	}
	return true
}

// compare orders a before b following the schema order, NULLs last.
func (repository *MemoryRepository[T]) compare(a, b T) int {
	order := repository.schema.Order
	index := repository.schema.columnIndex(order.Column)

	result := 0
	if index >= 0 {
		left := deref(repository.schema.Values(a)[index])
		right := deref(repository.schema.Values(b)[index])

		switch {
		case left == nil && right == nil:
		case left == nil:
			return 1
		case right == nil:
			return -1
		default:
			result = compareValues(left, right)
		}
	}

	if result == 0 {
		result = cmp.Compare(a.Base().ID, b.Base().ID)
	}
	if order.Descending {
		result = -result
	}
	return result
}

func compareValues(left, right any) int {
	switch l := left.(type) {
	case int:
		return cmp.Compare(l, right.(int))
	case int64:
		return cmp.Compare(l, right.(int64))
	case string:
		return cmp.Compare(l, right.(string))
	case bool:
		switch r := right.(bool); {
		case l == r:
			return 0
		case !l:
			return -1
		default:
			return 1
		}
	case time.Time:
		return l.Compare(right.(time.Time))
	}
	return 0
}

// deref unwraps pointer values; a nil pointer or an invalid date becomes nil.
func deref(value any) any {
	if date, ok := value.(pgtype.Date); ok {
		if !date.Valid {
			return nil
		}
		return date.Time
	}

	reflected := reflect.ValueOf(value)
	if reflected.Kind() != reflect.Pointer {
		return value
	}
	if reflected.IsNil() {
		return nil
	}
	return reflected.Elem().Interface()
}

// clone copies entity through its schema, so stored rows never alias caller values.
func (repository *MemoryRepository[T]) clone(entity T) T {
	copied := repository.schema.New()
	*copied.Base() = *entity.Base()

	values := repository.schema.Values(entity)
	for index, target := range repository.schema.Targets(copied) {
		destination := reflect.ValueOf(target).Elem()
		if values[index] == nil {
			destination.SetZero()
			continue
		}
		destination.Set(detach(reflect.ValueOf(values[index])))
	}
	return copied
}

// detach gives slices, maps and pointers their own storage.
func detach(value reflect.Value) reflect.Value {
	if !value.IsValid() {
		return value
	}

	switch value.Kind() {
	case reflect.Slice:
		if value.IsNil() {
			return value
		}
		copied := reflect.MakeSlice(value.Type(), value.Len(), value.Len())
		reflect.Copy(copied, value)
		return copied
	case reflect.Map:
		if value.IsNil() {
			return value
		}
		copied := reflect.MakeMapWithSize(value.Type(), value.Len())
		iter := value.MapRange()
		for iter.Next() {
			copied.SetMapIndex(iter.Key(), iter.Value())
		}
		return copied
	case reflect.Pointer:
		if value.IsNil() {
			return value
		}
		copied := reflect.New(value.Type().Elem())
		copied.Elem().Set(value.Elem())
		return copied
	}
	return value
}
