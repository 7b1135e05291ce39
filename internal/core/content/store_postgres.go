// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package content

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/wiwekaitech/wiweka/internal/platform/dberr"
	"github.com/wiwekaitech/wiweka/internal/platform/postgres"
)

// PostgresRepository is the PostgreSQL [Repository] of one content kind.
//
// SQL is assembled from the schema's column names; values always travel as
// bind parameters.
type PostgresRepository[T Entity] struct {
	db     postgres.Querier
	schema Schema[T]
}

// NewPostgresRepository binds schema to a connection pool or transaction.
func NewPostgresRepository[T Entity](db postgres.Querier, schema Schema[T]) *PostgresRepository[T] {
	return &PostgresRepository[T]{db: db, schema: schema}
}

func (repository *PostgresRepository[T]) Count(context context.Context, query Query) (int, error) {
	where, args := repository.where(query, nil)
	sql := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, repository.schema.Table, where)

	var total int
	if err := repository.db.QueryRow(context, sql, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, repository.schema.Resource)
	}
	return total, nil
}

func (repository *PostgresRepository[T]) List(context context.Context, query Query, offset, limit int) ([]T, error) {
	where, args := repository.where(query, nil)
	sql := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s`,
		repository.selectList(), repository.schema.Table, where, repository.orderBy(),
	)

	if limit >= 0 {
		sql += ` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
		args = append(args, limit, offset)
	}

	rows, err := repository.db.Query(context, sql, args...)
	if err != nil {
		return nil, dberr.Wrap(err, repository.schema.Resource)
	}

	entities, err := pgx.CollectRows(rows, repository.scanRow)
	if err != nil {
		return nil, dberr.Wrap(err, repository.schema.Resource)
	}
	return entities, nil
}

func (repository *PostgresRepository[T]) FindBySlug(context context.Context, slug string, visibleOnly bool) (T, error) {
	where, args := repository.where(Query{VisibleOnly: visibleOnly}, []any{slug})
	sql := fmt.Sprintf(`SELECT %s FROM %s%s`, repository.selectList(), repository.schema.Table,
		joinWhere(where, "slug = $1"),
	)
	return repository.findOne(context, sql, args...)
}

func (repository *PostgresRepository[T]) FindByID(context context.Context, id int64) (T, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, repository.selectList(), repository.schema.Table)
	return repository.findOne(context, sql, id)
}

func (repository *PostgresRepository[T]) SlugTaken(context context.Context, slug string, excludeID int64) (bool, error) {
	sql := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE slug = $1 AND id <> $2)`, repository.schema.Table)

	var taken bool
	if err := repository.db.QueryRow(context, sql, slug, excludeID).Scan(&taken); err != nil {
		return false, dberr.Wrap(err, repository.schema.Resource)
	}
	return taken, nil
}

func (repository *PostgresRepository[T]) Create(context context.Context, entity T) error {
	columns := repository.schema.Columns
	placeholders := make([]string, len(columns))
	for index := range columns {
		placeholders[index] = "$" + strconv.Itoa(index+1)
	}

	sql := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		RETURNING id, created_at, updated_at
	`, repository.schema.Table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	base := entity.Base()
	err := repository.db.QueryRow(context, sql, repository.schema.Values(entity)...).
		Scan(&base.ID, &base.CreatedAt, &base.UpdatedAt)
	return dberr.Wrap(err, repository.schema.Resource)
}

func (repository *PostgresRepository[T]) Update(context context.Context, entity T) error {
	columns := repository.schema.Columns
	assignments := make([]string, len(columns))
	for index, column := range columns {
		assignments[index] = column + " = $" + strconv.Itoa(index+2)
	}

	sql := fmt.Sprintf(`
		UPDATE %s
		SET %s, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, repository.schema.Table, strings.Join(assignments, ", "))

	base := entity.Base()
	args := append([]any{base.ID}, repository.schema.Values(entity)...)
	err := repository.db.QueryRow(context, sql, args...).Scan(&base.UpdatedAt)
	return dberr.Wrap(err, repository.schema.Resource)
}

func (repository *PostgresRepository[T]) Delete(context context.Context, id int64) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, repository.schema.Table)

	cmd, err := repository.db.Exec(context, sql, id)
	if err != nil {
		return dberr.Wrap(err, repository.schema.Resource)
	}

	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, repository.schema.Resource)
	}
	return nil
}

// # SQL Assembly

func (repository *PostgresRepository[T]) findOne(context context.Context, sql string, args ...any) (T, error) {
	rows, err := repository.db.Query(context, sql, args...)
	if err != nil {
		var zero T
		return zero, dberr.Wrap(err, repository.schema.Resource)
	}

	entity, err := pgx.CollectExactlyOneRow(rows, repository.scanRow)
	if err != nil {
		var zero T
		return zero, dberr.Wrap(err, repository.schema.Resource)
	}
	return entity, nil
}

func (repository *PostgresRepository[T]) scanRow(row pgx.CollectableRow) (T, error) {
	entity := repository.schema.New()
	base := entity.Base()

	targets := make([]any, 0, len(repository.schema.Columns)+3)
	targets = append(targets, &base.ID)
	targets = append(targets, repository.schema.Targets(entity)...)
	targets = append(targets, &base.CreatedAt, &base.UpdatedAt)

	err := row.Scan(targets...)
	return entity, err
}

func (repository *PostgresRepository[T]) selectList() string {
	return "id, " + strings.Join(repository.schema.Columns, ", ") + ", created_at, updated_at"
}

func (repository *PostgresRepository[T]) orderBy() string {
	order := repository.schema.Order
	direction := "ASC"
	if order.Descending {
		direction = "DESC"
	}
	return fmt.Sprintf("%s %s NULLS LAST, id %s", order.Column, direction, direction)
}

// where renders query as a WHERE clause. Placeholders continue after args.
func (repository *PostgresRepository[T]) where(query Query, args []any) (string, []any) {
	var clauses []string

	if query.VisibleOnly {
		clauses = append(clauses, repository.schema.Visibility+" = TRUE")
	}

	for _, condition := range query.Conditions {
		switch condition.Operator {
		case OpNever:
			clauses = append(clauses, "FALSE")
		case OpContains:
			args = append(args, condition.Value)
			clauses = append(clauses, "$"+strconv.Itoa(len(args))+" = ANY("+condition.Column+")")
		default:
			args = append(args, condition.Value)
			clauses = append(clauses, condition.Column+" = $"+strconv.Itoa(len(args)))
		}
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// joinWhere prepends clause to an existing WHERE clause.
func joinWhere(where, clause string) string {
	if where == "" {
		return " WHERE " + clause
	}
	return " WHERE " + clause + " AND " + strings.TrimPrefix(where, " WHERE ")
}
