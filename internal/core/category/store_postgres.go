// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wiwekaitech/wiweka/internal/platform/database/schema"
	"github.com/wiwekaitech/wiweka/internal/platform/dberr"
	"github.com/wiwekaitech/wiweka/internal/platform/postgres"
)

const resource = "Category"

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectCategory = fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s`,
	schema.Category.ID, schema.Category.NameEN, schema.Category.NameID,
	schema.Category.Slug, schema.Category.Type, schema.Category.CreatedAt,
	schema.Category.Table,
)

func scanCategory(row pgx.CollectableRow) (*Category, error) {
	c := &Category{}
	err := row.Scan(&c.ID, &c.NameEN, &c.NameID, &c.Slug, &c.Type, &c.CreatedAt)
	return c, err
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Category, error) {
	return repository.findOne(context, selectCategory+` WHERE `+schema.Category.ID+` = $1`, id)
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Category, error) {
	return repository.findOne(context, selectCategory+` WHERE `+schema.Category.Slug+` = $1`, slug)
}

func (repository *PostgresRepository) ListByType(context context.Context, categoryType Type) ([]*Category, error) {
	query := selectCategory
	args := []any{}

	if categoryType != "" {
		query += ` WHERE ` + schema.Category.Type + ` = $1`
		args = append(args, categoryType)
	}
	query += ` ORDER BY ` + schema.Category.NameEN + ` ASC, ` + schema.Category.ID + ` ASC`

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	categories, err := pgx.CollectRows(rows, scanCategory)
	return categories, dberr.Wrap(err, resource)
}

func (repository *PostgresRepository) SlugTaken(context context.Context, slug string, excludeID int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s <> $2)`,
		schema.Category.Table, schema.Category.Slug, schema.Category.ID,
	)

	var taken bool
	err := repository.db.QueryRow(context, query, slug, excludeID).Scan(&taken)
	return taken, dberr.Wrap(err, resource)
}

func (repository *PostgresRepository) InUse(context context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)
		    OR EXISTS (SELECT 1 FROM %s WHERE %s = $1)
	`,
		schema.Tutorial.Table, schema.Tutorial.CategoryID,
		schema.BlogPost.Table, schema.BlogPost.CategoryID,
	)

	var used bool
	err := repository.db.QueryRow(context, query, id).Scan(&used)
	return used, dberr.Wrap(err, resource)
}

func (repository *PostgresRepository) Create(context context.Context, c *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		schema.Category.Table, schema.Category.NameEN, schema.Category.NameID,
		schema.Category.Slug, schema.Category.Type,
		schema.Category.ID, schema.Category.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, c.NameEN, c.NameID, c.Slug, c.Type).Scan(&c.ID, &c.CreatedAt)
	return dberr.Wrap(err, resource)
}

func (repository *PostgresRepository) Update(context context.Context, c *Category) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1
	`,
		schema.Category.Table, schema.Category.NameEN, schema.Category.NameID,
		schema.Category.Slug, schema.Category.Type, schema.Category.ID,
	)

	cmd, err := repository.db.Exec(context, query, c.ID, c.NameEN, c.NameID, c.Slug, c.Type)
	if err != nil {
		return dberr.Wrap(err, resource)
	}
	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, resource)
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Category.Table, schema.Category.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resource)
	}
	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, resource)
	}
	return nil
}

func (repository *PostgresRepository) findOne(context context.Context, query string, args ...any) (*Category, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	c, err := pgx.CollectExactlyOneRow(rows, scanCategory)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return c, nil
}
