// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/wiwekaitech/wiweka/internal/platform/database/schema"
	"github.com/wiwekaitech/wiweka/internal/platform/dberr"
	"github.com/wiwekaitech/wiweka/internal/platform/postgres"
)

const resource = "User"

// # User Repository

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	db postgres.Querier
}

// NewUserRepository creates a new PostgreSQL implementation of [UserRepository].
func NewUserRepository(db postgres.Querier) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

var selectUser = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.UserAccount.Columns(), ", "), schema.UserAccount.Table,
)

func scanUser(row pgx.CollectableRow) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	return repository.findOne(context, selectUser+` WHERE `+schema.UserAccount.ID+` = $1`, id)
}

func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findOne(context, selectUser+` WHERE `+schema.UserAccount.Username+` = $1`, username)
}

func (repository *PostgresUserRepository) List(context context.Context) ([]*User, error) {
	rows, err := repository.db.Query(context, selectUser+` ORDER BY `+schema.UserAccount.ID)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	users, err := pgx.CollectRows(rows, scanUser)
	return users, dberr.Wrap(err, resource)
}

func (repository *PostgresUserRepository) UsernameTaken(context context.Context, username string, excludeID int64) (bool, error) {
	return repository.exists(context, schema.UserAccount.Username, username, excludeID)
}

func (repository *PostgresUserRepository) EmailTaken(context context.Context, email string, excludeID int64) (bool, error) {
	return repository.exists(context, schema.UserAccount.Email, email, excludeID)
}

/*
Create persists a new account.

Returns:
  - error: DUPLICATE_USERNAME / DUPLICATE_EMAIL on unique violations, or storage failures
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s, %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.Username, schema.UserAccount.Email, schema.UserAccount.PasswordHash,
		schema.UserAccount.Role, schema.UserAccount.IsActive,
		schema.UserAccount.ID, schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.Username, user.Email, user.PasswordHash, user.Role, user.IsActive,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return dberr.Wrap(err, resource)
}

func (repository *PostgresUserRepository) Update(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.Username, schema.UserAccount.Email, schema.UserAccount.PasswordHash,
		schema.UserAccount.Role, schema.UserAccount.IsActive, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
		schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Role, user.IsActive,
	).Scan(&user.UpdatedAt)
	return dberr.Wrap(err, resource)
}

func (repository *PostgresUserRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.UserAccount.Table, schema.UserAccount.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resource)
	}
	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, resource)
	}
	return nil
}

func (repository *PostgresUserRepository) exists(context context.Context, column, value string, excludeID int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s <> $2)`,
		schema.UserAccount.Table, column, schema.UserAccount.ID,
	)

	var taken bool
	err := repository.db.QueryRow(context, query, value, excludeID).Scan(&taken)
	return taken, dberr.Wrap(err, resource)
}

func (repository *PostgresUserRepository) findOne(context context.Context, query string, args ...any) (*User, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	user, err := pgx.CollectExactlyOneRow(rows, scanUser)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return user, nil
}
