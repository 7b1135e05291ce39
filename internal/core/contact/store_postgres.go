// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/wiwekaitech/wiweka/internal/platform/database/schema"
	"github.com/wiwekaitech/wiweka/internal/platform/dberr"
	"github.com/wiwekaitech/wiweka/internal/platform/postgres"
)

const resource = "Contact message"

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectMessage = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.ContactMessage.Columns(), ", "), schema.ContactMessage.Table,
)

func scanMessage(row pgx.CollectableRow) (*Message, error) {
	m := &Message{}
	err := row.Scan(
		&m.ID, &m.Name, &m.Email, &m.Phone, &m.Company, &m.Subject, &m.Body,
		&m.PreferredContact, &m.Status, &m.IPAddress, &m.UserAgent, &m.CreatedAt,
	)
	return m, err
}

func (repository *PostgresRepository) Create(context context.Context, m *Message) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s, %s
	`,
		schema.ContactMessage.Table,
		schema.ContactMessage.Name, schema.ContactMessage.Email, schema.ContactMessage.Phone,
		schema.ContactMessage.Company, schema.ContactMessage.Subject, schema.ContactMessage.Message,
		schema.ContactMessage.PreferredContact, schema.ContactMessage.Status,
		schema.ContactMessage.IPAddress, schema.ContactMessage.UserAgent,
		schema.ContactMessage.ID, schema.ContactMessage.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		m.Name, m.Email, m.Phone, m.Company, m.Subject, m.Body,
		m.PreferredContact, m.Status, m.IPAddress, m.UserAgent,
	).Scan(&m.ID, &m.CreatedAt)
	return dberr.Wrap(err, resource)
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Message, error) {
	rows, err := repository.db.Query(context, selectMessage+` WHERE `+schema.ContactMessage.ID+` = $1`, id)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	m, err := pgx.CollectExactlyOneRow(rows, scanMessage)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return m, nil
}

func (repository *PostgresRepository) Count(context context.Context, status Status) (int, error) {
	where, args := statusFilter(status)

	var total int
	err := repository.db.QueryRow(context, `SELECT COUNT(*) FROM `+schema.ContactMessage.Table+where, args...).Scan(&total)
	return total, dberr.Wrap(err, resource)
}

func (repository *PostgresRepository) List(context context.Context, status Status, offset, limit int) ([]*Message, error) {
	where, args := statusFilter(status)
	query := fmt.Sprintf(`%s%s ORDER BY %s DESC, %s DESC LIMIT $%d OFFSET $%d`,
		selectMessage, where,
		schema.ContactMessage.CreatedAt, schema.ContactMessage.ID,
		len(args)+1, len(args)+2,
	)

	rows, err := repository.db.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	messages, err := pgx.CollectRows(rows, scanMessage)
	return messages, dberr.Wrap(err, resource)
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, id int64, status Status) (*Message, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1 RETURNING %s`,
		schema.ContactMessage.Table, schema.ContactMessage.Status, schema.ContactMessage.ID,
		strings.Join(schema.ContactMessage.Columns(), ", "),
	)

	rows, err := repository.db.Query(context, query, id, status)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	m, err := pgx.CollectExactlyOneRow(rows, scanMessage)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return m, nil
}

func statusFilter(status Status) (string, []any) {
	if status == "" {
		return "", nil
	}
	return ` WHERE ` + schema.ContactMessage.Status + ` = $1`, []any{status}
}
