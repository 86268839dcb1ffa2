// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package waitlist

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ImranJeferly/teletebib/internal/platform/apperr"
	"github.com/ImranJeferly/teletebib/internal/platform/database/schema"
	"github.com/ImranJeferly/teletebib/internal/platform/dberr"
)

// PostgresRepository persists signups in the waitlist.entry table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, entry *Entry) error {
	t := schema.WaitlistEntry

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING %s
	`,
		t.Table, t.ID, t.Kind, t.Email, t.Name, t.Surname,
		t.MobileNumber, t.LicenseNumber, t.CreatedAt,
		t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		entry.ID, string(entry.Kind), entry.Email, entry.Name, entry.Surname,
		entry.MobileNumber, entry.LicenseNumber,
	).Scan(&entry.CreatedAt)

	// The partial unique index on patient emails turns a repeat signup
	// into the distinguished conflict the form renders specially.
	if dberr.IsUniqueViolation(err, schema.PatientEmailConstraint) {
		return apperr.AlreadyOnWaitlist()
	}

	return dberr.Wrap(err, "create_waitlist_entry")
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Entry, int, error) {
	t := schema.WaitlistEntry

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s FROM %s`,
		t.ID, t.Kind, t.Email, t.Name, t.Surname, t.MobileNumber, t.LicenseNumber, t.CreatedAt,
		t.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table)

	args := []any{}
	countArgs := []any{}

	if filter.Kind != "" {
		query += fmt.Sprintf(` WHERE %s = $1`, t.Kind)
		countQuery += fmt.Sprintf(` WHERE %s = $1`, t.Kind)
		args = append(args, string(filter.Kind))
		countArgs = append(countArgs, string(filter.Kind))
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $%d OFFSET $%d", t.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_waitlist")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_waitlist")
	}
	defer rows.Close()

	entries := []*Entry{}
	for rows.Next() {
		entry := &Entry{}
		if err := rows.Scan(
			&entry.ID, &entry.Kind, &entry.Email, &entry.Name, &entry.Surname,
			&entry.MobileNumber, &entry.LicenseNumber, &entry.CreatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_waitlist_entry")
		}
		entries = append(entries, entry)
	}

	return entries, total, nil
}

func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	t := schema.WaitlistEntry

	var total int
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table)
	if err := repository.db.QueryRow(context, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_waitlist")
	}

	return total, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.WaitlistEntry
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_waitlist_entry")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
