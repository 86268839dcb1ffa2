// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package admin

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ImranJeferly/teletebib/internal/platform/database/schema"
	"github.com/ImranJeferly/teletebib/internal/platform/dberr"
)

// PostgresAccountRepository persists administrator accounts in users.account.
type PostgresAccountRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAccountRepository(db *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

// accountColumns is the SELECT column list shared by every read query.
func accountColumns() string {
	t := schema.UserAccount
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Email, t.Password, t.DisplayName, t.Role,
		t.LastLoginAt, t.CreatedAt, t.UpdatedAt,
	)
}

func scanAccount(row interface{ Scan(...any) error }) (*Account, error) {
	account := &Account{}
	err := row.Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.DisplayName,
		&account.Role, &account.LastLoginAt, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (repository *PostgresAccountRepository) FindByID(context context.Context, id string) (*Account, error) {
	t := schema.UserAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		accountColumns(), t.Table, t.ID, t.DeletedAt,
	)

	account, err := scanAccount(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_account")
	}
	return account, nil
}

func (repository *PostgresAccountRepository) FindByEmail(context context.Context, email string) (*Account, error) {
	t := schema.UserAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE lower(%s) = lower($1) AND %s IS NULL`,
		accountColumns(), t.Table, t.Email, t.DeletedAt,
	)

	account, err := scanAccount(repository.db.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "get_account_by_email")
	}
	return account, nil
}

func (repository *PostgresAccountRepository) TouchLastLogin(context context.Context, id string) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1`, t.Table, t.LastLoginAt, t.ID)

	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "touch_last_login")
}
