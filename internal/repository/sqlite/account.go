package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jrocha/techbook/pkg/models"
)

func (r *SQLiteRepo) CreateAccount(ctx context.Context, a *models.Account) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("account is nil")
	}

	var email any
	if a.Email != "" {
		email = a.Email
	}
	res, err := r.conn.Exec(ctx, `INSERT INTO accounts (username, password_hash, email, created_at) VALUES (?, ?, ?, ?)`,
		a.Username, a.PasswordHash, email, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, username, password_hash, email, created_at FROM accounts WHERE username = ?`, username)
	var a models.Account
	var email sql.NullString
	if err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &email, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	if email.Valid {
		a.Email = email.String
	}

	return &a, nil
}
