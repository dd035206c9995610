package repository

import (
	"context"
	"database/sql"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// GetByUsername fetches a user row for credential verification.  A miss
// surfaces as sql.ErrNoRows; the login handler folds it into the same
// generic 401 as a wrong password so the response never reveals whether
// the username exists.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	var last sql.NullTime
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id, username, password_hash, last_login_at FROM users WHERE username = ? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &last)
	if err != nil {
		return u, err
	}
	if last.Valid {
		t := last.Time
		u.LastLoginAt = &t
	}
	return u, nil
}

// TouchLastLogin stamps users.last_login_at after a successful login.
func (r *UserRepo) TouchLastLogin(ctx context.Context, userID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET last_login_at = CURRENT_TIMESTAMP WHERE user_id = ?", userID)
	return err
}
