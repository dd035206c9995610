package repository

import (
	"context"
	"database/sql"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/model"
)

// SessionRepo writes the login audit trail.  Rows are inserted once and
// never updated or consulted for authorization; token validity is decided
// by signature and expiry alone.
type SessionRepo struct{ DB *sql.DB }

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{DB: db} }

// Record inserts one session row for a freshly issued token.  Callers
// treat the insert as best-effort: a failure is logged and swallowed so it
// can never fail the login that produced it.
func (r *SessionRepo) Record(ctx context.Context, s model.Session) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO sessions (session_id, user_id, expiry_time, ip_address, device_info, is_active)
		 VALUES (?, ?, ?, ?, ?, TRUE)`,
		s.Token, s.UserID, s.ExpiryTime, s.IPAddress, s.DeviceInfo)
	return err
}
