package model

import "time"

// User represents an application user record as stored in the `users`
// table.  Accounts are provisioned out-of-band; the API only reads them at
// login and updates last_login_at on success.  The password column holds a
// bcrypt digest; plaintext credentials are never stored.
//
// Fields:
//
//	ID           – primary key identifier of the user (users.user_id).
//	Username     – unique login name.
//	PasswordHash – bcrypt hashed password (users.password_hash).
//	LastLoginAt  – timestamp of the most recent successful login (nullable).
type User struct {
	ID           uint64     // users.user_id
	Username     string     // users.username
	PasswordHash string     // users.password_hash
	LastLoginAt  *time.Time // users.last_login_at (nullable)
}

// Session models a row in the `sessions` table, written best-effort on
// each successful login.  Sessions are an audit trail only: token
// validity is cryptographic/time-based and this table is never consulted
// when authenticating a request.
//
// Fields:
//
//	Token      – the issued bearer token (sessions.session_id).
//	UserID     – owner of the session.
//	ExpiryTime – when the token expires.
//	IPAddress  – client IP at login.
//	DeviceInfo – User-Agent string at login.
//	IsActive   – always true at insert; rows are never updated.
type Session struct {
	Token      string    // sessions.session_id
	UserID     uint64    // sessions.user_id
	ExpiryTime time.Time // sessions.expiry_time
	IPAddress  string    // sessions.ip_address
	DeviceInfo string    // sessions.device_info
	IsActive   bool      // sessions.is_active
}
