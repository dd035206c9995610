// Package queue defines message payloads exchanged over the message broker.
package queue

// LoginRecordedEvent is published after each successful login.  It carries
// enough context for downstream consumers (audit log, alerting) without
// querying the primary database.  The token itself is never included.
type LoginRecordedEvent struct {
	UserID    uint64 `json:"user_id"`
	Username  string `json:"username"`
	IPAddress string `json:"ip_address"`
	Device    string `json:"device"`
	IssuedAt  string `json:"issued_at"`
	ExpiresAt string `json:"expires_at"`
}
