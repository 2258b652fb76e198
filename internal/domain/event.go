package domain

import "time"

// NotificationType tags records appended to a session's event queue.
type NotificationType string

const (
	// NotifyFileUpload announces a pending upload for the host to accept.
	NotifyFileUpload NotificationType = "file_upload"
	// NotifyConnectRequest is reserved for a future approve/deny gate.
	NotifyConnectRequest NotificationType = "connect_request"
)

// Notification is one record in a session's host-observable event queue.
// The core only appends; the host UI drains.
type Notification struct {
	ID         string           `json:"id"`
	SessionID  string           `json:"sessionId"`
	Type       NotificationType `json:"type"`
	TransferID string           `json:"transferId,omitempty"`
	Filename   string           `json:"filename,omitempty"`
	Ts         time.Time        `json:"ts"`
}
