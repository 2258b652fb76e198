package domain

import "time"

type TransferDirection string

const (
	TransferUpload   TransferDirection = "upload"
	TransferDownload TransferDirection = "download"
)

type TransferStatus string

const (
	TransferPending   TransferStatus = "pending"
	TransferDelivered TransferStatus = "delivered"
	TransferFailed    TransferStatus = "failed"
)

// Terminal reports whether the status permits no further transitions.
func (s TransferStatus) Terminal() bool {
	return s == TransferDelivered || s == TransferFailed
}

// Transfer tracks one file movement between a viewer and a host. SessionID
// is a weak reference: a transfer outlives its session's teardown.
type Transfer struct {
	ID        string            `json:"id"`
	SessionID string            `json:"sessionId"`
	Filename  string            `json:"filename"`
	Payload   []byte            `json:"-"`
	Size      int               `json:"size"`
	Direction TransferDirection `json:"direction"`
	Status    TransferStatus    `json:"status"`
	Error     string            `json:"error,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}
