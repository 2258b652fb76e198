package usecase

import (
	"context"
	"time"

	"webdesk/internal/domain"
)

type SessionRepository interface {
	CreateSession(ctx context.Context, s domain.Session) error
	GetSession(ctx context.Context, id string) (domain.Session, bool, error)
	// ListActiveSessions lazily reaps sessions idle past the TTL: a session
	// failing the cutoff is flipped inactive as a side effect but kept in
	// the table.
	ListActiveSessions(ctx context.Context, now time.Time) ([]domain.SessionSummary, error)
	TouchSession(ctx context.Context, id string, now time.Time) error
	JoinSession(ctx context.Context, id, clientID string, now time.Time) error
	StopSession(ctx context.Context, id string) error
}

type FrameRepository interface {
	// PublishFrame swaps the frame into the session's two-slot buffer.
	// The first origin to publish claims the session; a publish from the
	// other origin fails with domain.ErrFrameSourceConflict.
	PublishFrame(ctx context.Context, sessionID string, f domain.Frame, origin domain.FrameOrigin) error
	// LatestFrame returns domain.ErrNoFrameYet when the session exists but
	// has produced no output.
	LatestFrame(ctx context.Context, sessionID string) (domain.Frame, error)
}

type TransferRepository interface {
	CreateTransfer(ctx context.Context, t domain.Transfer) error
	GetTransfer(ctx context.Context, id string) (domain.Transfer, bool, error)
	// SetTransferStatus enforces the monotonic pending -> delivered|failed
	// machine; re-transitioning a terminal transfer returns
	// domain.ErrInvalidTransferState.
	SetTransferStatus(ctx context.Context, id string, status domain.TransferStatus, errMsg string) error
}

type NotificationRepository interface {
	AppendNotification(ctx context.Context, sessionID string, n domain.Notification) error
	DrainNotifications(ctx context.Context, sessionID string) ([]domain.Notification, error)
}
