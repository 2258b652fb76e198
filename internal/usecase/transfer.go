package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"webdesk/internal/domain"
)

// TransferService ties file transfers to sessions and feeds the session
// event queue so the host UI can observe pending uploads.
type TransferService struct {
	sessions  SessionRepository
	transfers TransferRepository
	notes     NotificationRepository
	sink      EventSink // optional live observer fanout
}

func NewTransferService(s SessionRepository, t TransferRepository, n NotificationRepository, sink EventSink) *TransferService {
	return &TransferService{sessions: s, transfers: t, notes: n, sink: sink}
}

func (s *TransferService) BeginUpload(ctx context.Context, sessionID, filename string, payload []byte) (domain.Transfer, error) {
	return s.begin(ctx, sessionID, filename, payload, domain.TransferUpload)
}

// BeginDownload registers a host-to-client transfer with the same state
// machine. The HTTP layer does not yet serve download bodies; the registry
// contract is kept forward-compatible.
func (s *TransferService) BeginDownload(ctx context.Context, sessionID, filename string, payload []byte) (domain.Transfer, error) {
	return s.begin(ctx, sessionID, filename, payload, domain.TransferDownload)
}

func (s *TransferService) begin(ctx context.Context, sessionID, filename string, payload []byte, dir domain.TransferDirection) (domain.Transfer, error) {
	_, ok, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return domain.Transfer{}, err
	}
	if !ok {
		return domain.Transfer{}, domain.ErrSessionNotFound
	}

	t := domain.Transfer{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Filename:  filename,
		Payload:   payload,
		Size:      len(payload),
		Direction: dir,
		Status:    domain.TransferPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.transfers.CreateTransfer(ctx, t); err != nil {
		return domain.Transfer{}, err
	}

	if dir == domain.TransferUpload {
		n := domain.Notification{
			ID:         uuid.NewString(),
			SessionID:  sessionID,
			Type:       domain.NotifyFileUpload,
			TransferID: t.ID,
			Filename:   filename,
			Ts:         t.CreatedAt,
		}
		// Queue append is best-effort on a session racing teardown.
		_ = s.notes.AppendNotification(ctx, sessionID, n)
		if s.sink != nil {
			s.sink.Notify(n)
		}
	}
	return t, nil
}

func (s *TransferService) Get(ctx context.Context, id string) (domain.Transfer, bool, error) {
	return s.transfers.GetTransfer(ctx, id)
}

func (s *TransferService) MarkDelivered(ctx context.Context, id string) error {
	return s.transfers.SetTransferStatus(ctx, id, domain.TransferDelivered, "")
}

func (s *TransferService) MarkFailed(ctx context.Context, id, reason string) error {
	return s.transfers.SetTransferStatus(ctx, id, domain.TransferFailed, reason)
}

func (s *TransferService) DrainNotifications(ctx context.Context, sessionID string) ([]domain.Notification, error) {
	return s.notes.DrainNotifications(ctx, sessionID)
}
