package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"webdesk/internal/domain"
)

// SessionService is the facade over session lifecycle and the frame
// publish/serve contract. Both ingestion paths (capture loop and host
// push) go through PublishFrame so a reader never observes a torn frame.
type SessionService struct {
	sessions SessionRepository
	frames   FrameRepository

	canvasW int
	canvasH int
}

func NewSessionService(s SessionRepository, f FrameRepository, canvasW, canvasH int) *SessionService {
	return &SessionService{sessions: s, frames: f, canvasW: canvasW, canvasH: canvasH}
}

func (s *SessionService) Create(ctx context.Context, hostLabel, hostAddr string) (domain.Session, error) {
	now := time.Now().UTC()
	sess := domain.Session{
		ID:             uuid.NewString(),
		HostLabel:      hostLabel,
		HostAddr:       hostAddr,
		CreatedAt:      now,
		LastActivityAt: now,
		Active:         true,
		Clients:        []string{},
		CanvasWidth:    s.canvasW,
		CanvasHeight:   s.canvasH,
	}
	if err := s.sessions.CreateSession(ctx, sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (domain.Session, bool, error) {
	return s.sessions.GetSession(ctx, id)
}

func (s *SessionService) ListActive(ctx context.Context, now time.Time) ([]domain.SessionSummary, error) {
	return s.sessions.ListActiveSessions(ctx, now)
}

func (s *SessionService) Join(ctx context.Context, id, clientID string) error {
	return s.sessions.JoinSession(ctx, id, clientID, time.Now().UTC())
}

func (s *SessionService) Stop(ctx context.Context, id string) error {
	return s.sessions.StopSession(ctx, id)
}

func (s *SessionService) Touch(ctx context.Context, id string) error {
	return s.sessions.TouchSession(ctx, id, time.Now().UTC())
}

// PublishFrame ingests a frame from the given origin and counts as host
// activity on the session.
func (s *SessionService) PublishFrame(ctx context.Context, sessionID string, f domain.Frame, origin domain.FrameOrigin) error {
	if err := s.frames.PublishFrame(ctx, sessionID, f, origin); err != nil {
		return err
	}
	return s.sessions.TouchSession(ctx, sessionID, time.Now().UTC())
}

// LatestFrame serves the newest frame to a polling viewer. Slow pollers
// skip intermediate frames; there is no queue of unconsumed frames.
func (s *SessionService) LatestFrame(ctx context.Context, sessionID string) (domain.Frame, error) {
	f, err := s.frames.LatestFrame(ctx, sessionID)
	if err != nil {
		return domain.Frame{}, err
	}
	_ = s.sessions.TouchSession(ctx, sessionID, time.Now().UTC())
	return f, nil
}
