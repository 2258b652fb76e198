package usecase

import (
	"context"
	"time"

	"webdesk/internal/domain"
)

// InputService translates viewer input from canvas space to host-display
// space and drives the external injector. Injector failures are wrapped
// into a structured reason and never crash the serving path.
type InputService struct {
	sessions SessionRepository
	injector InputInjector
}

func NewInputService(s SessionRepository, inj InputInjector) *InputService {
	return &InputService{sessions: s, injector: inj}
}

// Dispatch translates and injects one event for the given session. On
// success the session's last activity advances.
func (s *InputService) Dispatch(ctx context.Context, sessionID string, ev domain.InputEvent) error {
	sess, ok, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrSessionNotFound
	}
	if !sess.Active {
		return domain.ErrSessionInactive
	}

	dispW, dispH, err := s.injector.ScreenSize()
	if err != nil {
		return &domain.InjectionError{Reason: "screen size unavailable", Err: err}
	}
	phys, err := Translate(ev, sess.CanvasWidth, sess.CanvasHeight, dispW, dispH)
	if err != nil {
		return err
	}
	if err := s.inject(phys); err != nil {
		return err
	}
	return s.sessions.TouchSession(ctx, sessionID, time.Now().UTC())
}

// inject maps each kind to exactly one injector call.
func (s *InputService) inject(ev domain.PhysicalEvent) error {
	var err error
	switch ev.Kind {
	case domain.PointerMove:
		err = s.injector.MoveTo(ev.X, ev.Y)
	case domain.PointerClick:
		err = s.injector.Click(ev.X, ev.Y, ev.Button)
	case domain.PointerDrag:
		err = s.injector.Drag(ev.X, ev.Y)
	case domain.PointerScroll:
		err = s.injector.Scroll(ev.Amount)
	case domain.KeyDown:
		err = s.injector.KeyDown(ev.Key)
	case domain.KeyUp:
		err = s.injector.KeyUp(ev.Key)
	case domain.KeyType:
		err = s.injector.TypeText(ev.Key)
	default:
		return domain.ErrUnsupportedAction
	}
	if err != nil {
		return &domain.InjectionError{Reason: string(ev.Kind), Err: err}
	}
	return nil
}
