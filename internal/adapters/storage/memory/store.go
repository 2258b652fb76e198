package memory

import (
	"context"
	"sync"
	"time"

	"webdesk/internal/domain"
)

const maxQueuedNotifications = 256

type sessionEntry struct {
	mu      sync.Mutex
	sess    domain.Session
	buf     frameBuffer
	origin  domain.FrameOrigin // "" until the first publish claims the session
	queue   []domain.Notification
	dropped int
}

// Store is the in-memory session, transfer and notification registry.
// The outer lock guards the maps only; each session entry carries its own
// mutex so unrelated sessions' frame publishes never serialize behind one
// another.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry

	tmu       sync.RWMutex
	transfers map[string]*domain.Transfer

	ttl         time.Duration
	maxSessions int
}

func NewStore(maxSessions int, ttl time.Duration) *Store {
	return &Store{
		sessions:    make(map[string]*sessionEntry, maxSessions),
		transfers:   make(map[string]*domain.Transfer),
		ttl:         ttl,
		maxSessions: maxSessions,
	}
}

func (s *Store) entry(id string) (*sessionEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[id]
	return e, ok
}

// SessionRepository

func (s *Store) CreateSession(ctx context.Context, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		// evict the longest-idle inactive entry; live entries are kept
		s.evictOneLocked()
	}
	s.sessions[sess.ID] = &sessionEntry{sess: sess}
	return nil
}

func (s *Store) GetSession(ctx context.Context, id string) (domain.Session, bool, error) {
	e, ok := s.entry(id)
	if !ok {
		return domain.Session{}, false, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneSession(e.sess), true, nil
}

func (s *Store) ListActiveSessions(ctx context.Context, now time.Time) ([]domain.SessionSummary, error) {
	s.mu.RLock()
	entries := make([]*sessionEntry, 0, len(s.sessions))
	for _, e := range s.sessions {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	out := make([]domain.SessionSummary, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		if e.sess.Active && s.ttl > 0 && now.Sub(e.sess.LastActivityAt) >= s.ttl {
			// lazy reap: flip the flag, keep the row
			e.sess.Active = false
		}
		if e.sess.Active {
			out = append(out, domain.SessionSummary{
				ID:             e.sess.ID,
				HostLabel:      e.sess.HostLabel,
				CreatedAt:      e.sess.CreatedAt,
				LastActivityAt: e.sess.LastActivityAt,
				ClientCount:    len(e.sess.Clients),
			})
		}
		e.mu.Unlock()
	}
	return out, nil
}

func (s *Store) TouchSession(ctx context.Context, id string, now time.Time) error {
	e, ok := s.entry(id)
	if !ok {
		return domain.ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess.Active {
		e.sess.LastActivityAt = now
	}
	return nil
}

func (s *Store) JoinSession(ctx context.Context, id, clientID string, now time.Time) error {
	e, ok := s.entry(id)
	if !ok {
		return domain.ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.sess.Active {
		return domain.ErrSessionInactive
	}
	for _, c := range e.sess.Clients {
		if c == clientID {
			e.sess.LastActivityAt = now
			return nil
		}
	}
	e.sess.Clients = append(e.sess.Clients, clientID)
	e.sess.LastActivityAt = now
	return nil
}

func (s *Store) StopSession(ctx context.Context, id string) error {
	e, ok := s.entry(id)
	if !ok {
		return domain.ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	// inactive is terminal: never flips back
	e.sess.Active = false
	return nil
}

// FrameRepository

func (s *Store) PublishFrame(ctx context.Context, sessionID string, f domain.Frame, origin domain.FrameOrigin) error {
	e, ok := s.entry(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.sess.Active {
		return domain.ErrSessionInactive
	}
	if e.origin == "" {
		e.origin = origin
	} else if e.origin != origin {
		return domain.ErrFrameSourceConflict
	}
	e.buf.publish(f)
	return nil
}

func (s *Store) LatestFrame(ctx context.Context, sessionID string) (domain.Frame, error) {
	e, ok := s.entry(sessionID)
	if !ok {
		return domain.Frame{}, domain.ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	f, ok := e.buf.latest()
	if !ok {
		return domain.Frame{}, domain.ErrNoFrameYet
	}
	return f, nil
}

// PreviousFrame exposes the buffer's secondary slot, mainly for tests and
// diagnostics.
func (s *Store) PreviousFrame(sessionID string) (domain.Frame, bool) {
	e, ok := s.entry(sessionID)
	if !ok {
		return domain.Frame{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buf.prior()
}

// BufferedFrameCount reports how many frames the session's buffer holds.
func (s *Store) BufferedFrameCount(sessionID string) int {
	e, ok := s.entry(sessionID)
	if !ok {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buf.len()
}

// TransferRepository

func (s *Store) CreateTransfer(ctx context.Context, t domain.Transfer) error {
	s.tmu.Lock()
	defer s.tmu.Unlock()
	cp := t
	s.transfers[t.ID] = &cp
	return nil
}

func (s *Store) GetTransfer(ctx context.Context, id string) (domain.Transfer, bool, error) {
	s.tmu.RLock()
	defer s.tmu.RUnlock()
	t, ok := s.transfers[id]
	if !ok {
		return domain.Transfer{}, false, nil
	}
	return *t, true, nil
}

func (s *Store) SetTransferStatus(ctx context.Context, id string, status domain.TransferStatus, errMsg string) error {
	s.tmu.Lock()
	defer s.tmu.Unlock()
	t, ok := s.transfers[id]
	if !ok {
		return domain.ErrTransferNotFound
	}
	if t.Status.Terminal() {
		return domain.ErrInvalidTransferState
	}
	t.Status = status
	t.Error = errMsg
	return nil
}

// NotificationRepository

func (s *Store) AppendNotification(ctx context.Context, sessionID string, n domain.Notification) error {
	e, ok := s.entry(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) >= maxQueuedNotifications {
		// drop oldest so an absent host never grows the queue unbounded
		e.queue = e.queue[1:]
		e.dropped++
	}
	e.queue = append(e.queue, n)
	return nil
}

func (s *Store) DrainNotifications(ctx context.Context, sessionID string) ([]domain.Notification, error) {
	e, ok := s.entry(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	out := e.queue
	e.queue = nil
	return out, nil
}

// evictOneLocked removes one reapable entry to make room; caller holds mu.
func (s *Store) evictOneLocked() {
	var victim string
	var oldest time.Time
	for id, e := range s.sessions {
		e.mu.Lock()
		idleSince := e.sess.LastActivityAt
		active := e.sess.Active
		e.mu.Unlock()
		if active {
			continue
		}
		if victim == "" || idleSince.Before(oldest) {
			victim = id
			oldest = idleSince
		}
	}
	if victim != "" {
		delete(s.sessions, victim)
	}
}

func cloneSession(s domain.Session) domain.Session {
	cp := s
	cp.Clients = append([]string(nil), s.Clients...)
	return cp
}
