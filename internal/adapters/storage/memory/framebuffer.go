package memory

import "webdesk/internal/domain"

// frameBuffer holds at most two frames (current + previous) so memory per
// session stays bounded no matter the publish rate. Frames are replaced,
// never mutated in place; callers synchronize via the owning entry's lock.
type frameBuffer struct {
	current  *domain.Frame
	previous *domain.Frame
}

func (b *frameBuffer) publish(f domain.Frame) {
	// two writes serializing out of order must not make reads go backwards
	if b.current != nil && f.CapturedAt.Before(b.current.CapturedAt) {
		return
	}
	b.previous = b.current
	b.current = &f
}

func (b *frameBuffer) latest() (domain.Frame, bool) {
	if b.current == nil {
		return domain.Frame{}, false
	}
	return *b.current, true
}

func (b *frameBuffer) prior() (domain.Frame, bool) {
	if b.previous == nil {
		return domain.Frame{}, false
	}
	return *b.previous, true
}

func (b *frameBuffer) len() int {
	n := 0
	if b.current != nil {
		n++
	}
	if b.previous != nil {
		n++
	}
	return n
}
