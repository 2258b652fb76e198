package usecase

import (
	"context"
	"image"
	"time"

	"webdesk/internal/domain"
)

// DisplayCapture is the external screen-grab collaborator. A failed grab
// is tolerated per tick and never aborts other sessions.
type DisplayCapture interface {
	Capture(ctx context.Context) (image.Image, error)
}

// InputInjector is the external synthetic-input collaborator. Coordinates
// are host-display (physical) space; each call may fail independently.
type InputInjector interface {
	MoveTo(x, y int) error
	Click(x, y int, button string) error
	Drag(x, y int) error
	Scroll(amount int) error
	KeyDown(symbol string) error
	KeyUp(symbol string) error
	TypeText(text string) error
	// ScreenSize reports the host display resolution input is scaled to.
	ScreenSize() (width, height int, err error)
}

// FrameEncoder turns a raw capture into a transmittable still image sized
// to the session canvas. Pure, stateless.
type FrameEncoder interface {
	Encode(src image.Image, width, height int, capturedAt time.Time) (domain.Frame, error)
}

// EventSink receives notification records as they are appended to a
// session's queue, for live host observers. Implementations must not block.
type EventSink interface {
	Notify(n domain.Notification)
}
