package domain

import "time"

// Session is a single host-desktop-sharing context. Viewers attach to it
// by id and poll its frame buffer; LastActivityAt moves on every read or
// write that touches the session.
type Session struct {
	ID             string    `json:"id"`
	HostLabel      string    `json:"hostLabel"`
	HostAddr       string    `json:"hostAddr"`
	CreatedAt      time.Time `json:"createdAt"`
	LastActivityAt time.Time `json:"lastActivityAt"`
	Active         bool      `json:"active"`
	Clients        []string  `json:"clients"`
	CanvasWidth    int       `json:"canvasWidth"`
	CanvasHeight   int       `json:"canvasHeight"`
}

// SessionSummary is the list-view projection of a session.
type SessionSummary struct {
	ID             string    `json:"id"`
	HostLabel      string    `json:"hostLabel"`
	CreatedAt      time.Time `json:"createdAt"`
	LastActivityAt time.Time `json:"lastActivityAt"`
	ClientCount    int       `json:"clientCount"`
}

// FrameOrigin identifies which ingestion path feeds a session's buffer.
// The first origin to publish claims the session; the other path is refused.
type FrameOrigin string

const (
	OriginCapture FrameOrigin = "capture" // server-side capture loop
	OriginPush    FrameOrigin = "push"    // host-side agent pushing encoded frames
)
