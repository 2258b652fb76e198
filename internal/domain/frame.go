package domain

import "time"

// Frame is one encoded still-image snapshot of the shared desktop.
// Payload is the encoded image; Width/Height are the logical canvas
// dimensions viewers scale their input against, not the host display size.
type Frame struct {
	CapturedAt time.Time `json:"capturedAt"`
	Payload    []byte    `json:"payload"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
}
