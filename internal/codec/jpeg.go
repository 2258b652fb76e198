// Package codec encodes raw captures into transmittable still images.
package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"time"

	xdraw "golang.org/x/image/draw"

	"webdesk/internal/domain"
)

const DefaultQuality = 70

// JPEG downscales a capture to the session canvas and encodes it as JPEG.
// Stateless; safe for concurrent use.
type JPEG struct {
	Quality int
}

func NewJPEG(quality int) *JPEG {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return &JPEG{Quality: quality}
}

func (c *JPEG) Encode(src image.Image, width, height int, capturedAt time.Time) (domain.Frame, error) {
	if src == nil {
		return domain.Frame{}, fmt.Errorf("encode: nil source image")
	}
	if width <= 0 || height <= 0 {
		return domain.Frame{}, fmt.Errorf("encode: invalid canvas %dx%d", width, height)
	}

	scaled := src
	if b := src.Bounds(); b.Dx() != width || b.Dy() != height {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
		scaled = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: c.Quality}); err != nil {
		return domain.Frame{}, fmt.Errorf("encode jpeg: %w", err)
	}
	return domain.Frame{
		CapturedAt: capturedAt,
		Payload:    buf.Bytes(),
		Width:      width,
		Height:     height,
	}, nil
}
