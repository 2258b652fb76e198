// Package display provides capture sources standing in for the external
// Display Capture collaborator when no OS binding is wired in.
package display

import (
	"context"
	"image"
	"image/color"
	"sync/atomic"
)

// Pattern renders a moving gradient so the whole capture -> encode ->
// serve pipeline can run end-to-end without OS bindings. Used in dev mode.
type Pattern struct {
	width  int
	height int
	tick   atomic.Uint64
}

func NewPattern(width, height int) *Pattern {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	return &Pattern{width: width, height: height}
}

func (p *Pattern) Capture(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := p.tick.Add(1)
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	shift := uint8(t * 7)
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x) + shift,
				G: uint8(y) + shift,
				B: uint8(x+y) - shift,
				A: 255,
			})
		}
	}
	return img, nil
}
