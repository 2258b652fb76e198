package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
	"time"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func TestEncodeDownscalesToCanvas(t *testing.T) {
	c := NewJPEG(70)
	at := time.Now().UTC()
	f, err := c.Encode(testImage(1920, 1080), 800, 600, at)
	if err != nil {
		t.Fatal(err)
	}
	if f.Width != 800 || f.Height != 600 {
		t.Errorf("frame dims = %dx%d", f.Width, f.Height)
	}
	if !f.CapturedAt.Equal(at) {
		t.Errorf("capturedAt not preserved")
	}
	decoded, err := jpeg.Decode(bytes.NewReader(f.Payload))
	if err != nil {
		t.Fatalf("payload is not valid JPEG: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("decoded dims = %dx%d", b.Dx(), b.Dy())
	}
}

func TestEncodeSkipsScaleWhenSizesMatch(t *testing.T) {
	c := NewJPEG(70)
	f, err := c.Encode(testImage(800, 600), 800, 600, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := jpeg.Decode(bytes.NewReader(f.Payload))
	if err != nil {
		t.Fatal(err)
	}
	if b := decoded.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("decoded dims = %dx%d", b.Dx(), b.Dy())
	}
}

func TestEncodeRejectsBadInput(t *testing.T) {
	c := NewJPEG(70)
	if _, err := c.Encode(nil, 800, 600, time.Now()); err == nil {
		t.Error("nil image must fail")
	}
	if _, err := c.Encode(testImage(10, 10), 0, 600, time.Now()); err == nil {
		t.Error("zero canvas must fail")
	}
}

func TestQualityClamp(t *testing.T) {
	if q := NewJPEG(0).Quality; q != DefaultQuality {
		t.Errorf("quality 0 -> %d", q)
	}
	if q := NewJPEG(101).Quality; q != DefaultQuality {
		t.Errorf("quality 101 -> %d", q)
	}
	if q := NewJPEG(40).Quality; q != 40 {
		t.Errorf("quality 40 -> %d", q)
	}
}
