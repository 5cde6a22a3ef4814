// SPDX-License-Identifier: Unlicense OR MIT

package cairo

import (
	"image"
	"image/color"
	"testing"
)

// fillRect paints an axis-aligned rectangle in a solid color. The
// coordinates stay on the pixel grid so the result is exact
// regardless of antialiasing.
func fillRect(t *testing.T, s *ImageSurface, c color.RGBA, x, y, w, h float64) {
	t.Helper()
	cr := NewContext(s.Surface)
	defer cr.Close()
	cr.SetSourceRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
	cr.Rectangle(x, y, w, h)
	cr.Fill()
	if err := cr.Err(); err != nil {
		t.Fatalf("fill: %v", err)
	}
}

func TestImageSurfaceBasics(t *testing.T) {
	s := NewImageSurface(FormatARGB32, 16, 8)
	defer s.Close()
	if err := s.Err(); err != nil {
		t.Fatalf("new image surface: %v", err)
	}
	if got := s.Type(); got != SurfaceTypeImage {
		t.Errorf("Type() = %v, want %v", got, SurfaceTypeImage)
	}
	if got := s.Content(); got != ContentColorAlpha {
		t.Errorf("Content() = %v, want %v", got, ContentColorAlpha)
	}
	if w, h := s.Width(), s.Height(); w != 16 || h != 8 {
		t.Errorf("size = %dx%d, want 16x8", w, h)
	}
	if got := s.Format(); got != FormatARGB32 {
		t.Errorf("Format() = %v, want %v", got, FormatARGB32)
	}
	if got, min := s.Stride(), 16*4; got < min {
		t.Errorf("Stride() = %d, want >= %d", got, min)
	}
	if got, want := len(s.Data()), s.Stride()*8; got != want {
		t.Errorf("len(Data()) = %d, want %d", got, want)
	}
}

func TestImageSurfaceDraw(t *testing.T) {
	s := NewImageSurface(FormatARGB32, 16, 16)
	defer s.Close()
	red := color.RGBA{R: 255, A: 255}
	fillRect(t, s, red, 0, 0, 10, 10)
	if got := s.PixelAt(5, 5); got != red {
		t.Errorf("inside pixel = %v, want %v", got, red)
	}
	if got := s.PixelAt(13, 13); got != (color.RGBA{}) {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
}

func TestImageSurfaceSetPixel(t *testing.T) {
	s := NewImageSurface(FormatARGB32, 4, 4)
	defer s.Close()
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	s.SetPixel(2, 1, c)
	if got := s.PixelAt(2, 1); got != c {
		t.Errorf("PixelAt = %v, want %v", got, c)
	}
}

func TestImageSurfaceForData(t *testing.T) {
	const w, h = 8, 8
	stride := FormatStrideForWidth(FormatARGB32, w)
	if stride <= 0 {
		t.Fatalf("FormatStrideForWidth = %d", stride)
	}
	buf := make([]byte, stride*h)
	s := NewImageSurfaceForData(buf, FormatARGB32, w, h, stride)
	defer s.Close()
	if err := s.Err(); err != nil {
		t.Fatalf("surface for data: %v", err)
	}
	blue := color.RGBA{B: 255, A: 255}
	fillRect(t, s, blue, 0, 0, w, h)
	s.Flush()
	// The surface draws into the caller's buffer.
	if buf[0] == 0 && buf[1] == 0 && buf[2] == 0 && buf[3] == 0 {
		t.Error("drawing did not reach the backing buffer")
	}
}

func TestImageSurfaceForDataShortBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("short buffer did not panic")
		}
	}()
	NewImageSurfaceForData(make([]byte, 16), FormatARGB32, 8, 8, 32)
}

func TestImageRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	colors := []color.RGBA{
		{R: 255, A: 255}, {G: 255, A: 255}, {B: 255, A: 255},
		{R: 255, G: 255, A: 255}, {A: 255}, {R: 1, G: 2, B: 3, A: 255},
	}
	for i, c := range colors {
		src.SetRGBA(i%3, i/3, c)
	}
	s := NewImageSurfaceFromImage(src)
	defer s.Close()
	if err := s.Err(); err != nil {
		t.Fatalf("from image: %v", err)
	}
	got, err := s.Image()
	if err != nil {
		t.Fatalf("to image: %v", err)
	}
	for i, want := range colors {
		if c := got.RGBAAt(i%3, i/3); c != want {
			t.Errorf("pixel %d = %v, want %v", i, c, want)
		}
	}
}

func TestImageUnsupportedFormat(t *testing.T) {
	s := NewImageSurface(FormatA8, 4, 4)
	defer s.Close()
	if _, err := s.Image(); err == nil {
		t.Error("Image() on an A8 surface did not fail")
	}
}

func TestFormatString(t *testing.T) {
	if got := FormatARGB32.String(); got != "argb32" {
		t.Errorf("FormatARGB32.String() = %q", got)
	}
	if got := Format(99).String(); got != "format(99)" {
		t.Errorf("Format(99).String() = %q", got)
	}
}
