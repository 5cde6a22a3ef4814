// SPDX-License-Identifier: Unlicense OR MIT

package cairo

import "testing"

func TestRecordingSurfaceBounded(t *testing.T) {
	bounds := Rectangle{X: 0, Y: 0, Width: 100, Height: 50}
	s := NewRecordingSurface(ContentColorAlpha, &bounds)
	defer s.Close()
	if err := s.Err(); err != nil {
		t.Fatalf("new recording surface: %v", err)
	}
	if got := s.Type(); got != SurfaceTypeRecording {
		t.Errorf("Type() = %v, want recording", got)
	}
	got, ok := s.Extents()
	if !ok {
		t.Fatal("bounded recording surface reports no extents")
	}
	if got != bounds {
		t.Errorf("Extents = %+v, want %+v", got, bounds)
	}
}

func TestRecordingSurfaceUnbounded(t *testing.T) {
	s := NewRecordingSurface(ContentColorAlpha, nil)
	defer s.Close()
	if _, ok := s.Extents(); ok {
		t.Error("unbounded recording surface reports extents")
	}
}

func TestRecordingSurfaceInkExtents(t *testing.T) {
	s := NewRecordingSurface(ContentColorAlpha, nil)
	defer s.Close()
	cr := NewContext(s.Surface)
	defer cr.Close()
	cr.SetSourceRGB(1, 0, 0)
	cr.Rectangle(10, 20, 30, 40)
	cr.Fill()
	ink := s.InkExtents()
	if ink != (Rectangle{X: 10, Y: 20, Width: 30, Height: 40}) {
		t.Errorf("InkExtents = %+v", ink)
	}
}

func TestRecordingReplay(t *testing.T) {
	rec := NewRecordingSurface(ContentColorAlpha, &Rectangle{Width: 16, Height: 16})
	defer rec.Close()
	cr := NewContext(rec.Surface)
	cr.SetSourceRGB(0, 1, 0)
	cr.Rectangle(0, 0, 16, 16)
	cr.Fill()
	cr.Close()

	img := NewImageSurface(FormatARGB32, 16, 16)
	defer img.Close()
	cr = NewContext(img.Surface)
	cr.SetSourceSurface(rec.Surface, 0, 0)
	cr.Paint()
	cr.Close()
	if got := img.PixelAt(8, 8); got.G != 255 || got.A != 255 {
		t.Errorf("replayed pixel = %v, want green", got)
	}
}
