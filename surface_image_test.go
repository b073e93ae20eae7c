package atxt

import "image"
import "image/color"
import "testing"

func TestImageSurfaceTint(t *testing.T) {
	surface := NewImageSurface(4, 1)
	rgba := surface.RGBA()
	rgba.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
	rgba.SetRGBA(1, 0, color.RGBA{10, 20, 30, 128})
	rgba.SetRGBA(2, 0, color.RGBA{0, 0, 0, 0})
	rgba.SetRGBA(3, 0, color.RGBA{90, 0, 90, 90})

	alphasBefore := []uint8{ 255, 128, 0, 90 }
	surface.Tint(color.RGBA{200, 100, 50, 255})

	for x := 0; x < 4; x++ {
		pixel := rgba.RGBAAt(x, 0)
		if pixel.A != alphasBefore[x] {
			t.Fatalf("tint altered alpha at x = %d: expected %d, got %d", x, alphasBefore[x], pixel.A)
		}
		alpha := uint32(alphasBefore[x])
		expected := color.RGBA {
			uint8((200*alpha)/255), uint8((100*alpha)/255), uint8((50*alpha)/255), pixel.A,
		}
		if pixel != expected {
			t.Fatalf("unexpected tinted pixel at x = %d: expected %v, got %v", x, expected, pixel)
		}
	}
}

func TestImageSurfaceBlit(t *testing.T) {
	src := NewImageSurface(2, 1)
	src.RGBA().SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	src.RGBA().SetRGBA(1, 0, color.RGBA{0, 0, 255, 255})

	dst := NewImageSurface(4, 2)
	dst.Blit(src, image.Rect(0, 0, 2, 1), 1, 1)
	if dst.RGBA().RGBAAt(1, 1) != (color.RGBA{255, 0, 0, 255}) { t.Fatal("unexpected blit output") }
	if dst.RGBA().RGBAAt(2, 1) != (color.RGBA{0, 0, 255, 255}) { t.Fatal("unexpected blit output") }
	if dst.RGBA().RGBAAt(0, 0) != (color.RGBA{}) { t.Fatal("blit touched pixels out of place") }

	// blits clip against the destination bounds
	dst.Blit(src, image.Rect(0, 0, 2, 1), 3, 0)
	if dst.RGBA().RGBAAt(3, 0) != (color.RGBA{255, 0, 0, 255}) { t.Fatal("unexpected clipped blit output") }
}

func TestImageSurfaceBlitScaled(t *testing.T) {
	src := NewImageSurface(2, 1)
	src.RGBA().SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	src.RGBA().SetRGBA(1, 0, color.RGBA{0, 0, 255, 255})

	dst := NewImageSurface(6, 3)
	dst.BlitScaled(src, image.Rect(0, 0, 2, 1), 0, 0, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			expected := color.RGBA{255, 0, 0, 255}
			if x >= 3 { expected = color.RGBA{0, 0, 255, 255} }
			if dst.RGBA().RGBAAt(x, y) != expected {
				t.Fatalf("non nearest-neighbor pixel at (%d, %d): %v", x, y, dst.RGBA().RGBAAt(x, y))
			}
		}
	}
}

func TestImageSurfaceResize(t *testing.T) {
	surface := NewImageSurface(8, 8)
	surface.RGBA().SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	surface.Resize(3, 5)
	width, height := surface.Size()
	if width != 3 || height != 5 { t.Fatalf("expected 3x5 after resize, got %dx%d", width, height) }
	if surface.RGBA().RGBAAt(0, 0) != (color.RGBA{}) { t.Fatal("resize must discard previous content") }
}

func TestImageSurfaceMixedBackends(t *testing.T) {
	surface := NewImageSurface(4, 4)
	didNotPanic := func(function func()) (result bool) {
		result = true
		defer func() { result = (recover() == nil) }()
		function()
		return
	}
	if didNotPanic(func() { surface.Blit(fakeBuffer{}, image.Rect(0, 0, 1, 1), 0, 0) }) {
		t.Fatal("expected mixed backend blit to panic")
	}
}

type fakeBuffer struct { Buffer }
