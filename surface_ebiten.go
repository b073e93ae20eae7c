package atxt

import "image"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"

// An [EbitenSurface] is a [Surface] backed by an [*ebiten.Image].
// This is the backend used by games: blits become GPU draws with
// nearest-neighbor filtering and tinting becomes a source-in fill.
type EbitenSurface struct {
	img *ebiten.Image
}

// Creates a new [EbitenSurface] with the given dimensions.
func NewEbitenSurface(width, height int) *EbitenSurface {
	if width <= 0 || height <= 0 { panic("surface dimensions must be strictly positive") }
	return &EbitenSurface{ img: ebiten.NewImage(width, height) }
}

// Wraps an existing [*ebiten.Image] as a surface. Notice that
// [EbitenSurface.Resize]() replaces the wrapped image with a fresh
// one, so hosts that hold their own reference should re-fetch it
// through [EbitenSurface.Image]() after drawing.
func FromEbitenImage(img *ebiten.Image) *EbitenSurface {
	if img == nil { panic("can't wrap nil *ebiten.Image") }
	return &EbitenSurface{ img: img }
}

// Returns the current underlying [*ebiten.Image].
func (self *EbitenSurface) Image() *ebiten.Image { return self.img }

// Implements [Buffer].
func (self *EbitenSurface) Size() (int, int) { return self.img.Size() }

// Implements [Surface]. Previous content is discarded.
func (self *EbitenSurface) Resize(width, height int) {
	if width <= 0 || height <= 0 { panic("surface dimensions must be strictly positive") }
	self.img.Dispose()
	self.img = ebiten.NewImage(width, height)
}

// Implements [Surface].
func (self *EbitenSurface) NewBuffer(width, height int) Buffer {
	return NewEbitenSurface(width, height)
}

// Implements [Surface].
func (self *EbitenSurface) NewBufferFromImage(img image.Image) Buffer {
	if img == nil { panic("can't create buffer from nil image") }
	return &EbitenSurface{ img: ebiten.NewImageFromImage(img) }
}

// Implements [Buffer].
func (self *EbitenSurface) Blit(source Buffer, sourceRect image.Rectangle, x, y int) {
	self.BlitScaled(source, sourceRect, x, y, 1)
}

// Implements [Buffer].
func (self *EbitenSurface) BlitScaled(source Buffer, sourceRect image.Rectangle, x, y, factor int) {
	if factor <= 0 { panic("blit scaling factor must be strictly positive") }
	src := ebitenBackedBuffer(source)
	region := src.img.SubImage(sourceRect).(*ebiten.Image)
	opts := ebiten.DrawImageOptions{}
	opts.Filter = ebiten.FilterNearest
	if factor != 1 { opts.GeoM.Scale(float64(factor), float64(factor)) }
	opts.GeoM.Translate(float64(x), float64(y))
	self.img.DrawImage(region, &opts)
}

// Implements [Buffer].
func (self *EbitenSurface) Tint(tint color.Color) {
	width, height := self.img.Size()
	opts := ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(width), float64(height))
	opts.ColorM.Scale(colorToFloat64(tint))
	opts.CompositeMode = ebiten.CompositeModeSourceIn
	self.img.DrawImage(getWhitePixel(), &opts)
}

// Implements [Buffer].
func (self *EbitenSurface) Dispose() {
	self.img.Dispose()
	self.img = nil
}

// ---- helpers ----

func ebitenBackedBuffer(buffer Buffer) *EbitenSurface {
	src, isEbitenBacked := buffer.(*EbitenSurface)
	if !isEbitenBacked { panic("mixed surface backends: expected an ebiten-backed buffer") }
	return src
}

// Solid 1x1 source for tint fills. Created as the center of a 3x3
// image so sampling can't bleed past the pixel's edges.
var pkgWhitePixel *ebiten.Image
func getWhitePixel() *ebiten.Image {
	if pkgWhitePixel == nil {
		base := ebiten.NewImage(3, 3)
		base.Fill(color.White)
		pkgWhitePixel = base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return pkgWhitePixel
}

// Convert a color to its float64 [0, 1.0] components.
func colorToFloat64(subject color.Color) (float64, float64, float64, float64) {
	rgbaColor, isRGBA := subject.(color.RGBA)
	if isRGBA {
		r, g, b, a := rgbaColor.R, rgbaColor.G, rgbaColor.B, rgbaColor.A
		return float64(r)/255, float64(g)/255, float64(b)/255, float64(a)/255
	} else {
		r, g, b, a := subject.RGBA()
		return float64(r)/65535, float64(g)/65535, float64(b)/65535, float64(a)/65535
	}
}
