package atxt

import "image"
import "image/color"
import "image/draw"

import xdraw "golang.org/x/image/draw"

// An [ImageSurface] is a [Surface] backed by a standard [image.RGBA].
// It is the backend of choice for headless rendering, tests and any
// program that wants to export text to plain images.
type ImageSurface struct {
	rgba *image.RGBA
}

// Creates a new transparent [ImageSurface] with the given dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 || height <= 0 { panic("surface dimensions must be strictly positive") }
	return &ImageSurface{ rgba: image.NewRGBA(image.Rect(0, 0, width, height)) }
}

// Returns the underlying [image.RGBA]. The returned image remains
// owned by the surface and is replaced on [ImageSurface.Resize]().
func (self *ImageSurface) RGBA() *image.RGBA { return self.rgba }

// Implements [Buffer].
func (self *ImageSurface) Size() (int, int) {
	bounds := self.rgba.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Implements [Surface]. Previous content is discarded.
func (self *ImageSurface) Resize(width, height int) {
	if width <= 0 || height <= 0 { panic("surface dimensions must be strictly positive") }
	self.rgba = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Implements [Surface].
func (self *ImageSurface) NewBuffer(width, height int) Buffer {
	return NewImageSurface(width, height)
}

// Implements [Surface].
func (self *ImageSurface) NewBufferFromImage(img image.Image) Buffer {
	if img == nil { panic("can't create buffer from nil image") }
	bounds := img.Bounds()
	buffer := NewImageSurface(bounds.Dx(), bounds.Dy())
	draw.Draw(buffer.rgba, buffer.rgba.Bounds(), img, bounds.Min, draw.Src)
	return buffer
}

// Implements [Buffer].
func (self *ImageSurface) Blit(source Buffer, sourceRect image.Rectangle, x, y int) {
	src := imageBackedBuffer(source)
	dstRect := image.Rect(x, y, x + sourceRect.Dx(), y + sourceRect.Dy())
	draw.Draw(self.rgba, dstRect, src.rgba, sourceRect.Min, draw.Over)
}

// Implements [Buffer].
func (self *ImageSurface) BlitScaled(source Buffer, sourceRect image.Rectangle, x, y, factor int) {
	if factor <= 0 { panic("blit scaling factor must be strictly positive") }
	if factor == 1 {
		self.Blit(source, sourceRect, x, y)
		return
	}
	src := imageBackedBuffer(source)
	dstRect := image.Rect(x, y, x + sourceRect.Dx()*factor, y + sourceRect.Dy()*factor)
	xdraw.NearestNeighbor.Scale(self.rgba, dstRect, src.rgba, sourceRect, xdraw.Over, nil)
}

// Implements [Buffer]. The replacement runs directly over the pixel
// data: every pixel becomes tint*alpha, which matches GPU source-in
// compositing (fully transparent pixels stay fully transparent).
func (self *ImageSurface) Tint(tint color.Color) {
	r, g, b, a := tint.RGBA() // 16-bit premultiplied
	r8, g8, b8, a8 := uint32(r>>8), uint32(g>>8), uint32(b>>8), uint32(a>>8)
	pix := self.rgba.Pix
	for index := 0; index < len(pix); index += 4 {
		alpha := uint32(pix[index + 3])
		pix[index + 0] = uint8((r8*alpha)/255)
		pix[index + 1] = uint8((g8*alpha)/255)
		pix[index + 2] = uint8((b8*alpha)/255)
		pix[index + 3] = uint8((a8*alpha)/255)
	}
}

// Implements [Buffer]. For image surfaces this only drops the pixel
// data reference; the garbage collector does the rest.
func (self *ImageSurface) Dispose() { self.rgba = nil }

// ---- helpers ----

func imageBackedBuffer(buffer Buffer) *ImageSurface {
	src, isImageBacked := buffer.(*ImageSurface)
	if !isImageBacked { panic("mixed surface backends: expected an image-backed buffer") }
	return src
}
