package atxt

import "io/fs"
import "image"
import "image/color"

import "github.com/atlastext/atxt/atlas"

// This file contains the Renderer type definition and all the
// getter and setter methods. Actual operations are split in other
// files.

// The [Renderer] is the heart of atxt and the type around which
// everything else revolves.
//
// Renderers combine three collaborators:
//  - An [*atlas.Atlas] describing the glyph sheet geometry.
//  - A sheet buffer holding the atlas bitmap, uploaded through
//    [Renderer.SetAtlasImage]().
//  - A [Surface] to draw into.
//
// On top of those, renderers expose simple functions to measure,
// wrap and draw text, plus a few properties like color, scale and
// shadow color.
//
// Renderers are single threaded: no operation can be used
// concurrently, and drawing or measuring before the atlas sheet has
// been set is a precondition violation, not a guarded error.
type Renderer struct {
	surface Surface
	fontAtlas *atlas.Atlas
	sheet Buffer

	mainColor color.Color   // nil means glyphs keep their sheet colors
	shadowColor color.Color // nil means no shadow
	scale int

	// decoded text memoization for Wrap (pure optimization,
	// never affects output)
	lastWrapText string
	lastWrapRunes []rune
}

// Creates a new [Renderer] with the following defaults:
//  - Scale set to 1.
//  - No color tint (glyphs keep their sheet colors).
//  - No shadow.
//  - Atlas set to [atlas.NewDefault]() geometry.
//
// You must still set a [Surface] and an atlas sheet bitmap before
// being able to draw (see [Renderer.Setup]() for the common wiring).
func NewRenderer() *Renderer {
	return &Renderer {
		fontAtlas: atlas.NewDefault(),
		scale: 1,
	}
}

// Wires a renderer in a single call: sets the given surface, loads
// the atlas sheet bitmap from the given filesystem asynchronously
// and uploads it to the surface backend once decoded. The onReady
// callback is invoked exactly once when the renderer is ready to
// draw (or with the load error, in which case the renderer keeps
// waiting for a sheet).
//
// The callback runs on the loader goroutine; don't touch the
// renderer from anywhere else until it has fired.
func (self *Renderer) Setup(surface Surface, filesys fs.FS, path string, onReady func(error)) {
	if surface == nil { panic("can't setup with nil Surface") }
	self.surface = surface
	atlas.ParseFromFSAsync(filesys, path, func(img image.Image, err error) {
		if err == nil { self.SetAtlasImage(img) }
		if onReady != nil { onReady(err) }
	})
}

// Sets the surface to draw into on subsequent operations.
func (self *Renderer) SetSurface(surface Surface) {
	self.surface = surface
}

// Returns the current target surface, which is nil by default.
func (self *Renderer) GetSurface() Surface { return self.surface }

// Sets the atlas describing the glyph sheet geometry. Nil atlases
// are not allowed. Notice that the sheet bitmap is configured
// separately through [Renderer.SetAtlasImage]().
func (self *Renderer) SetAtlas(fontAtlas *atlas.Atlas) {
	if fontAtlas == nil { panic("can't set nil atlas") }
	self.fontAtlas = fontAtlas
}

// Returns the current atlas.
func (self *Renderer) GetAtlas() *atlas.Atlas { return self.fontAtlas }

// Uploads the given atlas sheet bitmap to the surface backend. A
// surface must have been set beforehand, as it acts as the buffer
// factory. This is the readiness signal: once this call returns,
// the renderer can draw.
func (self *Renderer) SetAtlasImage(img image.Image) {
	if self.surface == nil { panic("can't set atlas image with nil Surface (tip: Renderer.SetSurface())") }
	if img == nil { panic("can't set nil atlas image") }
	if self.sheet != nil { self.sheet.Dispose() }
	self.sheet = self.surface.NewBufferFromImage(img)
}

// Directly sets an already uploaded sheet buffer. Rarely necessary
// unless the sheet comes from somewhere other than the built-in
// image loading (e.g. a procedurally generated sheet).
func (self *Renderer) SetSheet(sheet Buffer) { self.sheet = sheet }

// Returns the current sheet buffer, or nil if the atlas bitmap
// hasn't been uploaded yet.
func (self *Renderer) GetSheet() Buffer { return self.sheet }

// Sets the color used to tint glyphs on subsequent draw operations.
// Tinting replaces glyph colors while preserving their alpha, so
// shapes never change. Passing nil disables tinting and leaves the
// sheet's own colors untouched, which is the default.
func (self *Renderer) SetColor(mainColor color.Color) {
	self.mainColor = mainColor
}

// Returns the current tint color, nil when tinting is disabled.
func (self *Renderer) GetColor() color.Color { return self.mainColor }

// Sets the drop shadow color for subsequent draw operations. The
// shadow is drawn first, offset by (scale, scale) pixels, with the
// text composited on top. Passing nil disables the shadow, which is
// the default.
func (self *Renderer) SetShadowColor(shadowColor color.Color) {
	self.shadowColor = shadowColor
}

// Returns the current shadow color, nil when shadows are disabled.
func (self *Renderer) GetShadowColor() color.Color { return self.shadowColor }

// Sets the integer scaling factor applied on subsequent operations.
// Scaling is nearest-neighbor only; glyphs stay pixel-exact at any
// factor. The scale must be strictly positive. Its default value
// is 1.
func (self *Renderer) SetScale(scale int) {
	if scale <= 0 { panic("scale must be strictly positive") }
	self.scale = scale
}

// Returns the current scaling factor.
func (self *Renderer) GetScale() int { return self.scale }
