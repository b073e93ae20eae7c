package atxt

import "image"
import "image/color"

// A Buffer is a raster region that glyphs can be composited into:
// either an offscreen scratch buffer, the atlas sheet itself, or the
// final output [Surface]. Buffers are created through a [Surface] so
// that every buffer in a rendering pipeline shares the same backend;
// mixing buffers from different backends is a programming error and
// will panic.
//
// All blits compose with source-over alpha blending and clip against
// the destination bounds. Scaled blits are always nearest-neighbor;
// no smoothing or anti-aliasing is ever applied.
type Buffer interface {
	// Returns the buffer dimensions in pixels.
	Size() (width int, height int)

	// Copies the given source region into the buffer with its top-left
	// corner at (x, y), without any scaling.
	Blit(source Buffer, sourceRect image.Rectangle, x, y int)

	// Like [Buffer.Blit], but upscaling the source region by the given
	// strictly positive integer factor, nearest-neighbor only.
	BlitScaled(source Buffer, sourceRect image.Rectangle, x, y, factor int)

	// Replaces the color of every non-transparent pixel with the given
	// color while preserving the alpha channel (source-in compositing).
	// This recolors already drawn glyphs without altering their shape.
	Tint(tint color.Color)

	// Releases any resources associated with the buffer. The buffer
	// must not be used after being disposed. Offscreen buffers are
	// created per draw operation and disposed right after their final
	// blit.
	Dispose()
}

// A Surface is the output collaborator that a [Renderer] draws into.
// Beyond the regular [Buffer] operations, surfaces can be resized and
// act as factories for backend-compatible buffers.
//
// Two implementations are provided: [EbitenSurface], backed by an
// Ebitengine image, and [ImageSurface], backed by a standard
// [image.RGBA] (useful for headless rendering and testing).
type Surface interface {
	Buffer

	// Resizes the surface to the given dimensions. Like reassigning
	// the size of a live canvas, any previous content is discarded.
	Resize(width, height int)

	// Creates a new transparent buffer compatible with this surface.
	NewBuffer(width, height int) Buffer

	// Creates a new buffer compatible with this surface holding the
	// pixels of the given image. Typically used to upload the atlas
	// sheet bitmap after decoding it.
	NewBufferFromImage(img image.Image) Buffer
}
