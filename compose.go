package atxt

import "image"

// Glyph compositing: the per-line pipeline that turns wrapped code
// points into pixel buffers. Draw orchestration lives in
// renderer_draw.go; everything here works in unscaled sheet pixels
// until the final nearest-neighbor upscale.

// Blits the glyph cells of the given line into dst starting at
// (x, y), advancing by each glyph's atlas width, and returns the
// total advance. Full cells are blitted even for narrow glyphs;
// the following glyph simply overlaps the unused right half of the
// cell, clipped against the destination bounds.
func (self *Renderer) composeLine(dst Buffer, line []rune, x, y int) int {
	cellWidth  := self.fontAtlas.CellWidth()
	cellHeight := self.fontAtlas.CellHeight()
	var advance int
	for _, codePoint := range line {
		cellX, cellY := self.fontAtlas.Locate(codePoint)
		sourceRect := image.Rect(cellX, cellY, cellX + cellWidth, cellY + cellHeight)
		dst.Blit(self.sheet, sourceRect, x + advance, y)
		advance += self.fontAtlas.WidthOf(codePoint)
	}
	return advance
}

// Renders one line into a fresh buffer, applying the renderer's tint
// and scale. Returns the buffer and its width in scaled pixels. The
// caller owns the buffer and must dispose of it after blitting.
func (self *Renderer) composeLineBuffer(line []rune) (Buffer, int) {
	width := self.lineAdvance(line)
	buffer := self.surface.NewBuffer(width, self.fontAtlas.CellHeight())
	self.composeLine(buffer, line, 0, 0)
	if self.mainColor != nil { buffer.Tint(self.mainColor) }
	if self.scale != 1 { buffer = self.upscaleBuffer(buffer, self.scale) }
	return buffer, width*self.scale
}

// Renders one line with a drop shadow: the line tinted with the
// shadow color offset by (scale, scale), then the line tinted with
// the main color at the origin. The returned buffer is scale pixels
// larger than the scaled line on each axis, and the returned width
// is the foreground width plus scale.
func (self *Renderer) composeShadow(line []rune) (Buffer, int) {
	scale := self.scale
	width := self.lineAdvance(line)
	cellHeight := self.fontAtlas.CellHeight()
	lineRect := image.Rect(0, 0, width, cellHeight)
	buffer := self.surface.NewBuffer(width*scale + scale, cellHeight*scale + scale)

	// shadow pass
	pass := self.surface.NewBuffer(width, cellHeight)
	self.composeLine(pass, line, 0, 0)
	pass.Tint(self.shadowColor)
	buffer.BlitScaled(pass, lineRect, scale, scale, scale)
	pass.Dispose()

	// foreground pass
	pass = self.surface.NewBuffer(width, cellHeight)
	self.composeLine(pass, line, 0, 0)
	if self.mainColor != nil { pass.Tint(self.mainColor) }
	buffer.BlitScaled(pass, lineRect, 0, 0, scale)
	pass.Dispose()

	return buffer, width*scale + scale
}

// ---- helpers ----

// Nearest-neighbor upscale into a new buffer, disposing the source.
func (self *Renderer) upscaleBuffer(src Buffer, factor int) Buffer {
	width, height := src.Size()
	dst := self.surface.NewBuffer(width*factor, height*factor)
	dst.BlitScaled(src, image.Rect(0, 0, width, height), 0, 0, factor)
	src.Dispose()
	return dst
}

// Sum of atlas advance widths for the line, in unscaled pixels.
func (self *Renderer) lineAdvance(line []rune) int {
	var advance int
	for _, codePoint := range line {
		advance += self.fontAtlas.WidthOf(codePoint)
	}
	return advance
}

func rectOf(width, height int) image.Rectangle {
	return image.Rect(0, 0, width, height)
}
