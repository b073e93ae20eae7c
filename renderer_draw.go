package atxt

// The fixed vertical line pitch in unscaled pixels. Like
// wrapSpaceWidth, this is a structural constant of the engine,
// intentionally independent from the atlas cell height.
const linePitch = 16

// Draws the given text into the renderer's surface with its top-left
// corner at (x, y), wrapping against the remaining surface area from
// that position to the bottom-right edge.
//
// The returned string is the unplaced suffix of the text when the
// area was too small for all of it, empty otherwise. Feeding it back
// to another Draw call is the intended way to paginate.
//
// Drawing before the atlas sheet is ready (see [Renderer.Setup]() and
// [Renderer.SetAtlasImage]()) will panic.
func (self *Renderer) Draw(text string, x, y int) string {
	if self.surface == nil { panic("can't draw on nil Surface (tip: Renderer.SetSurface())") }
	width, height := self.surface.Size()
	box := WrapBox{ Width: width - x, Height: height - y }
	return self.drawLines(text, x, y, box, false)
}

// Same as [Renderer.Draw](), but wrapping against an explicit box
// instead of the remaining surface area.
func (self *Renderer) DrawInBox(text string, x, y int, box WrapBox) string {
	return self.drawLines(text, x, y, box, false)
}

// Same as [Renderer.Draw](), but sizing the wrap box to the tightest
// region enclosing the unwrapped text and then shrinking the surface
// to the area actually used (plus the shadow margin when a shadow
// color is set). Typical for label-like surfaces that should hug
// their text.
func (self *Renderer) DrawTight(text string, x, y int) string {
	return self.drawLines(text, x, y, self.tightBox(text), true)
}

// ---- underlying implementation ----

func (self *Renderer) drawLines(text string, x, y int, box WrapBox, tighten bool) string {
	// return directly on superfluous invocations
	if text == "" { return "" }

	// preconditions
	if self.surface == nil { panic("can't draw on nil Surface (tip: Renderer.SetSurface())") }
	if self.fontAtlas == nil { panic("can't draw with nil atlas (tip: Renderer.SetAtlas())") }
	if self.sheet == nil { panic("can't draw before the atlas sheet is ready (tip: Renderer.SetAtlasImage())") }

	result := self.Wrap(text, box)
	scale := self.scale
	shadow := (self.shadowColor != nil)

	// shrink the surface to the used area. When wrapping was cut
	// short the used height is unknown, so the surface is left alone.
	if tighten && !result.Truncated {
		width, height := result.MaxLineWidth, result.UsedHeight
		if shadow {
			width += 2*scale
			height += 2*scale
		}
		if width > 0 && height > 0 { self.surface.Resize(width, height) }
	}

	for index, line := range result.Lines {
		if len(line) == 0 { continue }
		var buffer Buffer
		if shadow {
			buffer, _ = self.composeShadow(line)
		} else {
			buffer, _ = self.composeLineBuffer(line)
		}
		bufferWidth, bufferHeight := buffer.Size()
		self.surface.Blit(buffer, rectOf(bufferWidth, bufferHeight), x, y + index*linePitch*scale)
		buffer.Dispose()
	}
	return result.Missing
}

// Computes the tightest wrap box that places the unwrapped text
// without triggering any overflow. The widths the wrapper accumulates
// include its carryover quirk, so the only faithful way to bound them
// is a dry run against an unbounded box: its max line width already
// exceeds any mid-line fit check, and every line gets the full
// line-feed pitch.
func (self *Renderer) tightBox(text string) WrapBox {
	unbounded := self.Wrap(text, WrapBox{ Width: maxBoxSize, Height: maxBoxSize })
	return WrapBox {
		Width: unbounded.MaxLineWidth,
		Height: len(unbounded.Lines)*linePitch*self.scale,
	}
}

// Large enough for any practical text, small enough to never
// overflow in the wrapper's height arithmetic.
const maxBoxSize = 1 << 30
