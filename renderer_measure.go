package atxt

// Returns the width in pixels of the given text at the renderer's
// current scale. Every code point contributes its atlas advance
// width; there's no kerning and no special treatment of control
// characters, line breaks included (this is a fixed-cell engine,
// measuring is plain accumulation).
//
// For multi-line layout dimensions, use [Renderer.Wrap]() and check
// the resulting MaxLineWidth and UsedHeight instead.
func (self *Renderer) Measure(text string) int {
	if self.fontAtlas == nil { panic("can't measure text with nil atlas (tip: Renderer.SetAtlas())") }

	var width int
	for _, codePoint := range text {
		width += self.fontAtlas.WidthOf(codePoint)*self.scale
	}
	return width
}

// Returns the height in pixels of a single line of glyphs at the
// renderer's current scale (scale times the atlas cell height).
func (self *Renderer) LineHeight() int {
	if self.fontAtlas == nil { panic("can't measure text with nil atlas (tip: Renderer.SetAtlas())") }
	return self.fontAtlas.CellHeight()*self.scale
}
