package atlas

// An [Atlas] describes the geometry of a glyph sheet: a single bitmap
// arranged as a fixed grid of equally sized glyph cells. The atlas
// doesn't hold the bitmap itself, only the information required to
// locate and size glyphs within it; the bitmap is managed separately
// (see [ParseFromFS]() and atxt's Renderer.SetAtlasImage()).
//
// Atlases are immutable after creation outside [Atlas.SetCharMap]()
// and can be shared between renderers.
type Atlas struct {
	cellWidth int
	cellHeight int
	narrowWidth int
	cellsPerRow int
	charMap map[rune]int
}

// Creates a new [Atlas] with the given cell geometry. All values
// must be strictly positive or the function will panic.
//
// Unless a char map is set (see [Atlas.SetCharMap]()), glyph cells
// are indexed directly by code point: code N lives in cell N, filling
// rows of cellsPerRow cells from the top of the sheet.
func New(cellWidth, cellHeight, narrowWidth, cellsPerRow int) *Atlas {
	if cellWidth   <= 0 { panic("atlas cellWidth must be strictly positive") }
	if cellHeight  <= 0 { panic("atlas cellHeight must be strictly positive") }
	if narrowWidth <= 0 { panic("atlas narrowWidth must be strictly positive") }
	if cellsPerRow <= 0 { panic("atlas cellsPerRow must be strictly positive") }
	return &Atlas {
		cellWidth: cellWidth,
		cellHeight: cellHeight,
		narrowWidth: narrowWidth,
		cellsPerRow: cellsPerRow,
	}
}

// Creates a new [Atlas] with the most common glyph sheet geometry:
// 16x16 pixel cells, 8 pixel narrow glyphs and 256 cells per row.
func NewDefault() *Atlas {
	return New(16, 16, 8, 256)
}

// Sets an explicit glyph table for the atlas: the position of each
// character in the given slice becomes its cell index in the sheet.
// Characters absent from the table resolve to cell (0, 0) on
// [Atlas.Locate](); that's a defined fallback, not an error.
//
// Passing an empty slice removes any previously set char map and
// restores direct code point indexing.
func (self *Atlas) SetCharMap(chars []rune) {
	if len(chars) == 0 {
		self.charMap = nil
		return
	}
	self.charMap = make(map[rune]int, len(chars))
	for index, char := range chars {
		_, found := self.charMap[char]
		if !found { self.charMap[char] = index }
	}
}

// Returns the pixel position of the glyph cell for the given code
// point within the atlas sheet.
//
// Positions are not checked against the physical bitmap size: asking
// for a glyph beyond the sheet yields blank pixels when drawn, which
// is the caller's responsibility to avoid.
func (self *Atlas) Locate(code rune) (int, int) {
	index := int(code)
	if self.charMap != nil {
		mappedIndex, found := self.charMap[code]
		if !found { return 0, 0 }
		index = mappedIndex
	}
	x := self.cellWidth*(index % self.cellsPerRow)
	y := self.cellHeight*(index/self.cellsPerRow)
	return x, y
}

// Returns the advance width in pixels for the given code point:
// the narrow width for code points within the narrow rows of the
// sheet (see [Atlas.NarrowLimit]()), the full cell width otherwise.
func (self *Atlas) WidthOf(code rune) int {
	if code < self.NarrowLimit() { return self.narrowWidth }
	return self.cellWidth
}

// The first code point drawn at full cell width. Narrow glyphs
// occupy the first 32 rows of the sheet, so the limit is 32 times
// [Atlas.CellsPerRow]() (8192 for the default geometry). This is a
// property of the sheet layout, not a unicode plane boundary.
func (self *Atlas) NarrowLimit() rune {
	return rune(32*self.cellsPerRow)
}

// ---- geometry getters ----

// Returns the width of a full glyph cell in pixels.
func (self *Atlas) CellWidth() int { return self.cellWidth }

// Returns the height of a glyph cell in pixels.
func (self *Atlas) CellHeight() int { return self.cellHeight }

// Returns the width of a narrow glyph in pixels.
func (self *Atlas) NarrowWidth() int { return self.narrowWidth }

// Returns the number of glyph cells per sheet row.
func (self *Atlas) CellsPerRow() int { return self.cellsPerRow }
