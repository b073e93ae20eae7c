package atxt

import "unicode/utf8"

// The fixed advance width of the synthetic space appended after each
// placed word, in unscaled pixels. This is a structural constant of
// the wrapping algorithm, intentionally independent from the atlas's
// actual space glyph width.
const wrapSpaceWidth = 8

// Sentinel returned past the end of input, like an iterator would.
const endOfText rune = -1

// A WrapBox is the region constraining line layout on [Renderer.Wrap]()
// and [Renderer.DrawInBox](). Width and Height are given in pixels.
// Reserved is kept for compatibility with the classic three-value box
// and is currently ignored.
type WrapBox struct {
	Width int
	Height int
	Reserved int
}

// A WrapResult holds the outcome of a [Renderer.Wrap]() operation.
type WrapResult struct {
	// The wrapped lines, in order. Each line is a sequence of code
	// points with a synthetic trailing space appended after every
	// placed word.
	Lines [][]rune

	// The suffix of the original text that couldn't be placed before
	// the box height was exhausted. Empty when everything fit. Callers
	// can feed it back to wrap or draw again for pagination.
	Missing string

	// The widest line in pixels, trailing space included. Only
	// meaningful when Truncated is false.
	MaxLineWidth int

	// The height in pixels actually used by the wrapped lines. Only
	// meaningful when Truncated is false.
	UsedHeight int

	// Whether wrapping stopped early because the box height was
	// exhausted. Equivalent to Missing != "" for non-empty input.
	Truncated bool
}

// Returns the placed code points of every line joined into a single
// string, synthetic trailing spaces included. The length of this
// string is what determines where Missing starts within the original
// text.
func (self WrapResult) Flatten() string {
	var runeCount int
	for _, line := range self.Lines { runeCount += len(line) }
	flat := make([]rune, 0, runeCount)
	for _, line := range self.Lines { flat = append(flat, line...) }
	return string(flat)
}

// Greedily wraps the given text into lines fitting the given box at
// the renderer's current scale.
//
// The algorithm consumes the text word by word, with spaces and line
// feeds as the only delimiters. Words always move to the next line
// as a whole; there's no hyphenation and no mid-word breaking, so a
// single word wider than the box still occupies its own line. Each
// placed word gets a synthetic trailing space appended. When the box
// height is exhausted wrapping stops immediately and the unplaced
// suffix of the text is reported through [WrapResult].Missing.
//
// Two behaviors are load-bearing for layout compatibility and must
// not be "fixed":
//  - Line feed delimiters check the box height against a fixed
//    16*scale line pitch, while word overflow checks it against
//    cellWidth*scale, one line ahead.
//  - After any line advance the new line's accumulated width starts
//    at the just-placed word's width plus the space width rather
//    than zero.
//
// Repeated calls with the same text reuse the decoded code point
// sequence (see [Renderer] state); this never affects output.
func (self *Renderer) Wrap(text string, box WrapBox) WrapResult {
	if self.fontAtlas == nil { panic("can't wrap text with nil atlas (tip: Renderer.SetAtlas())") }

	scale := self.scale
	spaceWidth := wrapSpaceWidth*scale
	runes := self.decodeText(text)

	lines := [][]rune{ nil }
	var word []rune
	var wordWidth int
	var lineIndex int
	var lineWidth int
	var maxLineWidth int

	for position := 0; position <= len(runes); position++ {
		codePoint := endOfText
		if position < len(runes) { codePoint = runes[position] }

		// word character case: accumulate and continue
		if codePoint != ' ' && codePoint != '\n' && codePoint != endOfText {
			word = append(word, codePoint)
			wordWidth += self.fontAtlas.WidthOf(codePoint)*scale
			continue
		}

		// delimiter case: place the accumulated word
		if lineWidth + wordWidth < box.Width { // word fits on current line
			lines[lineIndex] = append(lines[lineIndex], word...)
			lines[lineIndex] = append(lines[lineIndex], ' ')
			lineWidth += wordWidth + spaceWidth
			if codePoint == '\n' {
				lineIndex += 1
				if lineIndex*16*scale >= box.Height {
					return self.truncatedWrap(text, lines, maxLineWidth)
				}
				lines = append(lines, nil)
				lineWidth = wordWidth + spaceWidth
			}
		} else { // word doesn't fit, advance to a new line
			lineIndex += 1
			if (lineIndex + 1)*self.fontAtlas.CellWidth()*scale >= box.Height {
				return self.truncatedWrap(text, lines, maxLineWidth)
			}
			lines = append(lines, nil)
			lineWidth = wordWidth + spaceWidth
			lines[lineIndex] = append(lines[lineIndex], word...)
			lines[lineIndex] = append(lines[lineIndex], ' ')
		}

		word = word[ : 0]
		wordWidth = 0
		if lineWidth > maxLineWidth { maxLineWidth = lineWidth }
	}

	return WrapResult {
		Lines: lines,
		Missing: "",
		MaxLineWidth: maxLineWidth,
		UsedHeight: (lineIndex + 1)*self.fontAtlas.CellHeight()*scale,
	}
}

// ---- helpers ----

// Builds the early-exit result when the box height is exhausted.
// The missing text is recovered as a byte-length slice of the
// original string: every placed code point consumed exactly one
// delimiter or word character, so the flattened placed length marks
// where the unconsumed suffix starts.
func (self *Renderer) truncatedWrap(text string, lines [][]rune, maxLineWidth int) WrapResult {
	var placedBytes int
	for _, line := range lines {
		for _, codePoint := range line {
			placedBytes += utf8.RuneLen(codePoint)
		}
	}
	missing := ""
	if placedBytes < len(text) { missing = text[placedBytes : ] }
	return WrapResult {
		Lines: lines,
		Missing: missing,
		MaxLineWidth: maxLineWidth,
		Truncated: true,
	}
}

// Returns the decoded code point sequence for the given text,
// reusing the previous decoding when the text is identical to the
// last wrapped one.
func (self *Renderer) decodeText(text string) []rune {
	if text == self.lastWrapText && self.lastWrapRunes != nil {
		return self.lastWrapRunes
	}
	runes := []rune(text)
	self.lastWrapText = text
	self.lastWrapRunes = runes
	return runes
}
