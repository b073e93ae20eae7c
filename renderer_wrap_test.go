package atxt

import "testing"

func lineString(line []rune) string { return string(line) }

func TestWrapSingleLine(t *testing.T) {
	renderer := NewRenderer()
	result := renderer.Wrap("hello world", WrapBox{ Width: 1000, Height: 1000 })
	if result.Missing != "" { t.Fatalf("expected no missing text, got '%s'", result.Missing) }
	if result.Truncated { t.Fatal("expected non-truncated result") }
	if len(result.Lines) != 1 { t.Fatalf("expected 1 line, got %d", len(result.Lines)) }
	if lineString(result.Lines[0]) != "hello world " {
		t.Fatalf("expected 'hello world ', got '%s'", lineString(result.Lines[0]))
	}

	// width accumulation: each word takes 40px (5 narrow glyphs),
	// plus the fixed 8px space after it
	if result.MaxLineWidth != 96 { t.Fatalf("expected max line width 96, got %d", result.MaxLineWidth) }
	if result.UsedHeight != 16 { t.Fatalf("expected used height 16, got %d", result.UsedHeight) }
}

func TestWrapOneWordPerLine(t *testing.T) {
	renderer := NewRenderer()
	result := renderer.Wrap("a b c", WrapBox{ Width: 9, Height: 100 })
	if result.Missing != "" { t.Fatalf("expected no missing text, got '%s'", result.Missing) }
	if len(result.Lines) != 3 { t.Fatalf("expected 3 lines, got %d", len(result.Lines)) }
	for index, expected := range []string{ "a ", "b ", "c " } {
		if lineString(result.Lines[index]) != expected {
			t.Fatalf("line %d: expected '%s', got '%s'", index, expected, lineString(result.Lines[index]))
		}
	}
}

func TestWrapZeroBox(t *testing.T) {
	renderer := NewRenderer()
	text := "can't fit any of this"
	result := renderer.Wrap(text, WrapBox{})
	if !result.Truncated { t.Fatal("expected truncated result") }
	if result.Missing != text { t.Fatalf("expected missing == full text, got '%s'", result.Missing) }
	if len(result.Lines) != 1 { t.Fatalf("expected a single line, got %d", len(result.Lines)) }
	if len(result.Lines[0]) != 0 { t.Fatalf("expected the single line to be empty, got '%s'", lineString(result.Lines[0])) }
}

func TestWrapHeightExhaustion(t *testing.T) {
	renderer := NewRenderer()

	// width 40 fits one 24px word per line, height 40 allows the
	// overflow check (L + 1)*16 to pass only up to the second line
	result := renderer.Wrap("aaa bbb ccc ddd", WrapBox{ Width: 40, Height: 40 })
	if !result.Truncated { t.Fatal("expected truncated result") }
	if result.Missing != "ccc ddd" { t.Fatalf("expected missing 'ccc ddd', got '%s'", result.Missing) }
	if len(result.Lines) != 2 { t.Fatalf("expected 2 lines, got %d", len(result.Lines)) }
	if lineString(result.Lines[0]) != "aaa " { t.Fatalf("unexpected first line '%s'", lineString(result.Lines[0])) }
	if lineString(result.Lines[1]) != "bbb " { t.Fatalf("unexpected second line '%s'", lineString(result.Lines[1])) }
}

func TestWrapResumability(t *testing.T) {
	renderer := NewRenderer()
	text := "aaa bbb ccc ddd eee"
	box := WrapBox{ Width: 40, Height: 40 }

	var placed []string
	for rounds := 0; text != ""; rounds++ {
		if rounds > 8 { t.Fatal("pagination not making progress") }
		result := renderer.Wrap(text, box)
		for _, line := range result.Lines {
			if len(line) > 0 { placed = append(placed, lineString(line)) }
		}
		if !result.Truncated { break }
		if result.Missing == text { t.Fatal("pagination not making progress") }
		text = result.Missing
	}

	joined := ""
	for _, line := range placed { joined += line }
	if joined != "aaa bbb ccc ddd eee " {
		t.Fatalf("pagination lost or duplicated characters: '%s'", joined)
	}
}

func TestWrapLineFeedPitch(t *testing.T) {
	renderer := NewRenderer()

	// line feeds check the fixed 16px pitch against the box height,
	// regardless of the atlas cell height
	result := renderer.Wrap("a\nb", WrapBox{ Width: 1000, Height: 17 })
	if result.Truncated { t.Fatal("expected box height 17 to fit the second line") }
	if len(result.Lines) != 2 { t.Fatalf("expected 2 lines, got %d", len(result.Lines)) }

	result = renderer.Wrap("a\nb", WrapBox{ Width: 1000, Height: 16 })
	if !result.Truncated { t.Fatal("expected box height 16 to exhaust at the line feed") }
	if result.Missing != "b" { t.Fatalf("expected missing 'b', got '%s'", result.Missing) }
}

func TestWrapCarryover(t *testing.T) {
	renderer := NewRenderer()

	// after a line feed the new line's width budget starts at the
	// just-placed word's width plus the space width, so the 32px of
	// "aaaa" still count against the empty second line and "bb"
	// (16px) overflows a 49px box, leaving the second line empty
	result := renderer.Wrap("aaaa\nbb cc", WrapBox{ Width: 49, Height: 1000 })
	if result.Missing != "" { t.Fatalf("expected no missing text, got '%s'", result.Missing) }
	if len(result.Lines) != 3 { t.Fatalf("expected carryover to force 3 lines, got %d", len(result.Lines)) }
	if len(result.Lines[1]) != 0 { t.Fatalf("expected empty middle line, got '%s'", lineString(result.Lines[1])) }
	if lineString(result.Lines[2]) != "bb cc " { t.Fatalf("unexpected last line '%s'", lineString(result.Lines[2])) }
}

func TestWrapRepeatedCallsIndependent(t *testing.T) {
	renderer := NewRenderer()
	text := "some words to wrap around"
	box := WrapBox{ Width: 60, Height: 200 }

	first := renderer.Wrap(text, box)
	renderer.Wrap(text, WrapBox{ Width: 300, Height: 10 }) // different box, memoized decode
	third := renderer.Wrap(text, box)

	if first.Missing != third.Missing { t.Fatal("wrap results changed across calls") }
	if first.MaxLineWidth != third.MaxLineWidth { t.Fatal("wrap results changed across calls") }
	if len(first.Lines) != len(third.Lines) { t.Fatal("wrap results changed across calls") }
	for index := range first.Lines {
		if lineString(first.Lines[index]) != lineString(third.Lines[index]) {
			t.Fatal("wrap results changed across calls")
		}
	}
}

func TestWrapFlatten(t *testing.T) {
	renderer := NewRenderer()
	result := renderer.Wrap("two words", WrapBox{ Width: 1000, Height: 1000 })
	if result.Flatten() != "two words " {
		t.Fatalf("expected flattened 'two words ', got '%s'", result.Flatten())
	}
}

func TestWrapScaled(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetScale(2)

	// at scale 2 every narrow glyph advances 16px and the space 16px
	result := renderer.Wrap("hi", WrapBox{ Width: 1000, Height: 1000 })
	if result.MaxLineWidth != 48 { t.Fatalf("expected max line width 48, got %d", result.MaxLineWidth) }
	if result.UsedHeight != 32 { t.Fatalf("expected used height 32, got %d", result.UsedHeight) }
}
