package atxt

import "testing"

func TestMeasure(t *testing.T) {
	renderer := NewRenderer()

	// two narrow glyphs on the default atlas
	width := renderer.Measure("AB")
	if width != 16 { t.Fatalf("expected width 16, got %d", width) }

	// wide glyphs advance by the full cell width
	width = renderer.Measure("あ") // above the 8192 narrow limit
	if width != 16 { t.Fatalf("expected width 16, got %d", width) }

	if renderer.Measure("") != 0 { t.Fatal("expected empty text to measure 0") }
}

func TestMeasureScaling(t *testing.T) {
	renderer := NewRenderer()
	text := "narrow and あい wide"
	base := renderer.Measure(text)
	for _, scale := range []int{ 2, 3, 7 } {
		renderer.SetScale(scale)
		if renderer.Measure(text) != base*scale {
			t.Fatalf("measure at scale %d isn't %d times the base measure", scale, scale)
		}
	}
}

func TestLineHeight(t *testing.T) {
	renderer := NewRenderer()
	if renderer.LineHeight() != 16 { t.Fatalf("expected line height 16, got %d", renderer.LineHeight()) }
	renderer.SetScale(3)
	if renderer.LineHeight() != 48 { t.Fatalf("expected line height 48, got %d", renderer.LineHeight()) }
}
