// atxt is a package for rendering unicode text from fixed-cell bitmap
// glyph atlases, designed to be used mainly with the Ebitengine game
// engine (a CPU image backend is included too).
//
// Instead of parsing vector fonts, atxt works with a single glyph
// sheet: a bitmap arranged as a grid of equally sized cells, where
// each code point maps to one cell either directly or through an
// explicit glyph table. On top of that it provides deterministic
// greedy word wrapping with overflow pagination, color tinting,
// pixel-exact integer upscaling and two-pass drop shadows.
//
// Common usage only takes a few calls. First, create a [Renderer]
// and wire its surface and glyph sheet:
//   renderer := atxt.NewRenderer()
//   renderer.Setup(atxt.FromEbitenImage(canvas), assets, "atlas.png",
//       func(err error) { ready = (err == nil) })
//
// Then, once ready, configure and draw:
//   renderer.SetColor(color.RGBA{80, 220, 120, 255})
//   renderer.SetScale(2)
//   missing := renderer.Draw("Hello world!", x, y)
//
// Text that doesn't fit the wrap region is returned instead of being
// dropped, so callers can paginate by drawing the returned string on
// the next page or screen.
package atxt
