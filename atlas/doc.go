// The atlas subpackage describes glyph sheet geometry and contains
// helper methods to load sheet bitmaps, alongside a [Library] type to
// assist with their management if necessary.
//
// An [Atlas] only knows about cell sizes and glyph table indices; the
// sheet bitmap itself is decoded with the parsing functions in this
// package and handed to a renderer, which converts it into a drawable
// buffer for whatever surface backend is in use.
//
// Using a [Library] is actually rather uncommon, as most small games
// use a single glyph sheet and will generally be better off avoiding
// the abstraction.
package atlas
