// Package subglyph extracts Hangul syllable glyphs from a fixed-layout
// sprite sheet and turns them into subpixel-packed rasters.
//
// # Overview
//
// The sprite sheet holds all 11,172 precomposed Hangul syllables
// (U+AC00..U+D7A3) as 12×12 cells, 588 cells per row, in code point order.
// Each glyph can be packed into a 4×12 raster in which every output pixel
// carries three source columns: the red, green and blue channels record
// whether source columns 3x, 3x+1 and 3x+2 are lit.
//
// # Quick Start
//
//	sheet, err := subglyph.LoadSheet("hangul_image.png")
//	if err != nil {
//		return err
//	}
//
//	glyph, ok := sheet.Extract('가')
//	if !ok {
//		return subglyph.ErrUnsupportedRune
//	}
//
//	preview := subglyph.Simulate(glyph.Packed)
//
// # Pipeline
//
//   - [Locate] maps a rune to its sheet [Cell]
//   - [Sheet.Extract] crops the cell and packs it
//   - [Compose] lays out lines of glyphs into one raster pair
//   - [Simulate] spreads packed pixels into RGB subpixel stripes,
//     upscales with a Lanczos filter and blurs the result
//   - [Runner] drives the three command modes and writes PNG files
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package subglyph

// Version is the current version of the library.
const Version = "0.1.0"
