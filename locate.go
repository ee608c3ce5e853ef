package subglyph

import "image"

// Cell addresses one glyph cell in the sprite sheet grid.
type Cell struct {
	Row, Col int
}

// Locate returns the sheet cell holding r. It reports false for any rune
// outside U+AC00..U+D7A3; that is a skip condition, not an error.
func Locate(r rune) (Cell, bool) {
	if r < FirstSyllable || r > LastSyllable {
		return Cell{}, false
	}
	index := int(r - FirstSyllable)
	return Cell{Row: index / SheetColumns, Col: index % SheetColumns}, true
}

// Valid reports whether c lies inside the syllable grid.
func (c Cell) Valid() bool {
	return c.Row >= 0 && c.Row < SheetRows && c.Col >= 0 && c.Col < SheetColumns
}

// Rune returns the syllable stored in c. It is the inverse of [Locate].
func (c Cell) Rune() rune {
	return FirstSyllable + rune(c.Row*SheetColumns+c.Col)
}

// Origin returns the top-left pixel of c in the sheet.
func (c Cell) Origin() image.Point {
	return image.Pt(c.Col*CellSize, c.Row*CellSize)
}

// Rect returns the pixel rectangle of c in the sheet.
func (c Cell) Rect() image.Rectangle {
	o := c.Origin()
	return image.Rectangle{Min: o, Max: o.Add(image.Pt(CellSize, CellSize))}
}

// PackedOrigin returns the top-left pixel of c in a converted sheet.
func (c Cell) PackedOrigin() image.Point {
	return image.Pt(c.Col*PackedCellWidth, c.Row*CellSize)
}
