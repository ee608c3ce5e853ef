package subglyph

import (
	"image"

	"golang.org/x/image/draw"
)

// Glyph is one syllable cut from the sheet.
type Glyph struct {
	Rune rune
	Cell Cell

	// Original is an unmodified CellSize×CellSize copy of the cell.
	Original *image.NRGBA

	// Packed is the PackedCellWidth×CellSize binarized form of the cell.
	Packed *image.NRGBA
}

// Extract crops the glyph for r. It reports false, without touching the
// sheet, when r is not a precomposed Hangul syllable.
func (s *Sheet) Extract(r rune) (Glyph, bool) {
	c, ok := Locate(r)
	if !ok {
		return Glyph{}, false
	}
	return s.ExtractCell(c)
}

// ExtractCell crops the glyph stored in c. It reports false when c lies
// outside the syllable grid.
func (s *Sheet) ExtractCell(c Cell) (Glyph, bool) {
	if !c.Valid() {
		return Glyph{}, false
	}

	rect := c.Rect()
	original := image.NewNRGBA(image.Rect(0, 0, CellSize, CellSize))
	draw.Copy(original, image.Point{}, s.img, rect, draw.Src, nil)

	g := Glyph{
		Rune:     c.Rune(),
		Cell:     c,
		Original: original,
		Packed:   Pack(s.img.SubImage(rect)),
	}
	Logger().Debug("glyph extracted", "rune", string(g.Rune), "row", c.Row, "col", c.Col)
	return g, true
}
