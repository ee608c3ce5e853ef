package subglyph

import (
	"image"

	"golang.org/x/image/draw"
)

// Composite holds a block of glyphs laid out line by line.
type Composite struct {
	// Original is (CellSize·maxLen)×(CellSize·lines).
	Original *image.NRGBA

	// Packed is (PackedCellWidth·maxLen)×(CellSize·lines).
	Packed *image.NRGBA

	// Report lists every character of the input in order.
	Report Report
}

// Compose lays out lines of characters. The glyph for lines[l][i] is placed
// at (CellSize·i, CellSize·l) in Original and at (PackedCellWidth·i,
// CellSize·l) in Packed. Both rasters start opaque black; spaces and
// unsupported characters leave their cell untouched.
func Compose(s *Sheet, lines [][]rune) *Composite {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	c := &Composite{
		Original: blank(CellSize*maxLen, CellSize*len(lines)),
		Packed:   blank(PackedCellWidth*maxLen, CellSize*len(lines)),
	}

	for l, line := range lines {
		for i, r := range line {
			item := Item{Line: l, Index: i, Rune: r}

			if r == ' ' {
				item.Status = StatusSpace
				c.Report = append(c.Report, item)
				continue
			}

			g, ok := s.Extract(r)
			if !ok {
				item.Status = StatusUnsupported
				c.Report = append(c.Report, item)
				Logger().Warn("unsupported character",
					"rune", string(r), "line", l, "index", i, "script", item.Script().String())
				continue
			}

			y := CellSize * l
			draw.Copy(c.Original, image.Pt(CellSize*i, y), g.Original, g.Original.Bounds(), draw.Src, nil)
			draw.Copy(c.Packed, image.Pt(PackedCellWidth*i, y), g.Packed, g.Packed.Bounds(), draw.Src, nil)

			item.Status = StatusRendered
			c.Report = append(c.Report, item)
		}
	}

	Logger().Debug("composite ready",
		"lines", len(lines), "columns", maxLen, "rendered", c.Report.Rendered())
	return c
}

// blank returns an opaque black w×h raster.
func blank(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)
	return img
}
