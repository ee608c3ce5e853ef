package subglyph

import (
	"fmt"
	"image"

	"github.com/gogpu/subglyph/internal/imageio"
)

// Sprite sheet geometry. The values describe a pre-generated asset and
// must change together with it.
const (
	// CellSize is the width and height of one glyph cell in pixels.
	CellSize = 12

	// SheetColumns is the number of cells per sheet row.
	SheetColumns = 588

	// SyllableCount is the number of precomposed Hangul syllables.
	SyllableCount = 11172

	// SheetRows is the number of cell rows.
	SheetRows = SyllableCount / SheetColumns

	// SheetWidth and SheetHeight are the minimum sheet dimensions.
	SheetWidth  = SheetColumns * CellSize
	SheetHeight = SheetRows * CellSize

	// SubpixelsPerPixel is the number of source columns folded into one
	// packed pixel.
	SubpixelsPerPixel = 3

	// PackedCellWidth is the width of a packed glyph.
	PackedCellWidth = CellSize / SubpixelsPerPixel

	// FirstSyllable and LastSyllable bound the supported code points.
	FirstSyllable rune = 0xAC00
	LastSyllable  rune = FirstSyllable + SyllableCount - 1
)

// Sheet is a decoded sprite sheet. Pixels are stored opaque: the sheet is
// treated as 24-bit RGB and any source alpha is discarded.
//
// A Sheet is never modified after creation.
type Sheet struct {
	img *image.NRGBA
}

// NewSheet validates img against the glyph grid and copies it into a new
// Sheet. Images larger than the grid are accepted; only the grid area is
// addressed.
func NewSheet(img image.Image) (*Sheet, error) {
	b := img.Bounds()
	if b.Dx() < SheetWidth || b.Dy() < SheetHeight {
		return nil, fmt.Errorf("%w: got %dx%d, need at least %dx%d",
			ErrSheetTooSmall, b.Dx(), b.Dy(), SheetWidth, SheetHeight)
	}

	dst := imageio.ToNRGBA(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}

	Logger().Debug("sprite sheet ready", "width", b.Dx(), "height", b.Dy())
	return &Sheet{img: dst}, nil
}

// LoadSheet reads and validates a sprite sheet file.
func LoadSheet(path string) (*Sheet, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return nil, fmt.Errorf("subglyph: load sheet: %w", err)
	}
	return NewSheet(img)
}

// Bounds returns the sheet bounds.
func (s *Sheet) Bounds() image.Rectangle {
	return s.img.Rect
}

// Convert packs the whole sheet: the result is one third of the sheet's
// width and the same height, with every pixel built by [Pack]'s rule.
func (s *Sheet) Convert() *image.NRGBA {
	out := Pack(s.img)
	Logger().Debug("sheet converted", "width", out.Rect.Dx(), "height", out.Rect.Dy())
	return out
}
