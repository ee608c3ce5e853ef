package subglyph

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/gogpu/subglyph/internal/imageio"
)

// Output file names.
const (
	AllGlyphsFile = "all_glyphs_processed.png"

	TextOriginalFile  = "text_original.png"
	TextProcessedFile = "text_processed.png"
	TextSimulatedFile = "text_simulated.png"
)

// CharFiles returns the original, processed and simulated file names for
// single-character mode.
func CharFiles(r rune) (original, processed, simulated string) {
	s := string(r)
	return s + "_original.png", s + "_processed.png", s + "_simulated.png"
}

// FileResult is the outcome of writing one output file.
type FileResult struct {
	Path string
	Err  error
}

// Result collects what a run produced.
type Result struct {
	Files  []FileResult
	Report Report
}

// Err joins the errors of all failed writes.
func (r Result) Err() error {
	var errs []error
	for _, f := range r.Files {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return errors.Join(errs...)
}

// Runner executes the batch, single-character and text modes against one
// sheet. Each mode writes its rasters sequentially; a failed write is
// recorded and the remaining writes still happen.
type Runner struct {
	Sheet *Sheet

	// OutDir is the directory files are written to. Empty means the
	// current directory.
	OutDir string

	// Save writes one raster. Nil means PNG via imageio.SavePNG.
	Save func(path string, img image.Image) error
}

// RunAll converts the whole sheet and writes AllGlyphsFile.
func (r *Runner) RunAll() Result {
	var res Result
	res.Files = append(res.Files, r.save(AllGlyphsFile, r.Sheet.Convert()))
	return res
}

// RunChar writes the original, packed and simulated rasters for ch. When ch
// is not a supported syllable nothing is written and the returned error
// wraps ErrUnsupportedRune.
func (r *Runner) RunChar(ch rune) (Result, error) {
	item := Item{Rune: ch, Status: StatusRendered}

	g, ok := r.Sheet.Extract(ch)
	if !ok {
		item.Status = StatusUnsupported
		Logger().Warn("unsupported character", "rune", string(ch), "script", item.Script().String())
		return Result{Report: Report{item}}, fmt.Errorf("%w: %q (%s)", ErrUnsupportedRune, ch, item.Reason())
	}

	original, processed, simulated := CharFiles(ch)
	res := Result{Report: Report{item}}
	res.Files = append(res.Files,
		r.save(original, g.Original),
		r.save(processed, g.Packed),
		r.save(simulated, Simulate(g.Packed)),
	)
	return res, nil
}

// RunText composes text (see [SplitLines]) and writes the combined
// original, packed and simulated rasters. Unsupported characters are
// reported and skipped.
func (r *Runner) RunText(text string) Result {
	c := Compose(r.Sheet, SplitLines(text))

	res := Result{Report: c.Report}
	res.Files = append(res.Files,
		r.save(TextOriginalFile, c.Original),
		r.save(TextProcessedFile, c.Packed),
		r.save(TextSimulatedFile, Simulate(c.Packed)),
	)
	return res
}

func (r *Runner) save(name string, img image.Image) FileResult {
	path := filepath.Join(r.OutDir, name)

	save := r.Save
	if save == nil {
		save = imageio.SavePNG
	}

	if err := save(path, img); err != nil {
		Logger().Warn("write failed", "path", path, "err", err)
		return FileResult{Path: path, Err: fmt.Errorf("subglyph: write %s: %w", path, err)}
	}

	Logger().Info("wrote file", "path", path,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return FileResult{Path: path}
}
