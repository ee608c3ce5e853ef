// Command subglyph extracts Hangul glyphs from a sprite sheet and writes
// packed and simulated subpixel renderings.
//
// Usage:
//
//	subglyph --all
//	subglyph --char 가
//	subglyph --text '안녕하세요\n반갑습니다'
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/kong"

	"github.com/gogpu/subglyph"
)

const description = "Extract Hangul syllables from a 12x12 sprite sheet, pack them " +
	"into RGB subpixel columns and render a simulated LCD preview."

// CLI is the command line grammar. Exactly one of --all, --char and
// --text must be given.
type CLI struct {
	All   bool     `xor:"mode" required:"" help:"Convert the whole sheet."`
	Char  string   `xor:"mode" required:"" placeholder:"SYLLABLE" help:"Extract a single syllable."`
	Text  string   `xor:"mode" required:"" help:"Compose a block of text. Separate lines with a newline or a literal \\n."`
	Words []string `arg:"" optional:"" help:"Extra words appended to --text, separated by spaces."`

	Sheet   string `default:"hangul_image.png" env:"SUBGLYPH_SHEET" help:"Sprite sheet image."`
	Out     string `default:"." env:"SUBGLYPH_OUT" type:"existingdir" help:"Directory to write images to."`
	Verbose bool   `short:"v" help:"Enable debug logging."`
}

// Validate rejects positional words outside text mode.
func (c *CLI) Validate() error {
	if len(c.Words) > 0 && c.Text == "" {
		return errors.New("extra arguments are only accepted with --text")
	}
	return nil
}

// text returns the full text-mode input.
func (c *CLI) text() string {
	return strings.Join(append([]string{c.Text}, c.Words...), " ")
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("subglyph"),
		kong.Description(description),
		kong.UsageOnError(),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	_, err = parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	os.Exit(run(&cli, os.Stdout, os.Stderr))
}

// run executes the selected mode and returns the process exit code.
func run(cli *CLI, stdout, stderr io.Writer) int {
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	subglyph.SetLogger(logger)

	sheet, err := subglyph.LoadSheet(cli.Sheet)
	if err != nil {
		logger.Error("cannot open sprite sheet", "path", cli.Sheet, "err", err)
		return 1
	}

	runner := &subglyph.Runner{Sheet: sheet, OutDir: cli.Out}

	var res subglyph.Result
	switch {
	case cli.All:
		res = runner.RunAll()

	case cli.Char != "":
		ch, _ := utf8.DecodeRuneInString(cli.Char)
		res, err = runner.RunChar(ch)
		if err != nil {
			fmt.Fprintf(stdout, "failed to process %q\n", ch)
			logger.Error("single character mode", "err", err)
			return 1
		}

	case cli.Text != "":
		res = runner.RunText(cli.text())

	default:
		logger.Error("invalid invocation", "err", subglyph.ErrNoCharacter)
		return 2
	}

	printResult(stdout, res)
	if err := res.Err(); err != nil {
		return 1
	}
	return 0
}

func printResult(w io.Writer, res subglyph.Result) {
	for _, it := range res.Report {
		switch it.Status {
		case subglyph.StatusRendered:
			fmt.Fprintf(w, "processed %q\n", it.Rune)
		case subglyph.StatusUnsupported:
			fmt.Fprintf(w, "failed to process %q: %s\n", it.Rune, it.Reason())
		}
	}
	for _, f := range res.Files {
		if f.Err != nil {
			fmt.Fprintf(w, "error: %v\n", f.Err)
			continue
		}
		fmt.Fprintf(w, "saved %s\n", f.Path)
	}
}
