package subglyph

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// lineEscape is the literal two-character newline marker shells pass
// through unchanged inside single quotes.
const lineEscape = `\n`

// SplitLines prepares text for [Compose]. The text is NFC-normalized so
// conjoining jamo sequences become precomposed syllables, then split on
// newlines and on the literal escape `\n`. A trailing carriage return is
// dropped from every line.
func SplitLines(text string) [][]rune {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, lineEscape, "\n")

	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(strings.TrimSuffix(p, "\r"))
	}
	return lines
}
