package subglyph

import "errors"

var (
	// ErrSheetTooSmall is returned when an image cannot hold the full
	// syllable grid.
	ErrSheetTooSmall = errors.New("subglyph: sprite sheet smaller than glyph grid")

	// ErrUnsupportedRune is returned when a character is not a precomposed
	// Hangul syllable.
	ErrUnsupportedRune = errors.New("subglyph: unsupported character")

	// ErrNoCharacter is returned when single-character or text mode gets
	// an empty argument.
	ErrNoCharacter = errors.New("subglyph: no character given")
)
