package subglyph

import (
	"fmt"

	"github.com/go-text/typesetting/language"
)

// Status is the outcome of processing one character.
type Status int

const (
	// StatusRendered means the glyph was extracted and placed.
	StatusRendered Status = iota

	// StatusSpace means the character was a space and left blank.
	StatusSpace

	// StatusUnsupported means the character is not a precomposed Hangul
	// syllable and its cell was left blank.
	StatusUnsupported
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusRendered:
		return "rendered"
	case StatusSpace:
		return "space"
	case StatusUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Item records what happened to the character at (Line, Index).
type Item struct {
	Line, Index int
	Rune        rune
	Status      Status
}

// Script returns the Unicode script of the item's rune.
func (it Item) Script() language.Script {
	return language.LookupScript(it.Rune)
}

// Reason describes why an unsupported character was skipped. It is empty
// for other statuses.
func (it Item) Reason() string {
	if it.Status != StatusUnsupported {
		return ""
	}
	if it.Script() == language.Hangul {
		return "Hangul character is not a precomposed syllable"
	}
	return fmt.Sprintf("script %s is not supported", it.Script())
}

// String formats the item for humans.
func (it Item) String() string {
	s := fmt.Sprintf("%d:%d %q %s", it.Line, it.Index, it.Rune, it.Status)
	if r := it.Reason(); r != "" {
		s += " (" + r + ")"
	}
	return s
}

// Report lists per-character outcomes in input order.
type Report []Item

// Unsupported returns the items that could not be rendered.
func (r Report) Unsupported() Report {
	var out Report
	for _, it := range r {
		if it.Status == StatusUnsupported {
			out = append(out, it)
		}
	}
	return out
}

// Rendered returns the number of glyphs placed.
func (r Report) Rendered() int {
	n := 0
	for _, it := range r {
		if it.Status == StatusRendered {
			n++
		}
	}
	return n
}
