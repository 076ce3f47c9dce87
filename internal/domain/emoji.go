package domain

import "unicode/utf8"

const (
	// ZWNJ separates adjacent regional indicator letters so they do not render as a flag
	ZWNJ = "\u200c"

	regionalIndicatorA = 0x1F1E6
	regionalIndicatorZ = 0x1F1FF
)

// Emoji is a catalog token: its glyph and its ordinal in the catalog.
// Two emojis are equal when their ordinals are equal; ordering follows the ordinal.
type Emoji struct {
	glyph   string
	ordinal int
}

// NewEmoji creates an emoji value. Only the catalog should call this.
func NewEmoji(glyph string, ordinal int) Emoji {
	return Emoji{glyph: glyph, ordinal: ordinal}
}

func (e Emoji) String() string {
	return e.glyph
}

// Ordinal returns the emoji's position in the catalog
func (e Emoji) Ordinal() int {
	return e.ordinal
}

// Less orders emojis by catalog ordinal
func (e Emoji) Less(other Emoji) bool {
	return e.ordinal < other.ordinal
}

// IsRegionalIndicator reports whether the emoji is a single regional indicator letter
func (e Emoji) IsRegionalIndicator() bool {
	r, size := utf8.DecodeRuneInString(e.glyph)
	return size == len(e.glyph) && r >= regionalIndicatorA && r <= regionalIndicatorZ
}
