// This file is part of GopherAGB.
//
// GopherAGB is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAGB is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAGB.  If not, see <https://www.gnu.org/licenses/>.

package text

import (
	"unicode/utf8"

	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/sprites"
)

// MinimumGraphics is the number of glyphs every font must provide: one for
// each printable ASCII character from '!' to '~'. Extended characters map
// onto the glyphs that follow.
const MinimumGraphics = 94

// Font is an immutable font asset, normally produced by an offline tool.
//
// The tile strip holds one graphic per glyph: one tile for an 8 pixel cell
// height, two stacked tiles for a 16 pixel cell height. Glyph order is
// printable ASCII from '!' followed by the extended characters in the order
// they are listed.
type Font struct {
	// Tiles is the font's glyph graphics, one tile wide.
	Tiles sprites.TilesItem

	// CellHeight is the pixel height of every glyph: 8 or 16.
	CellHeight int

	// Widths is the per-glyph pixel width table of a proportional font.
	// Index 0 holds the space width; the width of glyph g is at index g+1.
	// Empty for a fixed width font, where every glyph is 8 pixels wide.
	Widths []int8

	// ExtendedChars lists the UTF-8 characters the font provides beyond
	// printable ASCII, one character per entry, in glyph order.
	ExtendedChars []string

	// SpaceBetweenCharacters is added to every glyph advance. May be
	// negative for tightly kerned fonts.
	SpaceBetweenCharacters int
}

// Proportional reports whether the font carries a per-glyph width table.
func (fnt Font) Proportional() bool {
	return len(fnt.Widths) > 0
}

// validate panics if the font's tables are inconsistent.
func (fnt Font) validate() {
	if fnt.CellHeight != 8 && fnt.CellHeight != 16 {
		panic(curated.Errorf("text: invalid font cell height: %d", fnt.CellHeight))
	}
	if fnt.Tiles.TilesPerGraphic() != fnt.CellHeight/8 {
		panic(curated.Errorf("text: font tiles do not match cell height: %d - %d",
			fnt.Tiles.TilesPerGraphic(), fnt.CellHeight/8))
	}
	if fnt.Tiles.GraphicsCount != MinimumGraphics+len(fnt.ExtendedChars) {
		panic(curated.Errorf("text: font glyph count does not match extended characters: %d - %d",
			fnt.Tiles.GraphicsCount, MinimumGraphics+len(fnt.ExtendedChars)))
	}
	if len(fnt.Widths) > 0 {
		if len(fnt.Widths) != fnt.Tiles.GraphicsCount+1 {
			panic(curated.Errorf("text: font width table does not match glyph count: %d - %d",
				len(fnt.Widths), fnt.Tiles.GraphicsCount+1))
		}
		for i, w := range fnt.Widths {
			if w < 0 || w > 8 {
				panic(curated.Errorf("text: invalid glyph width: %d (glyph %d)", w, i))
			}
		}
	}
}

// buildExtendedMap maps each extended character's code point to its glyph
// index. Every entry must be exactly one code point.
func (fnt Font) buildExtendedMap() map[rune]int {
	m := make(map[rune]int, len(fnt.ExtendedChars))
	for i, s := range fnt.ExtendedChars {
		r, sz := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError || sz != len(s) {
			panic(curated.Errorf("text: invalid extended character entry: %#v", s))
		}
		m[r] = MinimumGraphics + i
	}
	return m
}
