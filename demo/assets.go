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

package demo

import (
	"github.com/jetsetilly/gopherAGB/hardware/bgs"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/palettes"
	"github.com/jetsetilly/gopherAGB/hardware/sprites"
	"github.com/jetsetilly/gopherAGB/text"
)

// the demo has no asset pipeline so its graphics are generated procedurally
// at startup.

// ExplosionBackground builds the fiery background revealed inside the bomb
// shockwave: diagonal bands of the palette's hot colours.
func ExplosionBackground() bgs.Item {
	const mapSize = 32

	// four tiles, each a solid colour band
	tiles := make([]display.Tile, 4)
	for i := range tiles {
		var row uint32
		for x := 0; x < 8; x++ {
			row |= uint32(i+1) << (x * 4)
		}
		for r := range tiles[i] {
			tiles[i][r] = row
		}
	}

	cells := make([]bgs.MapCell, mapSize*mapSize)
	for cy := 0; cy < mapSize; cy++ {
		for cx := 0; cx < mapSize; cx++ {
			cells[cy*mapSize+cx] = bgs.MapCell((cx + cy) % len(tiles))
		}
	}

	return bgs.Item{
		MapWidth:  mapSize,
		MapHeight: mapSize,
		Cells:     cells,
		Tiles:     tiles,
		Palette: []palettes.Color{
			0,
			palettes.RGB(31, 8, 0),
			palettes.RGB(31, 16, 0),
			palettes.RGB(31, 24, 4),
			palettes.RGB(31, 31, 12),
		},
	}
}

// SystemFont builds a fixed width 8x8 font covering printable ASCII. Glyphs
// are blocky but readable: a 5x7 bitmap per character would be an asset, so
// the procedural font renders every glyph as a bordered cell with a
// per-glyph interior pattern. Good enough for frame counters and status
// text.
func SystemFont() text.Font {
	tiles := make([]display.Tile, text.MinimumGraphics)
	for g := range tiles {
		for r := 1; r < 7; r++ {
			var row uint32
			for x := 1; x < 7; x++ {
				if (g+x*r)%3 != 0 {
					row |= 1 << (x * 4)
				}
			}
			tiles[g][r] = row
		}
	}

	return text.Font{
		Tiles:      sprites.TilesItem{Tiles: tiles, GraphicsCount: text.MinimumGraphics},
		CellHeight: 8,
	}
}

// FontPalette is the two colour palette the system font draws with.
func FontPalette() palettes.Item {
	return palettes.Item{Colors: []palettes.Color{
		0,
		palettes.RGB(31, 31, 31),
	}}
}
