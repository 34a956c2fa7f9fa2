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

package sprites

import (
	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/display"
)

// CopyTiles copies whole tiles from src into dst. The destination must be
// at least as large as the source.
func CopyTiles(src []display.Tile, dst []display.Tile) {
	if len(dst) < len(src) {
		panic(curated.Errorf("sprites: tile copy out of range: %d - %d", len(src), len(dst)))
	}
	copy(dst, src)
}

// ClearTiles zeroes every tile in dst.
func ClearTiles(dst []display.Tile) {
	for i := range dst {
		dst[i] = display.Tile{}
	}
}

// PlotTiles draws a strip of pixels from a one-tile-wide source column into
// a row of destination tiles at an arbitrary pixel column.
//
// The destination column space is linear across the tiles of dst: tile t
// covers columns [t*8, t*8+8). A plot that is not aligned to a tile
// boundary lands across two adjacent tiles.
//
//	width  - width of the strip in pixels [1..8]
//	src    - vertical strip of tiles, one tile wide
//	srcY   - pixel row in the source strip the strip is read from
//	dstCol - pixel column in dst the strip is drawn at
//
// The plot is bounds checked; an out of range source row or destination
// column is a programming error.
func PlotTiles(width int, src []display.Tile, srcY int, dstCol int, dst []display.Tile) {
	if width <= 0 || width > 8 {
		panic(curated.Errorf("sprites: invalid plot width: %d", width))
	}
	if srcY < 0 || srcY+8 > len(src)*8 {
		panic(curated.Errorf("sprites: plot source out of range: %d - %d", srcY, len(src)*8))
	}
	if dstCol < 0 || dstCol+width > len(dst)*8 {
		panic(curated.Errorf("sprites: plot destination out of range: %d - %d", dstCol, len(dst)*8))
	}

	mask := uint32(uint64(1)<<(4*width) - 1)
	dt := dstCol / 8
	shift := (dstCol % 8) * 4

	for r := 0; r < 8; r++ {
		sy := srcY + r
		row := src[sy/8][sy%8] & mask

		dst[dt][r] |= row << shift
		if shift != 0 && dt+1 < len(dst) {
			dst[dt+1][r] |= row >> (32 - shift)
		}
	}
}
