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

package display

// Tile is one 8x8 pixel tile of 4bpp graphics data. One uint32 per row, one
// nibble per pixel. The leftmost pixel of a row is the lowest nibble.
type Tile [8]uint32

// Pixel returns the palette index of the pixel at (x, y) within the tile.
func (t Tile) Pixel(x int, y int) int {
	return int(t[y]>>(x*4)) & 0x0f
}
