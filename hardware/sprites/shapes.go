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

import "github.com/jetsetilly/gopherAGB/curated"

// Shape of a hardware sprite.
type Shape int

// List of valid Shape values.
const (
	Square Shape = iota
	Wide
	Tall
)

// Size of a hardware sprite. The pixel dimensions depend on the shape.
type Size int

// List of valid Size values.
const (
	Small Size = iota
	Normal
	Big
	Huge
)

// pixel dimensions indexed by shape and size.
var shapeDims = [3][4][2]int{
	Square: {{8, 8}, {16, 16}, {32, 32}, {64, 64}},
	Wide:   {{16, 8}, {32, 8}, {32, 16}, {64, 32}},
	Tall:   {{8, 16}, {8, 32}, {16, 32}, {32, 64}},
}

// Dimensions returns the pixel width and height of a sprite with the given
// shape and size.
func Dimensions(shape Shape, size Size) (int, int) {
	if shape < Square || shape > Tall || size < Small || size > Huge {
		panic(curated.Errorf("sprites: invalid shape/size: %d/%d", shape, size))
	}
	d := shapeDims[shape][size]
	return d[0], d[1]
}

// TileCount returns the number of 4bpp tiles a sprite with the given shape
// and size occupies.
func TileCount(shape Shape, size Size) int {
	w, h := Dimensions(shape, size)
	return (w / 8) * (h / 8)
}
