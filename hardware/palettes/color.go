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

package palettes

import "github.com/jetsetilly/gopherAGB/curated"

// Color is a 15 bit hardware colour. Five bits per channel, red in the
// lowest bits.
type Color uint16

// RGB builds a Color from components in the range [0..31]. Out of range
// components are a programming error.
func RGB(red int, green int, blue int) Color {
	if red < 0 || red > 31 || green < 0 || green > 31 || blue < 0 || blue > 31 {
		panic(curated.Errorf("palettes: invalid colour components: %d, %d, %d", red, green, blue))
	}
	return Color(red | green<<5 | blue<<10)
}

// Red component of the colour in the range [0..31].
func (c Color) Red() int {
	return int(c) & 0x1f
}

// Green component of the colour in the range [0..31].
func (c Color) Green() int {
	return int(c>>5) & 0x1f
}

// Blue component of the colour in the range [0..31].
func (c Color) Blue() int {
	return int(c>>10) & 0x1f
}
