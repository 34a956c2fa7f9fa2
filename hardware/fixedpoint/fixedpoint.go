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

// Package fixedpoint is the signed 20.12 fixed point number type used for
// positions and deltas throughout the engine. The console has no floating
// point unit so all sub-pixel arithmetic is done in this format.
package fixedpoint

import "fmt"

// FracBits is the number of fractional bits in a Fixed value.
const FracBits = 12

// Fixed is a signed fixed point number with FracBits fractional bits.
type Fixed int32

// FromInt converts an integer to a Fixed value.
func FromInt(v int) Fixed {
	return Fixed(v << FracBits)
}

// FromFloat converts a float to a Fixed value. For use at setup time; the
// per-frame paths never touch floating point.
func FromFloat(v float64) Fixed {
	return Fixed(v * (1 << FracBits))
}

// Int returns the integer part of the value, truncating towards negative
// infinity.
func (f Fixed) Int() int {
	return int(f >> FracBits)
}

// Round returns the nearest integer to the value.
func (f Fixed) Round() int {
	return int((f + (1 << (FracBits - 1))) >> FracBits)
}

// Mul multiplies two Fixed values.
func (f Fixed) Mul(g Fixed) Fixed {
	return Fixed((int64(f) * int64(g)) >> FracBits)
}

// Div divides one Fixed value by another.
func (f Fixed) Div(g Fixed) Fixed {
	return Fixed((int64(f) << FracBits) / int64(g))
}

func (f Fixed) String() string {
	return fmt.Sprintf("%.4f", float64(f)/(1<<FracBits))
}
