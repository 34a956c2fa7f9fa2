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

import (
	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/fixedpoint"
)

// The colour effect functions transform colour spans in place. They are
// typically used to prepare the per-scanline colour buffers consumed by a
// palette colour h-blank effect.
//
// Intensity arguments are fixed point values in the range [0..1]. An out of
// range intensity or an empty span is a programming error and panics.

// intensity argument reduced to the 5 bit value used by the arithmetic.
func fxValue(intensity fixedpoint.Fixed, name string) int {
	if intensity < 0 || intensity > fixedpoint.FromInt(1) {
		panic(curated.Errorf("palettes: invalid %s intensity: %s", name, intensity))
	}
	return int(intensity >> (fixedpoint.FracBits - 5))
}

func checkColors(colors []Color) {
	if len(colors) == 0 || len(colors) > MaxColors {
		panic(curated.Errorf("palettes: invalid colours count: %d", len(colors)))
	}
}

func clamp5(v int) int {
	if v < 0 {
		return 0
	}
	if v > 31 {
		return 31
	}
	return v
}

// Brightness raises every channel of every colour towards white.
func Brightness(colors []Color, intensity fixedpoint.Fixed) {
	checkColors(colors)
	v := fxValue(intensity, "brightness")
	if v == 0 {
		return
	}
	for i, c := range colors {
		colors[i] = RGB(clamp5(c.Red()+v), clamp5(c.Green()+v), clamp5(c.Blue()+v))
	}
}

// Contrast scales every colour away from mid grey.
func Contrast(colors []Color, intensity fixedpoint.Fixed) {
	checkColors(colors)
	v := fxValue(intensity, "contrast")
	if v == 0 {
		return
	}
	for i, c := range colors {
		colors[i] = RGB(
			clamp5(16+(c.Red()-16)*(31+v)/31),
			clamp5(16+(c.Green()-16)*(31+v)/31),
			clamp5(16+(c.Blue()-16)*(31+v)/31))
	}
}

// Intensity saturates every colour, pushing each channel away from the
// colour's own luminance.
func Intensity(colors []Color, intensity fixedpoint.Fixed) {
	checkColors(colors)
	v := fxValue(intensity, "intensity")
	if v == 0 {
		return
	}
	for i, c := range colors {
		l := (c.Red() + c.Green() + c.Blue()) / 3
		colors[i] = RGB(
			clamp5(l+(c.Red()-l)*(31+v)/31),
			clamp5(l+(c.Green()-l)*(31+v)/31),
			clamp5(l+(c.Blue()-l)*(31+v)/31))
	}
}

// Invert replaces every colour with its complement.
func Invert(colors []Color) {
	checkColors(colors)
	for i, c := range colors {
		colors[i] = RGB(31-c.Red(), 31-c.Green(), 31-c.Blue())
	}
}

// Grayscale mixes every colour towards its luminance.
func Grayscale(colors []Color, intensity fixedpoint.Fixed) {
	checkColors(colors)
	v := fxValue(intensity, "grayscale")
	if v == 0 {
		return
	}
	for i, c := range colors {
		// integer approximation of rec.601 luma
		l := (c.Red()*5 + c.Green()*9 + c.Blue()*2) / 16
		colors[i] = RGB(
			c.Red()+(l-c.Red())*v/31,
			c.Green()+(l-c.Green())*v/31,
			c.Blue()+(l-c.Blue())*v/31)
	}
}

// HueShift rotates every colour's channels towards the next channel.
func HueShift(colors []Color, intensity fixedpoint.Fixed) {
	checkColors(colors)
	v := fxValue(intensity, "hue shift")
	if v == 0 {
		return
	}
	for i, c := range colors {
		r, g, b := c.Red(), c.Green(), c.Blue()
		colors[i] = RGB(
			r+(b-r)*v/31,
			g+(r-g)*v/31,
			b+(g-b)*v/31)
	}
}

// Fade mixes every colour towards fadeColor.
func Fade(colors []Color, fadeColor Color, intensity fixedpoint.Fixed) {
	checkColors(colors)
	v := fxValue(intensity, "fade")
	if v == 0 {
		return
	}
	for i, c := range colors {
		colors[i] = RGB(
			c.Red()+(fadeColor.Red()-c.Red())*v/31,
			c.Green()+(fadeColor.Green()-c.Green())*v/31,
			c.Blue()+(fadeColor.Blue()-c.Blue())*v/31)
	}
}

// Rotate shifts the span of colours by count places, wrapping at the ends.
// The magnitude of count must be less than the length of the span.
//
// The scratch buffer is sized to the whole of palette RAM, the largest span
// checkColors will admit, so the copy can never truncate.
func Rotate(colors []Color, count int) {
	checkColors(colors)
	if count >= len(colors) || -count >= len(colors) {
		panic(curated.Errorf("palettes: invalid rotate count: %d - %d", count, len(colors)))
	}
	if count == 0 {
		return
	}

	var scratch [MaxColors]Color
	copy(scratch[:], colors)

	n := len(colors)
	for i := 0; i < n; i++ {
		j := (i + count) % n
		if j < 0 {
			j += n
		}
		colors[j] = scratch[i]
	}
}
