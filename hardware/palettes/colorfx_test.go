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

package palettes_test

import (
	"testing"

	"github.com/jetsetilly/gopherAGB/hardware/fixedpoint"
	"github.com/jetsetilly/gopherAGB/hardware/palettes"
	"github.com/jetsetilly/gopherAGB/test"
)

func TestBrightness(t *testing.T) {
	colors := []palettes.Color{0, palettes.RGB(10, 20, 30)}

	// zero intensity is a no-op
	palettes.Brightness(colors, 0)
	test.Equate(t, colors[1] == palettes.RGB(10, 20, 30), true)

	// full intensity saturates every channel
	palettes.Brightness(colors, fixedpoint.FromInt(1))
	test.Equate(t, colors[0] == palettes.RGB(31, 31, 31), true)
	test.Equate(t, colors[1] == palettes.RGB(31, 31, 31), true)
}

func TestInvert(t *testing.T) {
	colors := []palettes.Color{palettes.RGB(31, 0, 12)}
	palettes.Invert(colors)
	test.Equate(t, colors[0] == palettes.RGB(0, 31, 19), true)

	// inverting twice is the identity
	palettes.Invert(colors)
	test.Equate(t, colors[0] == palettes.RGB(31, 0, 12), true)
}

func TestGrayscale(t *testing.T) {
	colors := []palettes.Color{palettes.RGB(31, 0, 0)}
	palettes.Grayscale(colors, fixedpoint.FromInt(1))

	// a fully grayed colour has equal channels
	test.Equate(t, colors[0].Red(), colors[0].Green())
	test.Equate(t, colors[0].Green(), colors[0].Blue())
}

func TestFade(t *testing.T) {
	colors := []palettes.Color{palettes.RGB(31, 0, 0), palettes.RGB(0, 31, 0)}
	target := palettes.RGB(10, 10, 10)

	// full intensity fade replaces every colour with the fade colour
	palettes.Fade(colors, target, fixedpoint.FromInt(1))
	test.Equate(t, colors[0] == target, true)
	test.Equate(t, colors[1] == target, true)
}

func TestRotate(t *testing.T) {
	span := func() []palettes.Color {
		return []palettes.Color{1, 2, 3, 4}
	}

	colors := span()
	palettes.Rotate(colors, 1)
	test.Equate(t, colors[0] == 4, true)
	test.Equate(t, colors[1] == 1, true)
	test.Equate(t, colors[3] == 3, true)

	colors = span()
	palettes.Rotate(colors, -1)
	test.Equate(t, colors[0] == 2, true)
	test.Equate(t, colors[3] == 1, true)

	colors = span()
	palettes.Rotate(colors, 0)
	test.Equate(t, colors[0] == 1, true)
}

func TestRotateBadCount(t *testing.T) {
	defer test.ExpectedPanic(t)
	colors := []palettes.Color{1, 2, 3, 4}
	palettes.Rotate(colors, 4)
}

func TestBadIntensity(t *testing.T) {
	defer test.ExpectedPanic(t)
	colors := []palettes.Color{1}
	palettes.Brightness(colors, fixedpoint.FromFloat(1.5))
}

func TestEmptySpan(t *testing.T) {
	defer test.ExpectedPanic(t)
	palettes.Invert(nil)
}
