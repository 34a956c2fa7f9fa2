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

package wavegen_test

import (
	"testing"

	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/fixedpoint"
	"github.com/jetsetilly/gopherAGB/hardware/windows"
	"github.com/jetsetilly/gopherAGB/test"
	"github.com/jetsetilly/gopherAGB/wavegen"
)

func TestWave(t *testing.T) {
	w := wavegen.NewWave()
	w.SetAmplitude(8)

	deltas := make([]fixedpoint.Fixed, display.Height)
	w.Generate(deltas)

	// the wave starts at zero and stays within the amplitude
	test.Equate(t, deltas[0].Round(), 0)
	for i := range deltas {
		r := deltas[i].Round()
		test.ExpectedSuccess(t, r >= -8 && r <= 8)
	}

	// the wave has both crests and troughs
	min, max := 0, 0
	for i := range deltas {
		r := deltas[i].Round()
		if r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}
	test.ExpectedSuccess(t, min < 0)
	test.ExpectedSuccess(t, max > 0)
}

func TestCircle(t *testing.T) {
	c := wavegen.NewCircle()
	c.SetOrigin(fixedpoint.FromInt(120), fixedpoint.FromInt(80))
	c.SetRadius(20)
	test.Equate(t, c.Radius(), 20)

	deltas := make([]windows.Boundaries, display.Height)
	c.Generate(deltas)

	// widest on the origin scanline
	test.Equate(t, deltas[80][0].Round(), -20)
	test.Equate(t, deltas[80][1].Round(), 20)

	// collapsed outside the circle's vertical extent
	test.Equate(t, deltas[40][0].Round(), 0)
	test.Equate(t, deltas[40][1].Round(), 0)

	// narrower towards the edges
	test.ExpectedSuccess(t, deltas[95][1] < deltas[80][1])
	test.ExpectedSuccess(t, deltas[95][1] > 0)
}
