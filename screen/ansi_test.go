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

package screen_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/screen"
	"github.com/jetsetilly/gopherAGB/test"
)

func renderSolid(t *testing.T, com *screen.Composer, red byte, green byte, blue byte) {
	t.Helper()

	test.ExpectedSuccess(t, com.NewFrame(1))
	for y := 0; y < display.Height; y++ {
		test.ExpectedSuccess(t, com.NewScanline(y))
		for x := 0; x < display.Width; x++ {
			test.ExpectedSuccess(t, com.SetPixel(x, y, red, green, blue))
		}
	}
	test.ExpectedSuccess(t, com.EndRendering())
}

func TestComposer(t *testing.T) {
	output := &bytes.Buffer{}
	com := screen.NewComposer(output)

	// first frame clears the screen and draws every cell
	renderSolid(t, com, 255, 0, 0)
	s := output.String()
	test.ExpectedSuccess(t, strings.HasPrefix(s, screen.ClearScreen))
	test.Equate(t, strings.Count(s, "▀"), display.Width*display.Height/2)
	test.ExpectedSuccess(t, strings.Contains(s, "38;2;255;0;0"))

	// an identical frame emits no cells at all
	output.Reset()
	renderSolid(t, com, 255, 0, 0)
	test.Equate(t, strings.Count(output.String(), "▀"), 0)

	// a single changed pixel redraws just that cell
	output.Reset()
	test.ExpectedSuccess(t, com.NewFrame(3))
	test.ExpectedSuccess(t, com.SetPixel(10, 20, 0, 255, 0))
	test.ExpectedSuccess(t, com.EndRendering())
	s = output.String()
	test.Equate(t, strings.Count(s, "▀"), 1)

	// pixel (10,20) is the bottom half of cell row 10 (1-based row 11)
	test.ExpectedSuccess(t, strings.Contains(s, screen.MoveTo(11, 11)))
	test.ExpectedSuccess(t, strings.Contains(s, "48;2;0;255;0"))
}

func TestParseEvents(t *testing.T) {
	ev := screen.ParseEvents([]byte("q"))
	test.Equate(t, len(ev), 1)
	test.Equate(t, ev[0].Type == screen.EventQuit, true)

	ev = screen.ParseEvents([]byte{3})
	test.Equate(t, len(ev), 1)
	test.Equate(t, ev[0].Type == screen.EventQuit, true)

	ev = screen.ParseEvents([]byte(" "))
	test.Equate(t, len(ev), 1)
	test.Equate(t, ev[0].Type == screen.EventTrigger, true)
	test.Equate(t, ev[0].X, display.Width/2)
	test.Equate(t, ev[0].Y, display.Height/2)

	// unrecognised input produces nothing
	ev = screen.ParseEvents([]byte("zx"))
	test.Equate(t, len(ev), 0)
}
