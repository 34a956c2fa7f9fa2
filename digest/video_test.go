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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopherAGB/digest"
	"github.com/jetsetilly/gopherAGB/hardware"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/palettes"
	"github.com/jetsetilly/gopherAGB/test"
)

func renderFrames(t *testing.T, backdrop palettes.Color, numFrames int) string {
	t.Helper()

	con := hardware.NewConsole()
	dig := digest.NewVideo()
	con.Display.AddPixelRenderer(dig)

	con.Display.Registers.Write(display.RegisterRef{Bank: display.BankPalBG, Index: 0},
		uint16(backdrop))

	err := con.RunForFrameCount(numFrames, func(_ int) (bool, error) {
		return true, nil
	})
	test.ExpectedSuccess(t, err)

	return dig.Hash()
}

func TestVideoDigest(t *testing.T) {
	// the same video sequence always produces the same fingerprint
	a := renderFrames(t, palettes.RGB(31, 0, 0), 5)
	b := renderFrames(t, palettes.RGB(31, 0, 0), 5)
	test.Equate(t, a, b)

	// a different sequence produces a different fingerprint
	c := renderFrames(t, palettes.RGB(0, 31, 0), 5)
	test.ExpectedSuccess(t, a != c)

	// fingerprints are chained so sequence length matters too
	d := renderFrames(t, palettes.RGB(31, 0, 0), 6)
	test.ExpectedSuccess(t, a != d)
}

func TestVideoDigestReset(t *testing.T) {
	con := hardware.NewConsole()
	dig := digest.NewVideo()
	con.Display.AddPixelRenderer(dig)

	test.ExpectedSuccess(t, con.Frame())
	test.ExpectedSuccess(t, con.Frame())
	test.ExpectedSuccess(t, dig.Hash() != "0000000000000000000000000000000000000000")

	dig.ResetDigest()
	test.Equate(t, dig.Hash(), "0000000000000000000000000000000000000000")
}
