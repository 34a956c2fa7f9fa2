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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopherAGB/hardware"
	"github.com/jetsetilly/gopherAGB/hardware/bgs"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/fixedpoint"
	"github.com/jetsetilly/gopherAGB/hardware/palettes"
	"github.com/jetsetilly/gopherAGB/hblank"
	"github.com/jetsetilly/gopherAGB/test"
)

// frameGrabber records the composed picture for inspection.
type frameGrabber struct {
	pixels [display.Height][display.Width][3]byte
}

func (fg *frameGrabber) NewFrame(_ int) error {
	return nil
}

func (fg *frameGrabber) NewScanline(_ int) error {
	return nil
}

func (fg *frameGrabber) SetPixel(x int, y int, red byte, green byte, blue byte) error {
	fg.pixels[y][x] = [3]byte{red, green, blue}
	return nil
}

func (fg *frameGrabber) EndRendering() error {
	return nil
}

// a full screen background showing palette colour 1 everywhere.
func solidBackground(con *hardware.Console, c palettes.Color) *bgs.Background {
	tile := display.Tile{}
	for r := range tile {
		tile[r] = 0x11111111
	}
	return con.Backgrounds.Create(bgs.Item{
		MapWidth:  32,
		MapHeight: 32,
		Cells:     make([]bgs.MapCell, 32*32),
		Tiles:     []display.Tile{tile},
		Palette:   []palettes.Color{0, c},
	})
}

func TestConsoleBackdrop(t *testing.T) {
	con := hardware.NewConsole()
	fg := &frameGrabber{}
	con.Display.AddPixelRenderer(fg)

	// palette colour 0 of the background bank is the backdrop
	con.Display.Registers.Write(display.RegisterRef{Bank: display.BankPalBG, Index: 0},
		uint16(palettes.RGB(31, 0, 0)))

	err := con.Frame()
	test.ExpectedSuccess(t, err)
	test.Equate(t, fg.pixels[0][0][0], 0xff)
	test.Equate(t, fg.pixels[display.Height-1][display.Width-1][0], 0xff)
	test.Equate(t, fg.pixels[0][0][2], 0)
}

func TestConsoleBackground(t *testing.T) {
	con := hardware.NewConsole()
	fg := &frameGrabber{}
	con.Display.AddPixelRenderer(fg)

	bg := solidBackground(con, palettes.RGB(0, 31, 0))
	defer bg.Destroy()

	err := con.Frame()
	test.ExpectedSuccess(t, err)
	test.Equate(t, fg.pixels[80][120][1], 0xff)
	test.Equate(t, fg.pixels[80][120][0], 0)

	// hiding the background uncovers the backdrop
	bg.SetVisible(false)
	err = con.Frame()
	test.ExpectedSuccess(t, err)
	test.Equate(t, fg.pixels[80][120][1], 0)
}

func TestConsoleRasterBars(t *testing.T) {
	con := hardware.NewConsole()
	fg := &frameGrabber{}
	con.Display.AddPixelRenderer(fg)

	bg := solidBackground(con, palettes.RGB(0, 31, 0))
	defer bg.Destroy()

	// shift odd scanlines half a screen to the right
	deltas := make([]fixedpoint.Fixed, display.Height)
	for i := 1; i < display.Height; i += 2 {
		deltas[i] = fixedpoint.FromInt(120)
	}
	ef := hblank.NewBGPositionEffect(con.HBlank, bg, deltas)
	defer ef.Destroy()

	err := con.Frame()
	test.ExpectedSuccess(t, err)

	// the background is uniform so shifting changes nothing visible, but
	// the scroll register must differ between adjacent scanlines during
	// scan-out. verify through the override stream instead
	ovr := con.Display.Overrides()
	test.Equate(t, len(ovr), 1)
	test.Equate(t, ovr[0].Values[0], uint16(0))
	test.Equate(t, ovr[0].Values[1], uint16(120))

	// after the frame the register file holds the last scanline's value
	test.Equate(t, con.Display.Registers.Read(bg.HOffsetRegister()), uint16(120))

	// destroying the effect restores the base value through the manager
	ef.Destroy()
	test.Equate(t, con.Display.Registers.Read(bg.HOffsetRegister()), uint16(0))
}

func TestConsoleWindowClipping(t *testing.T) {
	con := hardware.NewConsole()
	fg := &frameGrabber{}
	con.Display.AddPixelRenderer(fg)

	bg := solidBackground(con, palettes.RGB(0, 31, 0))
	defer bg.Destroy()

	hwID, ok := bg.HwID()
	test.ExpectedSuccess(t, ok)

	win := con.Windows.Internal()
	win.SetBoundaries(fixedpoint.FromInt(40), fixedpoint.FromInt(40),
		fixedpoint.FromInt(200), fixedpoint.FromInt(120))
	win.SetEnabled(true)
	con.Windows.OutsideShowBackground(hwID, false)

	err := con.Frame()
	test.ExpectedSuccess(t, err)

	// inside the window the background shows; outside it is clipped to the
	// backdrop
	test.Equate(t, fg.pixels[80][120][1], 0xff)
	test.Equate(t, fg.pixels[80][10][1], 0)
	test.Equate(t, fg.pixels[10][120][1], 0)
	test.Equate(t, fg.pixels[130][120][1], 0)
}
