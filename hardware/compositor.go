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

package hardware

import (
	"github.com/jetsetilly/gopherAGB/hardware/display"
)

// compositor implements display.LineRenderer. It composes one scanline at a
// time from the register file as it stands at that line, which is what
// makes the h-blank override streams visible in the picture: scroll
// registers, window boundaries and palette entries are re-read for every
// line.
//
// Map, tile and sprite data is not register addressable and is read from
// the managers directly.
type compositor struct {
	con *Console
}

func (cmp *compositor) RenderLine(y int, regs *display.RegisterFile, line []uint16) {
	backdrop := regs.Read(display.RegisterRef{Bank: display.BankPalBG, Index: 0})
	for x := range line {
		line[x] = backdrop
	}

	dispcnt := regs.Read(display.RegisterRef{Bank: display.BankIO, Index: display.RegDISPCNT})

	win := windowState{enabled: dispcnt&0x2000 != 0}
	if win.enabled {
		h := regs.Read(display.RegisterRef{Bank: display.BankIO, Index: display.RegWIN0H})
		v := regs.Read(display.RegisterRef{Bank: display.BankIO, Index: display.RegWIN0V})
		win.left, win.right = int(h>>8), int(h&0xff)
		win.top, win.bottom = int(v>>8), int(v&0xff)
		win.in = regs.Read(display.RegisterRef{Bank: display.BankIO, Index: display.RegWININ})
		win.out = regs.Read(display.RegisterRef{Bank: display.BankIO, Index: display.RegWINOUT})
	}

	// back to front: low priority values are drawn over high ones, and
	// sprites are drawn over backgrounds of the same priority
	for pri := 3; pri >= 0; pri-- {
		cmp.renderBackgrounds(y, pri, dispcnt, regs, &win, line)
		cmp.renderSprites(y, pri, regs, &win, line)
	}
}

// windowState is the window clipping configuration for one scanline.
type windowState struct {
	enabled                  bool
	left, right, top, bottom int
	in, out                  uint16
}

// show reports whether the layer identified by layerBit is displayed at
// pixel x of the scanline.
func (win *windowState) show(x int, y int, layerBit uint16) bool {
	if !win.enabled {
		return true
	}
	if y >= win.top && y < win.bottom && x >= win.left && x < win.right {
		return win.in&layerBit != 0
	}
	return win.out&layerBit != 0
}

func (cmp *compositor) renderBackgrounds(y int, pri int, dispcnt uint16,
	regs *display.RegisterFile, win *windowState, line []uint16) {

	for _, bg := range cmp.con.Backgrounds.Live() {
		hwID, ok := bg.HwID()
		if !ok || dispcnt&(1<<(8+hwID)) == 0 {
			continue
		}

		ctrl := regs.Read(bg.AttributesRegister())
		if int(ctrl&0x03) != pri {
			continue
		}

		hofs := int(regs.Read(bg.HOffsetRegister()) & 0x1ff)
		vofs := int(regs.Read(bg.VOffsetRegister()) & 0x1ff)
		sy := (y + vofs) & 0x1ff

		for x := range line {
			if !win.show(x, y, 1<<hwID) {
				continue
			}

			sx := (x + hofs) & 0x1ff
			cell := bg.Cell(sx/8, sy/8)
			tile := bg.Tile(cell.Tile())

			px := sx % 8
			if cell.HFlip() {
				px = 7 - px
			}
			py := sy % 8
			if cell.VFlip() {
				py = 7 - py
			}

			if ci := tile.Pixel(px, py); ci != 0 {
				line[x] = regs.Read(display.RegisterRef{
					Bank:  display.BankPalBG,
					Index: hwID*16 + ci,
				})
			}
		}
	}
}

func (cmp *compositor) renderSprites(y int, pri int,
	regs *display.RegisterFile, win *windowState, line []uint16) {

	for _, spr := range cmp.con.Sprites.Sorted() {
		if spr.BGPriority() != pri {
			continue
		}

		w, h := spr.Dimensions()
		cx, cy := spr.Position()
		left := cx.Round() - w/2
		top := cy.Round() - h/2

		row := y - top
		if row < 0 || row >= h {
			continue
		}

		vram := spr.Tiles().VRAM()
		palBase := spr.Palette().ID() * 16

		for col := 0; col < w; col++ {
			x := left + col
			if x < 0 || x >= len(line) || !win.show(x, y, 0x10) {
				continue
			}

			// 1D tile mapping, row major
			tile := vram[(row/8)*(w/8)+col/8]
			if ci := tile.Pixel(col%8, row%8); ci != 0 {
				line[x] = regs.Read(display.RegisterRef{
					Bank:  display.BankPalOBJ,
					Index: palBase + ci,
				})
			}
		}
	}
}
