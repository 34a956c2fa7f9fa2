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

package windows

import (
	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/fixedpoint"
)

// Boundaries is a left/right (or top/bottom) pair of fixed point window
// boundaries.
type Boundaries [2]fixedpoint.Fixed

// Manager owns the hardware window layers. The console has one rectangular
// window plus the implicit "outside" region covering everything the window
// does not.
type Manager struct {
	dsp      *display.Display
	internal *Window
	outside  *outsideRegion
}

// NewManager is the preferred method of initialisation for the Manager type.
func NewManager(dsp *display.Display) *Manager {
	mgr := &Manager{dsp: dsp}
	mgr.internal = &Window{mgr: mgr, showBG: 0x0f, showOBJ: true}
	mgr.outside = &outsideRegion{mgr: mgr, showBG: 0x0f, showOBJ: true}
	mgr.Commit()
	return mgr
}

// Window is the rectangular hardware window. Pixels inside the window show
// the layers the window is configured to show; pixels outside show the
// layers the outside region is configured to show.
type Window struct {
	mgr        *Manager
	enabled    bool
	horizontal Boundaries
	vertical   Boundaries
	showBG     uint16
	showOBJ    bool
}

// the outside region is not a window but shares the show/hide
// configuration surface.
type outsideRegion struct {
	mgr     *Manager
	showBG  uint16
	showOBJ bool
}

// Internal returns the rectangular window.
func (mgr *Manager) Internal() *Window {
	return mgr.internal
}

// OutsideShowBackground configures whether the background on hardware layer
// hwID is shown outside the window.
func (mgr *Manager) OutsideShowBackground(hwID int, show bool) {
	if hwID < 0 || hwID >= 4 {
		panic(curated.Errorf("windows: invalid background layer: %d", hwID))
	}
	if show {
		mgr.outside.showBG |= 1 << hwID
	} else {
		mgr.outside.showBG &^= 1 << hwID
	}
	mgr.Commit()
}

// SetEnabled turns window clipping on or off.
func (win *Window) SetEnabled(enabled bool) {
	win.enabled = enabled
	win.mgr.Commit()
}

// SetBoundaries sets both boundary pairs of the window.
func (win *Window) SetBoundaries(left, top, right, bottom fixedpoint.Fixed) {
	win.horizontal = Boundaries{left, right}
	win.vertical = Boundaries{top, bottom}
	win.mgr.Commit()
}

// HorizontalBoundaries returns the window's horizontal boundary pair.
func (win *Window) HorizontalBoundaries() Boundaries {
	return win.horizontal
}

// ShowBackground configures whether the background on hardware layer hwID
// is shown inside the window.
func (win *Window) ShowBackground(hwID int, show bool) {
	if hwID < 0 || hwID >= 4 {
		panic(curated.Errorf("windows: invalid background layer: %d", hwID))
	}
	if show {
		win.showBG |= 1 << hwID
	} else {
		win.showBG &^= 1 << hwID
	}
	win.mgr.Commit()
}

// HwHorizontalBoundaries returns the window's horizontal boundaries clamped
// to the display, as the pair of integers the hardware register holds.
func (win *Window) HwHorizontalBoundaries() (int, int) {
	return clampBoundary(win.horizontal[0]), clampBoundary(win.horizontal[1])
}

// HorizontalRegister returns the window's horizontal boundary register.
func (win *Window) HorizontalRegister() display.RegisterRef {
	return display.RegisterRef{Bank: display.BankIO, Index: display.RegWIN0H}
}

// FillHBlankBoundaries expands per-scanline boundary pairs into raw
// horizontal boundary register values. Each pair is relative to the
// window's current boundaries.
func (win *Window) FillHBlankBoundaries(base [2]int, pairs []Boundaries, out []uint16) {
	for i := range pairs {
		l := clampBoundaryInt(base[0] + pairs[i][0].Round())
		r := clampBoundaryInt(base[1] + pairs[i][1].Round())
		if l > r {
			l = r
		}
		out[i] = uint16(l)<<8 | uint16(r)
	}
}

// Manager that owns the window.
func (win *Window) Manager() *Manager {
	return win.mgr
}

func clampBoundary(b fixedpoint.Fixed) int {
	return clampBoundaryInt(b.Round())
}

func clampBoundaryInt(b int) int {
	if b < 0 {
		return 0
	}
	if b > display.Width {
		return display.Width
	}
	return b
}

// Commit writes the window state to the display registers.
func (mgr *Manager) Commit() {
	win := mgr.internal

	l, r := win.HwHorizontalBoundaries()
	mgr.dsp.Registers.Write(display.RegisterRef{Bank: display.BankIO, Index: display.RegWIN0H},
		uint16(l)<<8|uint16(r))

	t := clampHeight(win.vertical[0].Round())
	b := clampHeight(win.vertical[1].Round())
	mgr.dsp.Registers.Write(display.RegisterRef{Bank: display.BankIO, Index: display.RegWIN0V},
		uint16(t)<<8|uint16(b))

	in := win.showBG
	if win.showOBJ {
		in |= 0x10
	}
	mgr.dsp.Registers.Write(display.RegisterRef{Bank: display.BankIO, Index: display.RegWININ}, in)

	out := mgr.outside.showBG
	if mgr.outside.showOBJ {
		out |= 0x10
	}
	mgr.dsp.Registers.Write(display.RegisterRef{Bank: display.BankIO, Index: display.RegWINOUT}, out)

	ref := display.RegisterRef{Bank: display.BankIO, Index: display.RegDISPCNT}
	v := mgr.dsp.Registers.Read(ref) &^ 0x2000
	if win.enabled {
		v |= 0x2000
	}
	mgr.dsp.Registers.Write(ref, v)
}

// ReloadBoundaries rewrites the boundary registers from the manager's own
// bookkeeping. Used to restore boundaries that a h-blank effect has been
// streaming over.
func (mgr *Manager) ReloadBoundaries() {
	mgr.Commit()
}

func clampHeight(b int) int {
	if b < 0 {
		return 0
	}
	if b > display.Height {
		return display.Height
	}
	return b
}
