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

package hblank

import (
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/windows"
)

// state for the window boundaries category: the window's base horizontal
// boundaries, as the hardware sees them.
type windowBoundariesState [2]int

type windowBoundariesHandler struct{}

func (h windowBoundariesHandler) Setup(target Target) State {
	l, r := target.(*windows.Window).HwHorizontalBoundaries()
	return windowBoundariesState{l, r}
}

// the rectangular window always exists; it cannot be destroyed or detached
// from its registers.
func (h windowBoundariesHandler) Visible(_ Target) bool {
	return true
}

// the per-scanline pairs are relative to the window's base boundaries, so
// moving the window invalidates the expanded buffer.
func (h windowBoundariesHandler) Updated(target Target, state State) (State, bool) {
	l, r := target.(*windows.Window).HwHorizontalBoundaries()
	s := windowBoundariesState{l, r}
	return s, s != state.(windowBoundariesState)
}

func (h windowBoundariesHandler) OutputRegister(target Target) display.RegisterRef {
	return target.(*windows.Window).HorizontalRegister()
}

func (h windowBoundariesHandler) WriteOutputValues(target Target, state State, values interface{}, out []uint16) {
	win := target.(*windows.Window)
	win.FillHBlankBoundaries(state.(windowBoundariesState), values.([]windows.Boundaries), out)
}

func (h windowBoundariesHandler) Cleanup(target Target) {
	target.(*windows.Window).Manager().ReloadBoundaries()
}

// WindowBoundariesEffect drives the window's horizontal boundary register
// with a different left/right pair on every scanline, giving the window a
// non-rectangular silhouette.
type WindowBoundariesEffect struct {
	Effect
	win *windows.Window
}

// NewWindowBoundariesEffect creates a window boundaries effect. The deltas
// buffer holds one left/right pair per scanline, each relative to the
// window's base boundaries, and remains owned by the caller.
//
// Panics when every effect slot is taken; use the Optional form when
// exhaustion is an expected condition.
func NewWindowBoundariesEffect(reg *Registry, win *windows.Window, deltas []windows.Boundaries) *WindowBoundariesEffect {
	ef, err := NewWindowBoundariesEffectOptional(reg, win, deltas)
	if err != nil {
		panic(err)
	}
	return ef
}

// NewWindowBoundariesEffectOptional is the recoverable form of
// NewWindowBoundariesEffect.
func NewWindowBoundariesEffectOptional(reg *Registry, win *windows.Window, deltas []windows.Boundaries) (*WindowBoundariesEffect, error) {
	checkScanlineValues(len(deltas))

	id, err := reg.createOptional(deltas, win, windowBoundariesHandler{})
	if err != nil {
		return nil, err
	}

	return &WindowBoundariesEffect{
		Effect: Effect{reg: reg, id: id},
		win:    win,
	}, nil
}

// DeltasRef returns the effect's current deltas buffer.
func (ef *WindowBoundariesEffect) DeltasRef() []windows.Boundaries {
	return ef.reg.valuesRef(ef.id).([]windows.Boundaries)
}

// SetDeltasRef rebinds the effect to a new deltas buffer. Regeneration is
// forced on the next frame.
func (ef *WindowBoundariesEffect) SetDeltasRef(deltas []windows.Boundaries) {
	checkScanlineValues(len(deltas))
	ef.reg.setValuesRef(ef.id, deltas)
}

// ReloadDeltasRef forces regeneration on the next frame. For use after the
// contents of the deltas buffer have been modified in place.
func (ef *WindowBoundariesEffect) ReloadDeltasRef() {
	ef.reg.reloadValuesRef(ef.id)
}
