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
	"github.com/jetsetilly/gopherAGB/hardware/bgs"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/fixedpoint"
)

type bgPositionHandler struct{}

func (h bgPositionHandler) Setup(target Target) State {
	x, _ := target.(*bgs.Background).Position()
	return x
}

func (h bgPositionHandler) Visible(target Target) bool {
	_, ok := target.(*bgs.Background).HwID()
	return ok
}

// the deltas are relative to the background's base position, so a move of
// the background invalidates the expanded buffer even though the deltas
// themselves have not changed.
func (h bgPositionHandler) Updated(target Target, state State) (State, bool) {
	x, _ := target.(*bgs.Background).Position()
	return x, x != state.(fixedpoint.Fixed)
}

func (h bgPositionHandler) OutputRegister(target Target) display.RegisterRef {
	return target.(*bgs.Background).HOffsetRegister()
}

func (h bgPositionHandler) WriteOutputValues(target Target, _ State, values interface{}, out []uint16) {
	target.(*bgs.Background).FillHBlankPositions(values.([]fixedpoint.Fixed), out)
}

func (h bgPositionHandler) Cleanup(target Target) {
	target.(*bgs.Background).Manager().Reload()
}

// BGPositionEffect drives a background's horizontal scroll register with a
// different offset on every scanline. Wavy backgrounds, per-line parallax.
type BGPositionEffect struct {
	Effect
	bg *bgs.Background
}

// NewBGPositionEffect creates a background position effect. The deltas
// buffer holds one horizontal offset per scanline, each relative to the
// background's base position, and remains owned by the caller.
//
// Panics when every effect slot is taken; use the Optional form when
// exhaustion is an expected condition.
func NewBGPositionEffect(reg *Registry, bg *bgs.Background, deltas []fixedpoint.Fixed) *BGPositionEffect {
	ef, err := NewBGPositionEffectOptional(reg, bg, deltas)
	if err != nil {
		panic(err)
	}
	return ef
}

// NewBGPositionEffectOptional is the recoverable form of
// NewBGPositionEffect.
func NewBGPositionEffectOptional(reg *Registry, bg *bgs.Background, deltas []fixedpoint.Fixed) (*BGPositionEffect, error) {
	checkScanlineValues(len(deltas))

	id, err := reg.createOptional(deltas, bg, bgPositionHandler{})
	if err != nil {
		return nil, err
	}

	return &BGPositionEffect{
		Effect: Effect{reg: reg, id: id},
		bg:     bg,
	}, nil
}

// DeltasRef returns the effect's current deltas buffer.
func (ef *BGPositionEffect) DeltasRef() []fixedpoint.Fixed {
	return ef.reg.valuesRef(ef.id).([]fixedpoint.Fixed)
}

// SetDeltasRef rebinds the effect to a new deltas buffer. Regeneration is
// forced on the next frame.
func (ef *BGPositionEffect) SetDeltasRef(deltas []fixedpoint.Fixed) {
	checkScanlineValues(len(deltas))
	ef.reg.setValuesRef(ef.id, deltas)
}

// ReloadDeltasRef forces regeneration on the next frame. For use after the
// contents of the deltas buffer have been modified in place.
func (ef *BGPositionEffect) ReloadDeltasRef() {
	ef.reg.reloadValuesRef(ef.id)
}
