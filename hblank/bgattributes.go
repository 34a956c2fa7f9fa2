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
)

type bgAttributesHandler struct{}

func (h bgAttributesHandler) Setup(target Target) State {
	return target.(*bgs.Background).Signature()
}

func (h bgAttributesHandler) Visible(target Target) bool {
	_, ok := target.(*bgs.Background).HwID()
	return ok
}

// the attributes written to the control register depend on the shape of the
// background's map, so a change of map signature invalidates the expanded
// buffer even though the application's attribute values have not changed.
func (h bgAttributesHandler) Updated(target Target, state State) (State, bool) {
	sig := target.(*bgs.Background).Signature()
	return sig, sig != state.(bgs.MapSignature)
}

func (h bgAttributesHandler) OutputRegister(target Target) display.RegisterRef {
	return target.(*bgs.Background).AttributesRegister()
}

func (h bgAttributesHandler) WriteOutputValues(target Target, _ State, values interface{}, out []uint16) {
	target.(*bgs.Background).FillHBlankAttributes(values.([]bgs.Attributes), out)
}

func (h bgAttributesHandler) Cleanup(target Target) {
	target.(*bgs.Background).Manager().Reload()
}

// BGAttributesEffect drives a background's control register with different
// display attributes on every scanline.
type BGAttributesEffect struct {
	Effect
	bg *bgs.Background
}

// NewBGAttributesEffect creates a background attributes effect. The attrs
// buffer must hold one entry per scanline and remains owned by the caller.
//
// Panics when every effect slot is taken; use the Optional form when
// exhaustion is an expected condition.
func NewBGAttributesEffect(reg *Registry, bg *bgs.Background, attrs []bgs.Attributes) *BGAttributesEffect {
	ef, err := NewBGAttributesEffectOptional(reg, bg, attrs)
	if err != nil {
		panic(err)
	}
	return ef
}

// NewBGAttributesEffectOptional is the recoverable form of
// NewBGAttributesEffect.
func NewBGAttributesEffectOptional(reg *Registry, bg *bgs.Background, attrs []bgs.Attributes) (*BGAttributesEffect, error) {
	checkScanlineValues(len(attrs))

	id, err := reg.createOptional(attrs, bg, bgAttributesHandler{})
	if err != nil {
		return nil, err
	}

	return &BGAttributesEffect{
		Effect: Effect{reg: reg, id: id},
		bg:     bg,
	}, nil
}

// AttributesRef returns the effect's current attributes buffer.
func (ef *BGAttributesEffect) AttributesRef() []bgs.Attributes {
	return ef.reg.valuesRef(ef.id).([]bgs.Attributes)
}

// SetAttributesRef rebinds the effect to a new attributes buffer.
// Regeneration is forced on the next frame.
func (ef *BGAttributesEffect) SetAttributesRef(attrs []bgs.Attributes) {
	checkScanlineValues(len(attrs))
	ef.reg.setValuesRef(ef.id, attrs)
}

// ReloadAttributesRef forces regeneration on the next frame. For use after
// the contents of the attributes buffer have been modified in place.
func (ef *BGAttributesEffect) ReloadAttributesRef() {
	ef.reg.reloadValuesRef(ef.id)
}
