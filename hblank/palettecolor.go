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
	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/palettes"
)

// target for the palette colour category: one colour slot of one palette
// bank.
type paletteColorTarget struct {
	palette    *palettes.Palette
	colorIndex int
}

// the palette colour handler is the simplest of the handlers: the target is
// a palette RAM slot which always exists and has no shape to change, so
// change detection is a no-op and the input colours pass through
// unmodified.
type paletteColorHandler struct{}

func (h paletteColorHandler) Setup(_ Target) State {
	return nil
}

func (h paletteColorHandler) Visible(_ Target) bool {
	return true
}

func (h paletteColorHandler) Updated(_ Target, _ State) (State, bool) {
	return nil, false
}

func (h paletteColorHandler) OutputRegister(target Target) display.RegisterRef {
	t := target.(paletteColorTarget)
	return t.palette.ColorRegister(t.colorIndex)
}

func (h paletteColorHandler) WriteOutputValues(_ Target, _ State, values interface{}, out []uint16) {
	colors := values.([]palettes.Color)
	for i := range out {
		out[i] = uint16(colors[i])
	}
}

func (h paletteColorHandler) Cleanup(target Target) {
	target.(paletteColorTarget).palette.Manager().Reload()
}

// PaletteColorEffect drives one colour of a sprite palette with a different
// colour on every scanline. The classic raster bar.
type PaletteColorEffect struct {
	Effect
	palette    *palettes.Palette
	colorIndex int
}

// NewPaletteColorEffect creates a palette colour effect. The colors buffer
// must hold one colour per scanline and remains owned by the caller. The
// effect shares ownership of the palette bank, keeping it alive for as long
// as the effect exists.
//
// Panics when every effect slot is taken; use the Optional form when
// exhaustion is an expected condition. An out of range colour index or a
// badly sized buffer panics in both forms.
func NewPaletteColorEffect(reg *Registry, palette *palettes.Palette, colorIndex int, colors []palettes.Color) *PaletteColorEffect {
	ef, err := NewPaletteColorEffectOptional(reg, palette, colorIndex, colors)
	if err != nil {
		panic(err)
	}
	return ef
}

// NewPaletteColorEffectOptional is the recoverable form of
// NewPaletteColorEffect.
func NewPaletteColorEffectOptional(reg *Registry, palette *palettes.Palette, colorIndex int, colors []palettes.Color) (*PaletteColorEffect, error) {
	if colorIndex < 0 || colorIndex >= palette.ColorsCount() {
		panic(curated.Errorf("hblank: invalid colour index: %d - %d", colorIndex, palette.ColorsCount()))
	}
	checkScanlineValues(len(colors))

	shared := palette.Share()
	id, err := reg.createOptional(colors, paletteColorTarget{palette: shared, colorIndex: colorIndex}, paletteColorHandler{})
	if err != nil {
		shared.Destroy()
		return nil, err
	}

	return &PaletteColorEffect{
		Effect:     Effect{reg: reg, id: id},
		palette:    shared,
		colorIndex: colorIndex,
	}, nil
}

// ColorsRef returns the effect's current colour buffer.
func (ef *PaletteColorEffect) ColorsRef() []palettes.Color {
	return ef.reg.valuesRef(ef.id).([]palettes.Color)
}

// SetColorsRef rebinds the effect to a new colour buffer. Regeneration is
// forced on the next frame.
func (ef *PaletteColorEffect) SetColorsRef(colors []palettes.Color) {
	checkScanlineValues(len(colors))
	ef.reg.setValuesRef(ef.id, colors)
}

// ReloadColorsRef forces regeneration on the next frame. For use after the
// contents of the colour buffer have been modified in place.
func (ef *PaletteColorEffect) ReloadColorsRef() {
	ef.reg.reloadValuesRef(ef.id)
}

// Destroy frees the effect slot and releases the effect's reference to the
// palette bank.
func (ef *PaletteColorEffect) Destroy() {
	if ef.id < 0 {
		return
	}
	ef.Effect.Destroy()
	ef.palette.Destroy()
}

// checkScanlineValues asserts that a values buffer holds exactly one entry
// per scanline.
func checkScanlineValues(n int) {
	if n != display.Height {
		panic(curated.Errorf("hblank: values buffer must have one entry per scanline: %d - %d", n, display.Height))
	}
}
