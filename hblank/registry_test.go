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

package hblank_test

import (
	"testing"

	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/bgs"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/fixedpoint"
	"github.com/jetsetilly/gopherAGB/hardware/palettes"
	"github.com/jetsetilly/gopherAGB/hardware/windows"
	"github.com/jetsetilly/gopherAGB/hblank"
	"github.com/jetsetilly/gopherAGB/test"
)

func newTestPalette(dsp *display.Display) *palettes.Palette {
	mgr := palettes.NewManager(dsp)
	return mgr.Create(palettes.Item{Colors: []palettes.Color{
		palettes.RGB(0, 0, 0), palettes.RGB(31, 31, 31),
	}})
}

func newTestBackground(dsp *display.Display) *bgs.Background {
	mgr := bgs.NewManager(dsp)
	return mgr.Create(bgs.Item{
		MapWidth:  32,
		MapHeight: 32,
		Cells:     make([]bgs.MapCell, 32*32),
		Tiles:     make([]display.Tile, 1),
		Palette:   []palettes.Color{palettes.RGB(0, 0, 0)},
	})
}

func scanlineColors(c palettes.Color) []palettes.Color {
	colors := make([]palettes.Color, display.Height)
	for i := range colors {
		colors[i] = c
	}
	return colors
}

func TestRegistryExhaustion(t *testing.T) {
	dsp := display.NewDisplay()
	reg := hblank.NewRegistry(dsp)
	pal := newTestPalette(dsp)
	colors := scanlineColors(palettes.RGB(31, 0, 0))

	effects := make([]*hblank.PaletteColorEffect, 0, hblank.MaxEffects)
	for i := 0; i < hblank.MaxEffects; i++ {
		ef, err := hblank.NewPaletteColorEffectOptional(reg, pal, 0, colors)
		test.ExpectedSuccess(t, err)
		effects = append(effects, ef)
	}
	test.Equate(t, reg.Count(), hblank.MaxEffects)

	// no slots left
	_, err := hblank.NewPaletteColorEffectOptional(reg, pal, 1, colors)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, hblank.NotEnoughEffects))

	// destroying one effect frees one slot
	effects[3].Destroy()
	test.Equate(t, reg.Count(), hblank.MaxEffects-1)

	ef, err := hblank.NewPaletteColorEffectOptional(reg, pal, 1, colors)
	test.ExpectedSuccess(t, err)
	test.Equate(t, reg.Count(), hblank.MaxEffects)

	// idempotent destroy
	ef.Destroy()
	ef.Destroy()
	test.Equate(t, reg.Count(), hblank.MaxEffects-1)
}

func TestRegistryPanicOnExhaustion(t *testing.T) {
	dsp := display.NewDisplay()
	reg := hblank.NewRegistry(dsp)
	pal := newTestPalette(dsp)
	colors := scanlineColors(palettes.RGB(31, 0, 0))

	for i := 0; i < hblank.MaxEffects; i++ {
		_ = hblank.NewPaletteColorEffect(reg, pal, 0, colors)
	}

	defer test.ExpectedPanic(t)
	_ = hblank.NewPaletteColorEffect(reg, pal, 0, colors)
}

func TestPaletteColorCommit(t *testing.T) {
	dsp := display.NewDisplay()
	reg := hblank.NewRegistry(dsp)
	pal := newTestPalette(dsp)

	colors := make([]palettes.Color, display.Height)
	for i := range colors {
		colors[i] = palettes.RGB(i%32, 0, 0)
	}

	ef := hblank.NewPaletteColorEffect(reg, pal, 1, colors)
	reg.Update()
	reg.Commit()

	ovr := dsp.Overrides()
	test.Equate(t, len(ovr), 1)
	test.Equate(t, ovr[0].Register == pal.ColorRegister(1), true)
	test.Equate(t, ovr[0].Values[0], uint16(palettes.RGB(0, 0, 0)))
	test.Equate(t, ovr[0].Values[33], uint16(palettes.RGB(1, 0, 0)))

	// a hidden effect publishes nothing
	ef.SetVisible(false)
	reg.Update()
	reg.Commit()
	test.Equate(t, len(dsp.Overrides()), 0)

	// re-showing publishes again
	ef.SetVisible(true)
	reg.Update()
	reg.Commit()
	test.Equate(t, len(dsp.Overrides()), 1)
}

func TestRegenerationOnlyOnChange(t *testing.T) {
	dsp := display.NewDisplay()
	reg := hblank.NewRegistry(dsp)
	bg := newTestBackground(dsp)

	deltas := make([]fixedpoint.Fixed, display.Height)
	for i := range deltas {
		deltas[i] = fixedpoint.FromInt(i)
	}

	ef := hblank.NewBGPositionEffect(reg, bg, deltas)
	reg.Update()
	reg.Commit()

	ovr := dsp.Overrides()
	test.Equate(t, len(ovr), 1)
	test.Equate(t, ovr[0].Values[10], uint16(10))

	// mutating the buffer in place without a reload leaves the expanded
	// values untouched on the next frame
	deltas[10] = fixedpoint.FromInt(99)
	reg.Update()
	reg.Commit()
	test.Equate(t, dsp.Overrides()[0].Values[10], uint16(10))

	// an explicit reload regenerates
	ef.ReloadDeltasRef()
	reg.Update()
	reg.Commit()
	test.Equate(t, dsp.Overrides()[0].Values[10], uint16(99))

	// moving the background regenerates without a reload, deltas being
	// relative to the base position
	bg.SetPosition(fixedpoint.FromInt(5), fixedpoint.FromInt(0))
	reg.Update()
	reg.Commit()
	test.Equate(t, dsp.Overrides()[0].Values[10], uint16(104))
}

func TestSetValuesRef(t *testing.T) {
	dsp := display.NewDisplay()
	reg := hblank.NewRegistry(dsp)
	bg := newTestBackground(dsp)

	a := make([]fixedpoint.Fixed, display.Height)
	b := make([]fixedpoint.Fixed, display.Height)
	for i := range b {
		b[i] = fixedpoint.FromInt(7)
	}

	ef := hblank.NewBGPositionEffect(reg, bg, a)
	reg.Update()
	reg.Commit()
	test.Equate(t, dsp.Overrides()[0].Values[0], uint16(0))

	ef.SetDeltasRef(b)
	test.Equate(t, len(ef.DeltasRef()), display.Height)
	reg.Update()
	reg.Commit()
	test.Equate(t, dsp.Overrides()[0].Values[0], uint16(7))
}

func TestInvisibleTargetSkipped(t *testing.T) {
	dsp := display.NewDisplay()
	reg := hblank.NewRegistry(dsp)
	bg := newTestBackground(dsp)

	deltas := make([]fixedpoint.Fixed, display.Height)
	ef := hblank.NewBGPositionEffect(reg, bg, deltas)

	bg.SetVisible(false)
	reg.Update()
	reg.Commit()

	// the effect holds its slot but publishes nothing while the target is
	// hidden
	test.Equate(t, reg.Count(), 1)
	test.Equate(t, len(dsp.Overrides()), 0)

	bg.SetVisible(true)
	reg.Update()
	reg.Commit()
	test.Equate(t, len(dsp.Overrides()), 1)

	// a destroyed target behaves like a hidden one
	bg.Destroy()
	reg.Update()
	reg.Commit()
	test.Equate(t, len(dsp.Overrides()), 0)

	ef.Destroy()
	test.Equate(t, reg.Count(), 0)
}

func TestWindowBoundariesRelativeToBase(t *testing.T) {
	dsp := display.NewDisplay()
	reg := hblank.NewRegistry(dsp)
	win := windows.NewManager(dsp).Internal()
	win.SetBoundaries(fixedpoint.FromInt(40), fixedpoint.FromInt(0),
		fixedpoint.FromInt(200), fixedpoint.FromInt(160))

	deltas := make([]windows.Boundaries, display.Height)
	for i := range deltas {
		deltas[i] = windows.Boundaries{fixedpoint.FromInt(-10), fixedpoint.FromInt(10)}
	}

	_ = hblank.NewWindowBoundariesEffect(reg, win, deltas)
	reg.Update()
	reg.Commit()

	ovr := dsp.Overrides()
	test.Equate(t, len(ovr), 1)
	test.Equate(t, ovr[0].Register == win.HorizontalRegister(), true)
	test.Equate(t, ovr[0].Values[0], uint16(30)<<8|uint16(210))

	// clamping at the display edges and left<=right enforcement
	win.SetBoundaries(fixedpoint.FromInt(0), fixedpoint.FromInt(0),
		fixedpoint.FromInt(240), fixedpoint.FromInt(160))
	reg.Update()
	reg.Commit()
	test.Equate(t, dsp.Overrides()[0].Values[0], uint16(0)<<8|uint16(240))
}

func TestBGAttributesSignatureChange(t *testing.T) {
	dsp := display.NewDisplay()
	reg := hblank.NewRegistry(dsp)
	bg := newTestBackground(dsp)

	attrs := make([]bgs.Attributes, display.Height)
	for i := range attrs {
		attrs[i] = bgs.Attributes{Priority: 2}
	}

	_ = hblank.NewBGAttributesEffect(reg, bg, attrs)
	reg.Update()
	reg.Commit()

	ovr := dsp.Overrides()
	test.Equate(t, len(ovr), 1)
	test.Equate(t, ovr[0].Register == bg.AttributesRegister(), true)
	test.Equate(t, ovr[0].Values[0], uint16(2))

	// replacing the asset with a bigger map changes the expanded control
	// values without a reload
	bg.SetItem(bgs.Item{
		MapWidth:  64,
		MapHeight: 32,
		Cells:     make([]bgs.MapCell, 64*32),
		Tiles:     make([]display.Tile, 1),
		Palette:   []palettes.Color{palettes.RGB(0, 0, 0)},
	})
	reg.Update()
	reg.Commit()
	test.Equate(t, dsp.Overrides()[0].Values[0], uint16(0x4002))
}

func TestBadValuesLength(t *testing.T) {
	dsp := display.NewDisplay()
	reg := hblank.NewRegistry(dsp)
	pal := newTestPalette(dsp)

	defer test.ExpectedPanic(t)
	_, _ = hblank.NewPaletteColorEffectOptional(reg, pal, 0, make([]palettes.Color, display.Height-1))
}
