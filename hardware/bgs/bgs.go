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

package bgs

import (
	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/fixedpoint"
	"github.com/jetsetilly/gopherAGB/hardware/palettes"
)

// MaxBackgrounds is the number of regular background layers the hardware
// can display at once.
const MaxBackgrounds = 4

// NotEnoughBackgrounds is returned by CreateOptional when every hardware
// background layer is in use.
const NotEnoughBackgrounds = "bgs: not enough background layers"

// MapCell is one entry of a background map: a tile index in the low ten
// bits, horizontal and vertical flip in bits 10 and 11.
type MapCell uint16

// Tile index addressed by the cell.
func (c MapCell) Tile() int {
	return int(c) & 0x3ff
}

// HFlip reports whether the cell is mirrored horizontally.
func (c MapCell) HFlip() bool {
	return c&0x0400 != 0
}

// VFlip reports whether the cell is mirrored vertically.
func (c MapCell) VFlip() bool {
	return c&0x0800 != 0
}

// Item is an immutable background asset: map dimensions and cells, tile
// graphics and a 16 colour palette.
type Item struct {
	MapWidth  int // in tiles
	MapHeight int // in tiles
	Cells     []MapCell
	Tiles     []display.Tile
	Palette   []palettes.Color
}

// Attributes are the per-background display attributes that can be driven
// by a h-blank effect.
type Attributes struct {
	Priority int // in the range [0..3]
	Mosaic   bool
}

// Manager owns the hardware background layers.
type Manager struct {
	dsp   *display.Display
	slots [MaxBackgrounds]*Background
}

// NewManager is the preferred method of initialisation for the Manager type.
func NewManager(dsp *display.Display) *Manager {
	return &Manager{dsp: dsp}
}

// Background is a handle on one created background. The handle outlives the
// hardware layer: hiding or destroying the background leaves the handle
// valid but without a hardware id.
type Background struct {
	mgr       *Manager
	item      Item
	hwID      int
	visible   bool
	destroyed bool
	x         fixedpoint.Fixed
	y         fixedpoint.Fixed
	attrs     Attributes
}

// Create a background from item. Panics when every hardware layer is in
// use; use CreateOptional when exhaustion is an expected condition.
func (mgr *Manager) Create(item Item) *Background {
	bg, err := mgr.CreateOptional(item)
	if err != nil {
		panic(err)
	}
	return bg
}

// CreateOptional is the recoverable form of Create.
func (mgr *Manager) CreateOptional(item Item) (*Background, error) {
	if item.MapWidth <= 0 || item.MapHeight <= 0 || len(item.Cells) != item.MapWidth*item.MapHeight {
		panic(curated.Errorf("bgs: invalid map dimensions: %dx%d (%d cells)",
			item.MapWidth, item.MapHeight, len(item.Cells)))
	}

	for i := range mgr.slots {
		if mgr.slots[i] == nil {
			bg := &Background{
				mgr:     mgr,
				item:    item,
				hwID:    i,
				visible: true,
			}
			mgr.slots[i] = bg
			mgr.commitBackground(bg)
			return bg, nil
		}
	}

	return nil, curated.Errorf(NotEnoughBackgrounds)
}

// commitBackground writes the background's base register state and palette.
func (mgr *Manager) commitBackground(bg *Background) {
	id := bg.hwID

	mgr.dsp.Registers.Write(display.RegisterRef{Bank: display.BankIO, Index: display.RegBG0CNT + id},
		mgr.attributesValue(bg, bg.attrs))
	mgr.dsp.Registers.Write(bg.HOffsetRegister(), uint16(bg.x.Int()&0x1ff))
	mgr.dsp.Registers.Write(display.RegisterRef{Bank: display.BankIO, Index: display.RegBG0VOFS + id*2},
		uint16(bg.y.Int()&0x1ff))

	for j, c := range bg.item.Palette {
		mgr.dsp.Registers.Write(display.RegisterRef{
			Bank:  display.BankPalBG,
			Index: id*16 + j,
		}, uint16(c))
	}

	mgr.commitEnable()
}

// commitEnable rewrites the background enable bits of the display control
// register.
func (mgr *Manager) commitEnable() {
	ref := display.RegisterRef{Bank: display.BankIO, Index: display.RegDISPCNT}
	v := mgr.dsp.Registers.Read(ref) &^ 0x0f00
	for i := range mgr.slots {
		if mgr.slots[i] != nil && mgr.slots[i].visible {
			v |= 1 << (8 + i)
		}
	}
	mgr.dsp.Registers.Write(ref, v)
}

// attributesValue expands display attributes into the raw value of the
// background's control register.
func (mgr *Manager) attributesValue(bg *Background, attrs Attributes) uint16 {
	v := uint16(attrs.Priority & 0x03)
	if attrs.Mosaic {
		v |= 0x0040
	}
	if bg.item.MapWidth > 32 {
		v |= 0x4000
	}
	if bg.item.MapHeight > 32 {
		v |= 0x8000
	}
	return v
}

// Reload rewrites the register state of every live background. Used to
// restore registers that a h-blank effect has been streaming over.
func (mgr *Manager) Reload() {
	for i := range mgr.slots {
		if mgr.slots[i] != nil {
			mgr.commitBackground(mgr.slots[i])
		}
	}
}

// Live returns the backgrounds that currently hold a hardware layer.
func (mgr *Manager) Live() []*Background {
	live := make([]*Background, 0, MaxBackgrounds)
	for i := range mgr.slots {
		if mgr.slots[i] != nil && mgr.slots[i].visible {
			live = append(live, mgr.slots[i])
		}
	}
	return live
}

// HwID returns the hardware layer the background is displayed on. The
// second return value is false when the background is hidden or destroyed.
func (bg *Background) HwID() (int, bool) {
	if bg.destroyed || !bg.visible {
		return -1, false
	}
	return bg.hwID, true
}

// SetVisible shows or hides the background.
func (bg *Background) SetVisible(visible bool) {
	if bg.destroyed {
		panic(curated.Errorf("bgs: background already destroyed"))
	}
	bg.visible = visible
	bg.mgr.commitEnable()
	if visible {
		bg.mgr.commitBackground(bg)
	}
}

// Position of the background (its scroll offset).
func (bg *Background) Position() (fixedpoint.Fixed, fixedpoint.Fixed) {
	return bg.x, bg.y
}

// SetPosition sets the scroll offset of the background.
func (bg *Background) SetPosition(x fixedpoint.Fixed, y fixedpoint.Fixed) {
	if bg.destroyed {
		panic(curated.Errorf("bgs: background already destroyed"))
	}
	bg.x = x
	bg.y = y
	if bg.visible {
		bg.mgr.commitBackground(bg)
	}
}

// Attributes of the background.
func (bg *Background) Attributes() Attributes {
	return bg.attrs
}

// SetAttributes sets the display attributes of the background.
func (bg *Background) SetAttributes(attrs Attributes) {
	if attrs.Priority < 0 || attrs.Priority > 3 {
		panic(curated.Errorf("bgs: invalid priority: %d", attrs.Priority))
	}
	bg.attrs = attrs
	if bg.visible && !bg.destroyed {
		bg.mgr.commitBackground(bg)
	}
}

// MapSignature summarises the shape and addressing of the background's map.
// A h-blank effect targeting the background compares signatures between
// frames to detect when its per-scanline buffers need regenerating.
type MapSignature struct {
	MapWidth  int
	MapHeight int
	Tiles     int
}

// Signature returns the background's current MapSignature.
func (bg *Background) Signature() MapSignature {
	return MapSignature{
		MapWidth:  bg.item.MapWidth,
		MapHeight: bg.item.MapHeight,
		Tiles:     len(bg.item.Tiles),
	}
}

// SetItem replaces the background's asset, changing its shape without
// changing its handle.
func (bg *Background) SetItem(item Item) {
	if bg.destroyed {
		panic(curated.Errorf("bgs: background already destroyed"))
	}
	if item.MapWidth <= 0 || item.MapHeight <= 0 || len(item.Cells) != item.MapWidth*item.MapHeight {
		panic(curated.Errorf("bgs: invalid map dimensions: %dx%d (%d cells)",
			item.MapWidth, item.MapHeight, len(item.Cells)))
	}
	bg.item = item
	if bg.visible {
		bg.mgr.commitBackground(bg)
	}
}

// AttributesRegister returns the background's control register.
func (bg *Background) AttributesRegister() display.RegisterRef {
	return display.RegisterRef{Bank: display.BankIO, Index: display.RegBG0CNT + bg.hwID}
}

// HOffsetRegister returns the background's horizontal scroll register.
func (bg *Background) HOffsetRegister() display.RegisterRef {
	return display.RegisterRef{Bank: display.BankIO, Index: display.RegBG0HOFS + bg.hwID*2}
}

// VOffsetRegister returns the background's vertical scroll register.
func (bg *Background) VOffsetRegister() display.RegisterRef {
	return display.RegisterRef{Bank: display.BankIO, Index: display.RegBG0VOFS + bg.hwID*2}
}

// FillHBlankAttributes expands per-scanline display attributes into raw
// control register values.
func (bg *Background) FillHBlankAttributes(attrs []Attributes, out []uint16) {
	for i := range attrs {
		out[i] = bg.mgr.attributesValue(bg, attrs[i])
	}
}

// FillHBlankPositions expands per-scanline horizontal deltas into raw
// scroll register values. Each delta is relative to the background's base
// position.
func (bg *Background) FillHBlankPositions(deltas []fixedpoint.Fixed, out []uint16) {
	for i := range deltas {
		out[i] = uint16((bg.x + deltas[i]).Int() & 0x1ff)
	}
}

// Manager that created the background.
func (bg *Background) Manager() *Manager {
	return bg.mgr
}

// Cell returns the map cell at tile coordinates (cx, cy). Coordinates wrap
// at the map edges.
func (bg *Background) Cell(cx int, cy int) MapCell {
	cx %= bg.item.MapWidth
	if cx < 0 {
		cx += bg.item.MapWidth
	}
	cy %= bg.item.MapHeight
	if cy < 0 {
		cy += bg.item.MapHeight
	}
	return bg.item.Cells[cy*bg.item.MapWidth+cx]
}

// Tile returns the tile graphics addressed by index. Out of range indices
// return an empty tile.
func (bg *Background) Tile(index int) display.Tile {
	if index < 0 || index >= len(bg.item.Tiles) {
		return display.Tile{}
	}
	return bg.item.Tiles[index]
}

// Destroy releases the background's hardware layer. Destroying an already
// destroyed background is a no-op.
func (bg *Background) Destroy() {
	if bg.destroyed {
		return
	}
	bg.destroyed = true
	bg.visible = false
	bg.mgr.slots[bg.hwID] = nil
	bg.mgr.commitEnable()
}
