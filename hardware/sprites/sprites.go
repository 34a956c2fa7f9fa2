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

package sprites

import (
	"sort"

	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/fixedpoint"
	"github.com/jetsetilly/gopherAGB/hardware/palettes"
)

// MaxSprites is the number of entries in the hardware object attribute
// memory.
const MaxSprites = 128

// NotEnoughSprites is returned by CreateOptional when every OAM entry is in
// use.
const NotEnoughSprites = "sprites: not enough sprites"

// limits on the builder's priority and z-order knobs.
const (
	MaxBGPriority = 3
	MinZOrder     = -32767
	MaxZOrder     = 32767
)

// Builder accumulates the attributes of a sprite before creation.
type Builder struct {
	shape      Shape
	size       Size
	tiles      *TilesRef
	palette    *palettes.Palette
	x          fixedpoint.Fixed
	y          fixedpoint.Fixed
	bgPriority int
	zOrder     int
}

// NewBuilder is the preferred method of initialisation for the Builder
// type. The builder takes ownership of the tiles region and the palette
// handle; they are released when the built sprite is destroyed.
func NewBuilder(shape Shape, size Size, tiles *TilesRef, palette *palettes.Palette) Builder {
	if tiles.Count() != TileCount(shape, size) {
		panic(curated.Errorf("sprites: tiles region does not match shape/size: %d - %d",
			tiles.Count(), TileCount(shape, size)))
	}
	return Builder{
		shape:      shape,
		size:       size,
		tiles:      tiles,
		palette:    palette,
		bgPriority: 3,
	}
}

// SetPosition sets the position of the centre of the sprite.
func (b *Builder) SetPosition(x fixedpoint.Fixed, y fixedpoint.Fixed) {
	b.x = x
	b.y = y
}

// SetBGPriority sets the priority of the sprite relative to backgrounds, in
// the range [0..3]. Higher priorities are drawn first.
func (b *Builder) SetBGPriority(priority int) {
	if priority < 0 || priority > MaxBGPriority {
		panic(curated.Errorf("sprites: invalid BG priority: %d", priority))
	}
	b.bgPriority = priority
}

// SetZOrder sets the priority of the sprite relative to other sprites.
// Higher priorities are drawn first.
func (b *Builder) SetZOrder(zOrder int) {
	if zOrder < MinZOrder || zOrder > MaxZOrder {
		panic(curated.Errorf("sprites: invalid z order: %d", zOrder))
	}
	b.zOrder = zOrder
}

// Manager owns the hardware sprites.
type Manager struct {
	entries [MaxSprites]*Sprite
}

// NewManager is the preferred method of initialisation for the Manager
// type.
func NewManager() *Manager {
	return &Manager{}
}

// Sprite is a handle on one created hardware sprite.
type Sprite struct {
	mgr       *Manager
	oam       int
	shape     Shape
	size      Size
	tiles     *TilesRef
	palette   *palettes.Palette
	x         fixedpoint.Fixed
	y         fixedpoint.Fixed
	priority  int
	zOrder    int
	visible   bool
	destroyed bool
}

// Create a sprite from the builder. Panics when OAM is exhausted; use
// CreateOptional when exhaustion is an expected condition.
func (mgr *Manager) Create(b Builder) *Sprite {
	spr, err := mgr.CreateOptional(b)
	if err != nil {
		panic(err)
	}
	return spr
}

// CreateOptional is the recoverable form of Create. It returns a curated
// error with the NotEnoughSprites pattern when OAM is exhausted.
func (mgr *Manager) CreateOptional(b Builder) (*Sprite, error) {
	for i := range mgr.entries {
		if mgr.entries[i] == nil {
			spr := &Sprite{
				mgr:      mgr,
				oam:      i,
				shape:    b.shape,
				size:     b.size,
				tiles:    b.tiles,
				palette:  b.palette,
				x:        b.x,
				y:        b.y,
				priority: b.bgPriority,
				zOrder:   b.zOrder,
				visible:  true,
			}
			mgr.entries[i] = spr
			return spr, nil
		}
	}
	return nil, curated.Errorf(NotEnoughSprites)
}

// Count returns the number of live sprites.
func (mgr *Manager) Count() int {
	n := 0
	for i := range mgr.entries {
		if mgr.entries[i] != nil {
			n++
		}
	}
	return n
}

// Sorted returns the live sprites in drawing order: higher bg priority and
// z order first, OAM index breaking ties.
func (mgr *Manager) Sorted() []*Sprite {
	s := make([]*Sprite, 0, MaxSprites)
	for i := range mgr.entries {
		if mgr.entries[i] != nil && mgr.entries[i].visible {
			s = append(s, mgr.entries[i])
		}
	}
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].priority != s[j].priority {
			return s[i].priority > s[j].priority
		}
		if s[i].zOrder != s[j].zOrder {
			return s[i].zOrder > s[j].zOrder
		}
		return s[i].oam < s[j].oam
	})
	return s
}

// Position of the centre of the sprite.
func (spr *Sprite) Position() (fixedpoint.Fixed, fixedpoint.Fixed) {
	return spr.x, spr.y
}

// SetPosition sets the position of the centre of the sprite.
func (spr *Sprite) SetPosition(x fixedpoint.Fixed, y fixedpoint.Fixed) {
	spr.x = x
	spr.y = y
}

// SetVisible shows or hides the sprite.
func (spr *Sprite) SetVisible(visible bool) {
	spr.visible = visible
}

// Dimensions returns the pixel width and height of the sprite.
func (spr *Sprite) Dimensions() (int, int) {
	return Dimensions(spr.shape, spr.size)
}

// BGPriority of the sprite.
func (spr *Sprite) BGPriority() int {
	return spr.priority
}

// ZOrder of the sprite.
func (spr *Sprite) ZOrder() int {
	return spr.zOrder
}

// Tiles region the sprite draws from.
func (spr *Sprite) Tiles() *TilesRef {
	return spr.tiles
}

// Palette the sprite draws with.
func (spr *Sprite) Palette() *palettes.Palette {
	return spr.palette
}

// Destroy releases the sprite's OAM entry along with its tiles region and
// palette reference. Destroying an already destroyed sprite is a no-op.
func (spr *Sprite) Destroy() {
	if spr.destroyed {
		return
	}
	spr.destroyed = true
	spr.mgr.entries[spr.oam] = nil
	if spr.tiles != nil {
		spr.tiles.Destroy()
	}
	if spr.palette != nil {
		spr.palette.Destroy()
	}
}
