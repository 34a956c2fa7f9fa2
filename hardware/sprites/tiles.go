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
	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/display"
)

// VRAMTiles is the number of 4bpp tiles in sprite tile memory.
const VRAMTiles = 1024

// NotEnoughTiles is returned by AllocateOptional and CreateOptional when
// sprite tile memory is exhausted.
const NotEnoughTiles = "sprites: not enough tile memory"

// TilesItem is an immutable sprite tile asset: a vertical strip of tiles
// divided into GraphicsCount equally sized graphics.
type TilesItem struct {
	Tiles         []display.Tile
	GraphicsCount int
}

// TilesPerGraphic returns the number of tiles each graphic occupies.
func (item TilesItem) TilesPerGraphic() int {
	if item.GraphicsCount <= 0 || len(item.Tiles)%item.GraphicsCount != 0 {
		panic(curated.Errorf("sprites: invalid tiles item: %d tiles, %d graphics",
			len(item.Tiles), item.GraphicsCount))
	}
	return len(item.Tiles) / item.GraphicsCount
}

// GraphicsTiles returns the tiles of one graphic in the item.
func (item TilesItem) GraphicsTiles(index int) []display.Tile {
	if index < 0 || index >= item.GraphicsCount {
		panic(curated.Errorf("sprites: invalid graphics index: %d - %d", index, item.GraphicsCount))
	}
	n := item.TilesPerGraphic()
	return item.Tiles[index*n : (index+1)*n]
}

// TilesAllocator hands out regions of sprite tile memory.
type TilesAllocator struct {
	vram [VRAMTiles]display.Tile
	used [VRAMTiles]bool
}

// NewTilesAllocator is the preferred method of initialisation for the
// TilesAllocator type.
func NewTilesAllocator() *TilesAllocator {
	return &TilesAllocator{}
}

// TilesRef is a handle on an allocated region of sprite tile memory.
type TilesRef struct {
	alloc *TilesAllocator
	start int
	count int
}

// Allocate a region of count tiles. Panics when tile memory is exhausted;
// use AllocateOptional when exhaustion is an expected condition.
func (alloc *TilesAllocator) Allocate(count int) *TilesRef {
	ref, err := alloc.AllocateOptional(count)
	if err != nil {
		panic(err)
	}
	return ref
}

// AllocateOptional is the recoverable form of Allocate. It returns a
// curated error with the NotEnoughTiles pattern when tile memory is
// exhausted.
func (alloc *TilesAllocator) AllocateOptional(count int) (*TilesRef, error) {
	if count <= 0 || count > VRAMTiles {
		panic(curated.Errorf("sprites: invalid tiles count: %d", count))
	}

	// first fit
	run := 0
	for i := 0; i < VRAMTiles; i++ {
		if alloc.used[i] {
			run = 0
			continue
		}
		run++
		if run == count {
			start := i - count + 1
			for j := start; j <= i; j++ {
				alloc.used[j] = true
				alloc.vram[j] = display.Tile{}
			}
			return &TilesRef{alloc: alloc, start: start, count: count}, nil
		}
	}

	return nil, curated.Errorf(NotEnoughTiles)
}

// CreateFromItem allocates a region and fills it with one graphic from the
// item. Panics when tile memory is exhausted.
func (alloc *TilesAllocator) CreateFromItem(item TilesItem, graphicsIndex int) *TilesRef {
	ref, err := alloc.CreateFromItemOptional(item, graphicsIndex)
	if err != nil {
		panic(err)
	}
	return ref
}

// CreateFromItemOptional is the recoverable form of CreateFromItem.
func (alloc *TilesAllocator) CreateFromItemOptional(item TilesItem, graphicsIndex int) (*TilesRef, error) {
	src := item.GraphicsTiles(graphicsIndex)
	ref, err := alloc.AllocateOptional(len(src))
	if err != nil {
		return nil, err
	}
	copy(ref.VRAM(), src)
	return ref, nil
}

// FreeTiles returns the number of unallocated tiles. Not necessarily
// allocatable as a single region.
func (alloc *TilesAllocator) FreeTiles() int {
	n := 0
	for i := range alloc.used {
		if !alloc.used[i] {
			n++
		}
	}
	return n
}

// Start index of the region in tile memory.
func (ref *TilesRef) Start() int {
	return ref.start
}

// Count of tiles in the region.
func (ref *TilesRef) Count() int {
	return ref.count
}

// VRAM returns the region's tile memory for direct plotting.
func (ref *TilesRef) VRAM() []display.Tile {
	return ref.alloc.vram[ref.start : ref.start+ref.count]
}

// Destroy releases the region. Destroying an already destroyed region is a
// no-op.
func (ref *TilesRef) Destroy() {
	if ref.alloc == nil {
		return
	}
	for i := ref.start; i < ref.start+ref.count; i++ {
		ref.alloc.used[i] = false
	}
	ref.alloc = nil
}
