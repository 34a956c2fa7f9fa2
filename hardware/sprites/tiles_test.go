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

package sprites_test

import (
	"testing"

	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/sprites"
	"github.com/jetsetilly/gopherAGB/test"
)

func TestAllocator(t *testing.T) {
	alloc := sprites.NewTilesAllocator()
	test.Equate(t, alloc.FreeTiles(), sprites.VRAMTiles)

	ref := alloc.Allocate(4)
	test.Equate(t, alloc.FreeTiles(), sprites.VRAMTiles-4)
	test.Equate(t, len(ref.VRAM()), 4)
	test.Equate(t, ref.Count(), 4)

	// regions are zeroed on allocation even when the previous user left
	// tile data behind
	ref.VRAM()[0][0] = 0xdeadbeef
	start := ref.Start()
	ref.Destroy()
	test.Equate(t, alloc.FreeTiles(), sprites.VRAMTiles)

	ref = alloc.Allocate(4)
	test.Equate(t, ref.Start(), start)
	test.Equate(t, ref.VRAM()[0][0], uint32(0))

	// destroy is idempotent
	ref.Destroy()
	ref.Destroy()
	test.Equate(t, alloc.FreeTiles(), sprites.VRAMTiles)
}

func TestAllocatorExhaustion(t *testing.T) {
	alloc := sprites.NewTilesAllocator()

	hog := alloc.Allocate(sprites.VRAMTiles - 2)
	defer hog.Destroy()

	_, err := alloc.AllocateOptional(3)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, sprites.NotEnoughTiles), true)

	// the remaining two tiles are still allocatable
	ref, err := alloc.AllocateOptional(2)
	test.ExpectedSuccess(t, err)
	ref.Destroy()
}

func TestAllocatorPanicOnExhaustion(t *testing.T) {
	alloc := sprites.NewTilesAllocator()
	hog := alloc.Allocate(sprites.VRAMTiles)
	defer hog.Destroy()

	defer test.ExpectedPanic(t)
	alloc.Allocate(1)
}

func TestPlotTiles(t *testing.T) {
	src := make([]display.Tile, 1)
	for r := range src[0] {
		src[0][r] = 0x87654321
	}

	// unaligned full width plot lands across two tiles
	dst := make([]display.Tile, 2)
	sprites.PlotTiles(8, src, 0, 4, dst)
	test.Equate(t, dst[0][0], uint32(0x43210000))
	test.Equate(t, dst[1][0], uint32(0x00008765))
	test.Equate(t, dst[0][7], uint32(0x43210000))

	// narrow plot masks off the unwanted source pixels
	dst = make([]display.Tile, 2)
	sprites.PlotTiles(4, src, 0, 0, dst)
	test.Equate(t, dst[0][0], uint32(0x00004321))
	test.Equate(t, dst[1][0], uint32(0))
}

func TestPlotTilesSourceRow(t *testing.T) {
	// source strip of two tiles: the second tile carries the marker
	src := make([]display.Tile, 2)
	for r := range src[1] {
		src[1][r] = 0x11111111
	}

	dst := make([]display.Tile, 1)
	sprites.PlotTiles(8, src, 8, 0, dst)
	test.Equate(t, dst[0][0], uint32(0x11111111))
}

func TestPlotTilesBounds(t *testing.T) {
	src := make([]display.Tile, 1)
	dst := make([]display.Tile, 1)

	defer test.ExpectedPanic(t)
	sprites.PlotTiles(8, src, 0, 4, dst)
}

func TestCopyTiles(t *testing.T) {
	src := make([]display.Tile, 2)
	src[0][0] = 1
	src[1][0] = 2

	dst := make([]display.Tile, 3)
	sprites.CopyTiles(src, dst)
	test.Equate(t, dst[0][0], uint32(1))
	test.Equate(t, dst[1][0], uint32(2))

	defer test.ExpectedPanic(t)
	sprites.CopyTiles(src, dst[:1])
}

func TestGraphicsTiles(t *testing.T) {
	item := sprites.TilesItem{Tiles: make([]display.Tile, 8), GraphicsCount: 4}
	test.Equate(t, item.TilesPerGraphic(), 2)

	item.Tiles[4][0] = 99
	g := item.GraphicsTiles(2)
	test.Equate(t, len(g), 2)
	test.Equate(t, g[0][0], uint32(99))
}
