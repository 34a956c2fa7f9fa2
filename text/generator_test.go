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

package text_test

import (
	"testing"

	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/fixedpoint"
	"github.com/jetsetilly/gopherAGB/hardware/palettes"
	"github.com/jetsetilly/gopherAGB/hardware/sprites"
	"github.com/jetsetilly/gopherAGB/test"
	"github.com/jetsetilly/gopherAGB/text"
)

type testRig struct {
	sprMgr     *sprites.Manager
	tilesAlloc *sprites.TilesAllocator
	palMgr     *palettes.Manager
}

func newTestRig() *testRig {
	return &testRig{
		sprMgr:     sprites.NewManager(),
		tilesAlloc: sprites.NewTilesAllocator(),
		palMgr:     palettes.NewManager(display.NewDisplay()),
	}
}

func (rig *testRig) generator(fnt text.Font) *text.Generator {
	item := palettes.Item{Colors: []palettes.Color{
		palettes.RGB(0, 0, 0), palettes.RGB(31, 31, 31),
	}}
	return text.NewGenerator(fnt, item, rig.sprMgr, rig.tilesAlloc, rig.palMgr)
}

// glyph tiles are stamped with the glyph index so tests can identify which
// glyph ended up where in tile memory.
func glyphTiles(count int, tilesPerGlyph int) []display.Tile {
	tiles := make([]display.Tile, count*tilesPerGlyph)
	for g := 0; g < count; g++ {
		for t := 0; t < tilesPerGlyph; t++ {
			for r := 0; r < 8; r++ {
				tiles[g*tilesPerGlyph+t][r] = uint32(g + 1)
			}
		}
	}
	return tiles
}

func fixedFont(extended ...string) text.Font {
	count := text.MinimumGraphics + len(extended)
	return text.Font{
		Tiles:         sprites.TilesItem{Tiles: glyphTiles(count, 1), GraphicsCount: count},
		CellHeight:    8,
		ExtendedChars: extended,
	}
}

func proportionalFont(widths func(glyph int) int8) text.Font {
	fnt := fixedFont()
	fnt.Widths = make([]int8, text.MinimumGraphics+1)
	fnt.Widths[0] = 4 // space
	for g := 0; g < text.MinimumGraphics; g++ {
		fnt.Widths[g+1] = widths(g)
	}
	return fnt
}

func tallFont() text.Font {
	return text.Font{
		Tiles: sprites.TilesItem{
			Tiles:         glyphTiles(text.MinimumGraphics, 2),
			GraphicsCount: text.MinimumGraphics,
		},
		CellHeight: 16,
	}
}

func TestFixedWidth(t *testing.T) {
	rig := newTestRig()
	gen := rig.generator(fixedFont())

	// 'A', 'B', space, 'C': four 8 pixel advances
	test.Equate(t, gen.Width("AB C"), 32)
	test.Equate(t, gen.Width(""), 0)
	test.Equate(t, gen.Width("\t"), 32)
}

func TestVariableWidth(t *testing.T) {
	rig := newTestRig()
	gen := rig.generator(proportionalFont(func(g int) int8 {
		return int8(3 + g%3)
	}))

	// 'A' = glyph 32, 'B' = 33, 'C' = 34
	wA := 3 + 32%3
	wB := 3 + 33%3
	wC := 3 + 34%3
	test.Equate(t, gen.Width("AB C"), wA+wB+4+wC)

	// tab advances by four space widths
	test.Equate(t, gen.Width("\t"), 16)
}

func TestFixedPacking(t *testing.T) {
	rig := newTestRig()
	gen := rig.generator(fixedFont())

	var out []*sprites.Sprite
	gen.Generate(0, 0, "ABCDE", &out)

	// four glyphs per 32x8 sprite; the fifth starts a new one
	test.Equate(t, len(out), 2)

	x, _ := out[0].Position()
	test.Equate(t, x.Int(), 16)
	x, _ = out[1].Position()
	test.Equate(t, x.Int(), 48)

	// glyph cells hold the stamped glyph indices; 'A' is glyph 32
	vram := out[0].Tiles().VRAM()
	test.Equate(t, vram[0][0], uint32(33))
	test.Equate(t, vram[1][0], uint32(34))
	test.Equate(t, vram[3][0], uint32(36))
	test.Equate(t, out[1].Tiles().VRAM()[0][0], uint32(37))

	for _, spr := range out {
		spr.Destroy()
	}
	test.Equate(t, rig.sprMgr.Count(), 0)
	test.Equate(t, rig.tilesAlloc.FreeTiles(), sprites.VRAMTiles)
}

func TestFixedPackingSpaces(t *testing.T) {
	rig := newTestRig()
	gen := rig.generator(fixedFont())

	var out []*sprites.Sprite
	gen.Generate(0, 0, "A BC", &out)

	// the space consumes a cell of the open sprite
	test.Equate(t, len(out), 1)
	vram := out[0].Tiles().VRAM()
	test.Equate(t, vram[0][0], uint32(33))
	test.Equate(t, vram[1][0], uint32(0))
	test.Equate(t, vram[2][0], uint32(34))

	// a tab forces the next glyph into a fresh sprite
	out = out[:0]
	gen.Generate(0, 0, "A\tB", &out)
	test.Equate(t, len(out), 2)
}

func TestVariablePacking(t *testing.T) {
	rig := newTestRig()
	gen := rig.generator(proportionalFont(func(_ int) int8 { return 6 }))

	var out []*sprites.Sprite
	gen.Generate(0, 0, "ABCDEF", &out)

	// six 6 pixel glyphs: five fit in 32 columns, the sixth starts a new
	// sprite
	test.Equate(t, len(out), 2)

	// 'A' plots at column 0: glyph 32's stamp in the low pixels of tile 0.
	// 'B' plots at column 6, its first pixels landing in the top nibbles of
	// tile 0.
	vram := out[0].Tiles().VRAM()
	test.Equate(t, vram[0][0]&0xf, uint32(33&0xf))
	test.Equate(t, vram[0][0]>>24, uint32(34))

	for _, spr := range out {
		spr.Destroy()
	}
}

func TestZeroWidthGlyph(t *testing.T) {
	rig := newTestRig()
	gen := rig.generator(proportionalFont(func(g int) int8 {
		if g == 33 { // 'B'
			return 0
		}
		return 6
	}))

	// zero width glyphs emit nothing
	var out []*sprites.Sprite
	gen.Generate(0, 0, "AB", &out)
	test.Equate(t, len(out), 1)
	test.Equate(t, gen.Width("AB"), 6)
}

func Test8x16Packing(t *testing.T) {
	rig := newTestRig()
	gen := rig.generator(tallFont())

	var out []*sprites.Sprite
	gen.Generate(0, 0, "AB", &out)
	test.Equate(t, len(out), 1)

	// a 32x16 sprite holds eight tiles: four upper halves then four lower
	w, h := out[0].Dimensions()
	test.Equate(t, w, 32)
	test.Equate(t, h, 16)

	vram := out[0].Tiles().VRAM()
	test.Equate(t, len(vram), 8)
	test.Equate(t, vram[0][0], uint32(33))
	test.Equate(t, vram[4][0], uint32(33))
	test.Equate(t, vram[1][0], uint32(34))
	test.Equate(t, vram[5][0], uint32(34))
}

func TestOneSpritePerCharacter(t *testing.T) {
	rig := newTestRig()
	gen := rig.generator(fixedFont())
	gen.SetOneSpritePerCharacter(true)

	var out []*sprites.Sprite
	gen.Generate(0, 0, "AB C", &out)
	test.Equate(t, len(out), 3)

	// each sprite is minimally sized and centred on its own cell
	w, h := out[0].Dimensions()
	test.Equate(t, w, 8)
	test.Equate(t, h, 8)

	x, _ := out[0].Position()
	test.Equate(t, x.Int(), 4)
	x, _ = out[1].Position()
	test.Equate(t, x.Int(), 12)
	x, _ = out[2].Position()
	test.Equate(t, x.Int(), 28)
}

func TestAlignment(t *testing.T) {
	rig := newTestRig()
	gen := rig.generator(fixedFont())

	var out []*sprites.Sprite
	gen.SetAlignment(text.AlignCenter)
	gen.Generate(fixedpoint.FromInt(100), 0, "ABCD", &out)
	x, _ := out[0].Position()
	test.Equate(t, x.Int(), 100-16+16)

	out = out[:0]
	gen.SetAlignment(text.AlignRight)
	gen.Generate(fixedpoint.FromInt(100), 0, "ABCD", &out)
	x, _ = out[0].Position()
	test.Equate(t, x.Int(), 100-32+16)
}

func TestExtendedCharacters(t *testing.T) {
	rig := newTestRig()
	gen := rig.generator(fixedFont("á", "é"))

	var out []*sprites.Sprite
	gen.Generate(0, 0, "aá", &out)
	test.Equate(t, len(out), 1)

	// 'é' is the second extended glyph
	vram := out[0].Tiles().VRAM()
	test.Equate(t, vram[0][0], uint32('a'-'!'+1))
	test.Equate(t, vram[1][0], uint32(text.MinimumGraphics+1))

	out = out[:0]
	gen.Generate(0, 0, "é", &out)
	test.Equate(t, out[0].Tiles().VRAM()[0][0], uint32(text.MinimumGraphics+2))
}

func TestUnknownExtendedCharacter(t *testing.T) {
	rig := newTestRig()
	gen := rig.generator(fixedFont("á"))

	// a code point absent from the font is fatal even on the recoverable
	// path
	var out []*sprites.Sprite
	defer test.ExpectedPanic(t)
	_ = gen.GenerateOptional(0, 0, "é", &out)
}

func TestInvalidCharacter(t *testing.T) {
	rig := newTestRig()
	gen := rig.generator(fixedFont())

	defer test.ExpectedPanic(t)
	_ = gen.Width("a\nb")
}

func TestGenerateOptionalParity(t *testing.T) {
	rig := newTestRig()
	gen := rig.generator(fixedFont())

	var out []*sprites.Sprite
	gen.Generate(0, 0, "ABCDE FG", &out)

	positions := make([]int, len(out))
	for i, spr := range out {
		x, _ := spr.Position()
		positions[i] = x.Int()
	}
	for _, spr := range out {
		spr.Destroy()
	}

	// the recoverable path produces identical output when resources allow
	var opt []*sprites.Sprite
	err := gen.GenerateOptional(0, 0, "ABCDE FG", &opt)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(opt), len(positions))
	for i, spr := range opt {
		x, _ := spr.Position()
		test.Equate(t, x.Int(), positions[i])
	}
}

func TestGenerateOptionalRollback(t *testing.T) {
	rig := newTestRig()
	gen := rig.generator(fixedFont())

	// leave room for one 4 tile text sprite but not two
	hog := rig.tilesAlloc.Allocate(sprites.VRAMTiles - 6)
	defer hog.Destroy()

	// eight glyphs need two sprites; the first is created, the second
	// allocation fails mid string and the call unwinds completely
	var out []*sprites.Sprite
	err := gen.GenerateOptional(0, 0, "ABCDEFGH", &out)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, sprites.NotEnoughTiles))
	test.Equate(t, len(out), 0)
	test.Equate(t, rig.tilesAlloc.FreeTiles(), 6)
	test.Equate(t, rig.sprMgr.Count(), 0)

	// the same text succeeds once the pressure is released
	hog.Destroy()
	err = gen.GenerateOptional(0, 0, "ABCDEFGH", &out)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(out), 2)
}

func TestGeneratePanicOnExhaustion(t *testing.T) {
	rig := newTestRig()
	gen := rig.generator(fixedFont())

	hog := rig.tilesAlloc.Allocate(sprites.VRAMTiles - 2)
	defer hog.Destroy()

	var out []*sprites.Sprite
	defer test.ExpectedPanic(t)
	gen.Generate(0, 0, "A", &out)
}
