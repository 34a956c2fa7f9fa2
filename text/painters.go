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

package text

import (
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/fixedpoint"
	"github.com/jetsetilly/gopherAGB/hardware/palettes"
	"github.com/jetsetilly/gopherAGB/hardware/sprites"
)

const (
	// a packed text sprite is always 32 pixels wide
	maxColumnsPerSprite = 32

	// every glyph of a fixed width font is 8 pixels wide
	fixedCharacterWidth = 8
)

// widthPainter is a painter that accumulates pixel width instead of
// emitting sprites.
type widthPainter interface {
	painter
	width() int
}

type fixedWidthPainter struct {
	font Font
	w    int
}

func (p *fixedWidthPainter) paintSpace() {
	p.w += fixedCharacterWidth + p.font.SpaceBetweenCharacters
}

func (p *fixedWidthPainter) paintTab() {
	p.w += fixedCharacterWidth*4 + p.font.SpaceBetweenCharacters
}

func (p *fixedWidthPainter) paintCharacter(_ int) error {
	p.w += fixedCharacterWidth + p.font.SpaceBetweenCharacters
	return nil
}

func (p *fixedWidthPainter) width() int {
	return p.w
}

type variableWidthPainter struct {
	font Font
	w    int
}

func (p *variableWidthPainter) paintSpace() {
	p.w += int(p.font.Widths[0]) + p.font.SpaceBetweenCharacters
}

func (p *variableWidthPainter) paintTab() {
	p.w += int(p.font.Widths[0])*4 + p.font.SpaceBetweenCharacters
}

func (p *variableWidthPainter) paintCharacter(glyph int) error {
	p.w += int(p.font.Widths[glyph+1]) + p.font.SpaceBetweenCharacters
	return nil
}

func (p *variableWidthPainter) width() int {
	return p.w
}

// basePainter is the common part of the sprite emitting painters: the
// generator's configuration, the shared palette, the advancing pixel cursor
// and the output slice.
type basePainter struct {
	gen          *Generator
	pal          *palettes.Palette
	x            fixedpoint.Fixed
	y            fixedpoint.Fixed
	output       *[]*sprites.Sprite
	allowFailure bool
}

// buildSprite allocates a tile region, creates a sprite over it centred on
// the current cursor and appends it to the output. It returns the region's
// tile memory for the caller to plot glyphs into. The allocator hands out
// zeroed regions so unpainted columns are already transparent.
func (b *basePainter) buildSprite(size sprites.Size, tileCount int) ([]display.Tile, error) {
	var ref *sprites.TilesRef
	var err error

	if b.allowFailure {
		ref, err = b.gen.tilesAlloc.AllocateOptional(tileCount)
		if err != nil {
			return nil, err
		}
	} else {
		ref = b.gen.tilesAlloc.Allocate(tileCount)
	}

	vram := ref.VRAM()
	share := b.pal.Share()

	bld := sprites.NewBuilder(sprites.Wide, size, ref, share)
	bld.SetPosition(b.x+fixedpoint.FromInt(maxColumnsPerSprite/2), b.y)
	bld.SetBGPriority(b.gen.bgPriority)
	bld.SetZOrder(b.gen.zOrder)

	var spr *sprites.Sprite
	if b.allowFailure {
		spr, err = b.gen.sprMgr.CreateOptional(bld)
		if err != nil {
			ref.Destroy()
			share.Destroy()
			return nil, err
		}
	} else {
		spr = b.gen.sprMgr.Create(bld)
	}

	*b.output = append(*b.output, spr)
	return vram, nil
}

// spritePerCharacterPainter emits one minimally sized sprite per visible
// glyph. No packing, no shared tile regions.
type spritePerCharacterPainter struct {
	basePainter
}

func (p *spritePerCharacterPainter) paintSpace() {
	p.x += fixedpoint.FromInt(p.spaceWidth() + p.gen.font.SpaceBetweenCharacters)
}

func (p *spritePerCharacterPainter) paintTab() {
	p.x += fixedpoint.FromInt(p.spaceWidth()*4 + p.gen.font.SpaceBetweenCharacters)
}

func (p *spritePerCharacterPainter) spaceWidth() int {
	if p.gen.font.Proportional() {
		return int(p.gen.font.Widths[0])
	}
	return fixedCharacterWidth
}

func (p *spritePerCharacterPainter) paintCharacter(glyph int) error {
	fnt := p.gen.font

	advance := fixedCharacterWidth
	if fnt.Proportional() {
		advance = int(fnt.Widths[glyph+1])
		if advance == 0 {
			// zero width glyphs emit nothing
			p.x += fixedpoint.FromInt(fnt.SpaceBetweenCharacters)
			return nil
		}
	}

	var ref *sprites.TilesRef
	var err error

	if p.allowFailure {
		ref, err = p.gen.tilesAlloc.CreateFromItemOptional(fnt.Tiles, glyph)
		if err != nil {
			return err
		}
	} else {
		ref = p.gen.tilesAlloc.CreateFromItem(fnt.Tiles, glyph)
	}

	shape := sprites.Square
	if fnt.CellHeight == 16 {
		shape = sprites.Tall
	}

	share := p.pal.Share()
	bld := sprites.NewBuilder(shape, sprites.Small, ref, share)
	bld.SetPosition(p.x+fixedpoint.FromInt(fixedCharacterWidth/2), p.y)
	bld.SetBGPriority(p.gen.bgPriority)
	bld.SetZOrder(p.gen.zOrder)

	var spr *sprites.Sprite
	if p.allowFailure {
		spr, err = p.gen.sprMgr.CreateOptional(bld)
		if err != nil {
			ref.Destroy()
			share.Destroy()
			return err
		}
	} else {
		spr = p.gen.sprMgr.Create(bld)
	}

	*p.output = append(*p.output, spr)
	p.x += fixedpoint.FromInt(advance + fnt.SpaceBetweenCharacters)
	return nil
}

// packing8x8Painter packs glyphs of an 8 pixel cell height font into 32x8
// sprites: four glyph cells per sprite for a fixed width font, a running
// pixel column for a proportional one.
type packing8x8Painter struct {
	basePainter
	vram []display.Tile

	// pixel column cursor within the current sprite. starts past the end so
	// the first glyph builds a sprite
	column int
}

func (p *packing8x8Painter) paintSpace() {
	fnt := p.gen.font
	if fnt.Proportional() {
		adv := int(fnt.Widths[0]) + fnt.SpaceBetweenCharacters
		p.column += adv
		p.x += fixedpoint.FromInt(adv)
		return
	}

	// a space inside an open sprite consumes a glyph cell
	if p.vram != nil && p.column < maxColumnsPerSprite {
		p.column += fixedCharacterWidth
	}
	p.x += fixedpoint.FromInt(fixedCharacterWidth + fnt.SpaceBetweenCharacters)
}

func (p *packing8x8Painter) paintTab() {
	fnt := p.gen.font
	if fnt.Proportional() {
		adv := int(fnt.Widths[0])*4 + fnt.SpaceBetweenCharacters
		p.column += adv
		p.x += fixedpoint.FromInt(adv)
		return
	}

	// a tab always starts a fresh sprite for the next glyph
	p.column = maxColumnsPerSprite
	p.x += fixedpoint.FromInt(fixedCharacterWidth*4 + fnt.SpaceBetweenCharacters)
}

func (p *packing8x8Painter) paintCharacter(glyph int) error {
	fnt := p.gen.font

	if !fnt.Proportional() {
		if p.vram == nil || p.column+fixedCharacterWidth > maxColumnsPerSprite {
			vram, err := p.buildSprite(sprites.Normal, maxColumnsPerSprite/8)
			if err != nil {
				return err
			}
			p.vram = vram
			p.column = 0
		}

		sprites.CopyTiles(fnt.Tiles.GraphicsTiles(glyph), p.vram[p.column/8:])
		p.column += fixedCharacterWidth
		p.x += fixedpoint.FromInt(fixedCharacterWidth + fnt.SpaceBetweenCharacters)
		return nil
	}

	width := int(fnt.Widths[glyph+1])
	if width == 0 {
		p.column += fnt.SpaceBetweenCharacters
		p.x += fixedpoint.FromInt(fnt.SpaceBetweenCharacters)
		return nil
	}

	adv := width + fnt.SpaceBetweenCharacters
	if p.vram == nil || p.column+adv > maxColumnsPerSprite {
		vram, err := p.buildSprite(sprites.Normal, maxColumnsPerSprite/8)
		if err != nil {
			return err
		}
		p.vram = vram
		p.column = 0
	}

	sprites.PlotTiles(width, fnt.Tiles.Tiles, glyph*8, p.column, p.vram)
	p.column += adv
	p.x += fixedpoint.FromInt(adv)
	return nil
}

// packing8x16Painter packs glyphs of a 16 pixel cell height font into 32x16
// sprites. Each glyph occupies two stacked tiles: its upper half in the
// sprite's first tile row, its lower half directly below in the second.
type packing8x16Painter struct {
	basePainter
	vram   []display.Tile
	column int
}

func (p *packing8x16Painter) paintSpace() {
	fnt := p.gen.font
	if fnt.Proportional() {
		adv := int(fnt.Widths[0]) + fnt.SpaceBetweenCharacters
		p.column += adv
		p.x += fixedpoint.FromInt(adv)
		return
	}

	if p.vram != nil && p.column < maxColumnsPerSprite {
		p.column += fixedCharacterWidth
	}
	p.x += fixedpoint.FromInt(fixedCharacterWidth + fnt.SpaceBetweenCharacters)
}

func (p *packing8x16Painter) paintTab() {
	fnt := p.gen.font
	if fnt.Proportional() {
		adv := int(fnt.Widths[0])*4 + fnt.SpaceBetweenCharacters
		p.column += adv
		p.x += fixedpoint.FromInt(adv)
		return
	}

	p.column = maxColumnsPerSprite
	p.x += fixedpoint.FromInt(fixedCharacterWidth*4 + fnt.SpaceBetweenCharacters)
}

func (p *packing8x16Painter) paintCharacter(glyph int) error {
	fnt := p.gen.font

	if !fnt.Proportional() {
		if p.vram == nil || p.column+fixedCharacterWidth > maxColumnsPerSprite {
			vram, err := p.buildSprite(sprites.Big, (maxColumnsPerSprite/8)*2)
			if err != nil {
				return err
			}
			p.vram = vram
			p.column = 0
		}

		src := fnt.Tiles.GraphicsTiles(glyph)
		cell := p.column / 8
		sprites.CopyTiles(src[:1], p.vram[cell:])
		sprites.CopyTiles(src[1:], p.vram[cell+maxColumnsPerSprite/8:])
		p.column += fixedCharacterWidth
		p.x += fixedpoint.FromInt(fixedCharacterWidth + fnt.SpaceBetweenCharacters)
		return nil
	}

	width := int(fnt.Widths[glyph+1])
	if width == 0 {
		p.column += fnt.SpaceBetweenCharacters
		p.x += fixedpoint.FromInt(fnt.SpaceBetweenCharacters)
		return nil
	}

	adv := width + fnt.SpaceBetweenCharacters
	if p.vram == nil || p.column+adv > maxColumnsPerSprite {
		vram, err := p.buildSprite(sprites.Big, (maxColumnsPerSprite/8)*2)
		if err != nil {
			return err
		}
		p.vram = vram
		p.column = 0
	}

	// upper half into the first tile row, lower half into the second,
	// addressed past the first row in the destination's column space
	sprites.PlotTiles(width, fnt.Tiles.Tiles, glyph*16, p.column, p.vram)
	sprites.PlotTiles(width, fnt.Tiles.Tiles, glyph*16+8, p.column+maxColumnsPerSprite, p.vram)

	p.column += adv
	p.x += fixedpoint.FromInt(adv)
	return nil
}
