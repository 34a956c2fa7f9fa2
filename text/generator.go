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
	"unicode/utf8"

	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/fixedpoint"
	"github.com/jetsetilly/gopherAGB/hardware/palettes"
	"github.com/jetsetilly/gopherAGB/hardware/sprites"
)

// Alignment of generated text relative to the requested position.
type Alignment int

// List of valid Alignment values.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Generator lays out strings as hardware sprites using one font and one
// palette. The font and palette are fixed at construction; alignment,
// priority, z order and the packing mode may be changed between calls.
type Generator struct {
	font        Font
	paletteItem palettes.Item
	extendedMap map[rune]int

	sprMgr     *sprites.Manager
	tilesAlloc *sprites.TilesAllocator
	palMgr     *palettes.Manager

	alignment       Alignment
	bgPriority      int
	zOrder          int
	oneSpritePerChr bool
}

// NewGenerator is the preferred method of initialisation for the Generator
// type. The font is validated and its extended character map is built once,
// here.
func NewGenerator(font Font, paletteItem palettes.Item,
	sprMgr *sprites.Manager, tilesAlloc *sprites.TilesAllocator, palMgr *palettes.Manager) *Generator {

	font.validate()

	return &Generator{
		font:        font,
		paletteItem: paletteItem,
		extendedMap: font.buildExtendedMap(),
		sprMgr:      sprMgr,
		tilesAlloc:  tilesAlloc,
		palMgr:      palMgr,
		bgPriority:  sprites.MaxBGPriority,
	}
}

// Font the generator lays out with.
func (gen *Generator) Font() Font {
	return gen.font
}

// Alignment of generated text.
func (gen *Generator) Alignment() Alignment {
	return gen.alignment
}

// SetAlignment sets the alignment of subsequently generated text.
func (gen *Generator) SetAlignment(alignment Alignment) {
	if alignment < AlignLeft || alignment > AlignRight {
		panic(curated.Errorf("text: invalid alignment: %d", int(alignment)))
	}
	gen.alignment = alignment
}

// SetBGPriority sets the background priority of subsequently generated
// sprites, in the range [0..3].
func (gen *Generator) SetBGPriority(priority int) {
	if priority < 0 || priority > sprites.MaxBGPriority {
		panic(curated.Errorf("text: invalid BG priority: %d", priority))
	}
	gen.bgPriority = priority
}

// SetZOrder sets the z order of subsequently generated sprites.
func (gen *Generator) SetZOrder(zOrder int) {
	if zOrder < sprites.MinZOrder || zOrder > sprites.MaxZOrder {
		panic(curated.Errorf("text: invalid z order: %d", zOrder))
	}
	gen.zOrder = zOrder
}

// OneSpritePerCharacter reports whether glyph packing is bypassed.
func (gen *Generator) OneSpritePerCharacter() bool {
	return gen.oneSpritePerChr
}

// SetOneSpritePerCharacter bypasses glyph packing: every visible glyph
// becomes its own minimally sized sprite. Simpler to manipulate afterwards
// but much more expensive in hardware sprites.
func (gen *Generator) SetOneSpritePerCharacter(enabled bool) {
	gen.oneSpritePerChr = enabled
}

// Width returns the pixel width of text as laid out by Generate, without
// creating any sprites.
func (gen *Generator) Width(text string) int {
	var p widthPainter
	if gen.font.Proportional() {
		p = &variableWidthPainter{font: gen.font}
	} else {
		p = &fixedWidthPainter{font: gen.font}
	}
	_ = gen.paint(text, p)
	return p.width()
}

// Generate lays out text and appends the covering sprites to output. The
// position is the left edge (or centre, or right edge, per the alignment)
// of the text's baseline cell.
//
// Exhaustion of palettes, tile memory or sprites panics; use
// GenerateOptional when exhaustion is an expected condition. Malformed text
// and extended characters missing from the font panic in both forms.
func (gen *Generator) Generate(x fixedpoint.Fixed, y fixedpoint.Fixed, text string, output *[]*sprites.Sprite) {
	if err := gen.generate(x, y, text, output, false); err != nil {
		panic(err)
	}
}

// GenerateOptional is the recoverable form of Generate. On failure the
// output slice is left at exactly its original length and any sprites
// created during the call are destroyed.
func (gen *Generator) GenerateOptional(x fixedpoint.Fixed, y fixedpoint.Fixed, text string, output *[]*sprites.Sprite) error {
	return gen.generate(x, y, text, output, true)
}

func (gen *Generator) generate(x fixedpoint.Fixed, y fixedpoint.Fixed, text string,
	output *[]*sprites.Sprite, allowFailure bool) error {

	var pal *palettes.Palette
	var err error

	if allowFailure {
		pal, err = gen.palMgr.CreateOptional(gen.paletteItem)
		if err != nil {
			return err
		}
	} else {
		pal = gen.palMgr.Create(gen.paletteItem)
	}

	// the generator's own palette reference only exists to be shared with
	// each generated sprite
	defer pal.Destroy()

	switch gen.alignment {
	case AlignLeft:
	case AlignCenter:
		x -= fixedpoint.FromInt(gen.Width(text) / 2)
	case AlignRight:
		x -= fixedpoint.FromInt(gen.Width(text))
	}

	base := basePainter{
		gen:          gen,
		pal:          pal,
		x:            x,
		y:            y,
		output:       output,
		allowFailure: allowFailure,
	}

	var p painter
	if gen.oneSpritePerChr {
		p = &spritePerCharacterPainter{basePainter: base}
	} else if gen.font.CellHeight == 8 {
		p = &packing8x8Painter{basePainter: base}
	} else {
		p = &packing8x16Painter{basePainter: base}
	}

	mark := len(*output)
	if err := gen.paint(text, p); err != nil {
		// unwind: partial text is never left on screen
		for _, spr := range (*output)[mark:] {
			spr.Destroy()
		}
		*output = (*output)[:mark]
		return err
	}

	return nil
}

// painter is the traversal target shared by width measurement and sprite
// generation. paintCharacter returns an error only under the recoverable
// resource policy.
type painter interface {
	paintSpace()
	paintTab()
	paintCharacter(glyph int) error
}

// paint walks the text once, dispatching every character to the painter.
// The traversal is common to every painter: width measurement and sprite
// generation see exactly the same sequence of advances.
func (gen *Generator) paint(text string, p painter) error {
	for i := 0; i < len(text); {
		c := text[i]

		switch {
		case c == ' ':
			p.paintSpace()
			i++

		case c == '\t':
			p.paintTab()
			i++

		case c >= '!' && c <= '~':
			if err := p.paintCharacter(int(c) - '!'); err != nil {
				return err
			}
			i++

		case c >= utf8.RuneSelf:
			r, sz := utf8.DecodeRuneInString(text[i:])
			if r == utf8.RuneError {
				panic(curated.Errorf("text: malformed UTF-8 sequence (text: %#v)", text))
			}
			glyph, ok := gen.extendedMap[r]
			if !ok {
				panic(curated.Errorf("text: UTF-8 character not found: %c (text: %#v)", r, text))
			}
			if err := p.paintCharacter(glyph); err != nil {
				return err
			}
			i += sz

		default:
			panic(curated.Errorf("text: invalid character: %#x (text: %#v)", c, text))
		}
	}

	return nil
}
