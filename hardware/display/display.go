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

package display

// Width and Height are the dimensions of the visible display in pixels. One
// scanline is Width pixels; one frame is Height scanlines followed by the
// vertical blanking interval.
const (
	Width  = 240
	Height = 160
)

// FramesPerSecond is the refresh rate of the hardware display. The real
// hardware runs a shade under 60Hz but the difference is inside the jitter of
// any frame limiter.
const FramesPerSecond = 60

// MaxOverrides is the maximum number of scanline override streams that can
// be attached to the display at once. The limit reflects the small number of
// h-blank DMA/interrupt channels the scan-out hardware can service.
const MaxOverrides = 8

// Override is a per-scanline register value stream. During scan-out the
// display writes Values[y] to Register in the h-blank interval preceding
// scanline y.
type Override struct {
	Register RegisterRef

	// one value per scanline. the slice is not copied: whoever registered
	// the override owns the backing array and must keep it stable for the
	// duration of the frame
	Values []uint16
}

// LineRenderer is implemented by whatever composes a single scanline of the
// picture from the current register file state. The compositor writes RGB15
// values into the line slice (Width entries).
type LineRenderer interface {
	RenderLine(y int, regs *RegisterFile, line []uint16)
}

// Display is the scan-out side of the console. It owns the register file
// that the various managers commit state into, the list of per-scanline
// override streams for the current frame, and the pixel renderers that
// receive the composed picture.
type Display struct {
	Registers RegisterFile

	overrides []Override
	renderers []PixelRenderer

	frameNum int
	line     [Width]uint16
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{
		overrides: make([]Override, 0, MaxOverrides),
	}
}

// AddPixelRenderer registers an implementation of PixelRenderer. Multiple
// implementations can be registered.
func (dsp *Display) AddPixelRenderer(r PixelRenderer) {
	dsp.renderers = append(dsp.renderers, r)
}

// ClearOverrides removes all override streams. Called at the top of every
// v-blank, before the h-blank effect registry commits the streams for the
// upcoming frame.
func (dsp *Display) ClearOverrides() {
	dsp.overrides = dsp.overrides[:0]
}

// AddOverride attaches a per-scanline override stream for the upcoming
// frame. The values slice must have one entry per scanline.
func (dsp *Display) AddOverride(reg RegisterRef, values []uint16) {
	if len(values) != Height {
		panic("override stream must have one value per scanline")
	}
	dsp.overrides = append(dsp.overrides, Override{Register: reg, Values: values})
}

// Overrides returns the override streams attached for the current frame.
// Used by tests to observe exactly what the h-blank machinery has scheduled.
func (dsp *Display) Overrides() []Override {
	return dsp.overrides
}

// FrameNum returns the number of frames rendered so far.
func (dsp *Display) FrameNum() int {
	return dsp.frameNum
}

// RenderFrame runs the scan-out for one frame. For every scanline the
// attached override streams are applied to the register file first, exactly
// as the h-blank DMA would do, and then the line renderer composes the line
// from the resulting register state.
//
// The line renderer can be nil, in which case every pixel takes the backdrop
// colour.
func (dsp *Display) RenderFrame(lr LineRenderer) error {
	dsp.frameNum++

	for _, r := range dsp.renderers {
		if err := r.NewFrame(dsp.frameNum); err != nil {
			return err
		}
	}

	for y := 0; y < Height; y++ {
		// h-blank: per-scanline register values take effect before the line
		// is scanned
		for _, ov := range dsp.overrides {
			dsp.Registers.Write(ov.Register, ov.Values[y])
		}

		for _, r := range dsp.renderers {
			if err := r.NewScanline(y); err != nil {
				return err
			}
		}

		if lr != nil {
			lr.RenderLine(y, &dsp.Registers, dsp.line[:])
		} else {
			backdrop := dsp.Registers.Read(RegisterRef{Bank: BankPalBG, Index: 0})
			for x := range dsp.line {
				dsp.line[x] = backdrop
			}
		}

		for x := 0; x < Width; x++ {
			red, green, blue := rgb15(dsp.line[x])
			for _, r := range dsp.renderers {
				if err := r.SetPixel(x, y, red, green, blue); err != nil {
					return err
				}
			}
		}
	}

	for _, r := range dsp.renderers {
		if err := r.EndRendering(); err != nil {
			return err
		}
	}

	return nil
}

// rgb15 expands a 15 bit hardware colour into 8 bits per channel.
func rgb15(v uint16) (red byte, green byte, blue byte) {
	r := byte(v & 0x1f)
	g := byte((v >> 5) & 0x1f)
	b := byte((v >> 10) & 0x1f)
	return r<<3 | r>>2, g<<3 | g>>2, b<<3 | b>>2
}
