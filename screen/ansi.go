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

package screen

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherAGB/hardware/display"
)

const (
	esc = "\x1b"
	csi = esc + "["
)

// ANSI control sequences used by the terminal frontends.
const (
	Reset            = csi + "0m"
	ClearScreen      = csi + "2J"
	HideCursor       = csi + "?25l"
	ShowCursor       = csi + "?25h"
	EnableAltScreen  = csi + "?1049h"
	DisableAltScreen = csi + "?1049l"
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row int, col int) string {
	return fmt.Sprintf("%s%d;%dH", csi, row, col)
}

const pixelDepth = 3

// Composer is an implementation of the display.PixelRenderer interface that
// renders the frame as ANSI half-block characters. Each terminal cell shows
// two vertically stacked pixels: the upper-half-block rune with the top pixel
// as the foreground colour and the bottom pixel as the background colour.
//
// Only cells that changed since the previous frame are written out, so a
// static image costs almost nothing on the wire. This matters for the SSH
// frontend in particular.
type Composer struct {
	output io.Writer

	pixels []byte
	prev   []byte

	firstFrame bool
}

// NewComposer is the preferred method of initialisation for the Composer
// type.
func NewComposer(output io.Writer) *Composer {
	com := &Composer{
		output:     output,
		pixels:     make([]byte, display.Width*display.Height*pixelDepth),
		prev:       make([]byte, display.Width*display.Height*pixelDepth),
		firstFrame: true,
	}
	return com
}

// NewFrame implements the display.PixelRenderer interface.
func (com *Composer) NewFrame(frameNum int) error {
	return nil
}

// NewScanline implements the display.PixelRenderer interface.
func (com *Composer) NewScanline(scanline int) error {
	return nil
}

// SetPixel implements the display.PixelRenderer interface.
func (com *Composer) SetPixel(x int, y int, red byte, green byte, blue byte) error {
	i := (y*display.Width + x) * pixelDepth
	if i <= len(com.pixels)-pixelDepth {
		com.pixels[i] = red
		com.pixels[i+1] = green
		com.pixels[i+2] = blue
	}
	return nil
}

// EndRendering implements the display.PixelRenderer interface. The completed
// frame is composed and written to the output in one write.
func (com *Composer) EndRendering() error {
	sb := &strings.Builder{}

	if com.firstFrame {
		sb.WriteString(ClearScreen)
	}

	// cursor position after the previously written cell. MoveTo sequences
	// are only emitted when a changed cell doesn't follow on directly
	curRow := -1
	curCol := -1

	for row := 0; row < display.Height/2; row++ {
		top := row * 2 * display.Width * pixelDepth
		bot := (row*2 + 1) * display.Width * pixelDepth

		for col := 0; col < display.Width; col++ {
			t := top + col*pixelDepth
			b := bot + col*pixelDepth

			if !com.firstFrame && cellEqual(com.pixels, com.prev, t, b) {
				continue
			}

			if row != curRow || col != curCol {
				sb.WriteString(MoveTo(row+1, col+1))
			}
			writeCell(sb, com.pixels[t:t+pixelDepth], com.pixels[b:b+pixelDepth])
			curRow = row
			curCol = col + 1
		}
	}

	sb.WriteString(Reset)

	copy(com.prev, com.pixels)
	com.firstFrame = false

	_, err := io.WriteString(com.output, sb.String())
	return err
}

func cellEqual(pixels []byte, prev []byte, t int, b int) bool {
	for i := 0; i < pixelDepth; i++ {
		if pixels[t+i] != prev[t+i] || pixels[b+i] != prev[b+i] {
			return false
		}
	}
	return true
}

// writeCell writes a cell's combined SGR sequence and the half-block rune.
// The combined form resets existing attributes so no state leaks between
// cells.
func writeCell(sb *strings.Builder, fg []byte, bg []byte) {
	sb.WriteString(csi + "0;38;2;")
	sb.WriteString(strconv.Itoa(int(fg[0])))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(fg[1])))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(fg[2])))
	sb.WriteString(";48;2;")
	sb.WriteString(strconv.Itoa(int(bg[0])))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(bg[1])))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(bg[2])))
	sb.WriteByte('m')
	sb.WriteRune('▀')
}

// ParseEvents converts raw terminal input into frontend events. Handles q and
// ctrl-c for quitting and the space and return keys for poking the display.
func ParseEvents(data []byte) []Event {
	var events []Event

	for _, b := range data {
		switch b {
		case 'q', 'Q', 3: // 3 is ctrl-c
			events = append(events, Event{Type: EventQuit})
		case ' ', '\r':
			// terminals can't give us a position so poke the centre of the
			// display
			events = append(events, Event{
				Type: EventTrigger,
				X:    display.Width / 2,
				Y:    display.Height / 2,
			})
		}
	}

	return events
}
