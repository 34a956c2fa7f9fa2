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

// Package termscreen is the local terminal frontend. The display is rendered
// with ANSI half-block characters so a 240x160 frame needs a terminal of at
// least 240 columns and 80 rows. Input is read from the same terminal, which
// is placed in raw mode for the duration.
package termscreen

import (
	"io"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/performance/limiter"
	"github.com/jetsetilly/gopherAGB/screen"
)

// Screen is the terminal implementation of the screen.Frontend interface.
// The embedded Composer does the actual frame rendering.
type Screen struct {
	*screen.Composer

	input  *os.File
	output *os.File

	// terminal attributes. canAttr is the state the terminal is restored to
	// on Destroy()
	canAttr unix.Termios
	rawAttr unix.Termios

	lmtr   *limiter.FpsLimiter
	fpsCap bool

	events chan screen.Event

	// closed by Destroy() so the input loop knows to finish
	quit chan struct{}
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen(fpsCap bool) (*Screen, error) {
	scr := &Screen{
		input:  os.Stdin,
		output: os.Stdout,
		fpsCap: fpsCap,
		events: make(chan screen.Event, 8),
		quit:   make(chan struct{}),
	}
	scr.Composer = screen.NewComposer(scr.output)

	if err := termios.Tcgetattr(scr.input.Fd(), &scr.canAttr); err != nil {
		return nil, curated.Errorf("termscreen: %v", err)
	}
	scr.rawAttr = scr.canAttr
	termios.Cfmakeraw(&scr.rawAttr)
	if err := termios.Tcsetattr(scr.input.Fd(), termios.TCSANOW, &scr.rawAttr); err != nil {
		return nil, curated.Errorf("termscreen: %v", err)
	}

	io.WriteString(scr.output, screen.EnableAltScreen)
	io.WriteString(scr.output, screen.HideCursor)
	io.WriteString(scr.output, screen.ClearScreen)

	var err error
	scr.lmtr, err = limiter.NewFPSLimiter(display.FramesPerSecond)
	if err != nil {
		return nil, curated.Errorf("termscreen: %v", err)
	}

	// input loop. the read blocks so this goroutine may linger until the
	// next keypress after Destroy() but the process is quitting by then
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := scr.input.Read(buf)
			if err != nil {
				return
			}
			for _, ev := range screen.ParseEvents(buf[:n]) {
				select {
				case scr.events <- ev:
				case <-scr.quit:
					return
				default:
				}
			}
		}
	}()

	return scr, nil
}

// Events implements the screen.Frontend interface.
func (scr *Screen) Events() <-chan screen.Event {
	return scr.events
}

// NewFrame implements the display.PixelRenderer interface.
func (scr *Screen) NewFrame(frameNum int) error {
	if scr.fpsCap {
		scr.lmtr.Wait()
	}
	return scr.Composer.NewFrame(frameNum)
}

// Destroy implements the screen.Frontend interface. The terminal is restored
// to the state it was in before NewScreen().
func (scr *Screen) Destroy() {
	close(scr.quit)

	io.WriteString(scr.output, screen.ShowCursor)
	io.WriteString(scr.output, screen.DisableAltScreen)

	termios.Tcsetattr(scr.input.Fd(), termios.TCSANOW, &scr.canAttr)
}
