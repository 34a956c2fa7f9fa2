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

package hardware

import (
	"github.com/jetsetilly/gopherAGB/hardware/bgs"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/palettes"
	"github.com/jetsetilly/gopherAGB/hardware/sprites"
	"github.com/jetsetilly/gopherAGB/hardware/windows"
	"github.com/jetsetilly/gopherAGB/hblank"
)

// Console is the main container for the emulated components of the console.
type Console struct {
	Display     *display.Display
	Palettes    *palettes.Manager
	Backgrounds *bgs.Manager
	Windows     *windows.Manager
	Sprites     *sprites.Manager
	SpriteTiles *sprites.TilesAllocator
	HBlank      *hblank.Registry

	compositor *compositor
}

// NewConsole creates a new Console and everything associated with the
// hardware.
func NewConsole() *Console {
	dsp := display.NewDisplay()

	con := &Console{
		Display:     dsp,
		Palettes:    palettes.NewManager(dsp),
		Backgrounds: bgs.NewManager(dsp),
		Windows:     windows.NewManager(dsp),
		Sprites:     sprites.NewManager(),
		SpriteTiles: sprites.NewTilesAllocator(),
		HBlank:      hblank.NewRegistry(dsp),
	}
	con.compositor = &compositor{con: con}

	return con
}

// Frame runs one frame of the console: the v-blank work first, then the
// scan-out. The v-blank work regenerates whichever h-blank effect buffers
// have gone stale and commits them to the display as override streams.
func (con *Console) Frame() error {
	con.HBlank.Update()
	con.HBlank.Commit()
	return con.Display.RenderFrame(con.compositor)
}

// Run sets the console running as quickly as possible. The continueCheck
// function is called after every frame; returning false ends the run.
func (con *Console) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	running := true
	var err error

	for running {
		if err = con.Frame(); err != nil {
			return err
		}

		running, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the console for the specified number of frames.
// Useful for FPS measurement and regression tests. The continueCheck
// function may end the run early.
func (con *Console) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (bool, error) { return true, nil }
	}

	target := con.Display.FrameNum() + numFrames

	for con.Display.FrameNum() < target {
		if err := con.Frame(); err != nil {
			return err
		}

		running, err := continueCheck(con.Display.FrameNum())
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}

	return nil
}
