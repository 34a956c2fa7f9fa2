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

// Package sdlscreen is the SDL frontend. It displays the engine's video
// output in a desktop window and translates SDL input events into frontend
// events.
package sdlscreen

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/performance/limiter"
	"github.com/jetsetilly/gopherAGB/screen"
)

const pixelDepth = 4

const windowTitle = "GopherAGB"

// Screen is a simple SDL implementation of the screen.Frontend interface.
type Screen struct {
	// connects the SDL event queue with the parent process
	events chan screen.Event

	// limit screen updates to a fixed fps
	lmtr   *limiter.FpsLimiter
	fpsCap bool

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying to
	// the renderer
	pixels []byte

	// the amount of scaling applied to each pixel
	scale float32
}

// NewScreen is the preferred method of initialisation for the Screen type.
// The fpsCap argument says whether rendering should be held to the hardware
// refresh rate or allowed to run as fast as it can.
func NewScreen(scale float32, fpsCap bool) (*Screen, error) {
	scr := &Screen{
		events: make(chan screen.Event, 8),
		fpsCap: fpsCap,
	}

	var err error

	err = sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	// texture is applied to the renderer to show the image. we copy the
	// pixels to it every frame. it is the same size as the pixel array and
	// scaling is applied to fit it in the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		display.Width, display.Height)
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	scr.pixels = make([]byte, display.Width*display.Height*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	err = scr.setScaling(scale)
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	scr.lmtr, err = limiter.NewFPSLimiter(display.FramesPerSecond)
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	scr.window.Show()

	return scr, nil
}

func (scr *Screen) setScaling(scale float32) error {
	if scale <= 0 {
		return curated.Errorf("sdlscreen: invalid scale value: %.2f", scale)
	}
	scr.scale = scale

	w := int32(float32(display.Width) * scale)
	h := int32(float32(display.Height) * scale)
	scr.window.SetSize(w, h)

	// make sure everything drawn through the renderer is correctly scaled
	return scr.renderer.SetScale(scale, scale)
}

// Events implements the screen.Frontend interface.
func (scr *Screen) Events() <-chan screen.Event {
	return scr.events
}

// Service polls the SDL event queue. It must be called regularly (once per
// frame is good) and from the main thread.
func (scr *Screen) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.post(screen.Event{Type: screen.EventQuit})

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE, sdl.K_q:
				scr.post(screen.Event{Type: screen.EventQuit})
			case sdl.K_SPACE, sdl.K_RETURN:
				scr.post(screen.Event{
					Type: screen.EventTrigger,
					X:    display.Width / 2,
					Y:    display.Height / 2,
				})
			}

		case *sdl.MouseButtonEvent:
			if ev.Type != sdl.MOUSEBUTTONDOWN {
				continue
			}
			// window coordinates back to display coordinates
			scr.post(screen.Event{
				Type: screen.EventTrigger,
				X:    int(float32(ev.X) / scr.scale),
				Y:    int(float32(ev.Y) / scr.scale),
			})
		}
	}
}

// post the event, dropping it if nobody is keeping up.
func (scr *Screen) post(ev screen.Event) {
	select {
	case scr.events <- ev:
	default:
	}
}

// NewFrame implements the display.PixelRenderer interface.
func (scr *Screen) NewFrame(frameNum int) error {
	if scr.fpsCap {
		scr.lmtr.Wait()
	}
	return nil
}

// NewScanline implements the display.PixelRenderer interface.
func (scr *Screen) NewScanline(scanline int) error {
	return nil
}

// SetPixel implements the display.PixelRenderer interface.
func (scr *Screen) SetPixel(x int, y int, red byte, green byte, blue byte) error {
	i := (y*display.Width + x) * pixelDepth
	if i <= len(scr.pixels)-pixelDepth {
		scr.pixels[i] = red
		scr.pixels[i+1] = green
		scr.pixels[i+2] = blue
	}
	return nil
}

// EndRendering implements the display.PixelRenderer interface. The completed
// frame is copied to the texture and presented.
func (scr *Screen) EndRendering() error {
	err := scr.texture.Update(nil, scr.pixels, display.Width*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// Destroy implements the screen.Frontend interface.
func (scr *Screen) Destroy() {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
}
