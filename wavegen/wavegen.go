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

// Package wavegen fills per-scanline delta buffers with simple geometric
// shapes for the h-blank effects to stream: a sine wave for background
// distortion and a circle for window boundary effects.
package wavegen

import (
	"math"

	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/fixedpoint"
	"github.com/jetsetilly/gopherAGB/hardware/windows"
)

// Wave fills a deltas buffer with a sine wave, one sample per scanline.
// Suitable for a background position effect.
type Wave struct {
	speed     int
	amplitude int
}

// NewWave is the preferred method of initialisation for the Wave type.
func NewWave() *Wave {
	return &Wave{speed: 1024, amplitude: 4}
}

// SetSpeed sets how fast the wave oscillates down the screen. Higher values
// give more cycles per frame.
func (w *Wave) SetSpeed(speed int) {
	if speed <= 0 {
		panic(curated.Errorf("wavegen: invalid wave speed: %d", speed))
	}
	w.speed = speed
}

// SetAmplitude sets the horizontal displacement of the wave's peaks in
// pixels.
func (w *Wave) SetAmplitude(amplitude int) {
	if amplitude <= 0 {
		panic(curated.Errorf("wavegen: invalid wave amplitude: %d", amplitude))
	}
	w.amplitude = amplitude
}

// Generate fills deltas with one full buffer of wave samples. The buffer
// must hold one entry per scanline.
func (w *Wave) Generate(deltas []fixedpoint.Fixed) {
	if len(deltas) != display.Height {
		panic(curated.Errorf("wavegen: deltas buffer must have one entry per scanline: %d", len(deltas)))
	}

	amp := float64(w.amplitude)
	for i := range deltas {
		angle := float64(i*w.speed) / (float64(display.Height) * 64)
		deltas[i] = fixedpoint.FromFloat(math.Sin(angle*2*math.Pi) * amp)
	}
}

// Circle fills a window boundaries buffer with a circle around an origin.
// Scanlines the circle does not reach collapse the window to nothing.
type Circle struct {
	originX fixedpoint.Fixed
	originY fixedpoint.Fixed
	radius  int
}

// NewCircle is the preferred method of initialisation for the Circle type.
func NewCircle() *Circle {
	return &Circle{}
}

// SetOrigin sets the centre of the circle in display coordinates.
func (c *Circle) SetOrigin(x fixedpoint.Fixed, y fixedpoint.Fixed) {
	c.originX = x
	c.originY = y
}

// Radius of the circle in pixels.
func (c *Circle) Radius() int {
	return c.radius
}

// SetRadius sets the radius of the circle in pixels.
func (c *Circle) SetRadius(radius int) {
	if radius < 0 {
		panic(curated.Errorf("wavegen: invalid circle radius: %d", radius))
	}
	c.radius = radius
}

// Generate fills deltas with the circle's horizontal extents, one boundary
// pair per scanline, relative to the circle's origin. The deltas are meant
// for a window boundaries effect whose window is positioned on the origin.
func (c *Circle) Generate(deltas []windows.Boundaries) {
	if len(deltas) != display.Height {
		panic(curated.Errorf("wavegen: deltas buffer must have one entry per scanline: %d", len(deltas)))
	}

	oy := c.originY.Round()
	rr := float64(c.radius) * float64(c.radius)

	for i := range deltas {
		dy := float64(i - oy)
		if hw := rr - dy*dy; hw > 0 {
			half := math.Sqrt(hw)
			deltas[i] = windows.Boundaries{
				fixedpoint.FromFloat(-half),
				fixedpoint.FromFloat(half),
			}
		} else {
			// no circle on this scanline: collapse the window
			deltas[i] = windows.Boundaries{}
		}
	}
}
