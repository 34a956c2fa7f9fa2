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

// PixelRenderer implementations display, or otherwise work with, visual
// information from the display.
//
// Examples of renderers that display visual information:
//   - sdlscreen
//   - termscreen
//
// Examples of renderers that do not display visual information but only work
// with it:
//   - digest.Video
type PixelRenderer interface {
	NewFrame(frameNum int) error
	NewScanline(scanline int) error

	// SetPixel is called for every visible pixel of every scanline. x and y
	// are measured from zero.
	SetPixel(x int, y int, red byte, green byte, blue byte) error

	// EndRendering is called when the frame is complete.
	EndRendering() error
}
