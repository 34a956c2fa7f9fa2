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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopherAGB/hardware/display"
)

const pixelDepth = 3

// Video is an implementation of the display.PixelRenderer interface. It
// generates a SHA-1 value of the image every frame. It does not display the
// image anywhere.
//
// The fingerprints are chained: the hash of the previous frame is folded into
// the hash of the current frame, so a single value at the end of a run
// identifies the entire video sequence.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	dig := &Video{}

	// the head of the pixels array holds the previous frame's digest value
	dig.pixels = make([]byte, sha1.Size+(display.Width*display.Height*pixelDepth))

	return dig
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// NewFrame implements the display.PixelRenderer interface.
func (dig *Video) NewFrame(frameNum int) error {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	copy(dig.pixels, dig.digest[:])
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum
	return nil
}

// NewScanline implements the display.PixelRenderer interface.
func (dig *Video) NewScanline(scanline int) error {
	return nil
}

// SetPixel implements the display.PixelRenderer interface.
func (dig *Video) SetPixel(x int, y int, red byte, green byte, blue byte) error {
	// preserve the first few bytes for the chained fingerprint
	i := sha1.Size
	i += display.Width * y * pixelDepth
	i += x * pixelDepth

	if i <= len(dig.pixels)-pixelDepth {
		dig.pixels[i] = red
		dig.pixels[i+1] = green
		dig.pixels[i+2] = blue
	}

	return nil
}

// EndRendering implements the display.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
