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

// Package digest contains an implementation of the display's PixelRenderer
// interface that produces a cryptographic hash of the video output. The hash
// can be used to compare output from subsequent runs of the engine - if a new
// hash differs from a previously recorded value then something has changed.
// Useful as the basis for regression tests of the rendering pipeline.
package digest

// Digest implementations return a cryptographic hash in response to a Hash()
// request. Generation of the hash is achieved via another interface, the
// display.PixelRenderer interface in the case of the Video type.
type Digest interface {
	Hash() string
	ResetDigest()
}
