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

// Package hblank schedules per-scanline register writes. An effect binds an
// application owned buffer of per-scanline values (one value per scanline of
// the display) to one hardware register, through a Handler that knows how to
// expand the values for its register category. During scan-out the display
// applies the expanded values in the h-blank interval before each scanline.
//
// The registry runs once per frame, in the v-blank. It regenerates an
// effect's expanded buffer only when something observable has changed: the
// effect is new, the values reference was replaced or explicitly reloaded,
// or the target itself reports a change of shape or addressing. An effect
// whose target has been destroyed or hidden is skipped entirely; this is a
// steady state condition, not an error.
//
// Effect slots are a fixed, scarce resource. The New* constructors panic
// when every slot is taken; the New*Optional constructors return an error
// instead, allowing callers to degrade gracefully.
//
// New register categories are added by implementing the Handler interface;
// the registry is agnostic to the category of target it is driving.
package hblank
