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

// Package text lays out strings as hardware sprites. A Generator owns a
// font and a palette and, for each call to Generate, emits the smallest set
// of sprites covering the text, packing several glyphs into each 32 pixel
// wide sprite when the font's geometry allows.
//
// Fonts cover the printable ASCII range and may extend it with a list of
// UTF-8 characters, mapped onto the glyphs following the ASCII range.
// Proportional fonts carry a per-glyph width table; index 0 of the table
// holds the space width.
//
// The generator keeps no per-frame state. Sprites it produces are appended
// to a caller owned slice and live until the caller destroys them.
//
// Generation draws on three scarce resources: palette banks, sprite tile
// memory and hardware sprites. The Generate entry point treats exhaustion
// of any of them as a programming error and panics; GenerateOptional
// returns an error instead, destroying any sprites it had created so that
// partial text is never left on screen.
package text
