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

// Package hardware assembles the components of the console: the display and
// its register file, the palette, background, window and sprite managers,
// and the h-blank effect registry. The Console type is the root of the
// assembly and the only type most applications need to create directly.
//
// The per-frame contract is simple: application code mutates state through
// the managers at any point during the frame, then calls Frame once.
// Frame runs the v-blank work (regenerating and committing h-blank effect
// streams) and then scans the frame out, composing each line from the
// register file as it stands at that line.
package hardware
