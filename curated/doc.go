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

// Package curated is the error type used throughout GopherAGB. Curated
// errors keep hold of the pattern string they were created with, meaning
// that errors deep in a chain can be tested for with the Is() and Has()
// functions.
//
// Two error policies coexist in the engine and both are expressed with
// curated errors. Recoverable conditions (resource exhaustion through the
// *Optional entry points, principally) are returned as error values.
// Programming errors (a bad index, malformed text, exhaustion through a
// non-optional entry point) cause a panic with a curated error as the panic
// value. The policy is selected by the caller's choice of entry point.
package curated
