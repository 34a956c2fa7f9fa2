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

package hblank

import "github.com/jetsetilly/gopherAGB/hardware/display"

// Target identifies the hardware-adjacent object an effect drives: a
// background, a window, a palette colour slot. Each Handler implementation
// defines its own concrete target type and is the only code that inspects
// it; the registry passes targets through without looking inside.
type Target interface{}

// State is a Handler's private record of the last observed condition of its
// target, used for change detection between frames. Only the Handler that
// produced a State value ever inspects it.
type State interface{}

// Handler describes, for one category of hardware register, how to detect
// change in a target, where the per-scanline values must be streamed to,
// and how to expand semantic input values into raw register values.
//
// Handlers are stateless; everything observed about a target lives in the
// State value held by the registry slot.
type Handler interface {
	// Setup is called once when an effect binds to a target. It produces
	// the initial State for change detection.
	Setup(target Target) State

	// Visible reports whether the target currently exists and is
	// displayable. When false the registry skips the effect for the frame:
	// no register writes, no change detection, no State mutation. This is
	// how a destroyed target is tolerated without dangling access.
	Visible(target Target) bool

	// Updated compares the target's current derived state against the
	// stored State. It returns the new State and whether it differs from
	// the stored one. A change forces full regeneration of the effect's
	// expanded buffer even though the values reference has not changed.
	Updated(target Target, state State) (State, bool)

	// OutputRegister returns the register the expanded per-scanline values
	// are streamed into. Recomputed whenever Updated reports a change.
	OutputRegister(target Target) display.RegisterRef

	// WriteOutputValues expands the effect's semantic input values into raw
	// per-scanline register values. The out slice has one entry per
	// scanline.
	WriteOutputValues(target Target, state State, values interface{}, out []uint16)

	// Cleanup is called once when the effect is destroyed, leaving the
	// register category in a consistent state. Typically it asks the
	// target's manager to reload registers from its own bookkeeping.
	Cleanup(target Target)
}
