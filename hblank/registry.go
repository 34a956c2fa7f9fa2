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

import (
	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/display"
)

// MaxEffects is the number of effect slots in the registry. The limit
// reflects the number of h-blank DMA/interrupt channels the scan-out can
// service in the blanking interval.
const MaxEffects = 8

// NotEnoughEffects is returned by the *Optional constructors when every
// effect slot is taken.
const NotEnoughEffects = "hblank: not enough effect slots"

type slot struct {
	occupied bool
	handler  Handler
	target   Target
	state    State

	// application owned buffer of per-scanline input values. the slice is
	// interpreted by the handler only
	values interface{}

	// when false the effect holds its slot but performs no register writes
	visible bool

	// force regeneration on the next Update pass. set on creation, on a
	// change of values reference, on explicit reload and when the effect
	// is shown after being hidden
	update bool

	// whether the target was visible at the last Update pass. an effect
	// with an invisible target publishes nothing at Commit
	onScreen bool

	output display.RegisterRef
	buffer [display.Height]uint16
}

// Registry owns the fixed table of active h-blank effects. It is driven
// once per frame, during the v-blank: Update regenerates whichever expanded
// buffers have gone stale and Commit publishes the buffers to the display
// as scanline override streams.
//
// The registry is not safe for concurrent use. The engine's frame loop is
// single threaded and effect creation/destruction/reload never overlaps an
// Update pass by construction.
type Registry struct {
	dsp   *display.Display
	slots [MaxEffects]slot
}

// NewRegistry is the preferred method of initialisation for the Registry
// type.
func NewRegistry(dsp *display.Display) *Registry {
	return &Registry{dsp: dsp}
}

// Count returns the number of occupied effect slots.
func (reg *Registry) Count() int {
	n := 0
	for i := range reg.slots {
		if reg.slots[i].occupied {
			n++
		}
	}
	return n
}

// create binds values, target and handler to a free slot. Panics when every
// slot is taken.
func (reg *Registry) create(values interface{}, target Target, handler Handler) int {
	id, err := reg.createOptional(values, target, handler)
	if err != nil {
		panic(err)
	}
	return id
}

// createOptional is the recoverable form of create. It returns a negative
// id and a curated error with the NotEnoughEffects pattern when every slot
// is taken.
func (reg *Registry) createOptional(values interface{}, target Target, handler Handler) (int, error) {
	if values == nil || handler == nil {
		panic(curated.Errorf("hblank: effect created with no values or no handler"))
	}

	for i := range reg.slots {
		s := &reg.slots[i]
		if !s.occupied {
			*s = slot{
				occupied: true,
				handler:  handler,
				target:   target,
				state:    handler.Setup(target),
				values:   values,
				visible:  true,
				update:   true,
			}
			return i, nil
		}
	}

	return -1, curated.Errorf(NotEnoughEffects)
}

// destroy frees the slot and gives the handler the chance to restore any
// register state the effect had overridden.
func (reg *Registry) destroy(id int) {
	s := reg.slot(id)
	s.handler.Cleanup(s.target)
	*s = slot{}
}

func (reg *Registry) slot(id int) *slot {
	if id < 0 || id >= MaxEffects || !reg.slots[id].occupied {
		panic(curated.Errorf("hblank: invalid effect id: %d", id))
	}
	return &reg.slots[id]
}

func (reg *Registry) valuesRef(id int) interface{} {
	return reg.slot(id).values
}

// setValuesRef rebinds the slot to a new values buffer and forces
// regeneration on the next Update pass.
func (reg *Registry) setValuesRef(id int, values interface{}) {
	if values == nil {
		panic(curated.Errorf("hblank: effect values reference is nil"))
	}
	s := reg.slot(id)
	s.values = values
	s.update = true
}

// reloadValuesRef forces regeneration on the next Update pass. For use when
// the contents of the values buffer have changed but the reference has not.
func (reg *Registry) reloadValuesRef(id int) {
	reg.slot(id).update = true
}

func (reg *Registry) visible(id int) bool {
	return reg.slot(id).visible
}

func (reg *Registry) setVisible(id int, visible bool) {
	s := reg.slot(id)
	if visible && !s.visible {
		// the expanded buffer may have gone stale while hidden
		s.update = true
	}
	s.visible = visible
}

// Update is the once-per-frame regeneration pass. It must run during the
// blanking interval, before Commit. For every occupied, visible slot whose
// target is visible, the expanded buffer is regenerated if and only if the
// target reports a change or regeneration has been forced (new effect,
// values reference changed, explicit reload).
//
// The pass runs to completion synchronously, slot by slot in slot order.
func (reg *Registry) Update() {
	for i := range reg.slots {
		s := &reg.slots[i]
		if !s.occupied || !s.visible {
			s.onScreen = false
			continue
		}

		// a destroyed or undisplayable target is skipped entirely: no
		// register writes this frame and no change detection state update
		if !s.handler.Visible(s.target) {
			s.onScreen = false
			continue
		}
		s.onScreen = true

		state, changed := s.handler.Updated(s.target, s.state)
		s.state = state

		if changed || s.update {
			s.output = s.handler.OutputRegister(s.target)
			s.handler.WriteOutputValues(s.target, s.state, s.values, s.buffer[:])
			s.update = false
		}
	}
}

// Commit publishes the expanded buffer of every displayable effect to the
// display as a scanline override stream. Called after Update, still in the
// blanking interval.
func (reg *Registry) Commit() {
	reg.dsp.ClearOverrides()
	for i := range reg.slots {
		s := &reg.slots[i]
		if s.occupied && s.visible && s.onScreen {
			reg.dsp.AddOverride(s.output, s.buffer[:])
		}
	}
}
