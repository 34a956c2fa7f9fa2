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

// Effect is the common part of every typed effect handle. A handle owns one
// registry slot: destroying the handle destroys the slot. The typed
// wrappers additionally keep alive whatever resources the effect references
// (a palette bank, for instance).
type Effect struct {
	reg *Registry
	id  int
}

// ID of the registry slot the handle owns. Negative once the handle has
// been destroyed.
func (ef *Effect) ID() int {
	return ef.id
}

// Visible reports whether the effect performs register writes. A hidden
// effect still occupies its slot.
func (ef *Effect) Visible() bool {
	return ef.reg.visible(ef.id)
}

// SetVisible shows or hides the effect. Showing a hidden effect forces
// regeneration on the next Update pass.
func (ef *Effect) SetVisible(visible bool) {
	ef.reg.setVisible(ef.id, visible)
}

// Destroy frees the registry slot. Destroying an already destroyed handle
// is a no-op; any other use of a destroyed handle is a programming error.
func (ef *Effect) Destroy() {
	if ef.id < 0 {
		return
	}
	ef.reg.destroy(ef.id)
	ef.id = -1
}
