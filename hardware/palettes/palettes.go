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

package palettes

import (
	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/display"
)

// MaxPalettes is the number of 16 colour palette banks in sprite palette
// RAM.
const MaxPalettes = 16

// ColorsPerPalette is the number of colours in one palette bank.
const ColorsPerPalette = 16

// MaxColors is the total number of colours in palette RAM. It is also the
// upper bound on the length of any colour span the colour effect functions
// will accept.
const MaxColors = MaxPalettes * ColorsPerPalette

// NotEnoughPalettes is returned by CreateOptional when palette RAM is
// exhausted.
const NotEnoughPalettes = "palettes: not enough palette banks"

// Item is an immutable palette asset: up to 16 colours of 4bpp palette
// data, normally produced by an offline tool.
type Item struct {
	Colors []Color
}

type bank struct {
	colors [ColorsPerPalette]Color
	count  int
	refs   int
}

// Manager owns the sprite palette banks and commits them to palette RAM.
// Palettes with identical colours share a bank.
type Manager struct {
	dsp   *display.Display
	banks [MaxPalettes]bank
}

// NewManager is the preferred method of initialisation for the Manager type.
func NewManager(dsp *display.Display) *Manager {
	return &Manager{dsp: dsp}
}

// Palette is a handle on one reference to a palette bank. The bank is freed
// when every handle referencing it has been destroyed.
type Palette struct {
	mgr *Manager
	id  int
}

// Create a palette from item, sharing an existing bank when the colours
// match. Panics when palette RAM is exhausted; use CreateOptional when
// exhaustion is an expected condition.
func (mgr *Manager) Create(item Item) *Palette {
	pal, err := mgr.CreateOptional(item)
	if err != nil {
		panic(err)
	}
	return pal
}

// CreateOptional is the recoverable form of Create. It returns a curated
// error with the NotEnoughPalettes pattern when palette RAM is exhausted.
func (mgr *Manager) CreateOptional(item Item) (*Palette, error) {
	n := len(item.Colors)
	if n <= 0 || n > ColorsPerPalette {
		panic(curated.Errorf("palettes: invalid colours count: %d", n))
	}

	// share an existing bank if the colours match
	for i := range mgr.banks {
		b := &mgr.banks[i]
		if b.refs > 0 && b.count == n {
			match := true
			for j := 0; j < n; j++ {
				if b.colors[j] != item.Colors[j] {
					match = false
					break
				}
			}
			if match {
				b.refs++
				return &Palette{mgr: mgr, id: i}, nil
			}
		}
	}

	for i := range mgr.banks {
		b := &mgr.banks[i]
		if b.refs == 0 {
			copy(b.colors[:], item.Colors)
			b.count = n
			b.refs = 1
			mgr.commitBank(i)
			return &Palette{mgr: mgr, id: i}, nil
		}
	}

	return nil, curated.Errorf(NotEnoughPalettes)
}

func (mgr *Manager) commitBank(id int) {
	b := &mgr.banks[id]
	for j := 0; j < b.count; j++ {
		mgr.dsp.Registers.Write(display.RegisterRef{
			Bank:  display.BankPalOBJ,
			Index: id*ColorsPerPalette + j,
		}, uint16(b.colors[j]))
	}
}

// Reload rewrites every live palette bank into palette RAM. Used to restore
// colours that a h-blank effect has been streaming over.
func (mgr *Manager) Reload() {
	for i := range mgr.banks {
		if mgr.banks[i].refs > 0 {
			mgr.commitBank(i)
		}
	}
}

// ID of the palette bank this handle references.
func (pal *Palette) ID() int {
	return pal.id
}

// ColorsCount returns the number of colours in the palette.
func (pal *Palette) ColorsCount() int {
	return pal.mgr.banks[pal.id].count
}

// ColorRegister returns the palette RAM register for one colour of the
// palette. Panics if index is out of range.
func (pal *Palette) ColorRegister(index int) display.RegisterRef {
	if index < 0 || index >= pal.ColorsCount() {
		panic(curated.Errorf("palettes: invalid colour index: %d - %d", index, pal.ColorsCount()))
	}
	return display.RegisterRef{
		Bank:  display.BankPalOBJ,
		Index: pal.id*ColorsPerPalette + index,
	}
}

// Manager that created the palette.
func (pal *Palette) Manager() *Manager {
	return pal.mgr
}

// Share returns a new handle referencing the same palette bank. The bank
// now requires both handles to be destroyed before it is freed.
func (pal *Palette) Share() *Palette {
	if pal.mgr == nil {
		panic(curated.Errorf("palettes: palette already destroyed"))
	}
	pal.mgr.banks[pal.id].refs++
	return &Palette{mgr: pal.mgr, id: pal.id}
}

// Destroy releases this handle's reference to the palette bank. Destroying
// an already destroyed handle is a no-op.
func (pal *Palette) Destroy() {
	if pal.mgr == nil {
		return
	}
	b := &pal.mgr.banks[pal.id]
	b.refs--
	if b.refs <= 0 {
		b.refs = 0
		b.count = 0
	}
	pal.mgr = nil
}
