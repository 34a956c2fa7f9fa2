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

package demo

import (
	"github.com/jetsetilly/gopherAGB/hardware"
	"github.com/jetsetilly/gopherAGB/hardware/bgs"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/fixedpoint"
	"github.com/jetsetilly/gopherAGB/hardware/windows"
	"github.com/jetsetilly/gopherAGB/hblank"
	"github.com/jetsetilly/gopherAGB/wavegen"
)

// BombState is the phase the bomb scene is in.
type BombState int

// List of valid BombState values.
const (
	BombInactive BombState = iota
	BombOpen
	BombClose
)

// frame counts for the open and close phases.
const (
	openFrames  = 50
	closeFrames = 130
)

// Bomb is the screen-filling bomb explosion scene: a shockwave circle
// expands from the trigger point through the window boundaries effect,
// revealing a wavy explosion background behind it.
type Bomb struct {
	con *hardware.Console

	bg       *bgs.Background
	bgScroll fixedpoint.Fixed

	circle       *wavegen.Circle
	circleDeltas []windows.Boundaries
	circleEffect *hblank.WindowBoundariesEffect

	waveDeltas []fixedpoint.Fixed
	waveEffect *hblank.BGPositionEffect

	state   BombState
	counter int
}

// NewBomb is the preferred method of initialisation for the Bomb type. The
// background item is the explosion graphic revealed inside the shockwave.
func NewBomb(con *hardware.Console, item bgs.Item) *Bomb {
	bmb := &Bomb{
		con:          con,
		bg:           con.Backgrounds.Create(item),
		circle:       wavegen.NewCircle(),
		circleDeltas: make([]windows.Boundaries, display.Height),
		waveDeltas:   make([]fixedpoint.Fixed, display.Height),
	}

	bmb.bg.SetAttributes(bgs.Attributes{Priority: 1})

	hwID, _ := bmb.bg.HwID()
	con.Windows.OutsideShowBackground(hwID, false)

	win := con.Windows.Internal()
	bmb.circleEffect = hblank.NewWindowBoundariesEffect(con.HBlank, win, bmb.circleDeltas)
	bmb.circleEffect.SetVisible(false)

	wavegen.NewWave().Generate(bmb.waveDeltas)
	bmb.waveEffect = hblank.NewBGPositionEffect(con.HBlank, bmb.bg, bmb.waveDeltas)
	bmb.waveEffect.ReloadDeltasRef()
	bmb.waveEffect.SetVisible(false)

	return bmb
}

// State the scene is in.
func (bmb *Bomb) State() BombState {
	return bmb.state
}

// Trigger starts the explosion at the given point. Ignored unless the scene
// is inactive.
func (bmb *Bomb) Trigger(x fixedpoint.Fixed, y fixedpoint.Fixed) {
	if bmb.state != BombInactive {
		return
	}

	win := bmb.con.Windows.Internal()
	win.SetBoundaries(x, y, x, y)
	win.SetEnabled(true)

	bmb.circle.SetOrigin(x, y)
	bmb.circle.SetRadius(0)
	bmb.circle.Generate(bmb.circleDeltas)
	bmb.circleEffect.ReloadDeltasRef()
	bmb.circleEffect.SetVisible(true)

	bmb.waveEffect.SetVisible(true)

	bmb.state = BombOpen
	bmb.counter = openFrames
}

// Update advances the scene by one frame. Call once per frame, before the
// console renders.
func (bmb *Bomb) Update() {
	switch bmb.state {
	case BombInactive:

	case BombOpen:
		bmb.scrollBackground()

		if bmb.counter > 0 {
			bmb.counter--

			bmb.circle.SetRadius(bmb.circle.Radius() + 4)
			bmb.circle.Generate(bmb.circleDeltas)
			bmb.circleEffect.ReloadDeltasRef()
		} else {
			// the shockwave has swallowed the screen: show the explosion
			// background everywhere
			bmb.circleEffect.SetVisible(false)
			bmb.con.Windows.Internal().SetBoundaries(
				fixedpoint.FromInt(-1000), fixedpoint.FromInt(-1000),
				fixedpoint.FromInt(1000), fixedpoint.FromInt(1000))

			bmb.state = BombClose
			bmb.counter = closeFrames
		}

	case BombClose:
		bmb.scrollBackground()

		if bmb.counter > 0 {
			bmb.counter--

			if bmb.counter == 20 {
				win := bmb.con.Windows.Internal()
				win.SetBoundaries(0, 0, 0, 0)
				win.SetEnabled(false)
				bmb.waveEffect.SetVisible(false)
			}
		} else {
			bmb.state = BombInactive
		}
	}
}

// Destroy releases the scene's background and effects.
func (bmb *Bomb) Destroy() {
	bmb.circleEffect.Destroy()
	bmb.waveEffect.Destroy()
	bmb.bg.Destroy()
}

func (bmb *Bomb) scrollBackground() {
	bmb.bgScroll += fixedpoint.FromFloat(-0.5)
	_, y := bmb.bg.Position()
	bmb.bg.SetPosition(bmb.bgScroll, y)
}
