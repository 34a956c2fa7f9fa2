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

package demo_test

import (
	"testing"

	"github.com/jetsetilly/gopherAGB/demo"
	"github.com/jetsetilly/gopherAGB/hardware"
	"github.com/jetsetilly/gopherAGB/hardware/fixedpoint"
	"github.com/jetsetilly/gopherAGB/test"
)

func TestBombStateMachine(t *testing.T) {
	con := hardware.NewConsole()
	bmb := demo.NewBomb(con, demo.ExplosionBackground())
	defer bmb.Destroy()

	test.Equate(t, bmb.State() == demo.BombInactive, true)

	// updating an inactive scene does nothing
	bmb.Update()
	test.Equate(t, bmb.State() == demo.BombInactive, true)

	bmb.Trigger(fixedpoint.FromInt(120), fixedpoint.FromInt(80))
	test.Equate(t, bmb.State() == demo.BombOpen, true)

	// triggering again while active is ignored
	bmb.Trigger(fixedpoint.FromInt(0), fixedpoint.FromInt(0))
	test.Equate(t, bmb.State() == demo.BombOpen, true)

	for i := 0; i <= 50; i++ {
		bmb.Update()
		test.ExpectedSuccess(t, con.Frame())
	}
	test.Equate(t, bmb.State() == demo.BombClose, true)

	for i := 0; i <= 130; i++ {
		bmb.Update()
	}
	test.Equate(t, bmb.State() == demo.BombInactive, true)

	// the whole cycle again, rendering throughout
	bmb.Trigger(fixedpoint.FromInt(60), fixedpoint.FromInt(40))
	for bmb.State() != demo.BombInactive {
		bmb.Update()
		test.ExpectedSuccess(t, con.Frame())
	}
}
