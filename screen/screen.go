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

// Package screen defines the interface between the engine's frontends and
// the rest of the application, along with rendering code shared by the
// terminal based frontends.
//
// Concrete frontends live in the sub-packages:
//   - sdlscreen displays the engine output in an SDL window
//   - termscreen draws to the local terminal with ANSI half-blocks
//   - sshscreen serves the terminal renderer over SSH
package screen

import (
	"github.com/jetsetilly/gopherAGB/hardware/display"
)

// EventType identifies the different user events a frontend can emit.
type EventType int

// List of valid EventType values.
const (
	// the user has asked to quit the application
	EventQuit EventType = iota

	// the user has poked the display. X and Y are display coordinates
	EventTrigger
)

// Event is a user input event from a frontend.
type Event struct {
	Type EventType
	X    int
	Y    int
}

// Frontend is a display for the engine's video output combined with a source
// of user events.
type Frontend interface {
	display.PixelRenderer

	// Events returns the channel user events are posted to. Frontends drop
	// events rather than block when the channel is full.
	Events() <-chan Event

	// Destroy releases the frontend's resources. For terminal frontends this
	// restores the terminal to its previous state.
	Destroy()
}
