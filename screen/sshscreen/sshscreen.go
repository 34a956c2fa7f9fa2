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

// Package sshscreen serves the terminal renderer over SSH. Every connecting
// session gets its own frontend instance, so the callback driving the engine
// is run once per connection, each with an independent engine if the callback
// chooses to build one.
//
// Connect with something like:
//
//	ssh -p 2600 localhost
package sshscreen

import (
	"fmt"
	"io"

	"github.com/gliderlabs/ssh"

	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/logger"
	"github.com/jetsetilly/gopherAGB/performance/limiter"
	"github.com/jetsetilly/gopherAGB/screen"
)

// SessionScreen is the per-connection implementation of the screen.Frontend
// interface. It is handed to the server's session callback.
type SessionScreen struct {
	*screen.Composer

	sess ssh.Session

	lmtr *limiter.FpsLimiter

	events chan screen.Event
	quit   chan struct{}
}

// Events implements the screen.Frontend interface.
func (scr *SessionScreen) Events() <-chan screen.Event {
	return scr.events
}

// NewFrame implements the display.PixelRenderer interface. Frames served
// over SSH are always held to the hardware refresh rate.
func (scr *SessionScreen) NewFrame(frameNum int) error {
	select {
	case <-scr.quit:
		return curated.Errorf(SessionClosed)
	default:
	}

	scr.lmtr.Wait()
	return scr.Composer.NewFrame(frameNum)
}

// Destroy implements the screen.Frontend interface. The connection itself is
// closed by the server when the session callback returns.
func (scr *SessionScreen) Destroy() {
	io.WriteString(scr.sess, screen.ShowCursor)
	io.WriteString(scr.sess, screen.DisableAltScreen)
}

// SessionClosed is returned by the frontend's NewFrame() function when the
// remote end has disconnected.
const SessionClosed = "sshscreen: session closed"

// Server listens for SSH connections and runs a session callback for each
// one.
type Server struct {
	addr    string
	hostKey string
	run     func(*SessionScreen)
}

// NewServer is the preferred method of initialisation for the Server type.
// The run callback is called once per connection, concurrently if need be,
// and should drive the engine until the frontend reports a quit event or the
// session closes.
func NewServer(addr string, hostKey string, run func(*SessionScreen)) *Server {
	return &Server{
		addr:    addr,
		hostKey: hostKey,
		run:     run,
	}
}

// ListenAndServe blocks, accepting SSH connections until the process ends.
func (srv *Server) ListenAndServe() error {
	server := &ssh.Server{
		Addr: srv.addr,
		Handler: func(sess ssh.Session) {
			srv.handleSession(sess)
		},
	}

	if srv.hostKey != "" {
		if err := server.SetOption(ssh.HostKeyFile(srv.hostKey)); err != nil {
			return curated.Errorf("sshscreen: %v", err)
		}
	}

	logger.Log("sshscreen", fmt.Sprintf("listening on %s", srv.addr))
	if err := server.ListenAndServe(); err != nil {
		return curated.Errorf("sshscreen: %v", err)
	}
	return nil
}

func (srv *Server) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "a PTY is required. use: ssh -t ...")
		return
	}

	if ptyReq.Window.Width < display.Width || ptyReq.Window.Height < display.Height/2 {
		fmt.Fprintf(sess, "terminal too small: need at least %dx%d, have %dx%d\n",
			display.Width, display.Height/2, ptyReq.Window.Width, ptyReq.Window.Height)
		return
	}

	logger.Log("sshscreen", fmt.Sprintf("session started: %s", sess.User()))
	defer logger.Log("sshscreen", fmt.Sprintf("session ended: %s", sess.User()))

	lmtr, err := limiter.NewFPSLimiter(display.FramesPerSecond)
	if err != nil {
		return
	}

	scr := &SessionScreen{
		Composer: screen.NewComposer(sess),
		sess:     sess,
		lmtr:     lmtr,
		events:   make(chan screen.Event, 8),
		quit:     make(chan struct{}),
	}

	io.WriteString(sess, screen.EnableAltScreen)
	io.WriteString(sess, screen.HideCursor)
	io.WriteString(sess, screen.ClearScreen)

	// read input until the connection drops
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(scr.quit)
				return
			}
			for _, ev := range scr.ParseAndPost(buf[:n]) {
				// a quit event also ends the read loop
				if ev.Type == screen.EventQuit {
					return
				}
			}
		}
	}()

	// swallow window resize notifications. the session was checked for size
	// at the start and shrinking mid-session just garbles the output until
	// the user grows it again
	go func() {
		for range winCh {
		}
	}()

	srv.run(scr)
}

// ParseAndPost forwards raw input to the event channel, returning the parsed
// events.
func (scr *SessionScreen) ParseAndPost(data []byte) []screen.Event {
	events := screen.ParseEvents(data)
	for _, ev := range events {
		select {
		case scr.events <- ev:
		default:
		}
	}
	return events
}
