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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/demo"
	"github.com/jetsetilly/gopherAGB/digest"
	"github.com/jetsetilly/gopherAGB/hardware"
	"github.com/jetsetilly/gopherAGB/hardware/display"
	"github.com/jetsetilly/gopherAGB/hardware/fixedpoint"
	"github.com/jetsetilly/gopherAGB/hardware/sprites"
	"github.com/jetsetilly/gopherAGB/logger"
	"github.com/jetsetilly/gopherAGB/modalflag"
	"github.com/jetsetilly/gopherAGB/performance"
	"github.com/jetsetilly/gopherAGB/screen"
	"github.com/jetsetilly/gopherAGB/screen/sdlscreen"
	"github.com/jetsetilly/gopherAGB/screen/sshscreen"
	"github.com/jetsetilly/gopherAGB/screen/termscreen"
	"github.com/jetsetilly/gopherAGB/statsview"
	"github.com/jetsetilly/gopherAGB/text"
	"github.com/jetsetilly/gopherAGB/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "TERM", "SSH", "PERFORMANCE", "FINGERPRINT", "VERSION")

	stats := md.AddBool("statsview", false, "run stats server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "TERM":
		err = term(md)
	case "SSH":
		err = serve(md)
	case "PERFORMANCE":
		err = perform(md)
	case "FINGERPRINT":
		err = fingerprint(md)
	case "VERSION":
		ver, rev, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, ver, rev)
	}

	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}
}

// buildScene assembles the demonstration scene on the console: the bomb
// effect plus a line of instruction text.
func buildScene(con *hardware.Console) (*demo.Bomb, []*sprites.Sprite) {
	bmb := demo.NewBomb(con, demo.ExplosionBackground())

	gen := text.NewGenerator(demo.SystemFont(), demo.FontPalette(),
		con.Sprites, con.SpriteTiles, con.Palettes)
	gen.SetAlignment(text.AlignCenter)

	var caption []*sprites.Sprite
	gen.Generate(fixedpoint.FromInt(display.Width/2), fixedpoint.FromInt(12),
		"PRESS SPACE OR CLICK", &caption)

	return bmb, caption
}

func destroyScene(bmb *demo.Bomb, caption []*sprites.Sprite) {
	for _, spr := range caption {
		spr.Destroy()
	}
	bmb.Destroy()
}

// playLoop runs the demonstration scene on the supplied frontend until the
// user quits. the service function is called every frame and can be nil.
func playLoop(con *hardware.Console, fe screen.Frontend, service func()) error {
	bmb, caption := buildScene(con)
	defer destroyScene(bmb, caption)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	return con.Run(func() (bool, error) {
		if service != nil {
			service()
		}

		select {
		case <-intChan:
			return false, nil
		case ev := <-fe.Events():
			switch ev.Type {
			case screen.EventQuit:
				return false, nil
			case screen.EventTrigger:
				bmb.Trigger(fixedpoint.FromInt(ev.X), fixedpoint.FromInt(ev.Y))
			}
		default:
		}

		bmb.Update()
		return true, nil
	})
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddFloat64("scale", 3.0, "window scaling")
	fpsCap := md.AddBool("fpscap", true, "cap fps to the hardware refresh rate")
	memvizFile := md.AddString("memviz", "", "dump the object graph to file (graphviz format) and exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	con := hardware.NewConsole()

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		defer f.Close()

		bmb, caption := buildScene(con)
		defer destroyScene(bmb, caption)

		memviz.Map(f, con)
		return nil
	}

	scr, err := sdlscreen.NewScreen(float32(*scale), *fpsCap)
	if err != nil {
		return err
	}
	defer scr.Destroy()

	con.Display.AddPixelRenderer(scr)

	return playLoop(con, scr, scr.Service)
}

func term(md *modalflag.Modes) error {
	md.NewMode()

	fpsCap := md.AddBool("fpscap", true, "cap fps to the hardware refresh rate")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	scr, err := termscreen.NewScreen(*fpsCap)
	if err != nil {
		return err
	}
	defer scr.Destroy()

	con := hardware.NewConsole()
	con.Display.AddPixelRenderer(scr)

	return playLoop(con, scr, nil)
}

func serve(md *modalflag.Modes) error {
	md.NewMode()

	addr := md.AddString("addr", ":2600", "address to listen on")
	hostKey := md.AddString("hostkey", "", "path to SSH host key file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	srv := sshscreen.NewServer(*addr, *hostKey, func(scr *sshscreen.SessionScreen) {
		defer scr.Destroy()

		// every connection gets its own engine
		con := hardware.NewConsole()
		con.Display.AddPixelRenderer(scr)

		err := playLoop(con, scr, nil)
		if err != nil && !curated.Is(err, sshscreen.SessionClosed) {
			logger.Log("sshscreen", err.Error())
		}
	})

	return srv.ListenAndServe()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddBool("profile", false, "perform cpu and memory profiling")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	con := hardware.NewConsole()
	bmb, caption := buildScene(con)
	defer destroyScene(bmb, caption)

	// retrigger the bomb whenever it finishes so the engine is measured
	// doing real per-scanline work
	update := func() {
		if bmb.State() == demo.BombInactive {
			bmb.Trigger(fixedpoint.FromInt(display.Width/2), fixedpoint.FromInt(display.Height/2))
		}
		bmb.Update()
	}

	return performance.Check(os.Stdout, *profile, con, update, *duration)
}

func fingerprint(md *modalflag.Modes) error {
	md.NewMode()

	numFrames := md.AddInt("frames", 300, "number of frames to run for")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	con := hardware.NewConsole()
	dig := digest.NewVideo()
	con.Display.AddPixelRenderer(dig)

	bmb, caption := buildScene(con)
	defer destroyScene(bmb, caption)

	bmb.Trigger(fixedpoint.FromInt(display.Width/2), fixedpoint.FromInt(display.Height/2))

	err = con.RunForFrameCount(*numFrames, func(_ int) (bool, error) {
		bmb.Update()
		return true, nil
	})
	if err != nil {
		return err
	}

	fmt.Println(dig.Hash())
	return nil
}
