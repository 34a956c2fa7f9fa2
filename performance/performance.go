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

// Package performance contains helper functions relating to performance.
//
// Check() is a quick way of running the engine for a fixed duration of time.
// It will optionally generate profiling information.
//
// CalcFPS() calculates frames-per-second in aggregate along with an accuracy
// value (as compared to the hardware refresh rate). Probably not suitable for
// "live" FPS monitoring.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherAGB/curated"
	"github.com/jetsetilly/gopherAGB/hardware"
	"github.com/jetsetilly/gopherAGB/hardware/display"
)

// Check runs the console for the specified duration, with an optional CPU
// profile, and writes a frames-per-second summary to output.
//
// The update function is called once per frame, before the frame is rendered.
// It can be used to animate a scene so the engine is measured doing real
// work. It can be nil.
func Check(output io.Writer, profile bool, con *hardware.Console, update func(), runTime string) error {
	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startFrame := con.Display.FrameNum()

	err = cpuProfile(profile, "cpu.profile", func() error {
		// setup trigger that expires when duration has elapsed
		timesUp := make(chan bool)

		// force a short leadtime to allow the frame rate to settle down and
		// then restart the timer for the specified duration
		go func() {
			time.AfterFunc(2*time.Second, func() {
				startFrame = con.Display.FrameNum()
				time.AfterFunc(duration, func() {
					timesUp <- true
				})
			})
		}()

		return con.Run(func() (bool, error) {
			if update != nil {
				update()
			}
			select {
			case v := <-timesUp:
				return !v, nil
			default:
				return true, nil
			}
		})
	})
	if err != nil {
		return err
	}

	numFrames := con.Display.FrameNum() - startFrame
	fps, accuracy := CalcFPS(numFrames, duration.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n",
		fps, numFrames, duration.Seconds(), accuracy)

	return memProfile(profile, "mem.profile")
}

// CalcFPS takes the number of frames and duration (in seconds) and returns
// the frames-per-second and the accuracy of that value as a percentage of
// the hardware refresh rate.
func CalcFPS(numFrames int, duration float64) (fps float64, accuracy float64) {
	fps = float64(numFrames) / duration
	accuracy = 100 * float64(numFrames) / (duration * float64(display.FramesPerSecond))
	return fps, accuracy
}
