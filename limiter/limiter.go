// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter paces a host's frame loop. The limiter also measures the
// actual frame rate.
package limiter

import (
	"sync/atomic"
	"time"
)

// DefaultFPS is the frame rate of the host loop. The timers of the VM are
// intended to be decremented at this rate.
const DefaultFPS float32 = 60.0

// Limiter waits on a ticker at the end of every frame.
type Limiter struct {
	// whether to wait for fps limited each frame
	Active bool

	// the requested number of frames per second
	requested atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker will be set
	// when SetLimit() is called with a new fps value
	pulse *time.Ticker

	// waiting on the pulse channel every frame is expensive at high frame
	// rates. the limiter waits every pulseCtLimit frames instead
	pulseCt      int
	pulseCtLimit int

	// pulse that performs the FPS measurement
	measuringPulse *time.Ticker

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the measured number of frames per second
	Measured atomic.Value // float32
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The limit is set to DefaultFPS.
func NewLimiter() *Limiter {
	lmtr := &Limiter{
		Active: true,
	}
	lmtr.Measured.Store(float32(0.0))

	lmtr.pulse = time.NewTicker(time.Millisecond * 16)
	lmtr.measuringPulse = time.NewTicker(time.Millisecond * 1000)

	lmtr.SetLimit(DefaultFPS)

	return lmtr
}

// SetLimit sets the number of frames per second. A value of zero or less
// sets the limit to DefaultFPS.
func (lmtr *Limiter) SetLimit(fps float32) {
	if fps <= 0.0 {
		fps = DefaultFPS
	}
	lmtr.requested.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Reset(time.Duration(1000000000 / fps * float32(lmtr.pulseCtLimit)))

	// restart measurement
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// Limit returns the requested frames per second.
func (lmtr *Limiter) Limit() float32 {
	return lmtr.requested.Load().(float32)
}

// CheckFrame should be called every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++
	if lmtr.Active {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual measures the frame rate on every tick of the measuring
// pulse. It is safe to call every frame.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)

		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the limiter. It should not be used after this.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
