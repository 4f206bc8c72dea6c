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

package ebitenplay

import (
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100
const toneFreq = 440
const amplitude = 0x1000

// tone is a square wave that is silent unless it is switched on. the wave is
// 16bit little endian stereo, as required by the audio package
type tone struct {
	on     atomic.Bool
	phase  int
	player *audio.Player
}

func newTone() (*tone, error) {
	t := &tone{}

	ctx := audio.NewContext(sampleRate)

	var err error
	t.player, err = ctx.NewPlayer(t)
	if err != nil {
		return nil, err
	}
	t.player.SetBufferSize(time.Millisecond * 50)
	t.player.Play()

	return t, nil
}

func (t *tone) set(on bool) {
	t.on.Store(on)
}

// Read implements the io.Reader interface.
func (t *tone) Read(p []uint8) (int, error) {
	n := len(p) / 4 * 4
	period := sampleRate / toneFreq
	on := t.on.Load()

	for i := 0; i < n; i += 4 {
		var v int16
		if on {
			if t.phase < period/2 {
				v = amplitude
			} else {
				v = -amplitude
			}
		}
		t.phase++
		if t.phase >= period {
			t.phase = 0
		}
		p[i] = uint8(v)
		p[i+1] = uint8(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}

	return n, nil
}
