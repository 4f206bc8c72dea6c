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

// Package sdlaudio produces the tone of the VM using SDL. The tone is on for
// as long as the sound timer of the VM is non-zero.
package sdlaudio

import (
	"github.com/veandco/go-sdl2/sdl"
)

// SampleFreq is the frequency of the audio device.
const SampleFreq = 22050

// ToneFreq is the frequency of the tone.
const ToneFreq = 440

// the number of samples queued at a time. one sixtieth of a second
const bufferLength = SampleFreq / 60

// Audio outputs the tone using SDL. The sdl.INIT_AUDIO flag must have been
// included in the call to sdl.Init().
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// square wave at ToneFreq. the buffer is queued every frame the tone is
	// on
	tone []uint8

	// the position of the wave at the end of the last queued buffer. keeps
	// the wave continuous across buffers
	phase int

	on bool
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, err
	}

	aud.tone = make([]uint8, bufferLength)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// fill the tone buffer with the next part of the square wave
func (aud *Audio) fill() {
	period := SampleFreq / ToneFreq
	for i := range aud.tone {
		if aud.phase < period/2 {
			aud.tone[i] = aud.spec.Silence + 0x20
		} else {
			aud.tone[i] = aud.spec.Silence - 0x20
		}
		aud.phase++
		if aud.phase >= period {
			aud.phase = 0
		}
	}
}

// SetTone should be called once per frame. The tone is queued if the on
// argument is true. Otherwise any queued audio is cleared.
func (aud *Audio) SetTone(on bool) error {
	if !on {
		if aud.on {
			sdl.ClearQueuedAudio(aud.id)
			aud.on = false
		}
		return nil
	}

	aud.on = true

	// do not let the queue grow too long or the tone will continue after the
	// sound timer has reached zero
	if sdl.GetQueuedAudioSize(aud.id) > uint32(len(aud.tone)) {
		return nil
	}

	aud.fill()
	return sdl.QueueAudio(aud.id, aud.tone)
}

// Destroy closes the audio device.
func (aud *Audio) Destroy() {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
}
