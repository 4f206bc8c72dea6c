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


// Package wavwriter allows writing of the VM tone to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// when End() is called. It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/logger"
)

// SampleFreq is the sample rate of the WAV file.
const SampleFreq = 22050

// ToneFreq is the frequency of the recorded tone.
const ToneFreq = 440

// the number of samples recorded for every call to SetTone()
const frameLength = SampleFreq / 60

// bit depth of recorded samples. values are unsigned with silence at 0x80
const bitDepth = 8

const (
	silence   = 0x80
	amplitude = 0x20
)

// WavWriter records the tone of the VM once per frame.
type WavWriter struct {
	filename string
	buffer   []int

	// the position of the wave at the end of the most recent frame
	phase int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("wavwriter: no filename specified")
	}

	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, SampleFreq),
	}

	return aw, nil
}

// SetTone records one frame of audio. The frame is a square wave if the tone
// is on, otherwise it is silence.
func (aw *WavWriter) SetTone(on bool) error {
	if !on {
		aw.phase = 0
		for i := 0; i < frameLength; i++ {
			aw.buffer = append(aw.buffer, silence)
		}
		return nil
	}

	period := SampleFreq / ToneFreq
	for i := 0; i < frameLength; i++ {
		if aw.phase < period/2 {
			aw.buffer = append(aw.buffer, silence+amplitude)
		} else {
			aw.buffer = append(aw.buffer, silence-amplitude)
		}
		aw.phase = (aw.phase + 1) % period
	}

	return nil
}

// Samples returns the number of samples recorded so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// End writes the recorded audio to the WAV file.
func (aw *WavWriter) End() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleFreq, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
