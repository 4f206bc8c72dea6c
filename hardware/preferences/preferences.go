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

// Package preferences contains the preference values for the VM.
package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// DefaultSpeed is the default number of instructions executed per second.
const DefaultSpeed = 700

// Preferences defines and collates all the preference values used by the VM.
type Preferences struct {
	dsk *prefs.Disk

	// number of instructions per second. hosts divide this by the frame rate
	// to decide how many instructions to execute per frame
	Speed prefs.Int

	// seed for the RND instruction. a value of zero means that the seed is
	// taken from the time the application started
	Seed prefs.Int

	// log instructions that are not recognised by the CPU
	LogUnrecognised prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("vm.logunrecognised :: %s\nvm.seed :: %s\nvm.speed :: %s\n",
			p.LogUnrecognised.String(), p.Seed.String(), p.Speed.String())
	}
	return p.dsk.String()
}

func newPreferences() *Preferences {
	p := &Preferences{}
	p.Speed.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("speed must be greater than zero")
		}
		return nil
	})
	p.SetDefaults()
	return p
}

// NewDefaults returns a Preferences instance with default values that is not
// backed by a preferences file.
func NewDefaults() *Preferences {
	return newPreferences()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file and the
// command line stack.
func NewPreferences() (*Preferences, error) {
	p := newPreferences()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("vm.speed", &p.Speed); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("vm.seed", &p.Seed); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("vm.logunrecognised", &p.LogUnrecognised); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all VM preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Speed.Set(DefaultSpeed)
	p.Seed.Set(0)
	p.LogUnrecognised.Set(true)
}

// Load current VM preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return curated.Errorf(prefs.DiskError, "preferences are not backed by a file")
	}
	return p.dsk.Load(false)
}

// Save current VM preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf(prefs.DiskError, "preferences are not backed by a file")
	}
	return p.dsk.Save()
}

// InstructionsPerFrame returns the number of instructions to execute for
// each frame at the given frame rate. The value is never less than one.
func (p *Preferences) InstructionsPerFrame(fps int) int {
	if fps <= 0 {
		return 1
	}
	n := p.Speed.Get().(int) / fps
	if n < 1 {
		return 1
	}
	return n
}
