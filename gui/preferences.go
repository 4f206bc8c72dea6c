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

package gui

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui/keymap"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// DefaultScale is the default size of each VM pixel in host pixels.
const DefaultScale = 10

// MaxScale is the largest allowed value of the Scale preference.
const MaxScale = 40

// Preferences defines the preference values used by the hosts.
type Preferences struct {
	dsk *prefs.Disk

	// size of each VM pixel in host pixels
	Scale prefs.Int

	// the name of the keyboard layout. see the keymap package
	KeyLayout prefs.String
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("host.keylayout :: %s\nhost.scale :: %s\n", p.KeyLayout.String(), p.Scale.String())
	}
	return p.dsk.String()
}

func newPreferences() *Preferences {
	p := &Preferences{}
	p.Scale.SetHookPre(func(v prefs.Value) error {
		s := v.(int)
		if s < 1 || s > MaxScale {
			return fmt.Errorf("scale must be between 1 and %d", MaxScale)
		}
		return nil
	})
	p.KeyLayout.SetHookPre(func(v prefs.Value) error {
		if !keymap.IsLayout(v.(string)) {
			return curated.Errorf(keymap.UnknownLayout, v)
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
// Preferences type.
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

	if err := p.dsk.Add("host.scale", &p.Scale); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("host.keylayout", &p.KeyLayout); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all host preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Scale.Set(DefaultScale)
	p.KeyLayout.Set(keymap.Layouts[0])
}

// Save current host preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf(prefs.DiskError, "preferences are not backed by a file")
	}
	return p.dsk.Save()
}

// Keymap returns a new keymap for the current KeyLayout value.
func (p *Preferences) Keymap() (*keymap.Keymap, error) {
	return keymap.NewKeymap(p.KeyLayout.Get().(string))
}
