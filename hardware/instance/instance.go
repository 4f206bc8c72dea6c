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

// Package instance defines those parts of the VM that might change from
// instance to instance of the VM type, but is not actually the VM itself.
//
// Particularly useful when running more than one VM in the same process. For
// example, the performance mode and the disassembler should not clutter the
// central log.
package instance

import (
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/random"
)

// Label indicates the context of the instance.
type Label string

// List of valid Label values.
const (
	Main        Label = ""
	Performance Label = "performance"
	Disassembly Label = "disassembly"
)

// Instance defines those parts of the VM that might change between different
// instantiations of the VM type.
type Instance struct {
	Label Label

	Random *random.Random

	// the preferences of the running instance. the preferences can be shared
	// with other instances
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance
// type.
//
// The clock argument can be nil and set later with Random.SetClock(). If the
// prefs argument is nil then a default preferences instance is created that
// is not backed by a file.
func NewInstance(clock random.Clock, p *preferences.Preferences) *Instance {
	if p == nil {
		p = preferences.NewDefaults()
	}

	ins := &Instance{
		Random: random.NewRandom(clock),
		Prefs:  p,
	}

	ins.Random.SetSeed(int64(p.Seed.Get().(int)))
	p.Seed.SetHookPost(func(v prefs.Value) error {
		ins.Random.SetSeed(int64(v.(int)))
		return nil
	})

	return ins
}

// Normalise ensures the instance is in a known default state. Useful for
// testing where the initial state must be the same for every run.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}

// AllowLogging implements the logger.Permission interface. Only the main
// instance is allowed to log.
func (ins *Instance) AllowLogging() bool {
	return ins.Label == Main
}
