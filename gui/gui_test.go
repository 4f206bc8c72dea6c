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

package gui_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/keymap"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestRGBA(t *testing.T) {
	var fb display.Framebuffer
	fb.Draw(0, 0, []uint8{0x80})
	fb.Draw(63, 31, []uint8{0x80})

	px := gui.RGBA(fb.Frame(), nil)
	test.DemandEquality(t, len(px), display.Width*display.Height*gui.PixelDepth)

	test.ExpectEquality(t, px[0], gui.PixelOn.R)
	test.ExpectEquality(t, px[gui.PixelDepth], gui.PixelOff.R)
	test.ExpectEquality(t, px[len(px)-gui.PixelDepth], gui.PixelOn.R)
	test.ExpectEquality(t, px[len(px)-1], 0xff)

	// slice is reused
	again := gui.RGBA(fb.Frame(), px)
	test.ExpectEquality(t, &again[0], &px[0])
}

func TestDefaultPreferences(t *testing.T) {
	p := gui.NewDefaults()
	test.ExpectEquality(t, p.Scale.Get().(int), gui.DefaultScale)
	test.ExpectEquality(t, p.KeyLayout.Get().(string), keymap.Original)
	test.ExpectEquality(t, p.String(), "host.keylayout :: original\nhost.scale :: 10\n")

	test.ExpectFailure(t, p.Scale.Set(0))
	test.ExpectFailure(t, p.Scale.Set(gui.MaxScale+1))
	test.ExpectSuccess(t, p.Scale.Set(4))

	test.ExpectFailure(t, p.KeyLayout.Set("dvorak"))
	test.ExpectSuccess(t, p.KeyLayout.Set(keymap.Conventional))

	km, err := p.Keymap()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, km.Layout(), keymap.Conventional)

	test.ExpectFailure(t, p.Save())
}

func TestPreferencesFile(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	dir := t.TempDir()
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, ".gopher8"), 0o755))

	p, err := gui.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Scale.Set(3))
	test.DemandSuccess(t, p.Save())

	q, err := gui.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Scale.Get().(int), 3)

	data, err := os.ReadFile(filepath.Join(dir, ".gopher8", "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "host.scale :: 3"))
}
