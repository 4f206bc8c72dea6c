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

package cpu_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

func TestReset(t *testing.T) {
	h := newHarness()
	test.ExpectEquality(t, h.mc.PC.Address(), 0x200)
	test.ExpectEquality(t, h.mc.I.Value(), 0)
	test.ExpectEquality(t, h.mc.Stack.Depth(), 0)
	for i := range h.mc.V {
		test.ExpectEquality(t, h.mc.V[i].Value(), 0, i)
	}

	h.run(t, 0x6a10, 0xa123, 0x2300)
	h.mc.Reset()
	test.ExpectEquality(t, h.mc.PC.Address(), 0x200)
	test.ExpectEquality(t, h.mc.V[0xa].Value(), 0)
	test.ExpectEquality(t, h.mc.I.Value(), 0)
	test.ExpectEquality(t, h.mc.Stack.Depth(), 0)
}

func TestHandlerTable(t *testing.T) {
	for op := instructions.Unrecognised; op < instructions.NumOperators; op++ {
		test.ExpectSuccess(t, cpu.HasHandler(op), op)
	}
	for _, defn := range instructions.Definitions {
		test.ExpectSuccess(t, cpu.HasHandler(defn.Operator), defn.Mnemonic)
	}
}

func TestEveryWord(t *testing.T) {
	// every possible instruction word is either in the instruction set or is
	// the unrecognised instruction. executing any word from a reset CPU never
	// fails except for a return with an empty stack
	h := newHarness()
	for w := 0; w <= 0xffff; w++ {
		h.mc.Reset()
		h.mem.putInstructions(0x200, uint16(w))

		ins := instructions.Decode(uint16(w))
		defn := instructions.Lookup(ins)
		if defn.Operator != instructions.Unrecognised {
			test.DemandEquality(t, defn.Key, ins.Key())
		}

		err := h.mc.ExecuteInstruction(input.Keypad{})
		if defn.Operator == instructions.Return {
			test.DemandSuccess(t, curated.Is(err, cpu.StackFault))
		} else {
			test.DemandSuccess(t, err, ins)
		}
	}
}

func TestAddRegister(t *testing.T) {
	h := newHarness()

	// for all register values, the flag is set iff the sum exceeds 255
	for a := 0; a < 256; a += 5 {
		for b := 0; b < 256; b += 3 {
			h.mc.V[0].Load(uint8(a))
			h.mc.V[1].Load(uint8(b))
			h.run(t, 0x8014)
			test.DemandEquality(t, h.mc.V[0].Value(), uint8((a+b)%256))
			if a+b > 255 {
				test.DemandEquality(t, h.mc.V[0xf].Value(), 1)
			} else {
				test.DemandEquality(t, h.mc.V[0xf].Value(), 0)
			}
		}
	}

	// wrapped addition
	h.mc.V[0].Load(250)
	h.mc.V[1].Load(10)
	h.run(t, 0x8014)
	test.ExpectEquality(t, h.mc.V[0].Value(), 4)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 1)
}

func TestAddImmediate(t *testing.T) {
	h := newHarness()
	h.mc.V[0xf].Load(0x77)
	h.run(t, 0x62ff, 0x7202)
	test.ExpectEquality(t, h.mc.V[2].Value(), 1)

	// flag is not affected
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 0x77)
}

func TestSubtract(t *testing.T) {
	h := newHarness()
	for a := 0; a < 256; a += 7 {
		for b := 0; b < 256; b += 11 {
			h.mc.V[3].Load(uint8(a))
			h.mc.V[4].Load(uint8(b))
			h.run(t, 0x8345)
			test.DemandEquality(t, h.mc.V[3].Value(), uint8(a-b))
			if a >= b {
				test.DemandEquality(t, h.mc.V[0xf].Value(), 1)
			} else {
				test.DemandEquality(t, h.mc.V[0xf].Value(), 0)
			}

			h.mc.V[3].Load(uint8(a))
			h.mc.V[4].Load(uint8(b))
			h.run(t, 0x8347)
			test.DemandEquality(t, h.mc.V[3].Value(), uint8(b-a))
			if b >= a {
				test.DemandEquality(t, h.mc.V[0xf].Value(), 1)
			} else {
				test.DemandEquality(t, h.mc.V[0xf].Value(), 0)
			}
		}
	}

	// equal operands are not a borrow
	h.mc.V[3].Load(9)
	h.mc.V[4].Load(9)
	h.run(t, 0x8345)
	test.ExpectEquality(t, h.mc.V[3].Value(), 0)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 1)
}

func TestShifts(t *testing.T) {
	h := newHarness()

	// the Y register has no effect on the shift
	for y := 0; y < 256; y += 51 {
		h.mc.V[5].Load(uint8(y))

		h.mc.V[2].Load(0x81)
		h.run(t, 0x8256)
		test.ExpectEquality(t, h.mc.V[2].Value(), 0x40)
		test.ExpectEquality(t, h.mc.V[0xf].Value(), 1)

		h.run(t, 0x8256)
		test.ExpectEquality(t, h.mc.V[2].Value(), 0x20)
		test.ExpectEquality(t, h.mc.V[0xf].Value(), 0)

		h.mc.V[2].Load(0x81)
		h.run(t, 0x825e)
		test.ExpectEquality(t, h.mc.V[2].Value(), 0x02)
		test.ExpectEquality(t, h.mc.V[0xf].Value(), 1)

		h.run(t, 0x825e)
		test.ExpectEquality(t, h.mc.V[2].Value(), 0x04)
		test.ExpectEquality(t, h.mc.V[0xf].Value(), 0)
	}
}

func TestFlagRegisterAsTarget(t *testing.T) {
	// when the target register is VF the flag is written last
	h := newHarness()
	h.mc.V[0xf].Load(0xff)
	h.mc.V[1].Load(0x02)
	h.run(t, 0x8f14)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 1)

	h.mc.V[0xf].Load(0x02)
	h.run(t, 0x8f16)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 0)
}

func TestLogical(t *testing.T) {
	h := newHarness()
	h.mc.V[0xf].Load(0x55)
	h.run(t, 0x60f0, 0x613c, 0x8011)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0xfc)
	h.run(t, 0x8012)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x3c)
	h.run(t, 0x6233, 0x8023)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x0f)
	h.run(t, 0x8300)
	test.ExpectEquality(t, h.mc.V[3].Value(), 0x0f)

	// flag is not affected
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 0x55)
}

func TestSkips(t *testing.T) {
	h := newHarness()

	skip := func(word uint16, skipped bool) {
		t.Helper()
		h.mem.putInstructions(0x200, word)
		h.mc.PC.Load(0x200)
		h.step(t, input.Keypad{})
		if skipped {
			test.ExpectEquality(t, h.mc.LastResult.Outcome, execution.Skip, word)
			test.ExpectEquality(t, h.mc.PC.Address(), 0x204, word)
		} else {
			test.ExpectEquality(t, h.mc.LastResult.Outcome, execution.Normal, word)
			test.ExpectEquality(t, h.mc.PC.Address(), 0x202, word)
		}
	}

	h.mc.V[1].Load(0x10)
	h.mc.V[2].Load(0x10)
	h.mc.V[3].Load(0x11)

	skip(0x3110, true)
	skip(0x3111, false)
	skip(0x4110, false)
	skip(0x4111, true)
	skip(0x5120, true)
	skip(0x5130, false)
	skip(0x9120, false)
	skip(0x9130, true)

	// the low nibble of families 5 and 9 is ignored
	skip(0x5127, true)
	skip(0x913f, true)
}

func TestJumps(t *testing.T) {
	h := newHarness()
	h.mem.putInstructions(0x200, 0x1300)
	h.step(t, input.Keypad{})
	test.ExpectEquality(t, h.mc.LastResult.Outcome, execution.Transferred)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x300)

	// jump with offset
	h.mem.putInstructions(0x300, 0xb400)
	h.mc.V[0].Load(0x22)
	h.step(t, input.Keypad{})
	test.ExpectEquality(t, h.mc.PC.Address(), 0x422)

	// offset jump beyond the top of memory wraps
	h.mem.putInstructions(0x422, 0xbfff)
	h.mc.V[0].Load(0x02)
	h.step(t, input.Keypad{})
	test.ExpectEquality(t, h.mc.PC.Address(), 0x001)
}

func TestCallAndReturn(t *testing.T) {
	h := newHarness()
	h.mem.putInstructions(0x200, 0x2300, 0x6107)
	h.mem.putInstructions(0x300, 0x6005, 0x00ee)

	h.step(t, input.Keypad{})
	test.ExpectEquality(t, h.mc.LastResult.Outcome, execution.Transferred)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x300)
	test.ExpectEquality(t, h.mc.Stack.Depth(), 1)
	test.ExpectEquality(t, h.mc.Stack.Entries()[0], 0x202)

	h.step(t, input.Keypad{})
	h.step(t, input.Keypad{})
	test.ExpectEquality(t, h.mc.LastResult.Outcome, execution.Transferred)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x202)
	test.ExpectEquality(t, h.mc.Stack.Depth(), 0)

	// execution continues after the call
	h.step(t, input.Keypad{})
	test.ExpectEquality(t, h.mc.V[0].Value(), 5)
	test.ExpectEquality(t, h.mc.V[1].Value(), 7)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x204)
}

func TestStackOverflow(t *testing.T) {
	h := newHarness()

	// a subroutine that calls itself
	h.mem.putInstructions(0x200, 0x2200)
	for i := 0; i < cpu.StackDepth; i++ {
		h.step(t, input.Keypad{})
	}
	test.ExpectEquality(t, h.mc.Stack.Depth(), cpu.StackDepth)

	before := h.mc.String()
	err := h.mc.ExecuteInstruction(input.Keypad{})
	test.ExpectSuccess(t, curated.Is(err, cpu.StackFault))
	test.ExpectFailure(t, h.mc.LastResult.Final)
	test.ExpectEquality(t, h.mc.String(), before)
}

func TestStackUnderflow(t *testing.T) {
	h := newHarness()
	h.mem.putInstructions(0x200, 0x00ee)

	before := h.mc.String()
	err := h.mc.ExecuteInstruction(input.Keypad{})
	test.ExpectSuccess(t, curated.Is(err, cpu.StackFault))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "underflow"))
	test.ExpectEquality(t, h.mc.PC.Address(), 0x200)
	test.ExpectEquality(t, h.mc.String(), before)
}

func TestIndex(t *testing.T) {
	h := newHarness()
	h.mc.V[0xf].Load(0x33)
	h.run(t, 0xaffe, 0x6105, 0xf11e)
	test.ExpectEquality(t, h.mc.I.Value(), 0x1003)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 0x33)

	// font glyph address
	h.run(t, 0x610a, 0xf129)
	test.ExpectEquality(t, h.mc.I.Value(), 50)
	h.run(t, 0x61ff, 0xf129)
	test.ExpectEquality(t, h.mc.I.Value(), 75)
}

func TestBCD(t *testing.T) {
	h := newHarness()
	h.run(t, 0xa400, 0x649d, 0xf433)
	test.ExpectEquality(t, h.mem.Read(0x400), 1)
	test.ExpectEquality(t, h.mem.Read(0x401), 5)
	test.ExpectEquality(t, h.mem.Read(0x402), 7)
	test.ExpectEquality(t, h.mc.I.Value(), 0x400)

	h.run(t, 0x6407, 0xf433)
	test.ExpectEquality(t, h.mem.Read(0x400), 0)
	test.ExpectEquality(t, h.mem.Read(0x401), 0)
	test.ExpectEquality(t, h.mem.Read(0x402), 7)
}

func TestStoreAndLoadRegisters(t *testing.T) {
	h := newHarness()
	for i := 0; i < 16; i++ {
		h.mc.V[i].Load(uint8(i * 3))
	}
	h.run(t, 0xa500, 0xf355)
	for i := 0; i <= 3; i++ {
		test.ExpectEquality(t, h.mem.Read(uint16(0x500+i)), uint8(i*3), i)
	}
	test.ExpectEquality(t, h.mem.Read(0x504), 0)
	test.ExpectEquality(t, h.mc.I.Value(), 0x500)

	for i := 0; i < 16; i++ {
		h.mc.V[i].Load(0)
	}
	h.run(t, 0xf265)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0)
	test.ExpectEquality(t, h.mc.V[1].Value(), 3)
	test.ExpectEquality(t, h.mc.V[2].Value(), 6)
	test.ExpectEquality(t, h.mc.V[3].Value(), 0)
	test.ExpectEquality(t, h.mc.I.Value(), 0x500)
}

func TestDraw(t *testing.T) {
	h := newHarness()
	h.mem.putInstructions(0x600, 0xff00)

	// draw the same sprite twice
	h.mc.V[0xf].Load(0x55)
	h.run(t, 0xa600, 0x603c, 0x6102, 0xd011)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 0)
	f := h.fb.Frame()
	test.ExpectEquality(t, f.Lit(), 8)

	// wraps from column 60 to column 3
	for x := 60; x < 68; x++ {
		test.ExpectSuccess(t, f.Pixel(x%64, 2), x)
	}

	h.run(t, 0xd011)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 1)
	test.ExpectEquality(t, h.fb.Frame().Lit(), 0)

	// clear screen
	h.run(t, 0xd011, 0x00e0)
	test.ExpectEquality(t, h.fb.Frame().Lit(), 0)
}

func TestKeys(t *testing.T) {
	h := newHarness()
	h.mc.V[6].Load(0x1b)

	var keys input.Keypad
	keys[0xb] = true

	// only the low nibble of the register is used
	h.mem.putInstructions(0x200, 0xe69e)
	h.step(t, keys)
	test.ExpectEquality(t, h.mc.LastResult.Outcome, execution.Skip)

	h.mem.putInstructions(0x204, 0xe6a1)
	h.step(t, keys)
	test.ExpectEquality(t, h.mc.LastResult.Outcome, execution.Normal)

	keys[0xb] = false
	h.mem.putInstructions(0x206, 0xe69e, 0xe6a1)
	h.step(t, keys)
	test.ExpectEquality(t, h.mc.LastResult.Outcome, execution.Normal)
	h.step(t, keys)
	test.ExpectEquality(t, h.mc.LastResult.Outcome, execution.Skip)
}

func TestWaitKey(t *testing.T) {
	h := newHarness()
	h.mem.putInstructions(0x200, 0xf30a)

	// no keys
	h.step(t, input.Keypad{})
	test.ExpectEquality(t, h.mc.LastResult.Outcome, execution.Transferred)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x200)

	// key zero does not end the wait. this is deliberate but is different to
	// the other key instructions, where key zero is a valid key
	var keys input.Keypad
	keys[0] = true
	h.step(t, keys)
	test.ExpectEquality(t, h.mc.LastResult.Outcome, execution.Transferred)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x200)

	// lowest qualifying key is stored
	keys[0x9] = true
	keys[0x4] = true
	h.step(t, keys)
	test.ExpectEquality(t, h.mc.LastResult.Outcome, execution.Normal)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x202)
	test.ExpectEquality(t, h.mc.V[3].Value(), 0x4)
}

func TestTimerInstructions(t *testing.T) {
	h := newHarness()
	h.run(t, 0x6a20, 0xfa15, 0x6b30, 0xfb18)
	test.ExpectEquality(t, h.tmr.Delay(), 0x20)
	test.ExpectEquality(t, h.tmr.Sound(), 0x30)

	h.tmr.SetDelay(0x11)
	h.run(t, 0xfc07)
	test.ExpectEquality(t, h.mc.V[0xc].Value(), 0x11)
}

func TestRandom(t *testing.T) {
	h := newHarness()

	// the mask is applied to the random value
	for i := 0; i < 64; i++ {
		h.run(t, 0xc00f)
		test.ExpectEquality(t, h.mc.V[0].Value()&0xf0, 0)
	}
	h.run(t, 0xc000)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0)

	// the same seed and the same clock produce the same value
	a := newHarness()
	b := newHarness()
	a.run(t, 0xc0ff)
	b.run(t, 0xc0ff)
	test.ExpectEquality(t, a.mc.V[0].Value(), b.mc.V[0].Value())
}

func TestUnrecognised(t *testing.T) {
	logger.Clear()

	h := newHarness()
	h.mc.V[0xf].Load(0x12)
	h.run(t, 0x0123, 0x8128, 0xe1ff, 0xf1ff)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x208)
	test.ExpectEquality(t, h.mc.Unrecognised, 4)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 0x12)
	test.ExpectEquality(t, h.mc.LastResult.Defn.Operator, instructions.Unrecognised)

	tw := &test.Writer{}
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "cpu: unrecognised instruction f1ff at 206\n")

	// logging can be turned off
	logger.Clear()
	h.ins.Prefs.LogUnrecognised.Set(false)
	h.run(t, 0x0123)
	tw.Clear()
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "")
	test.ExpectEquality(t, h.mc.Unrecognised, 5)
}

func TestLastResult(t *testing.T) {
	h := newHarness()
	h.run(t, 0x6005)
	test.ExpectSuccess(t, h.mc.LastResult.Final)
	test.ExpectEquality(t, h.mc.LastResult.String(), "200  6005  LD V0, $05")
}

func TestString(t *testing.T) {
	h := newHarness()
	h.run(t, 0x6a10, 0xa123)
	s := h.mc.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "PC=204 I=123 SP=0 [] V0=00"), s)
	test.ExpectSuccess(t, strings.Contains(s, "VA=10"), s)
}
