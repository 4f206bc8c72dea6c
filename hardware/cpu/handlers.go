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

package cpu

import (
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// handler implements one operator of the instruction set.
type handler func(mc *CPU, ins instructions.Instruction, keys input.Keypad) (execution.Outcome, error)

// handlers is indexed by instructions.Operator. every operator must have a
// handler.
var handlers = [instructions.NumOperators]handler{
	instructions.Unrecognised:          (*CPU).unrecognised,
	instructions.ClearScreen:           (*CPU).clearScreen,
	instructions.Return:                (*CPU).ret,
	instructions.Jump:                  (*CPU).jump,
	instructions.Call:                  (*CPU).call,
	instructions.SkipEqualImmediate:    (*CPU).skipEqualImmediate,
	instructions.SkipNotEqualImmediate: (*CPU).skipNotEqualImmediate,
	instructions.SkipEqualRegister:     (*CPU).skipEqualRegister,
	instructions.LoadImmediate:         (*CPU).loadImmediate,
	instructions.AddImmediate:          (*CPU).addImmediate,
	instructions.LoadRegister:          (*CPU).loadRegister,
	instructions.Or:                    (*CPU).or,
	instructions.And:                   (*CPU).and,
	instructions.Xor:                   (*CPU).xor,
	instructions.AddRegister:           (*CPU).addRegister,
	instructions.Subtract:              (*CPU).subtract,
	instructions.ShiftRight:            (*CPU).shiftRight,
	instructions.SubtractReverse:       (*CPU).subtractReverse,
	instructions.ShiftLeft:             (*CPU).shiftLeft,
	instructions.SkipNotEqualRegister:  (*CPU).skipNotEqualRegister,
	instructions.LoadIndex:             (*CPU).loadIndex,
	instructions.JumpOffset:            (*CPU).jumpOffset,
	instructions.Random:                (*CPU).random,
	instructions.Draw:                  (*CPU).draw,
	instructions.SkipKeyPressed:        (*CPU).skipKeyPressed,
	instructions.SkipKeyNotPressed:     (*CPU).skipKeyNotPressed,
	instructions.LoadFromDelay:         (*CPU).loadFromDelay,
	instructions.WaitKey:               (*CPU).waitKey,
	instructions.LoadDelay:             (*CPU).loadDelay,
	instructions.LoadSound:             (*CPU).loadSound,
	instructions.AddIndex:              (*CPU).addIndex,
	instructions.LoadFont:              (*CPU).loadFont,
	instructions.StoreBCD:              (*CPU).storeBCD,
	instructions.StoreRegisters:        (*CPU).storeRegisters,
	instructions.LoadRegisters:         (*CPU).loadRegisters,
}

// skipIf returns Skip if the condition is true.
func skipIf(cond bool) execution.Outcome {
	if cond {
		return execution.Skip
	}
	return execution.Normal
}

func (mc *CPU) unrecognised(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	mc.Unrecognised++
	if mc.instance != nil && mc.instance.Prefs.LogUnrecognised.Get().(bool) {
		logger.Logf(mc.instance, "cpu", "unrecognised instruction %s at %03x", ins, mc.PC.Address())
	}
	return execution.Normal, nil
}

func (mc *CPU) clearScreen(_ instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	mc.fb.Clear()
	return execution.Normal, nil
}

func (mc *CPU) ret(_ instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	address, err := mc.Stack.pop(mc.PC.Address())
	if err != nil {
		return execution.Normal, err
	}
	mc.PC.Load(address)
	return execution.Transferred, nil
}

func (mc *CPU) jump(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	mc.PC.Load(ins.NNN)
	return execution.Transferred, nil
}

// the return address is the instruction following the call
func (mc *CPU) call(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	ret := mc.PC
	ret.Add(execution.Normal.Advance())
	if err := mc.Stack.push(ret.Address(), mc.PC.Address()); err != nil {
		return execution.Normal, err
	}
	mc.PC.Load(ins.NNN)
	return execution.Transferred, nil
}

func (mc *CPU) skipEqualImmediate(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	return skipIf(mc.V[ins.X].Value() == ins.KK), nil
}

func (mc *CPU) skipNotEqualImmediate(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	return skipIf(mc.V[ins.X].Value() != ins.KK), nil
}

func (mc *CPU) skipEqualRegister(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	return skipIf(mc.V[ins.X].Value() == mc.V[ins.Y].Value()), nil
}

func (mc *CPU) skipNotEqualRegister(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	return skipIf(mc.V[ins.X].Value() != mc.V[ins.Y].Value()), nil
}

func (mc *CPU) loadImmediate(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	mc.V[ins.X].Load(ins.KK)
	return execution.Normal, nil
}

// VF is not affected
func (mc *CPU) addImmediate(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	mc.V[ins.X].Add(ins.KK)
	return execution.Normal, nil
}

func (mc *CPU) loadRegister(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	mc.V[ins.X].Load(mc.V[ins.Y].Value())
	return execution.Normal, nil
}

func (mc *CPU) or(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	mc.V[ins.X].OR(mc.V[ins.Y].Value())
	return execution.Normal, nil
}

func (mc *CPU) and(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	mc.V[ins.X].AND(mc.V[ins.Y].Value())
	return execution.Normal, nil
}

func (mc *CPU) xor(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	mc.V[ins.X].XOR(mc.V[ins.Y].Value())
	return execution.Normal, nil
}

// the flag is always written after the result. when X is F the register
// holds the flag
func (mc *CPU) addRegister(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	carry := mc.V[ins.X].Add(mc.V[ins.Y].Value())
	mc.flag(carry)
	return execution.Normal, nil
}

func (mc *CPU) subtract(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	noBorrow := mc.V[ins.X].Subtract(mc.V[ins.Y].Value())
	mc.flag(noBorrow)
	return execution.Normal, nil
}

func (mc *CPU) subtractReverse(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	noBorrow := mc.V[ins.X].SubtractFrom(mc.V[ins.Y].Value())
	mc.flag(noBorrow)
	return execution.Normal, nil
}

func (mc *CPU) shiftRight(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	lsb := mc.V[ins.X].LSR()
	mc.flag(lsb)
	return execution.Normal, nil
}

func (mc *CPU) shiftLeft(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	msb := mc.V[ins.X].ASL()
	mc.flag(msb)
	return execution.Normal, nil
}

func (mc *CPU) loadIndex(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	mc.I.Load(ins.NNN)
	return execution.Normal, nil
}

// the PC masks the sum to twelve bits
func (mc *CPU) jumpOffset(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	mc.PC.Load(ins.NNN + uint16(mc.V[0].Value()))
	return execution.Transferred, nil
}

func (mc *CPU) random(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	var v uint8
	if mc.instance != nil {
		v = uint8(mc.instance.Random.Rewindable(256))
	}
	mc.V[ins.X].Load(v & ins.KK)
	return execution.Normal, nil
}

func (mc *CPU) draw(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	sprite := make([]uint8, ins.N)
	for i := range sprite {
		sprite[i] = mc.mem.Read(mc.I.Address() + uint16(i))
	}
	collision := mc.fb.Draw(mc.V[ins.X].Value(), mc.V[ins.Y].Value(), sprite)
	mc.flag(collision)
	return execution.Normal, nil
}

func (mc *CPU) skipKeyPressed(ins instructions.Instruction, keys input.Keypad) (execution.Outcome, error) {
	return skipIf(keys.Pressed(mc.V[ins.X].Value())), nil
}

func (mc *CPU) skipKeyNotPressed(ins instructions.Instruction, keys input.Keypad) (execution.Outcome, error) {
	return skipIf(!keys.Pressed(mc.V[ins.X].Value())), nil
}

func (mc *CPU) loadFromDelay(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	mc.V[ins.X].Load(mc.timers.Delay())
	return execution.Normal, nil
}

// key zero never satisfies the wait. the PC does not move until a key is
// pressed
func (mc *CPU) waitKey(ins instructions.Instruction, keys input.Keypad) (execution.Outcome, error) {
	k, ok := keys.Lowest(1)
	if !ok {
		return execution.Transferred, nil
	}
	mc.V[ins.X].Load(k)
	return execution.Normal, nil
}

func (mc *CPU) loadDelay(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	mc.timers.SetDelay(mc.V[ins.X].Value())
	return execution.Normal, nil
}

func (mc *CPU) loadSound(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	mc.timers.SetSound(mc.V[ins.X].Value())
	return execution.Normal, nil
}

// VF is not affected
func (mc *CPU) addIndex(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	mc.I.Add(mc.V[ins.X].Value())
	return execution.Normal, nil
}

func (mc *CPU) loadFont(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	mc.I.Load(memory.GlyphAddress(mc.V[ins.X].Value()))
	return execution.Normal, nil
}

func (mc *CPU) storeBCD(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	v := mc.V[ins.X].Value()
	a := mc.I.Address()
	mc.mem.Write(a, v/100)
	mc.mem.Write(a+1, (v/10)%10)
	mc.mem.Write(a+2, v%10)
	return execution.Normal, nil
}

// I is not changed
func (mc *CPU) storeRegisters(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	a := mc.I.Address()
	for r := 0; r <= int(ins.X); r++ {
		mc.mem.Write(a+uint16(r), mc.V[r].Value())
	}
	return execution.Normal, nil
}

// I is not changed
func (mc *CPU) loadRegisters(ins instructions.Instruction, _ input.Keypad) (execution.Outcome, error) {
	a := mc.I.Address()
	for r := 0; r <= int(ins.X); r++ {
		mc.V[r].Load(mc.mem.Read(a + uint16(r)))
	}
	return execution.Normal, nil
}
