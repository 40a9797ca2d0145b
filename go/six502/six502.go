// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package six502 implements a cycle-accurate interpreter core for the
// MOS 6502 microprocessor, in the NES variant (no decimal mode).
package six502

import (
	"fmt"
	"strings"
)

const (
	// FlagNegative N
	FlagNegative uint8 = 0x80
	// FlagOverflow V
	FlagOverflow uint8 = 0x40
	// FlagUnused U
	FlagUnused uint8 = 0x20
	// FlagBreak B
	FlagBreak uint8 = 0x10
	// FlagDecimal D
	FlagDecimal uint8 = 0x08
	// FlagInterrupt I
	FlagInterrupt uint8 = 0x04
	// FlagZero Z
	FlagZero uint8 = 0x02
	// FlagCarry C
	FlagCarry uint8 = 0x01

	// AddrModeUnknown marks a table slot with no addressing mode assigned.
	AddrModeUnknown = iota
	// AddrModeIMP is implied addressing.
	AddrModeIMP
	// AddrModeIMM is immediate addressing.
	AddrModeIMM
	// AddrModeZP0 is zero page addressing.
	AddrModeZP0
	// AddrModeZPX is zero page with X offset.
	AddrModeZPX
	// AddrModeZPY is zero page with Y offset.
	AddrModeZPY
	// AddrModeREL is relative addressing, used by branches.
	AddrModeREL
	// AddrModeABS is absolute addressing.
	AddrModeABS
	// AddrModeABX is absolute with X offset.
	AddrModeABX
	// AddrModeABY is absolute with Y offset.
	AddrModeABY
	// AddrModeIND is indirect addressing.
	AddrModeIND
	// AddrModeIZX is indirect, X offset applied before the indirection.
	AddrModeIZX
	// AddrModeIZY is indirect, Y offset applied after the indirection.
	AddrModeIZY
)

// CPU emulates a MOS 6502 from the software's perspective: registers,
// status flags, and a synchronous per-cycle clock driven over a Bus.
type CPU struct {
	// A is the accumulator.
	A uint8
	// X is the first index register.
	X uint8
	// Y is the second index register.
	Y uint8
	// SP is the stack pointer; the stack always lives at 0x0100|SP.
	SP uint8
	// PC is the program counter.
	PC uint16
	// FLAG is the status register: N V U B D I Z C.
	FLAG uint8

	bus *Bus

	fetched    uint8
	temp       uint16
	addrAbs    uint16
	addrRel    uint16
	opcode     uint8
	cycles     uint8
	clockCount uint32

	lookup []*Instruction
}

// New creates a CPU with an unpopulated Bus; call Attach before Tick.
func New() *CPU {
	return &CPU{
		lookup: newInstructionSet(),
	}
}

// Attach connects the CPU to a Bus. Required before any call to Tick,
// Reset, IRQ, or NMI.
func (cpu *CPU) Attach(bus *Bus) {
	cpu.bus = bus
}

// Reset forces the CPU into a known state, as on power-up: registers
// cleared, stack pointer set to 0xFD, status register cleared except
// for the unused bit, and PC loaded from the reset vector at 0xFFFC.
func (cpu *CPU) Reset() {
	cpu.requireBus()

	cpu.PC = cpu.read16(0xFFFC)

	cpu.A = 0
	cpu.X = 0
	cpu.Y = 0
	cpu.SP = 0xFD
	cpu.FLAG = 0x00 | FlagUnused

	cpu.addrRel = 0
	cpu.addrAbs = 0
	cpu.fetched = 0

	cpu.cycles = 8
}

// IRQ requests a maskable interrupt. No effect if the interrupt-disable
// flag is set. Otherwise the current PC and status are pushed, I is
// set, and PC is loaded from the IRQ/BRK vector at 0xFFFE.
func (cpu *CPU) IRQ() {
	cpu.requireBus()

	if cpu.GetFlag(FlagInterrupt) != 0 {
		return
	}

	cpu.pushPC()

	cpu.SetFlag(FlagBreak, false)
	cpu.SetFlag(FlagUnused, true)
	cpu.SetFlag(FlagInterrupt, true)
	cpu.push(cpu.FLAG)

	cpu.PC = cpu.read16(0xFFFE)

	cpu.cycles = 7
}

// NMI requests a non-maskable interrupt, identical to IRQ but always
// honored and vectored through 0xFFFA.
func (cpu *CPU) NMI() {
	cpu.requireBus()

	cpu.pushPC()

	cpu.SetFlag(FlagBreak, false)
	cpu.SetFlag(FlagUnused, true)
	cpu.SetFlag(FlagInterrupt, true)
	cpu.push(cpu.FLAG)

	cpu.PC = cpu.read16(0xFFFA)

	cpu.cycles = 8
}

// Tick performs a single clock cycle. When the previous instruction's
// cycles have drained, the next opcode is decoded and fully executed
// (addressing mode, then operation); the resulting cycle count is then
// drained one tick at a time by subsequent calls.
func (cpu *CPU) Tick() {
	cpu.requireBus()

	if cpu.cycles == 0 {
		cpu.opcode = cpu.read(cpu.PC)

		instruction := cpu.lookup[cpu.opcode]

		logPC := cpu.PC

		cpu.SetFlag(FlagUnused, true)
		cpu.PC++
		cpu.cycles = instruction.cycles

		addressingCycles := instruction.am(cpu)
		executionCycles := instruction.op(cpu)

		cpu.cycles += addressingCycles & executionCycles

		cpu.SetFlag(FlagUnused, true)

		if logEnable {
			logger.Log(fmt.Sprintf("%10d:%02d PC:%04X %s A:%02X X:%02X Y:%02X %s STKP:%02X",
				cpu.clockCount, cpu.opcode, logPC, instruction.name, cpu.A, cpu.X, cpu.Y,
				cpu.flagString(), cpu.SP))
		}
	}

	cpu.clockCount++
	cpu.cycles--
}

func (cpu *CPU) flagString() string {
	flagChars := "NVUBDIZC"
	flagBits := []uint8{FlagNegative, FlagOverflow, FlagUnused, FlagBreak, FlagDecimal, FlagInterrupt, FlagZero, FlagCarry}

	sb := &strings.Builder{}
	for i, c := range flagChars {
		if cpu.GetFlag(flagBits[i]) != 0 {
			sb.WriteRune(c)
		} else {
			sb.WriteRune('.')
		}
	}
	return sb.String()
}

// Complete reports whether the current instruction has finished,
// letting a host drive "one instruction at a time" with a loop like
// `for !cpu.Complete() { cpu.Tick() }`.
func (cpu *CPU) Complete() bool {
	return cpu.cycles == 0
}

// CyclesRemaining returns how many ticks remain before the current
// instruction completes.
func (cpu *CPU) CyclesRemaining() uint8 {
	return cpu.cycles
}

// GetFlag returns 1 if the given flag bit is set in FLAG, else 0.
func (cpu *CPU) GetFlag(flag uint8) uint8 {
	if cpu.FLAG&flag > 0 {
		return 1
	}
	return 0
}

// SetFlag sets or clears the given flag bit in FLAG.
func (cpu *CPU) SetFlag(flag uint8, v bool) {
	if v {
		cpu.FLAG |= flag
	} else {
		cpu.FLAG &^= flag
	}
}

func (cpu *CPU) push(data uint8) {
	cpu.write(0x0100+uint16(cpu.SP), data)
	cpu.SP--
}

func (cpu *CPU) pop() uint8 {
	cpu.SP++
	return cpu.read(0x0100 + uint16(cpu.SP))
}

func (cpu *CPU) pushPC() {
	cpu.write(0x0100+uint16(cpu.SP), uint8((cpu.PC>>8)&0x00FF))
	cpu.SP--
	cpu.write(0x0100+uint16(cpu.SP), uint8(cpu.PC&0x00FF))
	cpu.SP--
}

// popPC pulls the two bytes of a saved PC independently rather than
// via read16 of a single computed address: when SP wraps across the
// 0x01FF/0x0100 boundary the two bytes are not at adjacent addresses,
// so they must be popped one at a time the way real hardware does.
func (cpu *CPU) popPC() {
	lo := uint16(cpu.pop())
	hi := uint16(cpu.pop())
	cpu.PC = hi<<8 | lo
}

func (cpu *CPU) read(addr uint16) uint8 {
	return cpu.bus.Read(addr, false)
}

func (cpu *CPU) read16(addr uint16) uint16 {
	lo := uint16(cpu.read(addr))
	hi := uint16(cpu.read(addr + 1))
	return hi<<8 | lo
}

func (cpu *CPU) write(addr uint16, data uint8) {
	cpu.bus.Write(addr, data)
}

// fetch materializes the operand byte an operation needs into
// cpu.fetched, reading from addrAbs unless the addressing mode was
// implied (in which case amIMP already copied A into fetched).
func (cpu *CPU) fetch() uint8 {
	if cpu.lookup[cpu.opcode].addrMode != AddrModeIMP {
		cpu.fetched = cpu.read(cpu.addrAbs)
	}
	return cpu.fetched
}

func (cpu *CPU) requireBus() {
	if cpu.bus == nil {
		panic("six502: bus not connected")
	}
}
