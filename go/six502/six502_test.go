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

package six502

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCPU wires a CPU to a fresh Bus with a reset vector pointing
// at 0x8000, the conventional program origin used throughout these
// tests.
func newTestCPU(t *testing.T) (*CPU, *Bus) {
	t.Helper()
	bus := NewBus()
	bus.Write(0xFFFC, 0x00)
	bus.Write(0xFFFD, 0x80)

	cpu := New()
	cpu.Attach(bus)
	cpu.Reset()
	for !cpu.Complete() {
		cpu.Tick()
	}
	return cpu, bus
}

func dumpOnFail(t *testing.T, cpu *CPU) {
	if t.Failed() {
		t.Log(spew.Sdump(cpu))
	}
}

func tickInstruction(cpu *CPU) int {
	n := 0
	cpu.Tick()
	n++
	for !cpu.Complete() {
		cpu.Tick()
		n++
	}
	return n
}

func TestReset_LoadsVectorAndClearsRegisters(t *testing.T) {
	cpu, _ := newTestCPU(t)
	defer dumpOnFail(t, cpu)

	assert.Equal(t, uint16(0x8000), cpu.PC)
	assert.Equal(t, uint8(0), cpu.A)
	assert.Equal(t, uint8(0), cpu.X)
	assert.Equal(t, uint8(0), cpu.Y)
	assert.Equal(t, uint8(0xFD), cpu.SP)
	assert.NotZero(t, cpu.GetFlag(FlagUnused))
}

// Scenario 1: LDA immediate, flags.
func TestLDA_Immediate_SetsZeroFlag(t *testing.T) {
	cpu, bus := newTestCPU(t)
	defer dumpOnFail(t, cpu)

	bus.Load(0x8000, []uint8{0xA9, 0x00})

	tickInstruction(cpu)

	assert.Equal(t, uint8(0x00), cpu.A)
	assert.Equal(t, uint8(1), cpu.GetFlag(FlagZero))
	assert.Equal(t, uint8(0), cpu.GetFlag(FlagNegative))
	assert.Equal(t, uint16(0x8002), cpu.PC)
}

// Scenario 2: ADC with carry-in, producing overflow but no carry-out.
func TestADC_CarryAndOverflow(t *testing.T) {
	cpu, bus := newTestCPU(t)
	defer dumpOnFail(t, cpu)

	cpu.A = 0x50
	cpu.SetFlag(FlagCarry, true)
	bus.Load(0x8000, []uint8{0x69, 0x50})

	tickInstruction(cpu)

	require.Equal(t, uint8(0xA1), cpu.A)
	assert.Equal(t, uint8(0), cpu.GetFlag(FlagCarry))
	assert.Equal(t, uint8(0), cpu.GetFlag(FlagZero))
	assert.Equal(t, uint8(1), cpu.GetFlag(FlagNegative))
	assert.Equal(t, uint8(1), cpu.GetFlag(FlagOverflow))
}

func TestSBC_NoBorrowKeepsCarry(t *testing.T) {
	cpu, bus := newTestCPU(t)
	defer dumpOnFail(t, cpu)

	cpu.A = 0x10
	cpu.SetFlag(FlagCarry, true)
	bus.Load(0x8000, []uint8{0xE9, 0x05})

	tickInstruction(cpu)

	assert.Equal(t, uint8(0x0B), cpu.A)
	assert.Equal(t, uint8(1), cpu.GetFlag(FlagCarry))
}

// Scenario 3: branch taken crossing a page boundary costs 4 cycles.
func TestBEQ_TakenCrossesPage(t *testing.T) {
	cpu, bus := newTestCPU(t)
	defer dumpOnFail(t, cpu)

	bus.Write(0xFFFC, 0xFD)
	bus.Write(0xFFFD, 0x80)
	cpu.Reset()
	for !cpu.Complete() {
		cpu.Tick()
	}

	cpu.SetFlag(FlagZero, true)
	bus.Load(0x80FD, []uint8{0xF0, 0x05})

	total := tickInstruction(cpu)

	assert.Equal(t, uint16(0x8104), cpu.PC)
	assert.Equal(t, 4, total)
}

func TestBNE_NotTakenCostsBaseCycles(t *testing.T) {
	cpu, bus := newTestCPU(t)
	defer dumpOnFail(t, cpu)

	cpu.SetFlag(FlagZero, true)
	bus.Load(0x8000, []uint8{0xD0, 0x05})

	total := tickInstruction(cpu)

	assert.Equal(t, uint16(0x8002), cpu.PC)
	assert.Equal(t, 2, total)
}

// Scenario 4: JMP indirect reproduces the page-boundary hardware bug.
func TestJMP_IndirectPageBug(t *testing.T) {
	cpu, bus := newTestCPU(t)
	defer dumpOnFail(t, cpu)

	bus.Write(0x02FF, 0x34)
	bus.Write(0x0300, 0x56)
	bus.Write(0x0200, 0x12)
	bus.Load(0x8000, []uint8{0x6C, 0xFF, 0x02})

	tickInstruction(cpu)

	assert.Equal(t, uint16(0x1234), cpu.PC)
}

// Scenario 5: JSR/RTS round-trip with stack pointer wraparound.
func TestJSR_RTS_WrapsStackPointer(t *testing.T) {
	cpu, bus := newTestCPU(t)
	defer dumpOnFail(t, cpu)

	cpu.SP = 0x00
	bus.Load(0x8000, []uint8{0x20, 0x00, 0x90})
	bus.Load(0x9000, []uint8{0x60})

	tickInstruction(cpu)
	assert.Equal(t, uint8(0xFE), cpu.SP)
	assert.Equal(t, uint16(0x9000), cpu.PC)

	tickInstruction(cpu)
	assert.Equal(t, uint8(0x00), cpu.SP)
	assert.Equal(t, uint16(0x8003), cpu.PC)
}

func TestPHA_PLA_RoundTrips(t *testing.T) {
	cpu, bus := newTestCPU(t)
	defer dumpOnFail(t, cpu)

	cpu.A = 0x42
	bus.Load(0x8000, []uint8{0x48, 0xA9, 0x00, 0x68})

	tickInstruction(cpu) // PHA
	tickInstruction(cpu) // LDA #$00
	require.Equal(t, uint8(0x00), cpu.A)
	tickInstruction(cpu) // PLA

	assert.Equal(t, uint8(0x42), cpu.A)
}

// Scenario 6: NMI is unconditional, IRQ is masked by the I flag.
func TestIRQ_MaskedByInterruptDisable(t *testing.T) {
	cpu, _ := newTestCPU(t)
	defer dumpOnFail(t, cpu)

	cpu.SetFlag(FlagInterrupt, true)
	pcBefore := cpu.PC

	cpu.IRQ()

	assert.Equal(t, pcBefore, cpu.PC)
}

func TestNMI_IgnoresInterruptDisable(t *testing.T) {
	cpu, bus := newTestCPU(t)
	defer dumpOnFail(t, cpu)

	bus.Write(0xFFFA, 0x00)
	bus.Write(0xFFFB, 0x20)
	cpu.SetFlag(FlagInterrupt, true)

	cpu.NMI()

	assert.Equal(t, uint16(0x2000), cpu.PC)
	assert.Equal(t, uint8(1), cpu.GetFlag(FlagInterrupt))
	assert.Equal(t, uint8(8), cpu.CyclesRemaining())
}

func TestBus_ReadWriteRoundTrip(t *testing.T) {
	bus := NewBus()
	for addr := 0; addr < MemoryCapacity; addr += 4096 {
		bus.Write(uint16(addr), 0x5A)
		require.Equal(t, uint8(0x5A), bus.Read(uint16(addr), false))
	}
}

func TestStackPointer_WrapsModulo256(t *testing.T) {
	cpu, _ := newTestCPU(t)
	defer dumpOnFail(t, cpu)

	cpu.SP = 0xFF
	for i := 0; i < 256; i++ {
		cpu.push(uint8(i))
	}
	assert.Equal(t, uint8(0xFF), cpu.SP)
}

func TestDisassemble_ProducesLineForEachInstruction(t *testing.T) {
	cpu, bus := newTestCPU(t)
	defer dumpOnFail(t, cpu)

	bus.Load(0x8000, []uint8{0xA9, 0x00, 0x00})

	d := cpu.Disassemble(0x8000, 0x8001)

	require.NotEmpty(t, d.Index)
	assert.Contains(t, d.Lines[0x8000], "LDA")
}

func TestTick_PanicsWithoutBus(t *testing.T) {
	cpu := New()
	assert.Panics(t, func() { cpu.Tick() })
}
