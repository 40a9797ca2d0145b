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

// Instruction ties together a mnemonic, an addressing-mode routine, an
// operation routine, the base cycle cost, and the addressing-mode tag
// (needed by shift/rotate ops to decide whether they target A or
// memory).
type Instruction struct {
	name     string
	op       func(cpu *CPU) uint8
	am       func(cpu *CPU) uint8
	cycles   uint8
	addrMode int
}

// Addressing modes each compute an effective address (or, for REL,
// a signed displacement) and return 0 or 1 to signal whether a page
// cross occurred that the operation may opt into as an extra cycle.

// amIMP targets the accumulator directly, for instructions like PHA.
func amIMP(cpu *CPU) uint8 {
	cpu.fetched = cpu.A
	return 0
}

// amIMM reads the operand from the byte following the opcode.
func amIMM(cpu *CPU) uint8 {
	cpu.addrAbs = cpu.PC
	cpu.PC++
	return 0
}

// amZP0 addresses a location in the first 256 bytes with a single
// operand byte.
func amZP0(cpu *CPU) uint8 {
	cpu.addrAbs = uint16(cpu.read(cpu.PC))
	cpu.PC++
	cpu.addrAbs &= 0x00FF
	return 0
}

// amZPX is amZP0 offset by X, wrapping within the zero page.
func amZPX(cpu *CPU) uint8 {
	cpu.addrAbs = uint16(cpu.read(cpu.PC) + cpu.X)
	cpu.PC++
	cpu.addrAbs &= 0x00FF
	return 0
}

// amZPY is amZP0 offset by Y, wrapping within the zero page.
func amZPY(cpu *CPU) uint8 {
	cpu.addrAbs = uint16(cpu.read(cpu.PC) + cpu.Y)
	cpu.PC++
	cpu.addrAbs &= 0x00FF
	return 0
}

// amREL computes a sign-extended displacement, exclusive to branches.
func amREL(cpu *CPU) uint8 {
	cpu.addrRel = uint16(cpu.read(cpu.PC))
	cpu.PC++
	if cpu.addrRel&0x80 > 0 {
		cpu.addrRel |= 0xFF00
	}
	return 0
}

// amABS reads a full 16-bit little-endian address.
func amABS(cpu *CPU) uint8 {
	cpu.addrAbs = cpu.read16(cpu.PC)
	cpu.PC += 2
	return 0
}

// amABX is amABS offset by X; crossing a page costs an extra cycle.
func amABX(cpu *CPU) uint8 {
	addr := cpu.read16(cpu.PC)
	cpu.PC += 2
	cpu.addrAbs = addr
	cpu.addrAbs += uint16(cpu.X)

	if cpu.addrAbs&0xFF00 != addr&0xFF00 {
		return 1
	}
	return 0
}

// amABY is amABS offset by Y; crossing a page costs an extra cycle.
func amABY(cpu *CPU) uint8 {
	addr := cpu.read16(cpu.PC)
	cpu.PC += 2
	cpu.addrAbs = addr
	cpu.addrAbs += uint16(cpu.Y)

	if cpu.addrAbs&0xFF00 != addr&0xFF00 {
		return 1
	}
	return 0
}

// amIND reads a pointer and dereferences it for the effective address.
// Faithfully reproduces the 6502 hardware bug: when the pointer's low
// byte is 0xFF, the high byte wraps within the same page instead of
// crossing into the next one.
func amIND(cpu *CPU) uint8 {
	ptrLo := uint16(cpu.read(cpu.PC))
	cpu.PC++
	ptrHi := uint16(cpu.read(cpu.PC))
	cpu.PC++

	ptr := (ptrHi << 8) | ptrLo

	if ptrLo == 0x00FF {
		cpu.addrAbs = uint16(cpu.read(ptr&0xFF00))<<8 | uint16(cpu.read(ptr+0))
	} else {
		cpu.addrAbs = uint16(cpu.read(ptr+1))<<8 | uint16(cpu.read(ptr+0))
	}

	return 0
}

// amIZX indexes page zero by X to find a pointer, then dereferences it.
func amIZX(cpu *CPU) uint8 {
	t := uint16(cpu.read(cpu.PC))
	cpu.PC++

	lo := uint16(cpu.read((t + uint16(cpu.X)) & 0x00FF))
	hi := uint16(cpu.read((t + uint16(cpu.X) + 1) & 0x00FF))

	cpu.addrAbs = (hi << 8) | lo

	return 0
}

// amIZY dereferences a pointer from page zero, then offsets by Y;
// crossing a page on the offset costs an extra cycle.
func amIZY(cpu *CPU) uint8 {
	t := uint16(cpu.read(cpu.PC))
	cpu.PC++

	lo := uint16(cpu.read(t & 0x00FF))
	hi := uint16(cpu.read((t + 1) & 0x00FF))

	cpu.addrAbs = (hi << 8) | lo
	cpu.addrAbs += uint16(cpu.Y)

	if cpu.addrAbs&0xFF00 != (hi << 8) {
		return 1
	}
	return 0
}
