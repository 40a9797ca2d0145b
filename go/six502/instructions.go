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

// There are 56 "legitimate" opcodes on the 6502. Undocumented opcodes
// are not individually modelled; the table maps them to opXXX or opNOP,
// which behave as a NOP of the table-declared cycle length. The one
// exception is 0xEB, an alias of SBC immediate.
//
// Each operation returns 0 normally, or 1 if it is willing to accept
// the extra cycle its addressing mode may have flagged for a page
// cross. The two are combined with a bitwise AND by the clock.

// Instruction: Add with Carry In.
// Function: A = A + M + C. Flags: C, V, N, Z.
//
// The overflow flag follows V = ~(A^M) & (A^R): if the two operands
// share a sign and the result doesn't, the addition overflowed the
// signed range.
func opADC(cpu *CPU) uint8 {
	cpu.fetch()

	cpu.temp = uint16(cpu.A) + uint16(cpu.fetched) + uint16(cpu.GetFlag(FlagCarry))

	cpu.SetFlag(FlagCarry, cpu.temp > 255)
	cpu.SetFlag(FlagZero, (cpu.temp&0x00FF) == 0)
	overflow := (^(uint16(cpu.A) ^ uint16(cpu.fetched)) & (uint16(cpu.A) ^ cpu.temp)) & 0x0080
	cpu.SetFlag(FlagOverflow, overflow != 0)
	cpu.SetFlag(FlagNegative, cpu.temp&0x80 != 0)

	cpu.A = uint8(cpu.temp & 0x00FF)

	return 1
}

// Instruction: Bitwise AND. Function: A = A & M. Flags: N, Z.
func opAND(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.A &= cpu.fetched
	cpu.SetFlag(FlagZero, cpu.A == 0x00)
	cpu.SetFlag(FlagNegative, cpu.A&0x80 != 0)
	return 1
}

// Instruction: Arithmetic Shift Left. Function: C <- (A << 1) <- 0.
func opASL(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.fetched) << 1
	cpu.SetFlag(FlagCarry, cpu.temp&0xFF00 > 0)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x00)
	cpu.SetFlag(FlagNegative, cpu.temp&0x80 != 0)

	if cpu.lookup[cpu.opcode].addrMode == AddrModeIMP {
		cpu.A = uint8(cpu.temp & 0x00FF)
	} else {
		cpu.write(cpu.addrAbs, uint8(cpu.temp&0x00FF))
	}

	return 0
}

func branchIf(cpu *CPU, cond bool) uint8 {
	if cond {
		cpu.cycles++
		cpu.addrAbs = cpu.PC + cpu.addrRel

		if cpu.addrAbs&0xFF00 != cpu.PC&0xFF00 {
			cpu.cycles++
		}

		cpu.PC = cpu.addrAbs
	}
	return 0
}

// Instruction: Branch if Carry Clear.
func opBCC(cpu *CPU) uint8 { return branchIf(cpu, cpu.GetFlag(FlagCarry) == 0) }

// Instruction: Branch if Carry Set.
func opBCS(cpu *CPU) uint8 { return branchIf(cpu, cpu.GetFlag(FlagCarry) == 1) }

// Instruction: Branch if Equal.
func opBEQ(cpu *CPU) uint8 { return branchIf(cpu, cpu.GetFlag(FlagZero) == 1) }

// Instruction: Bit Test. Flags: Z, N, V.
func opBIT(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.A & cpu.fetched)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x00)
	cpu.SetFlag(FlagNegative, cpu.fetched&(1<<7) != 0)
	cpu.SetFlag(FlagOverflow, cpu.fetched&(1<<6) != 0)
	return 0
}

// Instruction: Branch if Negative.
func opBMI(cpu *CPU) uint8 { return branchIf(cpu, cpu.GetFlag(FlagNegative) == 1) }

// Instruction: Branch if Not Equal.
func opBNE(cpu *CPU) uint8 { return branchIf(cpu, cpu.GetFlag(FlagZero) == 0) }

// Instruction: Branch if Positive.
func opBPL(cpu *CPU) uint8 { return branchIf(cpu, cpu.GetFlag(FlagNegative) == 0) }

// Instruction: Break. A software interrupt; the byte following the
// opcode is a padding/signature byte, which is why BRK's table entry
// uses immediate addressing to consume it.
func opBRK(cpu *CPU) uint8 {
	cpu.PC++

	cpu.SetFlag(FlagInterrupt, true)
	cpu.pushPC()

	cpu.SetFlag(FlagBreak, true)
	cpu.push(cpu.FLAG)
	cpu.SetFlag(FlagBreak, false)

	cpu.PC = cpu.read16(0xFFFE)

	return 0
}

// Instruction: Branch if Overflow Clear.
func opBVC(cpu *CPU) uint8 { return branchIf(cpu, cpu.GetFlag(FlagOverflow) == 0) }

// Instruction: Branch if Overflow Set.
func opBVS(cpu *CPU) uint8 { return branchIf(cpu, cpu.GetFlag(FlagOverflow) == 1) }

// Instruction: Clear Carry Flag.
func opCLC(cpu *CPU) uint8 { cpu.SetFlag(FlagCarry, false); return 0 }

// Instruction: Clear Decimal Flag.
func opCLD(cpu *CPU) uint8 { cpu.SetFlag(FlagDecimal, false); return 0 }

// Instruction: Clear Interrupt Disable.
func opCLI(cpu *CPU) uint8 { cpu.SetFlag(FlagInterrupt, false); return 0 }

// Instruction: Clear Overflow Flag.
func opCLV(cpu *CPU) uint8 { cpu.SetFlag(FlagOverflow, false); return 0 }

// Instruction: Compare Accumulator. C <- A>=M, Z <- (A-M)==0.
func opCMP(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.A) - uint16(cpu.fetched)
	cpu.SetFlag(FlagCarry, cpu.A >= cpu.fetched)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x0000)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	return 1
}

// Instruction: Compare X Register.
func opCPX(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.X) - uint16(cpu.fetched)
	cpu.SetFlag(FlagCarry, cpu.X >= cpu.fetched)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x0000)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	return 0
}

// Instruction: Compare Y Register.
func opCPY(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.Y) - uint16(cpu.fetched)
	cpu.SetFlag(FlagCarry, cpu.Y >= cpu.fetched)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x0000)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	return 0
}

// Instruction: Decrement Memory.
func opDEC(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.fetched - 1)
	cpu.write(cpu.addrAbs, uint8(cpu.temp&0x00FF))
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x0000)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	return 0
}

// Instruction: Decrement X.
func opDEX(cpu *CPU) uint8 {
	cpu.X--
	cpu.SetFlag(FlagZero, cpu.X == 0x00)
	cpu.SetFlag(FlagNegative, cpu.X&0x80 != 0)
	return 0
}

// Instruction: Decrement Y.
func opDEY(cpu *CPU) uint8 {
	cpu.Y--
	cpu.SetFlag(FlagZero, cpu.Y == 0x00)
	cpu.SetFlag(FlagNegative, cpu.Y&0x80 != 0)
	return 0
}

// Instruction: Bitwise XOR. Function: A = A ^ M.
func opEOR(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.A ^= cpu.fetched
	cpu.SetFlag(FlagZero, cpu.A == 0x00)
	cpu.SetFlag(FlagNegative, cpu.A&0x80 != 0)
	return 1
}

// Instruction: Increment Memory.
func opINC(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.fetched + 1)
	cpu.write(cpu.addrAbs, uint8(cpu.temp&0x00FF))
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x0000)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	return 0
}

// Instruction: Increment X.
func opINX(cpu *CPU) uint8 {
	cpu.X++
	cpu.SetFlag(FlagZero, cpu.X == 0x00)
	cpu.SetFlag(FlagNegative, cpu.X&0x80 != 0)
	return 0
}

// Instruction: Increment Y.
func opINY(cpu *CPU) uint8 {
	cpu.Y++
	cpu.SetFlag(FlagZero, cpu.Y == 0x00)
	cpu.SetFlag(FlagNegative, cpu.Y&0x80 != 0)
	return 0
}

// Instruction: Jump. Function: PC = addrAbs.
func opJMP(cpu *CPU) uint8 {
	cpu.PC = cpu.addrAbs
	return 0
}

// Instruction: Jump to Subroutine.
func opJSR(cpu *CPU) uint8 {
	cpu.PC--
	cpu.pushPC()
	cpu.PC = cpu.addrAbs
	return 0
}

// Instruction: Load Accumulator. Accepts the addressing mode's page
// cross cycle, so indexed loads pay for crossing a page boundary.
func opLDA(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.A = cpu.fetched
	cpu.SetFlag(FlagZero, cpu.A == 0)
	cpu.SetFlag(FlagNegative, cpu.A&0x80 != 0)
	return 1
}

// Instruction: Load X Register.
func opLDX(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.X = cpu.fetched
	cpu.SetFlag(FlagZero, cpu.X == 0)
	cpu.SetFlag(FlagNegative, cpu.X&0x80 != 0)
	return 1
}

// Instruction: Load Y Register.
func opLDY(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.Y = cpu.fetched
	cpu.SetFlag(FlagZero, cpu.Y == 0)
	cpu.SetFlag(FlagNegative, cpu.Y&0x80 != 0)
	return 1
}

// Instruction: Logical Shift Right. Function: 0 -> x >> 1 -> C.
func opLSR(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.SetFlag(FlagCarry, cpu.fetched&0x01 != 0)
	cpu.temp = uint16(cpu.fetched >> 1)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x0000)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	if cpu.lookup[cpu.opcode].addrMode == AddrModeIMP {
		cpu.A = uint8(cpu.temp & 0x00FF)
	} else {
		cpu.write(cpu.addrAbs, uint8(cpu.temp&0x00FF))
	}
	return 0
}

// Instruction: No Operation. A handful of undocumented NOP opcodes
// consume a two-byte operand via absolute-X addressing and so accept the
// page-cross cycle like any other ABX-addressed op.
func opNOP(cpu *CPU) uint8 {
	switch cpu.opcode {
	case 0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC:
		return 1
	}
	return 0
}

// Instruction: Bitwise OR. Function: A = A | M.
func opORA(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.A |= cpu.fetched
	cpu.SetFlag(FlagZero, cpu.A == 0x00)
	cpu.SetFlag(FlagNegative, cpu.A&0x80 != 0)
	return 1
}

// Instruction: Push Accumulator.
func opPHA(cpu *CPU) uint8 {
	cpu.push(cpu.A)
	return 0
}

// Instruction: Push Status Register. Break and Unused are forced to 1
// in the pushed byte and then cleared back in the live register; the
// next Tick's unconditional Unused=1 makes that clearing unobservable.
func opPHP(cpu *CPU) uint8 {
	cpu.SetFlag(FlagBreak, true)
	cpu.SetFlag(FlagUnused, true)
	cpu.push(cpu.FLAG)
	cpu.SetFlag(FlagBreak, false)
	cpu.SetFlag(FlagUnused, false)
	return 0
}

// Instruction: Pull Accumulator.
func opPLA(cpu *CPU) uint8 {
	cpu.A = cpu.pop()
	cpu.SetFlag(FlagZero, cpu.A == 0x00)
	cpu.SetFlag(FlagNegative, cpu.A&0x80 != 0)
	return 0
}

// Instruction: Pull Status Register.
func opPLP(cpu *CPU) uint8 {
	cpu.FLAG = cpu.pop()
	cpu.SetFlag(FlagUnused, true)
	return 0
}

// Instruction: Rotate Left. Function: C <- (x << 1) <- C.
func opROL(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.fetched)<<1 | uint16(cpu.GetFlag(FlagCarry))
	cpu.SetFlag(FlagCarry, cpu.temp&0xFF00 != 0)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x0000)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	if cpu.lookup[cpu.opcode].addrMode == AddrModeIMP {
		cpu.A = uint8(cpu.temp & 0x00FF)
	} else {
		cpu.write(cpu.addrAbs, uint8(cpu.temp&0x00FF))
	}
	return 0
}

// Instruction: Rotate Right. Function: C -> (x >> 1) -> C.
func opROR(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.fetched>>1) | uint16(cpu.GetFlag(FlagCarry)<<7)
	cpu.SetFlag(FlagCarry, cpu.fetched&0x01 != 0)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x00)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	if cpu.lookup[cpu.opcode].addrMode == AddrModeIMP {
		cpu.A = uint8(cpu.temp & 0x00FF)
	} else {
		cpu.write(cpu.addrAbs, uint8(cpu.temp&0x00FF))
	}
	return 0
}

// Instruction: Return from Interrupt.
func opRTI(cpu *CPU) uint8 {
	cpu.FLAG = cpu.pop()
	cpu.FLAG &= ^FlagBreak
	cpu.FLAG &= ^FlagUnused

	cpu.popPC()
	return 0
}

// Instruction: Return from Subroutine.
func opRTS(cpu *CPU) uint8 {
	cpu.popPC()
	cpu.PC++
	return 0
}

// Instruction: Subtract with Borrow In. Function: A = A - M - (1-C).
// Implemented as addition of the bitwise-inverted operand, which
// reuses exactly the carry/overflow logic of opADC.
func opSBC(cpu *CPU) uint8 {
	cpu.fetch()

	value := uint16(cpu.fetched) ^ 0x00FF

	cpu.temp = uint16(cpu.A) + value + uint16(cpu.GetFlag(FlagCarry))
	cpu.SetFlag(FlagCarry, cpu.temp&0xFF00 != 0)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0)
	overflow := (cpu.temp ^ uint16(cpu.A)) & ((cpu.temp ^ value) & 0x0080)
	cpu.SetFlag(FlagOverflow, overflow != 0)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	cpu.A = uint8(cpu.temp & 0x00FF)

	return 1
}

// Instruction: Set Carry Flag.
func opSEC(cpu *CPU) uint8 { cpu.SetFlag(FlagCarry, true); return 0 }

// Instruction: Set Decimal Flag.
func opSED(cpu *CPU) uint8 { cpu.SetFlag(FlagDecimal, true); return 0 }

// Instruction: Set Interrupt Disable.
func opSEI(cpu *CPU) uint8 { cpu.SetFlag(FlagInterrupt, true); return 0 }

// Instruction: Store Accumulator.
func opSTA(cpu *CPU) uint8 {
	cpu.write(cpu.addrAbs, cpu.A)
	return 0
}

// Instruction: Store X Register.
func opSTX(cpu *CPU) uint8 {
	cpu.write(cpu.addrAbs, cpu.X)
	return 0
}

// Instruction: Store Y Register.
func opSTY(cpu *CPU) uint8 {
	cpu.write(cpu.addrAbs, cpu.Y)
	return 0
}

// Instruction: Transfer A to X.
func opTAX(cpu *CPU) uint8 {
	cpu.X = cpu.A
	cpu.SetFlag(FlagZero, cpu.X == 0x00)
	cpu.SetFlag(FlagNegative, cpu.X&0x80 != 0)
	return 0
}

// Instruction: Transfer A to Y.
func opTAY(cpu *CPU) uint8 {
	cpu.Y = cpu.A
	cpu.SetFlag(FlagZero, cpu.Y == 0x00)
	cpu.SetFlag(FlagNegative, cpu.Y&0x80 != 0)
	return 0
}

// Instruction: Transfer Stack Pointer to X.
func opTSX(cpu *CPU) uint8 {
	cpu.X = cpu.SP
	cpu.SetFlag(FlagZero, cpu.X == 0x00)
	cpu.SetFlag(FlagNegative, cpu.X&0x80 != 0)
	return 0
}

// Instruction: Transfer X to A.
func opTXA(cpu *CPU) uint8 {
	cpu.A = cpu.X
	cpu.SetFlag(FlagZero, cpu.A == 0x00)
	cpu.SetFlag(FlagNegative, cpu.A&0x80 != 0)
	return 0
}

// Instruction: Transfer X to Stack Pointer. Does not affect flags.
func opTXS(cpu *CPU) uint8 {
	cpu.SP = cpu.X
	return 0
}

// Instruction: Transfer Y to A.
func opTYA(cpu *CPU) uint8 {
	cpu.A = cpu.Y
	cpu.SetFlag(FlagZero, cpu.A == 0x00)
	cpu.SetFlag(FlagNegative, cpu.A&0x80 != 0)
	return 0
}

// opXXX captures unofficial opcodes; functionally identical to NOP.
func opXXX(cpu *CPU) uint8 {
	_ = cpu
	return 0
}
