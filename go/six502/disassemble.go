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

import "strings"

// Disassembly is a decoded view of a memory range, keyed by each
// instruction's start address for convenient PC-synced lookup.
type Disassembly struct {
	Index []uint16
	Lines map[uint16]string
}

func hexDigits(n uint32, d uint8) []byte {
	s := make([]byte, d)
	for i := int(d) - 1; i >= 0; i-- {
		s[i] = "0123456789ABCDEF"[n&0xF]
		n >>= 4
	}
	return s
}

// Disassemble walks [start, end] using read-only bus accesses and
// renders one line per instruction, independent of the CPU's own
// execution state. This is a debug convenience, not required for
// emulation.
func (cpu *CPU) Disassemble(start, end uint16) *Disassembly {
	addr := uint32(start)
	var value, lo, hi uint8
	var lineAddr uint16
	disassembly := &Disassembly{
		Index: []uint16{},
		Lines: make(map[uint16]string),
	}

	for addr <= uint32(end) {
		lineAddr = uint16(addr)

		sb := &strings.Builder{}
		sb.WriteRune('$')
		sb.Write(hexDigits(addr, 4))
		sb.WriteString(": ")

		opcode := cpu.bus.Read(uint16(addr), true)
		addr++
		sb.WriteString(cpu.lookup[opcode].name)
		sb.WriteRune(' ')

		switch cpu.lookup[opcode].addrMode {
		case AddrModeIMP:
			sb.WriteString(" {IMP}")
		case AddrModeIMM:
			value = cpu.bus.Read(uint16(addr), true)
			addr++
			sb.WriteString("#$")
			sb.Write(hexDigits(uint32(value), 2))
			sb.WriteString(" {IMM}")
		case AddrModeZP0:
			lo = cpu.bus.Read(uint16(addr), true)
			addr++
			hi = 0x00
			sb.WriteRune('$')
			sb.Write(hexDigits(uint32(lo), 2))
			sb.WriteString(" {ZP0}")
		case AddrModeZPX:
			lo = cpu.bus.Read(uint16(addr), true)
			addr++
			hi = 0x00
			sb.WriteRune('$')
			sb.Write(hexDigits(uint32(lo), 2))
			sb.WriteString(", X {ZPX}")
		case AddrModeZPY:
			lo = cpu.bus.Read(uint16(addr), true)
			addr++
			hi = 0x00
			sb.WriteRune('$')
			sb.Write(hexDigits(uint32(lo), 2))
			sb.WriteString(", Y {ZPY}")
		case AddrModeIZX:
			lo = cpu.bus.Read(uint16(addr), true)
			addr++
			hi = 0x00
			sb.WriteString("($")
			sb.Write(hexDigits(uint32(lo), 2))
			sb.WriteString(", X) {IZX}")
		case AddrModeIZY:
			lo = cpu.bus.Read(uint16(addr), true)
			addr++
			hi = 0x00
			sb.WriteString("($")
			sb.Write(hexDigits(uint32(lo), 2))
			sb.WriteString(", Y) {IZY}")
		case AddrModeABS:
			lo = cpu.bus.Read(uint16(addr), true)
			addr++
			hi = cpu.bus.Read(uint16(addr), true)
			addr++
			sb.WriteRune('$')
			sb.Write(hexDigits(uint32(hi)<<8|uint32(lo), 4))
			sb.WriteString(" {ABS}")
		case AddrModeABX:
			lo = cpu.bus.Read(uint16(addr), true)
			addr++
			hi = cpu.bus.Read(uint16(addr), true)
			addr++
			sb.WriteRune('$')
			sb.Write(hexDigits(uint32(hi)<<8|uint32(lo), 4))
			sb.WriteString(", X {ABX}")
		case AddrModeABY:
			lo = cpu.bus.Read(uint16(addr), true)
			addr++
			hi = cpu.bus.Read(uint16(addr), true)
			addr++
			sb.WriteRune('$')
			sb.Write(hexDigits(uint32(hi)<<8|uint32(lo), 4))
			sb.WriteString(", Y {ABY}")
		case AddrModeIND:
			lo = cpu.bus.Read(uint16(addr), true)
			addr++
			hi = cpu.bus.Read(uint16(addr), true)
			addr++
			sb.WriteString("($")
			sb.Write(hexDigits(uint32(hi)<<8|uint32(lo), 4))
			sb.WriteString(") {IND}")
		case AddrModeREL:
			value = cpu.bus.Read(uint16(addr), true)
			addr++
			sb.WriteRune('$')
			sb.Write(hexDigits(uint32(value), 2))
			sb.WriteString(" [$")
			sb.Write(hexDigits(addr+uint32(value), 4))
			sb.WriteString("] {REL}")
		}

		disassembly.Index = append(disassembly.Index, lineAddr)
		disassembly.Lines[lineAddr] = sb.String()
	}

	return disassembly
}
