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

// MemoryCapacity is the size of the address space a 6502 can reach.
const MemoryCapacity = 65536

// Bus is a flat 64KB address space. Every address is readable and
// writable; there is no unmapped region at this layer.
type Bus struct {
	ram [MemoryCapacity]uint8
}

// NewBus creates a Bus with every byte zeroed.
func NewBus() *Bus {
	return &Bus{}
}

// Reset zero-fills the entire address space.
func (b *Bus) Reset() {
	for i := range b.ram {
		b.ram[i] = 0x00
	}
}

// Read returns the byte at addr. readOnly is a hint that this access
// must not trigger side effects (used by the disassembler); at this
// flat layer it makes no difference.
func (b *Bus) Read(addr uint16, readOnly bool) uint8 {
	_ = readOnly
	return b.ram[addr]
}

// Write stores data at addr.
func (b *Bus) Write(addr uint16, data uint8) {
	b.ram[addr] = data
}

// Load copies program into the bus starting at addr, for test and
// demo-host setup.
func (b *Bus) Load(addr uint16, program []uint8) {
	for i, v := range program {
		b.ram[int(addr)+i] = v
	}
}
