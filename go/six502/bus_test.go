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

import "testing"

func TestBus_Read(t *testing.T) {
	bus := NewBus()

	if got := bus.Read(0x0000, true); got != 0x00 {
		t.Errorf("Read(0x0000) = %#02x, want 0x00", got)
	}

	if got := bus.Read(MemoryCapacity-1, true); got != 0x00 {
		t.Errorf("Read(last) = %#02x, want 0x00", got)
	}
}

func TestBus_Write(t *testing.T) {
	bus := NewBus()

	bus.Write(0x1234, 0xAB)
	if got := bus.Read(0x1234, false); got != 0xAB {
		t.Errorf("Read(0x1234) = %#02x, want 0xAB", got)
	}
}

func TestBus_ResetZeroesMemory(t *testing.T) {
	bus := NewBus()
	bus.Write(0x0010, 0xFF)
	bus.Write(0xFFFF, 0xFF)

	bus.Reset()

	if got := bus.Read(0x0010, true); got != 0x00 {
		t.Errorf("Read(0x0010) after Reset = %#02x, want 0x00", got)
	}
	if got := bus.Read(0xFFFF, true); got != 0x00 {
		t.Errorf("Read(0xFFFF) after Reset = %#02x, want 0x00", got)
	}
}

func TestBus_Load(t *testing.T) {
	bus := NewBus()
	bus.Load(0x8000, []uint8{0xA9, 0x00})

	if got := bus.Read(0x8000, true); got != 0xA9 {
		t.Errorf("Read(0x8000) = %#02x, want 0xA9", got)
	}
	if got := bus.Read(0x8001, true); got != 0x00 {
		t.Errorf("Read(0x8001) = %#02x, want 0x00", got)
	}
}
