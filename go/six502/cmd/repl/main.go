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

// Command repl is a terminal debugger for the six502 core: it loads a
// hex-encoded program at a configurable address and lets you step,
// reset, and interrupt the CPU while watching registers, flags, RAM,
// and a live disassembly.
package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"gopkg.in/urfave/cli.v2"

	"github.com/mos6502/core/go/six502"
)

var (
	cpu           *six502.CPU
	bus           *six502.Bus
	disassembly   *six502.Disassembly
	paragraphCPU  *widgets.Paragraph
	paragraphCode *widgets.Paragraph
	paragraphRam0 *widgets.Paragraph
	paragraphRam1 *widgets.Paragraph
	paragraphTips *widgets.Paragraph
)

func renderCPU(p *widgets.Paragraph) {
	sb := &strings.Builder{}
	flags := []uint8{
		six502.FlagNegative, six502.FlagOverflow, six502.FlagUnused, six502.FlagBreak,
		six502.FlagDecimal, six502.FlagInterrupt, six502.FlagZero, six502.FlagCarry,
	}
	symbols := []rune{'N', 'V', '-', 'B', 'D', 'I', 'Z', 'C'}

	sb.WriteString("STATUS: ")
	for i, f := range flags {
		sb.WriteRune('[')
		sb.WriteRune(symbols[i])
		sb.WriteRune(']')
		sb.WriteString("(fg:")
		if cpu.GetFlag(f) != 0 {
			sb.WriteString("green")
		} else {
			sb.WriteString("red")
		}
		sb.WriteString(") ")
	}
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("PC: $%04X SP: $%02X", cpu.PC, cpu.SP))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("A: $%02X [%d]", cpu.A, cpu.A))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("X: $%02X [%d]", cpu.X, cpu.X))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("Y: $%02X [%d]", cpu.Y, cpu.Y))

	p.Text = sb.String()
}

func renderRAM(p *widgets.Paragraph, addr uint16, numRow, numCol int) {
	curAddr := addr
	sb := &strings.Builder{}
	for row := 0; row < numRow; row++ {
		sb.WriteString(fmt.Sprintf("$%04X:", curAddr))
		for col := 0; col < numCol; col++ {
			sb.WriteRune(' ')
			sb.WriteString(fmt.Sprintf("%02X", bus.Read(curAddr, true)))
			curAddr++
		}
		sb.WriteRune('\n')
	}
	p.Text = sb.String()
}

func renderCode(p *widgets.Paragraph) {
	sb := &strings.Builder{}
	pc := cpu.PC
	lo, hi := pc, pc+34
	if pc >= 6 {
		lo = pc - 6
	}
	for _, addr := range disassembly.Index {
		if addr < lo || addr > hi {
			continue
		}
		line := disassembly.Lines[addr]
		if addr == pc {
			sb.WriteString(fmt.Sprintf("[%s](fg:cyan)", line))
		} else {
			sb.WriteString(line)
		}
		sb.WriteRune('\n')
	}
	p.Text = sb.String()
}

func renderTips(p *widgets.Paragraph) {
	p.Text = "SPACE = Step Instruction    R = Reset    I = IRQ    N = NMI    D = Dump state    Q = Quit"
}

func draw() {
	renderRAM(paragraphRam0, 0x0000, 16, 16)
	renderRAM(paragraphRam1, 0x8000, 16, 16)
	renderCPU(paragraphCPU)
	renderCode(paragraphCode)
	renderTips(paragraphTips)

	ui.Render(paragraphRam0, paragraphRam1, paragraphCPU, paragraphCode, paragraphTips)
}

func parseLoadAddr(s string) (uint16, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid --load-addr %q: %w", s, err)
	}
	return uint16(n), nil
}

func loadCPU(programHex string, loadAddr uint16, trace bool) error {
	program, err := hex.DecodeString(programHex)
	if err != nil {
		return fmt.Errorf("invalid --program hex: %w", err)
	}

	cpu = six502.New()
	bus = six502.NewBus()
	cpu.Attach(bus)

	bus.Load(loadAddr, program)

	bus.Write(0xFFFC, uint8(loadAddr&0x00FF))
	bus.Write(0xFFFD, uint8(loadAddr>>8))

	six502.SetLogEnable(trace)

	disassembly = cpu.Disassemble(0x0000, 0xFFFF)

	cpu.Reset()
	for !cpu.Complete() {
		cpu.Tick()
	}

	return nil
}

func stepInstruction() {
	cpu.Tick()
	for !cpu.Complete() {
		cpu.Tick()
	}
}

func run(c *cli.Context) error {
	loadAddr, err := parseLoadAddr(c.String("load-addr"))
	if err != nil {
		return err
	}

	if err := loadCPU(c.String("program"), loadAddr, c.Bool("trace")); err != nil {
		return err
	}

	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	defer ui.Close()

	paragraphRam0 = widgets.NewParagraph()
	paragraphRam0.Title = "RAM Page 0x00"
	paragraphRam0.SetRect(0, 0, 56, 18)

	paragraphRam1 = widgets.NewParagraph()
	paragraphRam1.Title = "RAM Page 0x80"
	paragraphRam1.SetRect(0, 18, 56, 36)

	paragraphCPU = widgets.NewParagraph()
	paragraphCPU.Title = "CPU"
	paragraphCPU.SetRect(56, 0, 56+34, 7)

	paragraphCode = widgets.NewParagraph()
	paragraphCode.Title = "Disassembly"
	paragraphCode.SetRect(56, 7, 56+34, 7+29)

	paragraphTips = widgets.NewParagraph()
	paragraphTips.Title = "Tips"
	paragraphTips.SetRect(0, 36, 56+34, 39)

	draw()

	for e := range ui.PollEvents() {
		if e.Type != ui.KeyboardEvent {
			continue
		}
		switch e.ID {
		case "q", "Q", "<C-c>":
			return nil
		case "<Space>":
			stepInstruction()
		case "r", "R":
			cpu.Reset()
			for !cpu.Complete() {
				cpu.Tick()
			}
		case "i", "I":
			cpu.IRQ()
		case "n", "N":
			cpu.NMI()
		case "d", "D":
			fmt.Fprintln(os.Stderr, spew.Sdump(cpu))
		}
		draw()
	}

	return nil
}

func main() {
	app := &cli.App{
		Name:    "repl",
		Usage:   "Step a MOS 6502 program in a terminal debugger",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "program",
				Aliases: []string{"p"},
				Usage:   "hex-encoded machine code to load",
				Value:   "a900",
			},
			&cli.StringFlag{
				Name:    "load-addr",
				Aliases: []string{"l"},
				Usage:   "address to load the program at, and the reset vector target",
				Value:   "0x8000",
			},
			&cli.BoolFlag{
				Name:    "trace",
				Aliases: []string{"t"},
				Usage:   "enable per-instruction trace logging",
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
