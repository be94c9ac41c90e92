// Package cpu implements the Sharp LR35902 instruction interpreter: the
// register file, the ALU and control-flow semantics, the base and
// CB-prefixed decode tables, and the fetch-decode-execute tick.
package cpu

import (
	"fmt"

	"github.com/retrogb/dmgcore/internal/dmglog"
)

// Bus is the memory-mapped address space the CPU fetches instructions
// from and operates on. It is satisfied by *bus.Bus; the interface keeps
// this package free of an import cycle with bus (which needs no CPU
// type) and makes the interpreter trivially testable against a fake.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	IE() uint8
	IF() uint8
	SetIF(value uint8)
}

// Interrupt vector addresses, in priority order (bit 0 highest).
const (
	vecVBlank = 0x40
	vecLCD    = 0x48
	vecTimer  = 0x50
	vecSerial = 0x58
	vecJoypad = 0x60
)

// CPU is the Sharp LR35902 interpreter: registers, flags, IME/halt state,
// wired to a Bus.
type CPU struct {
	Registers

	IME    bool
	Halted bool

	bus Bus
	log dmglog.Logger
}

// New returns a CPU with every register zeroed, wired to bus.
func New(bus Bus, log dmglog.Logger) *CPU {
	return &CPU{bus: bus, log: log}
}

// Boot sets PC to the post-boot-ROM entry point, as if the real boot ROM
// had just handed off control. The core never executes the boot ROM
// itself (out of scope); callers that need other post-boot register
// values should set them directly after calling Boot.
func (c *CPU) Boot() {
	c.PC = 0x0100
}

// fetch8 reads the byte at PC and advances PC by one.
func (c *CPU) fetch8() uint8 {
	v := c.bus.Read(c.PC)
	c.PC++
	return v
}

// fetch16 reads a little-endian word starting at PC and advances PC by
// two.
func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) push16(v uint16) {
	c.SP--
	c.bus.Write(c.SP, uint8(v>>8))
	c.SP--
	c.bus.Write(c.SP, uint8(v))
}

func (c *CPU) pop16() uint16 {
	lo := c.bus.Read(c.SP)
	c.SP++
	hi := c.bus.Read(c.SP)
	c.SP++
	return uint16(lo) | uint16(hi)<<8
}

// Tick executes exactly one CPU step — either dispatching an instruction
// or, while halted, doing nothing — and returns the T-states it cost.
// Interrupt dispatch, when one is pending, runs first and is charged its
// own cost instead of executing an instruction this step.
func (c *CPU) Tick() int {
	if m := c.dispatchInterrupt(); m > 0 {
		return m * 4
	}

	if c.Halted {
		return 4
	}

	opcode := c.fetch8()

	if opcode == 0x10 { // STOP
		if c.bus.Read(c.PC) == 0x00 {
			c.PC++
		}
		return 4
	}

	var m int
	if opcode == 0xCB {
		m = c.executeCB(c.fetch8())
	} else {
		m = c.execute(opcode)
	}
	return m * 4
}

// dispatchInterrupt services the highest-priority pending, enabled
// interrupt: it pushes PC, clears IME and the serviced IF bit, and jumps
// to the interrupt's vector. It also wakes the CPU from HALT even when
// IME is clear, since a pending enabled interrupt always ends a halt.
// Returns the machine-cycle cost, or 0 if nothing was serviced.
func (c *CPU) dispatchInterrupt() int {
	pending := c.bus.IE() & c.bus.IF() & 0x1F
	if pending == 0 {
		return 0
	}
	if c.Halted {
		c.Halted = false
	}
	if !c.IME {
		return 0
	}

	for bit, vector := range []uint16{vecVBlank, vecLCD, vecTimer, vecSerial, vecJoypad} {
		mask := uint8(1 << bit)
		if pending&mask == 0 {
			continue
		}
		c.IME = false
		c.bus.SetIF(c.bus.IF() &^ mask)
		c.push16(c.PC)
		c.PC = vector
		return 5
	}
	return 0
}

func (c *CPU) illegalOpcode(opcode uint8) int {
	panic(fmt.Sprintf("cpu: illegal opcode %02X at PC=%04X", opcode, c.PC-1))
}
