// Package cpu implements a cycle-accurate interpreter for the documented
// instruction set of the NMOS 6502 microprocessor.
package cpu

import (
	"fmt"

	"github.com/arlowren/mos6502/memory"
)

// Vector addresses, little-endian pointers stored at fixed high memory.
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// Status register bit masks. Bit 5 is always read back as 1; it has no
// named flag.
const (
	PNegative  = uint8(0x80)
	POverflow  = uint8(0x40)
	PReserved  = uint8(0x20)
	PBreak     = uint8(0x10)
	PDecimal   = uint8(0x08)
	PInterrupt = uint8(0x04)
	PZero      = uint8(0x02)
	PCarry     = uint8(0x01)
)

const stackBase = uint16(0x0100)

// InvalidCPUState represents an invalid CPU state in the emulator, most
// notably decoding an opcode with no table entry.
type InvalidCPUState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// HaltOpcode names the undecodable opcode that halted the CPU. Step
// returns it on every call after a decode error has latched the CPU
// halted, until Reset clears the latch.
type HaltOpcode struct {
	Opcode uint8
}

// Error implements the error interface.
func (e HaltOpcode) Error() string {
	return fmt.Sprintf("HALT(0x%.2X) executed", e.Opcode)
}

// Cycle is one token in the per-instruction stepper sequence.
type Cycle int

const (
	// Busy is an internal micro-step of the currently executing instruction.
	Busy Cycle = iota
	// Idle is the final cycle of an instruction; architectural state is
	// now the post-instruction state.
	Idle
)

func (c Cycle) String() string {
	if c == Idle {
		return "idle"
	}
	return "busy"
}

// CPU holds the full architectural state of a 6502: registers, status
// flags, and a borrowed reference to the Memory it executes against.
type CPU struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	P  uint8
	PC uint16

	// IR is the most recently fetched opcode, kept for diagnostics.
	IR uint8

	// Cycles is a running total of cycle tokens emitted since the last
	// Reset, purely a diagnostic counter; nothing in the instruction
	// engine reads it.
	Cycles uint64

	mem *memory.Memory

	// remaining is the count of Busy tokens still owed before the Idle
	// that finishes the instruction currently in flight. Zero means the
	// CPU is between instructions and the next Step begins a new fetch.
	remaining int

	// halted latches after a fatal decode error. PC won't advance; every
	// further Step keeps returning the same HaltOpcode error until Reset.
	halted     bool
	haltOpcode uint8
}

// New constructs a CPU wired to mem. The caller must call Reset before
// stepping to establish PC/SP from the reset vector.
func New(mem *memory.Memory) *CPU {
	return &CPU{mem: mem}
}

// Reset initializes PC from the reset vector and SP to 0xFD. With
// extended set, it additionally zeros A/X/Y and clears every flag; tests
// use this to start from a fully determined state rather than whatever
// Reset alone leaves (a faithful NMOS reset only touches PC and SP).
func (c *CPU) Reset(extended bool) {
	c.SP = 0xFD
	lo := c.mem.Read(ResetVector)
	hi := c.mem.Read(ResetVector + 1)
	c.PC = uint16(lo) | uint16(hi)<<8
	c.remaining = 0
	c.Cycles = 0
	c.halted = false
	c.haltOpcode = 0x00
	if extended {
		c.SP = 0xFF
		c.A, c.X, c.Y = 0, 0, 0
		c.P = 0
	}
}

func (c *CPU) getFlag(mask uint8) bool {
	return c.P&mask != 0
}

func (c *CPU) setFlag(mask uint8, set bool) {
	if set {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

func (c *CPU) setNZ(v uint8) {
	c.setFlag(PZero, v == 0)
	c.setFlag(PNegative, v&0x80 != 0)
}

func (c *CPU) pushStack(v uint8) {
	c.mem.Write(stackBase+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) popStack() uint8 {
	c.SP++
	return c.mem.Read(stackBase + uint16(c.SP))
}

// Step advances the CPU by exactly one clock cycle and returns the token
// for that cycle. It is the only entry point a host needs to drive
// execution; calling it repeatedly single-steps the emulated program
// one bus cycle at a time.
func (c *CPU) Step() (Cycle, error) {
	// Fast path if halted. The PC won't advance; we just keep returning
	// the same error.
	if c.halted {
		return Busy, HaltOpcode{c.haltOpcode}
	}
	if c.remaining > 0 {
		c.remaining--
		c.Cycles++
		if c.remaining == 0 {
			return Idle, nil
		}
		return Busy, nil
	}

	c.IR = c.mem.Read(c.PC)
	c.PC++
	entry := opcodeTable[c.IR]
	if !entry.valid {
		c.halted = true
		c.haltOpcode = c.IR
		return Busy, InvalidCPUState{Reason: fmt.Sprintf("opcode 0x%02X has no table entry", c.IR)}
	}

	addr, mode := entry.resolve(c)
	addrExtra := 0
	if entry.pageCrossExtra && mode&ModePageBoundaryCrossed != 0 {
		addrExtra = 1
	}
	extra, err := entry.exec(c, addr, mode)
	if err != nil {
		return Busy, err
	}

	total := entry.cycles + addrExtra + extra
	if total < 2 {
		total = 2
	}
	c.Cycles++
	c.remaining = total - 1
	if c.remaining == 0 {
		return Idle, nil
	}
	return Busy, nil
}

// StateDump is a point-in-time, partial-equality snapshot of CPU state
// used by tests. Fields left nil by the constructing test are wildcards
// during comparison: Equal only checks fields that are non-nil on both
// sides.
type StateDump struct {
	PC     *uint16
	SP     *uint8
	A      *uint8
	X      *uint8
	Y      *uint8
	IR     *uint8
	Status *string
	Cycles *uint64
}

// Dump renders the CPU's full current state as a StateDump with every
// field populated.
func (c *CPU) Dump() StateDump {
	pc, sp, a, x, y, ir, cyc := c.PC, c.SP, c.A, c.X, c.Y, c.IR, c.Cycles
	status := c.statusString()
	return StateDump{
		PC: &pc, SP: &sp, A: &a, X: &x, Y: &y, IR: &ir,
		Status: &status, Cycles: &cyc,
	}
}

// statusString renders P as the seven-character NVBDIZC status string,
// uppercase when the flag is set, lowercase when clear. Bit 5 (reserved)
// is not part of the string.
func (c *CPU) statusString() string {
	bit := func(set bool, upper, lower byte) byte {
		if set {
			return upper
		}
		return lower
	}
	b := []byte{
		bit(c.getFlag(PNegative), 'N', 'n'),
		bit(c.getFlag(POverflow), 'V', 'v'),
		bit(c.getFlag(PBreak), 'B', 'b'),
		bit(c.getFlag(PDecimal), 'D', 'd'),
		bit(c.getFlag(PInterrupt), 'I', 'i'),
		bit(c.getFlag(PZero), 'Z', 'z'),
		bit(c.getFlag(PCarry), 'C', 'c'),
	}
	return string(b)
}

// Equal compares two StateDumps over only the fields both sides have
// populated; a nil field on either side is a wildcard for that field.
func (d StateDump) Equal(o StateDump) bool {
	if d.PC != nil && o.PC != nil && *d.PC != *o.PC {
		return false
	}
	if d.SP != nil && o.SP != nil && *d.SP != *o.SP {
		return false
	}
	if d.A != nil && o.A != nil && *d.A != *o.A {
		return false
	}
	if d.X != nil && o.X != nil && *d.X != *o.X {
		return false
	}
	if d.Y != nil && o.Y != nil && *d.Y != *o.Y {
		return false
	}
	if d.IR != nil && o.IR != nil && *d.IR != *o.IR {
		return false
	}
	if d.Status != nil && o.Status != nil && *d.Status != *o.Status {
		return false
	}
	if d.Cycles != nil && o.Cycles != nil && *d.Cycles != *o.Cycles {
		return false
	}
	return true
}

// String renders only the populated fields, hex-formatted where it
// makes sense, for use in test failure messages.
func (d StateDump) String() string {
	s := "{"
	sep := ""
	if d.PC != nil {
		s += fmt.Sprintf("%spc:%04x", sep, *d.PC)
		sep = " "
	}
	if d.SP != nil {
		s += fmt.Sprintf("%ssp:%02x", sep, *d.SP)
		sep = " "
	}
	if d.A != nil {
		s += fmt.Sprintf("%sa:%02x", sep, *d.A)
		sep = " "
	}
	if d.X != nil {
		s += fmt.Sprintf("%sx:%02x", sep, *d.X)
		sep = " "
	}
	if d.Y != nil {
		s += fmt.Sprintf("%sy:%02x", sep, *d.Y)
		sep = " "
	}
	if d.IR != nil {
		s += fmt.Sprintf("%sir:%02x", sep, *d.IR)
		sep = " "
	}
	if d.Status != nil {
		s += fmt.Sprintf("%sstatus:%s", sep, *d.Status)
		sep = " "
	}
	if d.Cycles != nil {
		s += fmt.Sprintf("%scycles:%d", sep, *d.Cycles)
	}
	return s + "}"
}
