// Package disassemble renders the bytes at a program counter as a
// single line of 6502 assembly, for trace logs and debugging tools.
package disassemble

import (
	"fmt"

	"github.com/arlowren/mos6502/memory"
)

// mode identifies how an opcode's operand bytes are encoded, purely
// for the purposes of formatting; it carries no cycle-timing
// information (that lives in the cpu package's own dispatch table).
type mode int

const (
	modeImplied mode = iota
	modeImmediate
	modeZP
	modeZPX
	modeZPY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
	modeRelative
	modeAccumulator
)

type entry struct {
	op   string
	mode mode
}

// table maps each of the 151 documented opcodes to its mnemonic and
// operand encoding. Byte values with no entry are undocumented and
// disassemble as a raw .byte marker rather than erroring; a
// disassembler that panics on illegal input is useless for tracing a
// program that just executed one.
var table [256]entry

func reg(op uint8, mnemonic string, m mode) {
	table[op] = entry{op: mnemonic, mode: m}
}

func init() {
	reg(0x69, "ADC", modeImmediate)
	reg(0x65, "ADC", modeZP)
	reg(0x75, "ADC", modeZPX)
	reg(0x6D, "ADC", modeAbsolute)
	reg(0x7D, "ADC", modeAbsoluteX)
	reg(0x79, "ADC", modeAbsoluteY)
	reg(0x61, "ADC", modeIndirectX)
	reg(0x71, "ADC", modeIndirectY)

	reg(0x29, "AND", modeImmediate)
	reg(0x25, "AND", modeZP)
	reg(0x35, "AND", modeZPX)
	reg(0x2D, "AND", modeAbsolute)
	reg(0x3D, "AND", modeAbsoluteX)
	reg(0x39, "AND", modeAbsoluteY)
	reg(0x21, "AND", modeIndirectX)
	reg(0x31, "AND", modeIndirectY)

	reg(0x0A, "ASL", modeAccumulator)
	reg(0x06, "ASL", modeZP)
	reg(0x16, "ASL", modeZPX)
	reg(0x0E, "ASL", modeAbsolute)
	reg(0x1E, "ASL", modeAbsoluteX)

	reg(0x24, "BIT", modeZP)
	reg(0x2C, "BIT", modeAbsolute)

	reg(0x10, "BPL", modeRelative)
	reg(0x30, "BMI", modeRelative)
	reg(0x50, "BVC", modeRelative)
	reg(0x70, "BVS", modeRelative)
	reg(0x90, "BCC", modeRelative)
	reg(0xB0, "BCS", modeRelative)
	reg(0xD0, "BNE", modeRelative)
	reg(0xF0, "BEQ", modeRelative)

	reg(0x00, "BRK", modeImplied)

	reg(0xC9, "CMP", modeImmediate)
	reg(0xC5, "CMP", modeZP)
	reg(0xD5, "CMP", modeZPX)
	reg(0xCD, "CMP", modeAbsolute)
	reg(0xDD, "CMP", modeAbsoluteX)
	reg(0xD9, "CMP", modeAbsoluteY)
	reg(0xC1, "CMP", modeIndirectX)
	reg(0xD1, "CMP", modeIndirectY)

	reg(0xE0, "CPX", modeImmediate)
	reg(0xE4, "CPX", modeZP)
	reg(0xEC, "CPX", modeAbsolute)
	reg(0xC0, "CPY", modeImmediate)
	reg(0xC4, "CPY", modeZP)
	reg(0xCC, "CPY", modeAbsolute)

	reg(0xC6, "DEC", modeZP)
	reg(0xD6, "DEC", modeZPX)
	reg(0xCE, "DEC", modeAbsolute)
	reg(0xDE, "DEC", modeAbsoluteX)

	reg(0x49, "EOR", modeImmediate)
	reg(0x45, "EOR", modeZP)
	reg(0x55, "EOR", modeZPX)
	reg(0x4D, "EOR", modeAbsolute)
	reg(0x5D, "EOR", modeAbsoluteX)
	reg(0x59, "EOR", modeAbsoluteY)
	reg(0x41, "EOR", modeIndirectX)
	reg(0x51, "EOR", modeIndirectY)

	reg(0x18, "CLC", modeImplied)
	reg(0x38, "SEC", modeImplied)
	reg(0x58, "CLI", modeImplied)
	reg(0x78, "SEI", modeImplied)
	reg(0xB8, "CLV", modeImplied)
	reg(0xD8, "CLD", modeImplied)
	reg(0xF8, "SED", modeImplied)

	reg(0xE6, "INC", modeZP)
	reg(0xF6, "INC", modeZPX)
	reg(0xEE, "INC", modeAbsolute)
	reg(0xFE, "INC", modeAbsoluteX)

	reg(0x4C, "JMP", modeAbsolute)
	reg(0x6C, "JMP", modeIndirect)
	reg(0x20, "JSR", modeAbsolute)

	reg(0xA9, "LDA", modeImmediate)
	reg(0xA5, "LDA", modeZP)
	reg(0xB5, "LDA", modeZPX)
	reg(0xAD, "LDA", modeAbsolute)
	reg(0xBD, "LDA", modeAbsoluteX)
	reg(0xB9, "LDA", modeAbsoluteY)
	reg(0xA1, "LDA", modeIndirectX)
	reg(0xB1, "LDA", modeIndirectY)

	reg(0xA2, "LDX", modeImmediate)
	reg(0xA6, "LDX", modeZP)
	reg(0xB6, "LDX", modeZPY)
	reg(0xAE, "LDX", modeAbsolute)
	reg(0xBE, "LDX", modeAbsoluteY)

	reg(0xA0, "LDY", modeImmediate)
	reg(0xA4, "LDY", modeZP)
	reg(0xB4, "LDY", modeZPX)
	reg(0xAC, "LDY", modeAbsolute)
	reg(0xBC, "LDY", modeAbsoluteX)

	reg(0x4A, "LSR", modeAccumulator)
	reg(0x46, "LSR", modeZP)
	reg(0x56, "LSR", modeZPX)
	reg(0x4E, "LSR", modeAbsolute)
	reg(0x5E, "LSR", modeAbsoluteX)

	reg(0xEA, "NOP", modeImplied)

	reg(0x09, "ORA", modeImmediate)
	reg(0x05, "ORA", modeZP)
	reg(0x15, "ORA", modeZPX)
	reg(0x0D, "ORA", modeAbsolute)
	reg(0x1D, "ORA", modeAbsoluteX)
	reg(0x19, "ORA", modeAbsoluteY)
	reg(0x01, "ORA", modeIndirectX)
	reg(0x11, "ORA", modeIndirectY)

	reg(0xAA, "TAX", modeImplied)
	reg(0x8A, "TXA", modeImplied)
	reg(0xCA, "DEX", modeImplied)
	reg(0xE8, "INX", modeImplied)
	reg(0xA8, "TAY", modeImplied)
	reg(0x98, "TYA", modeImplied)
	reg(0x88, "DEY", modeImplied)
	reg(0xC8, "INY", modeImplied)
	reg(0x9A, "TXS", modeImplied)
	reg(0xBA, "TSX", modeImplied)

	reg(0x2A, "ROL", modeAccumulator)
	reg(0x26, "ROL", modeZP)
	reg(0x36, "ROL", modeZPX)
	reg(0x2E, "ROL", modeAbsolute)
	reg(0x3E, "ROL", modeAbsoluteX)
	reg(0x6A, "ROR", modeAccumulator)
	reg(0x66, "ROR", modeZP)
	reg(0x76, "ROR", modeZPX)
	reg(0x6E, "ROR", modeAbsolute)
	reg(0x7E, "ROR", modeAbsoluteX)

	reg(0x40, "RTI", modeImplied)
	reg(0x60, "RTS", modeImplied)

	reg(0xE9, "SBC", modeImmediate)
	reg(0xE5, "SBC", modeZP)
	reg(0xF5, "SBC", modeZPX)
	reg(0xED, "SBC", modeAbsolute)
	reg(0xFD, "SBC", modeAbsoluteX)
	reg(0xF9, "SBC", modeAbsoluteY)
	reg(0xE1, "SBC", modeIndirectX)
	reg(0xF1, "SBC", modeIndirectY)

	reg(0x85, "STA", modeZP)
	reg(0x95, "STA", modeZPX)
	reg(0x8D, "STA", modeAbsolute)
	reg(0x9D, "STA", modeAbsoluteX)
	reg(0x99, "STA", modeAbsoluteY)
	reg(0x81, "STA", modeIndirectX)
	reg(0x91, "STA", modeIndirectY)
	reg(0x86, "STX", modeZP)
	reg(0x96, "STX", modeZPY)
	reg(0x8E, "STX", modeAbsolute)
	reg(0x84, "STY", modeZP)
	reg(0x94, "STY", modeZPX)
	reg(0x8C, "STY", modeAbsolute)

	reg(0x48, "PHA", modeImplied)
	reg(0x68, "PLA", modeImplied)
	reg(0x08, "PHP", modeImplied)
	reg(0x28, "PLP", modeImplied)
}

// MnemonicColumn is the fixed byte offset at which the mnemonic begins
// on every line Step returns; callers slicing a trace log line can rely
// on it regardless of how many operand bytes the instruction has.
const MnemonicColumn = 16

// Step disassembles the instruction at pc, returning the formatted
// line and the number of bytes it occupies (1 to 3). For a documented
// opcode it reads the two bytes after pc whatever the instruction's
// length; Memory reads have no side effects and addresses wrap, so it's
// safe to call at any address, including one that isn't actually the
// start of an instruction.
func Step(pc uint16, mem *memory.Memory) (string, int) {
	o := mem.Read(pc)
	e := table[o]
	out := fmt.Sprintf("%04X %02X ", pc, o)
	if e.op == "" {
		return out + fmt.Sprintf("        .byte $%02X    ", o), 1
	}

	p1 := mem.Read(pc + 1)
	p2 := mem.Read(pc + 2)

	switch e.mode {
	case modeImmediate:
		return out + fmt.Sprintf("%02X      %s #%02X       ", p1, e.op, p1), 2
	case modeZP:
		return out + fmt.Sprintf("%02X      %s %02X        ", p1, e.op, p1), 2
	case modeZPX:
		return out + fmt.Sprintf("%02X      %s %02X,X      ", p1, e.op, p1), 2
	case modeZPY:
		return out + fmt.Sprintf("%02X      %s %02X,Y      ", p1, e.op, p1), 2
	case modeIndirectX:
		return out + fmt.Sprintf("%02X      %s (%02X,X)    ", p1, e.op, p1), 2
	case modeIndirectY:
		return out + fmt.Sprintf("%02X      %s (%02X),Y    ", p1, e.op, p1), 2
	case modeAbsolute:
		return out + fmt.Sprintf("%02X %02X   %s %02X%02X      ", p1, p2, e.op, p2, p1), 3
	case modeAbsoluteX:
		return out + fmt.Sprintf("%02X %02X   %s %02X%02X,X    ", p1, p2, e.op, p2, p1), 3
	case modeAbsoluteY:
		return out + fmt.Sprintf("%02X %02X   %s %02X%02X,Y    ", p1, p2, e.op, p2, p1), 3
	case modeIndirect:
		return out + fmt.Sprintf("%02X %02X   %s (%02X%02X)    ", p1, p2, e.op, p2, p1), 3
	case modeAccumulator:
		return out + fmt.Sprintf("        %s A          ", e.op), 1
	case modeImplied:
		return out + fmt.Sprintf("        %s           ", e.op), 1
	case modeRelative:
		target := pc + 2 + uint16(int8(p1))
		return out + fmt.Sprintf("%02X      %s %02X (%04X) ", p1, e.op, p1, target), 2
	default:
		panic(fmt.Sprintf("disassemble: opcode %#02x has no mode handler", o))
	}
}
