package cpu

// opEntry is one dense dispatch-table entry: the addressing-mode
// resolver paired with the operation it feeds, plus the base cycle
// count for that (opcode, mode) pair. pageCrossExtra marks opcodes
// whose indexed/indirect-indexed reads earn a +1 cycle on a page
// crossing; store and read-modify-write opcodes never do (they always
// take their fixed worst-case cycle count on real hardware).
type opEntry struct {
	valid          bool
	mnemonic       string
	cycles         int
	pageCrossExtra bool
	resolve        resolver
	exec           exec
}

// opcodeTable is the full 256-entry dispatch table; only the 151
// documented NMOS opcodes are populated. Every other byte is left at
// its zero value (valid == false) and is a fatal decode error.
var opcodeTable [256]opEntry

func reg(op uint8, mnemonic string, cycles int, pageCrossExtra bool, r resolver, e exec) {
	opcodeTable[op] = opEntry{
		valid:          true,
		mnemonic:       mnemonic,
		cycles:         cycles,
		pageCrossExtra: pageCrossExtra,
		resolve:        r,
		exec:           e,
	}
}

func init() {
	// ADC
	reg(0x69, "ADC", 2, false, addrImmediate, iADC)
	reg(0x65, "ADC", 3, false, addrZeroPage, iADC)
	reg(0x75, "ADC", 4, false, addrZeroPageX, iADC)
	reg(0x6D, "ADC", 4, false, addrAbsolute, iADC)
	reg(0x7D, "ADC", 4, true, addrAbsoluteX, iADC)
	reg(0x79, "ADC", 4, true, addrAbsoluteY, iADC)
	reg(0x61, "ADC", 6, false, addrIndirectX, iADC)
	reg(0x71, "ADC", 5, true, addrIndirectY, iADC)

	// AND
	reg(0x29, "AND", 2, false, addrImmediate, iAND)
	reg(0x25, "AND", 3, false, addrZeroPage, iAND)
	reg(0x35, "AND", 4, false, addrZeroPageX, iAND)
	reg(0x2D, "AND", 4, false, addrAbsolute, iAND)
	reg(0x3D, "AND", 4, true, addrAbsoluteX, iAND)
	reg(0x39, "AND", 4, true, addrAbsoluteY, iAND)
	reg(0x21, "AND", 6, false, addrIndirectX, iAND)
	reg(0x31, "AND", 5, true, addrIndirectY, iAND)

	// ASL
	reg(0x0A, "ASL", 2, false, addrAccumulator, iASL)
	reg(0x06, "ASL", 5, false, addrZeroPage, iASL)
	reg(0x16, "ASL", 6, false, addrZeroPageX, iASL)
	reg(0x0E, "ASL", 6, false, addrAbsolute, iASL)
	reg(0x1E, "ASL", 7, false, addrAbsoluteX, iASL)

	// BIT
	reg(0x24, "BIT", 3, false, addrZeroPage, iBIT)
	reg(0x2C, "BIT", 4, false, addrAbsolute, iBIT)

	// Branches
	reg(0x10, "BPL", 2, false, addrImmediate, iBPL)
	reg(0x30, "BMI", 2, false, addrImmediate, iBMI)
	reg(0x50, "BVC", 2, false, addrImmediate, iBVC)
	reg(0x70, "BVS", 2, false, addrImmediate, iBVS)
	reg(0x90, "BCC", 2, false, addrImmediate, iBCC)
	reg(0xB0, "BCS", 2, false, addrImmediate, iBCS)
	reg(0xD0, "BNE", 2, false, addrImmediate, iBNE)
	reg(0xF0, "BEQ", 2, false, addrImmediate, iBEQ)

	// BRK
	reg(0x00, "BRK", 7, false, addrImplied, iBRK)

	// CMP
	reg(0xC9, "CMP", 2, false, addrImmediate, iCMP)
	reg(0xC5, "CMP", 3, false, addrZeroPage, iCMP)
	reg(0xD5, "CMP", 4, false, addrZeroPageX, iCMP)
	reg(0xCD, "CMP", 4, false, addrAbsolute, iCMP)
	reg(0xDD, "CMP", 4, true, addrAbsoluteX, iCMP)
	reg(0xD9, "CMP", 4, true, addrAbsoluteY, iCMP)
	reg(0xC1, "CMP", 6, false, addrIndirectX, iCMP)
	reg(0xD1, "CMP", 5, true, addrIndirectY, iCMP)

	// CPX / CPY
	reg(0xE0, "CPX", 2, false, addrImmediate, iCPX)
	reg(0xE4, "CPX", 3, false, addrZeroPage, iCPX)
	reg(0xEC, "CPX", 4, false, addrAbsolute, iCPX)
	reg(0xC0, "CPY", 2, false, addrImmediate, iCPY)
	reg(0xC4, "CPY", 3, false, addrZeroPage, iCPY)
	reg(0xCC, "CPY", 4, false, addrAbsolute, iCPY)

	// DEC
	reg(0xC6, "DEC", 5, false, addrZeroPage, iDEC)
	reg(0xD6, "DEC", 6, false, addrZeroPageX, iDEC)
	reg(0xCE, "DEC", 6, false, addrAbsolute, iDEC)
	reg(0xDE, "DEC", 7, false, addrAbsoluteX, iDEC)

	// EOR
	reg(0x49, "EOR", 2, false, addrImmediate, iEOR)
	reg(0x45, "EOR", 3, false, addrZeroPage, iEOR)
	reg(0x55, "EOR", 4, false, addrZeroPageX, iEOR)
	reg(0x4D, "EOR", 4, false, addrAbsolute, iEOR)
	reg(0x5D, "EOR", 4, true, addrAbsoluteX, iEOR)
	reg(0x59, "EOR", 4, true, addrAbsoluteY, iEOR)
	reg(0x41, "EOR", 6, false, addrIndirectX, iEOR)
	reg(0x51, "EOR", 5, true, addrIndirectY, iEOR)

	// Flag operations
	reg(0x18, "CLC", 2, false, addrImplied, iCLC)
	reg(0x38, "SEC", 2, false, addrImplied, iSEC)
	reg(0x58, "CLI", 2, false, addrImplied, iCLI)
	reg(0x78, "SEI", 2, false, addrImplied, iSEI)
	reg(0xB8, "CLV", 2, false, addrImplied, iCLV)
	reg(0xD8, "CLD", 2, false, addrImplied, iCLD)
	reg(0xF8, "SED", 2, false, addrImplied, iSED)

	// INC
	reg(0xE6, "INC", 5, false, addrZeroPage, iINC)
	reg(0xF6, "INC", 6, false, addrZeroPageX, iINC)
	reg(0xEE, "INC", 6, false, addrAbsolute, iINC)
	reg(0xFE, "INC", 7, false, addrAbsoluteX, iINC)

	// JMP / JSR
	reg(0x4C, "JMP", 3, false, addrAbsolute, iJMP)
	reg(0x6C, "JMP", 5, false, addrIndirect, iJMP)
	reg(0x20, "JSR", 6, false, addrAbsolute, iJSR)

	// LDA
	reg(0xA9, "LDA", 2, false, addrImmediate, iLDA)
	reg(0xA5, "LDA", 3, false, addrZeroPage, iLDA)
	reg(0xB5, "LDA", 4, false, addrZeroPageX, iLDA)
	reg(0xAD, "LDA", 4, false, addrAbsolute, iLDA)
	reg(0xBD, "LDA", 4, true, addrAbsoluteX, iLDA)
	reg(0xB9, "LDA", 4, true, addrAbsoluteY, iLDA)
	reg(0xA1, "LDA", 6, false, addrIndirectX, iLDA)
	reg(0xB1, "LDA", 5, true, addrIndirectY, iLDA)

	// LDX
	reg(0xA2, "LDX", 2, false, addrImmediate, iLDX)
	reg(0xA6, "LDX", 3, false, addrZeroPage, iLDX)
	reg(0xB6, "LDX", 4, false, addrZeroPageY, iLDX)
	reg(0xAE, "LDX", 4, false, addrAbsolute, iLDX)
	reg(0xBE, "LDX", 4, true, addrAbsoluteY, iLDX)

	// LDY
	reg(0xA0, "LDY", 2, false, addrImmediate, iLDY)
	reg(0xA4, "LDY", 3, false, addrZeroPage, iLDY)
	reg(0xB4, "LDY", 4, false, addrZeroPageX, iLDY)
	reg(0xAC, "LDY", 4, false, addrAbsolute, iLDY)
	reg(0xBC, "LDY", 4, true, addrAbsoluteX, iLDY)

	// LSR
	reg(0x4A, "LSR", 2, false, addrAccumulator, iLSR)
	reg(0x46, "LSR", 5, false, addrZeroPage, iLSR)
	reg(0x56, "LSR", 6, false, addrZeroPageX, iLSR)
	reg(0x4E, "LSR", 6, false, addrAbsolute, iLSR)
	reg(0x5E, "LSR", 7, false, addrAbsoluteX, iLSR)

	// NOP
	reg(0xEA, "NOP", 2, false, addrImplied, iNOP)

	// ORA
	reg(0x09, "ORA", 2, false, addrImmediate, iORA)
	reg(0x05, "ORA", 3, false, addrZeroPage, iORA)
	reg(0x15, "ORA", 4, false, addrZeroPageX, iORA)
	reg(0x0D, "ORA", 4, false, addrAbsolute, iORA)
	reg(0x1D, "ORA", 4, true, addrAbsoluteX, iORA)
	reg(0x19, "ORA", 4, true, addrAbsoluteY, iORA)
	reg(0x01, "ORA", 6, false, addrIndirectX, iORA)
	reg(0x11, "ORA", 5, true, addrIndirectY, iORA)

	// Register transfers / increments / decrements
	reg(0xAA, "TAX", 2, false, addrImplied, iTAX)
	reg(0x8A, "TXA", 2, false, addrImplied, iTXA)
	reg(0xCA, "DEX", 2, false, addrImplied, iDEX)
	reg(0xE8, "INX", 2, false, addrImplied, iINX)
	reg(0xA8, "TAY", 2, false, addrImplied, iTAY)
	reg(0x98, "TYA", 2, false, addrImplied, iTYA)
	reg(0x88, "DEY", 2, false, addrImplied, iDEY)
	reg(0xC8, "INY", 2, false, addrImplied, iINY)
	reg(0x9A, "TXS", 2, false, addrImplied, iTXS)
	reg(0xBA, "TSX", 2, false, addrImplied, iTSX)

	// ROL / ROR
	reg(0x2A, "ROL", 2, false, addrAccumulator, iROL)
	reg(0x26, "ROL", 5, false, addrZeroPage, iROL)
	reg(0x36, "ROL", 6, false, addrZeroPageX, iROL)
	reg(0x2E, "ROL", 6, false, addrAbsolute, iROL)
	reg(0x3E, "ROL", 7, false, addrAbsoluteX, iROL)
	reg(0x6A, "ROR", 2, false, addrAccumulator, iROR)
	reg(0x66, "ROR", 5, false, addrZeroPage, iROR)
	reg(0x76, "ROR", 6, false, addrZeroPageX, iROR)
	reg(0x6E, "ROR", 6, false, addrAbsolute, iROR)
	reg(0x7E, "ROR", 7, false, addrAbsoluteX, iROR)

	// RTI / RTS
	reg(0x40, "RTI", 6, false, addrImplied, iRTI)
	reg(0x60, "RTS", 6, false, addrImplied, iRTS)

	// SBC
	reg(0xE9, "SBC", 2, false, addrImmediate, iSBC)
	reg(0xE5, "SBC", 3, false, addrZeroPage, iSBC)
	reg(0xF5, "SBC", 4, false, addrZeroPageX, iSBC)
	reg(0xED, "SBC", 4, false, addrAbsolute, iSBC)
	reg(0xFD, "SBC", 4, true, addrAbsoluteX, iSBC)
	reg(0xF9, "SBC", 4, true, addrAbsoluteY, iSBC)
	reg(0xE1, "SBC", 6, false, addrIndirectX, iSBC)
	reg(0xF1, "SBC", 5, true, addrIndirectY, iSBC)

	// STA / STX / STY
	reg(0x85, "STA", 3, false, addrZeroPage, iSTA)
	reg(0x95, "STA", 4, false, addrZeroPageX, iSTA)
	reg(0x8D, "STA", 4, false, addrAbsolute, iSTA)
	reg(0x9D, "STA", 5, false, addrAbsoluteX, iSTA)
	reg(0x99, "STA", 5, false, addrAbsoluteY, iSTA)
	reg(0x81, "STA", 6, false, addrIndirectX, iSTA)
	reg(0x91, "STA", 6, false, addrIndirectY, iSTA)
	reg(0x86, "STX", 3, false, addrZeroPage, iSTX)
	reg(0x96, "STX", 4, false, addrZeroPageY, iSTX)
	reg(0x8E, "STX", 4, false, addrAbsolute, iSTX)
	reg(0x84, "STY", 3, false, addrZeroPage, iSTY)
	reg(0x94, "STY", 4, false, addrZeroPageX, iSTY)
	reg(0x8C, "STY", 4, false, addrAbsolute, iSTY)

	// Stack operations
	reg(0x48, "PHA", 3, false, addrImplied, iPHA)
	reg(0x68, "PLA", 4, false, addrImplied, iPLA)
	reg(0x08, "PHP", 3, false, addrImplied, iPHP)
	reg(0x28, "PLP", 4, false, addrImplied, iPLP)
}
