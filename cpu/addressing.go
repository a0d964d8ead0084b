package cpu

// Mode is a tagged addressing mode, with PageBoundaryCrossed composed in
// as a bit flag by indexed resolvers that detect a page crossing.
type Mode uint16

const (
	ModeImplied Mode = 1 << iota
	ModeImmediate
	ModeAccumulator
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
	ModePageBoundaryCrossed
)

// resolver computes the effective address (and final mode tag, with the
// page-boundary-crossed bit composed in where relevant) for an
// instruction's operand. It performs the PC advances for any operand
// bytes the mode consumes. It does not itself charge any cycles; cycle
// accounting is driven by the opcode table entry.
type resolver func(c *CPU) (addr uint16, mode Mode)

func addrImplied(c *CPU) (uint16, Mode) {
	return 0, ModeImplied
}

func addrAccumulator(c *CPU) (uint16, Mode) {
	return 0, ModeAccumulator
}

func addrImmediate(c *CPU) (uint16, Mode) {
	addr := c.PC
	c.PC++
	return addr, ModeImmediate
}

func addrZeroPage(c *CPU) (uint16, Mode) {
	addr := uint16(c.mem.Read(c.PC))
	c.PC++
	return addr, ModeZeroPage
}

func addrZeroPageX(c *CPU) (uint16, Mode) {
	addr := uint16(uint8(c.mem.Read(c.PC) + c.X))
	c.PC++
	return addr, ModeZeroPageX
}

func addrZeroPageY(c *CPU) (uint16, Mode) {
	addr := uint16(uint8(c.mem.Read(c.PC) + c.Y))
	c.PC++
	return addr, ModeZeroPageY
}

func readAbsolute(c *CPU) uint16 {
	lo := c.mem.Read(c.PC)
	hi := c.mem.Read(c.PC + 1)
	c.PC += 2
	return uint16(lo) | uint16(hi)<<8
}

func addrAbsolute(c *CPU) (uint16, Mode) {
	return readAbsolute(c), ModeAbsolute
}

func pageCrossed(base, final uint16) bool {
	return base&0xFF00 != final&0xFF00
}

func addrAbsoluteX(c *CPU) (uint16, Mode) {
	base := readAbsolute(c)
	final := base + uint16(c.X)
	mode := ModeAbsoluteX
	if pageCrossed(base, final) {
		mode |= ModePageBoundaryCrossed
	}
	return final, mode
}

func addrAbsoluteY(c *CPU) (uint16, Mode) {
	base := readAbsolute(c)
	final := base + uint16(c.Y)
	mode := ModeAbsoluteY
	if pageCrossed(base, final) {
		mode |= ModePageBoundaryCrossed
	}
	return final, mode
}

// addrIndirect implements JMP (ind)'s operand resolution, including the
// original NMOS page-wrap bug: if the low byte of the pointer is 0xFF,
// the high byte of the effective address is fetched from the start of
// the same page rather than the next page.
func addrIndirect(c *CPU) (uint16, Mode) {
	ptr := readAbsolute(c)
	lo := c.mem.Read(ptr)
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := c.mem.Read(hiAddr)
	return uint16(lo) | uint16(hi)<<8, ModeIndirect
}

func addrIndirectX(c *CPU) (uint16, Mode) {
	ptr := uint16(uint8(c.mem.Read(c.PC) + c.X))
	c.PC++
	lo := c.mem.Read(ptr)
	hi := c.mem.Read(uint16(uint8(ptr) + 1))
	return uint16(lo) | uint16(hi)<<8, ModeIndirectX
}

func addrIndirectY(c *CPU) (uint16, Mode) {
	zp := c.mem.Read(c.PC)
	c.PC++
	lo := c.mem.Read(uint16(zp))
	hi := c.mem.Read(uint16(uint8(zp) + 1))
	base := uint16(lo) | uint16(hi)<<8
	final := base + uint16(c.Y)
	mode := ModeIndirectY
	if pageCrossed(base, final) {
		mode |= ModePageBoundaryCrossed
	}
	return final, mode
}
