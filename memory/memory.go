// Package memory implements the flat 64KiB address space a 6502 CPU
// executes against.
package memory

import (
	"fmt"
	"strings"
)

// Size is the full 16-bit address space.
const Size = 1 << 16

// Memory is a flat, byte-addressable 64KiB store. The zero value is
// 64KiB of zeroed RAM, ready to use.
type Memory struct {
	ram [Size]uint8
}

// New returns a freshly zeroed Memory.
func New() *Memory {
	return &Memory{}
}

// Read returns the byte stored at addr.
func (m *Memory) Read(addr uint16) uint8 {
	return m.ram[addr]
}

// Write stores val at addr. Immediately observable by a subsequent Read.
func (m *Memory) Write(addr uint16, val uint8) {
	m.ram[addr] = val
}

// LoadAt copies data into RAM starting at addr, wrapping modulo 64KiB.
func (m *Memory) LoadAt(addr uint16, data []uint8) {
	for i, b := range data {
		m.ram[addr+uint16(i)] = b
	}
}

// Dump renders length bytes starting at start as a hex diagnostic listing,
// 16 bytes per row, addressed on the left.
func (m *Memory) Dump(start, length int) string {
	var sb strings.Builder
	for i := start; i < start+length; i += 16 {
		fmt.Fprintf(&sb, "%04x: ", i)
		row := make([]string, 0, 16)
		end := i + 16
		if end > start+length {
			end = start + length
		}
		for j := i; j < end; j++ {
			row = append(row, fmt.Sprintf("%02x", m.ram[uint16(j)]))
		}
		sb.WriteString(strings.Join(row, " "))
		if end < start+length {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
