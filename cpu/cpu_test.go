package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/arlowren/mos6502/memory"
)

// newAt builds a CPU+Memory pair, loads program at 0x8000, points the
// reset vector there, and resets.
func newAt(program []uint8) (*CPU, *memory.Memory) {
	mem := memory.New()
	mem.LoadAt(0x8000, program)
	mem.Write(ResetVector, 0x00)
	mem.Write(ResetVector+1, 0x80)
	c := New(mem)
	c.Reset(true)
	return c, mem
}

// runInstruction steps until the idle token that ends the in-flight
// instruction, returning the cycle count consumed.
func runInstruction(t *testing.T, c *CPU) int {
	t.Helper()
	cycles := 0
	for {
		tok, err := c.Step()
		cycles++
		if err != nil {
			t.Fatalf("Step() error: %v\n%s", err, spew.Sdump(c))
		}
		if tok == Idle {
			return cycles
		}
		if cycles > 20 {
			t.Fatalf("instruction did not terminate within 20 cycles\n%s", spew.Sdump(c))
		}
	}
}

func TestLoadImmediate(t *testing.T) {
	// LDA #$42 -> A=0x42, flags nvbdizc.
	c, _ := newAt([]uint8{0xA9, 0x42})
	cycles := runInstruction(t, c)
	if cycles != 2 {
		t.Errorf("LDA #imm cycles: got %d want 2", cycles)
	}
	if c.A != 0x42 {
		t.Errorf("A: got %#02x want 0x42", c.A)
	}
	if got, want := c.statusString(), "nvbdizc"; got != want {
		t.Errorf("status: got %q want %q\n%s", got, want, spew.Sdump(c))
	}
}

func TestLoadFlags(t *testing.T) {
	tests := []struct {
		name  string
		val   uint8
		wantZ bool
		wantN bool
	}{
		{"zero", 0x00, true, false},
		{"negative", 0x80, false, true},
		{"plain", 0x01, false, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, _ := newAt([]uint8{0xA9, test.val})
			runInstruction(t, c)
			if got := c.getFlag(PZero); got != test.wantZ {
				t.Errorf("Z: got %v want %v", got, test.wantZ)
			}
			if got := c.getFlag(PNegative); got != test.wantN {
				t.Errorf("N: got %v want %v", got, test.wantN)
			}
		})
	}
}

func TestADCBinary(t *testing.T) {
	// LDA #$30; ADC #$20 -> A=0x50, C=0, V=0.
	c, _ := newAt([]uint8{0xA9, 0x30, 0x69, 0x20})
	runInstruction(t, c)
	runInstruction(t, c)
	if c.A != 0x50 {
		t.Errorf("A: got %#02x want 0x50", c.A)
	}
	if c.getFlag(PCarry) {
		t.Error("C should be clear")
	}
	if c.getFlag(POverflow) {
		t.Error("V should be clear")
	}
}

func TestADCOverflow(t *testing.T) {
	// LDA #$50; ADC #$50 -> A=0xA0, N=1, V=1, C=0.
	c, _ := newAt([]uint8{0xA9, 0x50, 0x69, 0x50})
	runInstruction(t, c)
	runInstruction(t, c)
	if c.A != 0xA0 {
		t.Errorf("A: got %#02x want 0xA0", c.A)
	}
	if !c.getFlag(PNegative) {
		t.Error("N should be set")
	}
	if !c.getFlag(POverflow) {
		t.Error("V should be set")
	}
	if c.getFlag(PCarry) {
		t.Error("C should be clear")
	}
}

func TestADCDecimal(t *testing.T) {
	// 0x99 + 0x01 + C=0 in decimal mode yields A=0x00, C=1.
	c, _ := newAt([]uint8{0xF8, 0xA9, 0x99, 0x69, 0x01}) // SED; LDA #$99; ADC #$01
	runInstruction(t, c)
	runInstruction(t, c)
	runInstruction(t, c)
	if c.A != 0x00 {
		t.Errorf("A: got %#02x want 0x00", c.A)
	}
	if !c.getFlag(PCarry) {
		t.Error("C should be set")
	}
}

func TestSBCBinaryRoundTrip(t *testing.T) {
	// ADC followed by SBC of the same operand (matching carry setup)
	// restores A bit-exactly in binary mode.
	c, _ := newAt([]uint8{0x38, 0xA9, 0x40, 0x69, 0x11, 0xE9, 0x11}) // SEC; LDA #$40; ADC #$11; SBC #$11
	runInstruction(t, c)
	runInstruction(t, c)
	runInstruction(t, c)
	runInstruction(t, c)
	if c.A != 0x40 {
		t.Errorf("A after ADC/SBC round trip: got %#02x want 0x40", c.A)
	}
}

func TestBranchTaken(t *testing.T) {
	// LDA #$80 sets N, BNE is taken (Z clear).
	c, _ := newAt([]uint8{0xA9, 0x80, 0xD0, 0x02, 0xEA, 0xEA, 0xEA})
	runInstruction(t, c) // LDA
	cycles := runInstruction(t, c)
	if cycles != 3 {
		t.Errorf("taken branch, no page cross: got %d cycles want 3", cycles)
	}
	if c.PC != 0x8006 {
		t.Errorf("PC after taken branch: got %#04x want 0x8006", c.PC)
	}
}

func TestBranchNotTaken(t *testing.T) {
	c, _ := newAt([]uint8{0xA9, 0x00, 0xD0, 0x02}) // LDA #0 (Z set); BNE +2
	runInstruction(t, c)
	cycles := runInstruction(t, c)
	if cycles != 2 {
		t.Errorf("untaken branch cycles: got %d want 2", cycles)
	}
}

func TestJSRRTS(t *testing.T) {
	// LDA #$10; JSR $9000; at $9000: LDA #$20; RTS -> A=0x20, PC=0x8005.
	c, mem := newAt([]uint8{0xA9, 0x10, 0x20, 0x00, 0x90})
	mem.LoadAt(0x9000, []uint8{0xA9, 0x20, 0x60})
	runInstruction(t, c) // LDA #$10
	jsrCycles := runInstruction(t, c)
	if jsrCycles != 6 {
		t.Errorf("JSR cycles: got %d want 6", jsrCycles)
	}
	if c.PC != 0x9000 {
		t.Errorf("PC after JSR: got %#04x want 0x9000", c.PC)
	}
	runInstruction(t, c) // LDA #$20
	rtsCycles := runInstruction(t, c)
	if rtsCycles != 6 {
		t.Errorf("RTS cycles: got %d want 6", rtsCycles)
	}
	if c.A != 0x20 {
		t.Errorf("A: got %#02x want 0x20", c.A)
	}
	if c.PC != 0x8005 {
		t.Errorf("PC after RTS: got %#04x want 0x8005", c.PC)
	}
}

func TestBRKRTI(t *testing.T) {
	c, mem := newAt([]uint8{0x00, 0x00}) // BRK ; padding byte
	mem.Write(IRQVector, 0x00)
	mem.Write(IRQVector+1, 0x90)
	mem.LoadAt(0x9000, []uint8{0x40}) // RTI
	brkStart := c.PC
	runInstruction(t, c)
	if c.PC != 0x9000 {
		t.Errorf("PC after BRK: got %#04x want 0x9000", c.PC)
	}
	if !c.getFlag(PInterrupt) {
		t.Error("I should be set after BRK")
	}
	runInstruction(t, c) // RTI
	if c.PC != brkStart+2 {
		t.Errorf("PC after RTI: got %#04x want %#04x", c.PC, brkStart+2)
	}
}

func TestPHPPLPPreservesFlags(t *testing.T) {
	// SEC; SED; PHP; CLC; CLD; PLP -> C and D restored.
	c, _ := newAt([]uint8{0x38, 0xF8, 0x08, 0x18, 0xD8, 0x28})
	for i := 0; i < 3; i++ {
		runInstruction(t, c)
	}
	if !c.getFlag(PCarry) || !c.getFlag(PDecimal) {
		t.Fatalf("expected C and D set before PLP\n%s", spew.Sdump(c))
	}
	runInstruction(t, c) // CLC
	runInstruction(t, c) // CLD
	if c.getFlag(PCarry) || c.getFlag(PDecimal) {
		t.Fatalf("expected C and D cleared before PLP\n%s", spew.Sdump(c))
	}
	runInstruction(t, c) // PLP
	if !c.getFlag(PCarry) || !c.getFlag(PDecimal) {
		t.Errorf("PHP/PLP failed to restore C/D\n%s", spew.Sdump(c))
	}
}

func TestStackPushPullRoundTrip(t *testing.T) {
	c, _ := newAt([]uint8{0xA9, 0x55, 0x48, 0xA9, 0x00, 0x68}) // LDA #$55; PHA; LDA #0; PLA
	startSP := c.SP
	runInstruction(t, c)
	runInstruction(t, c)
	runInstruction(t, c)
	runInstruction(t, c)
	if c.A != 0x55 {
		t.Errorf("push(v); pull() == v failed: got %#02x want 0x55", c.A)
	}
	if c.SP != startSP {
		t.Errorf("SP did not return to starting value: got %#02x want %#02x", c.SP, startSP)
	}
}

func TestZeroPageIndirectXWraps(t *testing.T) {
	// LDA ($FF,X) with X=0 wraps reading the pointer from 0xFF/0x00.
	c, mem := newAt([]uint8{0xA1, 0xFF})
	mem.Write(0x00FF, 0x00)
	mem.Write(0x0000, 0x90)
	mem.Write(0x9000, 0x77)
	runInstruction(t, c)
	if c.A != 0x77 {
		t.Errorf("indirect-X zero-page wrap: got A=%#02x want 0x77", c.A)
	}
}

func TestIndexedPageCrossAddsCycle(t *testing.T) {
	c, mem := newAt([]uint8{0xBD, 0xFF, 0x80}) // LDA $80FF,X
	mem.Write(0x8100, 0x01)
	c.X = 0x01 // 0x80FF + 1 crosses into 0x8100
	cycles := runInstruction(t, c)
	if cycles != 5 {
		t.Errorf("page-crossing indexed read: got %d cycles want 5", cycles)
	}
}

func TestIndexedNoPageCrossDoesNotAddCycle(t *testing.T) {
	c, _ := newAt([]uint8{0xBD, 0x00, 0x80}) // LDA $8000,X
	c.X = 0x01
	cycles := runInstruction(t, c)
	if cycles != 4 {
		t.Errorf("non-page-crossing indexed read: got %d cycles want 4", cycles)
	}
}

func TestDecodeErrorOnUndocumentedOpcode(t *testing.T) {
	c, _ := newAt([]uint8{0x02}) // undocumented opcode, not in the documented table
	_, err := c.Step()
	if _, ok := err.(InvalidCPUState); !ok {
		t.Errorf("expected InvalidCPUState, got %v", err)
	}
}

func TestHaltLatchesAfterDecodeError(t *testing.T) {
	c, _ := newAt([]uint8{0xFF}) // end-of-program sentinel, no table entry
	if _, err := c.Step(); err == nil {
		t.Fatal("expected a decode error")
	}
	stuckPC := c.PC
	for i := 0; i < 3; i++ {
		_, err := c.Step()
		h, ok := err.(HaltOpcode)
		if !ok {
			t.Fatalf("step %d after halt: expected HaltOpcode, got %v", i, err)
		}
		if h.Opcode != 0xFF {
			t.Errorf("halt opcode: got %#02x want 0xFF", h.Opcode)
		}
		if c.PC != stuckPC {
			t.Errorf("PC advanced while halted: got %#04x want %#04x", c.PC, stuckPC)
		}
	}
	c.Reset(true)
	if _, err := c.Step(); err == nil {
		t.Error("expected the re-fetched sentinel to fail decode again after Reset")
	} else if _, ok := err.(InvalidCPUState); !ok {
		t.Errorf("expected InvalidCPUState after Reset cleared the halt latch, got %v", err)
	}
}

func TestStateDumpPartialEquality(t *testing.T) {
	c, _ := newAt([]uint8{0xA9, 0x42})
	runInstruction(t, c)
	got := c.Dump()

	var wantA uint8 = 0x42
	partial := StateDump{A: &wantA}
	if !got.Equal(partial) {
		t.Errorf("partial equality on A failed: got %s", got)
	}

	var wrongA uint8 = 0x41
	mismatch := StateDump{A: &wrongA}
	if got.Equal(mismatch) {
		t.Errorf("expected inequality on mismatched A")
	}

	if diff := deep.Equal(*got.A, wantA); diff != nil {
		t.Errorf("unexpected diff: %v", diff)
	}
}
