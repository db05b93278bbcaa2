package cpu

import (
	"fmt"
	"strings"

	"github.com/hexaflex/w65816/arch"
)

// TraceFunc represents a callback handler for debug trace output.
type TraceFunc func(*Instruction)

// Instruction records the bytes consumed by a single decode step. It
// is handed to the trace handler after each executed instruction and
// carried by decode errors.
type Instruction struct {
	PC      uint16  // Offset of the opcode within the program bank.
	PB      byte    // Program bank the instruction was fetched from.
	Opcode  byte    // Instruction opcode.
	Operand [2]byte // Raw operand bytes, in fetch order.

	size int
}

// record stores a fetched byte. The first byte per instruction is the
// opcode, any following bytes are operands.
func (i *Instruction) record(b byte) {
	if i.size == 0 {
		i.Opcode = b
	} else if i.size <= len(i.Operand) {
		i.Operand[i.size-1] = b
	}
	i.size++
}

// Argc returns the number of operand bytes the instruction consumed.
func (i *Instruction) Argc() int {
	if i.size == 0 {
		return 0
	}
	return i.size - 1
}

// String returns a disassembly style rendering of the instruction.
func (i *Instruction) String() string {
	name, ok := arch.Name(i.Opcode)
	if !ok {
		name = fmt.Sprintf("%02x", i.Opcode)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%02x:%04x %s", i.PB, i.PC, name)

	mode, _ := arch.Mode(i.Opcode)
	switch mode {
	case arch.Immediate:
		if i.Argc() == 2 {
			fmt.Fprintf(&sb, " #$%02x%02x", i.Operand[1], i.Operand[0])
		} else {
			fmt.Fprintf(&sb, " #$%02x", i.Operand[0])
		}
	case arch.Absolute:
		fmt.Fprintf(&sb, " $%02x%02x", i.Operand[1], i.Operand[0])
	}

	return sb.String()
}
