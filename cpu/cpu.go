// Package cpu implements the decode/execute core of a 65816 class
// processor: a register file, width-generic addressing mode resolution
// and a per-opcode dispatcher. Memory is an external collaborator
// reached through the Mapper interface; cycle timing and interrupt
// sequencing are not modelled.
package cpu

import (
	"io"

	"github.com/hexaflex/w65816/arch"
)

// ResetVector is the bank 0 offset holding the 16-bit reset address.
const ResetVector = 0xfffc

// CPU implements the 65816 decode/execute core.
type CPU struct {
	Reg   Registers   // Register file.
	mem   Mapper      // Memory collaborator supplied by the host.
	trace TraceFunc   // Handler for debug trace output.
	instr Instruction // Record of the instruction being decoded.
}

// New creates a new CPU attached to the given memory mapper.
// Optionally with the given debug trace handler.
func New(mem Mapper, trace TraceFunc) *CPU {
	if trace == nil {
		trace = func(*Instruction) { /* nop */ }
	}

	return &CPU{
		mem:   mem,
		trace: trace,
	}
}

// Reset loads the architecture defined reset state. The program
// counter comes from the reset vector at bank 0, offset 0xfffc. Both
// width select flags start out set (8-bit registers) and IRQs are
// masked.
func (c *CPU) Reset() {
	c.Reg = Registers{
		PC:    read[uint16](c.mem, 0, ResetVector),
		SP:    0x01ff,
		Flags: arch.FlagM | arch.FlagX | arch.FlagI,
	}
}

// Step decodes and executes a single instruction. Returns io.EOF once
// the processor executes STP. An opcode without a bound handler yields
// an *Error and leaves the register file untouched; executing past an
// opcode the core cannot interpret would desynchronize the emulated
// program counter for good.
func (c *CPU) Step() error {
	c.instr = Instruction{PB: c.Reg.PB, PC: c.Reg.PC}

	switch opcode := c.fetch(); opcode {
	case arch.LDAImm:
		a16(c, immediate, lda[uint8], lda[uint16])
	case arch.LDAAbs:
		a16(c, absolute, lda[uint8], lda[uint16])
	case arch.LDXImm:
		x16(c, immediate, ldx[uint8], ldx[uint16])
	case arch.LDXAbs:
		x16(c, absolute, ldx[uint8], ldx[uint16])
	case arch.LDYImm:
		x16(c, immediate, ldy[uint8], ldy[uint16])
	case arch.LDYAbs:
		x16(c, absolute, ldy[uint8], ldy[uint16])

	case arch.ORAImm:
		a16(c, immediate, ora[uint8], ora[uint16])
	case arch.ORAAbs:
		a16(c, absolute, ora[uint8], ora[uint16])
	case arch.ANDImm:
		a16(c, immediate, and[uint8], and[uint16])
	case arch.ANDAbs:
		a16(c, absolute, and[uint8], and[uint16])
	case arch.EORImm:
		a16(c, immediate, eor[uint8], eor[uint16])
	case arch.EORAbs:
		a16(c, absolute, eor[uint8], eor[uint16])

	case arch.STAAbs:
		a16(c, absoluteAddress, sta[uint8], sta[uint16])
	case arch.STXAbs:
		x16(c, absoluteAddress, stx[uint8], stx[uint16])
	case arch.STYAbs:
		x16(c, absoluteAddress, sty[uint8], sty[uint16])
	case arch.STZAbs:
		a16(c, absoluteAddress, stz[uint8], stz[uint16])

	case arch.CLC:
		c.Reg.Flags.Clear(arch.FlagC)
	case arch.SEC:
		c.Reg.Flags.Set(arch.FlagC)
	case arch.CLI:
		c.Reg.Flags.Clear(arch.FlagI)
	case arch.SEI:
		c.Reg.Flags.Set(arch.FlagI)
	case arch.REP:
		c.rep()
	case arch.SEP:
		c.sep()

	case arch.XBA:
		c.xba()
	case arch.NOP:
		/* nop */
	case arch.STP:
		c.trace(&c.instr)
		return io.EOF

	default:
		c.Reg.PC = c.instr.PC
		return NewError(&c.instr, "unknown opcode %02x", opcode)
	}

	c.trace(&c.instr)
	return nil
}

// fetch reads the next byte from the instruction stream and advances
// the program counter. The counter wraps within the program bank:
// crossing 0xffff does not touch PB.
func (c *CPU) fetch() byte {
	b := c.mem.Read(c.Reg.PB, c.Reg.PC)
	c.Reg.PC++
	c.instr.record(b)
	return b
}
