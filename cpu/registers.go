package cpu

import "github.com/hexaflex/w65816/arch"

// Registers defines the 65816 register file.
//
// A, X and Y are 16-bit storage cells regardless of the current width
// mode; the width abstraction in width.go decides how much of each cell
// an instruction observes. One register file exists per emulated CPU
// and is mutated in place. It is exposed so the driving loop can
// initialize state and debug tooling can inspect it.
type Registers struct {
	PC    uint16     // Program counter. Wraps within the program bank.
	A     uint16     // Accumulator.
	X     uint16     // X index register.
	Y     uint16     // Y index register.
	SP    uint16     // Stack pointer.
	PB    byte       // Program bank.
	DB    byte       // Data bank. Supplies the upper address bits for absolute addressing.
	Flags arch.Flags // Processor status.
}
