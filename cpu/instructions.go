package cpu

import "github.com/hexaflex/w65816/arch"

// Instruction handlers. Width-dependent handlers are generic over Word
// and instantiated once per width in the dispatch table in cpu.go.

// setNZ updates the negative and zero flags from the given value.
func setNZ[T Word](c *CPU, value T) {
	c.Reg.Flags.Clear(arch.FlagN | arch.FlagZ)
	if value == 0 {
		c.Reg.Flags.Set(arch.FlagZ)
	}
	if negative(value) {
		c.Reg.Flags.Set(arch.FlagN)
	}
}

// lda loads the resolved value into the accumulator.
func lda[T Word](c *CPU, value T) {
	set(&c.Reg.A, value)
	setNZ(c, value)
}

// ldx loads the resolved value into the X index register.
func ldx[T Word](c *CPU, value T) {
	set(&c.Reg.X, value)
	setNZ(c, value)
}

// ldy loads the resolved value into the Y index register.
func ldy[T Word](c *CPU, value T) {
	set(&c.Reg.Y, value)
	setNZ(c, value)
}

// ora ORs the accumulator with the resolved value.
func ora[T Word](c *CPU, value T) {
	v := get[T](c.Reg.A) | value
	set(&c.Reg.A, v)
	setNZ(c, v)
}

// and ANDs the accumulator with the resolved value.
func and[T Word](c *CPU, value T) {
	v := get[T](c.Reg.A) & value
	set(&c.Reg.A, v)
	setNZ(c, v)
}

// eor XORs the accumulator with the resolved value.
func eor[T Word](c *CPU, value T) {
	v := get[T](c.Reg.A) ^ value
	set(&c.Reg.A, v)
	setNZ(c, v)
}

// sta writes the accumulator to the resolved offset in the data bank.
func sta[T Word](c *CPU, offset uint16) {
	write(c.mem, c.Reg.DB, offset, get[T](c.Reg.A))
}

// stx writes the X index register to the resolved offset in the data bank.
func stx[T Word](c *CPU, offset uint16) {
	write(c.mem, c.Reg.DB, offset, get[T](c.Reg.X))
}

// sty writes the Y index register to the resolved offset in the data bank.
func sty[T Word](c *CPU, offset uint16) {
	write(c.mem, c.Reg.DB, offset, get[T](c.Reg.Y))
}

// stz writes the width-appropriate zero value to the resolved offset
// in the data bank. The accumulator is not involved.
func stz[T Word](c *CPU, offset uint16) {
	write(c.mem, c.Reg.DB, offset, zero[T]())
}

// xba swaps the accumulator's high and low bytes. The width mode does
// not apply; N and Z reflect the new low byte.
func (c *CPU) xba() {
	a := c.Reg.A
	c.Reg.A = a>>8 | a<<8
	setNZ(c, uint8(c.Reg.A))
}

// rep clears the status bits named by the operand byte. The operand is
// always a single byte, regardless of the width mode.
func (c *CPU) rep() {
	c.Reg.Flags.Clear(arch.Flags(c.fetch()))
}

// sep sets the status bits named by the operand byte.
func (c *CPU) sep() {
	c.Reg.Flags.Set(arch.Flags(c.fetch()))
}
