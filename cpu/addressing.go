package cpu

import "github.com/hexaflex/w65816/arch"

// Addressing mode resolvers.
//
// This is actually fairly crazy. Nearly every addressing mode works
// differently depending on the current width mode. To avoid writing
// every mode and every instruction twice, handlers are generic over
// Word. Go cannot pass a width-polymorphic function as a single value,
// so each resolver receives two continuations, one per instantiation,
// and invokes exactly the one matching the width mode it was given.

// absolute resolves a 16-bit offset into the data bank and
// dereferences it at the selected width.
func absolute(c *CPU, wide bool, f8 func(*CPU, uint8), f16 func(*CPU, uint16)) {
	absoluteAddress(c, wide,
		func(c *CPU, offset uint16) {
			f8(c, read[uint8](c.mem, c.Reg.DB, offset))
		},
		func(c *CPU, offset uint16) {
			f16(c, read[uint16](c.mem, c.Reg.DB, offset))
		})
}

// absoluteAddress resolves a 16-bit offset into the data bank and
// yields the offset itself, without dereferencing it. Used by store
// class instructions that ignore the previous memory contents.
func absoluteAddress(c *CPU, wide bool, f8, f16 func(*CPU, uint16)) {
	lo := c.fetch()
	hi := c.fetch()
	offset := uint16(lo) | uint16(hi)<<8

	if wide {
		f16(c, offset)
	} else {
		f8(c, offset)
	}
}

// immediate yields a literal value from the instruction stream: one
// byte in 8-bit mode, two bytes little-endian in 16-bit mode. No
// memory access outside the program bank.
func immediate(c *CPU, wide bool, f8 func(*CPU, uint8), f16 func(*CPU, uint16)) {
	lo := c.fetch()

	if wide {
		hi := c.fetch()
		f16(c, uint16(lo)|uint16(hi)<<8)
	} else {
		f8(c, lo)
	}
}

// a16 dispatches on the accumulator width select flag. The flag is
// read here, once per instruction, and never again during resolution
// or execution.
func a16[V8, V16 any](c *CPU, mode func(*CPU, bool, func(*CPU, V8), func(*CPU, V16)), f8 func(*CPU, V8), f16 func(*CPU, V16)) {
	mode(c, !c.Reg.Flags.Has(arch.FlagM), f8, f16)
}

// x16 dispatches on the index register width select flag.
func x16[V8, V16 any](c *CPU, mode func(*CPU, bool, func(*CPU, V8), func(*CPU, V16)), f8 func(*CPU, V8), f16 func(*CPU, V16)) {
	mode(c, !c.Reg.Flags.Has(arch.FlagX), f8, f16)
}
