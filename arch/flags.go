package arch

import "strings"

// Flags defines the 65816 processor status register.
type Flags byte

// Known status flags, in native mode P register order.
const (
	FlagC Flags = 1 << 0 // Carry.
	FlagZ Flags = 1 << 1 // Zero.
	FlagI Flags = 1 << 2 // IRQ disable.
	FlagD Flags = 1 << 3 // Decimal mode.
	FlagX Flags = 1 << 4 // Index register width select. Set means 8-bit.
	FlagM Flags = 1 << 5 // Accumulator width select. Set means 8-bit.
	FlagV Flags = 1 << 6 // Overflow.
	FlagN Flags = 1 << 7 // Negative.
)

// Has returns true if all of the given flags are set.
func (f Flags) Has(v Flags) bool {
	return f&v == v
}

// Set sets the given flags.
func (f *Flags) Set(v Flags) {
	*f |= v
}

// Clear unsets the given flags.
func (f *Flags) Clear(v Flags) {
	*f &^= v
}

// String returns the flag state in the conventional nvmxdizc notation.
// Set flags are upper case.
func (f Flags) String() string {
	const names = "nvmxdizc"

	var sb strings.Builder
	for i := 0; i < 8; i++ {
		c := names[i]
		if f&(1<<(7-i)) != 0 {
			c -= 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
