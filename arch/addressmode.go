package arch

// AddressMode defines instruction operand address modes.
type AddressMode byte

// Known address modes.
const (
	Implied   AddressMode = iota // No operand bytes follow the opcode.
	Immediate                    // Operand is a literal value in the instruction stream.
	Absolute                     // Operand is a 16-bit offset into the data bank.
)

func (m AddressMode) String() string {
	switch m {
	case Implied:
		return "implied"
	case Immediate:
		return "immediate"
	case Absolute:
		return "absolute"
	}
	return ""
}
