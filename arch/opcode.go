// Package arch defines the 65816 instruction subset implemented by the
// emulator core, along with some related helper functions.
package arch

// Known opcodes.
const (
	ORAImm = 0x09
	ORAAbs = 0x0d
	CLC    = 0x18
	ANDImm = 0x29
	ANDAbs = 0x2d
	SEC    = 0x38
	EORImm = 0x49
	EORAbs = 0x4d
	CLI    = 0x58
	SEI    = 0x78
	STYAbs = 0x8c
	STAAbs = 0x8d
	STXAbs = 0x8e
	STZAbs = 0x9c
	LDYImm = 0xa0
	LDXImm = 0xa2
	LDAImm = 0xa9
	LDYAbs = 0xac
	LDAAbs = 0xad
	LDXAbs = 0xae
	REP    = 0xc2
	STP    = 0xdb
	SEP    = 0xe2
	NOP    = 0xea
	XBA    = 0xeb
)

// Name returns the mnemonic for the given opcode.
// Returns false if the opcode is not recognized.
func Name(opcode byte) (string, bool) {
	switch opcode {
	case ORAImm, ORAAbs:
		return "ORA", true
	case ANDImm, ANDAbs:
		return "AND", true
	case EORImm, EORAbs:
		return "EOR", true
	case LDAImm, LDAAbs:
		return "LDA", true
	case LDXImm, LDXAbs:
		return "LDX", true
	case LDYImm, LDYAbs:
		return "LDY", true
	case STAAbs:
		return "STA", true
	case STXAbs:
		return "STX", true
	case STYAbs:
		return "STY", true
	case STZAbs:
		return "STZ", true
	case CLC:
		return "CLC", true
	case SEC:
		return "SEC", true
	case CLI:
		return "CLI", true
	case SEI:
		return "SEI", true
	case REP:
		return "REP", true
	case SEP:
		return "SEP", true
	case NOP:
		return "NOP", true
	case XBA:
		return "XBA", true
	case STP:
		return "STP", true
	}
	return "", false
}

// Mode returns the address mode used by the given opcode.
// Returns false if the opcode is not recognized.
func Mode(opcode byte) (AddressMode, bool) {
	switch opcode {
	case ORAImm, ANDImm, EORImm, LDAImm, LDXImm, LDYImm, REP, SEP:
		return Immediate, true
	case ORAAbs, ANDAbs, EORAbs, LDAAbs, LDXAbs, LDYAbs,
		STAAbs, STXAbs, STYAbs, STZAbs:
		return Absolute, true
	case CLC, SEC, CLI, SEI, NOP, XBA, STP:
		return Implied, true
	}
	return 0, false
}
