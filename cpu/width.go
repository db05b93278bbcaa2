package cpu

// Word constrains the two operand widths the 65816 operates at. The
// width select flags in the status register decide which instantiation
// of a width-generic function runs. That decision happens once per
// instruction, in the dispatch gates in addressing.go; nothing below
// the gates inspects the flags again.
type Word interface {
	uint8 | uint16
}

// isWide returns true if T is the 16-bit width.
func isWide[T Word]() bool {
	var v T
	_, ok := any(v).(uint16)
	return ok
}

// get extracts the register's value at width T.
func get[T Word](reg uint16) T {
	return T(reg)
}

// set overwrites the register at width T. An 8-bit set leaves the high
// byte of the storage cell untouched.
func set[T Word](reg *uint16, value T) {
	switch v := any(value).(type) {
	case uint8:
		*reg = *reg&0xff00 | uint16(v)
	case uint16:
		*reg = v
	}
}

// zero returns the default value at width T.
func zero[T Word]() T {
	return 0
}

// negative returns true if the sign bit at width T is set.
func negative[T Word](value T) bool {
	switch v := any(value).(type) {
	case uint8:
		return v&0x80 != 0
	case uint16:
		return v&0x8000 != 0
	}
	return false
}
