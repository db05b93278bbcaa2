package cpu

// Mapper maps (bank, offset) pairs to physical memory. It is supplied
// by the host and must be total: faults behind it, such as unmapped
// addresses or open bus reads, are the mapper's concern and must not
// surface here.
type Mapper interface {
	Read(bank byte, offset uint16) byte
	Write(bank byte, offset uint16, value byte)
}

// read reads a value of width T from the given address. A 16-bit read
// issues two byte reads in little-endian order.
func read[T Word](m Mapper, bank byte, offset uint16) T {
	v := T(m.Read(bank, offset))
	if isWide[T]() {
		bank, offset = next(bank, offset)
		v |= T(uint16(m.Read(bank, offset)) << 8)
	}
	return v
}

// write writes a value of width T to the given address. A 16-bit write
// issues two byte writes in little-endian order.
func write[T Word](m Mapper, bank byte, offset uint16, value T) {
	m.Write(bank, offset, byte(value))
	if isWide[T]() {
		bank, offset = next(bank, offset)
		m.Write(bank, offset, byte(uint16(value)>>8))
	}
}

// next advances a 24-bit address by one byte. Data accesses increment
// linearly: at offset 0xffff the second byte of a 16-bit access comes
// from the start of the following bank, matching non-indexed absolute
// addressing in native mode.
func next(bank byte, offset uint16) (byte, uint16) {
	offset++
	if offset == 0 {
		bank++
	}
	return bank, offset
}
