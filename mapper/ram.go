package mapper

// RAM is a read/write memory device covering a contiguous range of
// banks, 64KB each.
type RAM struct {
	first byte
	banks [][]byte
}

// NewRAM creates RAM for count banks starting at the given bank.
func NewRAM(first byte, count int) *RAM {
	banks := make([][]byte, count)
	for i := range banks {
		banks[i] = make([]byte, 0x10000)
	}

	return &RAM{
		first: first,
		banks: banks,
	}
}

// Read returns the byte at the given address.
// Addresses outside the device read back 0.
func (r *RAM) Read(bank byte, offset uint16) byte {
	if b := r.bank(bank); b != nil {
		return b[offset]
	}
	return 0
}

// Write stores the byte at the given address.
// Addresses outside the device are ignored.
func (r *RAM) Write(bank byte, offset uint16, value byte) {
	if b := r.bank(bank); b != nil {
		b[offset] = value
	}
}

func (r *RAM) bank(bank byte) []byte {
	i := int(bank) - int(r.first)
	if i < 0 || i >= len(r.banks) {
		return nil
	}
	return r.banks[i]
}
