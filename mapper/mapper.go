// Package mapper provides memory collaborators for the cpu core: a
// banked RAM device and a map that routes accesses to the device
// claiming the addressed bank.
package mapper

import "github.com/pkg/errors"

// Device represents a memory mapped peripheral. Accesses must be
// total: a device decides for itself what unmapped or write-only
// locations read back as.
type Device interface {
	Read(bank byte, offset uint16) byte
	Write(bank byte, offset uint16, value byte)
}

// Region couples a device to the bank range it responds to.
type Region struct {
	First, Last byte
	Device      Device
}

// Map routes reads and writes to the region claiming the addressed
// bank. Unmapped banks read back 0 and ignore writes.
type Map struct {
	regions []Region
}

// Connect claims the given inclusive bank range for a device.
// Returns an error if the range is invalid or overlaps an existing
// region.
func (m *Map) Connect(first, last byte, dev Device) error {
	if last < first {
		return errors.Errorf("mapper: invalid bank range %02x-%02x", first, last)
	}

	for _, r := range m.regions {
		if first <= r.Last && last >= r.First {
			return errors.Errorf("mapper: bank range %02x-%02x overlaps %02x-%02x",
				first, last, r.First, r.Last)
		}
	}

	m.regions = append(m.regions, Region{first, last, dev})
	return nil
}

// Read returns the byte at the given address.
func (m *Map) Read(bank byte, offset uint16) byte {
	if r := m.find(bank); r != nil {
		return r.Device.Read(bank, offset)
	}
	return 0
}

// Write stores the byte at the given address.
func (m *Map) Write(bank byte, offset uint16, value byte) {
	if r := m.find(bank); r != nil {
		r.Device.Write(bank, offset, value)
	}
}

func (m *Map) find(bank byte) *Region {
	for i := range m.regions {
		if bank >= m.regions[i].First && bank <= m.regions[i].Last {
			return &m.regions[i]
		}
	}
	return nil
}
