package arch

import "testing"

var known = []byte{
	ORAImm, ORAAbs, CLC, ANDImm, ANDAbs, SEC, EORImm, EORAbs,
	CLI, SEI, STYAbs, STAAbs, STXAbs, STZAbs, LDYImm, LDXImm,
	LDAImm, LDYAbs, LDAAbs, LDXAbs, REP, STP, SEP, NOP, XBA,
}

func TestNameModeConsistency(t *testing.T) {
	for _, op := range known {
		if _, ok := Name(op); !ok {
			t.Fatalf("no mnemonic for opcode %02x", op)
		}
		if _, ok := Mode(op); !ok {
			t.Fatalf("no address mode for opcode %02x", op)
		}
	}

	if _, ok := Name(0xff); ok {
		t.Fatal("mnemonic reported for unassigned opcode ff")
	}
	if _, ok := Mode(0xff); ok {
		t.Fatal("address mode reported for unassigned opcode ff")
	}
}

func TestFlags(t *testing.T) {
	var f Flags

	f.Set(FlagM | FlagI)
	if !f.Has(FlagM) || !f.Has(FlagI) || f.Has(FlagX) {
		t.Fatalf("flag state mismatch: %s", f)
	}

	f.Clear(FlagM)
	if f.Has(FlagM) {
		t.Fatalf("flag state mismatch: %s", f)
	}
}

func TestFlagsString(t *testing.T) {
	f := FlagM | FlagX | FlagI
	if s := f.String(); s != "nvMXdIzc" {
		t.Fatalf("flag notation mismatch:\nwant: nvMXdIzc\nhave: %s", s)
	}
}
