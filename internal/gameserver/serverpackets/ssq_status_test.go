package serverpackets

import "testing"

func TestSSQInfo_Write(t *testing.T) {
	t.Parallel()

	p := NewSSQInfo(SSQCabalDusk)
	data, err := p.Write()
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	if len(data) != 3 {
		t.Fatalf("len(data) = %d, want 3", len(data))
	}
	if data[0] != OpcodeSSQStatus {
		t.Errorf("opcode = 0x%02X, want 0x%02X", data[0], OpcodeSSQStatus)
	}
	if data[1] != 1 {
		t.Errorf("page = %d, want 1", data[1])
	}
	if data[2] != byte(SSQCabalDusk) {
		t.Errorf("cabal = %d, want %d", data[2], SSQCabalDusk)
	}
}

func TestSSQInfo_NoneCabal(t *testing.T) {
	t.Parallel()

	p := NewSSQInfo(SSQCabalNone)
	data, err := p.Write()
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if data[2] != 0 {
		t.Errorf("cabal = %d, want 0", data[2])
	}
}
