package serverpackets

import "github.com/l2j-emu/aegis/internal/gameserver/packet"

// OpcodeSSQStatus is the opcode for the Seven Signs status packet (S2C 0xF5).
const OpcodeSSQStatus byte = 0xF5

// SSQCabal identifies which side of the seal contest a character has joined.
// The full seven-signs quest mechanics are out of core scope; this packet
// only needs to carry the client-visible cabal flag used during char select.
type SSQCabal byte

const (
	SSQCabalNone SSQCabal = 0
	SSQCabalDawn SSQCabal = 1
	SSQCabalDusk SSQCabal = 2
)

// SSQInfo is the minimal Seven Signs status packet sent right after character
// selection so the client can render the correct emblem overlay. Page 1 is
// the only page the core handshake needs; deeper seal/festival bookkeeping
// lives with the (deferred) scripting surface, not the simulation core.
type SSQInfo struct {
	Cabal SSQCabal
}

// Write serializes the SSQInfo packet.
func (p *SSQInfo) Write() ([]byte, error) {
	w := packet.NewWriter(16)
	w.WriteByte(OpcodeSSQStatus)
	w.WriteByte(1) // page 1
	w.WriteByte(byte(p.Cabal))
	return w.Bytes(), nil
}

// NewSSQInfo builds the SSQInfo packet for the given cabal membership.
func NewSSQInfo(cabal SSQCabal) *SSQInfo {
	return &SSQInfo{Cabal: cabal}
}
