package crypto

import (
	"fmt"
	"math/rand/v2"
)

// StaticBlowfishKey is the key hardcoded in the L2 client for the first Init packet.
var StaticBlowfishKey = []byte{
	0x6b, 0x60, 0xcb, 0x5b,
	0x82, 0xce, 0x90, 0xb1,
	0xcc, 0x2b, 0x6c, 0x55,
	0x6c, 0x6c, 0x6c, 0x6c,
}

// LoginEncryption handles Blowfish encryption/decryption for login protocol.
// The first outgoing packet (Init) uses the static key + encXORPass.
// All subsequent packets use the dynamic key + checksum.
type LoginEncryption struct {
	staticCipher  *BlowfishCipher
	dynamicCipher *BlowfishCipher
	firstPacket   bool
}

// NewLoginEncryption creates a LoginEncryption with the given dynamic Blowfish key.
func NewLoginEncryption(dynamicKey []byte) (*LoginEncryption, error) {
	sc, err := NewBlowfishCipher(StaticBlowfishKey)
	if err != nil {
		return nil, fmt.Errorf("creating static blowfish cipher: %w", err)
	}
	dc, err := NewBlowfishCipher(dynamicKey)
	if err != nil {
		return nil, fmt.Errorf("creating dynamic blowfish cipher: %w", err)
	}
	return &LoginEncryption{
		staticCipher:  sc,
		dynamicCipher: dc,
		firstPacket:   true,
	}, nil
}

// padTo8 rounds n up to the next multiple of 8, the Blowfish block size.
func padTo8(n int) int {
	if rem := n % 8; rem != 0 {
		n += 8 - rem
	}
	return n
}

// zeroPad clears data[offset+from : offset+to], the padding bytes a caller
// is about to feed through AppendChecksum/Encrypt.
func zeroPad(data []byte, offset, from, to int) {
	for i := offset + from; i < offset+to; i++ {
		data[i] = 0
	}
}

// EncryptPacket encrypts an outgoing packet in-place.
// For the first packet (Init): encXORPass + static Blowfish.
// For subsequent packets: appendChecksum + dynamic Blowfish.
// Returns the total size to send (may include padding).
func (le *LoginEncryption) EncryptPacket(data []byte, offset, size int) (int, error) {
	needed := padTo8(size) + 8 // room for checksum/padding on top of the rounded size
	if offset+needed > len(data) {
		return 0, fmt.Errorf("encrypt packet: buffer too small (need %d, have %d)", offset+needed, len(data))
	}

	if le.firstPacket {
		return le.encryptInitPacket(data, offset, size)
	}
	return le.encryptSubsequentPacket(data, offset, size)
}

// encryptInitPacket handles the one-time Init packet: a random XOR pass
// followed by the static Blowfish key. Matches encryptedSize() from the
// client's handshake: size+8, rounded to 8, plus a final 8-byte tail.
func (le *LoginEncryption) encryptInitPacket(data []byte, offset, size int) (int, error) {
	le.firstPacket = false

	encSize := padTo8(size+8) + 8
	xorKey := rand.Int32()
	EncXORPass(data, offset, encSize, xorKey)
	if err := le.staticCipher.Encrypt(data, offset, encSize); err != nil {
		return 0, fmt.Errorf("encrypting init packet: %w", err)
	}
	return encSize, nil
}

// encryptSubsequentPacket handles every packet after Init: append a
// checksum and encrypt with the session's dynamic Blowfish key.
func (le *LoginEncryption) encryptSubsequentPacket(data []byte, offset, size int) (int, error) {
	checksumSize := padTo8(size + 4)
	zeroPad(data, offset, size, checksumSize)
	AppendChecksum(data, offset, checksumSize)
	if err := le.dynamicCipher.Encrypt(data, offset, checksumSize); err != nil {
		return 0, fmt.Errorf("encrypting packet: %w", err)
	}
	return checksumSize, nil
}

// DecryptPacket decrypts an incoming packet in-place using the dynamic Blowfish key.
// Returns true if the checksum is valid.
func (le *LoginEncryption) DecryptPacket(data []byte, offset, size int) (bool, error) {
	// Incoming packets are always encrypted with the dynamic key
	if size%8 != 0 {
		return false, fmt.Errorf("decrypt packet: size %d is not multiple of 8", size)
	}
	if err := le.dynamicCipher.Decrypt(data, offset, size); err != nil {
		return false, fmt.Errorf("decrypting packet: %w", err)
	}
	return VerifyChecksum(data, offset, size), nil
}

// EncryptPacketClient encrypts an outgoing packet from client to server.
// For clients, ALL packets use: appendChecksum + dynamic Blowfish (no encXORPass, no firstPacket logic).
// Returns the total size to send (includes padding to multiple of 8).
func (le *LoginEncryption) EncryptPacketClient(data []byte, offset, size int) (int, error) {
	checksumSize := padTo8(size + 4)
	if offset+checksumSize > len(data) {
		return 0, fmt.Errorf("encrypt packet client: buffer too small (need %d, have %d)", offset+checksumSize, len(data))
	}

	zeroPad(data, offset, size, checksumSize)
	AppendChecksum(data, offset, checksumSize)
	if err := le.dynamicCipher.Encrypt(data, offset, checksumSize); err != nil {
		return 0, fmt.Errorf("encrypting client packet: %w", err)
	}
	return checksumSize, nil
}
