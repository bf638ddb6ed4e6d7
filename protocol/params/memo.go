package params

// Protocol-level memo constants shared by the privacy core and the client.
//
// Keep these out of the privacy package so wire-format consumers do not
// couple to crypto refactors.
const (
	// MemoSize is the fixed encrypted memo size per transaction (bytes).
	MemoSize = 128

	// MemoEnvelopeVersion is the version byte of the plaintext memo envelope
	// before encryption. The network treats the ciphertext as opaque.
	MemoEnvelopeVersion = byte(0x01)

	// MemoPayloadMax is the max plaintext payload length (bytes) inside the
	// envelope. Layout: version(1) + length(1) + checksum(2) + payload(n) + padding.
	MemoPayloadMax = 124
)
