package privacy

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/chertnetwork/go-chert/protocol/params"
)

// PrivacyLevel selects how much of the transaction is shielded.
// Both levels hide the recipient behind a one-time address; "encrypted"
// additionally requires a memo, which travels encrypted under the shared
// secret. Sender-side unlinkability is an extension point, not implemented.
type PrivacyLevel string

const (
	PrivacyStealth   PrivacyLevel = "stealth"
	PrivacyEncrypted PrivacyLevel = "encrypted"
)

// Valid reports whether l is a known privacy level.
func (l PrivacyLevel) Valid() bool {
	return l == PrivacyStealth || l == PrivacyEncrypted
}

func (l PrivacyLevel) wireByte() byte {
	if l == PrivacyEncrypted {
		return 2
	}
	return 1
}

// BuildParams are the inputs to BuildPrivateTransaction. Amounts are in
// atomic units; decimal parsing happens at the API boundary.
type BuildParams struct {
	RecipientSpendPub [32]byte
	RecipientViewPub  [32]byte
	Amount            uint64
	Fee               uint64
	Memo              []byte
	Nonce             uint64
	Level             PrivacyLevel
}

// PrivateTransaction is an assembled, signable private transfer. The
// destination is a one-time address; the memo (or its absence) is hidden
// inside a fixed-size encrypted envelope.
type PrivateTransaction struct {
	Destination   StealthAddress
	Amount        uint64
	Fee           uint64
	Nonce         uint64
	Level         PrivacyLevel
	EncryptedMemo [params.MemoSize]byte

	// Set by Sign. Privacy applies to the destination, not the origin:
	// the sender signs with their real key.
	SenderPub [32]byte
	Signature []byte
}

// BuildPrivateTransaction validates inputs, derives a one-time destination
// for the recipient, encrypts the memo under the same shared secret, and
// returns the unsigned transaction.
//
// Structural validation happens before any key is generated, so an invalid
// request consumes no randomness. Nonce uniqueness is the ledger's job;
// only structurally invalid nonces are rejected here. Nothing is retried
// internally; retry policy belongs to the caller.
func BuildPrivateTransaction(p BuildParams) (*PrivateTransaction, error) {
	if p.Amount == 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	if p.Nonce == 0 {
		return nil, fmt.Errorf("%w: nonce must be positive", ErrInvalidNonce)
	}
	if !p.Level.Valid() {
		return nil, fmt.Errorf("%w: unknown level %q", ErrInvalidLevel, p.Level)
	}
	if p.Level == PrivacyEncrypted && len(p.Memo) == 0 {
		return nil, fmt.Errorf("%w: encrypted level requires a memo", ErrInvalidLevel)
	}
	if len(p.Memo) > params.MemoPayloadMax {
		return nil, fmt.Errorf("%w: max %d bytes", ErrMemoTooLong, params.MemoPayloadMax)
	}

	dest, shared, err := DeriveSendAddress(p.RecipientSpendPub, p.RecipientViewPub)
	if err != nil {
		return nil, err
	}
	defer shared.Wipe()

	// Always attach an envelope so ciphertext length never reveals
	// whether a memo was sent.
	encryptedMemo, err := EncryptMemo(p.Memo, shared)
	if err != nil {
		return nil, err
	}

	return &PrivateTransaction{
		Destination:   *dest,
		Amount:        p.Amount,
		Fee:           p.Fee,
		Nonce:         p.Nonce,
		Level:         p.Level,
		EncryptedMemo: encryptedMemo,
	}, nil
}

// SigningPayload serializes the transaction prefix (everything except the
// signature) in canonical wire order.
func (tx *PrivateTransaction) SigningPayload() []byte {
	size := 1 + 32 + 32 + 8 + 8 + 8 + 1 + params.MemoSize
	buf := make([]byte, size)
	offset := 0

	buf[offset] = 1 // version
	offset++

	copy(buf[offset:], tx.Destination.OneTimePubKey[:])
	offset += 32

	copy(buf[offset:], tx.Destination.EphemeralPub[:])
	offset += 32

	binary.LittleEndian.PutUint64(buf[offset:], tx.Amount)
	offset += 8

	binary.LittleEndian.PutUint64(buf[offset:], tx.Fee)
	offset += 8

	binary.LittleEndian.PutUint64(buf[offset:], tx.Nonce)
	offset += 8

	buf[offset] = tx.Level.wireByte()
	offset++

	copy(buf[offset:], tx.EncryptedMemo[:])
	return buf
}

// PayloadHash is the domain-separated digest the sender signs.
func (tx *PrivateTransaction) PayloadHash() [32]byte {
	h := sha3.New256()
	h.Write([]byte("chert_tx_payload"))
	h.Write(tx.SigningPayload())
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Sign binds the transaction to the sender's signing key.
func (tx *PrivateTransaction) Sign(senderSecret [32]byte) error {
	hash := tx.PayloadHash()
	sig, err := Sign(senderSecret, hash[:])
	if err != nil {
		return err
	}
	tx.SenderPub = PublicFromSecret(senderSecret)
	tx.Signature = sig
	return nil
}

// VerifySignature checks the attached signature against the sender key.
func (tx *PrivateTransaction) VerifySignature() error {
	if len(tx.Signature) == 0 {
		return fmt.Errorf("%w: transaction is unsigned", ErrInvalidSignature)
	}
	hash := tx.PayloadHash()
	return Verify(tx.SenderPub, hash[:], tx.Signature)
}
