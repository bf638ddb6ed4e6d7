package privacy

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	ristretto "github.com/bwesterb/go-ristretto"
	"golang.org/x/crypto/sha3"
)

// KeyPair is a ristretto255 keypair. Public = Secret * BasePoint.
// The secret half must never appear in logs or error messages.
type KeyPair struct {
	Secret [32]byte
	Public [32]byte
}

// Wipe best-effort zeroes the secret half.
// Not a guarantee in Go (copies may exist), but it reduces exposure windows.
func (kp *KeyPair) Wipe() {
	for i := range kp.Secret {
		kp.Secret[i] = 0
	}
}

// StealthKeys is a recipient's published privacy identity: a view keypair
// for payment detection and a spend keypair for spending authority.
type StealthKeys struct {
	View  KeyPair
	Spend KeyPair
}

// Wipe zeroes both secret halves.
func (sk *StealthKeys) Wipe() {
	sk.View.Wipe()
	sk.Spend.Wipe()
}

// GenerateKeyPair samples a fresh keypair from the system CSPRNG.
func GenerateKeyPair() (*KeyPair, error) {
	var seed [64]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}

	var s ristretto.Scalar
	s.Derive(seed[:])
	wipeBytes(seed[:])

	var p ristretto.Point
	p.ScalarMultBase(&s)

	kp := &KeyPair{}
	copy(kp.Secret[:], s.Bytes())
	copy(kp.Public[:], p.Bytes())
	return kp, nil
}

// GenerateStealthKeys generates a new (view, spend) identity.
func GenerateStealthKeys() (*StealthKeys, error) {
	view, err := GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	spend, err := GenerateKeyPair()
	if err != nil {
		view.Wipe()
		return nil, err
	}
	return &StealthKeys{View: *view, Spend: *spend}, nil
}

// ValidatePublic rejects encodings that are not canonical ristretto255
// points and the identity element. Called before any externally supplied
// public key enters a derivation, to block invalid-point attacks.
func ValidatePublic(pub [32]byte) error {
	var p ristretto.Point
	if !p.SetBytes(&pub) {
		return fmt.Errorf("%w: not a canonical ristretto255 point", ErrInvalidKey)
	}
	var zero ristretto.Point
	zero.SetZero()
	if p.Equals(&zero) {
		return fmt.Errorf("%w: identity element", ErrInvalidKey)
	}
	return nil
}

// DecodePublicKey parses a hex-encoded public key and validates the point.
func DecodePublicKey(s string) ([32]byte, error) {
	var pub [32]byte
	if len(s) != 64 {
		return pub, fmt.Errorf("%w: public key must be 64 hex characters, got %d", ErrInvalidKey, len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return pub, fmt.Errorf("%w: invalid hex encoding", ErrInvalidKey)
	}
	copy(pub[:], raw)
	if err := ValidatePublic(pub); err != nil {
		return pub, err
	}
	return pub, nil
}

// EncodePublicKey returns the hex form used at API boundaries.
func EncodePublicKey(pub [32]byte) string {
	return hex.EncodeToString(pub[:])
}

// Address returns the public stealth address:
// base58(spend_pub || view_pub || checksum4), checksum bound to networkID.
func (sk *StealthKeys) Address(networkID string) string {
	return EncodeAddress(sk.Spend.Public, sk.View.Public, networkID)
}

// EncodeAddress builds a stealth address from the two public halves.
// The checksum binds the address to one network, so an address minted for
// one network fails parsing on any other.
func EncodeAddress(spendPub, viewPub [32]byte, networkID string) string {
	payload := make([]byte, 64)
	copy(payload[:32], spendPub[:])
	copy(payload[32:], viewPub[:])

	sum := addressChecksum(payload, networkID)
	combined := make([]byte, 0, 68)
	combined = append(combined, payload...)
	combined = append(combined, sum[:4]...)
	return base58.Encode(combined)
}

// ParseAddress decodes a stealth address into spend and view pubkeys.
// Both points are validated before being returned.
func ParseAddress(address, networkID string) (spendPub, viewPub [32]byte, err error) {
	decoded := base58.Decode(address)
	if len(decoded) != 68 {
		return spendPub, viewPub, fmt.Errorf("%w: invalid address length", ErrInvalidKey)
	}

	payload := decoded[:64]
	checksum := decoded[64:]
	sum := addressChecksum(payload, networkID)
	if checksum[0] != sum[0] || checksum[1] != sum[1] || checksum[2] != sum[2] || checksum[3] != sum[3] {
		return spendPub, viewPub, fmt.Errorf("%w: invalid address checksum", ErrInvalidKey)
	}

	copy(spendPub[:], payload[:32])
	copy(viewPub[:], payload[32:])
	if err := ValidatePublic(spendPub); err != nil {
		return spendPub, viewPub, err
	}
	if err := ValidatePublic(viewPub); err != nil {
		return spendPub, viewPub, err
	}
	return spendPub, viewPub, nil
}

func addressChecksum(payload []byte, networkID string) [32]byte {
	const tag = "chert_stealth_address_checksum"
	b := make([]byte, 0, len(tag)+len(networkID)+len(payload))
	b = append(b, tag...)
	b = append(b, networkID...)
	b = append(b, payload...)
	return sha3.Sum256(b)
}

func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
