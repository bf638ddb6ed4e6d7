package privacy

import (
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	ristretto "github.com/bwesterb/go-ristretto"
	"golang.org/x/crypto/sha3"
)

// Domain separation labels for deriving scalars from a shared secret.
// The same shared secret feeds both the stealth tweak and the memo key;
// distinct labels keep the two derivation contexts incompatible.
const (
	LabelStealthSpend = "chert_stealth_spend"
	LabelMemoEncrypt  = "chert_memo_encrypt"
)

// SharedSecret is the symmetric value both sides of a stealth payment can
// compute independently. It is never transmitted.
type SharedSecret [32]byte

// Wipe best-effort zeroes the secret.
func (s *SharedSecret) Wipe() {
	for i := range s {
		s[i] = 0
	}
}

// StealthAddress is a one-time destination. Only the ephemeral public key
// and the one-time public key appear on chain; neither links back to the
// recipient's published identity without the view secret.
type StealthAddress struct {
	OneTimePubKey [32]byte
	EphemeralPub  [32]byte
	Encoded       string
}

// StealthAccount is a recipient's published identity descriptor.
// Pure data assembly; no cryptographic work happens here.
type StealthAccount struct {
	Address  string
	ViewPub  [32]byte
	SpendPub [32]byte
}

// NewStealthAccount records a recipient's published keys for later
// address generation. The address is bound to networkID.
func NewStealthAccount(viewPub, spendPub [32]byte, networkID string) (*StealthAccount, error) {
	if err := ValidatePublic(viewPub); err != nil {
		return nil, fmt.Errorf("view key: %w", err)
	}
	if err := ValidatePublic(spendPub); err != nil {
		return nil, fmt.Errorf("spend key: %w", err)
	}
	return &StealthAccount{
		Address:  EncodeAddress(spendPub, viewPub, networkID),
		ViewPub:  viewPub,
		SpendPub: spendPub,
	}, nil
}

// DeriveSharedSecret computes H(mySecret * theirPublic).
// The recipient computes the same value from the other side:
// viewSecret * ephemeralPub == ephemeralSecret * viewPub.
func DeriveSharedSecret(mySecret, theirPublic [32]byte) (SharedSecret, error) {
	var shared SharedSecret
	if err := ValidatePublic(theirPublic); err != nil {
		return shared, err
	}

	var s ristretto.Scalar
	s.SetBytes(&mySecret)

	var p ristretto.Point
	p.SetBytes(&theirPublic)

	var dh ristretto.Point
	dh.ScalarMult(&p, &s)

	const tag = "chert_shared_secret"
	b := make([]byte, 0, len(tag)+32)
	b = append(b, tag...)
	b = append(b, dh.Bytes()...)
	shared = sha3.Sum256(b)
	wipeBytes(b)
	return shared, nil
}

// SecretToScalar hashes a shared secret to a canonical scalar under a
// domain label, so the same secret cannot be reinterpreted across contexts.
func SecretToScalar(shared SharedSecret, label string) [32]byte {
	b := make([]byte, 0, len(label)+32)
	b = append(b, label...)
	b = append(b, shared[:]...)

	var s ristretto.Scalar
	s.Derive(b)
	wipeBytes(b)

	var out [32]byte
	copy(out[:], s.Bytes())
	return out
}

// DeriveSendAddress generates a fresh ephemeral key, computes the shared
// secret with the recipient's view key, and derives the one-time
// destination: oneTimePub = spendPub + H_label(shared)*G.
//
// The ephemeral secret is used once and wiped before returning. The shared
// secret is returned so the caller can derive the memo key from the same
// exchange without regenerating the ephemeral key.
func DeriveSendAddress(recipientSpendPub, recipientViewPub [32]byte) (*StealthAddress, SharedSecret, error) {
	var none SharedSecret
	if err := ValidatePublic(recipientSpendPub); err != nil {
		return nil, none, fmt.Errorf("recipient spend key: %w", err)
	}
	if err := ValidatePublic(recipientViewPub); err != nil {
		return nil, none, fmt.Errorf("recipient view key: %w", err)
	}

	eph, err := GenerateKeyPair()
	if err != nil {
		return nil, none, err
	}
	defer eph.Wipe()

	shared, err := DeriveSharedSecret(eph.Secret, recipientViewPub)
	if err != nil {
		return nil, none, err
	}

	oneTimePub := oneTimePublic(recipientSpendPub, shared)

	addr := &StealthAddress{
		OneTimePubKey: oneTimePub,
		EphemeralPub:  eph.Public,
		Encoded:       encodeOneTimeAddress(oneTimePub),
	}
	return addr, shared, nil
}

// RecoverOneTimeSecret derives the scalar that spends funds sent to a
// one-time address (recipient side): spendSecret + H_label(shared).
// (spendSecret + tweak) * BasePoint equals the one-time public key.
func RecoverOneTimeSecret(viewSecret, spendSecret, ephemeralPub [32]byte) ([32]byte, error) {
	var out [32]byte
	shared, err := DeriveSharedSecret(viewSecret, ephemeralPub)
	if err != nil {
		return out, err
	}
	defer shared.Wipe()

	tweak := SecretToScalar(shared, LabelStealthSpend)

	var t, x, sum ristretto.Scalar
	t.SetBytes(&tweak)
	x.SetBytes(&spendSecret)
	sum.Add(&x, &t)

	copy(out[:], sum.Bytes())
	return out, nil
}

// BelongsTo reports whether an (ephemeralPub, oneTimePub) pair is addressed
// to the holder of viewSecret with the given spend public key. This is the
// recipient-side scanning predicate.
func BelongsTo(viewSecret [32]byte, spendPub, ephemeralPub, oneTimePub [32]byte) (bool, error) {
	if err := ValidatePublic(spendPub); err != nil {
		return false, fmt.Errorf("spend key: %w", err)
	}
	if err := ValidatePublic(oneTimePub); err != nil {
		return false, fmt.Errorf("one-time key: %w", err)
	}

	shared, err := DeriveSharedSecret(viewSecret, ephemeralPub)
	if err != nil {
		return false, err
	}
	defer shared.Wipe()

	expected := oneTimePublic(spendPub, shared)

	var got, want ristretto.Point
	got.SetBytes(&oneTimePub)
	want.SetBytes(&expected)
	return got.Equals(&want), nil
}

// PublicFromSecret returns secret * BasePoint.
func PublicFromSecret(secret [32]byte) [32]byte {
	var s ristretto.Scalar
	s.SetBytes(&secret)

	var p ristretto.Point
	p.ScalarMultBase(&s)

	var out [32]byte
	copy(out[:], p.Bytes())
	return out
}

// oneTimePublic computes spendPub + H_label(shared)*G.
func oneTimePublic(spendPub [32]byte, shared SharedSecret) [32]byte {
	tweak := SecretToScalar(shared, LabelStealthSpend)

	var t ristretto.Scalar
	t.SetBytes(&tweak)

	var tG ristretto.Point
	tG.ScalarMultBase(&t)

	var spend ristretto.Point
	spend.SetBytes(&spendPub)

	var sum ristretto.Point
	sum.Add(&spend, &tG)

	var out [32]byte
	copy(out[:], sum.Bytes())
	return out
}

func encodeOneTimeAddress(oneTimePub [32]byte) string {
	const tag = "chert_onetime_address_checksum"
	b := make([]byte, 0, len(tag)+32)
	b = append(b, tag...)
	b = append(b, oneTimePub[:]...)
	sum := sha3.Sum256(b)

	combined := make([]byte, 0, 36)
	combined = append(combined, oneTimePub[:]...)
	combined = append(combined, sum[:4]...)
	return base58.Encode(combined)
}
