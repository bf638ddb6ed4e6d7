package privacy

import (
	"fmt"

	ristretto "github.com/bwesterb/go-ristretto"
)

// Schnorr signatures over ristretto255. Keys are the same 32-byte scalars
// and points used by the stealth engine, so a recovered one-time secret can
// sign for its one-time public key directly.

const SignatureSize = 64

// Sign produces a 64-byte signature (R || s) over message with the given
// secret scalar. The nonce is derived deterministically from the secret and
// the message, so no randomness failure can reuse a nonce.
func Sign(secret [32]byte, message []byte) ([]byte, error) {
	if len(message) == 0 {
		return nil, fmt.Errorf("%w: empty message", ErrInvalidSignature)
	}

	var x ristretto.Scalar
	x.SetBytes(&secret)

	var pub ristretto.Point
	pub.ScalarMultBase(&x)

	// r = H(nonce_tag || secret || message)
	nb := make([]byte, 0, 20+32+len(message))
	nb = append(nb, "chert_schnorr_nonce"...)
	nb = append(nb, secret[:]...)
	nb = append(nb, message...)
	var r ristretto.Scalar
	r.Derive(nb)
	wipeBytes(nb)

	var R ristretto.Point
	R.ScalarMultBase(&r)

	c := challenge(&R, &pub, message)

	// s = r + c*x
	var cx, s ristretto.Scalar
	cx.Mul(&c, &x)
	s.Add(&r, &cx)

	sig := make([]byte, SignatureSize)
	copy(sig[:32], R.Bytes())
	copy(sig[32:], s.Bytes())
	return sig, nil
}

// Verify checks a signature produced by Sign against a public key.
func Verify(public [32]byte, message, signature []byte) error {
	if len(signature) != SignatureSize {
		return fmt.Errorf("%w: signature must be %d bytes", ErrInvalidSignature, SignatureSize)
	}
	if err := ValidatePublic(public); err != nil {
		return err
	}

	var Rb, sb [32]byte
	copy(Rb[:], signature[:32])
	copy(sb[:], signature[32:])

	var R ristretto.Point
	if !R.SetBytes(&Rb) {
		return fmt.Errorf("%w: malformed commitment point", ErrInvalidSignature)
	}

	var s ristretto.Scalar
	s.SetBytes(&sb)

	var pub ristretto.Point
	pub.SetBytes(&public)

	c := challenge(&R, &pub, message)

	// s*G == R + c*P
	var sG ristretto.Point
	sG.ScalarMultBase(&s)

	var cP ristretto.Point
	cP.ScalarMult(&pub, &c)

	var rhs ristretto.Point
	rhs.Add(&R, &cP)

	if !sG.Equals(&rhs) {
		return fmt.Errorf("%w: verification failed", ErrInvalidSignature)
	}
	return nil
}

func challenge(R, pub *ristretto.Point, message []byte) ristretto.Scalar {
	b := make([]byte, 0, 24+32+32+len(message))
	b = append(b, "chert_schnorr_challenge"...)
	b = append(b, R.Bytes()...)
	b = append(b, pub.Bytes()...)
	b = append(b, message...)

	var c ristretto.Scalar
	c.Derive(b)
	return c
}
