package privacy

import "errors"

// Sentinel errors for the cryptographic core. Callers match with errors.Is;
// wrapped messages carry detail but never key material.
var (
	// ErrInvalidKey marks a malformed, non-canonical, or identity public key.
	ErrInvalidKey = errors.New("privacy: invalid key")

	// ErrKeyGeneration marks a failure of the secure randomness source.
	// Fatal to the current operation; retry only after remediating the environment.
	ErrKeyGeneration = errors.New("privacy: key generation failed")

	// ErrInvalidAmount marks a structurally invalid amount or fee.
	ErrInvalidAmount = errors.New("privacy: invalid amount")

	// ErrInvalidNonce marks a structurally invalid nonce. Uniqueness is
	// enforced by the ledger, not here.
	ErrInvalidNonce = errors.New("privacy: invalid nonce")

	// ErrMemoTooLong marks a memo exceeding the envelope payload capacity.
	ErrMemoTooLong = errors.New("privacy: memo too long")

	// ErrInvalidLevel marks an unknown privacy level or a level whose
	// requirements the request does not meet.
	ErrInvalidLevel = errors.New("privacy: invalid privacy level")

	// ErrInvalidSignature marks a signature that does not verify.
	ErrInvalidSignature = errors.New("privacy: invalid signature")
)
