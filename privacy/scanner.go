package privacy

import (
	"github.com/chertnetwork/go-chert/protocol/params"
)

// TxOutput is the minimal on-chain output info needed for scanning.
type TxOutput struct {
	TxID          string
	OneTimePubKey [32]byte
	EphemeralPub  [32]byte
	EncryptedMemo [params.MemoSize]byte
	Amount        uint64
	BlockHeight   uint64
}

// OwnedOutput is an output the scanner identified as ours, with the
// recovered one-time secret that can spend it.
type OwnedOutput struct {
	TxID          string
	OneTimePubKey [32]byte
	OneTimeSecret [32]byte
	Amount        uint64
	BlockHeight   uint64
	Memo          []byte
}

// Scanner tests outputs against a stealth identity. It borrows the key set
// for the lifetime of the scanner and performs no network I/O.
type Scanner struct {
	keys *StealthKeys
}

// NewScanner creates a scanner over the recipient's key set.
func NewScanner(keys *StealthKeys) *Scanner {
	return &Scanner{keys: keys}
}

// Owns reports whether an (ephemeralPub, oneTimePub) pair is addressed to
// the scanner's identity.
func (s *Scanner) Owns(ephemeralPub, oneTimePub [32]byte) (bool, error) {
	return BelongsTo(s.keys.View.Secret, s.keys.Spend.Public, ephemeralPub, oneTimePub)
}

// ScanOutput checks one output. When owned, the one-time secret is
// recovered and the memo decrypted. Outputs that fail the ownership test
// return (nil, false, nil); errors are reserved for malformed inputs.
func (s *Scanner) ScanOutput(out TxOutput) (*OwnedOutput, bool, error) {
	owned, err := s.Owns(out.EphemeralPub, out.OneTimePubKey)
	if err != nil {
		return nil, false, err
	}
	if !owned {
		return nil, false, nil
	}

	secret, err := RecoverOneTimeSecret(s.keys.View.Secret, s.keys.Spend.Secret, out.EphemeralPub)
	if err != nil {
		return nil, false, err
	}

	result := &OwnedOutput{
		TxID:          out.TxID,
		OneTimePubKey: out.OneTimePubKey,
		OneTimeSecret: secret,
		Amount:        out.Amount,
		BlockHeight:   out.BlockHeight,
	}

	shared, err := DeriveSharedSecret(s.keys.View.Secret, out.EphemeralPub)
	if err != nil {
		return nil, false, err
	}
	if memo, ok := DecryptMemo(out.EncryptedMemo, shared); ok {
		result.Memo = memo
	}
	shared.Wipe()

	return result, true, nil
}

// ScanOutputs scans a batch and returns the owned subset. Malformed
// outputs are skipped rather than aborting the whole scan.
func (s *Scanner) ScanOutputs(outputs []TxOutput) []*OwnedOutput {
	var found []*OwnedOutput
	for _, out := range outputs {
		owned, ok, err := s.ScanOutput(out)
		if err != nil || !ok {
			continue
		}
		found = append(found, owned)
	}
	return found
}
