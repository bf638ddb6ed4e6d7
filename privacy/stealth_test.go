package privacy

import (
	"errors"
	"testing"

	"github.com/chertnetwork/go-chert/protocol/params"
)

func TestSharedSecret_DiffieHellmanSymmetry(t *testing.T) {
	a, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	b, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	ab, err := DeriveSharedSecret(a.Secret, b.Public)
	if err != nil {
		t.Fatalf("DeriveSharedSecret(a, B): %v", err)
	}
	ba, err := DeriveSharedSecret(b.Secret, a.Public)
	if err != nil {
		t.Fatalf("DeriveSharedSecret(b, A): %v", err)
	}

	if ab != ba {
		t.Fatal("shared secrets differ between the two sides")
	}
}

func TestDeriveSendAddress_RecipientRecoversOneTimeKey(t *testing.T) {
	recipient, err := GenerateStealthKeys()
	if err != nil {
		t.Fatalf("GenerateStealthKeys: %v", err)
	}

	addr, _, err := DeriveSendAddress(recipient.Spend.Public, recipient.View.Public)
	if err != nil {
		t.Fatalf("DeriveSendAddress: %v", err)
	}

	secret, err := RecoverOneTimeSecret(recipient.View.Secret, recipient.Spend.Secret, addr.EphemeralPub)
	if err != nil {
		t.Fatalf("RecoverOneTimeSecret: %v", err)
	}

	// The central protocol invariant: the recovered scalar's public key
	// must equal the one-time key the sender derived.
	if PublicFromSecret(secret) != addr.OneTimePubKey {
		t.Fatal("recovered one-time secret does not match sender's one-time public key")
	}
}

func TestBelongsTo_OwnAndForeignOutputs(t *testing.T) {
	recipient, err := GenerateStealthKeys()
	if err != nil {
		t.Fatalf("GenerateStealthKeys: %v", err)
	}
	other, err := GenerateStealthKeys()
	if err != nil {
		t.Fatalf("GenerateStealthKeys: %v", err)
	}

	for i := 0; i < 16; i++ {
		addr, _, err := DeriveSendAddress(recipient.Spend.Public, recipient.View.Public)
		if err != nil {
			t.Fatalf("DeriveSendAddress: %v", err)
		}

		mine, err := BelongsTo(recipient.View.Secret, recipient.Spend.Public, addr.EphemeralPub, addr.OneTimePubKey)
		if err != nil {
			t.Fatalf("BelongsTo(own): %v", err)
		}
		if !mine {
			t.Fatalf("iteration %d: recipient did not recognize own output", i)
		}

		theirs, err := BelongsTo(other.View.Secret, other.Spend.Public, addr.EphemeralPub, addr.OneTimePubKey)
		if err != nil {
			t.Fatalf("BelongsTo(foreign): %v", err)
		}
		if theirs {
			t.Fatalf("iteration %d: foreign identity claimed someone else's output", i)
		}
	}
}

func TestDeriveSendAddress_FreshEphemeralPerCall(t *testing.T) {
	recipient, err := GenerateStealthKeys()
	if err != nil {
		t.Fatalf("GenerateStealthKeys: %v", err)
	}

	first, _, err := DeriveSendAddress(recipient.Spend.Public, recipient.View.Public)
	if err != nil {
		t.Fatalf("DeriveSendAddress: %v", err)
	}
	second, _, err := DeriveSendAddress(recipient.Spend.Public, recipient.View.Public)
	if err != nil {
		t.Fatalf("DeriveSendAddress: %v", err)
	}

	if first.EphemeralPub == second.EphemeralPub {
		t.Fatal("ephemeral key reused across derivations")
	}
	if first.OneTimePubKey == second.OneTimePubKey {
		t.Fatal("one-time key repeated for the same recipient")
	}
	if first.Encoded == second.Encoded {
		t.Fatal("encoded address repeated for the same recipient")
	}
}

func TestValidatePublic_RejectsIdentityAndMalformed(t *testing.T) {
	// All-zero bytes encode the identity element.
	var identity [32]byte
	if err := ValidatePublic(identity); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("identity element: want ErrInvalidKey, got %v", err)
	}

	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if err := ValidatePublic(kp.Public); err != nil {
		t.Fatalf("valid point rejected: %v", err)
	}

	// Corrupt the encoding until it no longer decodes. Flipping the top
	// bit produces a non-canonical field element for most points; try a
	// few mutations to be robust.
	rejected := false
	for bit := 0; bit < 8 && !rejected; bit++ {
		corrupted := kp.Public
		corrupted[31] ^= 1 << (7 - bit)
		if err := ValidatePublic(corrupted); err != nil {
			rejected = true
		}
	}
	if !rejected {
		t.Fatal("no corrupted encoding was rejected")
	}

	// Truncated hex input fails at decode time.
	if _, err := DecodePublicKey("abcd"); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("truncated key: want ErrInvalidKey, got %v", err)
	}
	if _, err := DecodePublicKey(string(make([]byte, 64))); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("non-hex key: want ErrInvalidKey, got %v", err)
	}
}

func TestSecretToScalar_DomainSeparation(t *testing.T) {
	var shared SharedSecret
	for i := range shared {
		shared[i] = byte(i)
	}

	spend := SecretToScalar(shared, LabelStealthSpend)
	memo := SecretToScalar(shared, LabelMemoEncrypt)
	if spend == memo {
		t.Fatal("different labels produced the same scalar")
	}

	again := SecretToScalar(shared, LabelStealthSpend)
	if spend != again {
		t.Fatal("derivation is not deterministic")
	}
}

func TestNewStealthAccount_ValidatesKeys(t *testing.T) {
	recipient, err := GenerateStealthKeys()
	if err != nil {
		t.Fatalf("GenerateStealthKeys: %v", err)
	}

	networkID := params.Mainnet.NetworkID()
	account, err := NewStealthAccount(recipient.View.Public, recipient.Spend.Public, networkID)
	if err != nil {
		t.Fatalf("NewStealthAccount: %v", err)
	}
	if account.Address != recipient.Address(networkID) {
		t.Fatal("descriptor address does not match key set address")
	}

	var identity [32]byte
	if _, err := NewStealthAccount(identity, recipient.Spend.Public, networkID); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("identity view key: want ErrInvalidKey, got %v", err)
	}
}
