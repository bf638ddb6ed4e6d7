package privacy

import (
	"errors"
	"strings"
	"testing"

	"github.com/chertnetwork/go-chert/protocol/params"
)

func TestGenerateKeyPair_PublicMatchesSecret(t *testing.T) {
	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if PublicFromSecret(kp.Secret) != kp.Public {
		t.Fatal("public key is not secret * basepoint")
	}

	other, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if kp.Secret == other.Secret {
		t.Fatal("two generated secrets are identical")
	}
}

func TestAddress_RoundTripAndChecksum(t *testing.T) {
	keys, err := GenerateStealthKeys()
	if err != nil {
		t.Fatalf("GenerateStealthKeys: %v", err)
	}

	networkID := params.Mainnet.NetworkID()
	addr := keys.Address(networkID)
	if addr == "" {
		t.Fatal("empty address")
	}

	spendPub, viewPub, err := ParseAddress(addr, networkID)
	if err != nil {
		t.Fatalf("ParseAddress: %v", err)
	}
	if spendPub != keys.Spend.Public || viewPub != keys.View.Public {
		t.Fatal("address round trip lost key material")
	}

	// A single-character typo must be rejected.
	mutated := mutateBase58Char(addr)
	if mutated == addr {
		t.Fatal("mutation produced identical address")
	}
	if _, _, err := ParseAddress(mutated, networkID); err == nil {
		t.Fatal("typo'd address accepted")
	}

	if _, _, err := ParseAddress("short", networkID); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("short address: want ErrInvalidKey, got %v", err)
	}
}

func TestAddress_ChecksumBoundToNetwork(t *testing.T) {
	keys, err := GenerateStealthKeys()
	if err != nil {
		t.Fatalf("GenerateStealthKeys: %v", err)
	}

	mainnetAddr := keys.Address(params.Mainnet.NetworkID())
	testnetAddr := keys.Address(params.Testnet.NetworkID())
	if mainnetAddr == testnetAddr {
		t.Fatal("same address on different networks")
	}

	// A mainnet address must not parse under another network's ID.
	if _, _, err := ParseAddress(mainnetAddr, params.Testnet.NetworkID()); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("cross-network address: want ErrInvalidKey, got %v", err)
	}
	if _, _, err := ParseAddress(testnetAddr, params.Testnet.NetworkID()); err != nil {
		t.Fatalf("ParseAddress on own network: %v", err)
	}
}

func TestDecodePublicKey_RoundTrip(t *testing.T) {
	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	encoded := EncodePublicKey(kp.Public)
	decoded, err := DecodePublicKey(encoded)
	if err != nil {
		t.Fatalf("DecodePublicKey: %v", err)
	}
	if decoded != kp.Public {
		t.Fatal("hex round trip lost the key")
	}
}

// mutateBase58Char flips one character of a base58 string to a different
// valid base58 character.
func mutateBase58Char(s string) string {
	const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	for i := len(s) - 1; i >= 0; i-- {
		for _, c := range alphabet {
			if byte(c) != s[i] {
				mutated := s[:i] + string(c) + s[i+1:]
				if mutated != s {
					return mutated
				}
			}
		}
	}
	return s
}

func TestKeyPair_WipeClearsSecret(t *testing.T) {
	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	kp.Wipe()
	if kp.Secret != [32]byte{} {
		t.Fatal("secret not zeroed")
	}
	if strings.TrimRight(EncodePublicKey(kp.Public), "0") == "" {
		t.Fatal("public half was wiped too")
	}
}
