package privacy

import (
	"errors"
	"testing"
)

func TestSchnorr_SignVerify(t *testing.T) {
	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	msg := []byte("payload under test")
	sig, err := Sign(kp.Secret, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if len(sig) != SignatureSize {
		t.Fatalf("signature size: got %d want %d", len(sig), SignatureSize)
	}

	if err := Verify(kp.Public, msg, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestSchnorr_RejectsTampering(t *testing.T) {
	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	other, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	msg := []byte("payload under test")
	sig, err := Sign(kp.Secret, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if err := Verify(kp.Public, []byte("different payload"), sig); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("modified message: want ErrInvalidSignature, got %v", err)
	}
	if err := Verify(other.Public, msg, sig); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("wrong key: want ErrInvalidSignature, got %v", err)
	}

	tampered := append([]byte(nil), sig...)
	tampered[40] ^= 0x01
	if err := Verify(kp.Public, msg, tampered); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("tampered signature: want ErrInvalidSignature, got %v", err)
	}

	if err := Verify(kp.Public, msg, sig[:40]); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("truncated signature: want ErrInvalidSignature, got %v", err)
	}
}

func TestSchnorr_DeterministicNonce(t *testing.T) {
	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	msg := []byte("same message")
	first, err := Sign(kp.Secret, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	second, err := Sign(kp.Secret, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if string(first) != string(second) {
		t.Fatal("signatures over the same message differ; nonce is not deterministic")
	}
}
