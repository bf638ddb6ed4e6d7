package privacy

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/chertnetwork/go-chert/protocol/params"
)

// Memo envelope layout (before encryption):
// version(1) + length(1) + checksum(2) + payload(n) + random padding.
// The envelope is fixed-size so the ciphertext never reveals whether a
// memo is present or how long it is.

// EncryptMemo builds a memo envelope and encrypts it under the memo key
// derived from the transaction's shared secret.
func EncryptMemo(memo []byte, shared SharedSecret) ([params.MemoSize]byte, error) {
	envelope, err := buildMemoEnvelope(memo)
	if err != nil {
		return [params.MemoSize]byte{}, err
	}
	key := SecretToScalar(shared, LabelMemoEncrypt)
	mask := deriveMemoMask(key)
	var encrypted [params.MemoSize]byte
	for i := 0; i < params.MemoSize; i++ {
		encrypted[i] = envelope[i] ^ mask[i]
	}
	return encrypted, nil
}

// DecryptMemo decrypts and validates a memo envelope.
// Returns (nil, true) for an empty memo payload and (nil, false) when the
// envelope does not authenticate under this shared secret.
func DecryptMemo(encrypted [params.MemoSize]byte, shared SharedSecret) ([]byte, bool) {
	key := SecretToScalar(shared, LabelMemoEncrypt)
	mask := deriveMemoMask(key)
	var plain [params.MemoSize]byte
	for i := 0; i < params.MemoSize; i++ {
		plain[i] = encrypted[i] ^ mask[i]
	}
	if plain[0] != params.MemoEnvelopeVersion {
		return nil, false
	}
	length := int(plain[1])
	if length > params.MemoPayloadMax {
		return nil, false
	}
	payload := plain[4 : 4+length]
	checksum := memoChecksum(payload)
	if plain[2] != checksum[0] || plain[3] != checksum[1] {
		return nil, false
	}
	if length == 0 {
		return nil, true
	}
	out := make([]byte, length)
	copy(out, payload)
	return out, true
}

func buildMemoEnvelope(memo []byte) ([params.MemoSize]byte, error) {
	if len(memo) > params.MemoPayloadMax {
		return [params.MemoSize]byte{}, fmt.Errorf("%w: max %d bytes", ErrMemoTooLong, params.MemoPayloadMax)
	}
	var envelope [params.MemoSize]byte
	envelope[0] = params.MemoEnvelopeVersion
	envelope[1] = byte(len(memo))
	checksum := memoChecksum(memo)
	copy(envelope[2:4], checksum[:2])
	copy(envelope[4:], memo)

	// Random padding keeps empty memos indistinguishable from short ones.
	padStart := 4 + len(memo)
	if padStart < params.MemoSize {
		n, err := rand.Read(envelope[padStart:])
		if err != nil {
			return [params.MemoSize]byte{}, fmt.Errorf("%w: memo padding: %v", ErrKeyGeneration, err)
		}
		if n != params.MemoSize-padStart {
			return [params.MemoSize]byte{}, fmt.Errorf("%w: memo padding short read", ErrKeyGeneration)
		}
	}
	return envelope, nil
}

func memoChecksum(payload []byte) [32]byte {
	h := sha3.New256()
	h.Write([]byte("chert_memo_checksum"))
	var payloadLen [2]byte
	binary.LittleEndian.PutUint16(payloadLen[:], uint16(len(payload)))
	h.Write(payloadLen[:])
	h.Write(payload)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func deriveMemoMask(key [32]byte) [params.MemoSize]byte {
	h := sha3.New256()
	h.Write([]byte("chert_memo_mask"))
	h.Write(key[:])
	seed := h.Sum(nil)

	var mask [params.MemoSize]byte
	for i := 0; i < params.MemoSize/32; i++ {
		hi := sha3.New256()
		hi.Write(seed)
		var blockIndex [4]byte
		binary.LittleEndian.PutUint32(blockIndex[:], uint32(i))
		hi.Write(blockIndex[:])
		copy(mask[i*32:(i+1)*32], hi.Sum(nil))
	}
	return mask
}
