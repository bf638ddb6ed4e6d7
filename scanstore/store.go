// Package scanstore persists stealth scan results between sessions so a
// wallet does not have to rescan the whole chain on every start. Values
// are sealed with an Argon2id-derived AES-GCM key; key material itself is
// never written here.
package scanstore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
	"golang.org/x/crypto/argon2"

	"github.com/chertnetwork/go-chert/privacy"
)

var (
	bucketOutputs = []byte("outputs") // one_time_pub -> sealed output JSON
	bucketSpent   = []byte("spent")   // one_time_pub -> spent height (plaintext, public data)
	bucketMeta    = []byte("meta")    // salt, synced height

	metaKeySalt   = []byte("salt")
	metaKeyHeight = []byte("synced_height")
)

const (
	saltLen = 16
	keyLen  = 32

	kdfTime    = 1
	kdfMemory  = 64 * 1024
	kdfThreads = 4
)

// Store is a bbolt-backed scan state cache.
type Store struct {
	db  *bolt.DB
	key []byte
}

// Open creates or opens a store at path. The passphrase seals output
// records; opening an existing store with the wrong passphrase fails.
func Open(path string, passphrase []byte) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open scan store: %w", err)
	}

	var salt []byte
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketOutputs, bucketSpent, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		meta := tx.Bucket(bucketMeta)
		existing := meta.Get(metaKeySalt)
		if existing != nil {
			salt = append([]byte(nil), existing...)
			return nil
		}
		salt = make([]byte, saltLen)
		if _, err := rand.Read(salt); err != nil {
			return err
		}
		return meta.Put(metaKeySalt, salt)
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize scan store: %w", err)
	}

	s := &Store{
		db:  db,
		key: argon2.IDKey(passphrase, salt, kdfTime, kdfMemory, kdfThreads, keyLen),
	}

	// Verify the passphrase against any existing record so a wrong
	// passphrase fails at open time, not at first read.
	if err := s.verifyKey(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database and wipes the derived key.
func (s *Store) Close() error {
	for i := range s.key {
		s.key[i] = 0
	}
	return s.db.Close()
}

// PutOutput seals and stores an owned output keyed by its one-time public key.
func (s *Store) PutOutput(out *privacy.OwnedOutput) error {
	plain, err := json.Marshal(out)
	if err != nil {
		return err
	}
	sealed, err := s.seal(plain)
	for i := range plain {
		plain[i] = 0
	}
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketOutputs).Put(out.OneTimePubKey[:], sealed)
	})
}

// Outputs decrypts and returns all stored outputs.
func (s *Store) Outputs() ([]*privacy.OwnedOutput, error) {
	var outputs []*privacy.OwnedOutput
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketOutputs).ForEach(func(k, v []byte) error {
			plain, err := s.open(v)
			if err != nil {
				return fmt.Errorf("failed to unseal output: %w", err)
			}
			var out privacy.OwnedOutput
			if err := json.Unmarshal(plain, &out); err != nil {
				return err
			}
			for i := range plain {
				plain[i] = 0
			}
			outputs = append(outputs, &out)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return outputs, nil
}

// MarkSpent records that an output was spent at the given height.
func (s *Store) MarkSpent(oneTimePub [32]byte, height uint64) error {
	var h [8]byte
	binary.BigEndian.PutUint64(h[:], height)
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSpent).Put(oneTimePub[:], h[:])
	})
}

// IsSpent reports whether an output has been marked spent.
func (s *Store) IsSpent(oneTimePub [32]byte) (bool, error) {
	var spent bool
	err := s.db.View(func(tx *bolt.Tx) error {
		spent = tx.Bucket(bucketSpent).Get(oneTimePub[:]) != nil
		return nil
	})
	return spent, err
}

// SyncedHeight returns the last fully scanned block height.
func (s *Store) SyncedHeight() (uint64, error) {
	var height uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketMeta).Get(metaKeyHeight)
		if len(v) == 8 {
			height = binary.BigEndian.Uint64(v)
		}
		return nil
	})
	return height, err
}

// SetSyncedHeight records scan progress.
func (s *Store) SetSyncedHeight(height uint64) error {
	var h [8]byte
	binary.BigEndian.PutUint64(h[:], height)
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(metaKeyHeight, h[:])
	})
}

func (s *Store) verifyKey() error {
	return s.db.View(func(tx *bolt.Tx) error {
		k, v := tx.Bucket(bucketOutputs).Cursor().First()
		if k == nil {
			return nil
		}
		if _, err := s.open(v); err != nil {
			return fmt.Errorf("wrong passphrase for scan store: %w", err)
		}
		return nil
	})
}

// seal encrypts a value as nonce || ciphertext.
func (s *Store) seal(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (s *Store) open(sealed []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(sealed) < gcm.NonceSize() {
		return nil, fmt.Errorf("sealed value too short")
	}
	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
