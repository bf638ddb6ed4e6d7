package chert

import (
	"context"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/chertnetwork/go-chert/privacy"
)

// WalletManager handles account operations and public transfers.
type WalletManager struct {
	client *Client
}

// CreateAccount generates a fresh keypair and derives its address.
func (w *WalletManager) CreateAccount() (*Account, error) {
	kp, err := privacy.GenerateKeyPair()
	if err != nil {
		return nil, wrapPrivacyError(err)
	}
	defer kp.Wipe()

	return &Account{
		Address:   GenerateAddress(kp.Public),
		PublicKey: privacy.EncodePublicKey(kp.Public),
		SecretKey: hex.EncodeToString(kp.Secret[:]),
	}, nil
}

// ImportAccount derives an account from a hex-encoded secret key.
func (w *WalletManager) ImportAccount(secretKey string) (*Account, error) {
	if len(secretKey) != 64 {
		return nil, validationError("secret_key", "secret key must be 64 hex characters")
	}
	raw, err := hex.DecodeString(secretKey)
	if err != nil {
		return nil, validationError("secret_key", "invalid hex encoding")
	}

	var secret [32]byte
	copy(secret[:], raw)
	pub := privacy.PublicFromSecret(secret)
	for i := range secret {
		secret[i] = 0
	}

	return &Account{
		Address:   GenerateAddress(pub),
		PublicKey: privacy.EncodePublicKey(pub),
		SecretKey: secretKey,
	}, nil
}

// WatchOnlyAccount builds an account that can be observed but not spent.
func (w *WalletManager) WatchOnlyAccount(publicKey string) (*Account, error) {
	pub, err := privacy.DecodePublicKey(publicKey)
	if err != nil {
		return nil, wrapPrivacyError(err)
	}
	return &Account{
		Address:   GenerateAddress(pub),
		PublicKey: publicKey,
	}, nil
}

// GetBalance fetches an account's balance.
func (w *WalletManager) GetBalance(ctx context.Context, address string) (*Balance, error) {
	if address == "" {
		return nil, validationError("address", "address cannot be empty")
	}
	var balance Balance
	if err := w.client.rpcCall(ctx, "getBalance", []any{address}, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// SendTransaction signs and submits a public transfer, returning its hash.
func (w *WalletManager) SendTransaction(ctx context.Context, req TransactionRequest, account *Account) (string, error) {
	if account == nil || account.SecretKey == "" {
		return "", validationError("account", "account does not have a secret key")
	}
	if err := w.validateRequest(req); err != nil {
		return "", err
	}

	signature, err := w.signRequest(req, account.SecretKey)
	if err != nil {
		return "", err
	}

	payload := map[string]any{
		"sender":    account.Address,
		"recipient": req.To,
		"amount":    req.Amount,
		"fee":       req.Fee,
		"nonce":     req.Nonce,
		"signature": signature,
	}
	if req.Memo != "" {
		payload["memo"] = req.Memo
	}

	var result struct {
		Hash string `json:"hash"`
	}
	if err := w.client.rpcCall(ctx, "sendTransaction", []any{payload}, &result); err != nil {
		return "", err
	}
	if result.Hash == "" {
		return "", &Error{Code: CodeTransaction, Message: "invalid transaction response"}
	}
	return result.Hash, nil
}

// EstimateFee asks the node for a fee estimate.
func (w *WalletManager) EstimateFee(ctx context.Context, req TransactionRequest) (*Fee, error) {
	if err := w.validateRequest(req); err != nil {
		return nil, err
	}
	var fee Fee
	if err := w.client.rpcCall(ctx, "estimateFee", []any{req}, &fee); err != nil {
		return nil, err
	}
	return &fee, nil
}

// WaitForTransaction polls until the transaction confirms, fails, or the
// context expires. A failed or rejected transaction is a terminal error.
func (w *WalletManager) WaitForTransaction(ctx context.Context, txHash string, interval time.Duration) (*Transaction, error) {
	if txHash == "" {
		return nil, validationError("tx_hash", "transaction hash cannot be empty")
	}
	if interval <= 0 {
		interval = 2 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		tx, err := w.client.GetTransaction(ctx, txHash)
		if err == nil {
			switch tx.Status {
			case StatusConfirmed:
				return tx, nil
			case StatusFailed, StatusRejected:
				return nil, &Error{Code: CodeTransaction, Message: "transaction " + string(tx.Status)}
			}
		}
		// Not found yet or still pending; keep polling.

		select {
		case <-ctx.Done():
			return nil, timeoutError("waitForTransaction")
		case <-ticker.C:
		}
	}
}

func (w *WalletManager) validateRequest(req TransactionRequest) error {
	if req.To == "" {
		return validationError("to", "recipient address cannot be empty")
	}
	if _, err := ParseAmount(req.Amount); err != nil {
		return err
	}
	if req.Fee != "" {
		if _, err := ParseAmount(req.Fee); err != nil {
			return validationError("fee", "invalid fee format")
		}
	}
	return nil
}

func (w *WalletManager) signRequest(req TransactionRequest, secretKey string) (string, error) {
	raw, err := hex.DecodeString(secretKey)
	if err != nil || len(raw) != 32 {
		return "", validationError("secret_key", "invalid secret key")
	}
	var secret [32]byte
	copy(secret[:], raw)
	defer func() {
		for i := range secret {
			secret[i] = 0
		}
	}()

	h := sha3.New256()
	h.Write([]byte("chert_transfer"))
	h.Write([]byte(req.To))
	h.Write([]byte(req.Amount))
	h.Write([]byte(req.Fee))
	h.Write([]byte(req.Memo))
	var nonce [8]byte
	for i := 0; i < 8; i++ {
		nonce[i] = byte(req.Nonce >> (8 * i))
	}
	h.Write(nonce[:])

	sig, err := privacy.Sign(secret, h.Sum(nil))
	if err != nil {
		return "", wrapPrivacyError(err)
	}
	return hex.EncodeToString(sig), nil
}

// GenerateAddress derives a deterministic address from a public key.
func GenerateAddress(pub [32]byte) string {
	h := sha3.New256()
	h.Write([]byte("chert_address"))
	h.Write(pub[:])
	return "chert_" + hex.EncodeToString(h.Sum(nil))[:40]
}
