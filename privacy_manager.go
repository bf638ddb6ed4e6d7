package chert

import (
	"context"
	"encoding/hex"

	"github.com/chertnetwork/go-chert/privacy"
)

// SubmissionAdapter is the boundary between the cryptographic core and the
// transport. Submit sends a finished payload; Poll reports confirmation
// progress. Neither retries; retry and backoff policy belong to the caller.
type SubmissionAdapter interface {
	Submit(ctx context.Context, tx *privacy.PrivateTransaction) (string, error)
	Poll(ctx context.Context, txID string) (*SubmissionStatus, error)
}

// PrivacyManager exposes stealth addressing and private transfers.
type PrivacyManager struct {
	client *Client
}

// PrivateTransferRequest describes a private transfer. The recipient can be
// given either as a stealth address or as the two hex public keys.
type PrivateTransferRequest struct {
	RecipientAddress  string
	RecipientViewKey  string
	RecipientSpendKey string

	Amount string
	Fee    string
	Memo   string
	Nonce  uint64
	Level  privacy.PrivacyLevel
}

// GenerateStealthKeys creates a new (view, spend) identity.
func (p *PrivacyManager) GenerateStealthKeys() (*privacy.StealthKeys, error) {
	keys, err := privacy.GenerateStealthKeys()
	if err != nil {
		return nil, wrapPrivacyError(err)
	}
	return keys, nil
}

// CreateStealthAccount assembles a recipient descriptor from published keys.
func (p *PrivacyManager) CreateStealthAccount(viewKey, spendKey string) (*privacy.StealthAccount, error) {
	if viewKey == "" || spendKey == "" {
		return nil, validationError("keys", "view key and spend public key are required")
	}
	viewPub, err := privacy.DecodePublicKey(viewKey)
	if err != nil {
		return nil, wrapPrivacyError(err)
	}
	spendPub, err := privacy.DecodePublicKey(spendKey)
	if err != nil {
		return nil, wrapPrivacyError(err)
	}
	account, err := privacy.NewStealthAccount(viewPub, spendPub, p.client.cfg.Network.NetworkID())
	if err != nil {
		return nil, wrapPrivacyError(err)
	}
	return account, nil
}

// BuildPrivateTransaction validates the request, resolves the recipient,
// and assembles an unsigned private transaction.
func (p *PrivacyManager) BuildPrivateTransaction(req PrivateTransferRequest) (*privacy.PrivateTransaction, error) {
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	var fee uint64
	if req.Fee != "" {
		fee, err = ParseAmount(req.Fee)
		if err != nil {
			return nil, validationError("fee", "invalid fee format")
		}
	}

	spendPub, viewPub, err := p.resolveRecipient(req)
	if err != nil {
		return nil, err
	}

	level := req.Level
	if level == "" {
		level = privacy.PrivacyStealth
	}

	tx, err := privacy.BuildPrivateTransaction(privacy.BuildParams{
		RecipientSpendPub: spendPub,
		RecipientViewPub:  viewPub,
		Amount:            amount,
		Fee:               fee,
		Memo:              []byte(req.Memo),
		Nonce:             req.Nonce,
		Level:             level,
	})
	if err != nil {
		return nil, wrapPrivacyError(err)
	}
	return tx, nil
}

// SendPrivateTransaction builds, signs, and submits a private transfer,
// returning the transaction ID.
func (p *PrivacyManager) SendPrivateTransaction(ctx context.Context, req PrivateTransferRequest, senderSecretKey string) (string, error) {
	tx, err := p.BuildPrivateTransaction(req)
	if err != nil {
		return "", err
	}

	raw, err := hex.DecodeString(senderSecretKey)
	if err != nil || len(raw) != 32 {
		return "", validationError("secret_key", "invalid secret key")
	}
	var secret [32]byte
	copy(secret[:], raw)
	err = tx.Sign(secret)
	for i := range secret {
		secret[i] = 0
	}
	if err != nil {
		return "", wrapPrivacyError(err)
	}

	return p.client.Submit(ctx, tx)
}

// GetOutputs fetches the chain outputs in [fromHeight, toHeight] for
// client-side scanning. The node cannot tell which outputs, if any, the
// caller owns.
func (p *PrivacyManager) GetOutputs(ctx context.Context, fromHeight, toHeight uint64) ([]privacy.TxOutput, error) {
	if toHeight < fromHeight {
		return nil, validationError("height_range", "to_height must not precede from_height")
	}

	var raw []struct {
		TxID          string `json:"tx_id"`
		OneTimePubKey string `json:"one_time_pub_key"`
		EphemeralPub  string `json:"ephemeral_pub"`
		EncryptedMemo string `json:"encrypted_memo"`
		Amount        uint64 `json:"amount"`
		BlockHeight   uint64 `json:"block_height"`
	}
	if err := p.client.rpcCall(ctx, "getOutputs", []any{fromHeight, toHeight}, &raw); err != nil {
		return nil, err
	}

	outputs := make([]privacy.TxOutput, 0, len(raw))
	for _, r := range raw {
		out := privacy.TxOutput{
			TxID:        r.TxID,
			Amount:      r.Amount,
			BlockHeight: r.BlockHeight,
		}
		oneTime, err := privacy.DecodePublicKey(r.OneTimePubKey)
		if err != nil {
			continue // skip malformed entries rather than aborting the scan
		}
		eph, err := privacy.DecodePublicKey(r.EphemeralPub)
		if err != nil {
			continue
		}
		out.OneTimePubKey = oneTime
		out.EphemeralPub = eph
		if memo, err := hex.DecodeString(r.EncryptedMemo); err == nil && len(memo) == len(out.EncryptedMemo) {
			copy(out.EncryptedMemo[:], memo)
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

func (p *PrivacyManager) resolveRecipient(req PrivateTransferRequest) (spendPub, viewPub [32]byte, err error) {
	if req.RecipientAddress != "" {
		spendPub, viewPub, err = privacy.ParseAddress(req.RecipientAddress, p.client.cfg.Network.NetworkID())
		if err != nil {
			return spendPub, viewPub, wrapPrivacyError(err)
		}
		return spendPub, viewPub, nil
	}
	if req.RecipientViewKey == "" || req.RecipientSpendKey == "" {
		return spendPub, viewPub, validationError("recipient", "recipient address or view+spend keys required")
	}
	viewPub, err = privacy.DecodePublicKey(req.RecipientViewKey)
	if err != nil {
		return spendPub, viewPub, wrapPrivacyError(err)
	}
	spendPub, err = privacy.DecodePublicKey(req.RecipientSpendKey)
	if err != nil {
		return spendPub, viewPub, wrapPrivacyError(err)
	}
	return spendPub, viewPub, nil
}

// Submit implements SubmissionAdapter: it sends the signed payload to the
// node and returns the assigned transaction ID.
func (c *Client) Submit(ctx context.Context, tx *privacy.PrivateTransaction) (string, error) {
	if len(tx.Signature) == 0 {
		return "", validationError("transaction", "transaction is unsigned")
	}

	payload := map[string]any{
		"one_time_pub_key": hex.EncodeToString(tx.Destination.OneTimePubKey[:]),
		"ephemeral_pub":    hex.EncodeToString(tx.Destination.EphemeralPub[:]),
		"destination":      tx.Destination.Encoded,
		"amount":           FormatAmount(tx.Amount),
		"fee":              FormatAmount(tx.Fee),
		"nonce":            tx.Nonce,
		"privacy_level":    string(tx.Level),
		"encrypted_memo":   hex.EncodeToString(tx.EncryptedMemo[:]),
		"sender_pub":       hex.EncodeToString(tx.SenderPub[:]),
		"signature":        hex.EncodeToString(tx.Signature),
	}

	var result struct {
		TxID string `json:"tx_id"`
	}
	if err := c.rpcCall(ctx, "sendPrivateTransaction", []any{payload}, &result); err != nil {
		return "", err
	}
	if result.TxID == "" {
		return "", &Error{Code: CodePrivacy, Message: "invalid private transaction response"}
	}
	return result.TxID, nil
}

// Poll implements SubmissionAdapter: it reports the confirmation state of
// a submitted transaction.
func (c *Client) Poll(ctx context.Context, txID string) (*SubmissionStatus, error) {
	if txID == "" {
		return nil, validationError("tx_id", "transaction ID cannot be empty")
	}
	var status SubmissionStatus
	if err := c.rpcCall(ctx, "getTransactionStatus", []any{txID}, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
