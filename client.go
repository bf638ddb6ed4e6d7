package chert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
)

// Client talks to a Chert node over HTTP JSON-RPC. All cryptographic work
// happens client-side in the privacy package; the client only submits
// finished payloads and decodes typed responses.
//
// A Client is safe for concurrent use. There is no process-wide default
// client; construct one explicitly and pass it where needed.
type Client struct {
	cfg    Config
	http   *http.Client
	nextID atomic.Uint64

	Wallet     *WalletManager
	Privacy    *PrivacyManager
	Staking    *StakingManager
	Governance *GovernanceManager
}

// NewClient validates the config and builds a client.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
	c.Wallet = &WalletManager{client: c}
	c.Privacy = &PrivacyManager{client: c}
	c.Staking = &StakingManager{client: c}
	c.Governance = &GovernanceManager{client: c}
	return c, nil
}

// rpcCall performs a JSON-RPC call and decodes the result into out.
// Pass a nil out to discard the result.
func (c *Client) rpcCall(ctx context.Context, method string, rpcParams any, out any) error {
	req := rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  rpcParams,
		ID:      c.nextID.Add(1),
	}

	body, err := json.Marshal(req)
	if err != nil {
		return networkError("failed to encode request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return networkError("failed to build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	for k, v := range c.cfg.Headers {
		httpReq.Header.Set(k, v)
	}

	c.cfg.Logger.WithField("method", method).Debug("rpc call")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return timeoutError(method)
		}
		return networkError(fmt.Sprintf("rpc %s failed", method), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return networkError("failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Surface whatever structured error the node returned.
		var decoded rpcResponse
		if json.Unmarshal(raw, &decoded) == nil && decoded.Error != nil {
			return apiError(decoded.Error.Message, resp.StatusCode)
		}
		return apiError(fmt.Sprintf("HTTP %d: rpc %s failed", resp.StatusCode, method), resp.StatusCode)
	}

	var decoded rpcResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return validationError("rpc_response", "invalid response format")
	}
	if decoded.Error != nil {
		return apiError(decoded.Error.Message, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if len(decoded.Result) == 0 {
		return validationError("rpc_response", "missing result")
	}
	if err := json.Unmarshal(decoded.Result, out); err != nil {
		return validationError("rpc_response", "result does not match expected shape")
	}
	return nil
}

// GetNetworkStatus returns the remote network's current state.
func (c *Client) GetNetworkStatus(ctx context.Context) (*NetworkStatus, error) {
	var status NetworkStatus
	if err := c.rpcCall(ctx, "getNetworkStatus", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetLatestBlock returns the most recent block.
func (c *Client) GetLatestBlock(ctx context.Context) (*Block, error) {
	var block Block
	if err := c.rpcCall(ctx, "getLatestBlock", nil, &block); err != nil {
		return nil, err
	}
	return &block, nil
}

// GetBlock returns the block at the given height.
func (c *Client) GetBlock(ctx context.Context, height uint64) (*Block, error) {
	var block Block
	if err := c.rpcCall(ctx, "getBlock", []any{height}, &block); err != nil {
		return nil, err
	}
	return &block, nil
}

// GetTransaction returns a transaction by hash.
func (c *Client) GetTransaction(ctx context.Context, txHash string) (*Transaction, error) {
	if txHash == "" {
		return nil, validationError("tx_hash", "transaction hash cannot be empty")
	}
	var tx Transaction
	if err := c.rpcCall(ctx, "getTransaction", []any{txHash}, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// IsConnected probes the endpoint and reports reachability.
func (c *Client) IsConnected(ctx context.Context) bool {
	_, err := c.GetNetworkStatus(ctx)
	return err == nil
}
