package chert

import (
	"encoding/json"
	"time"
)

// Account is a ledger account. SecretKey is only populated for accounts
// created or imported locally and never leaves the process.
type Account struct {
	Address   string `json:"address"`
	PublicKey string `json:"public_key"`
	SecretKey string `json:"-"`
}

// Balance is the ledger's view of an account's funds, as decimal strings.
type Balance struct {
	Available string `json:"available"`
	Pending   string `json:"pending"`
	Total     string `json:"total"`
}

// TransactionStatus is the remote confirmation state of a transaction.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusConfirmed TransactionStatus = "confirmed"
	StatusFailed    TransactionStatus = "failed"
	StatusRejected  TransactionStatus = "rejected"
)

// TransactionRequest describes a public transfer.
type TransactionRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
	Fee    string `json:"fee"`
	Memo   string `json:"memo,omitempty"`
	Nonce  uint64 `json:"nonce,omitempty"`
}

// Transaction is a transaction as reported by the ledger.
type Transaction struct {
	Hash        string            `json:"hash"`
	From        string            `json:"from"`
	To          string            `json:"to"`
	Amount      string            `json:"amount"`
	Fee         string            `json:"fee"`
	Memo        string            `json:"memo,omitempty"`
	BlockHeight uint64            `json:"block_height,omitempty"`
	Status      TransactionStatus `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	Nonce       uint64            `json:"nonce"`
}

// SubmissionStatus is the poll result for a submitted transaction.
type SubmissionStatus struct {
	Status        TransactionStatus `json:"status"`
	Confirmations int               `json:"confirmations"`
}

// NetworkStatus describes the remote network's current state.
type NetworkStatus struct {
	BlockHeight      uint64    `json:"block_height"`
	NetworkID        string    `json:"network_id"`
	ConsensusVersion string    `json:"consensus_version"`
	PeerCount        int       `json:"peer_count"`
	Syncing          bool      `json:"syncing"`
	LatestBlockTime  time.Time `json:"latest_block_time"`
}

// Block is a block summary.
type Block struct {
	Height           uint64        `json:"height"`
	Hash             string        `json:"hash"`
	PreviousHash     string        `json:"previous_hash"`
	Timestamp        time.Time     `json:"timestamp"`
	TransactionCount int           `json:"transaction_count"`
	Proposer         string        `json:"proposer"`
	Transactions     []Transaction `json:"transactions,omitempty"`
}

// Fee is a fee estimate.
type Fee struct {
	Amount   string `json:"amount"`
	GasLimit uint64 `json:"gas_limit,omitempty"`
	GasPrice string `json:"gas_price,omitempty"`
}

// ValidatorStatus is a validator's participation state.
type ValidatorStatus string

const (
	ValidatorActive   ValidatorStatus = "active"
	ValidatorInactive ValidatorStatus = "inactive"
	ValidatorJailed   ValidatorStatus = "jailed"
)

// Validator describes a staking validator.
type Validator struct {
	Address        string          `json:"address"`
	Name           string          `json:"name"`
	VotingPower    string          `json:"voting_power"`
	Commission     string          `json:"commission"`
	Status         ValidatorStatus `json:"status"`
	TotalDelegated string          `json:"total_delegated"`
	DelegatorCount int             `json:"delegator_count"`
}

// Delegation is a delegator's stake with one validator.
type Delegation struct {
	ValidatorAddress string    `json:"validator_address"`
	Amount           string    `json:"amount"`
	Rewards          string    `json:"rewards"`
	Timestamp        time.Time `json:"timestamp"`
}

// StakingRewards summarizes accumulated rewards.
type StakingRewards struct {
	Total     string     `json:"total"`
	Available string     `json:"available"`
	Pending   string     `json:"pending"`
	LastClaim *time.Time `json:"last_claim,omitempty"`
}

// ProposalStatus is a governance proposal's lifecycle state.
type ProposalStatus string

const (
	ProposalVoting   ProposalStatus = "voting"
	ProposalPassed   ProposalStatus = "passed"
	ProposalRejected ProposalStatus = "rejected"
	ProposalExecuted ProposalStatus = "executed"
	ProposalFailed   ProposalStatus = "failed"
)

// VoteTally summarizes votes on a proposal.
type VoteTally struct {
	Yes        string `json:"yes"`
	No         string `json:"no"`
	Abstain    string `json:"abstain"`
	NoWithVeto string `json:"no_with_veto"`
}

// Proposal is a governance proposal.
type Proposal struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Proposer        string         `json:"proposer"`
	Status          ProposalStatus `json:"status"`
	VotingStartTime time.Time      `json:"voting_start_time"`
	VotingEndTime   time.Time      `json:"voting_end_time"`
	Tally           VoteTally      `json:"tally"`
}

// VoteOption is a governance vote choice.
type VoteOption string

const (
	VoteYes        VoteOption = "yes"
	VoteNo         VoteOption = "no"
	VoteAbstain    VoteOption = "abstain"
	VoteNoWithVeto VoteOption = "no_with_veto"
)

// Valid reports whether v is a known vote option.
func (v VoteOption) Valid() bool {
	switch v {
	case VoteYes, VoteNo, VoteAbstain, VoteNoWithVeto:
		return true
	}
	return false
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
	ID      uint64 `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
	ID      uint64          `json:"id"`
}
