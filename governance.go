package chert

import "context"

// GovernanceManager handles proposals and voting.
type GovernanceManager struct {
	client *Client
}

// GetProposals lists governance proposals, newest first.
func (g *GovernanceManager) GetProposals(ctx context.Context, limit int) ([]Proposal, error) {
	params := map[string]any{}
	if limit > 0 {
		params["limit"] = limit
	}
	var proposals []Proposal
	if err := g.client.rpcCall(ctx, "governance_getProposals", []any{params}, &proposals); err != nil {
		return nil, err
	}
	return proposals, nil
}

// GetProposal returns one proposal by ID.
func (g *GovernanceManager) GetProposal(ctx context.Context, proposalID string) (*Proposal, error) {
	if proposalID == "" {
		return nil, validationError("proposal_id", "proposal ID cannot be empty")
	}
	var proposal Proposal
	if err := g.client.rpcCall(ctx, "governance_getProposal", []any{proposalID}, &proposal); err != nil {
		return nil, err
	}
	return &proposal, nil
}

// CreateProposal submits a new proposal and returns its ID.
func (g *GovernanceManager) CreateProposal(ctx context.Context, title, description, proposer, fee string) (string, error) {
	if title == "" || description == "" {
		return "", validationError("proposal", "title and description are required")
	}

	params := map[string]any{
		"title":       title,
		"description": description,
		"proposer":    proposer,
		"fee":         fee,
	}
	var result struct {
		ProposalID string `json:"proposal_id"`
	}
	if err := g.client.rpcCall(ctx, "governance_createProposal", []any{params}, &result); err != nil {
		return "", err
	}
	if result.ProposalID == "" {
		return "", &Error{Code: CodeGovernance, Message: "invalid proposal creation response"}
	}
	return result.ProposalID, nil
}

// Vote casts a vote on a proposal and returns the tx hash.
func (g *GovernanceManager) Vote(ctx context.Context, proposalID, voter string, option VoteOption, fee string) (string, error) {
	if proposalID == "" {
		return "", validationError("proposal_id", "proposal ID cannot be empty")
	}
	if !option.Valid() {
		return "", validationError("option", "unknown vote option "+string(option))
	}

	params := map[string]any{
		"proposal_id": proposalID,
		"voter":       voter,
		"option":      string(option),
		"fee":         fee,
	}
	var result struct {
		TxHash string `json:"tx_hash"`
	}
	if err := g.client.rpcCall(ctx, "governance_vote", []any{params}, &result); err != nil {
		return "", err
	}
	if result.TxHash == "" {
		return "", &Error{Code: CodeGovernance, Message: "invalid vote response"}
	}
	return result.TxHash, nil
}

// ExecuteProposal executes a passed proposal and returns the tx hash.
func (g *GovernanceManager) ExecuteProposal(ctx context.Context, proposalID, executor, fee string) (string, error) {
	if proposalID == "" {
		return "", validationError("proposal_id", "proposal ID cannot be empty")
	}

	params := map[string]any{
		"proposal_id": proposalID,
		"executor":    executor,
		"fee":         fee,
	}
	var result struct {
		TxHash string `json:"tx_hash"`
	}
	if err := g.client.rpcCall(ctx, "governance_executeProposal", []any{params}, &result); err != nil {
		return "", err
	}
	if result.TxHash == "" {
		return "", &Error{Code: CodeGovernance, Message: "invalid proposal execution response"}
	}
	return result.TxHash, nil
}

// GetProposalVotes returns the current tally for a proposal.
func (g *GovernanceManager) GetProposalVotes(ctx context.Context, proposalID string) (*VoteTally, error) {
	if proposalID == "" {
		return nil, validationError("proposal_id", "proposal ID cannot be empty")
	}
	var tally VoteTally
	if err := g.client.rpcCall(ctx, "governance_getProposalVotes", []any{proposalID}, &tally); err != nil {
		return nil, err
	}
	return &tally, nil
}

// GetVoterVotes returns a voter's choices keyed by proposal ID.
func (g *GovernanceManager) GetVoterVotes(ctx context.Context, voter string) (map[string]VoteOption, error) {
	if voter == "" {
		return nil, validationError("voter", "voter address cannot be empty")
	}
	var votes map[string]VoteOption
	if err := g.client.rpcCall(ctx, "governance_getVoterVotes", []any{voter}, &votes); err != nil {
		return nil, err
	}
	return votes, nil
}
