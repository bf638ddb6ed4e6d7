package chert

import "context"

// StakingManager handles delegation and reward operations.
type StakingManager struct {
	client *Client
}

// GetValidators returns the validator set.
func (s *StakingManager) GetValidators(ctx context.Context) ([]Validator, error) {
	var validators []Validator
	if err := s.client.rpcCall(ctx, "getValidators", nil, &validators); err != nil {
		return nil, err
	}
	return validators, nil
}

// GetValidator returns one validator by address.
func (s *StakingManager) GetValidator(ctx context.Context, address string) (*Validator, error) {
	if address == "" {
		return nil, validationError("address", "address cannot be empty")
	}
	var validator Validator
	if err := s.client.rpcCall(ctx, "getValidator", []any{address}, &validator); err != nil {
		return nil, err
	}
	return &validator, nil
}

// Delegate stakes tokens with a validator and returns the tx hash.
func (s *StakingManager) Delegate(ctx context.Context, delegator, validator, amount, fee string) (string, error) {
	if validator == "" {
		return "", validationError("validator_address", "validator address cannot be empty")
	}
	if _, err := ParseAmount(amount); err != nil {
		return "", err
	}

	params := map[string]any{
		"delegator":         delegator,
		"validator_address": validator,
		"amount":            amount,
		"fee":               fee,
	}
	return s.txHashCall(ctx, "staking_delegate", params, CodeStaking)
}

// Undelegate removes stake from a validator and returns the tx hash.
func (s *StakingManager) Undelegate(ctx context.Context, delegator, validator, amount, fee string) (string, error) {
	if validator == "" {
		return "", validationError("validator_address", "validator address cannot be empty")
	}
	if _, err := ParseAmount(amount); err != nil {
		return "", err
	}

	params := map[string]any{
		"delegator": delegator,
		"validator": validator,
		"amount":    amount,
		"fee":       fee,
	}
	return s.txHashCall(ctx, "staking_undelegate", params, CodeStaking)
}

// GetDelegations lists an account's delegations.
func (s *StakingManager) GetDelegations(ctx context.Context, delegator string) ([]Delegation, error) {
	if delegator == "" {
		return nil, validationError("delegator", "delegator address cannot be empty")
	}
	var delegations []Delegation
	if err := s.client.rpcCall(ctx, "getDelegations", []any{delegator}, &delegations); err != nil {
		return nil, err
	}
	return delegations, nil
}

// GetRewards returns accumulated staking rewards for an account.
func (s *StakingManager) GetRewards(ctx context.Context, delegator string) (*StakingRewards, error) {
	if delegator == "" {
		return nil, validationError("delegator", "delegator address cannot be empty")
	}
	var rewards StakingRewards
	if err := s.client.rpcCall(ctx, "getStakingRewards", []any{delegator}, &rewards); err != nil {
		return nil, err
	}
	return &rewards, nil
}

// ClaimRewards claims pending rewards from a validator.
func (s *StakingManager) ClaimRewards(ctx context.Context, delegator, validator, fee string) (string, error) {
	if validator == "" {
		return "", validationError("validator_address", "validator address cannot be empty")
	}
	params := map[string]any{
		"delegator": delegator,
		"validator": validator,
		"fee":       fee,
	}
	return s.txHashCall(ctx, "staking_claimRewards", params, CodeStaking)
}

func (s *StakingManager) txHashCall(ctx context.Context, method string, params map[string]any, failCode ErrorCode) (string, error) {
	var result struct {
		TxHash string `json:"tx_hash"`
	}
	if err := s.client.rpcCall(ctx, method, []any{params}, &result); err != nil {
		return "", err
	}
	if result.TxHash == "" {
		return "", &Error{Code: failCode, Message: "invalid " + method + " response"}
	}
	return result.TxHash, nil
}
