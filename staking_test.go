package chert

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaking_Delegate(t *testing.T) {
	client, _ := newTestClient(t, func(method string, rpcParams json.RawMessage) (any, *rpcError) {
		require.Equal(t, "staking_delegate", method)
		var args []map[string]any
		require.NoError(t, json.Unmarshal(rpcParams, &args))
		assert.Equal(t, "val1", args[0]["validator_address"])
		assert.Equal(t, "100", args[0]["amount"])
		return map[string]any{"tx_hash": "stake01"}, nil
	})

	hash, err := client.Staking.Delegate(context.Background(), "addr1", "val1", "100", "0.01")
	require.NoError(t, err)
	assert.Equal(t, "stake01", hash)

	_, err = client.Staking.Delegate(context.Background(), "addr1", "", "100", "")
	assert.True(t, IsCode(err, CodeValidation))

	_, err = client.Staking.Delegate(context.Background(), "addr1", "val1", "-5", "")
	assert.True(t, IsCode(err, CodeValidation))
}

func TestStaking_GetValidators(t *testing.T) {
	client, _ := newTestClient(t, func(method string, _ json.RawMessage) (any, *rpcError) {
		require.Equal(t, "getValidators", method)
		return []map[string]any{
			{"address": "val1", "status": "active", "voting_power": "5000"},
			{"address": "val2", "status": "jailed", "voting_power": "10"},
		}, nil
	})

	validators, err := client.Staking.GetValidators(context.Background())
	require.NoError(t, err)
	require.Len(t, validators, 2)
	assert.Equal(t, "val1", validators[0].Address)
	assert.Equal(t, ValidatorJailed, validators[1].Status)
}
