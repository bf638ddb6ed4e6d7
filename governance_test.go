package chert

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGovernance_GetProposals(t *testing.T) {
	client, _ := newTestClient(t, func(method string, rpcParams json.RawMessage) (any, *rpcError) {
		require.Equal(t, "governance_getProposals", method)
		var args []map[string]any
		require.NoError(t, json.Unmarshal(rpcParams, &args))
		assert.Equal(t, float64(5), args[0]["limit"])
		return []map[string]any{
			{"id": "prop1", "title": "raise the block size", "status": "voting"},
			{"id": "prop2", "title": "reduce fees", "status": "passed"},
		}, nil
	})

	proposals, err := client.Governance.GetProposals(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, proposals, 2)
	assert.Equal(t, "prop1", proposals[0].ID)
	assert.Equal(t, ProposalPassed, proposals[1].Status)
}

func TestGovernance_GetProposal(t *testing.T) {
	client, _ := newTestClient(t, func(method string, _ json.RawMessage) (any, *rpcError) {
		require.Equal(t, "governance_getProposal", method)
		return map[string]any{
			"id":     "prop1",
			"title":  "raise the block size",
			"status": "voting",
			"tally":  map[string]any{"yes": "10", "no": "2"},
		}, nil
	})

	p, err := client.Governance.GetProposal(context.Background(), "prop1")
	require.NoError(t, err)
	assert.Equal(t, "raise the block size", p.Title)
	assert.Equal(t, ProposalVoting, p.Status)
	assert.Equal(t, "10", p.Tally.Yes)

	_, err = client.Governance.GetProposal(context.Background(), "")
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeValidation))
}

func TestGovernance_Vote(t *testing.T) {
	client, _ := newTestClient(t, func(method string, rpcParams json.RawMessage) (any, *rpcError) {
		require.Equal(t, "governance_vote", method)
		var args []map[string]any
		require.NoError(t, json.Unmarshal(rpcParams, &args))
		assert.Equal(t, "yes", args[0]["option"])
		return map[string]any{"tx_hash": "vote01"}, nil
	})

	hash, err := client.Governance.Vote(context.Background(), "prop1", "addr1", VoteYes, "")
	require.NoError(t, err)
	assert.Equal(t, "vote01", hash)

	_, err = client.Governance.Vote(context.Background(), "prop1", "addr1", "maybe", "")
	assert.True(t, IsCode(err, CodeValidation))

	_, err = client.Governance.Vote(context.Background(), "", "addr1", VoteNo, "")
	assert.True(t, IsCode(err, CodeValidation))
}

func TestGovernance_CreateProposal(t *testing.T) {
	client, _ := newTestClient(t, func(method string, rpcParams json.RawMessage) (any, *rpcError) {
		require.Equal(t, "governance_createProposal", method)
		var args []map[string]any
		require.NoError(t, json.Unmarshal(rpcParams, &args))
		assert.Equal(t, "raise the block size", args[0]["title"])
		return map[string]any{"proposal_id": "prop9"}, nil
	})

	id, err := client.Governance.CreateProposal(context.Background(), "raise the block size", "doubles the cap", "addr1", "1")
	require.NoError(t, err)
	assert.Equal(t, "prop9", id)

	_, err = client.Governance.CreateProposal(context.Background(), "", "doubles the cap", "addr1", "1")
	assert.True(t, IsCode(err, CodeValidation))
}

func TestGovernance_ExecuteProposal(t *testing.T) {
	client, _ := newTestClient(t, func(method string, rpcParams json.RawMessage) (any, *rpcError) {
		require.Equal(t, "governance_executeProposal", method)
		var args []map[string]any
		require.NoError(t, json.Unmarshal(rpcParams, &args))
		assert.Equal(t, "prop1", args[0]["proposal_id"])
		assert.Equal(t, "addr1", args[0]["executor"])
		return map[string]any{"tx_hash": "exec01"}, nil
	})

	hash, err := client.Governance.ExecuteProposal(context.Background(), "prop1", "addr1", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "exec01", hash)

	_, err = client.Governance.ExecuteProposal(context.Background(), "", "addr1", "0.5")
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeValidation))
}

func TestGovernance_ExecuteProposalBadResponse(t *testing.T) {
	client, _ := newTestClient(t, func(string, json.RawMessage) (any, *rpcError) {
		return map[string]any{}, nil
	})

	_, err := client.Governance.ExecuteProposal(context.Background(), "prop1", "addr1", "0.5")
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeGovernance))
}

func TestGovernance_GetProposalVotes(t *testing.T) {
	client, _ := newTestClient(t, func(method string, _ json.RawMessage) (any, *rpcError) {
		require.Equal(t, "governance_getProposalVotes", method)
		return map[string]any{"yes": "12", "no": "3", "abstain": "1", "no_with_veto": "0"}, nil
	})

	tally, err := client.Governance.GetProposalVotes(context.Background(), "prop1")
	require.NoError(t, err)
	assert.Equal(t, "12", tally.Yes)
	assert.Equal(t, "0", tally.NoWithVeto)

	_, err = client.Governance.GetProposalVotes(context.Background(), "")
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeValidation))
}

func TestGovernance_GetVoterVotes(t *testing.T) {
	client, _ := newTestClient(t, func(method string, _ json.RawMessage) (any, *rpcError) {
		require.Equal(t, "governance_getVoterVotes", method)
		return map[string]any{"prop1": "yes", "prop2": "no_with_veto"}, nil
	})

	votes, err := client.Governance.GetVoterVotes(context.Background(), "addr1")
	require.NoError(t, err)
	assert.Equal(t, VoteYes, votes["prop1"])
	assert.Equal(t, VoteNoWithVeto, votes["prop2"])

	_, err = client.Governance.GetVoterVotes(context.Background(), "")
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeValidation))
}
