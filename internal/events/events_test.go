package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	env := NewEnvelope(TypeFundsSplit, "0xabc", FundsSplit{Sender: "0x1", Amount: 11, Half: 5, Remainder: 1}, at)

	assert.NotEmpty(t, env.EventID)
	assert.Equal(t, time.UTC, env.OccurredAt.Location())
	assert.NotEqual(t, env.EventID, NewEnvelope(TypeFundsSplit, "0xabc", nil, at).EventID)

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "funds_split", decoded["type"])
	assert.Equal(t, "0xabc", decoded["ledger"])
	assert.Equal(t, float64(1), decoded["payload"].(map[string]any)["remainder"])
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), "topic", struct{}{}))
	assert.NoError(t, p.Close())
}
