package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Empty(t, cfg.Database.Path)
	assert.Empty(t, cfg.Defaults.Ledger)
	assert.Empty(t, cfg.Defaults.Identity)
	assert.Equal(t, int32(0), cfg.Display.Decimals)
	assert.Equal(t, "wei", cfg.Display.Symbol)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Events.Kafka.Brokers)
	assert.Equal(t, "splitter.events", cfg.Events.Kafka.Topic)
}
