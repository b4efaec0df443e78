package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/hance08/splitter/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"info":    zapcore.InfoLevel,
		"DEBUG":   zapcore.DebugLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zapcore.WarnLevel)

	log.Info("dropped")
	log.Warn("kept", zap.String("ledger", "0xabc"))
	require.NoError(t, log.Sync())

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "0xabc", line["ledger"])
	assert.Equal(t, "warn", line["level"])
}

func TestNew(t *testing.T) {
	_, err := New(config.LogConfig{Level: "nope"})
	assert.Error(t, err)

	log, err := New(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	assert.NotNil(t, log)

	log, err = New(config.LogConfig{Level: "debug", File: filepath.Join(t.TempDir(), "splitter.log"), MaxSizeMB: 1})
	require.NoError(t, err)
	log.Debug("written")
	assert.NoError(t, log.Sync())
}
