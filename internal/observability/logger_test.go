package observability

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/go-boxtree/internal/config"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestGetLoggerBeforeInitialize(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	logger := GetLogger()
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel), "fallback logger is a no-op")
}

func TestInitialize(t *testing.T) {
	type tc struct {
		cfg       config.LoggerConfig
		logDebug  bool
		wantInOut []string
		wantEmpty bool
	}

	tests := map[string]tc{
		"json at info": {
			cfg:       config.LoggerConfig{Level: "info", Format: "json", ServiceName: "boxtree"},
			wantInOut: []string{`"level":"INFO"`, `"logger":"boxtree"`, `"msg":"laid out"`, `"nodes":3`},
		},
		"debug suppressed at warn": {
			cfg:       config.LoggerConfig{Level: "warn", Format: "json"},
			logDebug:  true,
			wantEmpty: true,
		},
		"bad level falls back to info": {
			cfg:       config.LoggerConfig{Level: "loud", Format: "console"},
			wantInOut: []string{"laid out", "nodes"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ResetForTest()
			t.Cleanup(ResetForTest)

			var buf bytes.Buffer
			Initialize(tt.cfg, zapcore.AddSync(&buf))

			if tt.logDebug {
				GetLogger().Debug("laid out", zap.Int("nodes", 3))
			} else {
				GetLogger().Info("laid out", zap.Int("nodes", 3))
			}

			if tt.wantEmpty {
				assert.Empty(t, buf.String())
				return
			}
			for _, want := range tt.wantInOut {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestInitializeOnce(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var first, second bytes.Buffer
	Initialize(config.LoggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(&first))
	Initialize(config.LoggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(&second))

	GetLogger().Info("hello")
	assert.NotEmpty(t, first.String())
	assert.Empty(t, second.String())
}

func TestInitializeLogFile(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	path := filepath.Join(t.TempDir(), "boxtree.log")
	var console bytes.Buffer
	Initialize(config.LoggerConfig{
		Level:   "info",
		Format:  "console",
		LogFile: path,
		MaxSize: 1,
	}, zapcore.AddSync(&console))

	GetLogger().Info("rendered", zap.String("mode", "cells"))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, jsoniter.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "rendered", entry["msg"])
	assert.Equal(t, "cells", entry["mode"])
	assert.Contains(t, console.String(), "rendered")
}
