package logger_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/straye-as/sales-dashboard/internal/config"
	"github.com/straye-as/sales-dashboard/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.LoggingConfig
		env   string
		debug bool
	}{
		{"development console", config.LoggingConfig{Level: "debug", Format: "console"}, "development", true},
		{"production json", config.LoggingConfig{Level: "info", Format: "console"}, "production", false},
		{"invalid level falls back to info", config.LoggingConfig{Level: "loud", Format: "json"}, "staging", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.NewLogger(&tt.cfg, &config.AppConfig{Name: "sales-dashboard", Environment: tt.env}, "api")
			require.NoError(t, err)
			assert.Equal(t, tt.debug, log.Core().Enabled(zapcore.DebugLevel))
			assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		})
	}
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, logger.RequestID(context.Background()))

	ctx := logger.WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", logger.RequestID(ctx))
}

func TestForRequest(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	base := zap.New(core)

	req := httptest.NewRequest(http.MethodDelete, "/api/leads?id=1", nil)
	logger.ForRequest(base, req).Info("without id")

	req = req.WithContext(logger.WithRequestID(req.Context(), "req-7"))
	logger.ForRequest(base, req).Info("with id")

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, http.MethodDelete, first["method"])
	assert.Equal(t, "/api/leads", first["path"])
	assert.NotContains(t, first, "request_id")

	assert.Equal(t, "req-7", entries[1].ContextMap()["request_id"])
}
