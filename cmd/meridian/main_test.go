package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	testCases := []struct {
		env   string
		debug bool
		info  bool
		warn  bool
	}{
		{env: envLocal, debug: true, info: true, warn: true},
		{env: envDev, debug: false, info: true, warn: true},
		{env: envProd, debug: false, info: false, warn: true},
		{env: "staging", debug: false, info: false, warn: false},
	}

	for _, tc := range testCases {
		t.Run(tc.env, func(t *testing.T) {
			logger := setupLogger(tc.env)
			ctx := context.Background()

			assert.Equal(t, tc.debug, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tc.info, logger.Enabled(ctx, slog.LevelInfo))
			assert.Equal(t, tc.warn, logger.Enabled(ctx, slog.LevelWarn))
			assert.True(t, logger.Enabled(ctx, slog.LevelError))
		})
	}
}

func TestDropTime(t *testing.T) {
	assert.Equal(t, slog.Attr{}, dropTime(nil, slog.String(slog.TimeKey, "now")))

	msg := slog.String(slog.MessageKey, "hello")
	assert.Equal(t, msg, dropTime(nil, msg))
}
