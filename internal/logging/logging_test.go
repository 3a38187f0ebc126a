// SPDX-License-Identifier: Apache-2.0

package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gisgenomics/sampleconf/internal/logging"
)

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbose, quiet int
		want           slog.Level
	}{
		{0, 0, slog.LevelWarn},
		{1, 0, slog.LevelInfo},
		{2, 0, slog.LevelDebug},
		{0, 1, slog.LevelError},
		{0, 2, logging.LevelCritical},
		{1, 1, slog.LevelWarn},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, logging.LevelFromVerbosity(tt.verbose, tt.quiet), "v=%d q=%d", tt.verbose, tt.quiet)
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.LevelFromVerbosity(1, 0))
	logger.Debug("hidden")
	logger.Info("parsed samples", "samples", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "parsed samples")
	assert.Contains(t, buf.String(), "samples=2")
}

func TestNew_SilentAtThreeQuiet(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.LevelFromVerbosity(0, 3))
	logger.Error("boom")
	logger.Log(context.Background(), logging.LevelCritical, "fatal")
	assert.Empty(t, buf.String())
}

func TestNew_CriticalLabel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelDebug)
	logger.Log(context.Background(), logging.LevelCritical, "fatal")
	assert.Contains(t, buf.String(), "level=CRITICAL")
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo)
	ctx := logging.NewContext(context.Background(), logger)
	assert.Same(t, logger, logging.FromContext(ctx))
	assert.NotNil(t, logging.FromContext(context.Background()))
}
