package internal

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	return &buf
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"ERROR":   LogLevelError,
		"warn":    LogLevelWarn,
		" debug ": LogLevelDebug,
		"TRACE":   LogLevelTrace,
		"":        LogLevelInfo,
		"verbose": LogLevelInfo,
	}
	for input, want := range tests {
		assert.Equal(t, want, ParseLogLevel(input), input)
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	buf := captureLog(t)

	logger := NewLogger(LogLevelWarn)
	logger.Info("hidden %d", 1)
	logger.Debug("hidden")
	logger.Warn("shown %d", 2)
	logger.Error("shown %d", 3)

	assert.Equal(t, "[WARN] shown 2\n[ERROR] shown 3\n", buf.String())
}

func TestLoggerWithComponent(t *testing.T) {
	buf := captureLog(t)

	logger := NewLogger(LogLevelInfo).With("DataReader")
	logger.Info("read %d rows", 4)

	assert.Equal(t, "[INFO] [DataReader] read 4 rows\n", buf.String())
	assert.Equal(t, LogLevelInfo, logger.GetLevel())
}

func TestLoggerTrace(t *testing.T) {
	buf := captureLog(t)

	NewLogger(LogLevelDebug).Trace("hidden")
	NewLogger(LogLevelTrace).With("DataReader").Trace("columns %q", []string{"class"})

	assert.Equal(t, "[TRACE] [DataReader] columns [\"class\"]\n", buf.String())
}
