package main

import (
	"log/slog"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
)

func TestEchoLogLevel(t *testing.T) {
	assert.Equal(t, log.DEBUG, echoLogLevel(slog.LevelDebug))
	assert.Equal(t, log.INFO, echoLogLevel(slog.LevelInfo))
	assert.Equal(t, log.WARN, echoLogLevel(slog.LevelWarn))
	assert.Equal(t, log.ERROR, echoLogLevel(slog.LevelError))
}

func TestCommandsRegistered(t *testing.T) {
	flag := migrateUploadsCmd.Flags().Lookup("apply")
	if assert.NotNil(t, flag) {
		assert.Equal(t, "false", flag.DefValue)
	}
	assert.Equal(t, "serve", serveCmd.Use)
}
