package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NurM0hammad/FoxMind-AI/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.AppPort)
	assert.Equal(t, "conversations", cfg.ConversationsDir)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.SecretKey)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("CONVERSATIONS_DIR", "/tmp/chats")
	t.Setenv("DEBUG", "true")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.AppPort)
	assert.Equal(t, "/tmp/chats", cfg.ConversationsDir)
	assert.True(t, cfg.Debug)
}
