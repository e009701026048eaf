package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfigFile(t, "logging:\n  level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.WorldLink.Host)
	assert.Equal(t, 2005, cfg.WorldLink.Port)
	assert.Equal(t, 128, cfg.WorldLink.SendBuffer)
	assert.Equal(t, 32, cfg.Chat.MaxNameBytes)
	assert.Equal(t, 20*time.Second, cfg.Chat.LogoutGracePeriod)
	assert.Equal(t, time.Second, cfg.Chat.TickInterval)
	assert.True(t, cfg.Chat.DefaultLootShared)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfigFile(t, `
worldlink:
  port: 3000
chat:
  logout_grace_period: 5s
  default_loot_shared: false
logging:
  level: warn
  format: console
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.WorldLink.Port)
	assert.Equal(t, 5*time.Second, cfg.Chat.LogoutGracePeriod)
	assert.False(t, cfg.Chat.DefaultLootShared)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestValidate_BadPort(t *testing.T) {
	cfg := validConfig()
	cfg.WorldLink.Port = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worldlink.port")
}

func TestValidate_BadGracePeriod(t *testing.T) {
	cfg := validConfig()
	cfg.Chat.LogoutGracePeriod = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logout_grace_period")
}

func TestValidate_BadNameBound(t *testing.T) {
	cfg := validConfig()
	cfg.Chat.MaxNameBytes = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_name_bytes")
}

func TestValidate_BestFriendsExceedFriends(t *testing.T) {
	cfg := validConfig()
	cfg.Chat.MaxBestFriends = cfg.Chat.MaxFriends + 1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_best_friends")
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestValidate_CollectsMultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.WorldLink.Port = -1
	cfg.Database.Host = ""
	cfg.Logging.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worldlink.port")
	assert.Contains(t, err.Error(), "database.host")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("chat.max_name_bytes", 16)

	cfg, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Chat.MaxNameBytes)
}

func validConfig() Config {
	return Config{
		WorldLink: WorldLinkConfig{Host: "0.0.0.0", Port: 2005, SendBuffer: 128},
		Database: DatabaseConfig{
			Host: "localhost", Port: 5432, User: "chatd", Name: "chatd",
			SSLMode: "disable", MaxConns: 10, MinConns: 2,
		},
		Chat: ChatConfig{
			MaxNameBytes:      32,
			LogoutGracePeriod: 20 * time.Second,
			TickInterval:      time.Second,
			MaxFriends:        50,
			MaxBestFriends:    5,
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}
