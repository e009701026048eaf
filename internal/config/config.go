// Package config provides Viper-based configuration loading for the chat server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// WorldLinkConfig holds settings for the gRPC link that world servers dial.
type WorldLinkConfig struct {
	// Host is the bind address for the world-link listener.
	Host string `mapstructure:"host"`
	// Port is the TCP port for the world-link listener.
	Port int `mapstructure:"port"`
	// SendBuffer is the per-stream outbound message buffer size.
	SendBuffer int `mapstructure:"send_buffer"`
}

// Addr returns the "host:port" listen address.
//
// Postcondition: Returns a non-empty string in "host:port" format.
func (w WorldLinkConfig) Addr() string {
	return fmt.Sprintf("%s:%d", w.Host, w.Port)
}

// DatabaseConfig holds PostgreSQL connection settings for the activity log.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// DSN returns the PostgreSQL connection string.
//
// Precondition: Host, Port, User, and Name must be non-empty.
// Postcondition: Returns a valid PostgreSQL DSN string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// ChatConfig holds presence and team registry settings.
type ChatConfig struct {
	// MaxNameBytes is the upper bound on player name length on the wire.
	MaxNameBytes int `mapstructure:"max_name_bytes"`
	// LogoutGracePeriod is the delay between a reported disconnect and
	// actual session removal; a reconnect inside it cancels the removal.
	LogoutGracePeriod time.Duration `mapstructure:"logout_grace_period"`
	// TickInterval is how often the pending-removal schedule is advanced.
	TickInterval time.Duration `mapstructure:"tick_interval"`
	// DefaultLootShared controls the loot flag on freshly created teams.
	DefaultLootShared bool `mapstructure:"default_loot_shared"`
	// MaxFriends is the friend-list capacity enforced by the friends subsystem.
	MaxFriends int `mapstructure:"max_friends"`
	// MaxBestFriends is the best-friend capacity enforced by the friends subsystem.
	MaxBestFriends int `mapstructure:"max_best_friends"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	WorldLink WorldLinkConfig `mapstructure:"worldlink"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Chat      ChatConfig      `mapstructure:"chat"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateWorldLink(c.WorldLink); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateDatabase(c.Database); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateChat(c.Chat); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateWorldLink(w WorldLinkConfig) error {
	if w.Port < 1 || w.Port > 65535 {
		return fmt.Errorf("worldlink.port must be in [1, 65535], got %d", w.Port)
	}
	if w.SendBuffer < 1 {
		return fmt.Errorf("worldlink.send_buffer must be positive, got %d", w.SendBuffer)
	}
	return nil
}

func validateDatabase(d DatabaseConfig) error {
	if d.Host == "" {
		return errors.New("database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		return fmt.Errorf("database.port must be in [1, 65535], got %d", d.Port)
	}
	if d.Name == "" {
		return errors.New("database.name must not be empty")
	}
	if d.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be positive, got %d", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("database.min_conns must be in [0, max_conns], got %d", d.MinConns)
	}
	return nil
}

func validateChat(ch ChatConfig) error {
	if ch.MaxNameBytes < 1 {
		return fmt.Errorf("chat.max_name_bytes must be positive, got %d", ch.MaxNameBytes)
	}
	if ch.LogoutGracePeriod <= 0 {
		return fmt.Errorf("chat.logout_grace_period must be positive, got %s", ch.LogoutGracePeriod)
	}
	if ch.TickInterval <= 0 {
		return fmt.Errorf("chat.tick_interval must be positive, got %s", ch.TickInterval)
	}
	if ch.MaxFriends < 1 {
		return fmt.Errorf("chat.max_friends must be positive, got %d", ch.MaxFriends)
	}
	if ch.MaxBestFriends < 0 || ch.MaxBestFriends > ch.MaxFriends {
		return fmt.Errorf("chat.max_best_friends must be in [0, max_friends], got %d", ch.MaxBestFriends)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", l.Level)
	}
	switch l.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path with environment overrides.
//
// Precondition: path must reference a readable config file.
// Postcondition: Returns a validated Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with CHATD_ prefix
	v.SetEnvPrefix("CHATD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("worldlink.host", "0.0.0.0")
	v.SetDefault("worldlink.port", 2005)
	v.SetDefault("worldlink.send_buffer", 128)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "chatd")
	v.SetDefault("database.password", "chatd")
	v.SetDefault("database.name", "chatd")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", "1h")

	v.SetDefault("chat.max_name_bytes", 32)
	v.SetDefault("chat.logout_grace_period", "20s")
	v.SetDefault("chat.tick_interval", "1s")
	v.SetDefault("chat.default_loot_shared", true)
	v.SetDefault("chat.max_friends", 50)
	v.SetDefault("chat.max_best_friends", 5)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
