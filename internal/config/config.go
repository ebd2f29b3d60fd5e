// Package config loads termfolio settings from defaults, an optional YAML
// file, TERMFOLIO_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/studiowebux/termfolio/internal/navigation"
	"github.com/studiowebux/termfolio/internal/session"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// EnvPrefix is prepended to every environment override
	EnvPrefix = "TERMFOLIO"
)

// Setting keys
const (
	KeyIdleTimeout  = "idle_timeout"
	KeyMaxSessions  = "max_sessions"
	KeyJumpLast     = "jump_last"
	KeyLogFile      = "log_file"
	KeyLogLevel     = "log_level"
	KeyContentFile  = "content_file"
	KeyKeybindsFile = "keybinds_file"
	KeySummary      = "summary"
)

// flagKeys maps command-line flag names to setting keys
var flagKeys = map[string]string{
	"idle-timeout": KeyIdleTimeout,
	"max-sessions": KeyMaxSessions,
	"jump-last":    KeyJumpLast,
	"log-file":     KeyLogFile,
	"log-level":    KeyLogLevel,
	"content":      KeyContentFile,
	"keybinds":     KeyKeybindsFile,
	"summary":      KeySummary,
}

// configDirFunc is swapped out by tests
var configDirFunc = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "termfolio"), nil
}

// Dir returns ~/.config/termfolio
func Dir() (string, error) {
	return configDirFunc()
}

// Settings is the resolved configuration for one run
type Settings struct {
	IdleTimeout  time.Duration
	MaxSessions  int
	JumpLast     navigation.JumpLastPolicy
	LogFile      string
	LogLevel     string
	ContentFile  string
	KeybindsFile string
	Summary      bool

	// ConfigFile is the file that was read, empty when none was found
	ConfigFile string
}

// Load resolves settings. An explicit cfgFile must exist; the default
// ~/.config/termfolio/config.yaml is optional. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	dir, err := configDirFunc()
	if err != nil {
		return nil, err
	}

	v.SetDefault(KeyIdleTimeout, session.DefaultIdleTimeout)
	v.SetDefault(KeyMaxSessions, session.DefaultMaxSessions)
	v.SetDefault(KeyJumpLast, string(navigation.JumpLastContact))
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyContentFile, "")
	v.SetDefault(KeyKeybindsFile, filepath.Join(dir, "keybinds.json"))
	v.SetDefault(KeySummary, false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	s := &Settings{
		IdleTimeout:  v.GetDuration(KeyIdleTimeout),
		MaxSessions:  v.GetInt(KeyMaxSessions),
		LogFile:      v.GetString(KeyLogFile),
		LogLevel:     v.GetString(KeyLogLevel),
		ContentFile:  v.GetString(KeyContentFile),
		KeybindsFile: v.GetString(KeyKeybindsFile),
		Summary:      v.GetBool(KeySummary),
		ConfigFile:   v.ConfigFileUsed(),
	}

	if s.IdleTimeout <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %v", KeyIdleTimeout, s.IdleTimeout)
	}
	if s.MaxSessions <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", KeyMaxSessions, s.MaxSessions)
	}
	s.JumpLast, err = navigation.ParseJumpLastPolicy(v.GetString(KeyJumpLast))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyJumpLast, err)
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}

	return s, nil
}

// SessionOptions converts settings into tracker options
func (s *Settings) SessionOptions() session.Options {
	return session.Options{
		IdleTimeout: s.IdleTimeout,
		MaxSessions: s.MaxSessions,
	}
}
