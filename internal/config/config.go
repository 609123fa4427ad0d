package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds all application configuration.
type Config struct {
	Storage StorageConfig
	Logger  LoggerConfig
	UI      UIConfig
}

type StorageConfig struct {
	Backend string
	Path    string
	// Key is the single key the entry list is stored under.
	Key string
}

type LoggerConfig struct {
	Level    string
	Mode     string
	Encoding string
	// File receives log output. Empty discards it, which keeps the
	// terminal UI clean.
	File string
}

type UIConfig struct {
	Theme string
}

// Load reads configuration with Viper.
// Config file name: todomvc.yaml, searched in ., $HOME/.config/todomvc,
// unless file names one explicitly. TODOMVC_* environment variables win.
func Load(file string) (*Config, error) {
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("todomvc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/todomvc")
	}

	v.SetEnvPrefix("todomvc")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	cfg.Storage.Backend = strings.ToLower(v.GetString("storage.backend"))
	cfg.Storage.Path = v.GetString("storage.path")
	cfg.Storage.Key = v.GetString("storage.key")

	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.File = v.GetString("logger.file")

	cfg.UI.Theme = strings.ToLower(v.GetString("ui.theme"))

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.path", "todos.json")
	v.SetDefault("storage.key", "todomvc.self")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.file", "")

	v.SetDefault("ui.theme", "classic")
}

// Validate reports the first setting the application cannot run with.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendBolt, BackendSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the %s backend", c.Storage.Backend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown storage.backend %q", c.Storage.Backend)
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return errors.New("storage.key must not be empty")
	}
	switch c.UI.Theme {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("unknown ui.theme %q", c.UI.Theme)
	}
	return nil
}
