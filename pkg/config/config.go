// Package config provides configuration management for seedphrase.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/seedphrase/internal/fileutil"
	"github.com/mrz1836/seedphrase/internal/mnemonic"
	seederr "github.com/mrz1836/seedphrase/pkg/errors"
)

// CurrentVersion is the config file schema version.
const CurrentVersion = 1

// MaxAccounts bounds how many accounts one request may derive.
const MaxAccounts = 1000

// hardenedLimit is the first index that cannot be hardened.
const hardenedLimit = 1 << 31

// Config represents the application configuration.
type Config struct {
	Version    int              `yaml:"version"`
	Home       string           `yaml:"home"`
	Mnemonic   MnemonicConfig   `yaml:"mnemonic"`
	Derivation DerivationConfig `yaml:"derivation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// MnemonicConfig defines phrase generation settings.
type MnemonicConfig struct {
	WordCount int `yaml:"word_count"`
}

// DerivationConfig defines which accounts are derived by default.
type DerivationConfig struct {
	Accounts   int    `yaml:"accounts"`
	StartIndex uint32 `yaml:"start_index"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	Format string `yaml:"format"`
}

// Load reads configuration from the specified file. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is chosen by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, seederr.WithDetails(
				seederr.WithCause(seederr.ErrConfigNotFound, err),
				map[string]string{"path": path},
			)
		}
		return nil, seederr.Wrap(err, "read config %s", path)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, seederr.WithDetails(
			seederr.WithCause(seederr.ErrConfigInvalid, err),
			map[string]string{"path": path},
		)
	}

	return cfg, nil
}

// Save atomically writes configuration to the specified file, creating its
// directory when missing.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return fileutil.WriteAtomic(path, data, 0o600)
}

// Path returns the default config file path.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// DefaultHome returns the default seedphrase home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".seedphrase"
	}
	return filepath.Join(home, ".seedphrase")
}

// Validate checks every field and reports the first invalid one.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return invalidField("version", strconv.Itoa(c.Version))
	}

	if !mnemonic.WordCount(c.Mnemonic.WordCount).Valid() {
		return invalidField("mnemonic.word_count", strconv.Itoa(c.Mnemonic.WordCount))
	}

	if c.Derivation.Accounts < 1 || c.Derivation.Accounts > MaxAccounts {
		return invalidField("derivation.accounts", strconv.Itoa(c.Derivation.Accounts))
	}

	if uint64(c.Derivation.StartIndex)+uint64(c.Derivation.Accounts) > hardenedLimit {
		return invalidField("derivation.start_index", strconv.FormatUint(uint64(c.Derivation.StartIndex), 10))
	}

	if _, ok := parseLogLevel(c.Logging.Level); !ok {
		return invalidField("logging.level", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "", FormatJSON, FormatConsole:
	default:
		return invalidField("logging.format", c.Logging.Format)
	}

	return nil
}

// GetHome returns the seedphrase home directory.
func (c *Config) GetHome() string {
	return c.Home
}

// GetWordCount returns the configured phrase length.
func (c *Config) GetWordCount() mnemonic.WordCount {
	return mnemonic.WordCount(c.Mnemonic.WordCount)
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() LogLevel {
	return ParseLogLevel(c.Logging.Level)
}

func invalidField(field, value string) error {
	return seederr.WithDetails(seederr.ErrConfigInvalid, map[string]string{
		"field": field,
		"value": value,
	})
}
