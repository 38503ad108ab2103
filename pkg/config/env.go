package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvHome      = "SEEDPHRASE_HOME"
	EnvWordCount = "SEEDPHRASE_WORD_COUNT"
	EnvAccounts  = "SEEDPHRASE_ACCOUNTS"
	EnvLogLevel  = "SEEDPHRASE_LOG_LEVEL"
	EnvLogFile   = "SEEDPHRASE_LOG_FILE"
	EnvLogFormat = "SEEDPHRASE_LOG_FORMAT"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
// Numeric values that do not parse as positive integers are ignored.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = strings.TrimSpace(v)
	}

	if n, ok := parsePositive(os.Getenv(EnvWordCount)); ok {
		cfg.Mnemonic.WordCount = n
	}

	if n, ok := parsePositive(os.Getenv(EnvAccounts)); ok {
		cfg.Derivation.Accounts = n
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(v))
	}

	// An explicitly empty SEEDPHRASE_LOG_FILE disables file logging.
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.Logging.File = strings.TrimSpace(v)
	}

	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(v))
	}
}

func parsePositive(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
