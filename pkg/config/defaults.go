package config

// Default values.
const (
	DefaultWordCount = 24
	DefaultAccounts  = 1
	DefaultLogLevel  = "error"
)

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: CurrentVersion,
		Home:    "~/.seedphrase",
		Mnemonic: MnemonicConfig{
			WordCount: DefaultWordCount,
		},
		Derivation: DerivationConfig{
			Accounts:   DefaultAccounts,
			StartIndex: 0,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			File:   "~/.seedphrase/seedphrase.log",
			Format: FormatJSON,
		},
	}
}
