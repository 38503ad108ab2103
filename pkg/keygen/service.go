// Package keygen generates and restores seed phrases and derives batches of
// Stellar accounts from them.
package keygen

import (
	"strconv"
	"time"

	"github.com/mrz1836/seedphrase/internal/metrics"
	"github.com/mrz1836/seedphrase/internal/mnemonic"
	"github.com/mrz1836/seedphrase/pkg/config"
	seederr "github.com/mrz1836/seedphrase/pkg/errors"
	"github.com/mrz1836/seedphrase/pkg/seedphrase"
)

// hardenedLimit is the first account index that cannot be hardened.
const hardenedLimit = 1 << 31

// Service provides phrase and account operations.
// Phrases, passphrases and private keys are never logged.
type Service struct {
	cfg     *config.Config
	log     *config.Logger
	metrics *metrics.Metrics
}

// NewService creates a new key generation service. A nil config uses
// defaults and a nil logger discards output.
func NewService(cfg *config.Config, logger *config.Logger) *Service {
	if cfg == nil {
		cfg = config.Defaults()
	}
	if logger == nil {
		logger = config.NullLogger()
	}
	return &Service{
		cfg:     cfg,
		log:     logger,
		metrics: &metrics.Metrics{},
	}
}

// Metrics returns a snapshot of the operation counters.
func (s *Service) Metrics() metrics.Snapshot {
	return s.metrics.Snapshot()
}

// Generate creates a random phrase. A zero word count uses the configured one.
func (s *Service) Generate(wc mnemonic.WordCount) (*seedphrase.SeedPhrase, error) {
	if wc == 0 {
		wc = s.cfg.GetWordCount()
	}

	sp, err := seedphrase.Random(wc)
	s.metrics.RecordGenerate(err)
	if err != nil {
		s.log.ErrorEvent().
			Str("code", seederr.Code(err)).
			Int("word_count", int(wc)).
			Msg("generate seed phrase failed")
		return nil, err
	}

	s.log.DebugEvent().Int("word_count", int(wc)).Msg("generated seed phrase")
	return sp, nil
}

// Restore parses pasted phrase text. Numbered and bulleted lists, commas and
// upper-case letters are accepted. Misspelled words come back as a suggestion
// on the error.
func (s *Service) Restore(input string) (*seedphrase.SeedPhrase, error) {
	cleaned := mnemonic.CleanInput(input)

	sp, err := seedphrase.FromSeedPhrase(cleaned)
	s.metrics.RecordRestore(err)
	if err != nil {
		if typos := mnemonic.DetectTypos(cleaned); len(typos) > 0 {
			err = seederr.WithSuggestion(err, mnemonic.FormatTypoSuggestions(typos))
		}
		s.log.ErrorEvent().
			Str("code", seederr.Code(err)).
			Str("words", seederr.Detail(err, "words")).
			Msg("restore seed phrase failed")
		return nil, err
	}

	s.log.DebugEvent().Int("word_count", sp.WordCount()).Msg("restored seed phrase")
	return sp, nil
}

// DeriveAccounts derives Count consecutive hardened accounts starting at
// StartIndex, or at the configured start index when StartIndex is nil.
// The BIP39 seed is computed once for the whole batch.
func (s *Service) DeriveAccounts(req *DeriveRequest) ([]Account, error) {
	start := time.Now()
	accounts, err := s.deriveAccounts(req)
	s.metrics.RecordDerive(len(accounts), time.Since(start), err)
	return accounts, err
}

func (s *Service) deriveAccounts(req *DeriveRequest) ([]Account, error) {
	if req == nil || req.Phrase == nil {
		return nil, seederr.WithSuggestion(seederr.ErrInvalidInput, "a seed phrase is required to derive accounts")
	}

	count := req.Count
	if count == 0 {
		count = s.cfg.Derivation.Accounts
	}
	if count < 1 || count > config.MaxAccounts {
		return nil, seederr.WithDetails(seederr.ErrInvalidInput, map[string]string{
			"count": strconv.Itoa(count),
			"max":   strconv.Itoa(config.MaxAccounts),
		})
	}

	first := s.cfg.Derivation.StartIndex
	if req.StartIndex != nil {
		first = *req.StartIndex
	}
	if last := uint64(first) + uint64(count) - 1; last >= hardenedLimit {
		return nil, seederr.WithDetails(seederr.ErrInvalidIndex, map[string]string{
			"path": seedphrase.PathPrefix + "/" + strconv.FormatUint(last, 10) + "'",
		})
	}

	seed := req.Phrase.ToSeed(req.Passphrase)
	defer seed.Destroy()

	accounts := make([]Account, 0, count)
	for i := range count {
		//nolint:gosec // G115: bounded by the hardened limit check above
		index := first + uint32(i)

		kp, err := seed.FromPathIndex(index)
		if err != nil {
			for j := range accounts {
				accounts[j].Destroy()
			}
			s.log.ErrorEvent().Str("code", seederr.Code(err)).Uint32("index", index).Msg("derive account failed")
			return nil, err
		}

		accounts = append(accounts, Account{
			Index:      index,
			Path:       kp.Path(),
			PublicKey:  kp.Public(),
			PrivateKey: kp.Private(),
		})
		kp.Destroy()
	}

	s.log.DebugEvent().
		Uint32("start", first).
		Int("count", count).
		Bool("passphrase", req.Passphrase != "").
		Msg("derived accounts")

	return accounts, nil
}
