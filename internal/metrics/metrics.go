// Package metrics counts key generation operations with atomic counters.
package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics holds operation counters. The zero value is ready to use.
type Metrics struct {
	// Phrase operations
	phrasesGenerated atomic.Int64
	phrasesRestored  atomic.Int64
	phraseErrors     atomic.Int64

	// Account derivation
	deriveCalls     atomic.Int64
	deriveErrors    atomic.Int64
	accountsDerived atomic.Int64
	deriveLatencyNs atomic.Int64
}

// RecordGenerate records a phrase generation.
func (m *Metrics) RecordGenerate(err error) {
	if err != nil {
		m.phraseErrors.Add(1)
		return
	}
	m.phrasesGenerated.Add(1)
}

// RecordRestore records a phrase restore.
func (m *Metrics) RecordRestore(err error) {
	if err != nil {
		m.phraseErrors.Add(1)
		return
	}
	m.phrasesRestored.Add(1)
}

// RecordDerive records one batch derivation of n accounts.
func (m *Metrics) RecordDerive(n int, duration time.Duration, err error) {
	m.deriveCalls.Add(1)
	m.deriveLatencyNs.Add(duration.Nanoseconds())
	if err != nil {
		m.deriveErrors.Add(1)
		return
	}
	m.accountsDerived.Add(int64(n))
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	PhrasesGenerated int64
	PhrasesRestored  int64
	PhraseErrors     int64
	DeriveCalls      int64
	DeriveErrors     int64
	AccountsDerived  int64
	DeriveLatencyNs  int64
}

// Snapshot returns a point-in-time copy of all counters.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		PhrasesGenerated: m.phrasesGenerated.Load(),
		PhrasesRestored:  m.phrasesRestored.Load(),
		PhraseErrors:     m.phraseErrors.Load(),
		DeriveCalls:      m.deriveCalls.Load(),
		DeriveErrors:     m.deriveErrors.Load(),
		AccountsDerived:  m.accountsDerived.Load(),
		DeriveLatencyNs:  m.deriveLatencyNs.Load(),
	}
}

// DeriveLatencyAvgMs returns the average batch derivation time in milliseconds,
// or 0 before the first call.
func (m *Metrics) DeriveLatencyAvgMs() float64 {
	calls := m.deriveCalls.Load()
	if calls == 0 {
		return 0
	}
	return float64(m.deriveLatencyNs.Load()) / float64(calls) / 1e6
}

// Reset sets all counters to zero.
func (m *Metrics) Reset() {
	m.phrasesGenerated.Store(0)
	m.phrasesRestored.Store(0)
	m.phraseErrors.Store(0)
	m.deriveCalls.Store(0)
	m.deriveErrors.Store(0)
	m.accountsDerived.Store(0)
	m.deriveLatencyNs.Store(0)
}
