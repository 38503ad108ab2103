// Package secure holds secret key material in locked memory that is
// zeroed when released.
package secure

import (
	"runtime"
	"sync"
)

// Bytes wraps a sensitive byte slice (entropy, seeds, private scalars)
// with mlock and explicit zeroing.
type Bytes struct {
	data   []byte
	locked bool
	mu     sync.Mutex
}

// New allocates a zeroed buffer of the given size.
// The memory is locked if the system supports it.
func New(size int) *Bytes {
	b := &Bytes{data: make([]byte, size)}

	// Locking is best effort; RLIMIT_MEMLOCK is often small in containers.
	b.locked = mlock(b.data)

	// Zero the buffer even if Destroy is never called.
	runtime.SetFinalizer(b, func(s *Bytes) {
		s.Destroy()
	})

	return b
}

// FromSlice copies data into a new locked buffer.
// The caller still owns data and should Zero it when done.
func FromSlice(data []byte) *Bytes {
	b := New(len(data))
	copy(b.data, data)
	return b
}

// Bytes returns the underlying byte slice.
// Returns nil if the buffer has been destroyed.
func (s *Bytes) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// IsLocked reports whether the memory is mlocked.
func (s *Bytes) IsLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Len returns the length of the data, or 0 once destroyed.
func (s *Bytes) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Destroy zeros the memory and unlocks it.
// Safe to call multiple times.
func (s *Bytes) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return
	}

	Zero(s.data)

	if s.locked {
		munlock(s.data)
		s.locked = false
	}

	s.data = nil
	runtime.SetFinalizer(s, nil)
}

// Zero overwrites a byte slice with zeros.
func Zero(data []byte) {
	clear(data)
}
