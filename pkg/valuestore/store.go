// Package valuestore implements the process-wide handoff table used to pass
// live object references into compiled artifacts. Emitted programs can only
// embed constants (literal text, numbers, keys); a dynamic sub-model is a
// live value, so the compiler parks it here under a fresh key and the
// artifact's one-time initialisation claims it back. Every entry is consumed
// exactly once: retrieval removes it, and a second retrieval of the same key
// fails.
package valuestore

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
)

// ErrNotFound indicates a retrieval for a key with no pending entry, meaning
// the key was never issued or its entry was already consumed.
var ErrNotFound = errors.New("valuestore: no entry for key")

// Store is a concurrent key→value table with single-consumption semantics.
// The zero value is ready to use. Operations on disjoint keys do not contend.
type Store struct {
	seq     atomic.Uint64
	entries sync.Map // key string -> any
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Store parks a value and returns a fresh key for it. Keys are never reissued
// for the lifetime of the store, so concurrent callers cannot collide.
func (s *Store) Store(value any) string {
	key := strconv.FormatUint(s.seq.Add(1), 36)
	s.entries.Store(key, value)
	return key
}

// Retrieve removes and returns the entry for key. It fails with ErrNotFound
// when the entry is absent, which callers treat as a defect: each key is
// meant to be consumed exactly once by the artifact that caused it to be
// stored.
func (s *Store) Retrieve(key string) (any, error) {
	value, ok := s.entries.LoadAndDelete(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return value, nil
}

// Pending returns the number of stored entries that have not been retrieved.
// Intended for tests and diagnostics.
func (s *Store) Pending() int {
	count := 0
	s.entries.Range(func(any, any) bool {
		count++
		return true
	})
	return count
}
