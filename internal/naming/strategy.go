// Package naming allocates identifiers for compiled artifacts. Names must be
// unique for the process lifetime so concurrently compiled artifacts never
// collide in the loader.
package naming

import (
	"strconv"
	"sync/atomic"
)

// Strategy hands out an infinite, collision-free sequence of identifiers
// sharing a common prefix. Safe for concurrent use.
type Strategy struct {
	prefix  string
	counter atomic.Uint64
}

// NewStrategy returns a strategy producing prefix-qualified identifiers.
func NewStrategy(prefix string) *Strategy {
	return &Strategy{prefix: prefix}
}

// Next returns a fresh identifier. No identifier is ever returned twice by
// the same strategy.
func (s *Strategy) Next() string {
	return s.prefix + strconv.FormatUint(s.counter.Add(1), 10)
}
