package compiler

import "sync"

var defaultFactory = sync.OnceValue(func() *Factory {
	return New()
})

// Default returns the process-wide shared factory, constructed lazily on
// first access. Concurrent first callers all observe the same fully built
// instance.
func Default() *Factory {
	return defaultFactory()
}
