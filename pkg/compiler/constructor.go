package compiler

// Initializer is a zero-argument initialisation hook run before an artifact
// is materialized. Artifacts need no such hook themselves; the seam exists
// for callers whose artifacts depend on shared setup.
type Initializer func() error

// Constructor returns a zero-argument constructor for the program's
// artifact. With a nil base it materializes directly. With a base, the base
// runs first and its failure, whether a returned error or a panic used as a
// control-flow signal, reaches the constructor's caller unchanged: never
// wrapped, replaced, or swallowed.
func (l *Loader) Constructor(prog *Program, base Initializer) func() (*Artifact, error) {
	if base == nil {
		return func() (*Artifact, error) {
			return l.Materialize(prog)
		}
	}
	return func() (*Artifact, error) {
		// The program's sub-models were parked before the constructor ran.
		// If base never succeeds they are unreachable, so drain them on the
		// way out. The deferred release leaves a panicking base untouched.
		baseDone := false
		defer func() {
			if !baseDone {
				l.release(prog)
			}
		}()
		if err := base(); err != nil {
			return nil, err
		}
		baseDone = true
		return l.Materialize(prog)
	}
}
