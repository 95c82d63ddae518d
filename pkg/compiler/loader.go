package compiler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-textmodel/pkg/model"
	"github.com/goliatone/go-textmodel/pkg/valuestore"
)

// ErrMaterialize classifies failures turning an emitted program into a live
// artifact: malformed representation, identifier collision, or a descriptor
// the compiler refuses. Fatal to the compilation request; retrying with the
// same program would reproduce the same failure.
var ErrMaterialize = errors.New("compiler: materialization failed")

// step is one composed append operation of an artifact's render path.
type step func(b *strings.Builder, target any) error

// Loader turns emitted programs into live artifacts. It tracks loaded
// identifiers so two artifacts can never share a name, and resolves handoff
// keys during materialization so an artifact is complete before it is handed
// back.
type Loader struct {
	store  *valuestore.Store
	loaded sync.Map // identifier -> struct{}
}

// NewLoader returns a loader resolving handoff keys from store.
func NewLoader(store *valuestore.Store) *Loader {
	return &Loader{store: store}
}

// Materialize validates the program, claims its identifier, resolves every
// handoff key into a constant slot, and composes the render callable. On
// failure no partially usable artifact exists. A handoff key with no pending
// entry is a defect in the emitting compiler and panics rather than erroring.
func (l *Loader) Materialize(prog *Program) (*Artifact, error) {
	if err := validate(prog); err != nil {
		return nil, err
	}
	if _, collided := l.loaded.LoadOrStore(prog.name, struct{}{}); collided {
		return nil, fmt.Errorf("%w: identifier %q already loaded", ErrMaterialize, prog.name)
	}

	slots := make([]model.TextModel, len(prog.slotKeys))
	for i, key := range prog.slotKeys {
		value, err := l.store.Retrieve(key)
		if err != nil {
			panic(fmt.Sprintf("compiler: artifact %q references unstored key: %v", prog.name, err))
		}
		m, ok := value.(model.TextModel)
		if !ok {
			panic(fmt.Sprintf("compiler: artifact %q resolved key %q to %T, want TextModel", prog.name, key, value))
		}
		slots[i] = m
	}

	steps := make([]step, len(prog.code))
	for i, inst := range prog.code {
		switch inst.op {
		case opText:
			text := inst.text
			steps[i] = func(b *strings.Builder, _ any) error {
				b.WriteString(text)
				return nil
			}
		case opRune:
			char := inst.char
			steps[i] = func(b *strings.Builder, _ any) error {
				b.WriteRune(char)
				return nil
			}
		case opSeed, opModel:
			sub := slots[inst.slot]
			steps[i] = func(b *strings.Builder, target any) error {
				out, err := sub.Render(target)
				if err != nil {
					return err
				}
				b.WriteString(out)
				return nil
			}
		}
	}

	return &Artifact{
		name:    prog.name,
		presize: prog.presize,
		steps:   steps,
	}, nil
}

// release drains the program's handoff entries without materializing it.
// Called when a constructor aborts before Materialize so the parked
// sub-models do not linger in the store. Keys already consumed are ignored.
func (l *Loader) release(prog *Program) {
	for _, key := range prog.slotKeys {
		_, _ = l.store.Retrieve(key)
	}
}

// validate rejects programs the loader cannot host. Runs before the
// identifier is claimed so a malformed program does not burn its name.
func validate(prog *Program) error {
	if prog == nil {
		return fmt.Errorf("%w: nil program", ErrMaterialize)
	}
	if prog.name == "" {
		return fmt.Errorf("%w: program has no identifier", ErrMaterialize)
	}
	if len(prog.code) == 0 {
		return fmt.Errorf("%w: program %q has no instructions", ErrMaterialize, prog.name)
	}
	if prog.presize < 0 {
		return fmt.Errorf("%w: program %q has negative presize", ErrMaterialize, prog.name)
	}
	for i, inst := range prog.code {
		switch inst.op {
		case opText, opRune:
		case opSeed:
			if i != 0 || prog.presize != 0 {
				return fmt.Errorf("%w: program %q seeds the buffer at instruction %d", ErrMaterialize, prog.name, i)
			}
			if inst.slot < 0 || inst.slot >= len(prog.slotKeys) {
				return fmt.Errorf("%w: program %q references slot %d of %d", ErrMaterialize, prog.name, inst.slot, len(prog.slotKeys))
			}
		case opModel:
			if inst.slot < 0 || inst.slot >= len(prog.slotKeys) {
				return fmt.Errorf("%w: program %q references slot %d of %d", ErrMaterialize, prog.name, inst.slot, len(prog.slotKeys))
			}
		default:
			return fmt.Errorf("%w: program %q has unknown opcode %d at instruction %d", ErrMaterialize, prog.name, inst.op, i)
		}
	}
	return nil
}

// Artifact is a compiled rendering callable. It is immutable and stateless
// apart from the constant sub-model slots resolved at materialization, so any
// number of goroutines may render concurrently; each call uses a private
// growable buffer.
type Artifact struct {
	name    string
	presize int
	steps   []step
}

var _ model.TextModel = (*Artifact)(nil)

// Name returns the identifier the artifact was loaded under.
func (a *Artifact) Name() string {
	return a.name
}

// Render executes the composed append sequence against target and returns
// the concatenated output. The presize is a lower-bound capacity hint only;
// dynamic output beyond it grows the buffer and is never truncated. A
// sub-model failure aborts the render and propagates unchanged.
func (a *Artifact) Render(target any) (string, error) {
	var b strings.Builder
	if a.presize > 0 {
		b.Grow(a.presize)
	}
	for _, st := range a.steps {
		if err := st(&b, target); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}
