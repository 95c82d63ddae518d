package compiler

import (
	"fmt"
	"unicode/utf8"

	"github.com/goliatone/go-textmodel/internal/naming"
	"github.com/goliatone/go-textmodel/pkg/model"
	"github.com/goliatone/go-textmodel/pkg/valuestore"
)

const defaultNamePrefix = "textmodel/generated/"

// Option configures a factory before construction.
type Option func(*Factory)

// WithStore injects the handoff store shared with the loader. Useful when
// several factories should draw keys from one table.
func WithStore(store *valuestore.Store) Option {
	return func(f *Factory) {
		f.store = store
	}
}

// WithNamePrefix overrides the prefix of generated artifact identifiers.
func WithNamePrefix(prefix string) Option {
	return func(f *Factory) {
		if prefix != "" {
			f.names = naming.NewStrategy(prefix)
		}
	}
}

// WithBaseInitializer attaches a zero-argument initialisation hook that runs
// before every artifact this factory materializes. Its failures surface to
// the Compile caller unchanged.
func WithBaseInitializer(base Initializer) Option {
	return func(f *Factory) {
		f.base = base
	}
}

// Factory compiles finalized descriptors into rendering artifacts. A factory
// is safe for concurrent use; independent compilations allocate their own
// identifiers and handoff entries and never interfere.
type Factory struct {
	store  *valuestore.Store
	names  *naming.Strategy
	loader *Loader
	base   Initializer
}

// New constructs a factory, filling in a private handoff store and the
// default naming strategy unless options supply them.
func New(options ...Option) *Factory {
	f := &Factory{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.store == nil {
		f.store = valuestore.New()
	}
	if f.names == nil {
		f.names = naming.NewStrategy(defaultNamePrefix)
	}
	f.loader = NewLoader(f.store)
	return f
}

// NewBuilder returns a fresh template builder. Purely a convenience; the
// builder is not tied to this factory until Build is called with it.
func (f *Factory) NewBuilder() *model.Builder {
	return model.NewBuilder()
}

// Compile turns a descriptor into a live rendering artifact. The descriptor
// must contain at least one dynamic element; all-literal templates are folded
// to constants by the builder and never reach the compiler.
func (f *Factory) Compile(d model.Descriptor) (model.TextModel, error) {
	if d.DynamicCount == 0 {
		return nil, fmt.Errorf("%w: descriptor has no dynamic elements", ErrMaterialize)
	}
	artifact, err := f.loader.Constructor(f.emit(d), f.base)()
	if err != nil {
		return nil, err
	}
	return artifact, nil
}

// emit walks the descriptor in order and produces the artifact's program.
// Two buffer strategies exist: with literal content present, the buffer is
// presized to exactly the static byte length (a lower bound; dynamic output
// grows it on demand); with none, the buffer is seeded from the first
// dynamic element's output since no useful capacity guess can be made.
// Every dynamic sub-model is parked in the handoff store here, at compile
// time, and referenced from the program by key only.
func (f *Factory) emit(d model.Descriptor) *Program {
	prog := &Program{
		name:    f.names.Next(),
		presize: d.StaticLength,
	}

	if d.StaticLength == 0 {
		// No literal content means every element is dynamic: the builder
		// drops empty literals and merges the rest.
		for i, element := range d.Elements {
			op := opModel
			if i == 0 {
				op = opSeed
			}
			prog.code = append(prog.code, instruction{
				op:   op,
				slot: prog.addSlot(f.store.Store(element.Model())),
			})
		}
		return prog
	}

	for _, element := range d.Elements {
		if element.IsDynamic() {
			prog.code = append(prog.code, instruction{
				op:   opModel,
				slot: prog.addSlot(f.store.Store(element.Model())),
			})
			continue
		}
		text := element.Text()
		// A lone invalid byte decodes as (RuneError, 1) and must keep its
		// exact byte, so only a successful single-rune decode takes the
		// fast path. A genuine U+FFFD literal decodes with size 3 and
		// still qualifies.
		if r, size := utf8.DecodeRuneInString(text); size > 0 && size == len(text) && (r != utf8.RuneError || size > 1) {
			prog.code = append(prog.code, instruction{op: opRune, char: r})
			continue
		}
		prog.code = append(prog.code, instruction{op: opText, text: text})
	}
	return prog
}
