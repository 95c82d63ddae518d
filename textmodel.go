// Package textmodel compiles text templates (ordered sequences of literal
// fragments and dynamic sub-models) into specialized rendering callables
// with no per-call interpretation of the template structure. This facade
// wires the builder front end to the process-wide shared compiler; pkg/model,
// pkg/compiler, pkg/engine and pkg/document expose the pieces individually
// for callers that need their own wiring.
package textmodel

import (
	"github.com/goliatone/go-textmodel/pkg/compiler"
	"github.com/goliatone/go-textmodel/pkg/model"
)

// TextModel is the rendering contract implemented by compiled artifacts and
// by caller-supplied sub-models alike.
type TextModel = model.TextModel

// Builder accumulates template elements before compilation.
type Builder = model.Builder

// NewBuilder returns an empty template builder.
func NewBuilder() *Builder {
	return model.NewBuilder()
}

// Static returns a constant model for fixed text.
func Static(text string) TextModel {
	return model.Static(text)
}

// Lookup returns a model resolving a dotted path against the render target.
func Lookup(path string) TextModel {
	return model.Lookup(path)
}

// Compile finalizes the builder with the shared compiler factory. The
// builder keeps its state and can continue accumulating.
func Compile(b *Builder) (TextModel, error) {
	return b.Build(compiler.Default())
}

// CompileAndRelease finalizes the builder with the shared compiler factory,
// handing over its element slice and resetting it. Output is identical to
// Compile.
func CompileAndRelease(b *Builder) (TextModel, error) {
	return b.BuildAndRelease(compiler.Default())
}
