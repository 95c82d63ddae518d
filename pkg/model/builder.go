package model

// Compiler turns a finalized descriptor into a directly callable text model.
type Compiler interface {
	Compile(d Descriptor) (TextModel, error)
}

// Descriptor is the finalized, merged element sequence handed to a compiler,
// along with the aggregate statistics the compiler bases its buffer strategy
// on. StaticLength counts bytes of literal content; DynamicCount counts
// dynamic elements. A descriptor is consumed at most once.
type Descriptor struct {
	Elements     []Element
	StaticLength int
	DynamicCount int
}

// Builder accumulates template elements before compilation. Adjacent literal
// fragments are merged as they arrive, so the produced descriptor never
// contains two literal elements in a row. A builder is single-writer; use one
// per goroutine.
type Builder struct {
	elements     []Element
	staticLength int
	dynamicCount int
}

// NewBuilder returns an empty template builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AppendText adds literal content, merging it into a trailing literal element
// when one exists. Empty text is a no-op.
func (b *Builder) AppendText(text string) *Builder {
	if text == "" {
		return b
	}
	b.staticLength += len(text)
	if n := len(b.elements); n > 0 && !b.elements[n-1].IsDynamic() {
		b.elements[n-1].text += text
		return b
	}
	b.elements = append(b.elements, Literal(text))
	return b
}

// AppendModel adds a sub-model. Static models are collapsed into literal
// content so they never survive as dynamic elements. Nil models are ignored.
func (b *Builder) AppendModel(m TextModel) *Builder {
	if m == nil {
		return b
	}
	if text, ok := staticText(m); ok {
		return b.AppendText(text)
	}
	b.elements = append(b.elements, Dynamic(m))
	b.dynamicCount++
	return b
}

// Len returns the number of accumulated elements.
func (b *Builder) Len() int {
	return len(b.elements)
}

// Build finalizes the accumulated elements and compiles them with c. An
// all-literal template degenerates to a constant model without involving the
// compiler. The builder keeps its state and can continue accumulating.
func (b *Builder) Build(c Compiler) (TextModel, error) {
	if b.dynamicCount == 0 {
		return b.constant(), nil
	}
	elements := make([]Element, len(b.elements))
	copy(elements, b.elements)
	return c.Compile(Descriptor{
		Elements:     elements,
		StaticLength: b.staticLength,
		DynamicCount: b.dynamicCount,
	})
}

// BuildAndRelease behaves like Build but transfers ownership of the element
// slice to the descriptor and resets the builder. Output is identical; this
// only skips the defensive copy when the builder is not reused.
func (b *Builder) BuildAndRelease(c Compiler) (TextModel, error) {
	if b.dynamicCount == 0 {
		m := b.constant()
		b.reset()
		return m, nil
	}
	d := Descriptor{
		Elements:     b.elements,
		StaticLength: b.staticLength,
		DynamicCount: b.dynamicCount,
	}
	b.reset()
	return c.Compile(d)
}

// constant folds an all-literal builder into a single static model. The merge
// invariant means at most one element exists here.
func (b *Builder) constant() TextModel {
	if len(b.elements) == 0 {
		return Static("")
	}
	return Static(b.elements[0].Text())
}

func (b *Builder) reset() {
	b.elements = nil
	b.staticLength = 0
	b.dynamicCount = 0
}
