package model

import (
	"testing"
)

// captureCompiler records the descriptor it receives and returns a marker
// model so tests can tell compiled results from folded constants.
type captureCompiler struct {
	descriptor *Descriptor
	calls      int
}

func (c *captureCompiler) Compile(d Descriptor) (TextModel, error) {
	c.descriptor = &d
	c.calls++
	return Static("<compiled>"), nil
}

func upper(target any) (string, error) {
	return "DYN", nil
}

func TestAppendText_MergesAdjacentLiterals(t *testing.T) {
	b := NewBuilder()
	b.AppendText("Hello, ").AppendText("World").AppendText("!")

	if b.Len() != 1 {
		t.Fatalf("expected a single merged element, got %d", b.Len())
	}

	compiled := &captureCompiler{}
	m, err := b.Build(compiled)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if compiled.calls != 0 {
		t.Fatal("all-literal template must not reach the compiler")
	}
	out, err := m.Render(nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello, World!" {
		t.Fatalf("want %q, got %q", "Hello, World!", out)
	}
}

func TestAppendModel_StaticCollapsesIntoLiteral(t *testing.T) {
	b := NewBuilder()
	b.AppendText("a").AppendModel(Static("b")).AppendText("c")

	if b.Len() != 1 {
		t.Fatalf("static model must merge into the literal, got %d elements", b.Len())
	}
	if b.staticLength != 3 {
		t.Fatalf("want static length 3, got %d", b.staticLength)
	}
	if b.dynamicCount != 0 {
		t.Fatalf("want no dynamic elements, got %d", b.dynamicCount)
	}
}

func TestBuild_DescriptorStatistics(t *testing.T) {
	b := NewBuilder()
	b.AppendText("Hello, ")
	b.AppendModel(ModelFunc(upper))
	b.AppendText("!")
	b.AppendModel(ModelFunc(upper))

	compiled := &captureCompiler{}
	if _, err := b.Build(compiled); err != nil {
		t.Fatalf("build: %v", err)
	}
	d := compiled.descriptor
	if d == nil {
		t.Fatal("compiler was not invoked")
	}
	if len(d.Elements) != 4 {
		t.Fatalf("want 4 elements, got %d", len(d.Elements))
	}
	if d.StaticLength != len("Hello, ")+len("!") {
		t.Fatalf("want static length %d, got %d", len("Hello, ")+len("!"), d.StaticLength)
	}
	if d.DynamicCount != 2 {
		t.Fatalf("want 2 dynamic elements, got %d", d.DynamicCount)
	}
	for i, dynamic := range []bool{false, true, false, true} {
		if d.Elements[i].IsDynamic() != dynamic {
			t.Fatalf("element %d: IsDynamic = %v, want %v", i, d.Elements[i].IsDynamic(), dynamic)
		}
	}
}

func TestBuild_NoAdjacentLiteralsAroundDynamics(t *testing.T) {
	b := NewBuilder()
	b.AppendText("a")
	b.AppendModel(ModelFunc(upper))
	b.AppendText("b")
	b.AppendText("c")
	b.AppendModel(ModelFunc(upper))

	compiled := &captureCompiler{}
	if _, err := b.Build(compiled); err != nil {
		t.Fatalf("build: %v", err)
	}
	d := compiled.descriptor
	prevLiteral := false
	for i, el := range d.Elements {
		if !el.IsDynamic() {
			if prevLiteral {
				t.Fatalf("elements %d-1 and %d are both literals", i, i)
			}
			prevLiteral = true
			continue
		}
		prevLiteral = false
	}
	if got := d.Elements[2].Text(); got != "bc" {
		t.Fatalf("middle literal: want %q, got %q", "bc", got)
	}
}

func TestBuild_EmptyBuilderYieldsEmptyConstant(t *testing.T) {
	m, err := NewBuilder().Build(&captureCompiler{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := m.Render(struct{}{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "" {
		t.Fatalf("want empty output, got %q", out)
	}
}

func TestBuildAndRelease_ResetsBuilder(t *testing.T) {
	b := NewBuilder()
	b.AppendText("x").AppendModel(ModelFunc(upper))

	compiled := &captureCompiler{}
	if _, err := b.BuildAndRelease(compiled); err != nil {
		t.Fatalf("build: %v", err)
	}
	if b.Len() != 0 || b.staticLength != 0 || b.dynamicCount != 0 {
		t.Fatalf("builder not reset: len=%d staticLength=%d dynamicCount=%d",
			b.Len(), b.staticLength, b.dynamicCount)
	}

	// The released builder stays usable.
	b.AppendText("fresh")
	m, err := b.Build(compiled)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if out, _ := m.Render(nil); out != "fresh" {
		t.Fatalf("want %q, got %q", "fresh", out)
	}
}

func TestBuild_KeepsStateForReuse(t *testing.T) {
	b := NewBuilder()
	b.AppendText("x").AppendModel(ModelFunc(upper))

	compiled := &captureCompiler{}
	if _, err := b.Build(compiled); err != nil {
		t.Fatalf("build: %v", err)
	}
	if b.Len() != 2 {
		t.Fatalf("build must not consume the builder, got %d elements", b.Len())
	}

	// Mutating the builder afterwards must not affect the handed-off
	// descriptor.
	b.AppendText("y")
	if got := len(compiled.descriptor.Elements); got != 2 {
		t.Fatalf("descriptor grew after build: %d elements", got)
	}
}

func TestAppendText_EmptyIsNoOp(t *testing.T) {
	b := NewBuilder()
	b.AppendText("")
	if b.Len() != 0 {
		t.Fatalf("empty text created an element")
	}
	b.AppendModel(nil)
	if b.Len() != 0 {
		t.Fatalf("nil model created an element")
	}
}
