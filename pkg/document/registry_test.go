package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-textmodel/pkg/model"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("name", model.Static("x")); err != nil {
		t.Fatalf("register: %v", err)
	}

	if !reg.Has("name") {
		t.Fatal("registered model not found")
	}
	if _, ok := reg.Get("missing"); ok {
		t.Fatal("unexpected hit for an unregistered name")
	}
}

func TestRegistry_DuplicateNameFails(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("dup", model.Static("a")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("dup", model.Static("b")); err == nil {
		t.Fatal("expected an error for the duplicate name")
	}
}

func TestRegistry_RejectsInvalidArguments(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("", model.Static("a")); err == nil {
		t.Fatal("expected an error for the empty name")
	}
	if err := reg.Register("nil-model", nil); err == nil {
		t.Fatal("expected an error for the nil model")
	}
}

func TestRegistry_ListIsSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		reg.MustRegister(name, model.Static(name))
	}

	want := []string{"alpha", "bravo", "charlie"}
	if diff := cmp.Diff(want, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}
