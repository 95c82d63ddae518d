package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-textmodel/pkg/model"
)

func TestHTMLSanitized_StripsScriptContent(t *testing.T) {
	inner := model.Static(`<b>hi</b><script>alert("x")</script>`)
	m := HTMLSanitized(inner)

	out, err := m.Render(nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<b>hi</b>") {
		t.Fatalf("safe markup was removed: %q", out)
	}
	if strings.Contains(out, "script") || strings.Contains(out, "alert") {
		t.Fatalf("script content survived sanitizing: %q", out)
	}
}

func TestSanitized_CustomPolicy(t *testing.T) {
	inner := model.Static(`<em>keep</em><b>drop</b>`)
	policy := bluemonday.NewPolicy()
	policy.AllowElements("em")

	out, err := Sanitized(inner, policy).Render(nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<em>keep</em>drop" {
		t.Fatalf("want %q, got %q", "<em>keep</em>drop", out)
	}
}

func TestSanitized_InnerErrorPropagates(t *testing.T) {
	sentinel := errors.New("inner failed")
	inner := model.ModelFunc(func(any) (string, error) {
		return "", sentinel
	})

	_, err := HTMLSanitized(inner).Render(nil)
	if err != sentinel {
		t.Fatalf("want the inner error itself, got %v", err)
	}
}
