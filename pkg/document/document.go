// Package document loads declarative template documents: an ordered list of
// element specs (literal text, a named sub-model reference, or inline
// template content) in YAML or JSON form. Documents describe already-split
// elements; they are not a template syntax. Loaded documents feed the builder
// front end and compile through any model.Compiler.
package document

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-textmodel/pkg/engine"
	"github.com/goliatone/go-textmodel/pkg/model"
)

// ElementSpec describes one element of a document. Exactly one field must be
// set: Text embeds literal content, Model references a registered sub-model
// (falling back to a dotted-path lookup into the render target), Template
// embeds inline template content compiled by the engine.
type ElementSpec struct {
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
	Model    string `json:"model,omitempty" yaml:"model,omitempty"`
	Template string `json:"template,omitempty" yaml:"template,omitempty"`
}

// Document is an ordered element sequence parsed from YAML or JSON.
type Document struct {
	Elements []ElementSpec `json:"elements" yaml:"elements"`
}

// Parse decodes a document from YAML or JSON bytes.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("document: parse: %w", err)
	}
	return doc, nil
}

// Load reads and parses a document from disk.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("document: read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadFS reads and parses a document from an fs.FS.
func LoadFS(fsys fs.FS, path string) (Document, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Document{}, fmt.Errorf("document: read %s: %w", path, err)
	}
	return Parse(data)
}

// Builder resolves the document's element specs into a builder ready for
// compilation. Named models come from reg when present, otherwise a
// dotted-path lookup into the render target is substituted. A nil registry
// resolves every model reference to a lookup.
func (d Document) Builder(reg *Registry) (*model.Builder, error) {
	b := model.NewBuilder()
	for i, spec := range d.Elements {
		set := 0
		if spec.Text != "" {
			set++
		}
		if spec.Model != "" {
			set++
		}
		if spec.Template != "" {
			set++
		}
		if set != 1 {
			return nil, fmt.Errorf("document: element %d must set exactly one of text, model, template", i)
		}

		switch {
		case spec.Text != "":
			b.AppendText(spec.Text)
		case spec.Model != "":
			name := strings.TrimSpace(spec.Model)
			if reg != nil {
				if m, ok := reg.Get(name); ok {
					b.AppendModel(m)
					continue
				}
			}
			b.AppendModel(model.Lookup(name))
		case spec.Template != "":
			m, err := engine.ModelString(spec.Template)
			if err != nil {
				return nil, fmt.Errorf("document: element %d: %w", i, err)
			}
			b.AppendModel(m)
		}
	}
	return b, nil
}

// Compile resolves the document against reg and compiles it with c.
func (d Document) Compile(c model.Compiler, reg *Registry) (model.TextModel, error) {
	b, err := d.Builder(reg)
	if err != nil {
		return nil, err
	}
	return b.BuildAndRelease(c)
}
