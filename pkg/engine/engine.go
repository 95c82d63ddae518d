package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-textmodel/pkg/model"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir   string
	templates fs.FS
	extension string
	globals   map[string]any
}

// WithBaseDir loads named templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads named templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the default ".tpl" template extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithGlobals seeds context values available to every template.
func WithGlobals(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globals[strings.TrimSpace(key)] = value
		}
	}
}

// Engine produces template-backed sub-models from a pongo2 template set.
// Compiled templates are cached by path; the engine is safe for concurrent
// use.
type Engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	tplExt    string
}

// New constructs an engine from the provided options. Either a base
// directory or an fs.FS must be supplied.
func New(options ...Option) (*Engine, error) {
	cfg := &config{
		extension: ".tpl",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("engine: need to provide either base dir or fs.FS")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("engine: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	engine := &Engine{
		set:       pongo2.NewSet("textmodel", loaders...),
		templates: make(map[string]*pongo2.Template),
		tplExt:    cfg.extension,
	}
	if len(cfg.globals) > 0 {
		if engine.set.Globals == nil {
			engine.set.Globals = make(pongo2.Context)
		}
		engine.set.Globals.Update(pongo2.Context(cfg.globals))
	}
	return engine, nil
}

// Model returns a sub-model rendering the named template from the engine's
// loaders against each render target. The template extension is appended
// when missing.
func (e *Engine) Model(name string) (model.TextModel, error) {
	if e == nil || e.set == nil {
		return nil, errors.New("engine: engine is nil")
	}
	path := name
	if !strings.HasSuffix(path, e.tplExt) {
		path += e.tplExt
	}
	tpl, err := e.getTemplate(path)
	if err != nil {
		return nil, err
	}
	return &templateModel{tpl: tpl}, nil
}

// ModelString compiles inline template content into a sub-model using the
// engine's template set, so set globals apply.
func (e *Engine) ModelString(content string) (model.TextModel, error) {
	if e == nil || e.set == nil {
		return nil, errors.New("engine: engine is nil")
	}
	tpl, err := e.set.FromString(content)
	if err != nil {
		return nil, fmt.Errorf("engine: parse template string: %w", err)
	}
	return &templateModel{tpl: tpl}, nil
}

// ModelString compiles standalone inline template content into a sub-model
// without constructing an engine.
func ModelString(content string) (model.TextModel, error) {
	tpl, err := pongo2.FromString(content)
	if err != nil {
		return nil, fmt.Errorf("engine: parse template string: %w", err)
	}
	return &templateModel{tpl: tpl}, nil
}

func (e *Engine) getTemplate(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tpl, ok := e.templates[path]; ok {
		e.mu.RUnlock()
		return tpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tpl, ok := e.templates[path]; ok {
		return tpl, nil
	}

	tpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("engine: load template %q: %w", path, err)
	}

	e.templates[path] = tpl
	return tpl, nil
}

type templateModel struct {
	tpl *pongo2.Template
}

func (m *templateModel) Render(target any) (string, error) {
	ctx, err := renderContext(target)
	if err != nil {
		return "", err
	}
	out, err := m.tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("engine: execute template: %w", err)
	}
	return out, nil
}

// renderContext converts a render target into a pongo2 context. Maps pass
// through; anything else goes through a JSON round trip so exported struct
// fields become addressable by their JSON names.
func renderContext(target any) (pongo2.Context, error) {
	switch v := target.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	case map[string]string:
		ctx := make(pongo2.Context, len(v))
		for key, value := range v {
			ctx[key] = value
		}
		return ctx, nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("engine: convert target: %w", err)
		}
		decoded := make(map[string]any)
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, fmt.Errorf("engine: target must convert to an object: %w", err)
		}
		return pongo2.Context(decoded), nil
	}
}
