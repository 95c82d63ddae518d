package model

// TextModel produces text for a target value. Implementations must be safe
// for concurrent Render calls; any failure they return is surfaced to the
// caller untouched by the rest of the pipeline.
type TextModel interface {
	Render(target any) (string, error)
}

// ModelFunc adapts a plain function to the TextModel interface.
type ModelFunc func(target any) (string, error)

// Render invokes the wrapped function.
func (fn ModelFunc) Render(target any) (string, error) {
	return fn(target)
}

// Static returns a model that renders the same text for every target. The
// builder collapses static models into the surrounding literal content, so
// appending one never produces a dynamic element.
func Static(text string) TextModel {
	return staticModel(text)
}

type staticModel string

func (m staticModel) Render(any) (string, error) {
	return string(m), nil
}

// staticText reports whether a model is a compile-time constant and, if so,
// returns its text.
func staticText(m TextModel) (string, bool) {
	s, ok := m.(staticModel)
	return string(s), ok
}
