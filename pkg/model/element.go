package model

// Element is one unit of a template: either literal text known when the
// template is assembled, or a sub-model evaluated against the render target.
type Element struct {
	text  string
	model TextModel
}

// Literal wraps fixed text in an element.
func Literal(text string) Element {
	return Element{text: text}
}

// Dynamic wraps a sub-model in an element.
func Dynamic(m TextModel) Element {
	return Element{model: m}
}

// IsDynamic reports whether the element carries a sub-model.
func (e Element) IsDynamic() bool {
	return e.model != nil
}

// Text returns the literal content. Empty for dynamic elements.
func (e Element) Text() string {
	return e.text
}

// Model returns the sub-model. Nil for literal elements.
func (e Element) Model() TextModel {
	return e.model
}
