package engine

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-textmodel/pkg/model"
)

var (
	ugcPolicyOnce sync.Once
	ugcPolicy     *bluemonday.Policy
)

// Sanitized wraps a sub-model so its output passes through the given policy
// before reaching the surrounding template. Errors from the inner model
// propagate unchanged.
func Sanitized(inner model.TextModel, policy *bluemonday.Policy) model.TextModel {
	return model.ModelFunc(func(target any) (string, error) {
		out, err := inner.Render(target)
		if err != nil {
			return "", err
		}
		return policy.Sanitize(out), nil
	})
}

// HTMLSanitized wraps a sub-model with a shared user-generated-content
// policy, for templates whose dynamic content ends up embedded in HTML.
func HTMLSanitized(inner model.TextModel) model.TextModel {
	ugcPolicyOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return Sanitized(inner, ugcPolicy)
}
