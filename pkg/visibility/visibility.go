package visibility

import "github.com/goliatone/go-fieldbind/pkg/model"

// Evaluator decides whether a "FieldName|Value" condition holds against the
// current field values of a container.
type Evaluator interface {
	Eval(condition string, container any, desc model.TypeDescriptor) (bool, error)
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(condition string, container any, desc model.TypeDescriptor) (bool, error)

// Eval delegates to the underlying function.
func (fn EvaluatorFunc) Eval(condition string, container any, desc model.TypeDescriptor) (bool, error) {
	return fn(condition, container, desc)
}

// IsVisible applies the VisibleOn/InvisibleOn pair of spec. VisibleOn takes
// precedence; with neither set the field is visible.
func IsVisible(eval Evaluator, spec model.DrawSpec, container any, desc model.TypeDescriptor) (bool, error) {
	if eval == nil {
		eval = Default()
	}
	if spec.VisibleOn != "" {
		return eval.Eval(spec.VisibleOn, container, desc)
	}
	if spec.InvisibleOn != "" {
		holds, err := eval.Eval(spec.InvisibleOn, container, desc)
		if err != nil {
			return false, err
		}
		return !holds, nil
	}
	return true, nil
}
