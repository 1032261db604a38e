package handlers

import (
	"fmt"

	"github.com/sitetools/ops-core/forms"
)

// replayWizard rebuilds a wizard session server-side from the submitted
// answers and walks it through every step, so the same validation gates
// apply regardless of what the client claims to have checked.
func replayWizard(schema *forms.Schema, answers map[string]any) (*forms.Session, forms.ValidationResult) {
	sess := forms.NewSession(schema)
	for name, raw := range answers {
		if err := applyAnswer(sess, name, raw); err != nil {
			return nil, forms.Invalid(err.Error())
		}
	}
	for i := 1; i < schema.Steps(); i++ {
		if res := sess.Advance(); !res.OK {
			return nil, res
		}
	}
	return sess, forms.Valid()
}

func applyAnswer(sess *forms.Session, name string, raw any) error {
	field, ok := sess.Schema().Field(name)
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	switch field.Kind {
	case forms.KindText, forms.KindDate:
		v, ok := raw.(string)
		if !ok {
			return fmt.Errorf("field %q expects a string", name)
		}
		return sess.SetText(name, v)
	case forms.KindFlag:
		v, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("field %q expects a boolean", name)
		}
		return sess.SetFlag(name, v)
	case forms.KindTriState:
		// null means unanswered and needs no set call
		if raw == nil {
			return nil
		}
		v, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("field %q expects a boolean or null", name)
		}
		if v {
			return sess.SetTri(name, forms.Yes)
		}
		return sess.SetTri(name, forms.No)
	case forms.KindOption, forms.KindOptionSet:
		options, err := stringSlice(raw)
		if err != nil {
			return fmt.Errorf("field %q: %v", name, err)
		}
		for _, opt := range options {
			if err := sess.Toggle(name, opt); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("field %q has unsupported kind", name)
}

func stringSlice(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expects strings, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expects a string list, got %T", raw)
	}
}
