package forms

import (
	"errors"
	"fmt"
	"slices"
)

// TriState - explicit three-valued answer for yes/no questions,
// so "unanswered" is a real state and not a nil bool.
type TriState int

const (
	Unanswered TriState = iota
	Yes
	No
)

func (t TriState) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unanswered"
	}
}

var (
	ErrUnknownField = errors.New("forms: unknown field")
	ErrFieldKind    = errors.New("forms: wrong field kind")
)

// AnswerState - accumulated answers of one wizard session.
// Exclusively owned by its Session, mutated only through the setters,
// discarded on submit or cancel.
type AnswerState struct {
	schema *Schema
	text   map[string]string
	flags  map[string]bool
	tri    map[string]TriState
	sets   map[string][]string // selection order preserved
}

func newAnswerState(schema *Schema) *AnswerState {
	return &AnswerState{
		schema: schema,
		text:   make(map[string]string),
		flags:  make(map[string]bool),
		tri:    make(map[string]TriState),
		sets:   make(map[string][]string),
	}
}

func (a *AnswerState) field(name string, kinds ...FieldKind) (Field, error) {
	f, ok := a.schema.Field(name)
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if !slices.Contains(kinds, f.Kind) {
		return Field{}, fmt.Errorf("%w: %q", ErrFieldKind, name)
	}
	return f, nil
}

func (a *AnswerState) setText(name string, v string) error {
	if _, err := a.field(name, KindText, KindDate); err != nil {
		return err
	}
	a.text[name] = v
	return nil
}

func (a *AnswerState) setFlag(name string, v bool) error {
	if _, err := a.field(name, KindFlag); err != nil {
		return err
	}
	a.flags[name] = v
	return nil
}

func (a *AnswerState) setTri(name string, v TriState) error {
	if _, err := a.field(name, KindTriState); err != nil {
		return err
	}
	a.tri[name] = v
	return nil
}

// toggle flips option membership. Reselecting the current value of a
// single-select field clears it instead of duplicating it.
func (a *AnswerState) toggle(name string, option string) error {
	f, err := a.field(name, KindOption, KindOptionSet)
	if err != nil {
		return err
	}
	if !slices.Contains(f.Catalog, option) {
		return fmt.Errorf("forms: option %q not in catalog of %q", option, name)
	}
	selected := a.sets[name]
	if i := slices.Index(selected, option); i >= 0 {
		a.sets[name] = slices.Delete(selected, i, i+1)
		return nil
	}
	if f.Kind == KindOption {
		a.sets[name] = []string{option} // single-select replaces
		return nil
	}
	a.sets[name] = append(selected, option)
	return nil
}

func (a *AnswerState) Text(name string) string {
	return a.text[name]
}

func (a *AnswerState) Flag(name string) bool {
	return a.flags[name]
}

func (a *AnswerState) Tri(name string) TriState {
	return a.tri[name]
}

// Selected returns the selections of an option field in selection order.
func (a *AnswerState) Selected(name string) []string {
	return append([]string(nil), a.sets[name]...)
}

// Export snapshots every declared field into a map, unset fields included
// with their zero answers. No extra keys, no missing keys.
func (a *AnswerState) Export() map[string]any {
	out := make(map[string]any, len(a.schema.order))
	for _, name := range a.schema.FieldNames() {
		f, _ := a.schema.Field(name)
		switch f.Kind {
		case KindText, KindDate:
			out[name] = a.text[name]
		case KindFlag:
			out[name] = a.flags[name]
		case KindTriState:
			out[name] = a.tri[name]
		case KindOption, KindOptionSet:
			out[name] = append([]string{}, a.sets[name]...)
		}
	}
	return out
}
