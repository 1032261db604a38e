package forms

import (
	"fmt"
)

type FieldKind int

const (
	KindText     FieldKind = iota
	KindDate               // text holding a calendar date (YYYY-MM-DD)
	KindFlag               // plain checkbox
	KindTriState           // yes / no / unanswered
	KindOption             // single selection from a fixed catalog
	KindOptionSet          // one or more selections from a fixed catalog
)

type Field struct {
	Name    string
	Kind    FieldKind
	Label   string   // human label. used in validation messages and document sections
	Catalog []string // KindOption / KindOptionSet only
}

// Check - a required-field predicate attached to a step.
// Message overrides the default "<Label> is required" when set.
type Check struct {
	Field   string
	Message string
}

// Step in a wizard schema. Index is 1-based and fixed at schema build.
type Step struct {
	Index  int
	Title  string
	Fields []string // field names owned by this step (render contract)
	Checks []Check  // ordered. first failing check short-circuits
}

// Schema - ordered step sequence + field declarations. Immutable once built,
// shared across sessions.
type Schema struct {
	Name   string
	fields map[string]Field
	order  []string
	steps  []Step
}

// NewSchema builds a Schema, validating that field names are unique,
// every step check references a declared field, and step indexes run 1..N.
func NewSchema(name string, fields []Field, steps []Step) (*Schema, error) {
	s := &Schema{
		Name:   name,
		fields: make(map[string]Field, len(fields)),
		order:  make([]string, 0, len(fields)),
		steps:  steps,
	}
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("schema %q: field with empty name", name)
		}
		if _, dup := s.fields[f.Name]; dup {
			return nil, fmt.Errorf("schema %q: duplicate field %q", name, f.Name)
		}
		if (f.Kind == KindOption || f.Kind == KindOptionSet) && len(f.Catalog) == 0 {
			return nil, fmt.Errorf("schema %q: field %q needs a catalog", name, f.Name)
		}
		s.fields[f.Name] = f
		s.order = append(s.order, f.Name)
	}
	for i, step := range steps {
		if step.Index != i+1 {
			return nil, fmt.Errorf("schema %q: step index %d at position %d", name, step.Index, i)
		}
		for _, chk := range step.Checks {
			if _, ok := s.fields[chk.Field]; !ok {
				return nil, fmt.Errorf("schema %q step %d: check on unknown field %q", name, step.Index, chk.Field)
			}
		}
		for _, fname := range step.Fields {
			if _, ok := s.fields[fname]; !ok {
				return nil, fmt.Errorf("schema %q step %d: unknown field %q", name, step.Index, fname)
			}
		}
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("schema %q: no steps", name)
	}
	return s, nil
}

// Steps returns N, the total step count.
func (s *Schema) Steps() int {
	return len(s.steps)
}

func (s *Schema) Step(index int) (Step, bool) {
	if index < 1 || index > len(s.steps) {
		return Step{}, false
	}
	return s.steps[index-1], true
}

func (s *Schema) Field(name string) (Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// FieldNames in declaration order.
func (s *Schema) FieldNames() []string {
	return append([]string(nil), s.order...)
}
