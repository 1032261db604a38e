package forms

// Session - one wizard run over a shared Schema. States are Step(1)..Step(N),
// Advance moves forward only when the current step validates, Retreat is
// unconditional. A Session is single-owner and discarded on submit or cancel.
type Session struct {
	schema  *Schema
	answers *AnswerState
	current int
}

// NewSession starts at step 1 with all-unset answers.
func NewSession(schema *Schema) *Session {
	return &Session{
		schema:  schema,
		answers: newAnswerState(schema),
		current: 1,
	}
}

func (s *Session) Schema() *Schema {
	return s.schema
}

// Current - 1-based current step index.
func (s *Session) Current() int {
	return s.current
}

func (s *Session) Answers() *AnswerState {
	return s.answers
}

// SetText assigns a text or date field. Unknown field names are rejected
// with ErrUnknownField, never silently dropped.
func (s *Session) SetText(name string, v string) error {
	return s.answers.setText(name, v)
}

func (s *Session) SetFlag(name string, v bool) error {
	return s.answers.setFlag(name, v)
}

func (s *Session) SetTri(name string, v TriState) error {
	return s.answers.setTri(name, v)
}

// Toggle flips an option on an option field. Selecting the already selected
// value of a single-select field clears the selection.
func (s *Session) Toggle(name string, option string) error {
	return s.answers.toggle(name, option)
}

// Advance validates the current step. On success currentStep moves forward,
// capped at N; attempting to advance past the final step is rejected.
// On failure currentStep is unchanged and the session stays usable.
func (s *Session) Advance() ValidationResult {
	step, _ := s.schema.Step(s.current)
	if res := validateStep(step, s.answers); !res.OK {
		return res
	}
	if s.current == s.schema.Steps() {
		return Invalid("already at final step")
	}
	s.current++
	return Valid()
}

// Retreat moves one step back, floored at step 1. Never validates, never fails.
func (s *Session) Retreat() {
	if s.current > 1 {
		s.current--
	}
}

// IsComplete is true only on the final step with its checks passing.
func (s *Session) IsComplete() bool {
	if s.current != s.schema.Steps() {
		return false
	}
	step, _ := s.schema.Step(s.current)
	return validateStep(step, s.answers).OK
}

// Submit re-validates the final step and hands the accumulated answers to
// the caller for persistence. The exported map holds exactly the fields
// the schema declares.
func (s *Session) Submit() (map[string]any, ValidationResult) {
	if s.current != s.schema.Steps() {
		return nil, Invalid("not at final step")
	}
	step, _ := s.schema.Step(s.current)
	if res := validateStep(step, s.answers); !res.OK {
		return nil, res
	}
	return s.answers.Export(), Valid()
}
