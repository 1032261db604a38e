package forms

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ValidationResult - Valid or Invalid(reason). Pure function of
// (step, answers). Never carries partial errors: the first failing
// check of a step wins.
type ValidationResult struct {
	OK     bool
	Reason string
}

func Valid() ValidationResult {
	return ValidationResult{OK: true}
}

func Invalid(reason string) ValidationResult {
	return ValidationResult{Reason: reason}
}

// validateStep runs the step's checks in order and short-circuits on the
// first failure.
func validateStep(step Step, answers *AnswerState) ValidationResult {
	for _, chk := range step.Checks {
		f, _ := answers.schema.Field(chk.Field)
		if reason := checkField(f, answers); reason != "" {
			if chk.Message != "" {
				return Invalid(chk.Message)
			}
			return Invalid(reason)
		}
	}
	return Valid()
}

// checkField returns "" when the field satisfies its required-field
// predicate, otherwise the default reason.
func checkField(f Field, answers *AnswerState) string {
	switch f.Kind {
	case KindText:
		if strings.TrimSpace(answers.text[f.Name]) == "" {
			return f.Label + " is required"
		}
	case KindDate:
		v := strings.TrimSpace(answers.text[f.Name])
		if v == "" {
			return f.Label + " is required"
		}
		if _, err := time.Parse(dateLayout, v); err != nil {
			return f.Label + " must be a valid date"
		}
	case KindFlag:
		if !answers.flags[f.Name] {
			return f.Label + " must be confirmed"
		}
	case KindTriState:
		if answers.tri[f.Name] == Unanswered {
			return f.Label + " must be answered"
		}
	case KindOption:
		if len(answers.sets[f.Name]) != 1 {
			return "Select one option for " + f.Label
		}
	case KindOptionSet:
		if len(answers.sets[f.Name]) == 0 {
			return "Select at least one option for " + f.Label
		}
	}
	return ""
}
