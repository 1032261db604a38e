package nullable

import (
	"database/sql"
	"encoding/json/v2"

	"github.com/sitetools/ops-core/forms"
)

// Bool in `nullable` package
// implements: sql.Scanner by embedding sql.NullBool
// implements: json.Marshaler and json.Unmarshaler
// Carries a yes/no/unanswered answer at the storage boundary:
// NULL = unanswered. Convert to forms.TriState for any branching.
type Bool struct {
	sql.NullBool
}

func NewBool(b bool) Bool {
	return Bool{sql.NullBool{Bool: b, Valid: true}}
}

// FromTriState maps Unanswered to NULL.
func FromTriState(t forms.TriState) Bool {
	switch t {
	case forms.Yes:
		return NewBool(true)
	case forms.No:
		return NewBool(false)
	default:
		return Bool{}
	}
}

// TriState - the explicit three-valued view. Consumers should branch on
// this, never on (Valid, Bool) pairs.
func (n *Bool) TriState() forms.TriState {
	if !n.Valid {
		return forms.Unanswered
	}
	if n.Bool {
		return forms.Yes
	}
	return forms.No
}

func (n *Bool) MarshalJSON() ([]byte, error) {
	if n.Valid {
		return json.Marshal(n.Bool)
	}
	return []byte("null"), nil
}

func (n *Bool) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Valid = false
		n.Bool = false
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	n.Bool = b
	n.Valid = true
	return nil
}

func (n *Bool) IsNil() bool {
	return !n.Valid
}
