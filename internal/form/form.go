package form

import (
	"fmt"
	"strings"
)

// Validator checks one step's raw input and returns the value to store.
// It receives the fields collected so far, so a step may reference an
// earlier answer (the "same" shortcut on the token image step).
// A returned error re-prompts the same step; the conversation does not
// advance.
type Validator func(raw string, fields map[string]string) (string, error)

// Step is one prompt of a form, producing one named field.
type Step struct {
	Field    string
	Prompt   string
	Validate Validator
}

// Definition is an immutable, process-wide description of a form: an ordered
// sequence of steps plus the completeness and dedup metadata checked at
// finalization.
type Definition struct {
	Kind     string
	Steps    []Step
	Required []string
	// KeyField is the user-controlled field that, together with the form
	// kind and user id, identifies a submission for dedup purposes.
	KeyField string
}

// Terminal is returned by Next when there is no further step.
const Terminal = -1

func (d *Definition) First() int { return 0 }

// Next returns the step index following current, or Terminal.
func (d *Definition) Next(current int) int {
	if current+1 >= len(d.Steps) {
		return Terminal
	}
	return current + 1
}

func (d *Definition) Prompt(step int) string {
	return d.Steps[step].Prompt
}

// Apply validates raw input for a step and returns the value to store under
// the step's field name.
func (d *Definition) Apply(step int, raw string, fields map[string]string) (string, error) {
	s := d.Steps[step]
	if s.Validate == nil {
		return NonEmpty(raw, fields)
	}
	return s.Validate(raw, fields)
}

// Missing reports which required fields are absent or empty, in declaration
// order.
func (d *Definition) Missing(fields map[string]string) []string {
	var out []string
	for _, name := range d.Required {
		if strings.TrimSpace(fields[name]) == "" {
			out = append(out, name)
		}
	}
	return out
}

// NonEmpty is the default validator: trims and rejects blank input.
func NonEmpty(raw string, _ map[string]string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", fmt.Errorf("this field cannot be empty, please try again")
	}
	return v, nil
}

// SameAs returns a validator that substitutes the value of an earlier field
// when the user types the given keyword (case-insensitive), and otherwise
// behaves like NonEmpty.
func SameAs(keyword, field string) Validator {
	return func(raw string, fields map[string]string) (string, error) {
		v := strings.TrimSpace(raw)
		if strings.EqualFold(v, keyword) {
			prev, ok := fields[field]
			if !ok || prev == "" {
				return "", fmt.Errorf("no %s collected yet, please provide a value", field)
			}
			return prev, nil
		}
		return NonEmpty(raw, fields)
	}
}
