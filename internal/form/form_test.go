package form

import "testing"

func TestRequiredFieldsAreDeclaredSteps(t *testing.T) {
	for kind, def := range All() {
		stepFields := make(map[string]bool)
		for _, s := range def.Steps {
			stepFields[s.Field] = true
		}
		for _, name := range def.Required {
			if !stepFields[name] {
				t.Errorf("%s: required field %q has no step", kind, name)
			}
		}
		if def.KeyField != "" && !stepFields[def.KeyField] {
			t.Errorf("%s: key field %q has no step", kind, def.KeyField)
		}
	}
}

func TestNextWalksStepsInOrder(t *testing.T) {
	def := SupportRequest()
	i := def.First()
	var fields []string
	for i != Terminal {
		fields = append(fields, def.Steps[i].Field)
		i = def.Next(i)
	}
	want := []string{"name", "email", "question"}
	if len(fields) != len(want) {
		t.Fatalf("want %d steps, got %d", len(want), len(fields))
	}
	for j := range want {
		if fields[j] != want[j] {
			t.Fatalf("step %d: want %q, got %q", j, want[j], fields[j])
		}
	}
}

func TestNonEmptyRejectsBlankInput(t *testing.T) {
	if _, err := NonEmpty("   ", nil); err == nil {
		t.Fatalf("blank input should fail validation")
	}
	v, err := NonEmpty("  hello ", nil)
	if err != nil || v != "hello" {
		t.Fatalf("want trimmed value, got %q err=%v", v, err)
	}
}

func TestSameAsSubstitutesEarlierField(t *testing.T) {
	v := SameAs("same", "project_image")
	fields := map[string]string{"project_image": "https://x/logo.png"}

	got, err := v("Same", fields)
	if err != nil || got != "https://x/logo.png" {
		t.Fatalf("keyword substitution failed: %q err=%v", got, err)
	}

	got, err = v("https://x/token.png", fields)
	if err != nil || got != "https://x/token.png" {
		t.Fatalf("plain value should pass through: %q err=%v", got, err)
	}

	if _, err := v("same", map[string]string{}); err == nil {
		t.Fatalf("substitution without a collected source field should fail")
	}
}

func TestMissingReportsEmptyRequiredFields(t *testing.T) {
	def := SupportRequest()
	missing := def.Missing(map[string]string{"name": "Alice", "email": " "})
	if len(missing) != 2 || missing[0] != "email" || missing[1] != "question" {
		t.Fatalf("unexpected missing set: %v", missing)
	}
	if m := def.Missing(map[string]string{"name": "A", "email": "a@x.com", "question": "q"}); len(m) != 0 {
		t.Fatalf("complete fields reported missing: %v", m)
	}
}
