package conversation

import (
	"testing"

	"launchpad-bot/internal/form"
)

func newManager() *Manager { return NewManager(form.All()) }

func TestStrayInputIsIgnored(t *testing.T) {
	m := newManager()
	res := m.Submit(1, "hello there")
	if res.Outcome != OutcomeStray {
		t.Fatalf("want stray outcome, got %v", res.Outcome)
	}
	if m.Active(1) {
		t.Fatalf("stray input must not create a session")
	}
}

func TestStartReturnsFirstPrompt(t *testing.T) {
	m := newManager()
	prompt, err := m.Start(1, form.KindSupportRequest)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if prompt != form.SupportRequest().Prompt(0) {
		t.Fatalf("unexpected first prompt: %q", prompt)
	}
	if !m.Active(1) {
		t.Fatalf("session should be active after start")
	}
}

func TestStartUnknownFormKind(t *testing.T) {
	m := newManager()
	if _, err := m.Start(1, "no-such-form"); err == nil {
		t.Fatalf("unknown form kind should error")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	m := newManager()
	if _, err := m.Start(1, form.KindSupportRequest); err != nil {
		t.Fatalf("start: %v", err)
	}
	if res := m.Submit(1, "Alice"); res.Outcome != OutcomePrompt {
		t.Fatalf("submit name: %+v", res)
	}

	// Redelivered start must resume at the current step, not reset.
	prompt, err := m.Start(1, form.KindSupportRequest)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if prompt != form.SupportRequest().Prompt(1) {
		t.Fatalf("restart should resume at email step, got %q", prompt)
	}

	res := m.Submit(1, "a@x.com")
	if res.Outcome != OutcomePrompt {
		t.Fatalf("submit email after resume: %+v", res)
	}
}

func TestFullWalkCollectsEveryField(t *testing.T) {
	m := newManager()
	if _, err := m.Start(7, form.KindSupportRequest); err != nil {
		t.Fatalf("start: %v", err)
	}

	res := m.Submit(7, "Alice")
	if res.Outcome != OutcomePrompt {
		t.Fatalf("step 1: %+v", res)
	}
	res = m.Submit(7, "a@x.com")
	if res.Outcome != OutcomePrompt {
		t.Fatalf("step 2: %+v", res)
	}
	res = m.Submit(7, "bug in X")
	if res.Outcome != OutcomeFinalize {
		t.Fatalf("terminal step should trigger finalization: %+v", res)
	}

	got := res.Session.Fields
	want := map[string]string{"name": "Alice", "email": "a@x.com", "question": "bug in X"}
	if len(got) != len(want) {
		t.Fatalf("want %d fields, got %d: %v", len(want), len(got), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("field %s: want %q, got %q", k, v, got[k])
		}
	}
}

func TestValidationFailureDoesNotAdvance(t *testing.T) {
	m := newManager()
	if _, err := m.Start(1, form.KindSupportRequest); err != nil {
		t.Fatalf("start: %v", err)
	}

	res := m.Submit(1, "   ")
	if res.Outcome != OutcomeReprompt {
		t.Fatalf("blank input should re-prompt: %+v", res)
	}
	if res.Prompt != form.SupportRequest().Prompt(0) {
		t.Fatalf("re-prompt should repeat the current step: %q", res.Prompt)
	}

	// Step unchanged, nothing stored: valid input still answers step 0.
	res = m.Submit(1, "Alice")
	if res.Outcome != OutcomePrompt || res.Prompt != form.SupportRequest().Prompt(1) {
		t.Fatalf("valid input after re-prompt should advance to email: %+v", res)
	}
}

func TestSameShortcutReusesProjectImage(t *testing.T) {
	m := newManager()
	if _, err := m.Start(1, form.KindGetListed); err != nil {
		t.Fatalf("start: %v", err)
	}
	answers := []string{
		"Omnipair - DEX aggregator",
		"Long description of the project",
		"Omnipair",
		"OMFG",
		"https://x/logo.png",
		"same",
	}
	var last Result
	for _, a := range answers {
		last = m.Submit(1, a)
		if last.Outcome != OutcomePrompt {
			t.Fatalf("answer %q: %+v", a, last)
		}
	}
	for _, a := range []string{"$750,000", "$50,000", "10000000", "24 months", "domains, repos"} {
		last = m.Submit(1, a)
	}
	if last.Outcome != OutcomeFinalize {
		t.Fatalf("expected finalize at end of form: %+v", last)
	}
	if last.Session.Fields["token_image"] != "https://x/logo.png" {
		t.Fatalf("token_image should equal project_image, got %q", last.Session.Fields["token_image"])
	}
}

func TestCancelMidFormResetsToIdle(t *testing.T) {
	m := newManager()
	if _, err := m.Start(1, form.KindGetListed); err != nil {
		t.Fatalf("start: %v", err)
	}
	m.Submit(1, "Project - desc")
	m.Submit(1, "longer description")

	if !m.Cancel(1) {
		t.Fatalf("cancel of active session should report true")
	}
	if m.Active(1) {
		t.Fatalf("session should be gone after cancel")
	}
	if res := m.Submit(1, "anything"); res.Outcome != OutcomeStray {
		t.Fatalf("input after cancel should be stray: %+v", res)
	}
	if m.Cancel(1) {
		t.Fatalf("second cancel should report nothing to cancel")
	}
}

func TestSessionsAreIndependentAcrossUsers(t *testing.T) {
	m := newManager()
	m.Start(1, form.KindSupportRequest)
	m.Start(2, form.KindGetListed)

	m.Submit(1, "Alice")
	res := m.Submit(2, "Omnipair - desc")
	if res.Outcome != OutcomePrompt {
		t.Fatalf("user 2 step: %+v", res)
	}

	m.Cancel(2)
	if !m.Active(1) {
		t.Fatalf("cancelling user 2 must not touch user 1")
	}
}

func TestFinalizeSnapshotIsDetached(t *testing.T) {
	m := newManager()
	m.Start(1, form.KindSupportRequest)
	m.Submit(1, "Alice")
	m.Submit(1, "a@x.com")
	res := m.Submit(1, "question text")
	if res.Outcome != OutcomeFinalize {
		t.Fatalf("want finalize: %+v", res)
	}
	res.Session.Fields["name"] = "mutated"
	m.Clear(1)
	if m.Active(1) {
		t.Fatalf("clear should reset to idle")
	}
}
