package faq

import "testing"

func TestMatchWholeWordsOnly(t *testing.T) {
	kb := Default()

	e, ok := kb.Match("ca")
	if !ok || e.Answer != metaContractAddress {
		t.Fatalf("keyword 'ca' should hit the contract address entry: %+v ok=%v", e, ok)
	}
	if _, ok := kb.Match("what is the CA?"); !ok {
		t.Fatalf("match should be case-insensitive and punctuation-tolerant")
	}
	if _, ok := kb.Match("vacation plans"); ok {
		t.Fatalf("'ca' inside another word must not match")
	}
}

func TestMatchReturnsFirstEntry(t *testing.T) {
	kb := New([]Entry{
		{Keywords: []string{"alpha"}, Answer: "first"},
		{Keywords: []string{"alpha", "beta"}, Answer: "second"},
	}, nil)
	e, ok := kb.Match("alpha beta")
	if !ok || e.Answer != "first" {
		t.Fatalf("want first declared entry, got %+v", e)
	}
}

func TestSuggestButtonsByKeyword(t *testing.T) {
	kb := Default()
	buttons := kb.SuggestButtons("how do I get my project listed for an ico?")
	if len(buttons) != 2 {
		t.Fatalf("want 2 follow-ups, got %v", buttons)
	}
	if buttons[0].Data != cbGetListed || buttons[1].Data != cbICOs {
		t.Fatalf("unexpected follow-up order: %v", buttons)
	}
}

func TestSuggestButtonsDeduplicates(t *testing.T) {
	kb := Default()
	buttons := kb.SuggestButtons("ico icos sale launch")
	if len(buttons) != 1 {
		t.Fatalf("same target should be suggested once: %v", buttons)
	}
}

func TestNoSuggestionsForUnrelatedText(t *testing.T) {
	kb := Default()
	if buttons := kb.SuggestButtons("hello there"); len(buttons) != 0 {
		t.Fatalf("unexpected suggestions: %v", buttons)
	}
}
