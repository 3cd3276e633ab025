package faq

import (
	"strings"
	"unicode"
)

// Button is a follow-up suggestion attached to an answer. Data is the
// callback id the menu layer understands.
type Button struct {
	Label string
	Data  string
}

// Entry is one curated answer, matched by whole-word keywords.
type Entry struct {
	Keywords []string
	Answer   string
	Buttons  []Button
}

// Followup ties keywords to a menu button suggested alongside generated
// answers.
type Followup struct {
	Keywords []string
	Button   Button
}

// KnowledgeBase matches free text against curated entries before the LLM
// fallback gets a chance.
type KnowledgeBase struct {
	entries   []Entry
	followups []Followup
}

func New(entries []Entry, followups []Followup) *KnowledgeBase {
	return &KnowledgeBase{entries: entries, followups: followups}
}

// Match returns the first entry whose keywords appear as whole words in the
// text.
func (kb *KnowledgeBase) Match(text string) (Entry, bool) {
	words := tokenize(text)
	for _, e := range kb.entries {
		for _, k := range e.Keywords {
			if words[k] {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// SuggestButtons infers contextual follow-up buttons from keywords in the
// user's question (and, typically, the generated answer appended to it).
func (kb *KnowledgeBase) SuggestButtons(text string) []Button {
	words := tokenize(text)
	var out []Button
	seen := make(map[string]bool)
	for _, fu := range kb.followups {
		if seen[fu.Button.Data] {
			continue
		}
		for _, k := range fu.Keywords {
			if words[k] {
				seen[fu.Button.Data] = true
				out = append(out, fu.Button)
				break
			}
		}
	}
	return out
}

func tokenize(text string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := make(map[string]bool, len(fields))
	for _, f := range fields {
		out[f] = true
	}
	return out
}
