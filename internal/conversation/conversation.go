package conversation

import (
	"fmt"
	"sync"

	"launchpad-bot/internal/form"
)

// Session is one user's progress through a single active form. Sessions are
// in-memory only; a restart loses in-flight forms and the user starts over.
type Session struct {
	UserID   int64
	FormKind string
	Step     int
	Fields   map[string]string
	Active   bool
}

// Outcome classifies what a Submit call did.
type Outcome int

const (
	// OutcomeStray means no form was active; the input was ignored.
	OutcomeStray Outcome = iota
	// OutcomePrompt means the field was stored and Prompt holds the next
	// step's question.
	OutcomePrompt
	// OutcomeReprompt means validation failed; Reason explains why and
	// Prompt repeats the current step's question. The step did not advance.
	OutcomeReprompt
	// OutcomeFinalize means the last step was answered; Session holds a
	// snapshot for the finalizer.
	OutcomeFinalize
)

// Result is the reply-worthy effect of one Submit call.
type Result struct {
	Outcome Outcome
	Prompt  string
	Reason  string
	Session Session
}

// Manager owns every user's ConversationSession and drives them through the
// registered form definitions. All methods are safe for concurrent use,
// though a single user's events are expected to arrive serially.
type Manager struct {
	mu       sync.RWMutex
	forms    map[string]*form.Definition
	sessions map[int64]*Session
}

func NewManager(forms map[string]*form.Definition) *Manager {
	return &Manager{
		forms:    forms,
		sessions: make(map[int64]*Session),
	}
}

// Start activates a form for the user and returns the prompt to send.
// It is idempotent: if the user already has an active session, that session
// continues from its current step and collected fields are kept, so a
// redelivered start event cannot wipe progress. Starting over requires an
// explicit Cancel first.
func (m *Manager) Start(userID int64, formKind string) (string, error) {
	def, ok := m.forms[formKind]
	if !ok {
		return "", fmt.Errorf("unknown form kind %q", formKind)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok && s.Active {
		resumed := m.forms[s.FormKind]
		return resumed.Prompt(s.Step), nil
	}
	m.sessions[userID] = &Session{
		UserID:   userID,
		FormKind: formKind,
		Step:     def.First(),
		Fields:   make(map[string]string),
		Active:   true,
	}
	return def.Prompt(def.First()), nil
}

// Submit feeds one raw input to the user's active session. Input with no
// active session is stray: it is ignored and no state changes.
func (m *Manager) Submit(userID int64, raw string) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok || !s.Active {
		return Result{Outcome: OutcomeStray}
	}
	def := m.forms[s.FormKind]

	value, err := def.Apply(s.Step, raw, s.Fields)
	if err != nil {
		return Result{
			Outcome: OutcomeReprompt,
			Reason:  err.Error(),
			Prompt:  def.Prompt(s.Step),
		}
	}

	s.Fields[def.Steps[s.Step].Field] = value

	next := def.Next(s.Step)
	if next == form.Terminal {
		return Result{Outcome: OutcomeFinalize, Session: snapshot(s)}
	}
	s.Step = next
	return Result{Outcome: OutcomePrompt, Prompt: def.Prompt(next)}
}

// Cancel discards the user's session unconditionally, regardless of step.
// It reports whether anything was active, so the caller can pick between a
// cancellation acknowledgment and a "nothing to cancel" reply.
func (m *Manager) Cancel(userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok || !s.Active {
		return false
	}
	delete(m.sessions, userID)
	return true
}

// Clear resets the user back to Idle. Called by the finalizer after a
// submission completes (or is rejected as incomplete).
func (m *Manager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// Active reports whether the user currently has a form in progress.
func (m *Manager) Active(userID int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	return ok && s.Active
}

// Definition returns the registered definition for a form kind.
func (m *Manager) Definition(kind string) (*form.Definition, bool) {
	def, ok := m.forms[kind]
	return def, ok
}

func snapshot(s *Session) Session {
	fields := make(map[string]string, len(s.Fields))
	for k, v := range s.Fields {
		fields[k] = v
	}
	out := *s
	out.Fields = fields
	return out
}
