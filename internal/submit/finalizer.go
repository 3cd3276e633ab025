package submit

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"launchpad-bot/internal/conversation"
	"launchpad-bot/internal/dedup"
	"launchpad-bot/internal/form"
	"launchpad-bot/internal/notify"
	"launchpad-bot/internal/storage"
)

// ErrDuplicate reports that an identical submission was already processed
// within the retention window. Callers treat it as silent success: the user
// gets the normal acknowledgment, persistence is not called again.
var ErrDuplicate = errors.New("submission already processed")

// IncompleteError reports required fields that were missing at finalization.
// The session is cleared; the user must restart the form.
type IncompleteError struct {
	Missing []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// Identity describes who submitted a form, taken from the chat transport.
type Identity struct {
	UserID int64
	Name   string
	Handle string
}

func (id Identity) Label() string {
	switch {
	case id.Name != "" && id.Handle != "":
		return fmt.Sprintf("%s (@%s)", id.Name, id.Handle)
	case id.Handle != "":
		return "@" + id.Handle
	case id.Name != "":
		return id.Name
	default:
		return fmt.Sprintf("user %d", id.UserID)
	}
}

// DefaultRetention is how long a completed submission key keeps blocking
// identical re-submissions. Long enough to absorb a double-tap, short enough
// that a legitimate later re-submission (same ticker) goes through.
const DefaultRetention = 60 * time.Second

// Finalizer turns a completed session into exactly one persisted record.
type Finalizer struct {
	registry  *dedup.Registry
	store     storage.Appender
	notifier  notify.Notifier // nil when unconfigured
	sessions  *conversation.Manager
	forms     map[string]*form.Definition
	retention time.Duration
	// notifyKinds lists the form kinds that are forwarded to the
	// notification channel.
	notifyKinds map[string]bool

	now func() time.Time
}

func NewFinalizer(registry *dedup.Registry, store storage.Appender, notifier notify.Notifier, sessions *conversation.Manager, forms map[string]*form.Definition) *Finalizer {
	return &Finalizer{
		registry:    registry,
		store:       store,
		notifier:    notifier,
		sessions:    sessions,
		forms:       forms,
		retention:   DefaultRetention,
		notifyKinds: map[string]bool{form.KindSupportRequest: true},
		now:         time.Now,
	}
}

// SetNotifier installs the staff notification channel. The notifier depends
// on the chat transport, which is constructed after the finalizer, so it is
// wired here rather than in the constructor.
func (f *Finalizer) SetNotifier(n notify.Notifier) {
	f.notifier = n
}

// SetRetention overrides the duplicate-submission retention window.
func (f *Finalizer) SetRetention(d time.Duration) {
	if d > 0 {
		f.retention = d
	}
}

// Finalize validates completeness, persists the record and resets the
// session. It is idempotent per submission key: a second call with the same
// accumulated fields inside the retention window returns ErrDuplicate and
// has no side effects.
//
// On persistence failure the submission key is aborted and the session is
// kept, so the user can re-send their last answer to retry.
func (f *Finalizer) Finalize(ctx context.Context, id Identity, sess conversation.Session) (storage.Record, error) {
	def, ok := f.forms[sess.FormKind]
	if !ok {
		return storage.Record{}, fmt.Errorf("unknown form kind %q", sess.FormKind)
	}

	key := submissionKey(def, sess)
	if !f.registry.TryBegin(key) {
		log.Printf("duplicate submission detected for %s, skipping", key)
		f.sessions.Clear(sess.UserID)
		return storage.Record{}, ErrDuplicate
	}

	if missing := def.Missing(sess.Fields); len(missing) > 0 {
		f.registry.Abort(key)
		f.sessions.Clear(sess.UserID)
		return storage.Record{}, &IncompleteError{Missing: missing}
	}

	rec := storage.Record{
		Timestamp: f.now().UTC(),
		Submitter: id.Label(),
		Category:  sess.FormKind,
		Fields:    sess.Fields,
	}
	if err := f.store.Append(ctx, rec); err != nil {
		f.registry.Abort(key)
		return storage.Record{}, fmt.Errorf("persist submission: %w", err)
	}

	if f.notifier != nil && f.notifyKinds[sess.FormKind] {
		if err := f.notifier.Notify(ctx, f.notificationText(def, id, sess)); err != nil {
			log.Printf("notification failed (submission already persisted): %v", err)
		}
	}

	f.registry.Complete(key, f.retention)
	f.sessions.Clear(sess.UserID)
	return rec, nil
}

// submissionKey identifies a completed form by its stable user-controlled
// field, so a double-tapped final answer collapses to one record while the
// same user can legitimately resubmit later.
func submissionKey(def *form.Definition, sess conversation.Session) string {
	v := strings.ToLower(strings.TrimSpace(sess.Fields[def.KeyField]))
	return fmt.Sprintf("%s:%d:%s", def.Kind, sess.UserID, v)
}

func (f *Finalizer) notificationText(def *form.Definition, id Identity, sess conversation.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New %s submission from %s:\n", def.Kind, id.Label())
	for _, step := range def.Steps {
		if v, ok := sess.Fields[step.Field]; ok {
			fmt.Fprintf(&b, "%s: %s\n", step.Field, v)
		}
	}
	fmt.Fprintf(&b, "User ID: %d", id.UserID)
	return b.String()
}
