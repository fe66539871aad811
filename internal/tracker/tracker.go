package tracker

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Persister flushes the document to durable storage. Implemented by
// store.Store.
type Persister interface {
	Save(doc *Document) error
}

// Sink receives notifications as they are emitted, for display. The sink owns
// nothing; the log entry in the document carries the read-flag lifecycle.
type Sink interface {
	Emit(n Notification)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(n Notification)

func (f SinkFunc) Emit(n Notification) { f(n) }

// Tracker owns the document and exposes every operation the rendering layer
// may submit. All methods mutate synchronously under a single-writer
// assumption: the caller serializes operations (the Bubble Tea update loop).
type Tracker struct {
	doc   *Document
	store Persister
	sink  Sink
	log   *slog.Logger

	now   func() time.Time
	newID func() string
}

// New builds a Tracker around doc. store and sink may be nil (persistence
// and display are then skipped); logger nil falls back to slog.Default.
func New(doc *Document, store Persister, sink Sink, logger *slog.Logger) *Tracker {
	if doc == nil {
		doc = NewDocument()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		doc:   doc,
		store: store,
		sink:  sink,
		log:   logger,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Document exposes the aggregate for rendering. Callers must not mutate it.
func (t *Tracker) Document() *Document { return t.doc }

func (t *Tracker) User() *UserProfile          { return t.doc.User }
func (t *Tracker) Tasks() []Task               { return t.doc.Tasks }
func (t *Tracker) Habits() []Habit             { return t.doc.Habits }
func (t *Tracker) Goals() []Goal               { return t.doc.Goals }
func (t *Tracker) TeamProjects() []TeamProject { return t.doc.TeamProjects }
func (t *Tracker) Notifications() []Notification {
	return t.doc.Notifications
}

// persist flushes the document. A failed write is logged and swallowed:
// persistence is best-effort and never breaks an operation that already
// mutated in-memory state.
func (t *Tracker) persist() {
	if t.store == nil {
		return
	}
	if err := t.store.Save(t.doc); err != nil {
		t.log.Error("save state", "error", err)
	}
}
