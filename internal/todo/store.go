package todo

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store is the ordered task collection plus the single edit session.
// It is not safe for concurrent use; callers serialise access through one
// event loop.
type Store struct {
	tasks []Task
	edit  *EditSession

	newID func() string
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the task identifier source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new, not yet completed task. The text is stored as given;
// it only has to contain something other than whitespace.
func (s *Store) Add(text string, priority Priority) (Task, error) {
	if strings.TrimSpace(text) == "" {
		return Task{}, ErrEmptyText
	}
	if !priority.Valid() {
		return Task{}, ErrInvalidPriority
	}

	t := Task{
		ID:        s.newID(),
		Text:      text,
		Priority:  priority,
		Completed: false,
		CreatedAt: s.now().UTC(),
	}
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Toggle flips the completion flag of the task with the given id.
func (s *Store) Toggle(id string) error {
	i := s.IndexOf(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return nil
}

// BeginEdit opens an edit session for the task, replacing any previous one.
// Unsaved values of the previous session are discarded.
func (s *Store) BeginEdit(id string) (EditSession, error) {
	i := s.IndexOf(id)
	if i < 0 {
		return EditSession{}, ErrTaskNotFound
	}
	s.edit = &EditSession{
		TaskID:   id,
		Text:     s.tasks[i].Text,
		Priority: s.tasks[i].Priority,
	}
	return *s.edit, nil
}

// UpdateDraft changes the shadow values of the open session.
func (s *Store) UpdateDraft(text string, priority Priority) error {
	if s.edit == nil {
		return ErrNoEditSession
	}
	s.edit.Text = text
	if priority.Valid() {
		s.edit.Priority = priority
	}
	return nil
}

// SaveEdit commits text and priority to the task and closes the session.
// Blank text is rejected the same way Add rejects it, and the session is
// left open.
func (s *Store) SaveEdit(id, text string, priority Priority) error {
	i := s.IndexOf(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if !priority.Valid() {
		return ErrInvalidPriority
	}

	s.tasks[i].Text = text
	s.tasks[i].Priority = priority
	s.edit = nil
	return nil
}

// CancelEdit closes the edit session without touching any task.
func (s *Store) CancelEdit() {
	s.edit = nil
}

// Delete removes the task. If it was being edited the session is cleared.
func (s *Store) Delete(id string) error {
	i := s.IndexOf(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	if s.edit != nil && s.edit.TaskID == id {
		s.edit = nil
	}
	return nil
}

// Tasks returns a copy of the collection in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// At returns the task at position pos.
func (s *Store) At(pos int) (Task, bool) {
	if pos < 0 || pos >= len(s.tasks) {
		return Task{}, false
	}
	return s.tasks[pos], true
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (Task, bool) {
	i := s.IndexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// IndexOf returns the current position of the task, or -1.
func (s *Store) IndexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Editing returns the open edit session, if any.
func (s *Store) Editing() (EditSession, bool) {
	if s.edit == nil {
		return EditSession{}, false
	}
	return *s.edit, true
}

// Counts returns the total and completed task counts.
func (s *Store) Counts() (total, completed int) {
	for _, t := range s.tasks {
		if t.Completed {
			completed++
		}
	}
	return len(s.tasks), completed
}
