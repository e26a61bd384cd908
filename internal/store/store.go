// Package store owns the canonical task collection. All state lives in
// memory; every mutation replaces the collection wholesale and mirrors a
// snapshot to local storage.
package store

import (
	"log"
	"strings"
	"time"

	"github.com/SamirAliWebDev/zenith/internal/model"
	"github.com/SamirAliWebDev/zenith/internal/storage"
)

const tasksKey = "zenith.tasks"

// Fields carries the user-editable parts of a task. ID and Completed are
// never set through Fields: the store assigns the former and only
// ToggleComplete changes the latter.
type Fields struct {
	Title        string
	Description  string
	Priority     model.Priority
	Date         time.Time
	Category     model.Category
	ReminderTime string
}

// TaskStore holds the in-memory task collection and mirrors it to storage.
// All operations are total: unknown ids and invalid input are silent no-ops.
type TaskStore struct {
	kv     storage.KV
	tasks  []model.Task
	nextID int
	subs   []func()
}

// NewTaskStore loads the persisted snapshot from kv. A missing, unreadable
// or corrupt snapshot falls back to an empty collection.
func NewTaskStore(kv storage.KV) *TaskStore {
	s := &TaskStore{kv: kv, nextID: 1}

	raw, ok, err := kv.Get(tasksKey)
	if err != nil {
		log.Printf("store: read snapshot: %v", err)
		return s
	}
	if !ok {
		return s
	}

	tasks, err := decodeSnapshot([]byte(raw))
	if err != nil {
		log.Printf("store: decode snapshot: %v", err)
		return s
	}
	s.tasks = tasks
	for _, t := range tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

// Subscribe registers fn to run after every mutation.
func (s *TaskStore) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

// All returns a snapshot copy of the full collection. Ordering is
// unspecified here; display ordering belongs to the views package.
func (s *TaskStore) All() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id.
func (s *TaskStore) Get(id int) (model.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// Create adds a new task with a fresh id and Completed=false. A blank
// (whitespace-only) title is rejected as a no-op, reported by ok=false.
func (s *TaskStore) Create(f Fields) (model.Task, bool) {
	if strings.TrimSpace(f.Title) == "" {
		return model.Task{}, false
	}
	if !f.Priority.Valid() {
		f.Priority = model.PriorityMedium
	}
	if f.Category.Kind == "" {
		f.Category = model.DefaultCategory()
	}

	t := model.Task{
		ID:           s.nextID,
		Title:        f.Title,
		Description:  f.Description,
		Priority:     f.Priority,
		Completed:    false,
		Date:         f.Date,
		Category:     f.Category,
		ReminderTime: f.ReminderTime,
	}
	s.nextID++

	next := make([]model.Task, 0, len(s.tasks)+1)
	next = append(next, s.tasks...)
	next = append(next, t)
	s.commit(next)
	return t, true
}

// Update replaces the editable fields of the task with the given id,
// preserving its id and completed state. Unknown ids are a no-op.
func (s *TaskStore) Update(id int, f Fields) {
	s.replace(id, func(t model.Task) model.Task {
		t.Title = f.Title
		t.Description = f.Description
		t.Priority = f.Priority
		t.Date = f.Date
		t.Category = f.Category
		t.ReminderTime = f.ReminderTime
		return t
	})
}

// ToggleComplete flips the completed flag of the task with the given id.
// Unknown ids are a no-op.
func (s *TaskStore) ToggleComplete(id int) {
	s.replace(id, func(t model.Task) model.Task {
		t.Completed = !t.Completed
		return t
	})
}

// Delete removes the task with the given id. Unknown ids are a no-op.
func (s *TaskStore) Delete(id int) {
	for i, t := range s.tasks {
		if t.ID == id {
			next := make([]model.Task, 0, len(s.tasks)-1)
			next = append(next, s.tasks[:i]...)
			next = append(next, s.tasks[i+1:]...)
			s.commit(next)
			return
		}
	}
}

func (s *TaskStore) replace(id int, mutate func(model.Task) model.Task) {
	for i, t := range s.tasks {
		if t.ID == id {
			next := make([]model.Task, len(s.tasks))
			copy(next, s.tasks)
			next[i] = mutate(t)
			s.commit(next)
			return
		}
	}
}

// commit installs the new collection, persists it, and notifies subscribers.
// A failed write is logged and dropped; the in-memory state stays current.
func (s *TaskStore) commit(next []model.Task) {
	s.tasks = next

	data, err := encodeSnapshot(s.tasks)
	if err != nil {
		log.Printf("store: encode snapshot: %v", err)
	} else if err := s.kv.Set(tasksKey, string(data)); err != nil {
		log.Printf("store: write snapshot: %v", err)
	}

	for _, fn := range s.subs {
		fn()
	}
}
