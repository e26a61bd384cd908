package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamirAliWebDev/zenith/internal/model"
)

// memKV is an in-memory storage.KV with injectable failures.
type memKV struct {
	data   map[string]string
	getErr error
	setErr error
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Get(key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}

var taskDate = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)

func testFields(title string) Fields {
	return Fields{
		Title:    title,
		Priority: model.PriorityMedium,
		Date:     taskDate,
		Category: model.IconCategory("Work"),
	}
}

func TestTaskStore_Create(t *testing.T) {
	s := NewTaskStore(newMemKV())

	created, ok := s.Create(testFields("write tests"))
	require.True(t, ok)
	assert.Equal(t, 1, created.ID)
	assert.False(t, created.Completed)
	assert.Equal(t, "write tests", created.Title)

	second, ok := s.Create(testFields("another"))
	require.True(t, ok)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 2, s.Len())
}

func TestTaskStore_CreateRejectsBlankTitle(t *testing.T) {
	s := NewTaskStore(newMemKV())

	for _, title := range []string{"", "   ", "\t\n"} {
		_, ok := s.Create(testFields(title))
		assert.False(t, ok, "title %q should be rejected", title)
	}
	assert.Equal(t, 0, s.Len())
}

func TestTaskStore_ToggleIsInvolution(t *testing.T) {
	s := NewTaskStore(newMemKV())
	created, _ := s.Create(testFields("flip me"))

	s.ToggleComplete(created.ID)
	got, _ := s.Get(created.ID)
	assert.True(t, got.Completed)

	s.ToggleComplete(created.ID)
	got, _ = s.Get(created.ID)
	assert.False(t, got.Completed)
}

func TestTaskStore_UpdatePreservesIDAndCompleted(t *testing.T) {
	s := NewTaskStore(newMemKV())
	created, _ := s.Create(testFields("original"))
	s.ToggleComplete(created.ID)

	f := testFields("renamed")
	f.Priority = model.PriorityHigh
	f.ReminderTime = "09:30"
	s.Update(created.ID, f)

	got, ok := s.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.Completed, "completed must survive update")
	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, model.PriorityHigh, got.Priority)
	assert.Equal(t, "09:30", got.ReminderTime)
}

func TestTaskStore_UnknownIDsAreNoOps(t *testing.T) {
	s := NewTaskStore(newMemKV())
	created, _ := s.Create(testFields("only one"))

	s.Update(999, testFields("ghost"))
	s.ToggleComplete(999)
	s.Delete(999)

	assert.Equal(t, 1, s.Len())
	got, _ := s.Get(created.ID)
	assert.Equal(t, "only one", got.Title)
	assert.False(t, got.Completed)
}

func TestTaskStore_Delete(t *testing.T) {
	s := NewTaskStore(newMemKV())
	a, _ := s.Create(testFields("a"))
	b, _ := s.Create(testFields("b"))

	s.Delete(a.ID)
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get(a.ID)
	assert.False(t, ok)
	_, ok = s.Get(b.ID)
	assert.True(t, ok)
}

func TestTaskStore_AllReturnsCopy(t *testing.T) {
	s := NewTaskStore(newMemKV())
	s.Create(testFields("keep me intact"))

	snapshot := s.All()
	snapshot[0].Title = "mutated"

	got, _ := s.Get(1)
	assert.Equal(t, "keep me intact", got.Title)
}

func TestTaskStore_PersistsAcrossReopen(t *testing.T) {
	kv := newMemKV()
	s := NewTaskStore(kv)
	f := testFields("survive restart")
	f.Description = "with details"
	f.ReminderTime = "18:00"
	f.Category = model.CustomCategory("🎯")
	created, _ := s.Create(f)
	s.ToggleComplete(created.ID)

	reopened := NewTaskStore(kv)
	require.Equal(t, 1, reopened.Len())
	got, ok := reopened.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "survive restart", got.Title)
	assert.Equal(t, "with details", got.Description)
	assert.Equal(t, "18:00", got.ReminderTime)
	assert.True(t, got.Completed)
	assert.Equal(t, model.CustomCategory("🎯"), got.Category)
	assert.True(t, model.SameDay(got.Date, taskDate))

	// new ids keep ascending after a reload
	next, _ := reopened.Create(testFields("new after reload"))
	assert.Equal(t, created.ID+1, next.ID)
}

func TestTaskStore_LoadUpgradesLegacyCategory(t *testing.T) {
	kv := newMemKV()
	kv.data[tasksKey] = `[
		{"id":1,"title":"legacy","priority":"High","completed":false,"date":"2024-06-01","category":"Fitness"},
		{"id":2,"title":"broken","priority":"bogus","completed":true,"date":"2024-06-02"}
	]`

	s := NewTaskStore(kv)
	require.Equal(t, 2, s.Len())

	legacy, _ := s.Get(1)
	assert.Equal(t, model.IconCategory("Fitness"), legacy.Category)
	assert.Equal(t, model.PriorityHigh, legacy.Priority)
	assert.Equal(t, 2024, legacy.Date.Year())

	broken, _ := s.Get(2)
	assert.Equal(t, model.DefaultCategory(), broken.Category)
	assert.Equal(t, model.PriorityMedium, broken.Priority, "unknown priority resets to Medium")
}

func TestTaskStore_CorruptSnapshotFallsBackToEmpty(t *testing.T) {
	kv := newMemKV()
	kv.data[tasksKey] = `{not json!`

	s := NewTaskStore(kv)
	assert.Equal(t, 0, s.Len())

	// the store stays usable
	_, ok := s.Create(testFields("fresh start"))
	assert.True(t, ok)
}

func TestTaskStore_ReadFailureFallsBackToEmpty(t *testing.T) {
	kv := newMemKV()
	kv.getErr = errors.New("disk on fire")

	s := NewTaskStore(kv)
	assert.Equal(t, 0, s.Len())
}

func TestTaskStore_WriteFailureIsSwallowed(t *testing.T) {
	kv := newMemKV()
	kv.setErr = errors.New("readonly volume")

	s := NewTaskStore(kv)
	created, ok := s.Create(testFields("still in memory"))
	require.True(t, ok)

	got, found := s.Get(created.ID)
	assert.True(t, found)
	assert.Equal(t, "still in memory", got.Title)
}

func TestTaskStore_SubscribersRunOnEveryMutation(t *testing.T) {
	s := NewTaskStore(newMemKV())
	calls := 0
	s.Subscribe(func() { calls++ })

	created, _ := s.Create(testFields("watched"))
	s.ToggleComplete(created.ID)
	s.Update(created.ID, testFields("renamed"))
	s.Delete(created.ID)

	assert.Equal(t, 4, calls)
}

func TestLoadTheme(t *testing.T) {
	kv := newMemKV()
	assert.Equal(t, model.ThemeDark, LoadTheme(kv), "default is dark")

	SaveTheme(kv, model.ThemeLight)
	assert.Equal(t, model.ThemeLight, LoadTheme(kv))

	kv.data[themeKey] = "sepia"
	assert.Equal(t, model.ThemeDark, LoadTheme(kv), "invalid value falls back to dark")
}
