package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/SamirAliWebDev/zenith/internal/model"
	"github.com/SamirAliWebDev/zenith/internal/store"
)

type memKV struct {
	data map[string]string
}

func newMemKV() *memKV { return &memKV{data: make(map[string]string)} }

func (m *memKV) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}
func (m *memKV) Set(key, value string) error { m.data[key] = value; return nil }
func (m *memKV) Delete(key string) error     { delete(m.data, key); return nil }

var defaultDate = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)

func TestImport(t *testing.T) {
	s := store.NewTaskStore(newMemKV())

	yamlStr := `tasks:
  - title: "Ship the release"
    description: "tag and push"
    priority: "High"
    date: "2024-06-03"
    category: "Work"
    reminder: "09:00"
  - title: "Buy strings"
    category: "🎸"
    completed: true
`
	count, err := Import(s, yamlStr, defaultDate)
	if err != nil {
		t.Fatalf("Import() err = %v, want nil", err)
	}
	if count != 2 {
		t.Fatalf("Import() count = %d, want 2", count)
	}

	first, ok := s.Get(1)
	if !ok {
		t.Fatal("task 1 missing")
	}
	if first.Title != "Ship the release" || first.Priority != model.PriorityHigh {
		t.Fatalf("first = %+v", first)
	}
	if first.Category != model.IconCategory("Work") {
		t.Fatalf("first category = %+v, want icon Work", first.Category)
	}
	if first.ReminderTime != "09:00" {
		t.Fatalf("first reminder = %q, want 09:00", first.ReminderTime)
	}
	if first.Date.Day() != 3 {
		t.Fatalf("first date = %v, want June 3", first.Date)
	}

	second, _ := s.Get(2)
	if second.Category != model.CustomCategory("🎸") {
		t.Fatalf("second category = %+v, want custom 🎸", second.Category)
	}
	if !second.Completed {
		t.Fatal("second should be completed")
	}
	if !model.SameDay(second.Date, defaultDate) {
		t.Fatalf("second date = %v, want default %v", second.Date, defaultDate)
	}
	if second.Priority != model.PriorityMedium {
		t.Fatalf("second priority = %v, want Medium default", second.Priority)
	}
}

func TestImport_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"not a task document", "- just\n- a list"},
		{"empty", "tasks: []"},
		{"missing title", "tasks:\n  - description: \"no title\""},
		{"bad date", "tasks:\n  - title: \"x\"\n    date: \"June 3rd\""},
		{"bad reminder", "tasks:\n  - title: \"x\"\n    reminder: \"late\""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := store.NewTaskStore(newMemKV())
			if _, err := Import(s, c.yaml, defaultDate); err == nil {
				t.Fatal("Import() err = nil, want non-nil")
			}
		})
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := store.NewTaskStore(newMemKV())
	f := store.Fields{
		Title:        "Round trip",
		Description:  "goes out, comes back",
		Priority:     model.PriorityLow,
		Date:         defaultDate,
		Category:     model.IconCategory("Study"),
		ReminderTime: "21:15",
	}
	created, _ := src.Create(f)
	src.ToggleComplete(created.ID)

	payload, err := Export(src.All())
	if err != nil {
		t.Fatalf("Export() err = %v, want nil", err)
	}
	if !strings.Contains(payload, "Round trip") {
		t.Fatalf("payload missing title: %s", payload)
	}

	dst := store.NewTaskStore(newMemKV())
	count, err := Import(dst, payload, defaultDate.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("Import() err = %v, want nil", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}

	got, _ := dst.Get(1)
	if got.Title != f.Title || got.Description != f.Description {
		t.Fatalf("got = %+v", got)
	}
	if got.Priority != model.PriorityLow || got.ReminderTime != "21:15" {
		t.Fatalf("got = %+v", got)
	}
	if got.Category != model.IconCategory("Study") {
		t.Fatalf("category = %+v, want icon Study", got.Category)
	}
	if !got.Completed {
		t.Fatal("completed flag lost in round trip")
	}
	if !model.SameDay(got.Date, defaultDate) {
		t.Fatalf("date = %v, want %v", got.Date, defaultDate)
	}
}
