package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SamirAliWebDev/zenith/internal/model"
)

// taskRecord is the persisted shape of one task. Category uses the tagged
// object form on write but also decodes legacy bare-string values.
type taskRecord struct {
	ID           int             `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Priority     model.Priority  `json:"priority"`
	Completed    bool            `json:"completed"`
	Date         string          `json:"date"`
	Category     json.RawMessage `json:"category,omitempty"`
	ReminderTime string          `json:"reminderTime,omitempty"`
}

func encodeSnapshot(tasks []model.Task) ([]byte, error) {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		cat, err := t.Category.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("encode category for task %d: %w", t.ID, err)
		}
		records = append(records, taskRecord{
			ID:           t.ID,
			Title:        t.Title,
			Description:  t.Description,
			Priority:     t.Priority,
			Completed:    t.Completed,
			Date:         t.Date.Format(time.RFC3339),
			Category:     cat,
			ReminderTime: t.ReminderTime,
		})
	}
	return json.Marshal(records)
}

func decodeSnapshot(data []byte) ([]model.Task, error) {
	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	tasks := make([]model.Task, 0, len(records))
	for _, r := range records {
		t := model.Task{
			ID:           r.ID,
			Title:        r.Title,
			Description:  r.Description,
			Priority:     r.Priority,
			Completed:    r.Completed,
			Date:         parseDate(r.Date),
			Category:     decodeCategory(r.Category),
			ReminderTime: r.ReminderTime,
		}
		if !t.Priority.Valid() {
			t.Priority = model.PriorityMedium
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// parseDate restores a serialized date. Older snapshots stored bare days.
func parseDate(s string) time.Time {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts
	}
	if ts, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return ts
	}
	return time.Time{}
}

// decodeCategory normalizes the persisted category: the tagged object form,
// a legacy bare predefined-name string, or (when absent/malformed) the
// default "Other" icon category.
func decodeCategory(raw json.RawMessage) model.Category {
	if len(raw) == 0 {
		return model.DefaultCategory()
	}
	var c model.Category
	// Category.UnmarshalJSON never fails; it degrades to the default.
	_ = c.UnmarshalJSON(raw)
	return c
}
