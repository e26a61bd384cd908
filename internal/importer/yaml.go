package importer

import (
	"fmt"
	"time"

	"github.com/SamirAliWebDev/zenith/internal/model"
	"github.com/SamirAliWebDev/zenith/internal/store"
	"gopkg.in/yaml.v3"
)

// YAMLTask represents a single task in the YAML input.
type YAMLTask struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Priority    string `yaml:"priority,omitempty"`
	Date        string `yaml:"date,omitempty"`
	Category    string `yaml:"category,omitempty"`
	Reminder    string `yaml:"reminder,omitempty"`
	Completed   bool   `yaml:"completed,omitempty"`
}

// YAMLInput represents the root structure of the YAML input.
type YAMLInput struct {
	Tasks []YAMLTask `yaml:"tasks"`
}

// Import parses a YAML string and creates tasks in the store. Tasks without
// a date land on defaultDate. Returns the number of tasks created.
func Import(s *store.TaskStore, yamlStr string, defaultDate time.Time) (int, error) {
	var input YAMLInput
	if err := yaml.Unmarshal([]byte(yamlStr), &input); err != nil {
		return 0, fmt.Errorf("YAML parse error: %w", err)
	}

	if len(input.Tasks) == 0 {
		return 0, fmt.Errorf("no tasks found in YAML")
	}

	count := 0
	for _, yt := range input.Tasks {
		if yt.Title == "" {
			return count, fmt.Errorf("task title is required")
		}

		date := defaultDate
		if yt.Date != "" {
			parsed, err := time.ParseInLocation("2006-01-02", yt.Date, time.Local)
			if err != nil {
				return count, fmt.Errorf("invalid date for %q: %w", yt.Title, err)
			}
			date = parsed
		}

		if !model.ValidReminderTime(yt.Reminder) {
			return count, fmt.Errorf("invalid reminder for %q: %s", yt.Title, yt.Reminder)
		}

		priority := model.Priority(yt.Priority)
		if !priority.Valid() {
			priority = model.PriorityMedium
		}

		category := model.DefaultCategory()
		if yt.Category != "" {
			if model.IsPredefined(yt.Category) {
				category = model.IconCategory(yt.Category)
			} else {
				category = model.CustomCategory(yt.Category)
			}
		}

		task, ok := s.Create(store.Fields{
			Title:        yt.Title,
			Description:  yt.Description,
			Priority:     priority,
			Date:         date,
			Category:     category,
			ReminderTime: yt.Reminder,
		})
		if !ok {
			return count, fmt.Errorf("add task %q: blank title", yt.Title)
		}
		if yt.Completed {
			s.ToggleComplete(task.ID)
		}
		count++
	}
	return count, nil
}

// Export renders tasks as the same YAML shape Import accepts.
func Export(tasks []model.Task) (string, error) {
	out := YAMLInput{Tasks: make([]YAMLTask, 0, len(tasks))}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, YAMLTask{
			Title:       t.Title,
			Description: t.Description,
			Priority:    string(t.Priority),
			Date:        t.Date.Format("2006-01-02"),
			Category:    t.Category.Value,
			Reminder:    t.ReminderTime,
			Completed:   t.Completed,
		})
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("YAML encode error: %w", err)
	}
	return string(data), nil
}
